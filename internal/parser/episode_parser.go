package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/showfinder/showfinder/internal/config"
	"github.com/showfinder/showfinder/internal/models"
)

// episodePayload mirrors one element of GET /shows/{id}/episodes.
// Only the projected fields are decoded.
type episodePayload struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Season int    `json:"season"`
	Number int    `json:"number"`
}

// EpisodeParser projects episode lists onto models.Episode.
type EpisodeParser struct{}

func NewEpisodeParser() *EpisodeParser {
	return &EpisodeParser{}
}

// Parse decodes an episode list. Order is preserved.
func (p *EpisodeParser) Parse(body io.Reader) ([]models.Episode, error) {
	var payload []episodePayload
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode episodes: %w", err)
	}

	episodes := make([]models.Episode, len(payload))
	for i, e := range payload {
		episodes[i] = models.Episode{
			ID:     e.ID,
			Name:   e.Name,
			Season: e.Season,
			Number: e.Number,
		}
	}

	logger := config.GetLogger()
	logger.Debug().Int("total_episodes", len(episodes)).Msg("Parsed episode list")
	return episodes, nil
}
