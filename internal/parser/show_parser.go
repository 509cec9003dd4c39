package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/showfinder/showfinder/internal/config"
	"github.com/showfinder/showfinder/internal/models"
)

// searchResult mirrors one element of GET /search/shows.
type searchResult struct {
	Score float64      `json:"score"`
	Show  *showPayload `json:"show"`
}

type showPayload struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Summary string        `json:"summary"`
	Image   *imagePayload `json:"image"`
}

type imagePayload struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// ShowParser projects search results onto models.Show.
type ShowParser struct {
	defaultImage string
}

// NewShowParser creates a parser that substitutes defaultImage for shows
// without a medium-resolution image.
func NewShowParser(defaultImage string) *ShowParser {
	if defaultImage == "" {
		defaultImage = config.DefaultImageURL
	}
	return &ShowParser{defaultImage: defaultImage}
}

// Parse decodes a search response. Result order is preserved.
func (p *ShowParser) Parse(body io.Reader) ([]models.Show, error) {
	logger := config.GetLogger()

	var results []searchResult
	if err := json.NewDecoder(body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode search results: %w", err)
	}

	shows := make([]models.Show, 0, len(results))
	for i, r := range results {
		if r.Show == nil {
			return nil, fmt.Errorf("search result %d has no show", i)
		}
		shows = append(shows, p.project(r.Show))
	}

	logger.Debug().Int("total_shows", len(shows)).Msg("Parsed search results")
	return shows, nil
}

func (p *ShowParser) project(s *showPayload) models.Show {
	image := p.defaultImage
	if s.Image != nil && s.Image.Medium != "" {
		image = s.Image.Medium
	}
	return models.Show{
		ID:      s.ID,
		Name:    s.Name,
		Summary: s.Summary,
		Image:   image,
	}
}
