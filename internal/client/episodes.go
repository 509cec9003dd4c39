package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/showfinder/showfinder/internal/apperrors"
	"github.com/showfinder/showfinder/internal/config"
	"github.com/showfinder/showfinder/internal/models"
)

// GetEpisodes queries /shows/{id}/episodes. A 404 from the API is reported
// as a show-not-found error.
func (c *client) GetEpisodes(ctx context.Context, showID int) ([]models.Episode, error) {
	logger := config.GetLogger()
	logger.Info().Int("showID", showID).Msg("Fetching episodes")

	endpoint := fmt.Sprintf("%s/shows/%d/episodes", c.baseURL, showID)

	episodes, err := coalesce(ctx, c, endpointEpisodes, "episodes:"+strconv.Itoa(showID), func(ctx context.Context) ([]models.Episode, error) {
		return fetchList(ctx, c, endpointEpisodes, endpoint, c.episodeParser)
	})
	if err != nil {
		logger.Warn().Err(err).Int("showID", showID).Msg("Episode fetch failed")
		if errors.Is(err, &apperrors.ErrNotFound{}) {
			return nil, fmt.Errorf("failed to get episodes: %w: %w", apperrors.NewShowNotFoundError(showID), err)
		}
		return nil, fmt.Errorf("failed to get episodes for show %d: %w", showID, err)
	}

	logger.Info().Int("showID", showID).Int("count", len(episodes)).Msg("Episodes fetched")
	return episodes, nil
}
