package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/showfinder/showfinder/internal/config"
	"github.com/showfinder/showfinder/internal/models"
)

// SearchShows queries /search/shows with term as the q parameter. The term is
// sent as given, including the empty string.
func (c *client) SearchShows(ctx context.Context, term string) ([]models.Show, error) {
	logger := config.GetLogger()
	logger.Info().Str("term", term).Msg("Searching shows")

	endpoint := fmt.Sprintf("%s/search/shows?%s", c.baseURL, url.Values{"q": {term}}.Encode())

	shows, err := coalesce(ctx, c, endpointSearch, "search:"+term, func(ctx context.Context) ([]models.Show, error) {
		return fetchList(ctx, c, endpointSearch, endpoint, c.showParser)
	})
	if err != nil {
		logger.Warn().Err(err).Str("term", term).Msg("Show search failed")
		return nil, fmt.Errorf("failed to search shows for %q: %w", term, err)
	}

	logger.Info().Str("term", term).Int("count", len(shows)).Msg("Show search completed")
	return shows, nil
}
