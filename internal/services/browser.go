package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/showfinder/showfinder/internal/client"
	"github.com/showfinder/showfinder/internal/config"
	"github.com/showfinder/showfinder/internal/models"
)

// DefaultBrowser is the default implementation of Browser.
//
// Queries run without any lock held. Only the final read-modify-write of
// the view is serialized, so whichever query completes last controls the
// page, regardless of the order the queries were started in.
type DefaultBrowser struct {
	client client.Client
	views  ViewStore
	logger zerolog.Logger

	mu sync.Mutex
}

// NewBrowser creates a Browser that queries c and keeps page state in views.
func NewBrowser(c client.Client, views ViewStore) *DefaultBrowser {
	return &DefaultBrowser{
		client: c,
		views:  views,
		logger: config.GetLogger(),
	}
}

// View implements Browser.View
func (b *DefaultBrowser) View(_ context.Context, sessionID string) (models.View, error) {
	view, _ := b.views.Load(sessionID)
	return view, nil
}

// SearchAndDisplay implements Browser.SearchAndDisplay. On error the view is left unchanged.
func (b *DefaultBrowser) SearchAndDisplay(ctx context.Context, sessionID, term string) (models.View, error) {
	shows, err := b.client.SearchShows(ctx, term)
	if err != nil {
		return models.View{}, err
	}

	view := models.View{
		Term:            term,
		Shows:           shows,
		Episodes:        []models.Episode{},
		EpisodesVisible: false,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.views.Save(sessionID, view); err != nil {
		return models.View{}, fmt.Errorf("failed to save view: %w", err)
	}

	b.logger.Debug().Str("session", sessionID).Str("term", term).Int("shows", len(shows)).Msg("Displayed search results")
	return view, nil
}

// EpisodesAndDisplay implements Browser.EpisodesAndDisplay. The show list is kept as it is.
func (b *DefaultBrowser) EpisodesAndDisplay(ctx context.Context, sessionID string, showID int) (models.View, error) {
	episodes, err := b.client.GetEpisodes(ctx, showID)
	if err != nil {
		return models.View{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	view, _ := b.views.Load(sessionID)
	view.ShowID = showID
	view.Episodes = episodes
	view.EpisodesVisible = true
	if err := b.views.Save(sessionID, view); err != nil {
		return models.View{}, fmt.Errorf("failed to save view: %w", err)
	}

	b.logger.Debug().Str("session", sessionID).Int("showID", showID).Int("episodes", len(episodes)).Msg("Displayed episodes")
	return view, nil
}

// Forget implements Browser.Forget
func (b *DefaultBrowser) Forget(_ context.Context, sessionID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.views.Delete(sessionID)
	return nil
}
