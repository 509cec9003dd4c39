package services

import (
	"context"

	"github.com/showfinder/showfinder/internal/models"
)

// Browser drives the page of one browsing session: it runs the queries and
// records what the session should see.
type Browser interface {
	// View returns the current page state of a session. Unknown sessions get an empty view.
	View(ctx context.Context, sessionID string) (models.View, error)

	// SearchAndDisplay searches for shows, hides the episodes area and replaces the show list.
	SearchAndDisplay(ctx context.Context, sessionID, term string) (models.View, error)

	// EpisodesAndDisplay fetches the episodes of a show and shows them in the episodes area.
	EpisodesAndDisplay(ctx context.Context, sessionID string, showID int) (models.View, error)

	// Forget drops the page state of a session.
	Forget(ctx context.Context, sessionID string) error
}

// ViewStore persists page state per session.
type ViewStore interface {
	Load(sessionID string) (models.View, bool)
	Save(sessionID string, view models.View) error
	Delete(sessionID string)
}
