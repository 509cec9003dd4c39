package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/showfinder/showfinder/internal/apperrors"
	"github.com/showfinder/showfinder/internal/models"
	"github.com/showfinder/showfinder/internal/store"
)

// mockClient implements client.Client for testing
type mockClient struct {
	searchShowsFunc func(ctx context.Context, term string) ([]models.Show, error)
	getEpisodesFunc func(ctx context.Context, showID int) ([]models.Episode, error)
}

func (m *mockClient) SearchShows(ctx context.Context, term string) ([]models.Show, error) {
	if m.searchShowsFunc != nil {
		return m.searchShowsFunc(ctx, term)
	}
	return []models.Show{}, nil
}

func (m *mockClient) GetEpisodes(ctx context.Context, showID int) ([]models.Episode, error) {
	if m.getEpisodesFunc != nil {
		return m.getEpisodesFunc(ctx, showID)
	}
	return []models.Episode{}, nil
}

func (m *mockClient) Close() error {
	return nil
}

func newTestBrowser(t *testing.T, c *mockClient) (*DefaultBrowser, ViewStore) {
	t.Helper()
	s, err := store.New("memory", store.ProviderConfig{Size: 10, TTL: time.Hour})
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	views := NewViewStore(s)
	return NewBrowser(c, views), views
}

var bletchley = models.Show{
	ID:      1767,
	Name:    "The Bletchley Circle",
	Summary: "<p>Four women...</p>",
	Image:   "http://static.tvmaze.com/uploads/images/medium_portrait/147/369403.jpg",
}

func TestBrowser_View_UnknownSessionIsEmpty(t *testing.T) {
	b, _ := newTestBrowser(t, &mockClient{})

	view, err := b.View(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if view.Term != "" || len(view.Shows) != 0 || view.EpisodesVisible {
		t.Errorf("Expected empty view, got %+v", view)
	}
}

func TestBrowser_SearchAndDisplay(t *testing.T) {
	var gotTerm string
	b, views := newTestBrowser(t, &mockClient{
		searchShowsFunc: func(_ context.Context, term string) ([]models.Show, error) {
			gotTerm = term
			return []models.Show{bletchley}, nil
		},
	})

	view, err := b.SearchAndDisplay(context.Background(), "s1", "bletchley")
	if err != nil {
		t.Fatalf("SearchAndDisplay failed: %v", err)
	}
	if gotTerm != "bletchley" {
		t.Errorf("Expected term to be passed through, got %q", gotTerm)
	}
	if view.Term != "bletchley" || len(view.Shows) != 1 || view.Shows[0] != bletchley {
		t.Errorf("Unexpected view: %+v", view)
	}
	if view.EpisodesVisible {
		t.Error("Expected episodes area to be hidden after a search")
	}

	stored, ok := views.Load("s1")
	if !ok {
		t.Fatal("Expected view to be saved")
	}
	if stored.Term != "bletchley" || len(stored.Shows) != 1 {
		t.Errorf("Unexpected stored view: %+v", stored)
	}
}

func TestBrowser_SearchHidesPreviousEpisodes(t *testing.T) {
	b, _ := newTestBrowser(t, &mockClient{
		searchShowsFunc: func(_ context.Context, _ string) ([]models.Show, error) {
			return []models.Show{bletchley}, nil
		},
		getEpisodesFunc: func(_ context.Context, _ int) ([]models.Episode, error) {
			return []models.Episode{{ID: 1, Name: "Pilot", Season: 1, Number: 1}}, nil
		},
	})
	ctx := context.Background()

	if _, err := b.SearchAndDisplay(ctx, "s1", "a"); err != nil {
		t.Fatal(err)
	}
	view, err := b.EpisodesAndDisplay(ctx, "s1", bletchley.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !view.EpisodesVisible || len(view.Episodes) != 1 {
		t.Fatalf("Expected visible episodes, got %+v", view)
	}
	if len(view.Shows) != 1 {
		t.Errorf("Expected show list to be kept, got %d shows", len(view.Shows))
	}
	if sel, ok := view.SelectedShow(); !ok || sel.ID != bletchley.ID {
		t.Errorf("Expected selected show %d, got %+v (ok=%v)", bletchley.ID, sel, ok)
	}

	view, err = b.SearchAndDisplay(ctx, "s1", "b")
	if err != nil {
		t.Fatal(err)
	}
	if view.EpisodesVisible {
		t.Error("Expected a new search to hide the episodes area")
	}
	if len(view.Episodes) != 0 {
		t.Errorf("Expected episodes to be cleared, got %d", len(view.Episodes))
	}
}

func TestBrowser_SearchErrorLeavesViewUnchanged(t *testing.T) {
	calls := 0
	b, _ := newTestBrowser(t, &mockClient{
		searchShowsFunc: func(_ context.Context, term string) ([]models.Show, error) {
			calls++
			if calls > 1 {
				return nil, &apperrors.ErrUpstreamStatus{Endpoint: "search", StatusCode: 503}
			}
			return []models.Show{bletchley}, nil
		},
	})
	ctx := context.Background()

	if _, err := b.SearchAndDisplay(ctx, "s1", "first"); err != nil {
		t.Fatal(err)
	}
	_, err := b.SearchAndDisplay(ctx, "s1", "second")
	if !errors.Is(err, &apperrors.ErrUpstreamStatus{}) {
		t.Fatalf("Expected ErrUpstreamStatus, got %v", err)
	}

	view, _ := b.View(ctx, "s1")
	if view.Term != "first" {
		t.Errorf("Expected view of the first search to remain, got term %q", view.Term)
	}
}

func TestBrowser_EpisodesNotFound(t *testing.T) {
	b, _ := newTestBrowser(t, &mockClient{
		getEpisodesFunc: func(_ context.Context, showID int) ([]models.Episode, error) {
			return nil, apperrors.NewShowNotFoundError(showID)
		},
	})

	_, err := b.EpisodesAndDisplay(context.Background(), "s1", 404404)
	if !errors.Is(err, &apperrors.ErrNotFound{}) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	view, _ := b.View(context.Background(), "s1")
	if view.EpisodesVisible {
		t.Error("Expected episodes area to stay hidden after a failed query")
	}
}

func TestBrowser_SessionsAreIsolated(t *testing.T) {
	b, _ := newTestBrowser(t, &mockClient{
		searchShowsFunc: func(_ context.Context, term string) ([]models.Show, error) {
			return []models.Show{{ID: len(term), Name: term, Image: "x"}}, nil
		},
	})
	ctx := context.Background()

	_, _ = b.SearchAndDisplay(ctx, "alice", "girls")
	_, _ = b.SearchAndDisplay(ctx, "bob", "lost")

	alice, _ := b.View(ctx, "alice")
	bob, _ := b.View(ctx, "bob")
	if alice.Term != "girls" || bob.Term != "lost" {
		t.Errorf("Expected isolated sessions, got alice=%q bob=%q", alice.Term, bob.Term)
	}
}

func TestBrowser_LastCompletedSearchWins(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	b, _ := newTestBrowser(t, &mockClient{
		searchShowsFunc: func(_ context.Context, term string) ([]models.Show, error) {
			if term == "slow" {
				close(started)
				<-release
			}
			return []models.Show{{ID: 1, Name: term, Image: "x"}}, nil
		},
	})
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = b.SearchAndDisplay(ctx, "s1", "slow")
	}()
	<-started

	if _, err := b.SearchAndDisplay(ctx, "s1", "fast"); err != nil {
		t.Fatal(err)
	}
	close(release)
	wg.Wait()

	view, _ := b.View(ctx, "s1")
	if view.Term != "slow" {
		t.Errorf("Expected the last completed search to control the view, got %q", view.Term)
	}
}

func TestBrowser_Forget(t *testing.T) {
	b, _ := newTestBrowser(t, &mockClient{})
	ctx := context.Background()

	_, _ = b.SearchAndDisplay(ctx, "s1", "x")
	if err := b.Forget(ctx, "s1"); err != nil {
		t.Fatal(err)
	}
	view, _ := b.View(ctx, "s1")
	if view.Term != "" {
		t.Errorf("Expected forgotten session to be empty, got %+v", view)
	}
}

func TestViewStore_DiscardsUndecodableView(t *testing.T) {
	s, _ := store.New("memory", store.ProviderConfig{Size: 10, TTL: time.Hour})
	defer s.Close()
	views := NewViewStore(s)

	s.Set(viewKeyPrefix+"s1", []byte("{not json"))
	if _, ok := views.Load("s1"); ok {
		t.Error("Expected undecodable view to be treated as missing")
	}
	if s.Len() != 0 {
		t.Errorf("Expected undecodable view to be deleted, store has %d entries", s.Len())
	}
}
