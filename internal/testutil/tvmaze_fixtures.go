package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
)

// ShowOptions describes one element of a /search/shows response.
type ShowOptions struct {
	ID      int
	Name    string
	Summary string
	Score   float64
	// MediumImage and OriginalImage fill the image object. When both are
	// empty the image field is null unless OmitImage is set, in which case
	// the key is absent altogether.
	MediumImage   string
	OriginalImage string
	OmitImage     bool
	// Extra holds additional show fields the API sends but the projection
	// must drop (e.g. "language", "genres").
	Extra map[string]any
}

// EpisodeOptions describes one element of a /shows/{id}/episodes response.
type EpisodeOptions struct {
	ID     int
	Name   string
	Season int
	Number int
	Extra  map[string]any
}

// GenerateSearchJSON builds a search response shaped like the TVmaze API.
func GenerateSearchJSON(shows []ShowOptions) string {
	results := make([]map[string]any, 0, len(shows))
	for i, s := range shows {
		show := map[string]any{
			"id":       s.ID,
			"name":     s.Name,
			"summary":  s.Summary,
			"url":      "https://www.tvmaze.com/shows/" + strconv.Itoa(s.ID),
			"language": "English",
			"genres":   []string{"Drama"},
		}
		if !s.OmitImage {
			if s.MediumImage == "" && s.OriginalImage == "" {
				show["image"] = nil
			} else {
				show["image"] = map[string]any{"medium": s.MediumImage, "original": s.OriginalImage}
			}
		}
		for k, v := range s.Extra {
			show[k] = v
		}

		score := s.Score
		if score == 0 {
			score = 1.0 - float64(i)*0.1
		}
		results = append(results, map[string]any{"score": score, "show": show})
	}
	return mustMarshal(results)
}

// GenerateEpisodesJSON builds an episode list response shaped like the TVmaze API.
func GenerateEpisodesJSON(episodes []EpisodeOptions) string {
	results := make([]map[string]any, 0, len(episodes))
	for _, e := range episodes {
		ep := map[string]any{
			"id":      e.ID,
			"name":    e.Name,
			"season":  e.Season,
			"number":  e.Number,
			"type":    "regular",
			"airdate": "2008-01-20",
			"runtime": 60,
			"summary": "<p>An episode.</p>",
		}
		for k, v := range e.Extra {
			ep[k] = v
		}
		results = append(results, ep)
	}
	return mustMarshal(results)
}

func mustMarshal(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// TVMazeServer is a fake TVmaze API. Handlers are keyed by search term and
// show ID; unknown IDs answer 404 like the real API.
type TVMazeServer struct {
	*httptest.Server

	Searches map[string]string
	Episodes map[int]string

	requests atomic.Int64
}

// NewTVMazeServer starts a fake API that is closed when the test ends.
func NewTVMazeServer(t *testing.T) *TVMazeServer {
	t.Helper()
	s := &TVMazeServer{
		Searches: map[string]string{},
		Episodes: map[int]string{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Requests returns how many requests the server has received.
func (s *TVMazeServer) Requests() int64 {
	return s.requests.Load()
}

func (s *TVMazeServer) serve(w http.ResponseWriter, r *http.Request) {
	s.requests.Add(1)

	if r.URL.Path == "/search/shows" {
		body, ok := s.Searches[r.URL.Query().Get("q")]
		if !ok {
			body = "[]"
		}
		writeJSON(w, body)
		return
	}

	if rest, ok := strings.CutPrefix(r.URL.Path, "/shows/"); ok {
		idStr, found := strings.CutSuffix(rest, "/episodes")
		if id, err := strconv.Atoi(idStr); found && err == nil {
			if body, ok := s.Episodes[id]; ok {
				writeJSON(w, body)
				return
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(`{"name":"Not Found","message":"","code":0,"status":404}`))
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
