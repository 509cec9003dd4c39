package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/showfinder/showfinder/internal/config"
	"github.com/showfinder/showfinder/internal/metrics"
	"github.com/showfinder/showfinder/internal/render"
)

func parseShowID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, errInvalidShowID
	}
	return id, nil
}

// handlePage renders the page for the caller's session.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	id, err := s.sessionID(w, r)
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	view, err := s.browser.View(r.Context(), id)
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	s.renderPage(w, http.StatusOK, render.Page{View: view})
}

// handleSearch runs a show search for the session and redirects back to the page.
// The term is passed on exactly as submitted.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	id, err := s.sessionID(w, r)
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}

	if _, err := s.browser.SearchAndDisplay(r.Context(), id, r.PostForm.Get("term")); err != nil {
		s.failWithPage(w, r, id, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleEpisodes loads the episodes of a show into the session's page.
func (s *Server) handleEpisodes(w http.ResponseWriter, r *http.Request) {
	id, err := s.sessionID(w, r)
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	showID, err := parseShowID(r)
	if err != nil {
		s.failWithPage(w, r, id, err)
		return
	}

	if _, err := s.browser.EpisodesAndDisplay(r.Context(), id, showID); err != nil {
		s.failWithPage(w, r, id, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleReset clears the session's page.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	id, err := s.sessionID(w, r)
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	if err := s.browser.Forget(r.Context(), id); err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleAPISearch(w http.ResponseWriter, r *http.Request) {
	shows, err := s.client.SearchShows(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.failJSON(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shows)
}

func (s *Server) handleAPIEpisodes(w http.ResponseWriter, r *http.Request) {
	showID, err := parseShowID(r)
	if err != nil {
		s.failJSON(w, r, err)
		return
	}
	episodes, err := s.client.GetEpisodes(r.Context(), showID)
	if err != nil {
		s.failJSON(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, episodes)
}

// failWithPage re-renders the session's current page with an error message.
func (s *Server) failWithPage(w http.ResponseWriter, r *http.Request, sessionID string, err error) {
	status := statusFor(err)
	report(r, status, err)

	view, _ := s.browser.View(r.Context(), sessionID)
	s.renderPage(w, status, render.Page{View: view, Error: messageFor(status)})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	report(r, status, err)
	http.Error(w, http.StatusText(status), status)
}

func (s *Server) failJSON(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	report(r, status, err)
	writeJSON(w, status, map[string]string{"error": messageFor(status)})
}

func (s *Server) renderPage(w http.ResponseWriter, status int, page render.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := s.renderer.Page(w, page); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Msg("Failed to render page")
		metrics.PageRendersTotal.WithLabelValues("error").Inc()
		return
	}
	metrics.PageRendersTotal.WithLabelValues(strconv.Itoa(status)).Inc()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
