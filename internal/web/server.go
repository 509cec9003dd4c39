// Package web serves the show browser page and a small JSON API over HTTP.
package web

import (
	"fmt"
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"

	"github.com/showfinder/showfinder/internal/client"
	"github.com/showfinder/showfinder/internal/render"
	"github.com/showfinder/showfinder/internal/services"
)

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	browser  services.Browser
	client   client.Client
	renderer *render.Renderer
	sessions sessions.Store
}

// NewServer creates a Server. The browser drives the HTML page, the client
// backs the JSON API directly.
func NewServer(b services.Browser, c client.Client, r *render.Renderer, s sessions.Store) *Server {
	return &Server{
		browser:  b,
		client:   c,
		renderer: r,
		sessions: s,
	}
}

// Router returns the HTTP handler with all routes and middleware mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Post("/search", s.handleSearch)
	r.Post("/shows/{id}/episodes", s.handleEpisodes)
	r.Post("/reset", s.handleReset)

	r.Route("/api", func(r chi.Router) {
		r.Get("/shows", s.handleAPISearch)
		r.Get("/shows/{id}/episodes", s.handleAPIEpisodes)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	return r
}

// NewHTTPServer wraps handler in an http.Server listening on address:port.
func NewHTTPServer(address string, port int, handler http.Handler) *http.Server {
	if port == 0 {
		port = 8080
	}
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", address, port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
