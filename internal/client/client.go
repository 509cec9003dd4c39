package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/showfinder/showfinder/internal/config"
	"github.com/showfinder/showfinder/internal/models"
	"github.com/showfinder/showfinder/internal/parser"
)

// Client defines the interface for querying the TVmaze API
type Client interface {
	// SearchShows returns the shows matching term, in the order TVmaze ranks them.
	SearchShows(ctx context.Context, term string) ([]models.Show, error)
	// GetEpisodes returns every episode of a show, in the order TVmaze lists them.
	GetEpisodes(ctx context.Context, showID int) ([]models.Episode, error)

	// Close releases any resources held by the client (e.g., idle connections).
	Close() error
}

// client implements the Client interface
type client struct {
	httpClient    *http.Client
	baseURL       string
	userAgent     string
	showParser    parser.Parser[models.Show]
	episodeParser parser.Parser[models.Episode]
	executor      *executor

	// inflight is nil unless identical concurrent queries should share one request.
	inflight *singleflight.Group
}

// NewClient creates a new client instance with proxy configuration if provided
func NewClient(cfg *config.Config) Client {
	logger := config.GetLogger()
	timeout := config.ParseDuration(cfg.ClientTimeout, 30*time.Second, "client_timeout")

	// Clone DefaultTransport to preserve its pooling and HTTP/2 settings
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: newCompressionTransport(baseTransport),
	}

	baseURL := cfg.TVMazeBaseURL
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}

	c := &client{
		httpClient:    httpClient,
		baseURL:       baseURL,
		userAgent:     userAgent,
		showParser:    parser.NewShowParser(cfg.DefaultImageURL),
		episodeParser: parser.NewEpisodeParser(),
		executor: newExecutor(
			cfg.CircuitBreaker.FailureThreshold,
			config.ParseDuration(cfg.CircuitBreaker.Delay, 30*time.Second, "circuit_breaker.delay"),
		),
	}
	if cfg.CoalesceRequests {
		c.inflight = &singleflight.Group{}
	}

	logger.Debug().
		Str("base_url", baseURL).
		Dur("timeout", timeout).
		Bool("coalesce_requests", cfg.CoalesceRequests).
		Uint("breaker_threshold", cfg.CircuitBreaker.FailureThreshold).
		Msg("TVmaze client configured")

	return c
}

// Close releases idle connections held by the HTTP client.
func (c *client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
