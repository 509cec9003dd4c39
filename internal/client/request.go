package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"time"

	"moul.io/http2curl"

	"github.com/showfinder/showfinder/internal/apperrors"
	"github.com/showfinder/showfinder/internal/config"
	"github.com/showfinder/showfinder/internal/metrics"
	"github.com/showfinder/showfinder/internal/parser"
)

const (
	endpointSearch   = "search"
	endpointEpisodes = "episodes"

	// maxErrorBody bounds how much of a non-2xx body ends up in the error message.
	maxErrorBody = 512
)

// fetchList performs one GET against the API, guarded by the executor, and
// decodes the body with p.
func fetchList[T any](ctx context.Context, c *client, endpoint, url string, p parser.Parser[T]) ([]T, error) {
	start := time.Now()
	var items []T

	err := c.executor.run(func() error {
		var err error
		items, err = getList(ctx, c, endpoint, url, p)
		return err
	})

	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, outcome(err)).Inc()

	if err != nil {
		return nil, err
	}
	return items, nil
}

func getList[T any](ctx context.Context, c *client, endpoint, url string, p parser.Parser[T]) ([]T, error) {
	logger := config.GetLogger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	if e := logger.Debug(); e.Enabled() {
		if cmd, err := http2curl.GetCurlCommand(req); err == nil {
			e.Str("endpoint", endpoint).Str("curl", cmd.String()).Msg("Sending TVmaze request")
		} else {
			e.Discard()
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &apperrors.ErrUpstreamStatus{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	body, err := parser.NewUTF8Reader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, &apperrors.ErrMalformedResponse{Endpoint: endpoint, Err: err}
	}

	items, err := p.Parse(body)
	if err != nil {
		// A broken connection mid-body is a transport failure, not a bad payload.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &apperrors.ErrMalformedResponse{Endpoint: endpoint, Err: err}
	}
	return items, nil
}

// coalesce runs fn, sharing one in-flight call between identical concurrent
// queries when the client was configured to. The shared call is detached from
// the first caller's cancellation; each waiter still honours its own ctx.
// Callers receive their own copy of the result.
func coalesce[T any](ctx context.Context, c *client, endpoint, key string, fn func(context.Context) ([]T, error)) ([]T, error) {
	if c.inflight == nil {
		return fn(ctx)
	}

	ch := c.inflight.DoChan(key, func() (interface{}, error) {
		return fn(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		if res.Shared {
			metrics.CoalescedRequestsTotal.WithLabelValues(endpoint).Inc()
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]T)), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// outcome labels an upstream call for metrics.
func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, &apperrors.ErrUpstreamStatus{}):
		return "status"
	case errors.Is(err, &apperrors.ErrMalformedResponse{}):
		return "malformed"
	case IsCircuitOpen(err):
		return "circuit_open"
	default:
		return "error"
	}
}
