package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/circuitbreaker"

	"github.com/showfinder/showfinder/internal/apperrors"
	"github.com/showfinder/showfinder/internal/config"
)

// executor runs upstream calls through the configured failsafe policies.
// Only a circuit breaker is ever configured: failed calls are never retried.
type executor struct {
	policies []failsafe.Policy[any]
}

// newExecutor builds an executor. A zero threshold disables the breaker and
// calls run unguarded.
func newExecutor(threshold uint, delay time.Duration) *executor {
	if threshold == 0 {
		return &executor{}
	}

	logger := config.GetLogger()
	breaker := circuitbreaker.NewBuilder[any]().
		HandleIf(func(_ any, err error) bool {
			return isUpstreamFailure(err)
		}).
		WithFailureThreshold(threshold).
		WithDelay(delay).
		OnOpen(func(circuitbreaker.StateChangedEvent) {
			logger.Warn().Dur("delay", delay).Msg("TVmaze circuit breaker opened")
		}).
		OnClose(func(circuitbreaker.StateChangedEvent) {
			logger.Info().Msg("TVmaze circuit breaker closed")
		}).
		Build()

	return &executor{policies: []failsafe.Policy[any]{breaker}}
}

func (e *executor) run(fn func() error) error {
	if len(e.policies) == 0 {
		return fn()
	}
	return failsafe.With(e.policies...).Run(fn)
}

// isUpstreamFailure reports whether err says something about the health of
// the API: transport failures and 5xx answers. Client-side cancellation,
// 4xx answers and malformed bodies do not count.
func isUpstreamFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var statusErr *apperrors.ErrUpstreamStatus
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= http.StatusInternalServerError
	}
	return !errors.Is(err, &apperrors.ErrMalformedResponse{})
}

// IsCircuitOpen reports whether err was caused by an open circuit breaker.
func IsCircuitOpen(err error) bool {
	return errors.Is(err, circuitbreaker.ErrOpen)
}

// IsTransportError reports whether err came from the HTTP round trip itself
// (DNS, connect, TLS, timeouts) rather than from a response.
func IsTransportError(err error) bool {
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
