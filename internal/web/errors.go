package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"

	"github.com/showfinder/showfinder/internal/apperrors"
	"github.com/showfinder/showfinder/internal/config"
)

// errInvalidShowID is returned for show IDs that are not positive integers.
var errInvalidShowID = errors.New("show id must be a positive integer")

// statusFor maps a query error to the HTTP status reported to the caller.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errInvalidShowID):
		return http.StatusBadRequest
	case errors.Is(err, &apperrors.ErrNotFound{}):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled):
		// client went away; the status is never seen
		return 499
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

// messageFor returns the user-facing text for a status from statusFor.
func messageFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Invalid show id."
	case http.StatusNotFound:
		return "Show not found."
	case http.StatusGatewayTimeout:
		return "TVmaze took too long to answer, please try again."
	default:
		return "TVmaze is not reachable right now, please try again."
	}
}

// report logs err and sends it to Sentry when it points at a server-side failure.
func report(r *http.Request, status int, err error) {
	logger := config.GetLogger()
	if status < http.StatusInternalServerError {
		logger.Debug().Err(err).Int("status", status).Str("path", r.URL.Path).Msg("Request failed")
		return
	}

	logger.Error().Err(err).Int("status", status).Str("path", r.URL.Path).Msg("Request failed")
	if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
		hub.CaptureException(err)
	}
}
