package grpc

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/showfinder/showfinder/internal/apperrors"
	"github.com/showfinder/showfinder/internal/client"
)

// errorDomain is the ErrorInfo domain of every error returned by the service.
const errorDomain = "showfinder"

// Reasons carried in errdetails.ErrorInfo.
const (
	ReasonInvalidShowID       = "INVALID_SHOW_ID"
	ReasonShowNotFound        = "SHOW_NOT_FOUND"
	ReasonUpstreamStatus      = "UPSTREAM_STATUS"
	ReasonUpstreamMalformed   = "UPSTREAM_MALFORMED_RESPONSE"
	ReasonUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ReasonCanceled            = "CANCELED"
	ReasonInternal            = "INTERNAL"
)

// toStatus converts a client error to a gRPC status error with an ErrorInfo detail.
func toStatus(err error, msg string) error {
	code, reason := classify(err)
	return newStatus(code, reason, msg+": "+err.Error())
}

func classify(err error) (codes.Code, string) {
	var statusErr *apperrors.ErrUpstreamStatus
	switch {
	case errors.Is(err, &apperrors.ErrNotFound{}):
		return codes.NotFound, ReasonShowNotFound
	case errors.Is(err, context.Canceled):
		return codes.Canceled, ReasonCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded, ReasonUpstreamUnavailable
	case client.IsCircuitOpen(err):
		return codes.Unavailable, ReasonUpstreamUnavailable
	case errors.As(err, &statusErr):
		return codes.Unavailable, ReasonUpstreamStatus
	case errors.Is(err, &apperrors.ErrMalformedResponse{}):
		return codes.Internal, ReasonUpstreamMalformed
	case client.IsTransportError(err):
		return codes.Unavailable, ReasonUpstreamUnavailable
	default:
		return codes.Internal, ReasonInternal
	}
}

func newStatus(code codes.Code, reason, msg string) error {
	st := status.New(code, msg)
	detailed, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason: reason,
		Domain: errorDomain,
	})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

// ErrorReason returns the ErrorInfo reason attached to a status error, if any.
func ErrorReason(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info.GetReason()
		}
	}
	return ""
}
