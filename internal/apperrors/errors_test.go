package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrNotFound_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      *ErrNotFound
		expected string
	}{
		{
			name:     "with string ID",
			err:      &ErrNotFound{Resource: "show", ID: "abc"},
			expected: "show with ID abc not found",
		},
		{
			name:     "with int ID",
			err:      NewShowNotFoundError(42),
			expected: "show with ID 42 not found",
		},
		{
			name:     "with nil ID",
			err:      NewNotFoundError("show", nil),
			expected: "show not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrNotFound_IsThroughWrapping(t *testing.T) {
	t.Parallel()
	wrapped := fmt.Errorf("get episodes: %w", NewShowNotFoundError(7))
	if !errors.Is(wrapped, &ErrNotFound{}) {
		t.Error("Expected wrapped ErrNotFound to match")
	}
	if errors.Is(wrapped, &ErrUpstreamStatus{}) {
		t.Error("ErrNotFound should not match ErrUpstreamStatus")
	}
}

func TestErrUpstreamStatus_Error(t *testing.T) {
	t.Parallel()
	err := &ErrUpstreamStatus{Endpoint: "search", StatusCode: 500}
	if got := err.Error(); got != "search returned status 500" {
		t.Errorf("Error() = %q", got)
	}

	err.Body = "boom"
	if got := err.Error(); got != "search returned status 500: boom" {
		t.Errorf("Error() = %q", got)
	}
}

func TestErrUpstreamStatus_Is(t *testing.T) {
	t.Parallel()
	notFound := fmt.Errorf("wrap: %w", &ErrUpstreamStatus{Endpoint: "episodes", StatusCode: http.StatusNotFound})
	if !errors.Is(notFound, &ErrUpstreamStatus{}) {
		t.Error("Expected match on ErrUpstreamStatus")
	}
	if !errors.Is(notFound, &ErrNotFound{}) {
		t.Error("Expected 404 to match ErrNotFound")
	}

	serverErr := &ErrUpstreamStatus{Endpoint: "episodes", StatusCode: http.StatusBadGateway}
	if errors.Is(serverErr, &ErrNotFound{}) {
		t.Error("Expected 502 not to match ErrNotFound")
	}
	if errors.Is(serverErr, &ErrMalformedResponse{}) {
		t.Error("Expected ErrUpstreamStatus not to match ErrMalformedResponse")
	}
}

func TestErrMalformedResponse(t *testing.T) {
	t.Parallel()
	var syntaxErr *json.SyntaxError
	decodeErr := json.Unmarshal([]byte("not json"), &struct{}{})
	err := fmt.Errorf("search: %w", &ErrMalformedResponse{Endpoint: "search", Err: decodeErr})

	if !errors.Is(err, &ErrMalformedResponse{}) {
		t.Error("Expected match on ErrMalformedResponse")
	}
	if !errors.As(err, &syntaxErr) {
		t.Error("Expected the decode error to be reachable through Unwrap")
	}
	if errors.Is(err, &ErrUpstreamStatus{}) {
		t.Error("Expected ErrMalformedResponse not to match ErrUpstreamStatus")
	}
}
