package apperrors

import (
	"fmt"
	"net/http"
)

// ErrNotFound represents an error when a requested resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// NewShowNotFoundError creates a specific error for an unknown show ID.
func NewShowNotFoundError(showID int) *ErrNotFound {
	return &ErrNotFound{
		Resource: "show",
		ID:       showID,
	}
}

// ErrUpstreamStatus is returned when the metadata API answers with a non-2xx status.
type ErrUpstreamStatus struct {
	Endpoint   string
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *ErrUpstreamStatus) Error() string {
	msg := fmt.Sprintf("%s returned status %d", e.Endpoint, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Is allows for error checking with errors.Is().
// A 404 also matches ErrNotFound.
func (e *ErrUpstreamStatus) Is(target error) bool {
	switch target.(type) {
	case *ErrUpstreamStatus:
		return true
	case *ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// ErrMalformedResponse is returned when the response body does not have the
// expected JSON shape.
type ErrMalformedResponse struct {
	Endpoint string
	Err      error
}

// Error implements the error interface.
func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.Endpoint, e.Err)
}

// Unwrap returns the decoding error.
func (e *ErrMalformedResponse) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrMalformedResponse) Is(target error) bool {
	_, ok := target.(*ErrMalformedResponse)
	return ok
}
