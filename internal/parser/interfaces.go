package parser

import "io"

// Parser decodes a TVmaze JSON response body into flat records.
type Parser[T any] interface {
	Parse(body io.Reader) ([]T, error)
}
