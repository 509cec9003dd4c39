package parser

import (
	"fmt"
	"io"
	"mime"

	"golang.org/x/net/html/charset"
)

// NewUTF8Reader wraps body so that it yields UTF-8, honouring the charset
// parameter of contentType. Bodies without a declared charset, or declared as
// UTF-8, are returned unchanged since JSON defaults to UTF-8.
func NewUTF8Reader(body io.Reader, contentType string) (io.Reader, error) {
	if contentType == "" {
		return body, nil
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return body, nil
	}
	label := params["charset"]
	if label == "" {
		return body, nil
	}

	enc, name := charset.Lookup(label)
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	if name == "utf-8" {
		return body, nil
	}
	return enc.NewDecoder().Reader(body), nil
}
