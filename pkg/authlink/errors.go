package authlink

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotConfigured is returned, before any request is sent, when the client id,
// client secret or redirect URI is empty.
var ErrNotConfigured = errors.New("authlink: client id, client secret and redirect uri must be set before calling the api")

// TransportError wraps a network-layer failure (DNS, refused connection, TLS,
// cancelled context). The original error is available through Unwrap.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("authlink: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError describes an error reported by the Authlink API itself. It is only
// produced on request, through Result.Err.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "authlink: api error (status %d)", e.StatusCode)
	if e.Code != "" {
		b.WriteString(": ")
		b.WriteString(e.Code)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}
