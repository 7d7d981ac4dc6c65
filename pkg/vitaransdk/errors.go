package vitaransdk

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized is returned when a token-gated call comes back with
	// success=false, meaning the token is missing, invalid or expired.
	ErrUnauthorized = errors.New("vitaransdk: unauthorized")

	// ErrPaymentFailed is returned when create-order answers status=error.
	ErrPaymentFailed = errors.New("vitaransdk: payment order failed")

	// ErrNoToken is returned before any request is made when the caller has
	// no session token.
	ErrNoToken = errors.New("vitaransdk: no session token")
)

// APIError is a success=false answer carrying a message for the user.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("vitaransdk: request failed (HTTP %d)", e.StatusCode)
	}
	return "vitaransdk: " + e.Message
}

// StatusError is a non-2xx answer. The server uses those only for internal
// failures, so callers usually treat it like a network error.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("vitaransdk: HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}
