package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoSessions is returned when a client is created without a session manager.
	ErrNoSessions = errors.New("session manager is required")

	// ErrInvalidBaseURL is returned when the configured base URL cannot be parsed.
	ErrInvalidBaseURL = errors.New("invalid api base url")

	// ErrNoToken is returned when a login response carries no token.
	ErrNoToken = errors.New("login response has no token")
)

const (
	serverErrorMessage  = "Server error"
	networkErrorMessage = "Network error - please check your connection"
	unknownErrorMessage = "Unknown error occurred"
)

// HTTPError is returned when the backend answered with a non-2xx status.
type HTTPError struct {
	Status  int
	Message string
	Header  http.Header
	Body    []byte
}

func newHTTPError(status int, header http.Header, body []byte) *HTTPError {
	return &HTTPError{
		Status:  status,
		Message: errorMessage(body),
		Header:  header,
		Body:    body,
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// IsUnauthorized reports whether the backend rejected the credentials.
func (e *HTTPError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// NetworkError is returned when the request was sent but no response arrived.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "api: no response: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RequestError is returned when the request could not be constructed.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return "api: invalid request: " + e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// errorMessage extracts "error", then "message" from a JSON error body.
func errorMessage(body []byte) string {
	var payload struct {
		Error   any `json:"error"`
		Message any `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return serverErrorMessage
	}
	if s, ok := payload.Error.(string); ok && s != "" {
		return s
	}
	if s, ok := payload.Message.(string); ok && s != "" {
		return s
	}
	return serverErrorMessage
}
