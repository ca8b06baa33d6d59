package router

import "errors"

var (
	// ErrRouteNotFound is returned when navigating to a path missing from the table.
	ErrRouteNotFound = errors.New("route not found")

	// ErrTooManyRedirects is returned when guard redirects do not settle.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrDuplicateRoute is returned when a table registers the same path twice.
	ErrDuplicateRoute = errors.New("duplicate route path")

	// ErrInvalidRoute is returned for routes with an empty path or aliases to unknown paths.
	ErrInvalidRoute = errors.New("invalid route")

	// ErrNoSessions is returned when a navigator is created without a session manager.
	ErrNoSessions = errors.New("session manager is required")
)
