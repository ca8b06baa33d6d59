package session

import "errors"

var (
	// ErrNotFound is returned by a Store when a key does not exist.
	ErrNotFound = errors.New("session key not found")

	// ErrNoStore is returned when a manager is created without a store.
	ErrNoStore = errors.New("session store is required")

	// ErrLoadSession is returned when reading the session from the store fails.
	ErrLoadSession = errors.New("failed to load session")

	// ErrSaveSession is returned when writing the session to the store fails.
	ErrSaveSession = errors.New("failed to save session")

	// ErrClearSession is returned when removing the session from the store fails.
	ErrClearSession = errors.New("failed to clear session")

	// ErrMissingToken is returned when saving a session without a token.
	ErrMissingToken = errors.New("session token is required")

	// ErrMalformedToken is returned when a token cannot be decoded as a JWT.
	ErrMalformedToken = errors.New("malformed session token")
)
