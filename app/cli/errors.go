package cli

import "errors"

var (
	// ErrSessionStore is returned when the session backend cannot be reached.
	ErrSessionStore = errors.New("failed to open session store")

	// ErrLoginFailed is returned when the backend rejects the credentials.
	ErrLoginFailed = errors.New("login failed")

	// ErrTokenRejected is returned by whoami --verify when the backend no longer accepts the token.
	ErrTokenRejected = errors.New("token rejected by server")
)
