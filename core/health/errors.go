package health

import "errors"

var (
	// ErrNotReady is returned when at least one probe fails.
	ErrNotReady = errors.New("service is not ready")

	// ErrNoProbe is reported for a check registered without a probe function.
	ErrNoProbe = errors.New("no probe configured")
)
