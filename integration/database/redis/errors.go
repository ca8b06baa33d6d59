package redis

import "errors"

var (
	// ErrEmptyConnectionURL is returned when REDIS_URL is blank.
	ErrEmptyConnectionURL = errors.New("empty redis connection URL")

	// ErrFailedToParseRedisConnString is returned for malformed connection URLs.
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")

	// ErrRedisNotReady is returned when PING keeps failing after every retry.
	ErrRedisNotReady = errors.New("redis did not answer within the retry budget")

	// ErrHealthcheckFailed wraps a failed readiness ping.
	ErrHealthcheckFailed = errors.New("redis healthcheck failed")
)
