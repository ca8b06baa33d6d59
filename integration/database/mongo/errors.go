package mongo

import "errors"

// Domain-specific MongoDB errors. Use errors.Is() to check error types.
var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
	ErrInvalidConnectionURL   = errors.New("invalid mongo connection url")
	ErrMissingDatabase        = errors.New("mongo connection url has no database name")
)
