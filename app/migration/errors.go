package migration

import "errors"

var (
	// ErrNoConnector is returned when a job is created without a connector.
	ErrNoConnector = errors.New("migration connector is required")

	// ErrConnect is returned when the document store cannot be reached. No record is touched.
	ErrConnect = errors.New("failed to connect to customer store")

	// ErrHashPassword is returned when the default password cannot be hashed.
	ErrHashPassword = errors.New("failed to hash default password")

	// ErrScan is returned when reading customers fails.
	ErrScan = errors.New("failed to scan customers")

	// ErrPatchRecord is returned when updating a single customer fails.
	// The remaining customers are not processed; earlier updates are kept.
	ErrPatchRecord = errors.New("failed to migrate customer")

	// ErrAlreadyRan is returned when Run is called on a job that has already run.
	ErrAlreadyRan = errors.New("migration job already ran")

	// ErrInvalidResumeID is returned when the resume cursor is not a valid ObjectID.
	ErrInvalidResumeID = errors.New("invalid resume id")
)
