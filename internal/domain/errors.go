package domain

import "errors"

// Sentinel errors shared by the store, repositories and services.
var (
	// ErrBadRequest is returned when a submission is missing required fields.
	ErrBadRequest = errors.New("bad request")
	// ErrNotFound is returned when a family is unknown to the store.
	ErrNotFound = errors.New("not found")
	// ErrStoreUnavailable wraps credential, network and API failures of the table store.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrPartialWrite is returned when persistence fails after at least one row was appended.
	ErrPartialWrite = errors.New("partial write")
	// ErrMissingCredentials is returned when the store cannot be configured.
	ErrMissingCredentials = errors.New("missing store credentials")
	// ErrSchemaMismatch is returned when a response variant does not match the active schema.
	ErrSchemaMismatch = errors.New("response schema mismatch")
)
