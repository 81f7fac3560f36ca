package models

import "errors"

// Errors shared between the storage/transport adapters and the services.
var (
	// ErrDuplicateKey is returned when an insert violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrUpstreamStatus is returned when an external API answers with a non-success status.
	ErrUpstreamStatus = errors.New("unexpected upstream status")
)
