package store

import "errors"

var (
	// ErrNotFound is returned when no document matches the filter.
	ErrNotFound = errors.New("store: document not found")

	// ErrDuplicateKey is returned when an insert violates a unique
	// constraint (users.email).
	ErrDuplicateKey = errors.New("store: duplicate key")
)
