package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches nothing.
	ErrNotFound = errors.New("not found")

	// ErrCorrupt is returned when a stored document fails to parse. Reads
	// fall back to an empty collection without re-persisting it; mutations
	// abort so a corrupt document is never silently replaced.
	ErrCorrupt = errors.New("stored document is corrupt")
)
