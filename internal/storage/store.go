// Package storage provides the key-value document store the rest of the
// app persists through. Documents are whole JSON blobs addressed by a fixed
// logical key; there are no partial updates. Mutations go through Update,
// the single-writer read-modify-write primitive, so two racing edits on the
// same key cannot clobber each other.
package storage

import "context"

// Document keys.
const (
	KeyTimeEntries = "timeEntries"
	KeyActivities  = "activities"
	KeyReflections = "weeklyReflections"
)

// UpdateFunc receives the current document (found reports whether the key
// exists) and returns the replacement document. Returning an error aborts
// the update with nothing written.
type UpdateFunc func(old []byte, found bool) ([]byte, error)

// Store is the persistence contract. Backends serialize Update calls per
// key: the read and the write of one Update are atomic with respect to
// other writers.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Update(ctx context.Context, key string, fn UpdateFunc) error
	Close() error
}
