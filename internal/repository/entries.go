package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/alexanderramin/chronolog/internal/domain"
	"github.com/alexanderramin/chronolog/internal/storage"
)

// EntryMutator transforms the full entry list inside a single atomic
// read-modify-write cycle. Returning an error aborts with nothing written.
type EntryMutator func(entries []domain.TimeEntry) ([]domain.TimeEntry, error)

// EntryRepo persists the append-only time entry log as one JSON document.
type EntryRepo interface {
	Load(ctx context.Context) ([]domain.TimeEntry, error)
	Append(ctx context.Context, e domain.TimeEntry) error
	Mutate(ctx context.Context, fn EntryMutator) error
	Replace(ctx context.Context, entries []domain.TimeEntry) error
}

// StoreEntryRepo implements EntryRepo over a storage.Store. It keeps an
// in-memory snapshot of the decoded document, invalidated on every
// mutation, so summary reads do not re-parse the document per call.
type StoreEntryRepo struct {
	store storage.Store

	mu     sync.Mutex
	cache  []domain.TimeEntry
	cached bool
}

// NewStoreEntryRepo creates an entry repo over the given store.
func NewStoreEntryRepo(store storage.Store) *StoreEntryRepo {
	return &StoreEntryRepo{store: store}
}

func (r *StoreEntryRepo) Load(ctx context.Context) ([]domain.TimeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached {
		return copyEntries(r.cache), nil
	}

	data, found, err := r.store.Get(ctx, storage.KeyTimeEntries)
	if err != nil {
		return nil, fmt.Errorf("loading entries: %w", err)
	}
	if !found {
		r.cache, r.cached = nil, true
		return nil, nil
	}

	entries, err := decodeEntries(data)
	if err != nil {
		return nil, err
	}
	r.cache, r.cached = entries, true
	return copyEntries(entries), nil
}

func (r *StoreEntryRepo) Append(ctx context.Context, e domain.TimeEntry) error {
	return r.Mutate(ctx, func(entries []domain.TimeEntry) ([]domain.TimeEntry, error) {
		return append(entries, e), nil
	})
}

func (r *StoreEntryRepo) Mutate(ctx context.Context, fn EntryMutator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.store.Update(ctx, storage.KeyTimeEntries, func(old []byte, found bool) ([]byte, error) {
		var entries []domain.TimeEntry
		if found {
			var err error
			entries, err = decodeEntries(old)
			if err != nil {
				return nil, err
			}
		}
		next, err := fn(entries)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(next)
		if err != nil {
			return nil, fmt.Errorf("encoding entries: %w", err)
		}
		r.cache, r.cached = next, true
		return data, nil
	})
	if err != nil {
		r.cached = false
		return err
	}
	return nil
}

// Replace overwrites the whole document unconditionally. This is the one
// path allowed to write over a corrupt document (explicit user import).
func (r *StoreEntryRepo) Replace(ctx context.Context, entries []domain.TimeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding entries: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyTimeEntries, data); err != nil {
		r.cached = false
		return err
	}
	r.cache, r.cached = copyEntries(entries), true
	return nil
}

func decodeEntries(data []byte) ([]domain.TimeEntry, error) {
	var entries []domain.TimeEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding entries: %w (%v)", ErrCorrupt, err)
	}
	return entries, nil
}

func copyEntries(entries []domain.TimeEntry) []domain.TimeEntry {
	if entries == nil {
		return nil
	}
	out := make([]domain.TimeEntry, len(entries))
	copy(out, entries)
	return out
}
