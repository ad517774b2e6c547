package testutil

import (
	"testing"

	"github.com/alexanderramin/chronolog/internal/repository"
	"github.com/alexanderramin/chronolog/internal/storage"
)

// NewTestStore creates an in-memory SQLite store, closed when the test
// completes.
func NewTestStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	store, err := storage.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// NewTestRepos creates the three document repos over a fresh in-memory
// store.
func NewTestRepos(t *testing.T) (*repository.StoreEntryRepo, *repository.StoreActivityRepo, *repository.StoreReflectionRepo) {
	t.Helper()
	store := NewTestStore(t)
	return repository.NewStoreEntryRepo(store),
		repository.NewStoreActivityRepo(store),
		repository.NewStoreReflectionRepo(store)
}
