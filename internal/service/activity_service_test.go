package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/chronolog/internal/domain"
	"github.com/alexanderramin/chronolog/internal/repository"
	"github.com/alexanderramin/chronolog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepos(t *testing.T) (*repository.StoreEntryRepo, *repository.StoreActivityRepo, *repository.StoreReflectionRepo) {
	t.Helper()
	return testutil.NewTestRepos(t)
}

func TestActivityAdd_TrimsAndPersists(t *testing.T) {
	_, actRepo, _ := setupRepos(t)
	svc := NewActivityService(actRepo, nil)
	ctx := context.Background()

	created, err := svc.Add(ctx, "  Writing  ")
	require.NoError(t, err)
	assert.Equal(t, "Writing", created.Name)
	assert.NotEmpty(t, created.ID)
	assert.NotZero(t, created.CreatedAt)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, *created, listed[0])
}

func TestActivityAdd_RejectsEmptyName(t *testing.T) {
	_, actRepo, _ := setupRepos(t)
	svc := NewActivityService(actRepo, nil)

	_, err := svc.Add(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyName)
}

func TestActivityAdd_BumpsIDOnCollision(t *testing.T) {
	_, actRepo, _ := setupRepos(t)
	svc := NewActivityService(actRepo, nil).(*activityService)
	svc.now = fixedClock(t, "2026-03-10T09:00:00Z")
	ctx := context.Background()

	first, err := svc.Add(ctx, "One")
	require.NoError(t, err)
	second, err := svc.Add(ctx, "Two")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID, "same-millisecond ids must not collide")
}

func TestActivityRename_UpdatesRegistry(t *testing.T) {
	_, actRepo, _ := setupRepos(t)
	svc := NewActivityService(actRepo, nil)
	ctx := context.Background()

	created, err := svc.Add(ctx, "Writing")
	require.NoError(t, err)

	require.NoError(t, svc.Rename(ctx, created.ID, "Deep Writing"))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deep Writing", got.Name)
}

func TestActivityRename_UnknownID(t *testing.T) {
	_, actRepo, _ := setupRepos(t)
	svc := NewActivityService(actRepo, nil)

	err := svc.Rename(context.Background(), "nope", "Name")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestActivityDelete_LeavesEntriesAlone(t *testing.T) {
	entryRepo, actRepo, _ := setupRepos(t)
	svc := NewActivityService(actRepo, nil)
	entries := NewEntryService(entryRepo, actRepo, nil)
	ctx := context.Background()

	created, err := svc.Add(ctx, "Writing")
	require.NoError(t, err)

	start := testutil.LocalDay(2026, time.March, 10, 9*time.Hour)
	_, err = entries.Record(ctx, "Writing", domain.LinkTo(created.ID), start, start.Add(30*time.Minute))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	remaining, err := entries.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, domain.LinkTo(created.ID), remaining[0].Link, "the dangling link is kept, not rewritten")
}

func TestActivityDelete_UnknownID(t *testing.T) {
	_, actRepo, _ := setupRepos(t)
	svc := NewActivityService(actRepo, nil)

	err := svc.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
