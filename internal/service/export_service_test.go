package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/chronolog/internal/domain"
	"github.com/alexanderramin/chronolog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImport_RoundTrip(t *testing.T) {
	entryRepo, actRepo, reflRepo := setupRepos(t)
	activities := NewActivityService(actRepo, nil)
	entries := NewEntryService(entryRepo, actRepo, nil)
	reflections := NewReflectionService(reflRepo)
	exporter := NewExportService(entryRepo, actRepo, reflRepo, nil)
	ctx := context.Background()

	act, err := activities.Add(ctx, "Writing")
	require.NoError(t, err)
	start := testutil.LocalDay(2026, time.March, 10, 9*time.Hour)
	_, err = entries.Record(ctx, "Writing", domain.LinkTo(act.ID), start, start.Add(30*time.Minute))
	require.NoError(t, err)
	require.NoError(t, reflections.SetReflection(ctx, start, "Focused week."))

	var buf bytes.Buffer
	require.NoError(t, exporter.Export(ctx, &buf))

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Contains(t, doc, "version")
	assert.Contains(t, doc, "activities")
	assert.Contains(t, doc, "timeEntries")
	assert.Contains(t, doc, "weeklyReflections")

	// Restore into a fresh store and compare.
	entryRepo2, actRepo2, reflRepo2 := setupRepos(t)
	importer := NewExportService(entryRepo2, actRepo2, reflRepo2, nil)
	require.NoError(t, importer.Import(ctx, bytes.NewReader(buf.Bytes())))

	restoredActs, err := actRepo2.Load(ctx)
	require.NoError(t, err)
	require.Len(t, restoredActs, 1)
	assert.Equal(t, "Writing", restoredActs[0].Name)

	restoredEntries, err := entryRepo2.Load(ctx)
	require.NoError(t, err)
	require.Len(t, restoredEntries, 1)
	assert.Equal(t, domain.LinkTo(act.ID), restoredEntries[0].Link)
	assert.Equal(t, int64(30*60*1000), restoredEntries[0].DurationMs)

	restoredRefl, err := reflRepo2.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Focused week.", restoredRefl["2026-03-09"], "reflection keys are Monday date keys")
}

func TestImport_RejectsUnsupportedVersion(t *testing.T) {
	entryRepo, actRepo, reflRepo := setupRepos(t)
	importer := NewExportService(entryRepo, actRepo, reflRepo, nil)

	err := importer.Import(context.Background(), strings.NewReader(`{"version":99,"activities":[],"timeEntries":[]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestImport_RejectsMismatchedDuration(t *testing.T) {
	entryRepo, actRepo, reflRepo := setupRepos(t)
	importer := NewExportService(entryRepo, actRepo, reflRepo, nil)

	doc := `{"version":1,"activities":[],"timeEntries":[{
		"activityName":"Writing",
		"startTime":"2026-03-10T09:00:00.000Z",
		"endTime":"2026-03-10T09:30:00.000Z",
		"duration":"30m 0s",
		"durationMs":999}]}`
	err := importer.Import(context.Background(), strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "durationMs")

	entries, loadErr := entryRepo.Load(context.Background())
	require.NoError(t, loadErr)
	assert.Empty(t, entries, "a rejected import writes nothing")
}

func TestImport_RejectsActivityWithoutID(t *testing.T) {
	entryRepo, actRepo, reflRepo := setupRepos(t)
	importer := NewExportService(entryRepo, actRepo, reflRepo, nil)

	doc := `{"version":1,"activities":[{"id":"","name":"Writing"}],"timeEntries":[]}`
	err := importer.Import(context.Background(), strings.NewReader(doc))
	assert.Error(t, err)
}

func TestImport_OverwritesExistingData(t *testing.T) {
	entryRepo, actRepo, reflRepo := setupRepos(t)
	entries := NewEntryService(entryRepo, actRepo, nil)
	importer := NewExportService(entryRepo, actRepo, reflRepo, nil)
	ctx := context.Background()

	start := testutil.LocalDay(2026, time.March, 10, 9*time.Hour)
	_, err := entries.Record(ctx, "Stale", domain.NoLink(), start, start.Add(time.Hour))
	require.NoError(t, err)

	require.NoError(t, importer.Import(ctx, strings.NewReader(`{"version":1,"activities":[],"timeEntries":[]}`)))

	remaining, err := entryRepo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining, "import replaces wholesale, it does not merge")
}

func TestReflection_ArbitraryDayNormalizesToMonday(t *testing.T) {
	_, _, reflRepo := setupRepos(t)
	svc := NewReflectionService(reflRepo)
	ctx := context.Background()

	// Thursday of the week starting Monday 2026-03-09.
	thursday := testutil.LocalDay(2026, time.March, 12, 15*time.Hour)
	require.NoError(t, svc.SetReflection(ctx, thursday, "Midweek note"))

	sunday := testutil.LocalDay(2026, time.March, 15, 10*time.Hour)
	got, err := svc.Reflection(ctx, sunday)
	require.NoError(t, err)
	assert.Equal(t, "Midweek note", got, "any day of the week reads the same note")

	nextWeek := testutil.LocalDay(2026, time.March, 16, 10*time.Hour)
	got, err = svc.Reflection(ctx, nextWeek)
	require.NoError(t, err)
	assert.Empty(t, got)
}
