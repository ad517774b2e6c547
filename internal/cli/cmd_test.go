package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/chronolog/internal/domain"
	"github.com/alexanderramin/chronolog/internal/repository"
	"github.com/alexanderramin/chronolog/internal/service"
	"github.com/alexanderramin/chronolog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App over an in-memory store for CLI integration
// tests. IsInteractive defaults to false so nothing opens a TUI.
func testApp(t *testing.T) *App {
	t.Helper()
	entryRepo, actRepo, reflRepo := testutil.NewTestRepos(t)

	entries := service.NewEntryService(entryRepo, actRepo, nil)
	return &App{
		Activities:    service.NewActivityService(actRepo, nil),
		Timer:         service.NewTimerService(entries),
		Entries:       entries,
		Summaries:     service.NewSummaryService(entryRepo, nil),
		Reflections:   service.NewReflectionService(reflRepo),
		Export:        service.NewExportService(entryRepo, actRepo, reflRepo, nil),
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures cobra's own output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// seedEntry records one completed entry and returns it.
func seedEntry(t *testing.T, app *App, name string, link domain.ActivityLink) *domain.TimeEntry {
	t.Helper()
	start := testutil.LocalDay(2026, time.March, 10, 9*time.Hour)
	entry, err := app.Entries.Record(context.Background(), name, link, start, start.Add(30*time.Minute))
	require.NoError(t, err)
	return entry
}

// --- Root ---

func TestRootCmd_NonInteractiveShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "chronolog")
}

func TestTimerCmd_RefusesWithoutTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "timer")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

// --- activity ---

func TestActivityCmd_AddListRenameRemove(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	_, err := executeCmd(t, app, "activity", "add", "Writing")
	require.NoError(t, err)

	activities, err := app.Activities.List(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	id := activities[0].ID

	_, err = executeCmd(t, app, "activity", "rename", id, "Deep Writing")
	require.NoError(t, err)
	got, err := app.Activities.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Deep Writing", got.Name)

	_, err = executeCmd(t, app, "activity", "list")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "activity", "rm", "Deep Writing")
	require.NoError(t, err)
	remaining, err := app.Activities.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestActivityCmd_ResolveByNameAndPrefix(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	created, err := app.Activities.Add(ctx, "Writing")
	require.NoError(t, err)

	byName, err := resolveActivity(ctx, app, "Writing")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byPrefix, err := resolveActivity(ctx, app, created.ID[:6])
	require.NoError(t, err)
	assert.Equal(t, created.ID, byPrefix.ID)

	_, err = resolveActivity(ctx, app, "nothing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestActivityCmd_RemoveUnknown(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "activity", "rm", "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// --- record ---

func TestRecordCmd_CreatesEntry(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "record", "Writing",
		"--date", "2026-03-10", "--start", "9:00 AM", "--end", "10:30 AM")
	require.NoError(t, err)

	entries, err := app.Entries.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Writing", entries[0].ActivityName)
	assert.Equal(t, int64(90*60*1000), entries[0].DurationMs)
	assert.Equal(t, domain.NoLink(), entries[0].Link)
}

func TestRecordCmd_BindsActivity(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	created, err := app.Activities.Add(ctx, "Writing")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "record", "Writing",
		"--activity", "Writing", "--date", "2026-03-10", "--start", "9:00 AM", "--end", "9:30 AM")
	require.NoError(t, err)

	entries, err := app.Entries.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.LinkTo(created.ID), entries[0].Link)
}

func TestRecordCmd_RejectsInvertedTimes(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "record", "Writing",
		"--date", "2026-03-10", "--start", "3:00 PM", "--end", "2:00 PM")
	assert.ErrorIs(t, err, domain.ErrEndBeforeStart)
}

func TestRecordCmd_RequiresStartAndEnd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "record", "Writing")
	assert.Error(t, err)
}

// --- entry ---

func TestEntryCmd_EditTimes(t *testing.T) {
	app := testApp(t)
	entry := seedEntry(t, app, "Writing", domain.NoLink())

	_, err := executeCmd(t, app, "entry", "edit", entry.ID, "--start", "2:00 PM", "--end", "4:00 PM")
	require.NoError(t, err)

	entries, err := app.Entries.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2*60*60*1000), entries[0].DurationMs)
}

func TestEntryCmd_EditWithoutFlagsNeedsTerminal(t *testing.T) {
	app := testApp(t)
	entry := seedEntry(t, app, "Writing", domain.NoLink())

	_, err := executeCmd(t, app, "entry", "edit", entry.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--start")
}

func TestEntryCmd_ReassignAndUnlink(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	created, err := app.Activities.Add(ctx, "Research")
	require.NoError(t, err)
	entry := seedEntry(t, app, "Writing", domain.NoLink())

	_, err = executeCmd(t, app, "entry", "reassign", entry.ID, "--activity", "Research")
	require.NoError(t, err)
	entries, err := app.Entries.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LinkTo(created.ID), entries[0].Link)

	_, err = executeCmd(t, app, "entry", "reassign", entry.ID, "--none")
	require.NoError(t, err)
	entries, err = app.Entries.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.NoLink(), entries[0].Link)
}

func TestEntryCmd_ReassignRequiresTarget(t *testing.T) {
	app := testApp(t)
	entry := seedEntry(t, app, "Writing", domain.NoLink())

	_, err := executeCmd(t, app, "entry", "reassign", entry.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--activity")
}

func TestEntryCmd_Remove(t *testing.T) {
	app := testApp(t)
	entry := seedEntry(t, app, "Writing", domain.NoLink())

	_, err := executeCmd(t, app, "entry", "rm", entry.ID[:8])
	require.NoError(t, err)

	entries, err := app.Entries.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntryCmd_UnknownRef(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "entry", "rm", "no-such-entry")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// --- summaries ---

func TestDayWeekMonthCmds_RunOverSeededData(t *testing.T) {
	app := testApp(t)
	seedEntry(t, app, "Writing", domain.NoLink())

	_, err := executeCmd(t, app, "day", "2026-03-10")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "week", "--start", "2026-03-10")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "month", "2026-03")
	require.NoError(t, err)
}

func TestDayCmd_RejectsBadDate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "day", "tomorrow")
	assert.Error(t, err)
}

func TestWeekCmd_SetsReflectionNote(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "week", "--start", "2026-03-12", "--note", "Shipped the draft")
	require.NoError(t, err)

	note, err := app.Reflections.Reflection(context.Background(),
		testutil.LocalDay(2026, time.March, 12, 0))
	require.NoError(t, err)
	assert.Equal(t, "Shipped the draft", note)
}

func TestWeekCmd_EmptyNoteFlagClearsNote(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	_, err := executeCmd(t, app, "week", "--start", "2026-03-12", "--note", "First")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "week", "--start", "2026-03-12", "--note", "")
	require.NoError(t, err)

	note, err := app.Reflections.Reflection(ctx, testutil.LocalDay(2026, time.March, 12, 0))
	require.NoError(t, err)
	assert.Empty(t, note, "an explicit empty --note overwrites the stored text")
}

// --- log ---

func TestLogCmd_Runs(t *testing.T) {
	app := testApp(t)
	seedEntry(t, app, "Writing", domain.NoLink())

	_, err := executeCmd(t, app, "log")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "log", "--days", "3")
	require.NoError(t, err)
}

// --- export / import ---

func TestExportImportCmds_RoundTripThroughFile(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	created, err := app.Activities.Add(ctx, "Writing")
	require.NoError(t, err)
	seedEntry(t, app, "Writing", domain.LinkTo(created.ID))

	path := filepath.Join(t.TempDir(), "backup.json")
	_, err = executeCmd(t, app, "export", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": 1`)

	fresh := testApp(t)
	_, err = executeCmd(t, fresh, "import", path)
	require.NoError(t, err)

	entries, err := fresh.Entries.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.LinkTo(created.ID), entries[0].Link)
}

func TestImportCmd_MissingFile(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "import", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
