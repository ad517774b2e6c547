package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/chronolog/internal/domain"
	"github.com/alexanderramin/chronolog/internal/summary"
)

// ActivityService is CRUD over the activity registry. Unknown ids come back
// as repository.ErrNotFound instead of the silent no-ops of older builds.
type ActivityService interface {
	Add(ctx context.Context, name string) (*domain.Activity, error)
	Rename(ctx context.Context, id, newName string) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context) ([]domain.Activity, error)
}

// TimerService owns the single ephemeral run. Starting while a run is
// active finalizes it first and then begins the new run; from the caller's
// point of view this is one atomic stop-then-start.
type TimerService interface {
	// Start begins a run for the trimmed activity name. When a run was
	// already active the returned entry is its finalized record, otherwise
	// nil.
	Start(ctx context.Context, name string, link domain.ActivityLink) (*domain.TimeEntry, error)
	// Stop finalizes the active run into a persisted entry.
	Stop(ctx context.Context) (*domain.TimeEntry, error)
	Snapshot() domain.TimerRun
	Elapsed() time.Duration
}

// EntryService records finished runs and edits previously recorded entries.
type EntryService interface {
	Record(ctx context.Context, name string, link domain.ActivityLink, start, end time.Time) (*domain.TimeEntry, error)
	List(ctx context.Context) ([]domain.TimeEntry, error)
	Timeline(ctx context.Context, maxDays int) ([]summary.DayGroup, error)
	ListByActivity(ctx context.Context, activityID string) ([]domain.TimeEntry, error)
	Reassign(ctx context.Context, sel domain.EntrySelector, link domain.ActivityLink) error
	// EditTimes replaces the entry's time-of-day bounds, keeping its
	// original calendar date. Clock strings use the 12-hour "H:MM AM/PM"
	// form.
	EditTimes(ctx context.Context, sel domain.EntrySelector, startClock, endClock string) error
	Delete(ctx context.Context, sel domain.EntrySelector) error
}

// SummaryService derives period statistics from the entry log.
type SummaryService interface {
	Daily(ctx context.Context, day string) (*summary.DailySummary, error)
	Weekly(ctx context.Context, weekStart time.Time) (*summary.WeeklySummary, error)
	Monthly(ctx context.Context, monthKey string) (*summary.MonthlySummary, error)
	// MonthlyTrend returns the previous month's summary alongside the
	// directional comparison against it.
	MonthlyTrend(ctx context.Context, monthKey string) (*summary.MonthlySummary, summary.Trend, error)
}

// ReflectionService stores the free-text note attached to a week.
type ReflectionService interface {
	Reflection(ctx context.Context, weekStart time.Time) (string, error)
	SetReflection(ctx context.Context, weekStart time.Time, text string) error
}

// ExportService bundles all persisted documents into one portable JSON
// file and restores from it. Import is the explicit user mutation allowed
// to overwrite a corrupt store.
type ExportService interface {
	Export(ctx context.Context, w io.Writer) error
	Import(ctx context.Context, r io.Reader) error
}
