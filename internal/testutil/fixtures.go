package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/chronolog/internal/domain"
	"github.com/google/uuid"
)

var testActivityIDCounter atomic.Int64

// Entry options
type EntryOption func(*domain.TimeEntry)

// WithLink binds the entry to an activity id.
func WithLink(id string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Link = domain.LinkTo(id)
	}
}

// WithNoLink marks the entry as explicitly activity-less.
func WithNoLink() EntryOption {
	return func(e *domain.TimeEntry) {
		e.Link = domain.NoLink()
	}
}

// AsLegacy strips the id and link, mimicking data recorded before entry
// ids and activity linking existed.
func AsLegacy() EntryOption {
	return func(e *domain.TimeEntry) {
		e.ID = ""
		e.Link = domain.LegacyLink()
	}
}

// NewTestEntry builds a well-formed entry of the given span.
func NewTestEntry(name string, start time.Time, d time.Duration, opts ...EntryOption) domain.TimeEntry {
	e := domain.TimeEntry{
		ID:           uuid.New().String(),
		ActivityName: name,
		StartTime:    start,
		EndTime:      start.Add(d),
	}
	e.Recompute()
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// NewTestActivity builds an activity with a unique time-derived id.
func NewTestActivity(name string) domain.Activity {
	n := testActivityIDCounter.Add(1)
	now := time.Now()
	return domain.Activity{
		ID:        fmt.Sprintf("%d%03d", now.UnixMilli(), n),
		Name:      name,
		CreatedAt: now.UnixMilli(),
	}
}

// LocalDay returns local midnight plus the given clock offset, useful for
// building entries on known date keys.
func LocalDay(year int, month time.Month, day int, clock time.Duration) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local).Add(clock)
}
