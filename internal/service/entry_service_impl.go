package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/chronolog/internal/domain"
	"github.com/alexanderramin/chronolog/internal/repository"
	"github.com/alexanderramin/chronolog/internal/summary"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type entryService struct {
	entries    repository.EntryRepo
	activities repository.ActivityRepo
	log        *zap.Logger
}

// NewEntryService creates the recorder/editor service.
func NewEntryService(entries repository.EntryRepo, activities repository.ActivityRepo, log *zap.Logger) EntryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &entryService{entries: entries, activities: activities, log: log}
}

// Record persists one finished run. A negative span (clock adjusted
// backwards mid-run) is clamped to zero rather than dropping the run.
func (s *entryService) Record(ctx context.Context, name string, link domain.ActivityLink, start, end time.Time) (*domain.TimeEntry, error) {
	if start.IsZero() {
		return nil, domain.ErrNoStartTime
	}
	if end.Before(start) {
		end = start
	}

	entry := domain.TimeEntry{
		ID:           uuid.New().String(),
		ActivityName: strings.TrimSpace(name),
		StartTime:    start,
		EndTime:      end,
		Link:         link,
	}
	entry.Recompute()

	if err := s.entries.Append(ctx, entry); err != nil {
		s.log.Warn("recording entry failed", zap.Error(err))
		return nil, fmt.Errorf("recording entry: %w", err)
	}
	return &entry, nil
}

func (s *entryService) List(ctx context.Context) ([]domain.TimeEntry, error) {
	return s.entries.Load(ctx)
}

func (s *entryService) Timeline(ctx context.Context, maxDays int) ([]summary.DayGroup, error) {
	entries, err := s.entries.Load(ctx)
	if err != nil {
		return nil, err
	}
	return summary.GroupByDay(entries, maxDays), nil
}

func (s *entryService) ListByActivity(ctx context.Context, activityID string) ([]domain.TimeEntry, error) {
	entries, err := s.entries.Load(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.TimeEntry
	for _, e := range entries {
		if e.Link.Kind == domain.LinkLinked && e.Link.ID == activityID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Reassign rebinds the entry's activity link and refreshes the denormalized
// name snapshot to the activity's current name. The snapshot is refreshed
// at edit time only; it does not track later renames.
func (s *entryService) Reassign(ctx context.Context, sel domain.EntrySelector, link domain.ActivityLink) error {
	var snapshot string
	switch link.Kind {
	case domain.LinkLinked:
		activities, err := s.activities.Load(ctx)
		if err != nil {
			return err
		}
		found := false
		for _, a := range activities {
			if a.ID == link.ID {
				snapshot, found = a.Name, true
				break
			}
		}
		if !found {
			return fmt.Errorf("activity %s: %w", link.ID, repository.ErrNotFound)
		}
	case domain.LinkNone:
		snapshot = ""
	}

	return s.mutateOne(ctx, sel, func(e *domain.TimeEntry) error {
		e.Link = link
		if link.Kind != domain.LinkLegacy {
			e.ActivityName = snapshot
		}
		return nil
	})
}

func (s *entryService) EditTimes(ctx context.Context, sel domain.EntrySelector, startClock, endClock string) error {
	return s.mutateOne(ctx, sel, func(e *domain.TimeEntry) error {
		day := e.StartTime.Local()
		newStart, err := parseClockOnDay(startClock, day)
		if err != nil {
			return err
		}
		newEnd, err := parseClockOnDay(endClock, day)
		if err != nil {
			return err
		}
		if !newEnd.After(newStart) {
			return domain.ErrEndBeforeStart
		}
		e.StartTime = newStart
		e.EndTime = newEnd
		e.Recompute()
		return nil
	})
}

func (s *entryService) Delete(ctx context.Context, sel domain.EntrySelector) error {
	err := s.entries.Mutate(ctx, func(entries []domain.TimeEntry) ([]domain.TimeEntry, error) {
		for i := range entries {
			if sel.Matches(entries[i]) {
				return append(entries[:i], entries[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("entry: %w", repository.ErrNotFound)
	})
	if err != nil {
		s.log.Warn("deleting entry failed", zap.Error(err))
		return err
	}
	return nil
}

// mutateOne applies fn to the first entry the selector matches, inside one
// atomic read-modify-write cycle.
func (s *entryService) mutateOne(ctx context.Context, sel domain.EntrySelector, fn func(*domain.TimeEntry) error) error {
	err := s.entries.Mutate(ctx, func(entries []domain.TimeEntry) ([]domain.TimeEntry, error) {
		for i := range entries {
			if sel.Matches(entries[i]) {
				if err := fn(&entries[i]); err != nil {
					return nil, err
				}
				return entries, nil
			}
		}
		return nil, fmt.Errorf("entry: %w", repository.ErrNotFound)
	})
	if err != nil {
		s.log.Warn("editing entry failed", zap.Error(err))
		return err
	}
	return nil
}

var clockPattern = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})\s*(AM|PM|am|pm)\s*$`)

// parseClockOnDay parses a 12-hour "H:MM AM/PM" clock string onto the
// local calendar date of day.
func parseClockOnDay(clock string, day time.Time) (time.Time, error) {
	m := clockPattern.FindStringSubmatch(clock)
	if m == nil {
		return time.Time{}, fmt.Errorf("%q: %w", clock, domain.ErrInvalidTime)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return time.Time{}, fmt.Errorf("%q: %w", clock, domain.ErrInvalidTime)
	}
	if hour == 12 {
		hour = 0
	}
	if strings.EqualFold(m[3], "PM") {
		hour += 12
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local), nil
}
