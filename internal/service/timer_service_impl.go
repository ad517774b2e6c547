package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/chronolog/internal/domain"
)

type timerService struct {
	entries EntryService

	mu  sync.Mutex
	run domain.TimerRun
	now func() time.Time
}

// NewTimerService creates the timer state machine. Finished runs are
// persisted through the given EntryService.
func NewTimerService(entries EntryService) TimerService {
	return &timerService{entries: entries, now: time.Now}
}

func (s *timerService) Start(ctx context.Context, name string, link domain.ActivityLink) (*domain.TimeEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Switching activities without an explicit stop: finalize the active
	// run first, then begin the new one. Exactly one entry is recorded for
	// the interrupted run.
	var finalized *domain.TimeEntry
	if s.run.Running {
		entry, err := s.stopLocked(ctx)
		if err != nil {
			return nil, err
		}
		finalized = entry
	}

	s.run = domain.TimerRun{
		ActivityName: name,
		Link:         link,
		StartTime:    s.now(),
		Running:      true,
	}
	return finalized, nil
}

func (s *timerService) Stop(ctx context.Context) (*domain.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.run.Running || s.run.StartTime.IsZero() {
		return nil, domain.ErrNoStartTime
	}
	return s.stopLocked(ctx)
}

// stopLocked finalizes the active run into a persisted entry and clears
// the run state. Caller holds s.mu.
func (s *timerService) stopLocked(ctx context.Context) (*domain.TimeEntry, error) {
	entry, err := s.entries.Record(ctx, s.run.ActivityName, s.run.Link, s.run.StartTime, s.now())
	if err != nil {
		return nil, err
	}
	s.run = domain.TimerRun{}
	return entry, nil
}

func (s *timerService) Snapshot() domain.TimerRun {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.run
}

func (s *timerService) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.run.Elapsed(s.now())
}
