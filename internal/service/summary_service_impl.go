package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/chronolog/internal/domain"
	"github.com/alexanderramin/chronolog/internal/repository"
	"github.com/alexanderramin/chronolog/internal/summary"
	"go.uber.org/zap"
)

type summaryService struct {
	entries repository.EntryRepo
	log     *zap.Logger
}

// NewSummaryService creates the aggregation service. It reads the entry
// snapshot through the repo's cache and never writes.
func NewSummaryService(entries repository.EntryRepo, log *zap.Logger) SummaryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &summaryService{entries: entries, log: log}
}

// snapshot loads the entry list for a read-only view. A corrupt document
// degrades to an empty list (logged) so the views stay usable; nothing is
// re-persisted until an explicit user mutation.
func (s *summaryService) snapshot(ctx context.Context) ([]domain.TimeEntry, error) {
	entries, err := s.entries.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrCorrupt) {
			s.log.Warn("entry document is corrupt, summarizing empty log", zap.Error(err))
			return nil, nil
		}
		return nil, err
	}
	return entries, nil
}

func (s *summaryService) Daily(ctx context.Context, day string) (*summary.DailySummary, error) {
	entries, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return summary.Daily(entries, day), nil
}

func (s *summaryService) Weekly(ctx context.Context, weekStart time.Time) (*summary.WeeklySummary, error) {
	entries, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return summary.Weekly(entries, weekStart), nil
}

func (s *summaryService) Monthly(ctx context.Context, monthKey string) (*summary.MonthlySummary, error) {
	entries, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	year, month, err := summary.ParseMonthKey(monthKey)
	if err != nil {
		return nil, fmt.Errorf("parsing month %q: %w", monthKey, err)
	}
	return summary.Monthly(entries, year, month), nil
}

func (s *summaryService) MonthlyTrend(ctx context.Context, monthKey string) (*summary.MonthlySummary, summary.Trend, error) {
	entries, err := s.snapshot(ctx)
	if err != nil {
		return nil, summary.Trend{}, err
	}

	year, month, err := summary.ParseMonthKey(monthKey)
	if err != nil {
		return nil, summary.Trend{}, fmt.Errorf("parsing month %q: %w", monthKey, err)
	}
	prevKey, err := summary.PreviousMonthKey(monthKey)
	if err != nil {
		return nil, summary.Trend{}, fmt.Errorf("parsing month %q: %w", monthKey, err)
	}
	prevYear, prevMonth, _ := summary.ParseMonthKey(prevKey)

	current := summary.Monthly(entries, year, month)
	previous := summary.Monthly(entries, prevYear, prevMonth)
	return previous, summary.CompareTrend(current, previous), nil
}
