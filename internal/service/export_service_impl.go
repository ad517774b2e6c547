package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/chronolog/internal/domain"
	"github.com/alexanderramin/chronolog/internal/repository"
	"go.uber.org/zap"
)

// exportVersion is the current export document version.
const exportVersion = 1

// exportDoc bundles every persisted document into one portable file.
type exportDoc struct {
	Version           int                `json:"version"`
	Activities        []domain.Activity  `json:"activities"`
	TimeEntries       []domain.TimeEntry `json:"timeEntries"`
	WeeklyReflections map[string]string  `json:"weeklyReflections"`
}

type exportService struct {
	entries     repository.EntryRepo
	activities  repository.ActivityRepo
	reflections repository.ReflectionRepo
	log         *zap.Logger
}

// NewExportService creates the export/import service.
func NewExportService(entries repository.EntryRepo, activities repository.ActivityRepo, reflections repository.ReflectionRepo, log *zap.Logger) ExportService {
	if log == nil {
		log = zap.NewNop()
	}
	return &exportService{entries: entries, activities: activities, reflections: reflections, log: log}
}

func (s *exportService) Export(ctx context.Context, w io.Writer) error {
	doc := exportDoc{Version: exportVersion}

	var err error
	if doc.TimeEntries, err = s.entries.Load(ctx); err != nil {
		return fmt.Errorf("exporting entries: %w", err)
	}
	if doc.Activities, err = s.activities.Load(ctx); err != nil {
		return fmt.Errorf("exporting activities: %w", err)
	}
	if doc.WeeklyReflections, err = s.reflections.Load(ctx); err != nil {
		return fmt.Errorf("exporting reflections: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// Import validates the document and replaces all three stores wholesale.
// This is an explicit user mutation, so it may overwrite a corrupt store.
func (s *exportService) Import(ctx context.Context, r io.Reader) error {
	var doc exportDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("parsing import: %w", err)
	}
	if doc.Version != exportVersion {
		return fmt.Errorf("unsupported export version %d", doc.Version)
	}
	if err := validateImport(&doc); err != nil {
		return err
	}

	if err := s.entries.Replace(ctx, doc.TimeEntries); err != nil {
		s.log.Error("import failed writing entries", zap.Error(err))
		return err
	}
	if err := s.activities.Replace(ctx, doc.Activities); err != nil {
		s.log.Error("import failed writing activities", zap.Error(err))
		return err
	}
	if doc.WeeklyReflections == nil {
		doc.WeeklyReflections = map[string]string{}
	}
	if err := s.reflections.Replace(ctx, doc.WeeklyReflections); err != nil {
		s.log.Error("import failed writing reflections", zap.Error(err))
		return err
	}

	s.log.Info("import complete",
		zap.Int("entries", len(doc.TimeEntries)),
		zap.Int("activities", len(doc.Activities)),
		zap.Int("reflections", len(doc.WeeklyReflections)))
	return nil
}

func validateImport(doc *exportDoc) error {
	for i, a := range doc.Activities {
		if a.ID == "" {
			return fmt.Errorf("activity %d: %w", i, errors.New("missing id"))
		}
	}
	for i, e := range doc.TimeEntries {
		if e.StartTime.IsZero() || e.EndTime.IsZero() {
			return fmt.Errorf("entry %d: missing time bounds", i)
		}
		if e.EndTime.Before(e.StartTime) {
			return fmt.Errorf("entry %d: %w", i, domain.ErrEndBeforeStart)
		}
		if want := e.EndTime.Sub(e.StartTime).Milliseconds(); e.DurationMs != want {
			return fmt.Errorf("entry %d: durationMs %d does not match time bounds (%d)", i, e.DurationMs, want)
		}
	}
	return nil
}
