package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/chronolog/internal/domain"
	"github.com/alexanderramin/chronolog/internal/repository"
)

// resolveActivity finds an activity by exact id, unique id prefix, or
// exact name.
func resolveActivity(ctx context.Context, app *App, ref string) (*domain.Activity, error) {
	activities, err := app.Activities.List(ctx)
	if err != nil {
		return nil, err
	}

	var prefix []*domain.Activity
	for i := range activities {
		a := &activities[i]
		if a.ID == ref || a.Name == ref {
			return a, nil
		}
		if strings.HasPrefix(a.ID, ref) {
			prefix = append(prefix, a)
		}
	}
	if len(prefix) == 1 {
		return prefix[0], nil
	}
	if len(prefix) > 1 {
		return nil, fmt.Errorf("activity %q is ambiguous (%d matches)", ref, len(prefix))
	}
	return nil, fmt.Errorf("activity %q: %w", ref, repository.ErrNotFound)
}

// resolveEntry finds an entry by exact id or unique id prefix and returns
// both the entry and the selector identifying it.
func resolveEntry(ctx context.Context, app *App, ref string) (*domain.TimeEntry, domain.EntrySelector, error) {
	entries, err := app.Entries.List(ctx)
	if err != nil {
		return nil, domain.EntrySelector{}, err
	}

	var prefix []*domain.TimeEntry
	for i := range entries {
		e := &entries[i]
		if e.ID == ref {
			return e, domain.SelectEntry(*e), nil
		}
		if e.ID != "" && strings.HasPrefix(e.ID, ref) {
			prefix = append(prefix, e)
		}
	}
	if len(prefix) == 1 {
		return prefix[0], domain.SelectEntry(*prefix[0]), nil
	}
	if len(prefix) > 1 {
		return nil, domain.EntrySelector{}, fmt.Errorf("entry %q is ambiguous (%d matches)", ref, len(prefix))
	}
	return nil, domain.EntrySelector{}, fmt.Errorf("entry %q: %w", ref, repository.ErrNotFound)
}
