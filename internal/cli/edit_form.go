package cli

import (
	"strings"
	"time"

	"github.com/alexanderramin/chronolog/internal/cli/formatter"
	"github.com/alexanderramin/chronolog/internal/domain"
	"github.com/charmbracelet/huh"
)

// runEditTimesForm collects corrected clock strings for an entry,
// prefilled with its current times.
func runEditTimesForm(entry *domain.TimeEntry) (string, string, error) {
	start := formatter.FormatClock(entry.StartTime)
	end := formatter.FormatClock(entry.EndTime)

	form := huh.NewForm(
		huh.NewGroup(
			clockInput("Start time", &start),
			clockInput("End time", &end),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", "", err
	}
	return start, end, nil
}

// clockInput returns a huh.Input for a 12-hour clock field.
func clockInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("9:00 AM").
		Value(value).
		Validate(validateClock)
}

func validateClock(s string) error {
	if _, err := time.ParseInLocation("3:04 PM", strings.ToUpper(strings.TrimSpace(s)), time.Local); err != nil {
		return domain.ErrInvalidTime
	}
	return nil
}
