package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/chronolog/internal/domain"
	"github.com/alexanderramin/chronolog/internal/summary"
)

// FormatTimeline renders day-grouped entries, most recent day first. Names
// are resolved against the registry at render time.
func FormatTimeline(groups []summary.DayGroup, activities []domain.Activity, now time.Time) string {
	if len(groups) == 0 {
		return Dim("No entries recorded yet")
	}

	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StyleHeader.Render(FormatDateHeading(g.DateKey, now)) + "\n")
		for _, e := range g.Entries {
			b.WriteString(formatEntryLine(e, activities) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatEntryList renders a flat entry list, used by activity detail.
func FormatEntryList(entries []domain.TimeEntry, activities []domain.Activity) string {
	if len(entries) == 0 {
		return Dim("No logs for this activity")
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(formatEntryLine(e, activities) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatEntryLine(e domain.TimeEntry, activities []domain.Activity) string {
	name := summary.ResolveName(e, activities)
	span := fmt.Sprintf("%s – %s", FormatClock(e.StartTime), FormatClock(e.EndTime))
	id := ""
	if e.ID != "" {
		id = "  " + Dim(shortID(e.ID))
	}
	return fmt.Sprintf("  %-22s %-19s %s%s",
		StyleFg.Render(name), span, StyleGreen.Render(FormatDurationLong(e.DurationMs)), id)
}

// shortID truncates an entry id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
