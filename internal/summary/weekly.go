package summary

import (
	"time"

	"github.com/alexanderramin/chronolog/internal/domain"
)

// Weekly computes the summary for the half-open week [weekStart,
// weekStart+7d). weekStart should be a local Monday midnight; see
// WeekStart. Returns nil when the week holds no entries.
func Weekly(entries []domain.TimeEntry, weekStart time.Time) *WeeklySummary {
	weekEnd := weekStart.AddDate(0, 0, 7)

	var weekEntries []domain.TimeEntry
	for _, e := range entries {
		if !e.WellFormed() {
			continue
		}
		if !e.StartTime.Before(weekStart) && e.StartTime.Before(weekEnd) {
			weekEntries = append(weekEntries, e)
		}
	}
	if len(weekEntries) == 0 {
		return nil
	}

	total := sumDurations(weekEntries)
	return &WeeklySummary{
		TotalMs:       total,
		AvgPerDayMs:   total / 7,
		TopCategories: topCategories(groupByName(weekEntries), weeklyTopCount),
	}
}
