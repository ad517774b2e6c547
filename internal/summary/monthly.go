package summary

import (
	"time"

	"github.com/alexanderramin/chronolog/internal/domain"
)

// Monthly computes the summary for one local calendar month. Returns nil
// when the month holds no entries.
func Monthly(entries []domain.TimeEntry, year int, month time.Month) *MonthlySummary {
	var monthEntries []domain.TimeEntry
	for _, e := range entries {
		if !e.WellFormed() {
			continue
		}
		local := e.StartTime.Local()
		if local.Year() == year && local.Month() == month {
			monthEntries = append(monthEntries, e)
		}
	}
	if len(monthEntries) == 0 {
		return nil
	}

	activeDays := make(map[string]struct{})
	for _, e := range monthEntries {
		activeDays[DateKey(e.StartTime)] = struct{}{}
	}

	total := sumDurations(monthEntries)
	avg := int64(0)
	if len(activeDays) > 0 {
		avg = total / int64(len(activeDays))
	}

	groups := groupByName(monthEntries)
	return &MonthlySummary{
		TotalMs:           total,
		ActiveDays:        len(activeDays),
		AvgPerActiveDayMs: avg,
		TopCategories:     topCategories(groups, monthlyTopCount),
		CategoryStats:     groups,
	}
}
