package summary

import "github.com/alexanderramin/chronolog/internal/domain"

// Daily computes the summary for one local calendar day identified by its
// date key. Returns nil when no entry falls on that day.
func Daily(entries []domain.TimeEntry, day string) *DailySummary {
	var dayEntries []domain.TimeEntry
	for _, e := range entries {
		if !e.WellFormed() {
			continue
		}
		if DateKey(e.StartTime) == day {
			dayEntries = append(dayEntries, e)
		}
	}
	if len(dayEntries) == 0 {
		return nil
	}

	return &DailySummary{
		TotalMs:     sumDurations(dayEntries),
		PerActivity: groupByName(dayEntries),
	}
}
