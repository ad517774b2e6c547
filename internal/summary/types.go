// Package summary is the aggregation engine: pure functions that turn a
// flat snapshot of time entries into date-bucketed statistics. Nothing here
// mutates its input or touches storage; malformed entries are skipped
// rather than aborting a computation.
package summary

// CategoryTotal is one activity-name group with its summed duration.
// Grouping is by the stored display name, not the activity id: two
// activities renamed to the same name merge in summaries.
type CategoryTotal struct {
	Name       string
	DurationMs int64
}

// DailySummary covers a single local calendar day.
type DailySummary struct {
	TotalMs     int64
	PerActivity []CategoryTotal
}

// WeeklySummary covers the seven days starting at a Monday week start.
type WeeklySummary struct {
	TotalMs       int64
	AvgPerDayMs   int64
	TopCategories []CategoryTotal
}

// MonthlySummary covers one local calendar month.
type MonthlySummary struct {
	TotalMs           int64
	ActiveDays        int
	AvgPerActiveDayMs int64
	TopCategories     []CategoryTotal
	CategoryStats     []CategoryTotal
}

const (
	weeklyTopCount  = 3
	monthlyTopCount = 5
)
