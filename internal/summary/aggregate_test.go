package summary

import (
	"testing"
	"time"

	"github.com/alexanderramin/chronolog/internal/domain"
	"github.com/alexanderramin/chronolog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaily_SumsAndGroupsByName(t *testing.T) {
	day := testutil.LocalDay(2026, time.March, 10, 9*time.Hour)
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("Writing", day, 30*time.Minute),
		testutil.NewTestEntry("Email", day.Add(time.Hour), 10*time.Minute),
		testutil.NewTestEntry("Writing", day.Add(2*time.Hour), 15*time.Minute),
	}

	s := Daily(entries, "2026-03-10")
	require.NotNil(t, s)

	assert.Equal(t, int64(55*60*1000), s.TotalMs, "total should equal the sum of per-activity totals")
	require.Len(t, s.PerActivity, 2)
	assert.Equal(t, "Writing", s.PerActivity[0].Name)
	assert.Equal(t, int64(45*60*1000), s.PerActivity[0].DurationMs)
	assert.Equal(t, "Email", s.PerActivity[1].Name)
	assert.Equal(t, int64(10*60*1000), s.PerActivity[1].DurationMs)
}

func TestDaily_NilWhenDayIsEmpty(t *testing.T) {
	day := testutil.LocalDay(2026, time.March, 10, 9*time.Hour)
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("Writing", day, 30*time.Minute),
	}

	assert.Nil(t, Daily(entries, "2026-03-11"), "a day without entries yields no summary")
	assert.Nil(t, Daily(nil, "2026-03-10"), "an empty log yields no summary")
}

func TestDaily_BucketsByLocalStartDate(t *testing.T) {
	// Starts one minute before midnight, runs into the next day. The
	// entry belongs to the day it started on.
	start := testutil.LocalDay(2026, time.March, 10, 24*time.Hour-time.Minute)
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("Late", start, 30*time.Minute),
	}

	require.NotNil(t, Daily(entries, "2026-03-10"))
	assert.Nil(t, Daily(entries, "2026-03-11"))
}

func TestDaily_SkipsMalformedEntries(t *testing.T) {
	day := testutil.LocalDay(2026, time.March, 10, 9*time.Hour)
	good := testutil.NewTestEntry("Writing", day, 30*time.Minute)
	bad := testutil.NewTestEntry("Broken", day, 30*time.Minute)
	bad.EndTime = bad.StartTime
	bad.Recompute()

	s := Daily([]domain.TimeEntry{good, bad}, "2026-03-10")
	require.NotNil(t, s)
	assert.Equal(t, good.DurationMs, s.TotalMs, "malformed entries should not contribute")
	assert.Len(t, s.PerActivity, 1)
}

func TestWeekly_HalfOpenWindowAndAverage(t *testing.T) {
	// Monday 2026-03-09 through Sunday 2026-03-15.
	monday := testutil.LocalDay(2026, time.March, 9, 0)
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("Writing", monday.Add(9*time.Hour), 70*time.Minute),
		testutil.NewTestEntry("Email", monday.AddDate(0, 0, 3).Add(10*time.Hour), 70*time.Minute),
		// Sunday 23:59, still inside the window.
		testutil.NewTestEntry("Reading", monday.AddDate(0, 0, 6).Add(24*time.Hour-time.Minute), 70*time.Minute),
		// Next Monday midnight, outside.
		testutil.NewTestEntry("Outside", monday.AddDate(0, 0, 7), time.Hour),
		// Previous Sunday, outside.
		testutil.NewTestEntry("Outside", monday.Add(-time.Hour), time.Hour),
	}

	s := Weekly(entries, monday)
	require.NotNil(t, s)

	total := int64(3 * 70 * 60 * 1000)
	assert.Equal(t, total, s.TotalMs)
	assert.Equal(t, total/7, s.AvgPerDayMs, "average divides by seven regardless of active days")
	assert.Len(t, s.TopCategories, 3)
}

func TestWeekly_TopThreeWithInsertionOrderTieBreak(t *testing.T) {
	monday := testutil.LocalDay(2026, time.March, 9, 0)
	at := func(day int, clock time.Duration) time.Time {
		return monday.AddDate(0, 0, day).Add(clock)
	}
	// Alpha and Beta tie at 60m; Alpha was recorded first, so it wins the
	// tie. Gamma leads outright, Delta trails and is cut.
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("Alpha", at(0, 9*time.Hour), 60*time.Minute),
		testutil.NewTestEntry("Beta", at(0, 11*time.Hour), 60*time.Minute),
		testutil.NewTestEntry("Gamma", at(1, 9*time.Hour), 90*time.Minute),
		testutil.NewTestEntry("Delta", at(2, 9*time.Hour), 30*time.Minute),
	}

	s := Weekly(entries, monday)
	require.NotNil(t, s)
	require.Len(t, s.TopCategories, 3)
	assert.Equal(t, "Gamma", s.TopCategories[0].Name)
	assert.Equal(t, "Alpha", s.TopCategories[1].Name)
	assert.Equal(t, "Beta", s.TopCategories[2].Name)
}

func TestWeekly_NilWhenEmpty(t *testing.T) {
	monday := testutil.LocalDay(2026, time.March, 9, 0)
	assert.Nil(t, Weekly(nil, monday))
}

func TestMonthly_ActiveDaysAndAverages(t *testing.T) {
	day := func(d int, clock time.Duration) time.Time {
		return testutil.LocalDay(2026, time.March, d, clock)
	}
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("Writing", day(3, 9*time.Hour), 60*time.Minute),
		testutil.NewTestEntry("Writing", day(3, 14*time.Hour), 30*time.Minute),
		testutil.NewTestEntry("Email", day(17, 9*time.Hour), 30*time.Minute),
		// April entry, excluded.
		testutil.NewTestEntry("Writing", testutil.LocalDay(2026, time.April, 1, 9*time.Hour), time.Hour),
	}

	s := Monthly(entries, 2026, time.March)
	require.NotNil(t, s)

	assert.Equal(t, int64(120*60*1000), s.TotalMs)
	assert.Equal(t, 2, s.ActiveDays, "two distinct march dates have entries")
	assert.Equal(t, int64(60*60*1000), s.AvgPerActiveDayMs)
	require.Len(t, s.CategoryStats, 2)
	assert.Equal(t, "Writing", s.TopCategories[0].Name)
}

func TestMonthly_TopFiveCapButFullCategoryStats(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	var entries []domain.TimeEntry
	for i, name := range names {
		start := testutil.LocalDay(2026, time.March, i+1, 9*time.Hour)
		entries = append(entries, testutil.NewTestEntry(name, start, time.Duration(len(names)-i)*10*time.Minute))
	}

	s := Monthly(entries, 2026, time.March)
	require.NotNil(t, s)
	assert.Len(t, s.TopCategories, 5, "top list is capped")
	assert.Len(t, s.CategoryStats, 7, "full stats keep every group")
	assert.Equal(t, "A", s.TopCategories[0].Name)
	assert.Equal(t, "E", s.TopCategories[4].Name)
}

func TestMonthly_NilWhenEmpty(t *testing.T) {
	assert.Nil(t, Monthly(nil, 2026, time.March))
}
