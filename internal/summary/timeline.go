package summary

import (
	"sort"

	"github.com/alexanderramin/chronolog/internal/domain"
)

// DayGroup is one timeline bucket: a local date key and that day's entries,
// newest first.
type DayGroup struct {
	DateKey string
	Entries []domain.TimeEntry
}

// GroupByDay buckets entries by local date key for the timeline view. Days
// come back most recent first, each day's entries sorted descending by
// start time. maxDays > 0 caps the result to the most recent days; 0 means
// unlimited.
func GroupByDay(entries []domain.TimeEntry, maxDays int) []DayGroup {
	index := make(map[string]int)
	var groups []DayGroup
	for _, e := range entries {
		if e.StartTime.IsZero() {
			continue
		}
		key := DateKey(e.StartTime)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DayGroup{DateKey: key})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].DateKey > groups[j].DateKey
	})
	for _, g := range groups {
		sort.SliceStable(g.Entries, func(i, j int) bool {
			return g.Entries[i].StartTime.After(g.Entries[j].StartTime)
		})
	}

	if maxDays > 0 && len(groups) > maxDays {
		groups = groups[:maxDays]
	}
	return groups
}
