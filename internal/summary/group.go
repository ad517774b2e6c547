package summary

import (
	"sort"

	"github.com/alexanderramin/chronolog/internal/domain"
)

// groupByName sums durations per stored activity name, preserving
// first-encountered order. That order is the documented tie-break for
// top-category truncation.
func groupByName(entries []domain.TimeEntry) []CategoryTotal {
	index := make(map[string]int)
	var groups []CategoryTotal
	for _, e := range entries {
		if i, ok := index[e.ActivityName]; ok {
			groups[i].DurationMs += e.DurationMs
			continue
		}
		index[e.ActivityName] = len(groups)
		groups = append(groups, CategoryTotal{Name: e.ActivityName, DurationMs: e.DurationMs})
	}
	return groups
}

// topCategories returns the n largest groups, descending by duration.
// The stable sort keeps insertion order among equal totals.
func topCategories(groups []CategoryTotal, n int) []CategoryTotal {
	sorted := make([]CategoryTotal, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DurationMs > sorted[j].DurationMs
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func sumDurations(entries []domain.TimeEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.DurationMs
	}
	return total
}
