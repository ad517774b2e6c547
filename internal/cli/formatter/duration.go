package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/chronolog/internal/summary"
)

// FormatDuration renders a millisecond span compactly: "2h 5m", "2h",
// "45m", "0m". This is the form used by the summary views.
func FormatDuration(ms int64) string {
	if ms < 0 {
		ms = -ms
	}
	hours := ms / 3600000
	minutes := (ms % 3600000) / 60000

	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return "0m"
	}
}

// FormatDurationLong renders a millisecond span in the spaced form used by
// per-entry rows: "2 h 5 min" or "45 min".
func FormatDurationLong(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	totalMinutes := ms / 60000
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	if hours > 0 {
		return fmt.Sprintf("%d h %d min", hours, minutes)
	}
	return fmt.Sprintf("%d min", minutes)
}

// FormatClock renders a timestamp as a local 12-hour clock: "3:04 PM".
func FormatClock(t time.Time) string {
	return t.Local().Format("3:04 PM")
}

// FormatDateHeading renders a date key as a timeline heading: "Today",
// "Yesterday", or "Mon, 2 Jan 06".
func FormatDateHeading(dateKey string, now time.Time) string {
	switch dateKey {
	case summary.DateKey(now):
		return "Today"
	case summary.DateKey(now.AddDate(0, 0, -1)):
		return "Yesterday"
	}
	t, err := summary.ParseDateKey(dateKey)
	if err != nil {
		return dateKey
	}
	return t.Format("Mon, 2 Jan 06")
}

// FormatElapsed renders a live stopwatch readout: "0:05:32".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Seconds())
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
