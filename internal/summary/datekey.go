package summary

import "time"

const dateKeyLayout = "2006-01-02"

// DateKey buckets a timestamp into a YYYY-MM-DD key in local device time.
// Local time is the single bucketing policy for every view: "today" means
// the user's today.
func DateKey(t time.Time) string {
	return t.Local().Format(dateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key as local midnight.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(dateKeyLayout, key, time.Local)
}

// WeekStart returns local Monday 00:00 of the week containing t.
// Weeks start on Monday regardless of locale.
func WeekStart(t time.Time) time.Time {
	t = t.Local()
	offset := int(t.Weekday())
	if offset == 0 {
		offset = 7
	}
	monday := t.AddDate(0, 0, 1-offset)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.Local)
}

// MonthKey returns the YYYY-MM identifier of t's local calendar month.
func MonthKey(t time.Time) string {
	return t.Local().Format("2006-01")
}

// ParseMonthKey parses a YYYY-MM identifier into its local year and month.
func ParseMonthKey(key string) (int, time.Month, error) {
	t, err := time.ParseInLocation("2006-01", key, time.Local)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), t.Month(), nil
}

// PreviousMonthKey returns the YYYY-MM identifier one month before key.
func PreviousMonthKey(key string) (string, error) {
	year, month, err := ParseMonthKey(key)
	if err != nil {
		return "", err
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0).Format("2006-01"), nil
}
