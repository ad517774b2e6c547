package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/chronolog/internal/summary"
)

// FormatDaily renders a daily summary. A nil summary means no entries that
// day.
func FormatDaily(day string, s *summary.DailySummary) string {
	if s == nil {
		return RenderBox("Daily Summary", Dim(fmt.Sprintf("No entries on %s", day)))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n\n", Bold(day), StyleGreen.Render(FormatDuration(s.TotalMs))))
	for _, g := range s.PerActivity {
		b.WriteString(fmt.Sprintf("  %-24s %s\n", StyleFg.Render(displayName(g.Name)), FormatDuration(g.DurationMs)))
	}
	return RenderBox("Daily Summary", strings.TrimRight(b.String(), "\n"))
}

// FormatWeekly renders a weekly summary with its reflection note.
func FormatWeekly(weekStart time.Time, s *summary.WeeklySummary, reflection string) string {
	weekEnd := weekStart.AddDate(0, 0, 6)
	rangeLabel := fmt.Sprintf("%s - %s", weekStart.Format("Jan 2"), weekEnd.Format("Jan 2, 2006"))

	var b strings.Builder
	b.WriteString(Bold(rangeLabel) + "\n\n")
	if s == nil {
		b.WriteString(Dim("No entries this week"))
	} else {
		b.WriteString(fmt.Sprintf("Total      %s\n", StyleGreen.Render(FormatDuration(s.TotalMs))))
		b.WriteString(fmt.Sprintf("Avg / day  %s\n", FormatDuration(s.AvgPerDayMs)))
		if len(s.TopCategories) > 0 {
			b.WriteString("\nTop categories\n")
			for i, g := range s.TopCategories {
				b.WriteString(fmt.Sprintf("  %d. %-22s %s\n", i+1, displayName(g.Name), FormatDuration(g.DurationMs)))
			}
		}
	}
	if reflection != "" {
		b.WriteString("\n" + StyleBlue.Render("Reflection") + "\n")
		b.WriteString(Dim(reflection) + "\n")
	}
	return RenderBox("Weekly Summary", strings.TrimRight(b.String(), "\n"))
}

// FormatMonthly renders a monthly summary plus the trend against the month
// before it.
func FormatMonthly(monthKey string, s *summary.MonthlySummary, trend summary.Trend) string {
	label := monthKey
	if year, month, err := summary.ParseMonthKey(monthKey); err == nil {
		label = time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Format("January 2006")
	}

	var b strings.Builder
	b.WriteString(Bold(label) + "\n\n")
	if s == nil {
		b.WriteString(Dim("No entries this month"))
	} else {
		b.WriteString(fmt.Sprintf("Total             %s\n", StyleGreen.Render(FormatDuration(s.TotalMs))))
		b.WriteString(fmt.Sprintf("Active days       %d\n", s.ActiveDays))
		b.WriteString(fmt.Sprintf("Avg / active day  %s\n", FormatDuration(s.AvgPerActiveDayMs)))
		if len(s.TopCategories) > 0 {
			b.WriteString("\nTop categories\n")
			for i, g := range s.TopCategories {
				b.WriteString(fmt.Sprintf("  %d. %-22s %s\n", i+1, displayName(g.Name), FormatDuration(g.DurationMs)))
			}
		}
	}
	b.WriteString("\n" + FormatTrend(trend))
	return RenderBox("Monthly Summary", strings.TrimRight(b.String(), "\n"))
}

// FormatTrend renders the period-over-period indicator line.
func FormatTrend(t summary.Trend) string {
	if t.Direction == summary.TrendNoData {
		return Dim("No data for previous month")
	}

	var line string
	switch t.Direction {
	case summary.TrendIncrease:
		line = StyleGreen.Render(fmt.Sprintf("↑ +%s vs last month", FormatDuration(t.DiffMs)))
	case summary.TrendDecrease:
		line = StyleRed.Render(fmt.Sprintf("↓ -%s vs last month", FormatDuration(-t.DiffMs)))
	default:
		line = Dim("→ unchanged vs last month")
	}

	switch t.TopCategory {
	case summary.TopSame:
		line += "\n" + Dim("Top category: same as last month")
	case summary.TopChanged:
		line += "\n" + Dim("Top category: changed from last month")
	}
	return line
}

// displayName substitutes a dash for an empty snapshot name.
func displayName(name string) string {
	if name == "" {
		return summary.NoActivityLabel
	}
	return name
}
