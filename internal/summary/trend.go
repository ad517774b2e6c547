package summary

// TrendDirection classifies a period-over-period total comparison.
type TrendDirection string

const (
	TrendNoData    TrendDirection = "no_data"
	TrendIncrease  TrendDirection = "increase"
	TrendDecrease  TrendDirection = "decrease"
	TrendUnchanged TrendDirection = "unchanged"
)

// TopCategoryChange classifies the top-category comparison between two
// periods. The comparison is by name only, never by duration delta.
type TopCategoryChange string

const (
	TopUnknown TopCategoryChange = "unknown"
	TopSame    TopCategoryChange = "same"
	TopChanged TopCategoryChange = "changed"
)

// Trend is the directional indicator between the current period and the
// one before it.
type Trend struct {
	Direction   TrendDirection
	DiffMs      int64
	TopCategory TopCategoryChange
}

// CompareTrend compares the current monthly summary against the previous
// one. A nil previous summary means no prior data exists; the diff is then
// meaningless and Direction is TrendNoData. Zero diff is strictly
// "unchanged".
func CompareTrend(current, previous *MonthlySummary) Trend {
	if previous == nil {
		return Trend{Direction: TrendNoData, TopCategory: TopUnknown}
	}

	var currentTotal int64
	if current != nil {
		currentTotal = current.TotalMs
	}
	diff := currentTotal - previous.TotalMs

	t := Trend{DiffMs: diff, TopCategory: TopUnknown}
	switch {
	case diff > 0:
		t.Direction = TrendIncrease
	case diff < 0:
		t.Direction = TrendDecrease
	default:
		t.Direction = TrendUnchanged
	}

	if current != nil && len(current.TopCategories) > 0 && len(previous.TopCategories) > 0 {
		if current.TopCategories[0].Name == previous.TopCategories[0].Name {
			t.TopCategory = TopSame
		} else {
			t.TopCategory = TopChanged
		}
	}
	return t
}
