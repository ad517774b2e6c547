package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// entryTimeLayout matches the original wire format: UTC ISO-8601 with
// millisecond precision.
const entryTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// TimeEntry is one completed timer run.
// ID is assigned at creation; legacy entries have an empty ID and are
// identified by the (start, end, duration) value triple instead.
type TimeEntry struct {
	ID           string
	ActivityName string
	StartTime    time.Time
	EndTime      time.Time
	Duration     string
	DurationMs   int64
	Link         ActivityLink
}

// DurationLabel renders a millisecond span in the persisted "12m 34s" form.
func DurationLabel(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%dm %ds", ms/60000, (ms%60000)/1000)
}

// Recompute refreshes DurationMs and the Duration label from the current
// time bounds. Call after any mutation of StartTime or EndTime.
func (e *TimeEntry) Recompute() {
	e.DurationMs = e.EndTime.Sub(e.StartTime).Milliseconds()
	e.Duration = DurationLabel(e.DurationMs)
}

// WellFormed reports whether the entry can participate in aggregation.
// Malformed entries are skipped by summaries rather than aborting them.
func (e *TimeEntry) WellFormed() bool {
	return !e.StartTime.IsZero() && e.DurationMs > 0
}

type entryJSON struct {
	ID           string          `json:"id,omitempty"`
	ActivityName string          `json:"activityName"`
	StartTime    string          `json:"startTime"`
	EndTime      string          `json:"endTime"`
	Duration     string          `json:"duration"`
	DurationMs   int64           `json:"durationMs"`
	ActivityID   json.RawMessage `json:"activityId,omitempty"`
}

// MarshalJSON preserves the three-state activityId wire form: the field is
// absent for legacy entries, an explicit null for unlinked entries, and a
// string id for linked ones.
func (e TimeEntry) MarshalJSON() ([]byte, error) {
	out := entryJSON{
		ID:           e.ID,
		ActivityName: e.ActivityName,
		StartTime:    e.StartTime.UTC().Format(entryTimeLayout),
		EndTime:      e.EndTime.UTC().Format(entryTimeLayout),
		Duration:     e.Duration,
		DurationMs:   e.DurationMs,
	}
	switch e.Link.Kind {
	case LinkNone:
		out.ActivityID = json.RawMessage("null")
	case LinkLinked:
		out.ActivityID = json.RawMessage(strconv.Quote(e.Link.ID))
	}
	return json.Marshal(out)
}

func (e *TimeEntry) UnmarshalJSON(data []byte) error {
	var raw entryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	start, err := parseEntryTime(raw.StartTime)
	if err != nil {
		return fmt.Errorf("parsing startTime: %w", err)
	}
	end, err := parseEntryTime(raw.EndTime)
	if err != nil {
		return fmt.Errorf("parsing endTime: %w", err)
	}

	e.ID = raw.ID
	e.ActivityName = raw.ActivityName
	e.StartTime = start
	e.EndTime = end
	e.Duration = raw.Duration
	e.DurationMs = raw.DurationMs

	switch {
	case raw.ActivityID == nil:
		e.Link = LegacyLink()
	case string(raw.ActivityID) == "null":
		e.Link = NoLink()
	default:
		var id string
		if err := json.Unmarshal(raw.ActivityID, &id); err != nil {
			return fmt.Errorf("parsing activityId: %w", err)
		}
		if id == "" {
			// An empty id never resolved anywhere; treat it as legacy.
			e.Link = LegacyLink()
		} else {
			e.Link = LinkTo(id)
		}
	}
	return nil
}

// parseEntryTime accepts RFC3339 with or without fractional seconds.
func parseEntryTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}
