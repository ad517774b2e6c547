package domain

// EntrySelector identifies one entry for edit or delete. Entries created by
// this build carry a unique ID; for legacy data without an ID the original
// (start, end, duration) value-triple match is retained. A triple matches
// the first entry it encounters, which is ambiguous only for identical
// legacy rows.
type EntrySelector struct {
	ID         string
	StartTime  string
	EndTime    string
	DurationMs int64
}

// SelectEntry builds a selector for the given entry.
func SelectEntry(e TimeEntry) EntrySelector {
	if e.ID != "" {
		return EntrySelector{ID: e.ID}
	}
	return EntrySelector{
		StartTime:  e.StartTime.UTC().Format(entryTimeLayout),
		EndTime:    e.EndTime.UTC().Format(entryTimeLayout),
		DurationMs: e.DurationMs,
	}
}

// Matches reports whether the selector identifies the given entry.
func (s EntrySelector) Matches(e TimeEntry) bool {
	if s.ID != "" {
		return e.ID == s.ID
	}
	return e.StartTime.UTC().Format(entryTimeLayout) == s.StartTime &&
		e.EndTime.UTC().Format(entryTimeLayout) == s.EndTime &&
		e.DurationMs == s.DurationMs
}
