package service

import (
	"testing"
	"time"
)

// fixedClock returns a now func pinned to the given RFC3339 instant.
func fixedClock(t *testing.T, rfc string) func() time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, rfc)
	if err != nil {
		t.Fatalf("bad clock literal %q: %v", rfc, err)
	}
	return func() time.Time { return ts }
}

// steppingClock returns a now func that yields each instant in order,
// repeating the last one when the sequence runs out.
func steppingClock(t *testing.T, instants ...time.Time) func() time.Time {
	t.Helper()
	i := 0
	return func() time.Time {
		ts := instants[i]
		if i < len(instants)-1 {
			i++
		}
		return ts
	}
}
