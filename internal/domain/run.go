package domain

import "time"

// TimerRun is the ephemeral in-progress timer state. It is never persisted;
// stopping a run turns it into a TimeEntry.
// Invariant: Running implies a non-zero StartTime.
type TimerRun struct {
	ActivityName string
	Link         ActivityLink
	StartTime    time.Time
	Running      bool
}

// Elapsed returns the display elapsed time at the given instant, or zero
// when no run is active.
func (r TimerRun) Elapsed(now time.Time) time.Duration {
	if !r.Running || r.StartTime.IsZero() {
		return 0
	}
	return now.Sub(r.StartTime)
}
