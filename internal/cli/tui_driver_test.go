package cli

import (
	"testing"

	"github.com/alexanderramin/chronolog/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to timerModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the timer model for a test App, sets a terminal
// size, and drains Init() (which loads activities, the timeline, and
// today's summary from the in-memory store).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newTimerModel(app)
	d := teatest.New(t, m, teatest.WithSize(100, 36))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) model() timerModel {
	return d.Model.(timerModel)
}

// InputValue returns the current text in the name input.
func (d *TestDriver) InputValue() string {
	return d.model().input.Value()
}

// SelectedActivity returns the name of the activity the next run will be
// bound to, or "" when unbound.
func (d *TestDriver) SelectedActivity() string {
	m := d.model()
	if m.selected < 0 || m.selected >= len(m.activities) {
		return ""
	}
	return m.activities[m.selected].Name
}

// Status returns the last status line shown after a run was finalized.
func (d *TestDriver) Status() string {
	return d.model().status
}

// Err returns the error surfaced in the view, if any.
func (d *TestDriver) Err() error {
	return d.model().err
}

// IsQuitting reports whether the model asked the runtime to exit.
func (d *TestDriver) IsQuitting() bool {
	return d.Quitting
}
