// Package teatest provides a synchronous test driver for bubbletea models.
//
// It stands in for tea.Program in tests: messages go straight through
// Update() and any returned Cmds are drained in the calling goroutine,
// so a test sees every state transition deterministically.
//
// Cmds that block on timers (cursor blink, the stopwatch tick) are run
// with a short timeout and skipped when they don't return promptly.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrainDepth bounds recursive command draining so a model that keeps
// returning Cmds cannot hang a test.
const maxDrainDepth = 100

// cmdTimeout separates instant Cmds (store reads, message factories) from
// timer-backed ones. The stopwatch tick waits 100ms and cursor blink
// ~530ms, so anything that misses this deadline is dropped.
const cmdTimeout = 10 * time.Millisecond

// Driver drives a tea.Model synchronously.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting records that tea.QuitMsg was seen during a drain. The
	// bubbletea runtime normally swallows that message, so models rarely
	// handle it themselves.
	Quitting bool
}

// Option configures a Driver during construction.
type Option func(*Driver)

// WithSize delivers an initial WindowSizeMsg before anything else runs.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		d.Model = updated
	}
}

// New wraps the model in a Driver. Call DrainInit afterwards to process
// the model's Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs the model's Init() command chain to completion.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drainCmd(d.Model.Init(), 0)
}

// Send dispatches a message through Update and drains the resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

// View returns the model's current rendered output.
func (d *Driver) View() string {
	return d.Model.View()
}

// PressKey sends a single character key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends a string one key event at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// PressEnter sends the Enter key.
func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

// PressEsc sends the Escape key.
func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

// PressTab sends the Tab key.
func (d *Driver) PressTab() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyTab})
}

// PressShiftTab sends Shift+Tab.
func (d *Driver) PressShiftTab() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyShiftTab})
}

// PressCtrlC sends Ctrl+C.
func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
}

// PressCtrlS sends Ctrl+S.
func (d *Driver) PressCtrlS() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyCtrlS})
}

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil || depth >= maxDrainDepth {
		if depth >= maxDrainDepth {
			d.T.Logf("teatest.Driver: drain depth limit (%d) reached", maxDrainDepth)
		}
		return
	}

	msg := execCmdWithTimeout(cmd)
	if msg == nil {
		return
	}

	if isCursorBlink(msg) {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if sub == nil {
				continue
			}
			d.drainCmd(sub, depth+1)
		}
		return
	}

	if _, isQuit := msg.(tea.QuitMsg); isQuit {
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(next, depth+1)
}

// execCmdWithTimeout runs a Cmd in its own goroutine and abandons it after
// cmdTimeout, returning nil for Cmds that wait on timer channels.
func execCmdWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink detects the bubbles/cursor blink messages. They are
// unexported types, so match on the type name.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
