package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/chronolog/internal/cli/formatter"
	"github.com/alexanderramin/chronolog/internal/domain"
	"github.com/alexanderramin/chronolog/internal/summary"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// elapsedTickInterval drives the live stopwatch readout. Display only; the
// recorded duration is computed from timestamps at stop time.
const elapsedTickInterval = 100 * time.Millisecond

// timerModel is the interactive timer: a name input, an optional activity
// binding, the live elapsed readout, and the recent timeline.
type timerModel struct {
	app *App

	input      textinput.Model
	activities []domain.Activity
	selected   int // index into activities, -1 for no binding

	groups []summary.DayGroup
	daily  *summary.DailySummary

	width  int
	height int
	status string
	err    error
}

type tickMsg time.Time

type timerDataMsg struct {
	activities []domain.Activity
	groups     []summary.DayGroup
	daily      *summary.DailySummary
	err        error
}

type runFinalizedMsg struct {
	entry *domain.TimeEntry
	err   error
}

func newTimerModel(app *App) timerModel {
	input := textinput.New()
	input.Placeholder = "What are you working on?"
	input.CharLimit = 80
	input.Focus()

	return timerModel{
		app:      app,
		input:    input,
		selected: -1,
	}
}

func (m timerModel) Init() tea.Cmd {
	return tea.Batch(m.loadData(), textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(elapsedTickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadData refreshes the registry, the 14-day timeline, and today's
// summary in one command.
func (m timerModel) loadData() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		var msg timerDataMsg
		msg.activities, msg.err = app.Activities.List(ctx)
		if msg.err != nil {
			return msg
		}
		msg.groups, msg.err = app.Entries.Timeline(ctx, timelineDayWindow)
		if msg.err != nil {
			return msg
		}
		msg.daily, msg.err = app.Summaries.Daily(ctx, summary.DateKey(time.Now()))
		return msg
	}
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tick()

	case timerDataMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.activities = msg.activities
		m.groups = msg.groups
		m.daily = msg.daily
		if m.selected >= len(m.activities) {
			m.selected = -1
		}
		return m, nil

	case runFinalizedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		if msg.entry != nil {
			m.status = fmt.Sprintf("Recorded %s (%s)",
				msg.entry.ActivityName, formatter.FormatDurationLong(msg.entry.DurationMs))
		}
		return m, m.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.selected = m.cycleSelection(1)
			return m, nil
		case "shift+tab":
			m.selected = m.cycleSelection(-1)
			return m, nil
		case "enter":
			cmd := m.startRun()
			m.input.Reset()
			return m, cmd
		case "ctrl+s":
			return m, m.stopRun()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// cycleSelection moves the activity binding through none -> each activity.
func (m timerModel) cycleSelection(dir int) int {
	if len(m.activities) == 0 {
		return -1
	}
	next := m.selected + dir
	if next >= len(m.activities) {
		return -1
	}
	if next < -1 {
		return len(m.activities) - 1
	}
	return next
}

// startRun starts (or switches) the timer with the current input. When a
// run is active it is finalized first; the service guarantees exactly one
// recorded entry for it.
func (m timerModel) startRun() tea.Cmd {
	app := m.app
	name := strings.TrimSpace(m.input.Value())
	if name == "" && m.selected >= 0 {
		name = m.activities[m.selected].Name
	}

	link := domain.NoLink()
	if m.selected >= 0 {
		link = domain.LinkTo(m.activities[m.selected].ID)
	}

	return func() tea.Msg {
		entry, err := app.Timer.Start(context.Background(), name, link)
		return runFinalizedMsg{entry: entry, err: err}
	}
}

func (m timerModel) stopRun() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		entry, err := app.Timer.Stop(context.Background())
		return runFinalizedMsg{entry: entry, err: err}
	}
}

// ── view ─────────────────────────────────────────────────────────────────────

var (
	timerTitleStyle = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	elapsedStyle    = lipgloss.NewStyle().Foreground(formatter.ColorGreen).Bold(true)
)

func (m timerModel) View() string {
	var b strings.Builder

	b.WriteString(timerTitleStyle.Render("chronolog") + "\n\n")

	run := m.app.Timer.Snapshot()
	if run.Running {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			formatter.Bold(run.ActivityName),
			elapsedStyle.Render(formatter.FormatElapsed(m.app.Timer.Elapsed()))))
		b.WriteString(formatter.Dim("enter: switch activity  ctrl+s: stop") + "\n\n")
	} else {
		b.WriteString(m.input.View() + "\n")
		b.WriteString(formatter.Dim("enter: start  tab: bind activity  esc: quit") + "\n\n")
	}

	b.WriteString(m.bindingLine() + "\n")

	if m.status != "" {
		b.WriteString(formatter.StyleGreen.Render(m.status) + "\n")
	}
	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}

	if m.daily != nil {
		b.WriteString("\n" + formatter.StyleHeader.Render("TODAY") + "  " +
			formatter.FormatDuration(m.daily.TotalMs) + "\n")
		for _, g := range m.daily.PerActivity {
			name := g.Name
			if name == "" {
				name = summary.NoActivityLabel
			}
			b.WriteString(fmt.Sprintf("  %-22s %s\n", name, formatter.FormatDuration(g.DurationMs)))
		}
	}

	if len(m.groups) > 0 {
		b.WriteString("\n" + formatter.FormatTimeline(m.groups, m.activities, time.Now()) + "\n")
	}

	return b.String()
}

// bindingLine renders the activity the next run will be linked to.
func (m timerModel) bindingLine() string {
	if m.selected < 0 || m.selected >= len(m.activities) {
		return formatter.Dim("Activity: none")
	}
	return "Activity: " + formatter.StyleBlue.Render(m.activities[m.selected].Name)
}
