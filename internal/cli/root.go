package cli

import (
	"github.com/alexanderramin/chronolog/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Activities  service.ActivityService
	Timer       service.TimerService
	Entries     service.EntryService
	Summaries   service.SummaryService
	Reflections service.ReflectionService
	Export      service.ExportService

	// IsInteractive reports whether stdin is a terminal; the timer TUI
	// refuses to start without one.
	IsInteractive func() bool

	Log *zap.Logger
}

// NewRootCmd creates the top-level "chronolog" command and registers all
// subcommands against the provided App. Running with no arguments on a
// terminal opens the interactive timer.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "chronolog",
		Short: "Personal time tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return cmd.Help()
			}
			return runTimerTUI(app)
		},
	}

	root.AddCommand(
		newTimerCmd(app),
		newRecordCmd(app),
		newLogCmd(app),
		newEntryCmd(app),
		newActivityCmd(app),
		newDayCmd(app),
		newWeekCmd(app),
		newMonthCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}

// runTimerTUI starts the interactive timer as a full bubbletea program.
func runTimerTUI(app *App) error {
	m := newTimerModel(app)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
