package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/chronolog/internal/cli/formatter"
	"github.com/alexanderramin/chronolog/internal/domain"
	"github.com/spf13/cobra"
)

func newTimerCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "timer",
		Short: "Open the interactive timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("the timer needs an interactive terminal")
			}
			return runTimerTUI(app)
		},
	}
}

// newRecordCmd logs a completed run with explicit times, for work that was
// not tracked live.
func newRecordCmd(app *App) *cobra.Command {
	var activityID, startClock, endClock, date string

	cmd := &cobra.Command{
		Use:   "record NAME",
		Short: "Record a completed time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			day := time.Now()
			if date != "" {
				parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
				if err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}
				day = parsed
			}

			start, err := parseClockFlag(startClock, day)
			if err != nil {
				return err
			}
			end, err := parseClockFlag(endClock, day)
			if err != nil {
				return err
			}
			if !end.After(start) {
				return domain.ErrEndBeforeStart
			}

			link := domain.NoLink()
			if activityID != "" {
				a, err := resolveActivity(ctx, app, activityID)
				if err != nil {
					return err
				}
				link = domain.LinkTo(a.ID)
			}

			entry, err := app.Entries.Record(ctx, args[0], link, start, end)
			if err != nil {
				return err
			}

			fmt.Printf("Recorded %s (%s)\n", formatter.FormatDurationLong(entry.DurationMs), entry.Duration)
			return nil
		},
	}

	cmd.Flags().StringVar(&activityID, "activity", "", "Activity ID to bind the entry to")
	cmd.Flags().StringVar(&startClock, "start", "", `Start time ("9:00 AM")`)
	cmd.Flags().StringVar(&endClock, "end", "", `End time ("10:30 AM")`)
	cmd.Flags().StringVar(&date, "date", "", "Calendar date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// parseClockFlag parses a 12-hour clock flag value onto the given day.
func parseClockFlag(clock string, day time.Time) (time.Time, error) {
	t, err := time.ParseInLocation("3:04 PM", clock, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", clock, domain.ErrInvalidTime)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}
