package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/chronolog/internal/cli/formatter"
	"github.com/alexanderramin/chronolog/internal/domain"
	"github.com/spf13/cobra"
)

// timelineDayWindow caps how many recent days the log view renders.
const timelineDayWindow = 14

func newLogCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent entries grouped by day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			groups, err := app.Entries.Timeline(ctx, days)
			if err != nil {
				return err
			}
			activities, err := app.Activities.List(ctx)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatTimeline(groups, activities, time.Now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", timelineDayWindow, "Number of recent days to show (0 for all)")
	return cmd
}

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Edit recorded entries",
	}

	cmd.AddCommand(
		newEntryEditCmd(app),
		newEntryReassignCmd(app),
		newEntryRemoveCmd(app),
	)

	return cmd
}

func newEntryEditCmd(app *App) *cobra.Command {
	var startClock, endClock string

	cmd := &cobra.Command{
		Use:   "edit ENTRY",
		Short: "Correct an entry's start and end times",
		Long: `Correct an entry's start and end times on its original calendar date.
Times use the 12-hour clock, e.g. "9:00 AM". Without flags an interactive
form is shown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			entry, sel, err := resolveEntry(ctx, app, args[0])
			if err != nil {
				return err
			}

			if startClock == "" && endClock == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("pass --start and --end, or run interactively")
				}
				startClock, endClock, err = runEditTimesForm(entry)
				if err != nil {
					return err
				}
			}
			if startClock == "" || endClock == "" {
				return fmt.Errorf("both --start and --end are required")
			}

			if err := app.Entries.EditTimes(ctx, sel, startClock, endClock); err != nil {
				return err
			}
			fmt.Println("Entry updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&startClock, "start", "", `New start time ("9:00 AM")`)
	cmd.Flags().StringVar(&endClock, "end", "", `New end time ("10:30 AM")`)
	return cmd
}

func newEntryReassignCmd(app *App) *cobra.Command {
	var activityRef string
	var none bool

	cmd := &cobra.Command{
		Use:   "reassign ENTRY",
		Short: "Reassign an entry to a different activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, sel, err := resolveEntry(ctx, app, args[0])
			if err != nil {
				return err
			}

			link := domain.NoLink()
			if !none {
				if activityRef == "" {
					return fmt.Errorf("pass --activity, or --none to unlink")
				}
				a, err := resolveActivity(ctx, app, activityRef)
				if err != nil {
					return err
				}
				link = domain.LinkTo(a.ID)
			}

			if err := app.Entries.Reassign(ctx, sel, link); err != nil {
				return err
			}
			fmt.Println("Entry reassigned")
			return nil
		},
	}

	cmd.Flags().StringVar(&activityRef, "activity", "", "Activity to assign")
	cmd.Flags().BoolVar(&none, "none", false, "Unlink the entry from any activity")
	return cmd
}

func newEntryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ENTRY",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, sel, err := resolveEntry(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Entries.Delete(ctx, sel); err != nil {
				return err
			}
			fmt.Println("Entry deleted")
			return nil
		},
	}
}
