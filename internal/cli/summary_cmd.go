package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/chronolog/internal/cli/formatter"
	"github.com/alexanderramin/chronolog/internal/summary"
	"github.com/spf13/cobra"
)

func newDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day [DATE]",
		Short: "Daily summary (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := summary.DateKey(time.Now())
			if len(args) == 1 {
				if _, err := summary.ParseDateKey(args[0]); err != nil {
					return fmt.Errorf("parsing date %q: %w", args[0], err)
				}
				day = args[0]
			}

			s, err := app.Summaries.Daily(context.Background(), day)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatDaily(day, s))
			return nil
		},
	}
}

func newWeekCmd(app *App) *cobra.Command {
	var startDate, note string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Weekly summary and reflection",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			weekStart := summary.WeekStart(time.Now())
			if startDate != "" {
				t, err := summary.ParseDateKey(startDate)
				if err != nil {
					return fmt.Errorf("parsing --start: %w", err)
				}
				weekStart = summary.WeekStart(t)
			}

			if cmd.Flags().Changed("note") {
				if err := app.Reflections.SetReflection(ctx, weekStart, note); err != nil {
					return err
				}
			}

			s, err := app.Summaries.Weekly(ctx, weekStart)
			if err != nil {
				return err
			}
			reflection, err := app.Reflections.Reflection(ctx, weekStart)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatWeekly(weekStart, s, reflection))
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Any date inside the week (YYYY-MM-DD, default this week)")
	cmd.Flags().StringVar(&note, "note", "", "Set the week's reflection note")
	return cmd
}

func newMonthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Monthly summary with trend vs the previous month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			monthKey := summary.MonthKey(time.Now())
			if len(args) == 1 {
				monthKey = args[0]
			}

			s, err := app.Summaries.Monthly(ctx, monthKey)
			if err != nil {
				return err
			}
			_, trend, err := app.Summaries.MonthlyTrend(ctx, monthKey)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatMonthly(monthKey, s, trend))
			return nil
		},
	}
}
