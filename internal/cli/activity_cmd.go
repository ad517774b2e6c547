package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/chronolog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage activities",
	}

	cmd.AddCommand(
		newActivityAddCmd(app),
		newActivityListCmd(app),
		newActivityRenameCmd(app),
		newActivityRemoveCmd(app),
		newActivityShowCmd(app),
	)

	return cmd
}

func newActivityAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Create an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Activities.Add(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Added activity %q (%s)\n", a.Name, a.ID)
			return nil
		},
	}
}

func newActivityListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := app.Activities.List(context.Background())
			if err != nil {
				return err
			}
			if len(activities) == 0 {
				fmt.Println(formatter.Dim("No activities yet"))
				return nil
			}
			for _, a := range activities {
				created := time.UnixMilli(a.CreatedAt).Local().Format("2006-01-02")
				fmt.Printf("%s  %-24s %s\n", a.ID, formatter.Bold(a.Name), formatter.Dim(created))
			}
			return nil
		},
	}
}

func newActivityRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename ACTIVITY NEW_NAME",
		Short: "Rename an activity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveActivity(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Activities.Rename(ctx, a.ID, args[1]); err != nil {
				return err
			}
			fmt.Printf("Renamed %q to %q\n", a.Name, args[1])
			return nil
		},
	}
}

func newActivityRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ACTIVITY",
		Short: "Delete an activity (its entries are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveActivity(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Activities.Delete(ctx, a.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted activity %q; existing entries keep its id\n", a.Name)
			return nil
		},
	}
}

func newActivityShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ACTIVITY",
		Short: "Show an activity's recorded entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveActivity(ctx, app, args[0])
			if err != nil {
				return err
			}
			entries, err := app.Entries.ListByActivity(ctx, a.ID)
			if err != nil {
				return err
			}
			activities, err := app.Activities.List(ctx)
			if err != nil {
				return err
			}

			var totalMs int64
			for _, e := range entries {
				totalMs += e.DurationMs
			}

			fmt.Println(formatter.Bold(a.Name))
			fmt.Printf("Total: %s\n\n", formatter.FormatDurationLong(totalMs))
			fmt.Println(formatter.FormatEntryList(entries, activities))
			return nil
		},
	}
}
