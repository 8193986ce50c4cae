package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/trackveil/internal/aggregate"
	"github.com/alexanderramin/trackveil/internal/cli/formatter"
	"github.com/alexanderramin/trackveil/internal/domain"
)

func newTimesheetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timesheet",
		Short: "Log and analyze timesheet entries",
	}

	cmd.AddCommand(
		newTimesheetLogCmd(app),
		newTimesheetListCmd(app),
		newTimesheetImportCmd(app),
		newTimesheetSummaryCmd(app),
		newTimesheetTrendCmd(app),
	)

	return cmd
}

func newTimesheetLogCmd(app *App) *cobra.Command {
	var id, date, user, workstream, notes, status string
	var hours float64

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a timesheet entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", date, err)
			}

			entry := &domain.TimesheetEntry{
				ID:             id,
				Date:           day,
				UserID:         user,
				WorkstreamID:   workstream,
				Hours:          hours,
				Notes:          notes,
				ApprovalStatus: domain.ApprovalStatus(status),
			}

			if err := app.Timesheets.Log(context.Background(), entry); err != nil {
				return err
			}

			fmt.Printf("Logged %sh on %s [%s]\n",
				fmt.Sprintf("%g", entry.Hours), entry.WorkstreamID, entry.AnonymizedID)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Original id (generated when omitted)")
	cmd.Flags().StringVar(&date, "date", "", "Entry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&user, "user", "", "Profile id")
	cmd.Flags().StringVar(&workstream, "workstream", "", "Workstream id")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Hours logged")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text note")
	cmd.Flags().StringVar(&status, "status", "open", "Approval status (open|submitted|approved|rejected)")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("workstream")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}

func newTimesheetListCmd(app *App) *cobra.Command {
	var public bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List timesheet entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var (
				entries []*domain.TimesheetEntry
				err     error
			)
			if public {
				entries, err = app.Timesheets.ListPublic(ctx)
			} else {
				entries, err = app.Timesheets.List(ctx)
			}
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No timesheet entries found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatTimesheetList(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&public, "public", false, "Show the pseudonymized projection")

	return cmd
}

func newTimesheetImportCmd(app *App) *cobra.Command {
	var skipInvalid bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import timesheet entries from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Timesheets.Import(context.Background(), args[0], skipInvalid)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d entries\n", result.Imported)
			for _, rejection := range result.Rejected {
				fmt.Printf("  skipped: %v\n", rejection)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipInvalid, "skip-invalid", false, "Skip invalid rows instead of rejecting the batch")

	return cmd
}

func newTimesheetSummaryCmd(app *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize logged hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Timesheets.Summary(context.Background(), aggregate.TimeFilter{
				Start: from,
				End:   to,
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatTimesheetSummary(summary))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "End date, inclusive (YYYY-MM-DD)")

	return cmd
}

func newTimesheetTrendCmd(app *App) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Show logged hours over time",
		RunE: func(cmd *cobra.Command, args []string) error {
			trend, err := app.Timesheets.Trend(context.Background(), period)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatTrend(trend))
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", aggregate.TrendDaily, "Bucket size (daily|weekly|monthly)")

	return cmd
}
