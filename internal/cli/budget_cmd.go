package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/trackveil/internal/cli/formatter"
	"github.com/alexanderramin/trackveil/internal/domain"
)

func newBudgetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage budgets and forecasts",
	}

	cmd.AddCommand(
		newBudgetAddCmd(app),
		newBudgetForecastCmd(app),
		newBudgetListCmd(app),
		newBudgetSummaryCmd(app),
	)

	return cmd
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	to, err := time.Parse("2006-01-02", end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	return from, to, nil
}

func newBudgetAddCmd(app *App) *cobra.Command {
	var id, workstream, profile, budgetType, period, start, end, notes string
	var plannedHours, plannedAmount, actualHours, actualAmount float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a budget entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseDateRange(start, end)
			if err != nil {
				return err
			}

			b := &domain.BudgetEntry{
				ID:            id,
				WorkstreamID:  workstream,
				ProfileID:     profile,
				Type:          domain.BudgetType(budgetType),
				Period:        domain.BudgetPeriod(period),
				StartDate:     from,
				EndDate:       to,
				PlannedHours:  plannedHours,
				PlannedAmount: plannedAmount,
				ActualHours:   actualHours,
				ActualAmount:  actualAmount,
				Status:        domain.BudgetDraft,
				Notes:         notes,
			}

			if err := app.Budgets.CreateEntry(context.Background(), b); err != nil {
				return err
			}

			fmt.Printf("Added budget entry for %s [%s]\n", b.WorkstreamID, b.AnonymizedID)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Original id (generated when omitted)")
	cmd.Flags().StringVar(&workstream, "workstream", "", "Workstream id")
	cmd.Flags().StringVar(&profile, "profile", "", "Profile id (optional)")
	cmd.Flags().StringVar(&budgetType, "type", "labor", "Budget type (labor|non_labor|total)")
	cmd.Flags().StringVar(&period, "period", "monthly", "Period (monthly|quarterly|annually)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&plannedHours, "planned-hours", 0, "Planned hours")
	cmd.Flags().Float64Var(&plannedAmount, "planned-amount", 0, "Planned amount")
	cmd.Flags().Float64Var(&actualHours, "actual-hours", 0, "Actual hours")
	cmd.Flags().Float64Var(&actualAmount, "actual-amount", 0, "Actual amount")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text note")
	_ = cmd.MarkFlagRequired("workstream")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newBudgetForecastCmd(app *App) *cobra.Command {
	var id, workstream, profile, period, start, end string
	var hours, amount, confidence float64
	var assumptions []string

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Add a budget forecast",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseDateRange(start, end)
			if err != nil {
				return err
			}

			f := &domain.BudgetForecast{
				ID:              id,
				WorkstreamID:    workstream,
				ProfileID:       profile,
				Period:          domain.BudgetPeriod(period),
				StartDate:       from,
				EndDate:         to,
				ForecastHours:   hours,
				ForecastAmount:  amount,
				ConfidenceLevel: confidence,
				Assumptions:     assumptions,
			}

			if err := app.Budgets.CreateForecast(context.Background(), f); err != nil {
				return err
			}

			fmt.Printf("Added forecast for %s [%s]\n", f.WorkstreamID, f.AnonymizedID)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Original id (generated when omitted)")
	cmd.Flags().StringVar(&workstream, "workstream", "", "Workstream id")
	cmd.Flags().StringVar(&profile, "profile", "", "Profile id (optional)")
	cmd.Flags().StringVar(&period, "period", "monthly", "Period (monthly|quarterly|annually)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Forecast hours")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Forecast amount")
	cmd.Flags().Float64Var(&confidence, "confidence", 0.5, "Confidence level (0.0-1.0)")
	cmd.Flags().StringSliceVar(&assumptions, "assumption", nil, "Assumption (repeatable)")
	_ = cmd.MarkFlagRequired("workstream")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newBudgetListCmd(app *App) *cobra.Command {
	var forecasts bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List budget entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if forecasts {
				fs, err := app.Budgets.ListForecasts(ctx)
				if err != nil {
					return err
				}
				if len(fs) == 0 {
					fmt.Println("No forecasts found.")
					return nil
				}
				fmt.Printf("%s\n", formatter.FormatForecastList(fs))
				return nil
			}

			entries, err := app.Budgets.ListEntries(ctx)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No budget entries found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatBudgetList(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&forecasts, "forecasts", false, "List forecasts instead of entries")

	return cmd
}

func newBudgetSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary WORKSTREAM",
		Short: "Summarize a workstream's budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Budgets.Summary(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatBudgetSummary(summary))
			return nil
		},
	}
}
