package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/trackveil/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Profiles    service.ProfileService
	Workstreams service.WorkstreamService
	Timesheets  service.TimesheetService
	Budgets     service.BudgetService
	Dashboard   service.DashboardService
	Reveal      service.RevealService
}

// NewRootCmd creates the top-level "trackveil" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "trackveil",
		Short: "Pseudonymizing project and time tracker",
	}

	root.AddCommand(
		newProfileCmd(app),
		newWorkstreamCmd(app),
		newTimesheetCmd(app),
		newBudgetCmd(app),
		newDashboardCmd(app),
		newRevealCmd(app),
		newMetricsCmd(),
	)

	return root
}
