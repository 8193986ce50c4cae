package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/trackveil/internal/cli/formatter"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the project rollup",
		RunE: func(cmd *cobra.Command, args []string) error {
			rollup, err := app.Dashboard.Rollup(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatDashboard(rollup))
			return nil
		},
	}
}
