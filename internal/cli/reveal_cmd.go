package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/trackveil/internal/cli/formatter"
)

func newRevealCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reveal TOKEN",
		Short: "Resolve a token back to its original value",
		Long: `Resolve a pseudonym token (User_..., Workstream_..., Note_...) or an
anonymized entity id back to the original data. Reveals are recorded in the
service log.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			revealed, err := app.Reveal.Reveal(context.Background(), args[0])
			if err != nil {
				return err
			}

			if revealed.Entity != nil {
				fmt.Printf("%s is %s %s\n",
					formatter.Bold(revealed.Token),
					string(revealed.Entity.Kind()),
					formatter.Bold(revealed.Original))
				return nil
			}

			fmt.Printf("%s (%s) is %s\n",
				formatter.Bold(revealed.Token),
				formatter.Dim(string(revealed.Category)),
				formatter.Bold(revealed.Original))
			return nil
		},
	}
}
