package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/trackveil/internal/cli/formatter"
	"github.com/alexanderramin/trackveil/internal/domain"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage team profiles",
	}

	cmd.AddCommand(
		newProfileCreateCmd(app),
		newProfileGetCmd(app),
		newProfileListCmd(app),
	)

	return cmd
}

func newProfileCreateCmd(app *App) *cobra.Command {
	var id, name, role, start, end string
	var hourlyRate, dailyRate, target float64
	var workstreams, skills []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a team profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Profile{
				ID:                id,
				Name:              name,
				Role:              role,
				HourlyRate:        hourlyRate,
				DailyRate:         dailyRate,
				Workstreams:       workstreams,
				Skills:            skills,
				UtilizationTarget: target,
			}
			if start != "" {
				d, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				p.StartDate = &d
			}
			if end != "" {
				d, err := time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				p.EndDate = &d
			}

			if err := app.Profiles.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Printf("Created profile %s [%s]\n", p.Name, p.AnonymizedID)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Original id (generated when omitted)")
	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&role, "role", "", "Role description")
	cmd.Flags().Float64Var(&hourlyRate, "hourly-rate", 0, "Hourly rate")
	cmd.Flags().Float64Var(&dailyRate, "daily-rate", 0, "Daily rate")
	cmd.Flags().Float64Var(&target, "target", 0, "Utilization target (0.0-1.0)")
	cmd.Flags().StringSliceVar(&workstreams, "workstream", nil, "Assigned workstream id (repeatable)")
	cmd.Flags().StringSliceVar(&skills, "skill", nil, "Skill (repeatable)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProfileGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a profile by original id or token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Profiles.Get(ctx, args[0])
			if err != nil {
				if strings.HasPrefix(args[0], "P") {
					if byToken, tokenErr := app.Profiles.GetByToken(ctx, args[0]); tokenErr == nil {
						p = byToken
						err = nil
					}
				}
				if err != nil {
					return err
				}
			}
			fmt.Printf("%s\n", formatter.FormatProfile(p))
			return nil
		},
	}
}

func newProfileListCmd(app *App) *cobra.Command {
	var public bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var (
				profiles []*domain.Profile
				err      error
			)
			if public {
				profiles, err = app.Profiles.ListPublic(ctx)
			} else {
				profiles, err = app.Profiles.List(ctx)
			}
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				fmt.Println("No profiles found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatProfileList(profiles))
			return nil
		},
	}

	cmd.Flags().BoolVar(&public, "public", false, "Show the pseudonymized projection")

	return cmd
}
