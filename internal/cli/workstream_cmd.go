package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/trackveil/internal/cli/formatter"
	"github.com/alexanderramin/trackveil/internal/domain"
)

func newWorkstreamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workstream",
		Short: "Manage workstreams",
	}

	cmd.AddCommand(
		newWorkstreamCreateCmd(app),
		newWorkstreamGetCmd(app),
		newWorkstreamListCmd(app),
	)

	return cmd
}

func newWorkstreamCreateCmd(app *App) *cobra.Command {
	var id, name, description, status, priority, start, end string
	var estimated float64
	var profiles, deps, tags []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a workstream",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := &domain.Workstream{
				ID:               id,
				Name:             name,
				Description:      description,
				Status:           domain.WorkstreamStatus(status),
				Priority:         domain.WorkstreamPriority(priority),
				EstimatedHours:   estimated,
				AssignedProfiles: profiles,
				Dependencies:     deps,
				Tags:             tags,
			}
			if start != "" {
				d, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				w.StartDate = &d
			}
			if end != "" {
				d, err := time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				w.EndDate = &d
			}

			if err := app.Workstreams.Create(context.Background(), w); err != nil {
				return err
			}

			fmt.Printf("Created workstream %s [%s]\n", w.Name, w.AnonymizedID)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Original id (generated when omitted)")
	cmd.Flags().StringVar(&name, "name", "", "Workstream name")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&status, "status", "planned", "Status (planned|in_progress|on_hold|completed|cancelled)")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority (low|medium|high|critical)")
	cmd.Flags().Float64Var(&estimated, "estimated-hours", 0, "Estimated hours")
	cmd.Flags().StringSliceVar(&profiles, "profile", nil, "Assigned profile id (repeatable)")
	cmd.Flags().StringSliceVar(&deps, "depends-on", nil, "Dependency workstream id (repeatable)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newWorkstreamGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a workstream by original id or token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			w, err := app.Workstreams.Get(ctx, args[0])
			if err != nil {
				if byToken, tokenErr := app.Workstreams.GetByToken(ctx, args[0]); tokenErr == nil {
					w = byToken
					err = nil
				}
			}
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatWorkstream(w))
			return nil
		},
	}
}

func newWorkstreamListCmd(app *App) *cobra.Command {
	var public bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workstreams",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var (
				workstreams []*domain.Workstream
				err         error
			)
			if public {
				workstreams, err = app.Workstreams.ListPublic(ctx)
			} else {
				workstreams, err = app.Workstreams.List(ctx)
			}
			if err != nil {
				return err
			}
			if len(workstreams) == 0 {
				fmt.Println("No workstreams found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatWorkstreamList(workstreams))
			return nil
		},
	}

	cmd.Flags().BoolVar(&public, "public", false, "Show the pseudonymized projection")

	return cmd
}
