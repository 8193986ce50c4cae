package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/alexanderramin/trackveil/internal/cli"
	"github.com/alexanderramin/trackveil/internal/config"
	"github.com/alexanderramin/trackveil/internal/db"
	"github.com/alexanderramin/trackveil/internal/privacy"
	"github.com/alexanderramin/trackveil/internal/projector"
	"github.com/alexanderramin/trackveil/internal/repository"
	"github.com/alexanderramin/trackveil/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Plain output when piped.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	store := repository.NewEntityStore(
		repository.NewSQLiteProfileRepo(database),
		repository.NewSQLiteWorkstreamRepo(database),
		repository.NewSQLiteTimesheetRepo(database),
		repository.NewSQLiteBudgetRepo(database),
		repository.NewSQLiteForecastRepo(database),
	)

	uow := db.NewSQLiteUnitOfWork(database)
	mapper := privacy.NewTokenMapper(database)
	anonymizer := privacy.NewAnonymizer(cfg.Privacy.Salt)
	proj := projector.New(uow, anonymizer)

	observer := service.NewLogUseCaseObserver(os.Stderr)

	app := &cli.App{
		Profiles:    service.NewProfileService(store, proj, observer),
		Workstreams: service.NewWorkstreamService(store, proj, observer),
		Timesheets:  service.NewTimesheetService(store, proj, observer),
		Budgets:     service.NewBudgetService(store, proj, observer),
		Dashboard:   service.NewDashboardService(store, observer),
		Reveal:      service.NewRevealService(store, mapper, observer),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
