package main

import (
	"fmt"
	"os"
	"time"

	"github.com/SivaK1-Turing/mealplanner/internal/cli"
	"github.com/SivaK1-Turing/mealplanner/internal/config"
	"github.com/SivaK1-Turing/mealplanner/internal/db"
	"github.com/SivaK1-Turing/mealplanner/internal/repository"
	"github.com/SivaK1-Turing/mealplanner/internal/service"
	"github.com/mattn/go-isatty"
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
		return fmt.Errorf("loading configuration: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and the unit of work for transactional mutations.
	planRepo := repository.NewSQLitePlanRepo(database)
	recipeRepo := repository.NewSQLiteRecipeRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.Debug {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Recipes:  service.NewRecipeService(recipeRepo, observer),
		Planner:  service.NewPlannerService(planRepo, recipeRepo, uow, observer),
		Calendar: service.NewCalendarService(planRepo, recipeRepo, time.Now),
		Stats:    service.NewStatsService(planRepo),

		WeekStartMonday: cfg.WeekStartMonday,
	}

	// Interactive week planning needs a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}
