package cli

import (
	"github.com/SivaK1-Turing/mealplanner/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Recipes  service.RecipeService
	Planner  service.PlannerService
	Calendar service.CalendarService
	Stats    service.StatsService

	// WeekStartMonday is the configured default for calendar views.
	WeekStartMonday bool
	// IsInteractive reports whether stdin is a terminal; interactive week
	// planning requires it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "mealplanner" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "mealplanner",
		Short:         "Meal scheduling, calendars and plan statistics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRecipeCmd(app),
		newScheduleCmd(app),
		newPlansCmd(app),
		newUpdateCmd(app),
		newCompleteCmd(app),
		newRemoveCmd(app),
		newClearCmd(app),
		newWeekCmd(app),
		newViewCmd(app),
		newStatsCmd(app),
		newSummaryCmd(app),
		newFreeSlotsCmd(app),
	)

	return root
}
