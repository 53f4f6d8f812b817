package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SivaK1-Turing/mealplanner/internal/calendar"
	"github.com/SivaK1-Turing/mealplanner/internal/cli/formatter"
	"github.com/SivaK1-Turing/mealplanner/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	var assignFlags []string
	var clearExisting, interactive bool

	cmd := &cobra.Command{
		Use:   "week <start-date>",
		Short: "Plan a whole week of meals",
		Long: `Plan a 7-day window starting at the given date. Assignments use
"<weekday>_<mealtype>" keys matched against each date's actual weekday,
e.g. --assign monday_dinner=5 --assign tuesday_lunch=2.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			start, err := parseDateArg(args[0])
			if err != nil {
				return err
			}

			var assignments map[string]int64
			if interactive {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				assignments, err = promptWeekAssignments(ctx, app, start)
			} else {
				assignments, err = parseAssignFlags(assignFlags)
			}
			if err != nil {
				return err
			}
			if len(assignments) == 0 {
				fmt.Println("No assignments given; nothing to plan.")
				return nil
			}

			result, err := app.Planner.PlanWeek(ctx, start, assignments, clearExisting)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderWeekPlanResult(result))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&assignFlags, "assign", nil, "Slot assignment as <weekday>_<mealtype>=<recipe-id> (repeatable)")
	cmd.Flags().BoolVar(&clearExisting, "clear", false, "Clear the 7-day window before planning")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Fill assignments through a form")

	return cmd
}

func parseAssignFlags(flags []string) (map[string]int64, error) {
	assignments := make(map[string]int64, len(flags))
	for _, f := range flags {
		key, value, found := strings.Cut(f, "=")
		if !found {
			return nil, fmt.Errorf("invalid assignment %q (expected <weekday>_<mealtype>=<recipe-id>)", f)
		}
		recipeID, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid recipe id in assignment %q", f)
		}
		assignments[strings.ToLower(strings.TrimSpace(key))] = recipeID
	}
	return assignments, nil
}

// promptWeekAssignments walks the 7-day window one day at a time, offering a
// recipe select per meal slot. Zero means leave the slot unplanned.
func promptWeekAssignments(ctx context.Context, app *App, start time.Time) (map[string]int64, error) {
	recipes, err := app.Recipes.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("no recipes available; add one with 'recipe add' first")
	}

	options := make([]huh.Option[int64], 0, len(recipes)+1)
	options = append(options, huh.NewOption("(skip)", int64(0)))
	for _, r := range recipes {
		options = append(options, huh.NewOption(fmt.Sprintf("#%d %s", r.ID, r.Title), r.ID))
	}

	assignments := make(map[string]int64)
	for offset := 0; offset < 7; offset++ {
		day := start.AddDate(0, 0, offset)

		mealTypes := domain.MealTypes()
		choices := make([]int64, len(mealTypes))
		fields := make([]huh.Field, 0, len(mealTypes))
		for i, mealType := range mealTypes {
			fields = append(fields, huh.NewSelect[int64]().
				Title(fmt.Sprintf("%s %s", day.Format("Monday 2006-01-02"), mealType)).
				Options(options...).
				Value(&choices[i]))
		}

		if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
			return nil, err
		}
		for i, mealType := range mealTypes {
			if choices[i] != 0 {
				assignments[calendar.SlotKey(day, mealType)] = choices[i]
			}
		}
	}
	return assignments, nil
}
