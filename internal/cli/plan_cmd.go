package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SivaK1-Turing/mealplanner/internal/cli/formatter"
	"github.com/SivaK1-Turing/mealplanner/internal/domain"
	"github.com/SivaK1-Turing/mealplanner/internal/service"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	var servings int
	var notes string
	var allowConflicts bool

	cmd := &cobra.Command{
		Use:   "schedule <date> <meal-type> <recipe-id>",
		Short: "Schedule a recipe onto a date and meal slot",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateArg(args[0])
			if err != nil {
				return err
			}
			mealType, err := domain.ParseMealType(args[1])
			if err != nil {
				return err
			}
			recipeID, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid recipe id %q", args[2])
			}

			plan, err := app.Planner.Schedule(context.Background(), service.ScheduleRequest{
				Date:           date,
				MealType:       mealType,
				RecipeID:       recipeID,
				Servings:       servings,
				Notes:          notes,
				AllowConflicts: allowConflicts,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Scheduled plan #%d: %s %s recipe #%d\n",
				plan.ID, formatter.HumanDate(plan.Date), plan.MealType, plan.RecipeID)
			return nil
		},
	}

	cmd.Flags().IntVar(&servings, "servings", 1, "Number of servings")
	cmd.Flags().StringVar(&notes, "notes", "", "Optional notes")
	cmd.Flags().BoolVar(&allowConflicts, "allow-conflicts", false, "Allow a second meal of the same type on the same date")

	return cmd
}

func newPlansCmd(app *App) *cobra.Command {
	var endStr string

	cmd := &cobra.Command{
		Use:   "plans <date>",
		Short: "List plans for a date or range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRangeFlags(args[0], endStr)
			if err != nil {
				return err
			}

			plans, err := app.Planner.PlansForRange(context.Background(), start, end)
			if err != nil {
				return err
			}
			if len(plans) == 0 {
				fmt.Println("No plans found.")
				return nil
			}

			fmt.Print(formatter.RenderBox("Meal plans", renderPlanTable(plans)))
			return nil
		},
	}

	cmd.Flags().StringVar(&endStr, "until", "", "End date of the range (inclusive)")

	return cmd
}

func renderPlanTable(plans []*domain.Plan) string {
	headers := []string{"ID", "DATE", "MEAL", "RECIPE", "SERVINGS", "DONE", "NOTES"}
	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			formatter.HumanDate(p.Date),
			formatter.MealTypeLabel(p.MealType),
			fmt.Sprintf("#%d", p.RecipeID),
			strconv.Itoa(p.Servings),
			formatter.Checkbox(p.Completed),
			formatter.Dim(p.Notes),
		})
	}
	return formatter.RenderTable(headers, rows)
}

func newUpdateCmd(app *App) *cobra.Command {
	var dateStr, mealTypeStr, notes string
	var recipeID int64
	var servings int

	cmd := &cobra.Command{
		Use:   "update <plan-id>",
		Short: "Update fields of a meal plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid plan id %q", args[0])
			}

			var patch service.PlanPatch
			if cmd.Flags().Changed("date") {
				date, err := parseDateArg(dateStr)
				if err != nil {
					return err
				}
				patch.Date = &date
			}
			if cmd.Flags().Changed("meal-type") {
				patch.MealType = &mealTypeStr
			}
			if cmd.Flags().Changed("recipe") {
				patch.RecipeID = &recipeID
			}
			if cmd.Flags().Changed("servings") {
				patch.Servings = &servings
			}
			if cmd.Flags().Changed("notes") {
				patch.Notes = &notes
			}

			plan, err := app.Planner.Update(context.Background(), id, patch)
			if err != nil {
				return err
			}
			if plan == nil {
				fmt.Printf("Plan %d not found.\n", id)
				return nil
			}

			fmt.Printf("Updated plan #%d: %s %s recipe #%d\n",
				plan.ID, formatter.HumanDate(plan.Date), plan.MealType, plan.RecipeID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "New date")
	cmd.Flags().StringVar(&mealTypeStr, "meal-type", "", "New meal type")
	cmd.Flags().Int64Var(&recipeID, "recipe", 0, "New recipe id")
	cmd.Flags().IntVar(&servings, "servings", 0, "New serving count")
	cmd.Flags().StringVar(&notes, "notes", "", "New notes")

	return cmd
}

func newCompleteCmd(app *App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "complete <plan-id>",
		Short: "Mark a meal plan completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid plan id %q", args[0])
			}

			plan, err := app.Planner.Complete(context.Background(), id, !undo)
			if err != nil {
				return err
			}
			if plan == nil {
				fmt.Printf("Plan %d not found.\n", id)
				return nil
			}

			state := "completed"
			if undo {
				state = "not completed"
			}
			fmt.Printf("Plan #%d marked %s.\n", plan.ID, state)
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the plan as not completed")

	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <plan-id>",
		Short: "Delete a meal plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid plan id %q", args[0])
			}

			deleted, err := app.Planner.Delete(context.Background(), id)
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Printf("Plan %d not found.\n", id)
				return nil
			}
			fmt.Printf("Deleted plan #%d.\n", id)
			return nil
		},
	}
}

func newClearCmd(app *App) *cobra.Command {
	var endStr, mealTypeStr string

	cmd := &cobra.Command{
		Use:   "clear <date>",
		Short: "Clear plans for a date or range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRangeFlags(args[0], endStr)
			if err != nil {
				return err
			}

			var mealType *domain.MealType
			if mealTypeStr != "" {
				parsed, err := domain.ParseMealType(mealTypeStr)
				if err != nil {
					return err
				}
				mealType = &parsed
			}

			count, err := app.Planner.ClearSchedule(context.Background(), start, end, mealType)
			if err != nil {
				return err
			}
			fmt.Printf("Cleared %d plans.\n", count)
			return nil
		},
	}

	cmd.Flags().StringVar(&endStr, "until", "", "End date of the range (inclusive)")
	cmd.Flags().StringVar(&mealTypeStr, "meal-type", "", "Restrict clearing to one meal type")

	return cmd
}
