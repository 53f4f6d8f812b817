package cli

import (
	"context"
	"fmt"

	"github.com/SivaK1-Turing/mealplanner/internal/cli/formatter"
	"github.com/SivaK1-Turing/mealplanner/internal/domain"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var endStr string

	cmd := &cobra.Command{
		Use:   "plan-stats <start-date>",
		Short: "Show plan statistics for a date range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRangeFlags(args[0], endStr)
			if err != nil {
				return err
			}

			stats, err := app.Stats.Statistics(context.Background(), start, end)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderStatistics(stats))
			return nil
		},
	}

	cmd.Flags().StringVar(&endStr, "until", "", "End date of the range (inclusive)")

	return cmd
}

func newSummaryCmd(app *App) *cobra.Command {
	var endStr string

	cmd := &cobra.Command{
		Use:   "summary <start-date>",
		Short: "Summarize the schedule over a date range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRangeFlags(args[0], endStr)
			if err != nil {
				return err
			}

			summary, err := app.Calendar.Summary(context.Background(), start, end)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderSummary(summary))
			return nil
		},
	}

	cmd.Flags().StringVar(&endStr, "until", "", "End date of the range (inclusive)")

	return cmd
}

func newFreeSlotsCmd(app *App) *cobra.Command {
	var endStr string
	var mealTypeStrs []string

	cmd := &cobra.Command{
		Use:   "free-slots <start-date>",
		Short: "List unoccupied meal slots in a date range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRangeFlags(args[0], endStr)
			if err != nil {
				return err
			}

			var mealTypes []domain.MealType
			for _, s := range mealTypeStrs {
				parsed, err := domain.ParseMealType(s)
				if err != nil {
					return err
				}
				mealTypes = append(mealTypes, parsed)
			}

			slots, err := app.Calendar.FreeSlots(context.Background(), start, end, mealTypes)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderFreeSlots(slots))
			return nil
		},
	}

	cmd.Flags().StringVar(&endStr, "until", "", "End date of the range (inclusive)")
	cmd.Flags().StringArrayVar(&mealTypeStrs, "meal-type", nil, "Restrict to specific meal types (repeatable)")

	return cmd
}
