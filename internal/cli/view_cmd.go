package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/SivaK1-Turing/mealplanner/internal/cli/formatter"
	"github.com/SivaK1-Turing/mealplanner/internal/service"
	"github.com/spf13/cobra"
)

func newViewCmd(app *App) *cobra.Command {
	var monthStr, weekStart string
	var detailed bool

	cmd := &cobra.Command{
		Use:   "view [date]",
		Short: "Show the calendar for a week or month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			startOnMonday := app.WeekStartMonday
			switch weekStart {
			case "":
			case "monday":
				startOnMonday = true
			case "sunday":
				startOnMonday = false
			default:
				return fmt.Errorf("--week-start must be monday or sunday")
			}

			opts := service.CalendarOptions{
				StartOnMonday: startOnMonday,
				Detailed:      detailed,
			}

			if monthStr != "" {
				ref, err := time.ParseInLocation("2006-01", monthStr, time.UTC)
				if err != nil {
					return fmt.Errorf("invalid month %q (expected YYYY-MM)", monthStr)
				}
				view, err := app.Calendar.Month(ctx, ref.Year(), ref.Month(), opts)
				if err != nil {
					return err
				}
				fmt.Print(formatter.RenderMonth(view))
				return nil
			}

			ref := time.Now()
			if len(args) == 1 {
				parsed, err := parseDateArg(args[0])
				if err != nil {
					return err
				}
				ref = parsed
			}

			view, err := app.Calendar.Week(ctx, ref, opts)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderWeek(view))
			return nil
		},
	}

	cmd.Flags().StringVar(&monthStr, "month", "", "Show a month view for YYYY-MM instead of a week")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "Embed recipe details in each entry")
	cmd.Flags().StringVar(&weekStart, "week-start", "", "First day of the week: monday or sunday")

	return cmd
}
