package formatter

import (
	"fmt"
	"strings"

	"github.com/SivaK1-Turing/mealplanner/internal/domain"
	"github.com/SivaK1-Turing/mealplanner/internal/service"
)

// RenderStatistics renders a statistics result.
func RenderStatistics(stats *service.Statistics) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Total plans:     %d\n", stats.TotalPlans))
	b.WriteString(fmt.Sprintf("Completed:       %d\n", stats.CompletedPlans))
	b.WriteString(fmt.Sprintf("Completion rate: %.1f%%\n\n", stats.CompletionRate))

	for _, mealType := range domain.MealTypes() {
		b.WriteString(fmt.Sprintf("%s %d\n", MealTypeStyle(mealType).Render(fmt.Sprintf("%-10s", mealType)), stats.MealTypeCounts[mealType]))
	}

	if len(stats.MostPlanned) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleBold.Render("Most planned recipes"))
		b.WriteString("\n")
		for i, rc := range stats.MostPlanned {
			b.WriteString(fmt.Sprintf("%d. recipe #%d %s\n", i+1, rc.RecipeID, Dim(fmt.Sprintf("(%d times)", rc.Count))))
		}
	}

	return RenderBox("Plan statistics", strings.TrimRight(b.String(), "\n"))
}

// RenderSummary renders a range summary.
func RenderSummary(s *service.RangeSummary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s – %s (%d days)\n\n",
		s.StartDate.Format("2006-01-02"), s.EndDate.Format("2006-01-02"), s.TotalDays))
	b.WriteString(fmt.Sprintf("Total meals:     %d\n", s.TotalMeals))
	b.WriteString(fmt.Sprintf("Days with meals: %d\n", s.DaysWithMeals))
	b.WriteString(fmt.Sprintf("Avg meals/day:   %.1f\n", s.AvgMealsPerDay))
	b.WriteString(fmt.Sprintf("Completed:       %d (%.1f%%)\n", s.CompletedMeals, s.CompletionRate))
	b.WriteString(fmt.Sprintf("Unique recipes:  %d\n\n", s.UniqueRecipes))

	for _, mealType := range domain.MealTypes() {
		b.WriteString(fmt.Sprintf("%s %d\n", MealTypeStyle(mealType).Render(fmt.Sprintf("%-10s", mealType)), s.MealTypeCounts[mealType]))
	}

	if len(s.MostFrequent) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleBold.Render("Most frequent recipes"))
		b.WriteString("\n")
		for i, rf := range s.MostFrequent {
			title := rf.Title
			if title == "" {
				title = fmt.Sprintf("recipe #%d", rf.RecipeID)
			}
			b.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, title, Dim(fmt.Sprintf("(%d times)", rf.Count))))
		}
	}

	return RenderBox("Schedule summary", strings.TrimRight(b.String(), "\n"))
}

// RenderFreeSlots renders open (date, meal type) combinations as a table.
func RenderFreeSlots(slots []service.FreeSlot) string {
	if len(slots) == 0 {
		return "No free slots in range.\n"
	}

	headers := []string{"DATE", "DAY", "MEAL"}
	rows := make([][]string, 0, len(slots))
	for _, slot := range slots {
		day := slot.DayName
		if slot.IsWeekend {
			day = StylePurple.Render(day)
		}
		rows = append(rows, []string{
			slot.Date.Format("2006-01-02"),
			day,
			MealTypeLabel(slot.MealType),
		})
	}
	return RenderTable(headers, rows)
}

// RenderWeekPlanResult summarizes a bulk planning call, listing failed slots
// so nothing is silently dropped.
func RenderWeekPlanResult(result *service.WeekPlanResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Created %d plans.\n", len(result.Created)))
	for _, plan := range result.Created {
		b.WriteString(fmt.Sprintf("  %s %s recipe #%d\n",
			plan.Date.Format("Mon 2006-01-02"), MealTypeLabel(plan.MealType), plan.RecipeID))
	}

	if len(result.Failures) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleRed.Render(fmt.Sprintf("%d assignments failed:", len(result.Failures))))
		b.WriteString("\n")
		for _, f := range result.Failures {
			b.WriteString(fmt.Sprintf("  %s (recipe #%d): %s\n", f.Slot, f.RecipeID, f.Reason))
		}
	}

	return b.String()
}
