package formatter

import (
	"fmt"
	"strings"

	"github.com/SivaK1-Turing/mealplanner/internal/domain"
	"github.com/SivaK1-Turing/mealplanner/internal/service"
)

// RenderWeek renders a week view as one section per day with meal lines in
// canonical order.
func RenderWeek(view *service.WeekView) string {
	var b strings.Builder

	title := fmt.Sprintf("Week %d: %s – %s",
		view.WeekNumber,
		view.StartDate.Format("2006-01-02"),
		view.EndDate.Format("2006-01-02"))
	b.WriteString(Header(title))
	b.WriteString("\n\n")

	for _, day := range view.Days {
		b.WriteString(renderDayHeading(day.Date.Format("Monday 2006-01-02"), day.IsToday, day.IsWeekend))
		b.WriteString("\n")

		if day.TotalMeals == 0 {
			b.WriteString(Dim("  no meals planned"))
			b.WriteString("\n")
			continue
		}

		for _, mealType := range domain.MealTypes() {
			for _, entry := range day.Meals[mealType] {
				b.WriteString(fmt.Sprintf("  %s %-10s %s\n",
					Checkbox(entry.Completed),
					MealTypeLabel(mealType),
					renderEntry(entry)))
			}
		}
	}

	return b.String()
}

// RenderMonth renders a month view as a per-day meal count listing. Detailed
// day contents are shown only when the view carries them.
func RenderMonth(view *service.MonthView) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s %d", view.MonthName, view.Year)))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("month starts on %s", view.StartWeekday)))
	b.WriteString("\n\n")

	for _, day := range view.Days {
		if day.TotalMeals == 0 && day.Meals == nil {
			continue
		}

		b.WriteString(renderDayHeading(day.Date.Format("Mon 02"), day.IsToday, day.IsWeekend))
		b.WriteString(fmt.Sprintf("  %d meals, %d done", day.TotalMeals, day.CompletedMeals))
		b.WriteString("\n")

		if day.Meals == nil {
			continue
		}
		for _, mealType := range domain.MealTypes() {
			for _, entry := range day.Meals[mealType] {
				b.WriteString(fmt.Sprintf("  %s %-10s %s\n",
					Checkbox(entry.Completed),
					MealTypeLabel(mealType),
					renderEntry(entry)))
			}
		}
	}

	return b.String()
}

func renderDayHeading(label string, isToday, isWeekend bool) string {
	switch {
	case isToday:
		return StyleHeader.Render(label + "  ◀ today")
	case isWeekend:
		return StylePurple.Render(label)
	default:
		return StyleBold.Render(label)
	}
}

func renderEntry(entry service.PlanEntry) string {
	var parts []string
	if entry.Recipe != nil {
		parts = append(parts, entry.Recipe.Title)
		if entry.Recipe.Cuisine != "" {
			parts = append(parts, Dim(entry.Recipe.Cuisine))
		}
		if entry.Recipe.TotalTimeMin != nil {
			parts = append(parts, Dim(FormatMinutes(entry.Recipe.TotalTimeMin)))
		}
	} else {
		parts = append(parts, fmt.Sprintf("recipe #%d", entry.RecipeID))
	}
	if entry.Servings != 1 {
		parts = append(parts, fmt.Sprintf("×%d", entry.Servings))
	}
	if entry.Notes != "" {
		parts = append(parts, Dim("("+entry.Notes+")"))
	}
	return strings.Join(parts, " ")
}
