package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/SivaK1-Turing/mealplanner/internal/calendar"
	"github.com/SivaK1-Turing/mealplanner/internal/domain"
	"github.com/SivaK1-Turing/mealplanner/internal/repository"
)

type calendarService struct {
	plans   repository.PlanRepo
	recipes repository.RecipeRepo
	now     func() time.Time
}

// NewCalendarService creates the read-only calendar builder. The clock is
// injected so "today" annotations are testable; pass time.Now in production.
func NewCalendarService(plans repository.PlanRepo, recipes repository.RecipeRepo, clock func() time.Time) CalendarService {
	if clock == nil {
		clock = time.Now
	}
	return &calendarService{plans: plans, recipes: recipes, now: clock}
}

func (s *calendarService) Week(ctx context.Context, ref time.Time, opts CalendarOptions) (*WeekView, error) {
	start, end := calendar.WeekBounds(ref, opts.StartOnMonday)

	plans, err := s.plans.ListByRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	byDate := bucketByDate(plans)

	summaries, err := s.recipeSummaries(ctx, plans, opts.Detailed)
	if err != nil {
		return nil, err
	}

	view := &WeekView{
		StartDate:  start,
		EndDate:    end,
		WeekNumber: calendar.ISOWeek(start),
	}
	today := calendar.DateOnly(s.now())
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		dayPlans := byDate[day]
		view.Days = append(view.Days, DayView{
			Date:           day,
			DayName:        calendar.DayName(day),
			IsToday:        day.Equal(today),
			IsWeekend:      calendar.IsWeekend(day),
			Meals:          entriesByMealType(dayPlans, summaries),
			TotalMeals:     len(dayPlans),
			CompletedMeals: countCompleted(dayPlans),
		})
	}
	return view, nil
}

func (s *calendarService) Month(ctx context.Context, year int, month time.Month, opts CalendarOptions) (*MonthView, error) {
	start, end := calendar.MonthBounds(year, month)

	plans, err := s.plans.ListByRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	byDate := bucketByDate(plans)

	summaries, err := s.recipeSummaries(ctx, plans, opts.Detailed)
	if err != nil {
		return nil, err
	}

	view := &MonthView{
		Year:         year,
		Month:        month,
		MonthName:    start.Month().String(),
		StartDate:    start,
		EndDate:      end,
		StartWeekday: start.Weekday(),
	}
	today := calendar.DateOnly(s.now())
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dayPlans := byDate[day]

		counts := make(map[domain.MealType]int, 4)
		for _, mealType := range domain.MealTypes() {
			counts[mealType] = 0
		}
		for _, p := range dayPlans {
			counts[p.MealType]++
		}

		dayView := MonthDayView{
			Date:           day,
			Day:            day.Day(),
			DayName:        calendar.DayName(day),
			IsToday:        day.Equal(today),
			IsWeekend:      calendar.IsWeekend(day),
			TotalMeals:     len(dayPlans),
			CompletedMeals: countCompleted(dayPlans),
			MealCounts:     counts,
		}
		if opts.Detailed {
			dayView.Meals = entriesByMealType(dayPlans, summaries)
		}
		view.Days = append(view.Days, dayView)
	}
	return view, nil
}

func (s *calendarService) Summary(ctx context.Context, start, end time.Time) (*RangeSummary, error) {
	start = calendar.DateOnly(start)
	end = calendar.DateOnly(end)

	plans, err := s.plans.ListByRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	totalDays := int(end.Sub(start).Hours()/24) + 1

	daysWithMeals := make(map[time.Time]bool)
	mealTypeCounts := make(map[domain.MealType]int, 4)
	for _, mealType := range domain.MealTypes() {
		mealTypeCounts[mealType] = 0
	}
	recipeCounts := make(map[int64]int)
	completed := 0
	for _, p := range plans {
		daysWithMeals[p.Date] = true
		mealTypeCounts[p.MealType]++
		recipeCounts[p.RecipeID]++
		if p.Completed {
			completed++
		}
	}

	completionRate := 0.0
	if len(plans) > 0 {
		completionRate = round1(float64(completed) / float64(len(plans)) * 100)
	}
	avgMealsPerDay := 0.0
	if totalDays > 0 {
		avgMealsPerDay = round1(float64(len(plans)) / float64(totalDays))
	}

	ranked := rankRecipes(recipeCounts, 5)
	titles, err := s.recipes.GetByIDs(ctx, recipeIDsOf(ranked))
	if err != nil {
		return nil, err
	}
	mostFrequent := make([]RecipeFrequency, 0, len(ranked))
	for _, rc := range ranked {
		freq := RecipeFrequency{RecipeID: rc.RecipeID, Count: rc.Count}
		if rec, ok := titles[rc.RecipeID]; ok {
			freq.Title = rec.Title
		}
		mostFrequent = append(mostFrequent, freq)
	}

	return &RangeSummary{
		StartDate:      start,
		EndDate:        end,
		TotalDays:      totalDays,
		TotalMeals:     len(plans),
		DaysWithMeals:  len(daysWithMeals),
		AvgMealsPerDay: avgMealsPerDay,
		MealTypeCounts: mealTypeCounts,
		CompletedMeals: completed,
		CompletionRate: completionRate,
		UniqueRecipes:  len(recipeCounts),
		MostFrequent:   mostFrequent,
	}, nil
}

func (s *calendarService) FreeSlots(ctx context.Context, start, end time.Time, mealTypes []domain.MealType) ([]FreeSlot, error) {
	start = calendar.DateOnly(start)
	end = calendar.DateOnly(end)
	if len(mealTypes) == 0 {
		mealTypes = domain.MealTypes()
	}

	plans, err := s.plans.ListByRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	occupied := make(map[string]bool, len(plans))
	for _, p := range plans {
		occupied[calendar.SlotKey(p.Date, p.MealType)+p.Date.Format(calendar.DateLayout)] = true
	}

	var free []FreeSlot
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for _, mealType := range mealTypes {
			if occupied[calendar.SlotKey(day, mealType)+day.Format(calendar.DateLayout)] {
				continue
			}
			free = append(free, FreeSlot{
				Date:      day,
				MealType:  mealType,
				DayName:   calendar.DayName(day),
				IsWeekend: calendar.IsWeekend(day),
			})
		}
	}
	return free, nil
}

// recipeSummaries batches one lookup for every distinct recipe referenced by
// the given plans. Returns nil when detail was not requested.
func (s *calendarService) recipeSummaries(ctx context.Context, plans []*domain.Plan, detailed bool) (map[int64]*RecipeSummary, error) {
	if !detailed || len(plans) == 0 {
		return nil, nil
	}

	seen := make(map[int64]bool, len(plans))
	var ids []int64
	for _, p := range plans {
		if !seen[p.RecipeID] {
			seen[p.RecipeID] = true
			ids = append(ids, p.RecipeID)
		}
	}

	recipes, err := s.recipes.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	summaries := make(map[int64]*RecipeSummary, len(recipes))
	for id, rec := range recipes {
		summaries[id] = &RecipeSummary{
			Title:        rec.Title,
			Cuisine:      rec.Cuisine,
			PrepTimeMin:  rec.PrepTimeMin,
			CookTimeMin:  rec.CookTimeMin,
			TotalTimeMin: rec.TotalTimeMin(),
		}
	}
	return summaries, nil
}

func bucketByDate(plans []*domain.Plan) map[time.Time][]*domain.Plan {
	byDate := make(map[time.Time][]*domain.Plan)
	for _, p := range plans {
		byDate[p.Date] = append(byDate[p.Date], p)
	}
	return byDate
}

func entriesByMealType(plans []*domain.Plan, summaries map[int64]*RecipeSummary) map[domain.MealType][]PlanEntry {
	meals := make(map[domain.MealType][]PlanEntry, 4)
	for _, mealType := range domain.MealTypes() {
		meals[mealType] = []PlanEntry{}
	}
	for _, p := range plans {
		entry := PlanEntry{
			ID:        p.ID,
			RecipeID:  p.RecipeID,
			Servings:  p.Servings,
			Notes:     p.Notes,
			Completed: p.Completed,
		}
		if summaries != nil {
			entry.Recipe = summaries[p.RecipeID]
		}
		meals[p.MealType] = append(meals[p.MealType], entry)
	}
	return meals
}

func countCompleted(plans []*domain.Plan) int {
	n := 0
	for _, p := range plans {
		if p.Completed {
			n++
		}
	}
	return n
}

// rankRecipes sorts recipe counts descending, breaking ties by ascending
// recipe id so the ranking is deterministic, and keeps the top limit.
func rankRecipes(counts map[int64]int, limit int) []RecipeCount {
	ranked := make([]RecipeCount, 0, len(counts))
	for id, count := range counts {
		ranked = append(ranked, RecipeCount{RecipeID: id, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].RecipeID < ranked[j].RecipeID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func recipeIDsOf(ranked []RecipeCount) []int64 {
	ids := make([]int64, 0, len(ranked))
	for _, rc := range ranked {
		ids = append(ids, rc.RecipeID)
	}
	return ids
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
