package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SivaK1-Turing/mealplanner/internal/domain"
	"github.com/SivaK1-Turing/mealplanner/internal/repository"
	"github.com/SivaK1-Turing/mealplanner/internal/testutil"
)

type calendarFixture struct {
	cal     CalendarService
	plans   *repository.SQLitePlanRepo
	recipes *repository.SQLiteRecipeRepo
}

// newCalendarFixture builds the calendar service over a fresh database with
// the clock pinned to 2025-06-20 (a Friday).
func newCalendarFixture(t *testing.T) *calendarFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	plans := repository.NewSQLitePlanRepo(database)
	recipes := repository.NewSQLiteRecipeRepo(database)
	clock := func() time.Time { return time.Date(2025, 6, 20, 14, 30, 0, 0, time.UTC) }
	return &calendarFixture{
		cal:     NewCalendarService(plans, recipes, clock),
		plans:   plans,
		recipes: recipes,
	}
}

func (f *calendarFixture) seed(t *testing.T, title string, date time.Time, mealType domain.MealType, opts ...testutil.PlanOption) int64 {
	t.Helper()
	ctx := context.Background()
	r := testutil.NewTestRecipe(title)
	require.NoError(t, f.recipes.Create(ctx, r))
	require.NoError(t, f.plans.Create(ctx, testutil.NewTestPlan(r.ID, date, mealType, opts...)))
	return r.ID
}

func TestWeek_BuildsSevenDays(t *testing.T) {
	f := newCalendarFixture(t)
	friday := testutil.Date(2025, 6, 20)
	f.seed(t, "Pasta Carbonara", friday, domain.MealDinner, testutil.WithServings(2))

	view, err := f.cal.Week(context.Background(), friday, CalendarOptions{StartOnMonday: true})
	require.NoError(t, err)

	assert.Equal(t, testutil.Date(2025, 6, 16), view.StartDate)
	assert.Equal(t, testutil.Date(2025, 6, 22), view.EndDate)
	assert.Equal(t, 25, view.WeekNumber)
	require.Len(t, view.Days, 7)

	fri := view.Days[4]
	assert.Equal(t, "friday", fri.DayName)
	assert.True(t, fri.IsToday)
	assert.False(t, fri.IsWeekend)
	assert.Equal(t, 1, fri.TotalMeals)
	require.Len(t, fri.Meals[domain.MealDinner], 1)
	assert.Equal(t, 2, fri.Meals[domain.MealDinner][0].Servings)
	assert.Nil(t, fri.Meals[domain.MealDinner][0].Recipe, "plain views carry no recipe summary")

	// Every meal type is present even when empty.
	mon := view.Days[0]
	for _, mt := range domain.MealTypes() {
		_, ok := mon.Meals[mt]
		assert.True(t, ok, "meal type %s missing from day bucket", mt)
	}
	assert.True(t, view.Days[5].IsWeekend)
	assert.True(t, view.Days[6].IsWeekend)
}

func TestWeek_SundayStart(t *testing.T) {
	f := newCalendarFixture(t)

	view, err := f.cal.Week(context.Background(), testutil.Date(2025, 6, 20), CalendarOptions{StartOnMonday: false})
	require.NoError(t, err)
	assert.Equal(t, testutil.Date(2025, 6, 15), view.StartDate)
	assert.Equal(t, testutil.Date(2025, 6, 21), view.EndDate)
	assert.Equal(t, "sunday", view.Days[0].DayName)
}

func TestWeek_DetailedEmbedsRecipeSummaries(t *testing.T) {
	f := newCalendarFixture(t)
	friday := testutil.Date(2025, 6, 20)

	ctx := context.Background()
	r := testutil.NewTestRecipe("Pasta Carbonara", testutil.WithCuisine("italian"), testutil.WithPrepTime(10), testutil.WithCookTime(20))
	require.NoError(t, f.recipes.Create(ctx, r))
	require.NoError(t, f.plans.Create(ctx, testutil.NewTestPlan(r.ID, friday, domain.MealDinner)))

	view, err := f.cal.Week(ctx, friday, CalendarOptions{StartOnMonday: true, Detailed: true})
	require.NoError(t, err)

	entry := view.Days[4].Meals[domain.MealDinner][0]
	require.NotNil(t, entry.Recipe)
	assert.Equal(t, "Pasta Carbonara", entry.Recipe.Title)
	assert.Equal(t, "italian", entry.Recipe.Cuisine)
	require.NotNil(t, entry.Recipe.TotalTimeMin)
	assert.Equal(t, 30, *entry.Recipe.TotalTimeMin)
}

func TestMonth_CoversWholeMonth(t *testing.T) {
	f := newCalendarFixture(t)
	f.seed(t, "Pancakes", testutil.Date(2025, 6, 1), domain.MealBreakfast)
	f.seed(t, "Roast", testutil.Date(2025, 6, 30), domain.MealDinner, testutil.WithCompleted())

	view, err := f.cal.Month(context.Background(), 2025, time.June, CalendarOptions{})
	require.NoError(t, err)

	assert.Equal(t, "June", view.MonthName)
	assert.Equal(t, time.Sunday, view.StartWeekday)
	require.Len(t, view.Days, 30)

	first := view.Days[0]
	assert.Equal(t, 1, first.Day)
	assert.Equal(t, 1, first.MealCounts[domain.MealBreakfast])
	assert.Equal(t, 0, first.MealCounts[domain.MealDinner])
	assert.Nil(t, first.Meals, "plain month views omit entry lists")

	last := view.Days[29]
	assert.Equal(t, 1, last.CompletedMeals)

	today := view.Days[19]
	assert.True(t, today.IsToday)
}

func TestMonth_LeapFebruary(t *testing.T) {
	f := newCalendarFixture(t)

	view, err := f.cal.Month(context.Background(), 2024, time.February, CalendarOptions{})
	require.NoError(t, err)
	require.Len(t, view.Days, 29)
	assert.Equal(t, testutil.Date(2024, 2, 29), view.EndDate)
}

func TestMonth_DetailedIncludesEntries(t *testing.T) {
	f := newCalendarFixture(t)
	f.seed(t, "Pancakes", testutil.Date(2025, 6, 5), domain.MealBreakfast)

	view, err := f.cal.Month(context.Background(), 2025, time.June, CalendarOptions{Detailed: true})
	require.NoError(t, err)

	day := view.Days[4]
	require.NotNil(t, day.Meals)
	require.Len(t, day.Meals[domain.MealBreakfast], 1)
	require.NotNil(t, day.Meals[domain.MealBreakfast][0].Recipe)
	assert.Equal(t, "Pancakes", day.Meals[domain.MealBreakfast][0].Recipe.Title)
}

func TestSummary_Aggregates(t *testing.T) {
	f := newCalendarFixture(t)
	ctx := context.Background()

	pasta := testutil.NewTestRecipe("Pasta")
	soup := testutil.NewTestRecipe("Soup")
	require.NoError(t, f.recipes.Create(ctx, pasta))
	require.NoError(t, f.recipes.Create(ctx, soup))

	require.NoError(t, f.plans.Create(ctx, testutil.NewTestPlan(pasta.ID, testutil.Date(2025, 6, 16), domain.MealDinner, testutil.WithCompleted())))
	require.NoError(t, f.plans.Create(ctx, testutil.NewTestPlan(pasta.ID, testutil.Date(2025, 6, 17), domain.MealDinner)))
	require.NoError(t, f.plans.Create(ctx, testutil.NewTestPlan(soup.ID, testutil.Date(2025, 6, 17), domain.MealLunch)))

	sum, err := f.cal.Summary(ctx, testutil.Date(2025, 6, 16), testutil.Date(2025, 6, 22))
	require.NoError(t, err)

	assert.Equal(t, 7, sum.TotalDays)
	assert.Equal(t, 3, sum.TotalMeals)
	assert.Equal(t, 2, sum.DaysWithMeals)
	assert.InDelta(t, 0.4, sum.AvgMealsPerDay, 0.001)
	assert.Equal(t, 2, sum.MealTypeCounts[domain.MealDinner])
	assert.Equal(t, 1, sum.MealTypeCounts[domain.MealLunch])
	assert.Equal(t, 0, sum.MealTypeCounts[domain.MealBreakfast])
	assert.Equal(t, 1, sum.CompletedMeals)
	assert.InDelta(t, 33.3, sum.CompletionRate, 0.001)
	assert.Equal(t, 2, sum.UniqueRecipes)

	require.Len(t, sum.MostFrequent, 2)
	assert.Equal(t, "Pasta", sum.MostFrequent[0].Title)
	assert.Equal(t, 2, sum.MostFrequent[0].Count)
	assert.Equal(t, "Soup", sum.MostFrequent[1].Title)
}

func TestSummary_EmptyRange(t *testing.T) {
	f := newCalendarFixture(t)

	sum, err := f.cal.Summary(context.Background(), testutil.Date(2025, 6, 16), testutil.Date(2025, 6, 16))
	require.NoError(t, err)
	assert.Equal(t, 1, sum.TotalDays)
	assert.Zero(t, sum.TotalMeals)
	assert.Zero(t, sum.CompletionRate)
	assert.Zero(t, sum.AvgMealsPerDay)
	assert.Empty(t, sum.MostFrequent)
}

func TestFreeSlots(t *testing.T) {
	f := newCalendarFixture(t)
	friday := testutil.Date(2025, 6, 20)
	f.seed(t, "Pasta", friday, domain.MealDinner)

	free, err := f.cal.FreeSlots(context.Background(), friday, friday.AddDate(0, 0, 1), nil)
	require.NoError(t, err)

	// 2 days x 4 meal types minus the occupied dinner slot.
	require.Len(t, free, 7)
	for _, slot := range free {
		if slot.Date.Equal(friday) {
			assert.NotEqual(t, domain.MealDinner, slot.MealType)
		}
	}
	assert.Equal(t, "friday", free[0].DayName)
	assert.Equal(t, domain.MealBreakfast, free[0].MealType)

	dinnersOnly, err := f.cal.FreeSlots(context.Background(), friday, friday.AddDate(0, 0, 1), []domain.MealType{domain.MealDinner})
	require.NoError(t, err)
	require.Len(t, dinnersOnly, 1)
	assert.Equal(t, testutil.Date(2025, 6, 21), dinnersOnly[0].Date)
	assert.True(t, dinnersOnly[0].IsWeekend)
}
