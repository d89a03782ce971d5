package services_test

import (
	"testing"
	"time"

	"github.com/pjoshi23/CalorIQ/models"
	"github.com/pjoshi23/CalorIQ/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodayMealsFiltersByLogDate(t *testing.T) {
	now := mustParseDay(t, "2026-08-12").Add(14 * time.Hour)

	meals := []models.LoggedMeal{
		mealOn(1, "dinner", "2026-08-12", 700),
		mealOn(1, "lunch", "2026-08-12", 550),
		mealOn(1, "yesterday", "2026-08-11", 400),
		mealOn(1, "last week", "2026-08-04", 300),
	}

	today := services.TodayMeals(meals, now)
	require.Len(t, today, 2)
	// subscription order preserved
	assert.Equal(t, "dinner", today[0].Name)
	assert.Equal(t, "lunch", today[1].Name)
}

func TestTodayMealsReevaluatesPerCall(t *testing.T) {
	meals := []models.LoggedMeal{mealOn(1, "late snack", "2026-08-12", 200)}

	assert.Len(t, services.TodayMeals(meals, mustParseDay(t, "2026-08-12")), 1)
	// the clock rolled past midnight; the meal keeps its original date
	assert.Empty(t, services.TodayMeals(meals, mustParseDay(t, "2026-08-13")))
}

func TestRecentMealsIsPrefix(t *testing.T) {
	meals := []models.LoggedMeal{
		mealOn(1, "a", "2026-08-12", 1),
		mealOn(1, "b", "2026-08-11", 2),
		mealOn(1, "c", "2026-08-10", 3),
	}

	recent := services.RecentMeals(meals, 2)
	require.Len(t, recent, 2)
	assert.Equal(t, "a", recent[0].Name)
	assert.Equal(t, "b", recent[1].Name)

	assert.Len(t, services.RecentMeals(meals, 10), 3)
	// non-positive limit falls back to the default of 5
	assert.Len(t, services.RecentMeals(meals, 0), 3)
}

func TestWeekStartIsMonday(t *testing.T) {
	// 2026-08-12 is a Wednesday
	assert.Equal(t, "2026-08-10", services.WeekStart(mustParseDay(t, "2026-08-12")).Format("2006-01-02"))
	// Monday is its own week start
	assert.Equal(t, "2026-08-10", services.WeekStart(mustParseDay(t, "2026-08-10")).Format("2006-01-02"))
	// Sunday belongs to the week that started six days earlier, not to a new one
	assert.Equal(t, "2026-08-10", services.WeekStart(mustParseDay(t, "2026-08-16")).Format("2006-01-02"))
}

func TestWeekMealsPartition(t *testing.T) {
	now := mustParseDay(t, "2026-08-12") // Wednesday

	meals := []models.LoggedMeal{
		mealOn(1, "wed", "2026-08-12", 500),
		mealOn(1, "mon", "2026-08-10", 400),
		mealOn(1, "sun", "2026-08-16", 350),
		mealOn(1, "prev sunday", "2026-08-09", 300), // day before week start
		mealOn(1, "next monday", "2026-08-17", 200), // day after week end
		mealOn(1, "bad date", "not-a-date", 100),
	}

	week := services.WeekMeals(meals, now)
	require.Len(t, week, 7)
	for i, date := range []string{
		"2026-08-10", "2026-08-11", "2026-08-12", "2026-08-13",
		"2026-08-14", "2026-08-15", "2026-08-16",
	} {
		require.Contains(t, week, date, "missing day %d", i)
	}

	assert.Len(t, week["2026-08-10"], 1)
	assert.Len(t, week["2026-08-12"], 1)
	assert.Len(t, week["2026-08-16"], 1)
	assert.Empty(t, week["2026-08-11"])

	total := 0
	for _, day := range week {
		total += len(day)
	}
	assert.Equal(t, 3, total, "out-of-range meals must appear under no key")
}

func TestWeekMealsOnSunday(t *testing.T) {
	// run "today is Sunday": the window still covers Monday..Sunday
	now := mustParseDay(t, "2026-08-16")

	week := services.WeekMeals([]models.LoggedMeal{
		mealOn(1, "mon", "2026-08-10", 400),
	}, now)

	require.Len(t, week, 7)
	assert.Len(t, week["2026-08-10"], 1)
}

func TestRollupsOnEmptyList(t *testing.T) {
	now := mustParseDay(t, "2026-08-12")

	assert.Empty(t, services.TodayMeals(nil, now))
	assert.Empty(t, services.RecentMeals(nil, 5))

	week := services.WeekMeals(nil, now)
	require.Len(t, week, 7)
	for _, day := range week {
		assert.Empty(t, day)
	}

	assert.Equal(t, services.MacroTotals{}, services.SumMacros(nil))
}

func TestSumMacros(t *testing.T) {
	meals := []models.LoggedMeal{
		{Calories: 500, Protein: 30, Carbs: 40, Fat: 20},
		{Calories: 250, Protein: 10, Carbs: 25, Fat: 5},
	}

	totals := services.SumMacros(meals)
	assert.Equal(t, 750.0, totals.Calories)
	assert.Equal(t, 40.0, totals.Protein)
	assert.Equal(t, 65.0, totals.Carbs)
	assert.Equal(t, 25.0, totals.Fat)
}
