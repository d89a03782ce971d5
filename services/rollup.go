package services

import (
	"time"

	"github.com/pjoshi23/CalorIQ/models"
)

const isoDate = "2006-01-02"

// The rollup functions are pure: they derive views over the caller's meal
// list (ordered newest-createdAt-first, as ListMeals returns it) without
// touching storage. "Today" is re-evaluated on every call from the supplied
// clock, so a meal logged yesterday drops out of the today view without any
// rollover job.

// TodayMeals returns the meals whose log date equals the current calendar
// date, preserving input order.
func TodayMeals(meals []models.LoggedMeal, now time.Time) []models.LoggedMeal {
	today := now.Format(isoDate)
	out := []models.LoggedMeal{}
	for _, m := range meals {
		if m.LogDate == today {
			out = append(out, m)
		}
	}
	return out
}

// RecentMeals returns the first limit meals regardless of date. A
// non-positive limit means the default of 5.
func RecentMeals(meals []models.LoggedMeal, limit int) []models.LoggedMeal {
	if limit <= 0 {
		limit = 5
	}
	if limit > len(meals) {
		limit = len(meals)
	}
	return meals[:limit]
}

// WeekStart returns midnight on the Monday of now's week (ISO-8601: a Sunday
// belongs to the week that started six days earlier).
func WeekStart(now time.Time) time.Time {
	daysBack := int(now.Weekday()) - 1
	if now.Weekday() == time.Sunday {
		daysBack = 6
	}
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start.AddDate(0, 0, -daysBack)
}

// WeekMeals partitions meals into the 7 calendar dates of the current week.
// The result always contains exactly 7 keys, Monday through Sunday, mapping
// ISO date -> meals logged on that date.
func WeekMeals(meals []models.LoggedMeal, now time.Time) map[string][]models.LoggedMeal {
	start := WeekStart(now)
	end := start.AddDate(0, 0, 7) // exclusive

	week := make(map[string][]models.LoggedMeal, 7)
	for i := 0; i < 7; i++ {
		week[start.AddDate(0, 0, i).Format(isoDate)] = []models.LoggedMeal{}
	}

	for _, m := range meals {
		d, err := time.ParseInLocation(isoDate, m.LogDate, now.Location())
		if err != nil {
			continue
		}
		if !d.Before(start) && d.Before(end) {
			week[m.LogDate] = append(week[m.LogDate], m)
		}
	}
	return week
}

type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// SumMacros is a plain sum-reduction; lists are small enough that nothing is
// cached or memoized.
func SumMacros(meals []models.LoggedMeal) MacroTotals {
	var t MacroTotals
	for _, m := range meals {
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fat += m.Fat
	}
	return t
}
