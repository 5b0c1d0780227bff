package diet

import "math"

type CategoryEntries struct {
	Breakfast []Entry `json:"breakfast"`
	Lunch     []Entry `json:"lunch"`
	Snack     []Entry `json:"snack"`
	Dinner    []Entry `json:"dinner"`
}

type CategoryTotals struct {
	Breakfast float64 `json:"breakfast"`
	Lunch     float64 `json:"lunch"`
	Snack     float64 `json:"snack"`
	Dinner    float64 `json:"dinner"`
}

type DayLog struct {
	Entries    CategoryEntries `json:"entries"`
	Totals     CategoryTotals  `json:"totals"`
	DailyTotal float64         `json:"dailyTotal"`
}

// Group buckets a day's entries by meal category, keeping their order.
// Category totals stay unrounded; only the daily total is rounded.
func Group(entries []Entry) DayLog {
	day := DayLog{
		Entries: CategoryEntries{
			Breakfast: []Entry{},
			Lunch:     []Entry{},
			Snack:     []Entry{},
			Dinner:    []Entry{},
		},
	}

	for _, e := range entries {
		switch e.MealCategory {
		case MealCategory.Breakfast:
			day.Entries.Breakfast = append(day.Entries.Breakfast, e)
			day.Totals.Breakfast += e.Calories()
		case MealCategory.Lunch:
			day.Entries.Lunch = append(day.Entries.Lunch, e)
			day.Totals.Lunch += e.Calories()
		case MealCategory.Snack:
			day.Entries.Snack = append(day.Entries.Snack, e)
			day.Totals.Snack += e.Calories()
		case MealCategory.Dinner:
			day.Entries.Dinner = append(day.Entries.Dinner, e)
			day.Totals.Dinner += e.Calories()
		}
	}

	day.DailyTotal = math.Round(day.Totals.Breakfast + day.Totals.Lunch + day.Totals.Snack + day.Totals.Dinner)
	return day
}
