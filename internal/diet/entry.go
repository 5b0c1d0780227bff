package diet

import (
	"time"

	"github.com/2beens/fittrack/internal/apierr"
	"github.com/2beens/fittrack/internal/foods"
)

var MealCategory = struct {
	Breakfast string
	Lunch     string
	Snack     string
	Dinner    string
}{
	Breakfast: "breakfast",
	Lunch:     "lunch",
	Snack:     "snack",
	Dinner:    "dinner",
}

var (
	ErrEntryNotFound = apierr.NotFound("diet entry not found")
	ErrFoodNotFound  = apierr.NotFound("food not found")
)

type Entry struct {
	ID           int         `json:"id"`
	UserID       int         `json:"-"`
	FoodID       int         `json:"foodId"`
	Date         string      `json:"date"`
	MealCategory string      `json:"mealCategory"`
	Servings     float64     `json:"servings"`
	Notes        string      `json:"notes"`
	CreatedAt    time.Time   `json:"createdAt"`
	Food         *foods.Food `json:"food,omitempty"`
}

// Calories is the entry's contribution, food calories times servings.
func (e Entry) Calories() float64 {
	if e.Food == nil {
		return 0
	}
	return e.Food.Calories * e.Servings
}

type EntryUpdate struct {
	MealCategory string
	Servings     float64
	Notes        string
}
