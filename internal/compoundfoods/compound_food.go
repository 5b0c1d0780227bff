package compoundfoods

import (
	"time"

	"github.com/2beens/fittrack/internal/apierr"
	"github.com/2beens/fittrack/internal/foods"
)

// RecipeBrand marks foods generated from a compound food.
const RecipeBrand = "Recipe"

const generatedServingUnit = "serving"

var (
	ErrCompoundFoodNotFound = apierr.NotFound("compound food not found")
	ErrIngredientNotFound   = apierr.NotFound("ingredient food not found")
	ErrSelfIngredient       = apierr.Validation("a compound food cannot contain its own food")
	ErrNoIngredients        = apierr.Validation("ingredients must not be empty")
	ErrCompoundFoodInUse    = apierr.Conflict("compound food is an ingredient of another compound food")
)

type CompoundFood struct {
	ID          int          `json:"id"`
	UserID      int          `json:"-"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Servings    float64      `json:"servings"`
	FoodID      *int         `json:"foodId"`
	Food        *foods.Food  `json:"food"`
	Ingredients []Ingredient `json:"ingredients"`
	// Totals are the whole recipe, Food holds the per-serving values
	Totals    Macros    `json:"totals"`
	CreatedAt time.Time `json:"createdAt"`
}

type Ingredient struct {
	ID       int         `json:"id"`
	FoodID   int         `json:"foodId"`
	Quantity float64     `json:"quantity"`
	Position int         `json:"position"`
	Food     *foods.Food `json:"food,omitempty"`
}

type IngredientInput struct {
	FoodID   int
	Quantity float64
}

type Input struct {
	Name        string
	Description string
	Servings    float64
	Ingredients []IngredientInput
}

func portionsOf(ingredients []Ingredient) []Portion {
	portions := make([]Portion, 0, len(ingredients))
	for _, ing := range ingredients {
		if ing.Food == nil {
			continue
		}
		portions = append(portions, Portion{
			Macros: Macros{
				Calories: ing.Food.Calories,
				Protein:  ing.Food.Protein,
				Carbs:    ing.Food.Carbs,
				Fat:      ing.Food.Fat,
			},
			Quantity: ing.Quantity,
		})
	}
	return portions
}
