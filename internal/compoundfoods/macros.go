package compoundfoods

import (
	"math"

	"github.com/2beens/fittrack/pkg"
)

type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Portion is one ingredient's per-serving macros and how many servings of
// it go into the recipe. Quantity is a multiplier, fractions are fine.
type Portion struct {
	Macros   Macros
	Quantity float64
}

// Totals sums the recipe. Calories are rounded to an integer, the rest to
// two decimals, both at the total level only.
func Totals(portions []Portion) Macros {
	var total Macros
	for _, p := range portions {
		total.Calories += p.Macros.Calories * p.Quantity
		total.Protein += p.Macros.Protein * p.Quantity
		total.Carbs += p.Macros.Carbs * p.Quantity
		total.Fat += p.Macros.Fat * p.Quantity
	}
	return Macros{
		Calories: math.Round(total.Calories),
		Protein:  pkg.Round2(total.Protein),
		Carbs:    pkg.Round2(total.Carbs),
		Fat:      pkg.Round2(total.Fat),
	}
}

// PerServing divides already rounded totals by the yield and rounds again.
func PerServing(totals Macros, servings float64) Macros {
	if servings <= 0 {
		return Macros{}
	}
	return Macros{
		Calories: math.Round(totals.Calories / servings),
		Protein:  pkg.Round2(totals.Protein / servings),
		Carbs:    pkg.Round2(totals.Carbs / servings),
		Fat:      pkg.Round2(totals.Fat / servings),
	}
}
