package foods

import (
	"time"

	"github.com/2beens/fittrack/internal/apierr"
)

var Source = struct {
	Manual   string
	Barcode  string
	Compound string
}{
	Manual:   "manual",
	Barcode:  "barcode",
	Compound: "compound",
}

var (
	ErrFoodNotFound     = apierr.NotFound("food not found")
	ErrDuplicateBarcode = apierr.Conflict("a food with this barcode already exists")
	ErrCompoundFood     = apierr.Validation("compound foods are managed through /compound-foods")
	ErrFoodInUse        = apierr.Conflict("food is an ingredient of a compound food")
)

// Food macros are per serving.
type Food struct {
	ID             int       `json:"id"`
	UserID         int       `json:"-"`
	Name           string    `json:"name"`
	Brand          *string   `json:"brand"`
	Barcode        *string   `json:"barcode"`
	Calories       float64   `json:"calories"`
	Protein        float64   `json:"protein"`
	Carbs          float64   `json:"carbs"`
	Fat            float64   `json:"fat"`
	ServingSize    string    `json:"servingSize"`
	ServingUnit    string    `json:"servingUnit"`
	Source         string    `json:"source"`
	IsCompound     bool      `json:"isCompound"`
	CompoundFoodID *int      `json:"compoundFoodId"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ListParams struct {
	// Query matches name or brand, case-insensitive
	Query   string
	Barcode string
}
