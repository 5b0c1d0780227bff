package weights

import (
	"time"

	"github.com/2beens/fittrack/internal/apierr"
)

var ErrWeightNotFound = apierr.NotFound("weight entry not found")

var Unit = struct {
	Kilograms string
	Pounds    string
}{
	Kilograms: "kg",
	Pounds:    "lb",
}

type Weight struct {
	ID        int       `json:"id"`
	UserID    int       `json:"-"`
	Date      string    `json:"date"`
	Weight    float64   `json:"weight"`
	Unit      string    `json:"unit"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListParams bounds the listed dates, both inclusive. Empty means open.
type ListParams struct {
	From string
	To   string
}
