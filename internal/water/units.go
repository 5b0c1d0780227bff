package water

var Unit = struct {
	Milliliters string
	Ounces      string
	Cups        string
}{
	Milliliters: "ml",
	Ounces:      "oz",
	Cups:        "cups",
}

const (
	millilitersPerOunce = 29.5735
	millilitersPerCup   = 240.0
)

// ToMilliliters converts amount in unit to ml. Unknown units are taken as ml.
func ToMilliliters(amount float64, unit string) float64 {
	switch unit {
	case Unit.Ounces:
		return amount * millilitersPerOunce
	case Unit.Cups:
		return amount * millilitersPerCup
	default:
		return amount
	}
}

func FromMilliliters(ml float64, unit string) float64 {
	switch unit {
	case Unit.Ounces:
		return ml / millilitersPerOunce
	case Unit.Cups:
		return ml / millilitersPerCup
	default:
		return ml
	}
}

// Convert always goes through milliliters.
func Convert(amount float64, from, to string) float64 {
	if from == to {
		return amount
	}
	return FromMilliliters(ToMilliliters(amount, from), to)
}
