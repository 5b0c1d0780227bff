package water

import (
	"math"
	"time"

	"github.com/2beens/fittrack/internal/apierr"
)

var ErrEntryNotFound = apierr.NotFound("water entry not found")

// DefaultGoal is shown when the user never set one.
var DefaultGoal = Goal{DailyGoal: 2000, Unit: Unit.Milliliters}

type Entry struct {
	ID        int       `json:"id"`
	UserID    int       `json:"-"`
	Date      string    `json:"date"`
	Amount    float64   `json:"amount"`
	Unit      string    `json:"unit"`
	Timestamp time.Time `json:"timestamp"`
	CreatedAt time.Time `json:"createdAt"`
}

type Goal struct {
	DailyGoal float64    `json:"dailyGoal"`
	Unit      string     `json:"unit"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type Summary struct {
	Entries  []Entry `json:"entries"`
	Total    float64 `json:"total"`
	Unit     string  `json:"unit"`
	Goal     Goal    `json:"goal"`
	Progress float64 `json:"progress"`
}

// Summarize adds up the entries in the goal unit. The total is rounded to the
// nearest integer once, after summing. A nil goal falls back to DefaultGoal for display and a
// progress of 0.
func Summarize(entries []Entry, goal *Goal) Summary {
	if entries == nil {
		entries = []Entry{}
	}

	effective := DefaultGoal
	if goal != nil {
		effective = *goal
	}

	total := 0.0
	for _, e := range entries {
		total += Convert(e.Amount, e.Unit, effective.Unit)
	}
	total = math.Round(total)

	summary := Summary{
		Entries: entries,
		Total:   total,
		Unit:    effective.Unit,
		Goal:    effective,
	}
	if goal != nil && goal.DailyGoal > 0 {
		summary.Progress = math.Round(total / goal.DailyGoal * 100)
	}
	return summary
}
