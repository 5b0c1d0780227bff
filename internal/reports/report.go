// Package reports renders a day of tracked data as a markdown document.
package reports

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/diet"
	"github.com/2beens/fittrack/internal/water"
	"github.com/2beens/fittrack/internal/weights"
	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

const (
	noWeight   = "No weight recorded for this day."
	noWorkouts = "No workouts recorded for this day."
	noMeals    = "No meals logged for this day."
	noWater    = "No water intake recorded for this day."

	setDone    = "✅"
	setPending = "⭕"
	unsetReps  = "—"
)

type Options struct {
	IncludeWeight   bool `json:"includeWeight"`
	IncludeWorkouts bool `json:"includeWorkouts"`
	IncludeDiet     bool `json:"includeDiet"`
	IncludeWater    bool `json:"includeWater"`
}

func AllSections() Options {
	return Options{
		IncludeWeight:   true,
		IncludeWorkouts: true,
		IncludeDiet:     true,
		IncludeWater:    true,
	}
}

// Data is everything one report needs. Nil or empty parts render their
// "no data" sentence.
type Data struct {
	Weight   *weights.Weight
	Workouts []workouts.Instance
	Diet     []diet.Entry
	Water    *water.Summary
}

func Filename(day time.Time) string {
	return "fittrack-report-" + day.Format(pkg.DateLayout) + ".md"
}

// Generate renders the requested sections in fixed order: weight, workouts,
// diet, water, then the footer.
func Generate(day time.Time, opts Options, data Data, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("# Daily Report - " + day.Format("Monday, January 2, 2006") + "\n\n")

	if opts.IncludeWeight {
		writeWeight(&b, data.Weight)
	}
	if opts.IncludeWorkouts {
		writeWorkouts(&b, data.Workouts)
	}
	if opts.IncludeDiet {
		writeDiet(&b, data.Diet)
	}
	if opts.IncludeWater {
		writeWater(&b, data.Water)
	}

	b.WriteString("---\n")
	b.WriteString("*Generated by fittrack on " + generatedAt.Format("2006-01-02 15:04:05 MST") + "*\n")
	return b.String()
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeWeight(b *strings.Builder, w *weights.Weight) {
	b.WriteString("## Weight\n\n")
	if w == nil {
		b.WriteString(noWeight + "\n\n")
		return
	}

	b.WriteString("**" + number(w.Weight) + " " + w.Unit + "**\n")
	if w.Notes != "" {
		b.WriteString("\n" + w.Notes + "\n")
	}
	b.WriteString("\n")
}

func writeWorkouts(b *strings.Builder, instances []workouts.Instance) {
	b.WriteString("## Workouts\n\n")
	if len(instances) == 0 {
		b.WriteString(noWorkouts + "\n\n")
		return
	}

	for _, inst := range instances {
		b.WriteString("### " + inst.Name + " (" + inst.Status + ")\n\n")
		if inst.Notes != "" {
			b.WriteString(inst.Notes + "\n\n")
		}
		for _, ex := range inst.Exercises {
			b.WriteString("#### " + ex.ExerciseName + "\n\n")
			for _, s := range ex.Sets {
				b.WriteString(setLine(s) + "\n")
			}
			b.WriteString("\n")
		}
	}
}

func setLine(s workouts.ExerciseSet) string {
	reps := unsetReps
	if s.ActualReps != nil {
		reps = strconv.Itoa(*s.ActualReps)
	}
	glyph := setPending
	if s.Completed {
		glyph = setDone
	}

	line := fmt.Sprintf("- Set %d: %s/%d reps", s.SetNumber, reps, s.TargetReps)
	if s.Weight != nil {
		line += " @ " + number(*s.Weight) + " " + s.Unit
	}
	return line + " " + glyph
}

func writeDiet(b *strings.Builder, entries []diet.Entry) {
	b.WriteString("## Diet\n\n")
	if len(entries) == 0 {
		b.WriteString(noMeals + "\n\n")
		return
	}

	day := diet.Group(entries)
	categories := []struct {
		title   string
		entries []diet.Entry
		total   float64
	}{
		{"Breakfast", day.Entries.Breakfast, day.Totals.Breakfast},
		{"Lunch", day.Entries.Lunch, day.Totals.Lunch},
		{"Snack", day.Entries.Snack, day.Totals.Snack},
		{"Dinner", day.Entries.Dinner, day.Totals.Dinner},
	}
	for _, c := range categories {
		if len(c.entries) == 0 {
			continue
		}
		b.WriteString("### " + c.title + "\n\n")
		for _, e := range c.entries {
			name := "Unknown food"
			if e.Food != nil {
				name = e.Food.Name
			}
			b.WriteString(fmt.Sprintf("- %s x%s (%s kcal)\n", name, number(e.Servings), number(pkg.Round2(e.Calories()))))
		}
		b.WriteString("\n*Subtotal: " + number(pkg.Round2(c.total)) + " kcal*\n\n")
	}
	b.WriteString("**Daily total: " + number(day.DailyTotal) + " kcal**\n\n")
}

func writeWater(b *strings.Builder, summary *water.Summary) {
	b.WriteString("## Water\n\n")
	if summary == nil || len(summary.Entries) == 0 {
		b.WriteString(noWater + "\n\n")
		return
	}

	b.WriteString(fmt.Sprintf("**Total: %s %s** of %s %s goal (%s%%)\n\n",
		number(summary.Total), summary.Unit,
		number(summary.Goal.DailyGoal), summary.Goal.Unit,
		number(summary.Progress),
	))
}
