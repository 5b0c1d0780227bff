// Package dashboard joins the per-resource services into one read-only
// overview of a day.
package dashboard

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/2beens/fittrack/internal/diet"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/water"
	"github.com/2beens/fittrack/internal/weights"
	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=dashboard_mocks_test.go -package=dashboard_test

const (
	weightTrendDays      = 30
	upcomingWorkoutsDays = 7
	completedWindowDays  = 7
)

type dietSource interface {
	ListByDate(ctx context.Context, userID int, date string) (_ []diet.Entry, err error)
}

type waterSource interface {
	DaySummary(ctx context.Context, userID int, date string) (_ *water.Summary, err error)
}

type weightsSource interface {
	List(ctx context.Context, userID int, params weights.ListParams) (_ []weights.Weight, err error)
	Latest(ctx context.Context, userID int, onOrBefore string) (_ *weights.Weight, err error)
}

type workoutsSource interface {
	ListInstances(ctx context.Context, userID int, params workouts.ListParams) (_ []workouts.Instance, err error)
}

type Calories struct {
	DailyTotal float64             `json:"dailyTotal"`
	ByCategory diet.CategoryTotals `json:"byCategory"`
}

type Water struct {
	Total    float64    `json:"total"`
	Unit     string     `json:"unit"`
	Goal     water.Goal `json:"goal"`
	Progress float64    `json:"progress"`
}

type Dashboard struct {
	Date                       string              `json:"date"`
	Calories                   Calories            `json:"calories"`
	Water                      Water               `json:"water"`
	LatestWeight               *weights.Weight     `json:"latestWeight"`
	WeightTrend                []weights.Weight    `json:"weightTrend"`
	UpcomingWorkouts           []workouts.Instance `json:"upcomingWorkouts"`
	CompletedWorkoutsLast7Days int                 `json:"completedWorkoutsLast7Days"`
}

type Aggregator struct {
	diet     dietSource
	water    waterSource
	weights  weightsSource
	workouts workoutsSource
}

func NewAggregator(diet dietSource, water waterSource, weights weightsSource, workouts workoutsSource) *Aggregator {
	return &Aggregator{
		diet:     diet,
		water:    water,
		weights:  weights,
		workouts: workouts,
	}
}

func shift(day time.Time, days int) string {
	return day.AddDate(0, 0, days).Format(pkg.DateLayout)
}

// Build assembles the dashboard for day. The weight trend covers the 30
// days up to day, oldest first. Upcoming workouts are the scheduled ones
// from day through the next 7 days.
func (a *Aggregator) Build(ctx context.Context, userID int, day time.Time) (_ *Dashboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.build")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	date := day.Format(pkg.DateLayout)
	d := &Dashboard{Date: date}

	entries, err := a.diet.ListByDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("diet: %w", err)
	}
	dayLog := diet.Group(entries)
	d.Calories = Calories{
		DailyTotal: dayLog.DailyTotal,
		ByCategory: dayLog.Totals,
	}

	summary, err := a.water.DaySummary(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("water: %w", err)
	}
	d.Water = Water{
		Total:    summary.Total,
		Unit:     summary.Unit,
		Goal:     summary.Goal,
		Progress: summary.Progress,
	}

	d.LatestWeight, err = a.weights.Latest(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("latest weight: %w", err)
	}
	trend, err := a.weights.List(ctx, userID, weights.ListParams{
		From: shift(day, -(weightTrendDays - 1)),
		To:   date,
	})
	if err != nil {
		return nil, fmt.Errorf("weight trend: %w", err)
	}
	slices.Reverse(trend)
	d.WeightTrend = trend

	d.UpcomingWorkouts, err = a.workouts.ListInstances(ctx, userID, workouts.ListParams{
		From:   date,
		To:     shift(day, upcomingWorkoutsDays),
		Status: workouts.Status.Scheduled,
	})
	if err != nil {
		return nil, fmt.Errorf("upcoming workouts: %w", err)
	}

	completed, err := a.workouts.ListInstances(ctx, userID, workouts.ListParams{
		From:   shift(day, -(completedWindowDays - 1)),
		To:     date,
		Status: workouts.Status.Completed,
	})
	if err != nil {
		return nil, fmt.Errorf("completed workouts: %w", err)
	}
	d.CompletedWorkoutsLast7Days = len(completed)

	return d, nil
}
