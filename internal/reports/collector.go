package reports

import (
	"context"
	"fmt"

	"github.com/2beens/fittrack/internal/diet"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/water"
	"github.com/2beens/fittrack/internal/weights"
	"github.com/2beens/fittrack/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=collector_mocks_test.go -package=reports_test

type weightsSource interface {
	Latest(ctx context.Context, userID int, onOrBefore string) (_ *weights.Weight, err error)
}

type workoutsSource interface {
	ListInstances(ctx context.Context, userID int, params workouts.ListParams) (_ []workouts.Instance, err error)
}

type dietSource interface {
	ListByDate(ctx context.Context, userID int, date string) (_ []diet.Entry, err error)
}

type waterSource interface {
	DaySummary(ctx context.Context, userID int, date string) (_ *water.Summary, err error)
}

// Collector gathers report data, only for the requested sections.
type Collector struct {
	weights  weightsSource
	workouts workoutsSource
	diet     dietSource
	water    waterSource
}

func NewCollector(weights weightsSource, workouts workoutsSource, diet dietSource, water waterSource) *Collector {
	return &Collector{
		weights:  weights,
		workouts: workouts,
		diet:     diet,
		water:    water,
	}
}

func (c *Collector) Collect(ctx context.Context, userID int, date string, opts Options) (_ Data, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reports.collect")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var data Data
	if opts.IncludeWeight {
		w, err := c.weights.Latest(ctx, userID, date)
		if err != nil {
			return Data{}, fmt.Errorf("weight: %w", err)
		}
		// only a weigh-in from that very day counts
		if w != nil && w.Date == date {
			data.Weight = w
		}
	}
	if opts.IncludeWorkouts {
		data.Workouts, err = c.workouts.ListInstances(ctx, userID, workouts.ListParams{From: date, To: date})
		if err != nil {
			return Data{}, fmt.Errorf("workouts: %w", err)
		}
	}
	if opts.IncludeDiet {
		data.Diet, err = c.diet.ListByDate(ctx, userID, date)
		if err != nil {
			return Data{}, fmt.Errorf("diet: %w", err)
		}
	}
	if opts.IncludeWater {
		data.Water, err = c.water.DaySummary(ctx, userID, date)
		if err != nil {
			return Data{}, fmt.Errorf("water: %w", err)
		}
	}

	return data, nil
}
