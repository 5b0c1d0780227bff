package water

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListByDate(ctx context.Context, userID int, date string) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.list_by_date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, date::text, amount, unit, timestamp, created_at
			FROM water_entry
			WHERE user_id = $1 AND date = $2::date
			ORDER BY timestamp, id
		`,
		userID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("water entries [query]: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Amount, &e.Unit, &e.Timestamp, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("water entries [rows scan]: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("water entries [rows error]: %w", err)
	}

	return entries, nil
}

func (r *Repo) Add(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO water_entry (user_id, date, amount, unit, timestamp)
			VALUES ($1, $2::date, $3, $4, $5)
			RETURNING id, created_at
		`,
		entry.UserID, entry.Date, entry.Amount, entry.Unit, entry.Timestamp,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert water entry: %w", err)
	}

	return &entry, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM water_entry WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete water entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// GetGoal returns nil without an error when the user has no goal.
func (r *Repo) GetGoal(ctx context.Context, userID int) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.get_goal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var g Goal
	err = r.db.QueryRow(
		ctx,
		`SELECT daily_goal, unit, updated_at FROM user_water_goal WHERE user_id = $1`,
		userID,
	).Scan(&g.DailyGoal, &g.Unit, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get water goal: %w", err)
	}

	return &g, nil
}

func (r *Repo) SetGoal(ctx context.Context, userID int, goal Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.set_goal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO user_water_goal (user_id, daily_goal, unit, updated_at)
			VALUES ($1, $2, $3, now())
			ON CONFLICT (user_id) DO UPDATE
				SET daily_goal = EXCLUDED.daily_goal, unit = EXCLUDED.unit, updated_at = now()
			RETURNING updated_at
		`,
		userID, goal.DailyGoal, goal.Unit,
	).Scan(&goal.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("set water goal: %w", err)
	}

	return &goal, nil
}

// DaySummary loads the day's entries and the goal and summarizes them.
func (r *Repo) DaySummary(ctx context.Context, userID int, date string) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.day_summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := r.ListByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	goal, err := r.GetGoal(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := Summarize(entries, goal)
	return &summary, nil
}
