package weights

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const weightColumns = `id, user_id, date::text, weight, unit, notes, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanWeight(row pgx.Row) (Weight, error) {
	var w Weight
	err := row.Scan(&w.ID, &w.UserID, &w.Date, &w.Weight, &w.Unit, &w.Notes, &w.CreatedAt)
	return w, err
}

// List returns the weights newest date first.
func (r *Repo) List(ctx context.Context, userID int, params ListParams) (_ []Weight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weights.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("params.from", params.From),
		attribute.String("params.to", params.To),
	)

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+weightColumns+`
			FROM weight_entry
			WHERE user_id = $1
				AND ($2::text = '' OR date >= $2::date)
				AND ($3::text = '' OR date <= $3::date)
			ORDER BY date DESC, created_at DESC, id DESC
		`,
		userID, params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("weights [query]: %w", err)
	}
	defer rows.Close()

	weights := []Weight{}
	for rows.Next() {
		w, err := scanWeight(rows)
		if err != nil {
			return nil, fmt.Errorf("weights [rows scan]: %w", err)
		}
		weights = append(weights, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("weights [rows error]: %w", err)
	}

	return weights, nil
}

// Latest is the most recent weight on or before the given date, nil when none.
func (r *Repo) Latest(ctx context.Context, userID int, onOrBefore string) (_ *Weight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weights.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	w, err := scanWeight(r.db.QueryRow(
		ctx,
		`
			SELECT `+weightColumns+`
			FROM weight_entry
			WHERE user_id = $1 AND date <= $2::date
			ORDER BY date DESC, created_at DESC, id DESC
			LIMIT 1
		`,
		userID, onOrBefore,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest weight: %w", err)
	}

	return &w, nil
}

func (r *Repo) Add(ctx context.Context, weight Weight) (_ *Weight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weights.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	added, err := scanWeight(r.db.QueryRow(
		ctx,
		`
			INSERT INTO weight_entry (user_id, date, weight, unit, notes)
			VALUES ($1, $2::date, $3, $4, $5)
			RETURNING `+weightColumns,
		weight.UserID, weight.Date, weight.Weight, weight.Unit, weight.Notes,
	))
	if err != nil {
		return nil, fmt.Errorf("insert weight: %w", err)
	}

	return &added, nil
}

func (r *Repo) Update(ctx context.Context, weight Weight) (_ *Weight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weights.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	updated, err := scanWeight(r.db.QueryRow(
		ctx,
		`
			UPDATE weight_entry SET date = $1::date, weight = $2, unit = $3, notes = $4
			WHERE id = $5 AND user_id = $6
			RETURNING `+weightColumns,
		weight.Date, weight.Weight, weight.Unit, weight.Notes, weight.ID, weight.UserID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWeightNotFound
		}
		return nil, fmt.Errorf("update weight: %w", err)
	}

	return &updated, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weights.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM weight_entry WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete weight: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWeightNotFound
	}
	return nil
}
