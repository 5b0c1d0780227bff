package users

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

func (r *Repo) Get(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var p Profile
	err = r.db.QueryRow(
		ctx,
		`
			SELECT id, username, display_name, preferred_weight_unit, preferred_water_unit, created_at
			FROM app_user
			WHERE id = $1
		`,
		userID,
	).Scan(&p.ID, &p.Username, &p.DisplayName, &p.PreferredWeightUnit, &p.PreferredWaterUnit, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &p, nil
}

func (r *Repo) Update(ctx context.Context, userID int, update ProfileUpdate) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE app_user SET
				display_name = COALESCE($1, display_name),
				preferred_weight_unit = COALESCE($2, preferred_weight_unit),
				preferred_water_unit = COALESCE($3, preferred_water_unit)
			WHERE id = $4
		`,
		update.DisplayName, update.PreferredWeightUnit, update.PreferredWaterUnit, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrUserNotFound
	}

	return r.Get(ctx, userID)
}
