package exercises

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

func scanExercise(row pgx.Row) (Exercise, error) {
	var e Exercise
	var groups string
	if err := row.Scan(&e.ID, &e.UserID, &e.Name, &groups, &e.Description, &e.CreatedAt); err != nil {
		return e, err
	}
	e.MuscleGroups = SplitMuscleGroups(groups)
	return e, nil
}

func (r *Repo) List(ctx context.Context, userID int, params ListParams) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if params.MuscleGroup != "" {
		span.SetAttributes(attribute.String("params.muscleGroup", params.MuscleGroup))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, name, muscle_groups, description, created_at
			FROM exercise
			WHERE user_id = $1
				AND ($2::text = '' OR $2 = ANY(string_to_array(muscle_groups, ',')))
			ORDER BY name, id
		`,
		userID, params.MuscleGroup,
	)
	if err != nil {
		return nil, fmt.Errorf("exercises [query]: %w", err)
	}
	defer rows.Close()

	exercises := []Exercise{}
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("exercises [rows scan]: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercises [rows error]: %w", err)
	}

	return exercises, nil
}

func (r *Repo) Get(ctx context.Context, userID, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	e, err := scanExercise(r.db.QueryRow(
		ctx,
		`
			SELECT id, user_id, name, muscle_groups, description, created_at
			FROM exercise
			WHERE id = $1 AND user_id = $2
		`,
		id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("exercise [query row]: %w", err)
	}

	return &e, nil
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	added, err := scanExercise(r.db.QueryRow(
		ctx,
		`
			INSERT INTO exercise (user_id, name, muscle_groups, description)
			VALUES ($1, $2, $3, $4)
			RETURNING id, user_id, name, muscle_groups, description, created_at
		`,
		exercise.UserID, exercise.Name, JoinMuscleGroups(exercise.MuscleGroups), exercise.Description,
	))
	if err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	return &added, nil
}

func (r *Repo) Update(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	updated, err := scanExercise(r.db.QueryRow(
		ctx,
		`
			UPDATE exercise SET name = $1, muscle_groups = $2, description = $3
			WHERE id = $4 AND user_id = $5
			RETURNING id, user_id, name, muscle_groups, description, created_at
		`,
		exercise.Name, JoinMuscleGroups(exercise.MuscleGroups), exercise.Description, exercise.ID, exercise.UserID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("update exercise: %w", err)
	}

	return &updated, nil
}

// Delete removes the exercise. Template rows referencing it cascade, while
// workout instances keep their snapshot.
func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}
