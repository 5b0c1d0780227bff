package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/exercises"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

func (r *Repo) ListTemplates(ctx context.Context, userID int) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.templates.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, name, description, created_at
			FROM workout_template
			WHERE user_id = $1
			ORDER BY name, id
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("templates [query]: %w", err)
	}

	templates := []Template{}
	for rows.Next() {
		var t Template
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Description, &t.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("templates [rows scan]: %w", err)
		}
		templates = append(templates, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("templates [rows error]: %w", err)
	}

	for i := range templates {
		templates[i].Exercises, err = loadTemplateExercises(ctx, r.db, templates[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return templates, nil
}

func (r *Repo) GetTemplate(ctx context.Context, userID, id int) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.templates.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return getTemplate(ctx, r.db, userID, id, false)
}

func getTemplate(ctx context.Context, q db.Querier, userID, id int, forUpdate bool) (*Template, error) {
	query := `
		SELECT id, user_id, name, description, created_at
		FROM workout_template
		WHERE id = $1 AND user_id = $2
	`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var t Template
	err := q.QueryRow(ctx, query, id, userID).Scan(&t.ID, &t.UserID, &t.Name, &t.Description, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("template [query row]: %w", err)
	}

	t.Exercises, err = loadTemplateExercises(ctx, q, t.ID)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func loadTemplateExercises(ctx context.Context, q db.Querier, templateID int) ([]TemplateExercise, error) {
	rows, err := q.Query(
		ctx,
		`
			SELECT te.id, te.exercise_id, te.order_index, te.sets, te.reps, te.notes, e.name, e.muscle_groups
			FROM template_exercise te
			JOIN exercise e ON e.id = te.exercise_id
			WHERE te.template_id = $1
			ORDER BY te.order_index, te.id
		`,
		templateID,
	)
	if err != nil {
		return nil, fmt.Errorf("template exercises [query]: %w", err)
	}
	defer rows.Close()

	templateExercises := []TemplateExercise{}
	for rows.Next() {
		var te TemplateExercise
		var groups string
		if err := rows.Scan(&te.ID, &te.ExerciseID, &te.OrderIndex, &te.Sets, &te.Reps, &te.Notes, &te.ExerciseName, &groups); err != nil {
			return nil, fmt.Errorf("template exercises [rows scan]: %w", err)
		}
		te.MuscleGroups = exercises.SplitMuscleGroups(groups)
		templateExercises = append(templateExercises, te)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("template exercises [rows error]: %w", err)
	}

	return templateExercises, nil
}

// insertTemplateExercises checks every exercise belongs to the user before inserting.
func insertTemplateExercises(ctx context.Context, tx pgx.Tx, userID, templateID int, inputs []TemplateExerciseInput) error {
	for i, in := range inputs {
		var owned bool
		err := tx.QueryRow(
			ctx,
			`SELECT EXISTS (SELECT 1 FROM exercise WHERE id = $1 AND user_id = $2)`,
			in.ExerciseID, userID,
		).Scan(&owned)
		if err != nil {
			return fmt.Errorf("check exercise: %w", err)
		}
		if !owned {
			return ErrExerciseNotFound
		}

		_, err = tx.Exec(
			ctx,
			`
				INSERT INTO template_exercise (template_id, exercise_id, order_index, sets, reps, notes)
				VALUES ($1, $2, $3, $4, $5, $6)
			`,
			templateID, in.ExerciseID, i, in.Sets, in.Reps, in.Notes,
		)
		if err != nil {
			return fmt.Errorf("insert template exercise: %w", err)
		}
	}
	return nil
}

func (r *Repo) CreateTemplate(ctx context.Context, userID int, input TemplateInput) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.templates.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercises.count", len(input.Exercises)))

	var created *Template
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var templateID int
		err := tx.QueryRow(
			ctx,
			`
				INSERT INTO workout_template (user_id, name, description)
				VALUES ($1, $2, $3)
				RETURNING id
			`,
			userID, input.Name, input.Description,
		).Scan(&templateID)
		if err != nil {
			return fmt.Errorf("insert template: %w", err)
		}

		if err := insertTemplateExercises(ctx, tx, userID, templateID, input.Exercises); err != nil {
			return err
		}

		created, err = getTemplate(ctx, tx, userID, templateID, false)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateTemplate replaces the exercise list. Existing instances are untouched.
func (r *Repo) UpdateTemplate(ctx context.Context, userID, id int, input TemplateInput) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.templates.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var updated *Template
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := getTemplate(ctx, tx, userID, id, true); err != nil {
			return err
		}

		if _, err := tx.Exec(
			ctx,
			`UPDATE workout_template SET name = $1, description = $2 WHERE id = $3`,
			input.Name, input.Description, id,
		); err != nil {
			return fmt.Errorf("update template: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM template_exercise WHERE template_id = $1`, id); err != nil {
			return fmt.Errorf("delete template exercises: %w", err)
		}
		if err := insertTemplateExercises(ctx, tx, userID, id, input.Exercises); err != nil {
			return err
		}

		var err error
		updated, err = getTemplate(ctx, tx, userID, id, false)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *Repo) DeleteTemplate(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.templates.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_template WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTemplateNotFound
	}
	return nil
}
