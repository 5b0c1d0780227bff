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

const instanceColumns = `id, user_id, template_id, name, description, scheduled_date::text, status, completed_date, notes, created_at`

func scanInstance(row pgx.Row) (Instance, error) {
	var inst Instance
	err := row.Scan(
		&inst.ID, &inst.UserID, &inst.TemplateID, &inst.Name, &inst.Description,
		&inst.ScheduledDate, &inst.Status, &inst.CompletedDate, &inst.Notes, &inst.CreatedAt,
	)
	return inst, err
}

// ListInstances returns full instance trees ordered by scheduled date.
func (r *Repo) ListInstances(ctx context.Context, userID int, params ListParams) (_ []Instance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.instances.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("params.from", params.From),
		attribute.String("params.to", params.To),
		attribute.String("params.status", params.Status),
	)

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+instanceColumns+`
			FROM workout_instance
			WHERE user_id = $1
				AND ($2::text = '' OR scheduled_date >= $2::date)
				AND ($3::text = '' OR scheduled_date <= $3::date)
				AND ($4::text = '' OR status = $4)
			ORDER BY scheduled_date, id
		`,
		userID, params.From, params.To, params.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("instances [query]: %w", err)
	}

	instances := []Instance{}
	for rows.Next() {
		inst, err := scanInstance(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("instances [rows scan]: %w", err)
		}
		instances = append(instances, inst)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("instances [rows error]: %w", err)
	}

	if err := loadInstanceTrees(ctx, r.db, instances); err != nil {
		return nil, err
	}
	return instances, nil
}

func (r *Repo) GetInstance(ctx context.Context, userID, id int) (_ *Instance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.instances.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return getInstance(ctx, r.db, userID, id, false)
}

func getInstance(ctx context.Context, q db.Querier, userID, id int, forUpdate bool) (*Instance, error) {
	query := `SELECT ` + instanceColumns + ` FROM workout_instance WHERE id = $1 AND user_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	inst, err := scanInstance(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInstanceNotFound
		}
		return nil, fmt.Errorf("instance [query row]: %w", err)
	}

	instances := []Instance{inst}
	if err := loadInstanceTrees(ctx, q, instances); err != nil {
		return nil, err
	}
	return &instances[0], nil
}

// loadInstanceTrees fills exercises and sets for all instances in two queries.
func loadInstanceTrees(ctx context.Context, q db.Querier, instances []Instance) error {
	if len(instances) == 0 {
		return nil
	}

	instanceIdx := make(map[int]int, len(instances))
	instanceIDs := make([]int, 0, len(instances))
	for i := range instances {
		instances[i].Exercises = []InstanceExercise{}
		instanceIdx[instances[i].ID] = i
		instanceIDs = append(instanceIDs, instances[i].ID)
	}

	rows, err := q.Query(
		ctx,
		`
			SELECT id, instance_id, exercise_id, exercise_name, muscle_groups, order_index, notes
			FROM instance_exercise
			WHERE instance_id = ANY($1)
			ORDER BY instance_id, order_index, id
		`,
		instanceIDs,
	)
	if err != nil {
		return fmt.Errorf("instance exercises [query]: %w", err)
	}

	type exerciseRef struct{ instance, exercise int }
	exerciseRefs := map[int]exerciseRef{}
	var exerciseIDs []int
	for rows.Next() {
		var ie InstanceExercise
		var instanceID int
		var groups string
		if err := rows.Scan(&ie.ID, &instanceID, &ie.ExerciseID, &ie.ExerciseName, &groups, &ie.OrderIndex, &ie.Notes); err != nil {
			rows.Close()
			return fmt.Errorf("instance exercises [rows scan]: %w", err)
		}
		ie.MuscleGroups = exercises.SplitMuscleGroups(groups)
		ie.Sets = []ExerciseSet{}

		idx := instanceIdx[instanceID]
		instances[idx].Exercises = append(instances[idx].Exercises, ie)
		exerciseRefs[ie.ID] = exerciseRef{instance: idx, exercise: len(instances[idx].Exercises) - 1}
		exerciseIDs = append(exerciseIDs, ie.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("instance exercises [rows error]: %w", err)
	}
	if len(exerciseIDs) == 0 {
		return nil
	}

	rows, err = q.Query(
		ctx,
		`
			SELECT id, instance_exercise_id, set_number, target_reps, actual_reps, weight, unit, completed
			FROM exercise_set
			WHERE instance_exercise_id = ANY($1)
			ORDER BY instance_exercise_id, set_number, id
		`,
		exerciseIDs,
	)
	if err != nil {
		return fmt.Errorf("exercise sets [query]: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s ExerciseSet
		var instanceExerciseID int
		if err := rows.Scan(&s.ID, &instanceExerciseID, &s.SetNumber, &s.TargetReps, &s.ActualReps, &s.Weight, &s.Unit, &s.Completed); err != nil {
			return fmt.Errorf("exercise sets [rows scan]: %w", err)
		}
		ref := exerciseRefs[instanceExerciseID]
		ex := &instances[ref.instance].Exercises[ref.exercise]
		ex.Sets = append(ex.Sets, s)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("exercise sets [rows error]: %w", err)
	}

	return nil
}

func insertInstance(ctx context.Context, tx pgx.Tx, inst Instance) (int, error) {
	var instanceID int
	err := tx.QueryRow(
		ctx,
		`
			INSERT INTO workout_instance (user_id, template_id, name, description, scheduled_date, status, notes)
			VALUES ($1, $2, $3, $4, $5::date, $6, $7)
			RETURNING id
		`,
		inst.UserID, inst.TemplateID, inst.Name, inst.Description, inst.ScheduledDate, inst.Status, inst.Notes,
	).Scan(&instanceID)
	if err != nil {
		return 0, fmt.Errorf("insert instance: %w", err)
	}

	for _, ie := range inst.Exercises {
		var instanceExerciseID int
		err := tx.QueryRow(
			ctx,
			`
				INSERT INTO instance_exercise (instance_id, exercise_id, exercise_name, muscle_groups, order_index, notes)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id
			`,
			instanceID, ie.ExerciseID, ie.ExerciseName, exercises.JoinMuscleGroups(ie.MuscleGroups), ie.OrderIndex, ie.Notes,
		).Scan(&instanceExerciseID)
		if err != nil {
			return 0, fmt.Errorf("insert instance exercise: %w", err)
		}

		for _, s := range ie.Sets {
			_, err := tx.Exec(
				ctx,
				`
					INSERT INTO exercise_set (instance_exercise_id, set_number, target_reps, actual_reps, weight, unit, completed)
					VALUES ($1, $2, $3, $4, $5, $6, $7)
				`,
				instanceExerciseID, s.SetNumber, s.TargetReps, s.ActualReps, s.Weight, s.Unit, s.Completed,
			)
			if err != nil {
				return 0, fmt.Errorf("insert exercise set: %w", err)
			}
		}
	}

	return instanceID, nil
}

// CreateInstance snapshots the template into a new scheduled instance, atomically.
func (r *Repo) CreateInstance(ctx context.Context, userID, templateID int, scheduledDate string) (_ *Instance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.instances.instantiate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", templateID))

	var created *Instance
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		template, err := getTemplate(ctx, tx, userID, templateID, false)
		if err != nil {
			return err
		}

		instanceID, err := insertInstance(ctx, tx, Instantiate(*template, scheduledDate))
		if err != nil {
			return err
		}

		created, err = getInstance(ctx, tx, userID, instanceID, false)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateInstance applies the status, notes and completion date changes.
func (r *Repo) UpdateInstance(ctx context.Context, userID, id int, update InstanceUpdate) (_ *Instance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.instances.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var updated *Instance
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		inst, err := getInstance(ctx, tx, userID, id, true)
		if err != nil {
			return err
		}
		if err := ApplyUpdate(inst, update, r.now()); err != nil {
			return err
		}

		_, err = tx.Exec(
			ctx,
			`UPDATE workout_instance SET status = $1, completed_date = $2, notes = $3 WHERE id = $4`,
			inst.Status, inst.CompletedDate, inst.Notes, id,
		)
		if err != nil {
			return fmt.Errorf("update instance: %w", err)
		}

		updated = inst
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *Repo) DeleteInstance(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.instances.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_instance WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete instance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrInstanceNotFound
	}
	return nil
}

// UpdateSet changes one set and, in the same transaction, promotes a
// scheduled instance to in-progress when the set gets completed.
func (r *Repo) UpdateSet(ctx context.Context, userID, setID int, update SetUpdate) (_ *SetUpdateResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("set.id", setID))

	var result *SetUpdateResult
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		res := SetUpdateResult{}
		err := tx.QueryRow(
			ctx,
			`
				SELECT s.id, s.set_number, s.target_reps, s.actual_reps, s.weight, s.unit, s.completed, i.id, i.status
				FROM exercise_set s
				JOIN instance_exercise ie ON ie.id = s.instance_exercise_id
				JOIN workout_instance i ON i.id = ie.instance_id
				WHERE s.id = $1 AND i.user_id = $2
				FOR UPDATE OF s, i
			`,
			setID, userID,
		).Scan(
			&res.ID, &res.SetNumber, &res.TargetReps, &res.ActualReps, &res.Weight, &res.Unit, &res.Completed,
			&res.InstanceID, &res.InstanceStatus,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrSetNotFound
			}
			return fmt.Errorf("exercise set [query row]: %w", err)
		}

		promote := ApplySetUpdate(&res.ExerciseSet, update, res.InstanceStatus)
		_, err = tx.Exec(
			ctx,
			`UPDATE exercise_set SET actual_reps = $1, weight = $2, unit = $3, completed = $4 WHERE id = $5`,
			res.ActualReps, res.Weight, res.Unit, res.Completed, res.ID,
		)
		if err != nil {
			return fmt.Errorf("update exercise set: %w", err)
		}

		if promote {
			_, err = tx.Exec(
				ctx,
				`UPDATE workout_instance SET status = $1 WHERE id = $2 AND status = $3`,
				Status.InProgress, res.InstanceID, Status.Scheduled,
			)
			if err != nil {
				return fmt.Errorf("promote instance: %w", err)
			}
			res.InstanceStatus = Status.InProgress
			res.Promoted = true
		}

		result = &res
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
