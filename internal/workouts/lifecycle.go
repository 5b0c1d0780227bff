package workouts

import "time"

var statusRank = map[string]int{
	Status.Scheduled:  0,
	Status.InProgress: 1,
	Status.Completed:  2,
}

// CanTransition reports whether status may move from one value to another.
// Staying put is allowed, going back never is.
func CanTransition(from, to string) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank >= fromRank
}

// AllSetsCompleted is false for an instance without sets.
func AllSetsCompleted(inst Instance) bool {
	total := 0
	for _, ex := range inst.Exercises {
		for _, s := range ex.Sets {
			if !s.Completed {
				return false
			}
			total++
		}
	}
	return total > 0
}

// Instantiate snapshots the template into a scheduled instance. Each
// exercise gets Sets sets numbered from 1, all targeting Reps.
func Instantiate(t Template, scheduledDate string) Instance {
	templateID := t.ID
	inst := Instance{
		UserID:        t.UserID,
		TemplateID:    &templateID,
		Name:          t.Name,
		Description:   t.Description,
		ScheduledDate: scheduledDate,
		Status:        Status.Scheduled,
		Exercises:     make([]InstanceExercise, 0, len(t.Exercises)),
	}

	for i, te := range t.Exercises {
		exerciseID := te.ExerciseID
		ie := InstanceExercise{
			ExerciseID:   &exerciseID,
			ExerciseName: te.ExerciseName,
			MuscleGroups: append([]string{}, te.MuscleGroups...),
			OrderIndex:   i,
			Notes:        te.Notes,
			Sets:         make([]ExerciseSet, 0, te.Sets),
		}
		for n := 1; n <= te.Sets; n++ {
			ie.Sets = append(ie.Sets, ExerciseSet{
				SetNumber:  n,
				TargetReps: te.Reps,
				Unit:       DefaultSetUnit,
			})
		}
		inst.Exercises = append(inst.Exercises, ie)
	}

	return inst
}

// ApplyUpdate changes inst in place. Completing requires every set to be
// completed and stamps now when no completion date is given.
func ApplyUpdate(inst *Instance, update InstanceUpdate, now time.Time) error {
	if update.Status != nil {
		to := *update.Status
		if !CanTransition(inst.Status, to) {
			return ErrInvalidTransition
		}
		if to == Status.Completed && inst.Status != Status.Completed {
			if !AllSetsCompleted(*inst) {
				return ErrSetsIncomplete
			}
			completedAt := now
			if update.CompletedDate != nil {
				completedAt = *update.CompletedDate
			}
			inst.CompletedDate = &completedAt
		}
		inst.Status = to
	}

	if update.CompletedDate != nil {
		if inst.Status != Status.Completed {
			return ErrCompletedDate
		}
		completedAt := *update.CompletedDate
		inst.CompletedDate = &completedAt
	}

	if update.Notes != nil {
		inst.Notes = *update.Notes
	}
	return nil
}

// ApplySetUpdate changes the set in place and reports whether the instance,
// currently in status, should be promoted to in-progress.
func ApplySetUpdate(set *ExerciseSet, update SetUpdate, status string) (promote bool) {
	if update.ActualReps != nil {
		reps := *update.ActualReps
		set.ActualReps = &reps
	}
	if update.Weight != nil {
		weight := *update.Weight
		set.Weight = &weight
	}
	if update.Unit != nil {
		set.Unit = *update.Unit
	}
	if update.Completed != nil {
		set.Completed = *update.Completed
		promote = set.Completed && status == Status.Scheduled
	}
	return promote
}
