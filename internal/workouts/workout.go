package workouts

import (
	"time"

	"github.com/2beens/fittrack/internal/apierr"
)

var Status = struct {
	Scheduled  string
	InProgress string
	Completed  string
}{
	Scheduled:  "scheduled",
	InProgress: "in-progress",
	Completed:  "completed",
}

// DefaultSetUnit is the weight unit of freshly instantiated sets.
const DefaultSetUnit = "kg"

var (
	ErrTemplateNotFound = apierr.NotFound("workout template not found")
	ErrInstanceNotFound = apierr.NotFound("workout instance not found")
	ErrSetNotFound      = apierr.NotFound("exercise set not found")
	ErrExerciseNotFound = apierr.NotFound("exercise not found")

	ErrInvalidTransition = apierr.Validation("status can only move forward: scheduled, in-progress, completed")
	ErrSetsIncomplete    = apierr.Validation("all sets must be completed before completing the workout")
	ErrCompletedDate     = apierr.Validation("completedDate can only be set on completed workouts")
)

// Template is the reusable plan. Instances copy from it and never point back
// at its mutable fields.
type Template struct {
	ID          int                `json:"id"`
	UserID      int                `json:"-"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Exercises   []TemplateExercise `json:"exercises"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type TemplateExercise struct {
	ID         int    `json:"id"`
	ExerciseID int    `json:"exerciseId"`
	OrderIndex int    `json:"orderIndex"`
	Sets       int    `json:"sets"`
	Reps       int    `json:"reps"`
	Notes      string `json:"notes"`

	// resolved from the exercise definition
	ExerciseName string   `json:"exerciseName"`
	MuscleGroups []string `json:"muscleGroups"`
}

type TemplateExerciseInput struct {
	ExerciseID int
	Sets       int
	Reps       int
	Notes      string
}

type TemplateInput struct {
	Name        string
	Description string
	Exercises   []TemplateExerciseInput
}

type Instance struct {
	ID            int                `json:"id"`
	UserID        int                `json:"-"`
	TemplateID    *int               `json:"templateId"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	ScheduledDate string             `json:"scheduledDate"`
	Status        string             `json:"status"`
	CompletedDate *time.Time         `json:"completedDate"`
	Notes         string             `json:"notes"`
	Exercises     []InstanceExercise `json:"exercises"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// InstanceExercise is a snapshot: name and muscle groups are copied at
// instantiation and survive edits or deletion of the exercise.
type InstanceExercise struct {
	ID           int           `json:"id"`
	ExerciseID   *int          `json:"exerciseId"`
	ExerciseName string        `json:"exerciseName"`
	MuscleGroups []string      `json:"muscleGroups"`
	OrderIndex   int           `json:"orderIndex"`
	Notes        string        `json:"notes"`
	Sets         []ExerciseSet `json:"sets"`
}

type ExerciseSet struct {
	ID         int      `json:"id"`
	SetNumber  int      `json:"setNumber"`
	TargetReps int      `json:"targetReps"`
	ActualReps *int     `json:"actualReps"`
	Weight     *float64 `json:"weight"`
	Unit       string   `json:"unit"`
	Completed  bool     `json:"completed"`
}

// SetUpdate holds the changed set fields, nil means unchanged.
type SetUpdate struct {
	ActualReps *int
	Weight     *float64
	Unit       *string
	Completed  *bool
}

type SetUpdateResult struct {
	ExerciseSet
	InstanceID     int    `json:"instanceId"`
	InstanceStatus string `json:"instanceStatus"`
	// Promoted is set when this update moved the instance to in-progress
	Promoted bool `json:"promoted"`
}

// InstanceUpdate holds the changed instance fields, nil means unchanged.
type InstanceUpdate struct {
	Status        *string
	Notes         *string
	CompletedDate *time.Time
}

type ListParams struct {
	From   string
	To     string
	Status string
}
