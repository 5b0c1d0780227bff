package exercises

import (
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/apierr"
)

var ErrExerciseNotFound = apierr.NotFound("exercise not found")

type Exercise struct {
	ID           int       `json:"id"`
	UserID       int       `json:"-"`
	Name         string    `json:"name"`
	MuscleGroups []string  `json:"muscleGroups"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ListParams struct {
	MuscleGroup string
}

// JoinMuscleGroups trims the tags, drops empty ones and joins them with commas.
func JoinMuscleGroups(groups []string) string {
	return strings.Join(cleanGroups(groups), ",")
}

// SplitMuscleGroups is the inverse of JoinMuscleGroups, never nil.
func SplitMuscleGroups(joined string) []string {
	return cleanGroups(strings.Split(joined, ","))
}

func cleanGroups(groups []string) []string {
	cleaned := make([]string, 0, len(groups))
	for _, g := range groups {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		cleaned = append(cleaned, g)
	}
	return cleaned
}
