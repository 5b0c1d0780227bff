package users

import (
	"time"

	"github.com/2beens/fittrack/internal/apierr"
)

var ErrUserNotFound = apierr.NotFound("user not found")

type Profile struct {
	ID                  int       `json:"id"`
	Username            string    `json:"username"`
	DisplayName         string    `json:"displayName"`
	PreferredWeightUnit string    `json:"preferredWeightUnit"`
	PreferredWaterUnit  string    `json:"preferredWaterUnit"`
	CreatedAt           time.Time `json:"createdAt"`
}

// ProfileUpdate holds the optional profile fields, nil means unchanged.
type ProfileUpdate struct {
	DisplayName         *string
	PreferredWeightUnit *string
	PreferredWaterUnit  *string
}
