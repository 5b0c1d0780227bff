package workouts

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo stores templates, instances and their sets.
type Repo struct {
	db  *pgxpool.Pool
	now func() time.Time
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db:  db,
		now: time.Now,
	}
}
