// Package testinternals starts throwaway infrastructure for integration tests.
package testinternals

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/2beens/fittrack/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

const testDBName = "fittrack_test"

// NewPostgres runs a postgres container, applies the migrations and returns
// a pool to it. The container is removed when the test ends.
func NewPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	pool, _ := StartPostgres(t)
	return pool
}

// StartPostgres is NewPostgres that also returns the connection params, for
// tests that boot the whole server against the container.
func StartPostgres(t *testing.T) (*pgxpool.Pool, db.NewDBPoolParams) {
	t.Helper()

	dockerPool := newDockerPool(t)

	pgResource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_HOST_AUTH_METHOD=trust",
			"POSTGRES_DB=" + testDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	require.NoError(t, err, "run postgres")
	t.Cleanup(func() {
		if err := dockerPool.Purge(pgResource); err != nil {
			t.Logf("purge postgres container: %s", err)
		}
	})
	_ = pgResource.Expire(120)

	params := db.NewDBPoolParams{
		DBHost: "localhost",
		DBPort: pgResource.GetPort("5432/tcp"),
		DBName: testDBName,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var pool *pgxpool.Pool
	err = dockerPool.Retry(func() error {
		var err error
		pool, err = db.NewDBPool(ctx, params)
		if err != nil {
			return err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return err
		}
		return nil
	})
	require.NoError(t, err, "connect to postgres")
	t.Cleanup(pool.Close)

	require.NoError(t, db.Migrate(ctx, params.ConnString()), "migrate")

	return pool, params
}

func newDockerPool(t *testing.T) *dockertest.Pool {
	t.Helper()
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	dockerPool, err := dockertest.NewPool("")
	require.NoError(t, err, "could not create new dockertest pool")
	require.NoError(t, dockerPool.Client.Ping(), "could not ping docker")
	dockerPool.MaxWait = time.Minute
	return dockerPool
}

// CreateUser inserts a user row and returns its id.
func CreateUser(t *testing.T, pool *pgxpool.Pool, username string) int {
	t.Helper()

	var id int
	err := pool.QueryRow(
		context.Background(),
		`INSERT INTO app_user (username, password_hash, display_name) VALUES ($1, 'x', $1) RETURNING id`,
		username,
	).Scan(&id)
	require.NoError(t, err, fmt.Sprintf("create user %s", username))
	return id
}
