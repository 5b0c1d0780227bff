package testinternals

import (
	"context"
	"net"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

// NewRedis runs a redis container and returns a connected client and the
// mapped port.
func NewRedis(t *testing.T) (*redis.Client, string) {
	t.Helper()

	dockerPool := newDockerPool(t)
	redisResource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	require.NoError(t, err, "run redis")
	t.Cleanup(func() {
		if err := dockerPool.Purge(redisResource); err != nil {
			t.Logf("purge redis container: %s", err)
		}
	})
	_ = redisResource.Expire(120)

	port := redisResource.GetPort("6379/tcp")
	rdb := redis.NewClient(&redis.Options{
		Addr: net.JoinHostPort("localhost", port),
		DB:   0,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	err = dockerPool.Retry(func() error {
		return rdb.Ping(context.Background()).Err()
	})
	require.NoError(t, err, "connect to redis")

	return rdb, port
}
