// Package suite starts a throwaway Redis container for the archive integration tests.
package suite

import (
	"context"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-model/internal/repository/storage"
)

const (
	containerTTL = 120 // seconds
	startTimeout = 120 * time.Second
)

const (
	redisImage = "redis"
	redisTag   = "alpine"
	redisPort  = "6379/tcp"
)

type Suite struct {
	*testing.T

	// Addr is the host:port the container publishes Redis on.
	Addr    string
	Storage *storage.RedisStorage
}

// Redis returns the raw client for assertions the repository does not expose, such as TTL.
func (that *Suite) Redis() *redis.Client {
	return that.Storage.Connection
}

// New - connects a storage to a flushed Redis running in docker.
// The test is skipped in short mode or when no docker daemon is reachable.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	t.Cleanup(cancel)

	pool := newPool(t)
	resource := startRedis(t, pool)
	addr := resource.GetHostPort(redisPort)

	redisStorage := connect(ctx, t, pool, addr)

	if err := redisStorage.Connection.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush redis: %v", err)
	}

	t.Cleanup(func() {
		if err := redisStorage.Close(); err != nil {
			t.Logf("could not close storage: %v", err)
		}
	})

	return ctx, &Suite{
		T:       t,
		Addr:    addr,
		Storage: redisStorage,
	}
}

func newPool(t *testing.T) *dockertest.Pool {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	pool.MaxWait = startTimeout

	return pool
}

// startRedis - the container removes itself once stopped and is killed after containerTTL.
func startRedis(t *testing.T, pool *dockertest.Pool) *dockertest.Resource {
	t.Helper()

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis container: %v", err)
	}

	_ = resource.Expire(containerTTL)

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("could not purge redis container: %v", err)
		}
	})

	return resource
}

// connect - retries storage.NewRedisStorage until the server inside the container accepts connections.
func connect(ctx context.Context, t *testing.T, pool *dockertest.Pool, addr string) *storage.RedisStorage {
	t.Helper()

	var redisStorage *storage.RedisStorage
	err := pool.Retry(func() error {
		var err error
		redisStorage, err = storage.NewRedisStorage(ctx, addr)
		return err
	})
	if err != nil {
		t.Fatalf("could not connect to redis at %s: %v", addr, err)
	}

	return redisStorage
}
