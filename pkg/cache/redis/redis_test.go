package redis_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"yelpcamp/pkg/cache"
	"yelpcamp/pkg/cache/redis"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) *redis.Cache {
	t.Helper()

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379"},
			WaitingFor:   wait.ForListeningPort("6379"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	c, err := redis.New(ctx, redis.Options{
		Addr:   fmt.Sprintf("%s:%d", host, port.Int()),
		Prefix: "test:",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func TestCache(t *testing.T) {
	c := setupRedis(t)
	ctx := context.Background()

	_, err := c.Get(ctx, "missing")
	require.ErrorIs(t, err, cache.ErrMiss)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), got)

	require.NoError(t, c.Delete(ctx, "k"))
	_, err = c.Get(ctx, "k")
	require.ErrorIs(t, err, cache.ErrMiss)

	// deleting twice is fine
	require.NoError(t, c.Delete(ctx, "k"))
}

func TestCache_Expiry(t *testing.T) {
	c := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", []byte("v"), 100*time.Millisecond))
	require.Eventually(t, func() bool {
		_, err := c.Get(ctx, "short")

		return err == cache.ErrMiss
	}, 5*time.Second, 50*time.Millisecond)
}

func TestNew_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := redis.New(ctx, redis.Options{Addr: "127.0.0.1:1"})
	require.Error(t, err)
}
