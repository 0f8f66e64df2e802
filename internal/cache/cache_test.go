package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	ctx := context.Background()
	c := &FakeCache{}
	require.Panics(t, func() { c.Get(ctx, "k") })
	require.Panics(t, func() { c.Set(ctx, "k", 1, 0) })
	require.Panics(t, func() { c.SetNX(ctx, "k", 1, 0) })
	require.Panics(t, func() { c.Ping(ctx) })
	require.NoError(t, c.Close())

	var gotNX string
	c.GetFn = func(context.Context, string) *redis.StringCmd { return redis.NewStringResult("v", nil) }
	c.SetFn = func(context.Context, string, any, time.Duration) *redis.StatusCmd { return redis.NewStatusResult("OK", nil) }
	c.SetNXFn = func(_ context.Context, key string, _ any, _ time.Duration) *redis.BoolCmd {
		gotNX = key
		return redis.NewBoolResult(false, nil)
	}
	c.PingFn = func(context.Context) *redis.StatusCmd { return redis.NewStatusResult("PONG", nil) }
	c.CloseFn = func() error { return errors.New("close") }

	require.Equal(t, "v", c.Get(ctx, "k").Val())
	require.Equal(t, "OK", c.Set(ctx, "k", 1, 0).Val())
	require.False(t, c.SetNX(ctx, "a", 1, 0).Val())
	require.Equal(t, "a", gotNX)
	require.Equal(t, "PONG", c.Ping(ctx).Val())
	require.EqualError(t, c.Close(), "close")
}
