package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	keys map[string]time.Duration
	err  error
}

func (f *fakeRedis) Set(_ context.Context, key string, _ any, ttl time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.keys[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Exists(_ context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.keys[k]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.keys[k]; ok {
			delete(f.keys, k)
			n++
		}
	}
	return redis.NewIntResult(n, f.err)
}

func TestRedisSessions(t *testing.T) {
	ctx := context.Background()
	fr := &fakeRedis{keys: map[string]time.Duration{}}
	s := &RedisSessions{store: fr}

	require.NoError(t, s.Save(ctx, "j1", "acc", time.Hour))
	assert.Equal(t, time.Hour, fr.keys["bsm:session:j1"])

	ok, err := s.Exists(ctx, "j1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.Revoke(ctx, "j1"))
	ok, err = s.Exists(ctx, "j1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisSessionsError(t *testing.T) {
	down := errors.New("connection refused")
	s := &RedisSessions{store: &fakeRedis{keys: map[string]time.Duration{}, err: down}}

	_, err := s.Exists(context.Background(), "j1")
	assert.ErrorIs(t, err, down)
}

func TestMemorySessionsExpire(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemorySessions()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Save(ctx, "j1", "acc", time.Minute))
	ok, _ := s.Exists(ctx, "j1")
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	ok, _ = s.Exists(ctx, "j1")
	assert.False(t, ok)
}
