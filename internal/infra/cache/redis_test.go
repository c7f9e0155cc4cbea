package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-manager/internal/config"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "bsm:session:abc", Key("session", "abc"))
	assert.Equal(t, "bsm", Key())
}

func TestOptions(t *testing.T) {
	opts := Options(config.RedisConfig{Addr: "localhost:6379", DB: 2})
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 2*time.Second, opts.DialTimeout)
}

func TestNewFailsWithoutServer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := New(ctx, config.RedisConfig{Addr: "127.0.0.1:1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping redis")
}
