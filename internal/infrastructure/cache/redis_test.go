package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"career-match/internal/config"
)

func TestNewRedis_UnavailableDegradesToNoop(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	r := NewRedis(config.RedisConfig{Host: "127.0.0.1", Port: "1"}, zap.New(core))

	require.NotNil(t, r)
	assert.False(t, r.Available())
	assert.Equal(t, 1, logs.FilterMessage("redis unavailable, bypassing cache").Len())

	ctx := context.Background()
	require.NoError(t, r.SetJSON(ctx, "k", map[string]int{"a": 1}, time.Minute))

	var out map[string]int
	hit, err := r.GetJSON(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	ok, err := r.SetIfNotExists(ctx, LockKey("k"), "1", 0)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, r.InvalidateCandidate(ctx, "c1"))
	assert.Error(t, r.Ping(ctx))
	assert.NoError(t, r.Close())
}

func TestNilRedisIsSafe(t *testing.T) {
	var r *Redis
	ctx := context.Background()

	hit, err := r.GetJSON(ctx, "k", &struct{}{})
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, r.Delete(ctx, "k"))
	assert.False(t, r.Available())
}

func TestKey(t *testing.T) {
	a := Key(EquivalencePrefix, "machine learning", "polimi")
	b := Key(EquivalencePrefix, "machine learning", "polimi")
	c := Key(EquivalencePrefix, "machine learning", "unimi")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, len(a) == len(EquivalencePrefix)+64)

	scoped := ScopedKey(ProgressionPrefix, "cand-1", 2025)
	assert.Contains(t, scoped, "progression:cand-1:")
	assert.Equal(t, "lock:"+a, LockKey(a))
}
