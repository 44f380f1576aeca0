package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_RunsAllTasks(t *testing.T) {
	p := NewPool(3, 10)
	results := p.Run(context.Background())

	var count atomic.Int32
	for i := 0; i < 10; i++ {
		require.NoError(t, p.SubmitContext(context.Background(), func(ctx context.Context) error {
			count.Add(1)
			return nil
		}))
	}
	p.Close()

	seen := make(map[int]bool)
	for r := range results {
		require.NoError(t, r.Err)
		seen[r.Index] = true
	}
	assert.Equal(t, int32(10), count.Load())
	assert.Len(t, seen, 10)
	for i := 0; i < 10; i++ {
		assert.True(t, seen[i], "missing index %d", i)
	}
}

func TestPool_SubmitAfterClose(t *testing.T) {
	p := NewPool(1, 1)
	p.Close()
	p.Close()

	err := p.SubmitContext(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, errPoolClosed)
}

func TestPool_DefaultsAndNil(t *testing.T) {
	assert.Equal(t, 1, NewPool(0, -1).Workers())

	var p *Pool
	assert.NoError(t, p.SubmitContext(context.Background(), func(context.Context) error { return nil }))
	p.SetRateLimit(5)
	p.Close()
	_, ok := <-p.Run(context.Background())
	assert.False(t, ok)
}

func TestPool_RateLimit(t *testing.T) {
	p := NewPool(2, 4)
	p.SetRateLimit(50)
	results := p.Run(context.Background())

	start := time.Now()
	for i := 0; i < 4; i++ {
		require.NoError(t, p.SubmitContext(context.Background(), func(context.Context) error { return nil }))
	}
	p.Close()
	for range results {
	}
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestEach(t *testing.T) {
	out := make([]int, 50)
	err := Each(context.Background(), Limits{Workers: 4}, len(out), func(_ context.Context, i int) error {
		out[i] = i * i
		return nil
	})
	require.NoError(t, err)
	for i, v := range out {
		assert.Equal(t, i*i, v)
	}
}

func TestEach_FirstError(t *testing.T) {
	boom := errors.New("boom")
	err := Each(context.Background(), Limits{Workers: 2}, 20, func(_ context.Context, i int) error {
		if i == 3 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestEach_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Each(ctx, Limits{Workers: 2}, 5, func(context.Context, int) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEach_Empty(t *testing.T) {
	assert.NoError(t, Each(context.Background(), Limits{Workers: 4}, 0, nil))
}

func TestEach_RateLimited(t *testing.T) {
	var count atomic.Int32
	start := time.Now()
	err := Each(context.Background(), Limits{Workers: 4, PerSecond: 50}, 5, func(context.Context, int) error {
		count.Add(1)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int32(5), count.Load())
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}
