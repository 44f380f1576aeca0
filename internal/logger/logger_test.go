package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := New(true, false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = New(false, true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestComponent(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	Component(zap.New(core), "cache", zap.String("backend", "redis")).Info("ready")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "cache", entries[0].LoggerName)
	assert.Equal(t, "redis", entries[0].ContextMap()["backend"])

	assert.NotPanics(t, func() {
		Component(nil, "ws").Info("no-op")
	})
}
