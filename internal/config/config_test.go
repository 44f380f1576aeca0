package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "career-match")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "career-match", cfg.App.AppName)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.Equal(t, 600*time.Second, cfg.Redis.TTL)
	assert.Equal(t, 8, cfg.Worker.BatchWorkers)
	assert.Zero(t, cfg.Worker.BatchRate)
	assert.False(t, cfg.Database.Enabled())
	assert.Zero(t, cfg.Matching.AcademicGate)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "career")
	t.Setenv("CACHE_TTL", "60")
	t.Setenv("LOG_JSON", "true")
	t.Setenv("MATCH_ACADEMIC_GATE", "65")
	t.Setenv("MATCH_EQUIVALENCE_THRESHOLD", "0.75")
	t.Setenv("BATCH_WORKERS", "3")
	t.Setenv("BATCH_RATE", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, time.Minute, cfg.Redis.TTL)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, 65.0, cfg.Matching.AcademicGate)
	assert.Equal(t, 0.75, cfg.Matching.EquivalenceThreshold)
	assert.Equal(t, 3, cfg.Worker.BatchWorkers)
	assert.Equal(t, 25, cfg.Worker.BatchRate)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")

	_, err := Load()
	require.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "APP_NAME, APP_ENV, HTTP_PORT")
}

func TestLoad_InvalidValues(t *testing.T) {
	setRequired(t)
	t.Setenv("MATCH_MIN_GRADE", "eighteen")
	t.Setenv("MATCH_REQUIREMENT_SIMILARITY", "1.5")
	t.Setenv("BATCH_WORKERS", "-2")

	_, err := Load()
	require.ErrorIs(t, err, errInvalidEnv)
	assert.Contains(t, err.Error(), "MATCH_MIN_GRADE")
	assert.Contains(t, err.Error(), "MATCH_REQUIREMENT_SIMILARITY")
	assert.Contains(t, err.Error(), "BATCH_WORKERS")
}

func TestAppConfig_Development(t *testing.T) {
	assert.True(t, AppConfig{Environment: "Development"}.Development())
	assert.False(t, AppConfig{Environment: "production"}.Development())
}
