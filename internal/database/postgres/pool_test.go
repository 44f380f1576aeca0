package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"career-match/internal/config"
	"career-match/internal/database"
)

func TestDSN(t *testing.T) {
	got := DSN(config.DatabaseConfig{
		DBHost:     " db ",
		DBName:     "career",
		DBUser:     "match",
		DBPassword: "secret",
	})
	assert.Equal(t, "host=db port=5432 user=match password=secret dbname=career sslmode=disable", got)
}

func TestNilPool(t *testing.T) {
	var p *Pool
	ctx := context.Background()

	assert.ErrorIs(t, p.Ping(ctx), database.ErrNoDatabase)
	_, err := p.Exec(ctx, "SELECT 1")
	assert.ErrorIs(t, err, database.ErrNoDatabase)
	_, err = p.Query(ctx, "SELECT 1")
	assert.ErrorIs(t, err, database.ErrNoDatabase)
	assert.ErrorIs(t, p.QueryRow(ctx, "SELECT 1").Scan(), database.ErrNoDatabase)
	_, err = p.Begin(ctx)
	assert.ErrorIs(t, err, database.ErrNoDatabase)
	assert.NoError(t, p.Close())
	assert.Nil(t, p.SQLDB())
}
