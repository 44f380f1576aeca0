package migration

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-match/migrations"
)

func TestLoad_SortsAndFilters(t *testing.T) {
	src := fstest.MapFS{
		"V2__add_index.sql":  {Data: []byte("CREATE INDEX x ON t (a);")},
		"V1__init.sql":       {Data: []byte("  CREATE TABLE t (a INT);\n")},
		"README.md":          {Data: []byte("notes")},
		"V3_missing_sep.sql": {Data: []byte("SELECT 1;")},
	}

	migs, err := Load(src)
	require.NoError(t, err)
	require.Len(t, migs, 2)
	assert.Equal(t, int64(1), migs[0].Version)
	assert.Equal(t, "init", migs[0].Name)
	assert.Equal(t, "CREATE TABLE t (a INT);", migs[0].SQL)
	assert.Len(t, migs[0].Checksum, 64)
	assert.Equal(t, int64(2), migs[1].Version)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(fstest.MapFS{"V1__empty.sql": {Data: []byte("   ")}})
	assert.ErrorContains(t, err, "empty migration file")

	_, err = Load(fstest.MapFS{
		"V1__a.sql":  {Data: []byte("SELECT 1;")},
		"V01__b.sql": {Data: []byte("SELECT 2;")},
	})
	assert.ErrorContains(t, err, "duplicate migration version: 1")
}

func TestPending(t *testing.T) {
	migs := []Migration{
		{Version: 1, Name: "a", Checksum: "aaa"},
		{Version: 2, Name: "b", Checksum: "bbb"},
	}

	out, err := Pending(migs, map[int64]string{1: "aaa"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].Version)

	_, err = Pending(migs, map[int64]string{1: "changed"})
	assert.ErrorContains(t, err, "checksum mismatch")
}

func TestEmbeddedSchema(t *testing.T) {
	migs, err := Load(migrations.FS)
	require.NoError(t, err)
	require.NotEmpty(t, migs)
	assert.Equal(t, "matching_schema", migs[0].Name)
	assert.Contains(t, migs[0].SQL, "CREATE TABLE IF NOT EXISTS job_postings")
}

func TestRun_RequiresSource(t *testing.T) {
	assert.Error(t, Runner{}.Run(context.Background(), nil))
}
