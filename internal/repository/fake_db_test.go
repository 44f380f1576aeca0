package repository

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"strings"

	"career-match/internal/database"
)

// fakeDB answers queries by matching the first table named after FROM.
type fakeDB struct {
	tables  map[string][][]any
	queries []string
	args    [][]any
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }
func (f *fakeDB) SQLDB() *sql.DB             { return nil }

func (f *fakeDB) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }

func (f *fakeDB) Begin(context.Context) (database.Tx, error) {
	return nil, fmt.Errorf("not supported")
}

func (f *fakeDB) Query(_ context.Context, query string, args ...any) (database.Rows, error) {
	f.queries = append(f.queries, query)
	f.args = append(f.args, args)
	return &fakeRows{data: f.tables[tableOf(query)], pos: -1}, nil
}

func (f *fakeDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	rows, _ := f.Query(ctx, query, args...)
	return fakeRow{rows: rows.(*fakeRows)}
}

func tableOf(query string) string {
	fields := strings.Fields(query)
	for i, w := range fields {
		if strings.EqualFold(w, "FROM") && i+1 < len(fields) {
			return fields[i+1]
		}
	}
	return ""
}

type fakeRows struct {
	data [][]any
	pos  int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.pos]
	if len(row) != len(dest) {
		return fmt.Errorf("scan: %d columns into %d targets", len(row), len(dest))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if row[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		target.Set(reflect.ValueOf(row[i]))
	}
	return nil
}

type fakeRow struct {
	rows *fakeRows
}

func (r fakeRow) Scan(dest ...any) error {
	if !r.rows.Next() {
		return sql.ErrNoRows
	}
	return r.rows.Scan(dest...)
}
