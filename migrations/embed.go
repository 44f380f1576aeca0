// Package migrations holds the versioned schema, embedded into the binaries.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
