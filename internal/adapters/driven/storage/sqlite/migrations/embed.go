// Package migrations carries the SQL schema files for the history
// database, embedded so the binary migrates itself on first run.
package migrations

import "embed"

// FS holds every migration file.
//
//go:embed *.sql
var FS embed.FS
