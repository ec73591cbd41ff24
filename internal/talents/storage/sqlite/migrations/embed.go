package migrations

import "embed"

// FS contains embedded SQLite migrations for talents storage.
//
//go:embed *.sql
var FS embed.FS
