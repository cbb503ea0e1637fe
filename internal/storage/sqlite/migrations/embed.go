package migrations

import "embed"

// FS contains embedded SQLite migrations for generation storage.
//
//go:embed *.sql
var FS embed.FS
