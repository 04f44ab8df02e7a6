// Package migrations embeds the SQL schema scripts for the cache database.
package migrations

import "embed"

// FS holds the numbered NNN_name.up.sql / .down.sql scripts.
//
//go:embed *.sql
var FS embed.FS
