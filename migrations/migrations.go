// Package migrations embeds the SQL schema migrations applied at startup
// when the archive database is configured.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
