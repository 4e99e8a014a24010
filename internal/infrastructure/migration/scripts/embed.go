// Package scripts embeds the goose SQL migrations, one directory per goose
// dialect.
package scripts

import "embed"

//go:embed mysql/*.sql postgres/*.sql sqlite3/*.sql
var FS embed.FS
