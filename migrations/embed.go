// Package migrations holds the goose SQL migrations for the service schema.
package migrations

import "embed"

// FS contains every *.sql migration, named NNNNN_description.sql.
//
//go:embed *.sql
var FS embed.FS
