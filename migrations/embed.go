// Package migrations embeds the PostgreSQL schema for the goose provider.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
