// Package migrations embeds the SQL schema files so tests and tooling can
// apply them without relying on the working directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
