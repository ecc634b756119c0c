// Package migrations embeds the goose SQL files for the wardrobe schema.
// Apply them with `wardrobectl migrate up`.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
