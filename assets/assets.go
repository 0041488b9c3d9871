package assets

import "embed"

// FS holds the towns and message catalogues shipped with the game.
//
//go:embed all:towns all:locales
var FS embed.FS

const (
	TownsDir   = "towns"
	LocalesDir = "locales"
)
