// Package gamedata provides the embedded unit and encounter tables.
package gamedata

import "embed"

// dataFS embeds the JSON tables at build time; they are not configurable at runtime.
//
//go:embed *.json
var dataFS embed.FS
