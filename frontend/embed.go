package frontend

import "embed"

// StaticFiles holds the built dashboard page
//
//go:embed dist
var StaticFiles embed.FS
