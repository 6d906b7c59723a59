// Package web holds the static front-end compiled into the binary.
package web

import "embed"

// PublicFS embeds the bundled client: index.html plus the assets the
// page loads from /dist/.
//
//go:embed public
var PublicFS embed.FS
