// Package web holds the embedded page templates and static assets.
package web

import "embed"

//go:embed templates static
var EmbeddedFS embed.FS
