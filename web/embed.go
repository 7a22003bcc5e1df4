// Package web provides embedded static assets for generated site bundles.
// The bundle templates and base stylesheet under static/bundle/ are rendered
// into every downloaded ZIP; they ship inside the binary so downloads work
// without any files on disk.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree.
//
//go:embed all:static
var StaticFS embed.FS
