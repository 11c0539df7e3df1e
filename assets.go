// Package sportbook provides embedded web assets.
package sportbook

import "embed"

// TemplateFS holds the page templates under web/templates.
//
//go:embed all:web/templates
var TemplateFS embed.FS

// StaticFS holds the stylesheets and other static files under web/static.
//
//go:embed all:web/static
var StaticFS embed.FS
