package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle so callers can serve or
// override the built-in preview markup.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
