package render

import (
	"embed"
	"io/fs"
)

//go:embed templates/govuk/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS returns the built-in component and page templates rooted so that
// names look like "govuk/input.tpl".
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
