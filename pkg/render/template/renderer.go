package template

import (
	"io"
)

// TemplateRenderer is the seam between descriptor rendering and a concrete
// template engine. Component templates receive the descriptor parameters under
// the "params" key.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
