package render

import (
	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/goliatone/go-formcontent/pkg/govuk"
	"github.com/goliatone/go-formcontent/pkg/render/template"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithTemplateRenderer replaces the default go-template engine.
func WithTemplateRenderer(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if engine != nil {
			r.engine = engine
		}
	}
}

// WithRegistry replaces the default component registry.
func WithRegistry(registry *Registry) Option {
	return func(r *Renderer) {
		if registry != nil {
			r.registry = registry
		}
	}
}

// WithComponent registers or overrides the template used for a kind.
func WithComponent(kind string, component Component) Option {
	return func(r *Renderer) {
		r.pending = append(r.pending, pendingComponent{kind: kind, component: component})
	}
}

// WithBuilder sets the descriptor builder used by RenderQuestion and
// RenderPage.
func WithBuilder(builder *govuk.Builder) Option {
	return func(r *Renderer) {
		if builder != nil {
			r.builder = builder
		}
	}
}

// WithTheme supplies a resolved go-theme configuration. Its partials override
// component templates and its CSS variables and assets feed the page template.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(r *Renderer) {
		r.theme = cfg
	}
}

// WithLogger sets the logger. Libraries default to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithSanitizer overrides the policy applied to hint markup. Passing nil
// disables sanitizing.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		r.sanitizer = policy
		r.sanitizerSet = true
	}
}

type pendingComponent struct {
	kind      string
	component Component
}
