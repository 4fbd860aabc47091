package render

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	gotemplate "github.com/goliatone/go-template"
	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/goliatone/go-formcontent/pkg/content"
	"github.com/goliatone/go-formcontent/pkg/govuk"
	"github.com/goliatone/go-formcontent/pkg/render/template"
)

var _ template.TemplateRenderer = (*gotemplate.Engine)(nil)

const (
	templateExtension  = ".tpl"
	pageTemplate       = "govuk/page"
	pagePartial        = "govuk.page"
	stylesheetAsset    = "govuk.stylesheet"
	defaultMethod      = "post"
	defaultSubmitLabel = "Save and continue"
)

// Renderer draws descriptors through component templates.
type Renderer struct {
	engine       template.TemplateRenderer
	registry     *Registry
	builder      *govuk.Builder
	theme        *theme.RendererConfig
	logger       *zap.Logger
	sanitizer    *bluemonday.Policy
	sanitizerSet bool
	pending      []pendingComponent
}

// New builds a Renderer using the embedded templates and default registry
// unless overridden.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		logger:  zap.NewNop(),
		builder: govuk.NewBuilder(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}

	if r.registry == nil {
		r.registry = NewDefaultRegistry()
	} else {
		r.registry = r.registry.Clone()
	}
	for _, entry := range r.pending {
		if err := r.registry.Register(entry.kind, entry.component); err != nil {
			return nil, err
		}
	}
	r.pending = nil

	if !r.sanitizerSet {
		r.sanitizer = HintPolicy()
	}

	if r.engine == nil {
		engine, err := gotemplate.NewRenderer(
			gotemplate.WithFS(TemplatesFS()),
			gotemplate.WithExtension(templateExtension),
		)
		if err != nil {
			return nil, fmt.Errorf("render: create template engine: %w", err)
		}
		r.engine = engine
	}

	return r, nil
}

// Registry exposes the component registry in use.
func (r *Renderer) Registry() *Registry {
	return r.registry
}

// Render draws a single descriptor.
func (r *Renderer) Render(ctx context.Context, descriptor govuk.Descriptor) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	component, err := r.registry.Get(descriptor.Kind)
	if err != nil {
		return "", err
	}
	name := r.resolveTemplate(component.Template, component.Partial)

	out, err := r.engine.RenderTemplate(name, map[string]any{
		"params": r.paramsView(descriptor.Params),
		"theme":  r.themeView(),
	})
	if err != nil {
		return "", fmt.Errorf("render: %s component: %w", descriptor.Kind, err)
	}
	return out, nil
}

// RenderQuestion builds and draws the descriptor for q. The boolean result is
// false when the question type has no rendering strategy; that is not an
// error.
func (r *Renderer) RenderQuestion(ctx context.Context, q content.Question, data govuk.Data, errs govuk.Errors) (string, bool, error) {
	descriptor, ok := r.builder.FromQuestion(q, data, errs)
	if !ok {
		r.logger.Debug("question has no rendering strategy",
			zap.String("question", q.ID),
			zap.String("type", string(q.Type)),
		)
		return "", false, nil
	}
	out, err := r.Render(ctx, descriptor)
	if err != nil {
		return "", true, err
	}
	return out, true, nil
}

// RenderQuestions draws every renderable question in order, skipping those
// without a strategy.
func (r *Renderer) RenderQuestions(ctx context.Context, questions []content.Question, data govuk.Data, errs govuk.Errors) (string, error) {
	parts := make([]string, 0, len(questions))
	for _, q := range questions {
		out, ok, err := r.RenderQuestion(ctx, q, data, errs)
		if err != nil {
			return "", fmt.Errorf("render: question %q: %w", q.ID, err)
		}
		if ok {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, "\n"), nil
}

func (r *Renderer) resolveTemplate(fallback, partial string) string {
	if r.theme != nil && partial != "" {
		if candidate := strings.TrimSpace(r.theme.Partials[partial]); candidate != "" {
			return candidate
		}
	}
	return fallback
}

func (r *Renderer) paramsView(params govuk.Params) map[string]any {
	view := params.Map()

	if params.Hint != nil {
		markup := params.Hint.HTML
		if r.sanitizer != nil {
			markup = r.sanitizer.Sanitize(markup)
		}
		view["hint"] = map[string]any{"html": markup}
	}

	view["hasValue"] = params.HasValue
	if params.HasValue {
		view["value"] = DisplayValue(params.Value)
	}

	var describedBy []string
	if params.Hint != nil {
		describedBy = append(describedBy, params.ID+"-hint")
	}
	if params.ErrorMessage != nil {
		describedBy = append(describedBy, params.ID+"-error")
	}
	if len(describedBy) > 0 {
		view["describedBy"] = strings.Join(describedBy, " ")
	}
	return view
}

func (r *Renderer) themeView() map[string]any {
	if r.theme == nil {
		return map[string]any{}
	}
	view := map[string]any{
		"name":         r.theme.Theme,
		"variant":      r.theme.Variant,
		"tokens":       copyStringMap(r.theme.Tokens),
		"cssVarsStyle": cssVarsStyle(r.theme.CSSVars),
	}
	if r.theme.AssetURL != nil {
		if href := r.theme.AssetURL(stylesheetAsset); href != "" {
			view["stylesheets"] = []any{href}
		}
	}
	return view
}

// DisplayValue formats a submitted value for an input's value attribute.
// Floats use the shortest representation that round-trips.
func DisplayValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32)
	case fmt.Stringer:
		return typed.String()
	default:
		return fmt.Sprint(typed)
	}
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+vars[key]+";")
	}
	return strings.Join(parts, " ")
}

func copyStringMap(in map[string]string) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
