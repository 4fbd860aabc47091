// Package formcontent turns content questions into GOV.UK Frontend component
// descriptors and renders them as HTML.
//
// The descriptor builder and the scalar coercion helpers live in pkg/govuk and
// pkg/convert; this package re-exports the common entry points so callers can
// go from a manifest to HTML with a single import.
package formcontent

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-formcontent/pkg/content"
	"github.com/goliatone/go-formcontent/pkg/convert"
	"github.com/goliatone/go-formcontent/pkg/govuk"
	"github.com/goliatone/go-formcontent/pkg/render"
)

// Question aliases content.Question.
type Question = content.Question

// Manifest aliases content.Manifest.
type Manifest = content.Manifest

// Descriptor aliases govuk.Descriptor.
type Descriptor = govuk.Descriptor

// Data holds previously submitted answers keyed by question id.
type Data = govuk.Data

// Errors holds validation error tokens keyed by question id.
type Errors = govuk.Errors

// Page aliases render.Page for callers rendering full question pages.
type Page = render.Page

// FromQuestion builds the GOV.UK component descriptor for q. The boolean is
// false when the question type has no rendering strategy.
func FromQuestion(q Question, data Data, errs Errors) (Descriptor, bool) {
	return govuk.FromQuestion(q, data, errs)
}

// RenderQuestion builds and renders q with a renderer configured by options.
// It returns an empty string and no error for question types without a
// rendering strategy.
func RenderQuestion(ctx context.Context, q Question, data Data, errs Errors, options ...render.Option) (string, error) {
	renderer, err := render.New(options...)
	if err != nil {
		return "", err
	}
	out, _, err := renderer.RenderQuestion(ctx, q, data, errs)
	return out, err
}

// RenderPage renders a full question page with a renderer configured by
// options.
func RenderPage(ctx context.Context, page Page, options ...render.Option) ([]byte, error) {
	renderer, err := render.New(options...)
	if err != nil {
		return nil, err
	}
	return renderer.RenderPage(ctx, page)
}

// LoadManifest reads questions from a YAML/JSON file or a directory of them.
func LoadManifest(path string) (*Manifest, error) {
	return content.LoadFile(path)
}

// LoadManifestFS reads every question file found in fsys.
func LoadManifestFS(fsys fs.FS) (*Manifest, error) {
	return content.LoadFS(fsys)
}

// Boolean re-exports convert.Boolean.
func Boolean(value any) any {
	return convert.Boolean(value)
}

// Number re-exports convert.Number.
func Number(value any, options ...convert.NumberOption) any {
	return convert.Number(value, options...)
}

// EmbeddedTemplates exposes the built-in GOV.UK templates so callers can reuse
// or extend them.
func EmbeddedTemplates() fs.FS {
	return render.TemplatesFS()
}
