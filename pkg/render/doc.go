// Package render draws govuk descriptors as HTML. A Registry maps component
// kinds to templates, and a Renderer executes those templates through a
// template.TemplateRenderer (pongo2 by default) using the embedded GOV.UK
// component templates. Theme partials from go-theme can replace the template
// used for any kind.
package render
