// Package govuk turns content questions into render descriptors for GOV.UK
// Design System style components.
//
// FromQuestion answers "which component should draw this question, and with
// what parameters?" without knowing anything about templates. The returned
// Descriptor names a component kind (for example "input") and carries the
// common parameters shared by almost every component: id, name, label, hint,
// value, and errorMessage. Handing the descriptor to a renderer is left to the
// caller; see pkg/render for a pongo2-backed implementation.
//
// Only text questions have a rendering strategy. Every other question type
// yields no descriptor, and callers decide what, if anything, to show.
package govuk
