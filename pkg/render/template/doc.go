// Package template defines the template engine contract used by pkg/render.
// The go-template *Engine satisfies it and is the default implementation.
package template
