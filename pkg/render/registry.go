package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formcontent/pkg/govuk"
)

// ErrUnknownKind is returned when no template is registered for a descriptor
// kind.
var ErrUnknownKind = errors.New("render: unknown component kind")

// Component describes how one descriptor kind is drawn. Partial is the go-theme
// partial key that may override Template.
type Component struct {
	Template string
	Partial  string
}

// Registry maps component kinds to templates.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Component
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		components: make(map[string]Component),
	}
}

// NewDefaultRegistry returns a registry with the built-in GOV.UK components.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	registry.MustRegister(govuk.KindInput, Component{
		Template: "govuk/input",
		Partial:  "govuk.input",
	})
	return registry
}

// Register adds or replaces the component for kind.
func (r *Registry) Register(kind string, component Component) error {
	kind = normalizeKind(kind)
	if kind == "" {
		return fmt.Errorf("render: component kind is required")
	}
	if strings.TrimSpace(component.Template) == "" {
		return fmt.Errorf("render: template for %q is required", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.components[kind] = component
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(kind string, component Component) {
	if err := r.Register(kind, component); err != nil {
		panic(err)
	}
}

// Get retrieves the component registered for kind.
func (r *Registry) Get(kind string) (Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	component, ok := r.components[normalizeKind(kind)]
	if !ok {
		return Component{}, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
	return component, nil
}

// Has reports whether a component is registered for kind.
func (r *Registry) Has(kind string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.components[normalizeKind(kind)]
	return ok
}

// List returns the registered kinds, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.components))
	for kind := range r.components {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for kind, component := range r.components {
		cloned.components[kind] = component
	}
	return cloned
}

func normalizeKind(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}
