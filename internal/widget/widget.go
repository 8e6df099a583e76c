package widget

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrAlreadyRegistered = errors.New("widget already registered")
	ErrInvalidName       = errors.New("invalid widget name")
	ErrUnknownWidget     = errors.New("unknown widget")
)

// Widget is the lifecycle contract every renderable element implements.
// All methods run synchronously and to completion.
type Widget interface {
	// ObservedAttributes lists the attribute names the host must report
	// changes for.
	ObservedAttributes() []string

	// OnAttach is called when the element joins the live document.
	OnAttach()

	// OnInputChanged is called for every change to an observed attribute. A
	// nil value means the attribute is absent.
	OnInputChanged(name string, oldValue, newValue *string)

	// Render replaces the content of the widget's scope.
	Render()

	// Root returns the widget's private rendering scope.
	Root() *Scope
}

// Factory constructs a new widget instance
type Factory func() Widget

// Registry maps tag names to widget factories. Registration happens once at
// start-up; the registry is not safe for concurrent registration.
type Registry struct {
	factories map[string]Factory
	order     []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// validName matches custom element names: a lowercase letter first and at
// least one hyphen.
var validName = regexp.MustCompile(`^[a-z][a-z0-9._]*-[a-z0-9._-]*$`)

// Register binds name to factory. Registering the same name twice is a
// configuration error.
func (r *Registry) Register(name string, factory Factory) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if factory == nil {
		return fmt.Errorf("%w: %q has no factory", ErrInvalidName, name)
	}
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, name)
	}

	r.factories[name] = factory
	r.order = append(r.order, name)
	return nil
}

// Defined reports whether name has been registered
func (r *Registry) Defined(name string) bool {
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// New constructs a fresh instance of the widget registered under name
func (r *Registry) New(name string) (Widget, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWidget, name)
	}
	return factory(), nil
}
