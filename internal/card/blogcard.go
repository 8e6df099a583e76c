package card

import (
	"github.com/arcanaland/blogcard/internal/widget"
)

// TagName is the element name a blog card registers under
const TagName = "blog-card"

// BlogCard is the blog-card widget. It is unattached after construction and
// rendered from the first attachment on; every accepted attribute change
// re-renders the whole scope.
type BlogCard struct {
	root     *widget.Scope
	state    State
	attached bool
}

// New creates an unattached card with default state and an open scope
func New() *BlogCard {
	return &BlogCard{
		root:  widget.NewScope(widget.ScopeOpen),
		state: DefaultState(),
	}
}

// Register defines the blog-card tag on reg
func Register(reg *widget.Registry) error {
	return reg.Register(TagName, func() widget.Widget { return New() })
}

// ObservedAttributes implements widget.Widget
func (c *BlogCard) ObservedAttributes() []string {
	return ObservedAttributes()
}

// OnAttach renders the current state. This is the first paint.
func (c *BlogCard) OnAttach() {
	c.attached = true
	c.Render()
}

// OnInputChanged applies an attribute change and re-renders. Equal values and
// untracked names are ignored. An absent new value restores the default.
func (c *BlogCard) OnInputChanged(name string, oldValue, newValue *string) {
	if sameValue(oldValue, newValue) {
		return
	}

	var ok bool
	if newValue == nil {
		ok = c.state.Reset(name)
	} else {
		ok = c.state.Set(name, *newValue)
	}
	if !ok {
		return
	}

	c.Render()
}

// Render clears the scope and installs a freshly built fragment as its only
// content.
func (c *BlogCard) Render() {
	c.root.Clear()
	c.root.Append(Markup(c.state))
}

// Root implements widget.Widget
func (c *BlogCard) Root() *widget.Scope {
	return c.root
}

// State returns a copy of the current state
func (c *BlogCard) State() State {
	return c.state
}

func sameValue(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
