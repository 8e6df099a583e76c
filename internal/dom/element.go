package dom

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/arcanaland/blogcard/internal/widget"
)

// Element is a live host element backed by a registered widget. It forwards
// changes to observed attributes to the widget synchronously, the way a
// browser runtime would.
type Element struct {
	ID  uuid.UUID
	Tag string

	widget    widget.Widget
	attrs     []html.Attribute
	observed  map[string]bool
	connected bool
}

// CreateElement constructs an unattached element for tag
func CreateElement(reg *widget.Registry, tag string) (*Element, error) {
	tag = strings.ToLower(tag)
	w, err := reg.New(tag)
	if err != nil {
		return nil, fmt.Errorf("failed to create element: %w", err)
	}

	observed := make(map[string]bool)
	for _, name := range w.ObservedAttributes() {
		observed[name] = true
	}

	return &Element{
		ID:       uuid.New(),
		Tag:      tag,
		widget:   w,
		observed: observed,
	}, nil
}

// Widget returns the widget driving the element
func (e *Element) Widget() widget.Widget {
	return e.widget
}

// ShadowRoot returns the element's open rendering scope
func (e *Element) ShadowRoot() *widget.Scope {
	root := e.widget.Root()
	if root == nil || root.Mode() != widget.ScopeOpen {
		return nil
	}
	return root
}

// Connected reports whether the element is part of the live document
func (e *Element) Connected() bool {
	return e.connected
}

// Connect inserts the element into the live document, triggering the
// widget's attach hook. Connecting an already connected element does
// nothing.
func (e *Element) Connect() {
	if e.connected {
		return
	}
	e.connected = true
	e.widget.OnAttach()
}

// GetAttribute returns the attribute value and whether it is present
func (e *Element) GetAttribute(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range e.attrs {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Attributes returns a copy of the element's attributes in insertion order
func (e *Element) Attributes() []html.Attribute {
	attrs := make([]html.Attribute, len(e.attrs))
	copy(attrs, e.attrs)
	return attrs
}

// SetAttribute sets an attribute and notifies the widget if it is observed
func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)

	var oldValue *string
	replaced := false
	for i := range e.attrs {
		if e.attrs[i].Key == name {
			old := e.attrs[i].Val
			oldValue = &old
			e.attrs[i].Val = value
			replaced = true
			break
		}
	}
	if !replaced {
		e.attrs = append(e.attrs, html.Attribute{Key: name, Val: value})
	}

	e.notify(name, oldValue, &value)
}

// RemoveAttribute removes an attribute and notifies the widget if it was
// present and observed.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	for i, a := range e.attrs {
		if a.Key != name {
			continue
		}
		old := a.Val
		e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
		e.notify(name, &old, nil)
		return
	}
}

func (e *Element) notify(name string, oldValue, newValue *string) {
	if !e.observed[name] {
		return
	}
	e.widget.OnInputChanged(name, oldValue, newValue)
}

// OuterHTML serializes the element with its attributes and, once rendered,
// its shadow root as a declarative template.
func (e *Element) OuterHTML() string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(e.Tag)
	for _, a := range e.attrs {
		b.WriteString(" ")
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Val))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	if root := e.ShadowRoot(); root != nil && !root.Empty() {
		b.WriteString(root.Template())
	}
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteString(">")
	return b.String()
}
