package widget

import "strings"

// ScopeMode is the visibility of a rendering scope to the host
type ScopeMode string

const (
	// ScopeOpen scopes can be inspected by the host
	ScopeOpen ScopeMode = "open"
)

// Scope is an isolated content region owned by a single widget. Its content
// is serialized as a declarative shadow root, so styles inside it do not
// leak into the host document and host styles only reach it through
// inherited custom properties.
type Scope struct {
	mode      ScopeMode
	fragments []string
}

// NewScope opens an empty scope
func NewScope(mode ScopeMode) *Scope {
	return &Scope{mode: mode}
}

// Mode returns the scope's mode
func (s *Scope) Mode() ScopeMode {
	return s.mode
}

// Clear removes all content
func (s *Scope) Clear() {
	s.fragments = nil
}

// Append adds a markup fragment after the existing content
func (s *Scope) Append(fragment string) {
	s.fragments = append(s.fragments, fragment)
}

// Empty reports whether the scope has no content
func (s *Scope) Empty() bool {
	return len(s.fragments) == 0
}

// HTML returns the scope's current content
func (s *Scope) HTML() string {
	return strings.Join(s.fragments, "")
}

// Template wraps the content in a declarative shadow root template
func (s *Scope) Template() string {
	var b strings.Builder
	b.WriteString(`<template shadowrootmode="`)
	b.WriteString(string(s.mode))
	b.WriteString(`">`)
	b.WriteString(s.HTML())
	b.WriteString(`</template>`)
	return b.String()
}
