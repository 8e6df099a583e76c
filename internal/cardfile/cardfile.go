package cardfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/arcanaland/blogcard/internal/card"
	"github.com/arcanaland/blogcard/internal/dom"
	"github.com/arcanaland/blogcard/internal/widget"
)

// File is a set of card definitions loaded from YAML or TOML
type File struct {
	Path  string
	Cards []Entry
}

// Entry is one card definition keyed by attribute name
type Entry struct {
	Attributes map[string]string
}

type rawFile struct {
	Cards []map[string]string `yaml:"cards" toml:"cards"`
}

// LoadFile reads a definitions file. The format is chosen by extension:
// .yaml/.yml or .toml.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read card file: %w", err)
	}

	var raw rawFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to parse %s: unknown key %s", path, undecoded[0])
		}
	default:
		return nil, fmt.Errorf("unsupported card file extension %q (expected .yaml, .yml or .toml)", ext)
	}

	file := &File{Path: path}
	for _, attrs := range raw.Cards {
		if attrs == nil {
			attrs = map[string]string{}
		}
		file.Cards = append(file.Cards, Entry{Attributes: attrs})
	}
	return file, nil
}

// State returns the card state the entry produces. Missing attributes keep
// their defaults.
func (e Entry) State() card.State {
	s := card.DefaultState()
	for name, value := range e.Attributes {
		s.Set(name, value)
	}
	return s
}

// Unknown returns the entry's keys a card does not observe, sorted
func (e Entry) Unknown() []string {
	observed := make(map[string]bool)
	for _, name := range card.ObservedAttributes() {
		observed[name] = true
	}

	var unknown []string
	for name := range e.Attributes {
		if !observed[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// Element creates a connected blog-card element for the entry. Observed
// attributes are applied in declaration order, then any others sorted by
// name.
func (e Entry) Element(reg *widget.Registry) (*dom.Element, error) {
	el, err := dom.CreateElement(reg, card.TagName)
	if err != nil {
		return nil, err
	}
	for _, name := range card.ObservedAttributes() {
		if value, ok := e.Attributes[name]; ok {
			el.SetAttribute(name, value)
		}
	}
	for _, name := range e.Unknown() {
		el.SetAttribute(name, e.Attributes[name])
	}
	el.Connect()
	return el, nil
}

// Elements creates an element for every entry in file order
func (f *File) Elements(reg *widget.Registry) ([]*dom.Element, error) {
	elements := make([]*dom.Element, 0, len(f.Cards))
	for i, entry := range f.Cards {
		el, err := entry.Element(reg)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		elements = append(elements, el)
	}
	return elements, nil
}

// FromStates builds a file from card states
func FromStates(states []card.State) *File {
	file := &File{}
	for _, s := range states {
		attrs := make(map[string]string)
		for _, pair := range s.Attributes() {
			attrs[pair[0]] = pair[1]
		}
		file.Cards = append(file.Cards, Entry{Attributes: attrs})
	}
	return file
}

// WriteYAML encodes the file's cards as YAML
func (f *File) WriteYAML() ([]byte, error) {
	raw := rawFile{}
	for _, entry := range f.Cards {
		raw.Cards = append(raw.Cards, entry.Attributes)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(raw); err != nil {
		return nil, fmt.Errorf("failed to encode cards: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode cards: %w", err)
	}
	return buf.Bytes(), nil
}
