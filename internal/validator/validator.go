package validator

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/arcanaland/blogcard/internal/card"
	"github.com/arcanaland/blogcard/internal/cardfile"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	Path    string
	Results ValidationResults
}

func NewValidator(path string) *Validator {
	return &Validator{
		Path:    path,
		Results: ValidationResults{},
	}
}

// Validate checks a card definitions file. Cards render whatever they are
// given, so most findings are warnings for the page author; only input a
// card cannot represent at all is an error.
func (v *Validator) Validate() (ValidationResults, error) {
	file, err := cardfile.LoadFile(v.Path)
	if err != nil {
		return v.Results, err
	}

	if len(file.Cards) == 0 {
		v.Results.Errors = append(v.Results.Errors, "no cards defined")
		return v.Results, nil
	}

	v.validateEntries(file.Cards)
	v.validateDuplicateLinks(file.Cards)

	return v.Results, nil
}

// validateEntries checks each card on its own
func (v *Validator) validateEntries(entries []cardfile.Entry) {
	for i, entry := range entries {
		prefix := fmt.Sprintf("card %d", i+1)

		for _, key := range entry.Unknown() {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("%s: unknown attribute %q (expected one of %s)",
					prefix, key, strings.Join(card.ObservedAttributes(), ", ")))
		}

		for _, name := range card.ObservedAttributes() {
			value, ok := entry.Attributes[name]
			if !ok {
				v.Results.Warnings = append(v.Results.Warnings,
					fmt.Sprintf("%s: %s not set, the default will be shown", prefix, name))
				continue
			}
			if strings.TrimSpace(value) == "" {
				v.Results.Warnings = append(v.Results.Warnings,
					fmt.Sprintf("%s: %s is empty", prefix, name))
			}
		}

		for _, name := range []string{card.AttrImageURL, card.AttrLinkURL} {
			if value, ok := entry.Attributes[name]; ok {
				v.validateURL(prefix, name, value)
			}
		}
	}
}

// validateURL flags values the renderer will neutralise or browsers will
// not resolve.
func (v *Validator) validateURL(prefix, name, value string) {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: %s is not a valid URL: %v", prefix, name, err))
		return
	}

	if !card.URLAllowed(name, value) {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: %s uses scheme %q and will be replaced when rendered", prefix, name, u.Scheme))
	}
}

// validateDuplicateLinks warns about cards pointing at the same article
func (v *Validator) validateDuplicateLinks(entries []cardfile.Entry) {
	seen := make(map[string]int)
	for i, entry := range entries {
		link, ok := entry.Attributes[card.AttrLinkURL]
		if !ok || link == card.DefaultLinkURL {
			continue
		}
		if first, dup := seen[link]; dup {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("card %d: %s %s already used by card %d", i+1, card.AttrLinkURL, link, first))
			continue
		}
		seen[link] = i + 1
	}
}
