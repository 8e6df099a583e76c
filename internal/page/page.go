package page

import (
	"fmt"
	"html/template"
	"io"

	"github.com/arcanaland/blogcard/internal/dom"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{- if .HostCSS}}
<style>
{{.HostCSS}}</style>
{{- end}}
</head>
<body>
{{- range .Cards}}
{{.}}
{{- end}}
</body>
</html>
`))

// Options controls the page wrapped around rendered elements
type Options struct {
	Title   string
	HostCSS string
}

// Write renders a standalone page listing every element in order
func Write(w io.Writer, elements []*dom.Element, opts Options) error {
	cards := make([]template.HTML, 0, len(elements))
	for _, el := range elements {
		// OuterHTML escapes attribute values and the shadow root content
		// comes from the widget's own template.
		cards = append(cards, template.HTML(el.OuterHTML()))
	}

	title := opts.Title
	if title == "" {
		title = "Articles"
	}

	data := struct {
		Title   string
		HostCSS template.CSS
		Cards   []template.HTML
	}{
		Title:   title,
		HostCSS: template.CSS(opts.HostCSS),
		Cards:   cards,
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	return nil
}

// WriteFragment writes the elements one per line without a page around them
func WriteFragment(w io.Writer, elements []*dom.Element) error {
	for _, el := range elements {
		if _, err := io.WriteString(w, el.OuterHTML()+"\n"); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}
	return nil
}
