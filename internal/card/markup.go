package card

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var templates = template.Must(template.New("blogcard").Funcs(template.FuncMap{
	"imageSrc": imageSrc,
	"linkHref": linkHref,
	"cssDecl":  cssDecl,
}).ParseFS(templateFS, "templates/*.gohtml"))

// styleData feeds the stylesheet template
type styleData struct {
	Vars       []StyleVariable
	Breakpoint int
}

var stylesheet = mustExecute("styles", styleData{
	Vars:       StyleVariables(),
	Breakpoint: BreakpointPx,
})

// Markup builds the card fragment (markup followed by its stylesheet) for s.
// Text is HTML-escaped. URL attributes are written as given unless
// URLAllowed rejects them.
func Markup(s State) string {
	return mustExecute("card", s) + Stylesheet()
}

// Stylesheet returns the scoped stylesheet included in every render
func Stylesheet() string {
	return stylesheet
}

func mustExecute(name string, data any) string {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, name, data); err != nil {
		panic("card: executing template " + name + ": " + err.Error())
	}
	return b.String()
}
