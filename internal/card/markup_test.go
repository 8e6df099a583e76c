package card

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMarkup_StylesheetFollowsArticle verifies fragment order
func TestMarkup_StylesheetFollowsArticle(t *testing.T) {
	out := Markup(DefaultState())

	article := strings.Index(out, "<article>")
	style := strings.Index(out, "<style>")
	require.GreaterOrEqual(t, article, 0)
	require.GreaterOrEqual(t, style, 0)
	assert.Less(t, article, style)
	assert.True(t, strings.HasSuffix(out, Stylesheet()))
}

// TestMarkup_EscapesText verifies markup in values is rendered as text
func TestMarkup_EscapesText(t *testing.T) {
	s := DefaultState()
	s.Title = `<b>bold</b> & "quoted"`

	out := Markup(s)
	assert.NotContains(t, out, "<b>")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, `<b>bold</b> & "quoted"`, doc.Find("h3 a").Text())
	hover, _ := doc.Find("h3 a").Attr("title")
	assert.Equal(t, `go to <b>bold</b> & "quoted"`, hover)
}

// TestMarkup_UnsafeURL verifies script URLs never reach the href
func TestMarkup_UnsafeURL(t *testing.T) {
	s := DefaultState()
	s.LinkURL = "javascript:alert(1)"

	out := Markup(s)
	assert.NotContains(t, out, "javascript:")
	assert.Equal(t, NeutralizedURL, renderedURL(t, out, "h3 a", "href"))
}

func renderedURL(t *testing.T, out, selector, attr string) string {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	value, ok := doc.Find(selector).Attr(attr)
	require.True(t, ok, "%s has no %s", selector, attr)
	return value
}

// TestMarkup_KeptURLs verifies usable URLs reach the markup unchanged
func TestMarkup_KeptURLs(t *testing.T) {
	tests := []struct {
		name     string
		imageURL string
		linkURL  string
	}{
		{"data thumbnail", "data:image/png;base64,iVBORw0KGgo=", "https://example.com/post"},
		{"file urls", "file:///home/me/thumb.png", "file:///home/me/post.html"},
		{"relative", "thumbs/a.png", "/posts/a.html"},
		{"unencoded", "https://x.com/é.png", "https://x.com/é?q=a b&c=d"},
		{"mailto", "#", "mailto:me@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultState()
			s.ImageURL = tt.imageURL
			s.LinkURL = tt.linkURL

			out := Markup(s)
			assert.Equal(t, tt.imageURL, renderedURL(t, out, "img", "src"))
			assert.Equal(t, tt.linkURL, renderedURL(t, out, "h3 a", "href"))
		})
	}
}

// TestMarkup_NeutralizedURLs verifies script-capable URLs are replaced
func TestMarkup_NeutralizedURLs(t *testing.T) {
	tests := []struct {
		name     string
		imageURL string
		linkURL  string
	}{
		{"javascript", "javascript:alert(1)", " JavaScript:alert(1)"},
		{"vbscript", "vbscript:msgbox", "vbscript:msgbox"},
		{"data link", "data:text/html,<script>x</script>", "data:image/png;base64,iVBORw0KGgo="},
		{"attribute breakout", `javascript:" onerror="x`, `javascript:" onclick="x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultState()
			s.ImageURL = tt.imageURL
			s.LinkURL = tt.linkURL

			out := Markup(s)
			assert.Equal(t, NeutralizedURL, renderedURL(t, out, "img", "src"))
			assert.Equal(t, NeutralizedURL, renderedURL(t, out, "h3 a", "href"))
			assert.NotContains(t, out, "onerror")
		})
	}
}

// TestMarkup_EscapesURLQuotes verifies an allowed URL cannot leave its
// attribute
func TestMarkup_EscapesURLQuotes(t *testing.T) {
	s := DefaultState()
	s.LinkURL = `https://example.com/?q="><b>x</b>`

	out := Markup(s)
	assert.NotContains(t, out, "<b>")
	assert.Equal(t, s.LinkURL, renderedURL(t, out, "h3 a", "href"))
}

// TestURLAllowed verifies the scheme policy per attribute
func TestURLAllowed(t *testing.T) {
	tests := []struct {
		attr  string
		value string
		want  bool
	}{
		{AttrImageURL, "data:image/png;base64,AAAA", true},
		{AttrImageURL, "DATA:IMAGE/SVG+XML,<svg/>", true},
		{AttrLinkURL, "data:image/png;base64,AAAA", false},
		{AttrImageURL, "data:text/html,hi", false},
		{AttrLinkURL, "file:///tmp/a.html", true},
		{AttrLinkURL, "HTTPS://example.com", true},
		{AttrLinkURL, "#", true},
		{AttrLinkURL, "", true},
		{AttrLinkURL, "javascript:void(0)", false},
		{AttrLinkURL, "ftp://example.com/a", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, URLAllowed(tt.attr, tt.value), "%s=%q", tt.attr, tt.value)
	}
}

// TestStylesheet_Variables verifies every style hook is declared on :host
// with its default
func TestStylesheet_Variables(t *testing.T) {
	css := Stylesheet()

	assert.Contains(t, css, ":host {")
	for _, v := range StyleVariables() {
		assert.Contains(t, css, v.Name+": "+v.Default+";", "missing default for %s", v.Name)
		assert.Contains(t, css, "var("+v.Name+")", "%s should be used", v.Name)
	}
}

// TestStylesheet_ScopedSelectors verifies no rule targets the host document
func TestStylesheet_ScopedSelectors(t *testing.T) {
	css := Stylesheet()

	for _, sel := range []string{":root", "html", "body", "::slotted"} {
		assert.NotContains(t, css, sel)
	}
}

// TestStylesheet_Layout verifies the breakpoint and interaction rules
func TestStylesheet_Layout(t *testing.T) {
	css := Stylesheet()

	assert.Contains(t, css, "@media screen and (min-width: 425px)")
	assert.Contains(t, css, "pointer-events: none;")
	assert.Contains(t, css, "transition: transform 0.3s ease;")
	assert.Contains(t, css, "h3:hover + span, h3:focus + span")
	assert.Equal(t, 425, BreakpointPx)
}

// TestStylesheet_FromVariables verifies the :host block lists the style
// variables in order followed by the display rule
func TestStylesheet_FromVariables(t *testing.T) {
	css := Stylesheet()

	var want strings.Builder
	want.WriteString("  :host {\n")
	for _, v := range StyleVariables() {
		want.WriteString("    " + v.Name + ": " + v.Default + ";\n")
	}
	want.WriteString("    display: block;\n  }")
	assert.Contains(t, css, want.String())
	assert.Contains(t, css, fmt.Sprintf("(min-width: %dpx)", BreakpointPx))
}
