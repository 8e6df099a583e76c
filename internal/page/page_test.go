package page

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/blogcard/internal/card"
	"github.com/arcanaland/blogcard/internal/dom"
	"github.com/arcanaland/blogcard/internal/widget"
)

// Test helper: two connected cards
func newElements(t *testing.T) []*dom.Element {
	reg := widget.NewRegistry()
	require.NoError(t, card.Register(reg))

	var elements []*dom.Element
	for _, title := range []string{"One", "Two"} {
		el, err := dom.CreateElement(reg, card.TagName)
		require.NoError(t, err)
		el.SetAttribute(card.AttrTitle, title)
		el.Connect()
		elements = append(elements, el)
	}
	return elements
}

// TestWrite verifies the page lists cards in order with the host theme
func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, newElements(t), Options{
		Title:   "Blog",
		HostCSS: "blog-card {\n  --hover-color: orange;\n}\n",
	})
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	require.NoError(t, err)

	assert.Equal(t, "Blog", doc.Find("title").Text())
	assert.Contains(t, doc.Find("head style").Text(), "--hover-color: orange;")

	cards := doc.Find("body > blog-card")
	require.Equal(t, 2, cards.Length())
	assert.Equal(t, "One", cards.Eq(0).Find("template h3 a").Text())
	assert.Equal(t, "Two", cards.Eq(1).Find("template h3 a").Text())
}

// TestWrite_Defaults verifies the default title and no host stylesheet
func TestWrite_Defaults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, Options{}))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, "Articles", doc.Find("title").Text())
	assert.Equal(t, 0, doc.Find("head style").Length())
	assert.True(t, strings.HasPrefix(buf.String(), "<!DOCTYPE html>"))
}

// TestWriteFragment verifies one serialized element per line
func TestWriteFragment(t *testing.T) {
	elements := newElements(t)

	var buf bytes.Buffer
	require.NoError(t, WriteFragment(&buf, elements))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	// the rendered fragment spans several lines, so count hosts instead
	assert.Equal(t, 2, strings.Count(buf.String(), "<blog-card "))
	assert.True(t, strings.HasPrefix(lines[0], `<blog-card article-title="One">`))
}
