package card

import (
	"html/template"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// NeutralizedURL replaces URL values that are not rendered
const NeutralizedURL = "#ZgotmplZ"

// urlSchemes are rendered unchanged in either URL attribute
var urlSchemes = map[string]bool{
	"":       true,
	"http":   true,
	"https":  true,
	"mailto": true,
	"file":   true,
}

// URLAllowed reports whether value is rendered unchanged for the URL
// attribute attr. data: URLs are allowed only as image/* thumbnails.
func URLAllowed(attr, value string) bool {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil {
		return false
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme == "data" {
		return attr == AttrImageURL && strings.HasPrefix(strings.ToLower(u.Opaque), "image/")
	}
	return urlSchemes[scheme]
}

// urlAttr renders name="value", with value HTML-escaped but otherwise as
// given, or the neutralized URL when value is not allowed.
func urlAttr(name, attr, value string) template.HTMLAttr {
	if !URLAllowed(attr, value) {
		value = NeutralizedURL
	}
	return template.HTMLAttr(name + `="` + html.EscapeString(value) + `"`)
}

func imageSrc(value string) template.HTMLAttr {
	return urlAttr("src", AttrImageURL, value)
}

func linkHref(value string) template.HTMLAttr {
	return urlAttr("href", AttrLinkURL, value)
}

func cssDecl(v StyleVariable) template.CSS {
	return template.CSS(v.Name + ": " + v.Default + ";")
}
