package dom

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"

	"github.com/arcanaland/blogcard/internal/widget"
)

// shadowRootSelector matches a previously expanded declarative shadow root
const shadowRootSelector = "template[shadowrootmode]"

// Expand reads an HTML document, instantiates every registered widget tag it
// contains and writes the document back with each element's rendered shadow
// root prepended to its children. Attributes are applied in document order
// before the element is attached. It returns the number of elements
// expanded.
func Expand(r io.Reader, w io.Writer, reg *widget.Registry) (int, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return 0, fmt.Errorf("failed to parse document: %w", err)
	}

	count, err := ExpandDocument(doc, reg)
	if err != nil {
		return 0, err
	}

	out, err := doc.Html()
	if err != nil {
		return 0, fmt.Errorf("failed to render document: %w", err)
	}
	if _, err := io.WriteString(w, out); err != nil {
		return 0, fmt.Errorf("failed to write document: %w", err)
	}

	return count, nil
}

// ExpandDocument expands registered widget tags in place
func ExpandDocument(doc *goquery.Document, reg *widget.Registry) (int, error) {
	count := 0
	var expandErr error

	for _, tag := range reg.Names() {
		doc.Find(tag).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			el, err := ElementFromSelection(s, reg)
			if err != nil {
				expandErr = err
				return false
			}

			s.ChildrenFiltered(shadowRootSelector).Remove()
			if root := el.ShadowRoot(); root != nil {
				s.PrependHtml(root.Template())
			}
			count++
			return true
		})
		if expandErr != nil {
			return count, expandErr
		}
	}

	return count, nil
}

// ElementFromSelection builds a connected element from the first node in s,
// replaying its attributes in document order.
func ElementFromSelection(s *goquery.Selection, reg *widget.Registry) (*Element, error) {
	if s.Length() == 0 {
		return nil, fmt.Errorf("empty selection")
	}
	node := s.Get(0)

	el, err := CreateElement(reg, node.Data)
	if err != nil {
		return nil, err
	}
	for _, a := range node.Attr {
		el.SetAttribute(a.Key, a.Val)
	}
	el.Connect()

	return el, nil
}
