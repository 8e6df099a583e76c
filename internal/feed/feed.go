package feed

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/arcanaland/blogcard/internal/card"
)

// Parse reads an RSS, Atom or JSON feed. gofeed detects the format.
func Parse(r io.Reader) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	feed, err := fp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return feed, nil
}

// ParseFile reads a feed from a local file
func ParseFile(path string) (*gofeed.Feed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open feed: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// ItemToState converts a feed item to card state. Fields the item does not
// provide keep the card defaults.
func ItemToState(item *gofeed.Item, dateLayout string) card.State {
	s := card.DefaultState()

	if title := strings.TrimSpace(item.Title); title != "" {
		s.Title = title
	}

	// Parsed dates are formatted with the configured layout; an unparseable
	// date string is shown as given.
	if item.PublishedParsed != nil {
		s.Date = item.PublishedParsed.Format(dateLayout)
	} else if item.UpdatedParsed != nil {
		s.Date = item.UpdatedParsed.Format(dateLayout)
	} else if item.Published != "" {
		s.Date = item.Published
	}

	if image := itemImage(item); image != "" {
		s.ImageURL = image
	}

	if item.Link != "" {
		s.LinkURL = item.Link
	}

	return s
}

// itemImage returns the item image, falling back to the first image
// enclosure.
func itemImage(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}
	return ""
}

// ToStates converts up to limit feed items to card states. A limit of zero or
// less converts every item.
func ToStates(feed *gofeed.Feed, dateLayout string, limit int) []card.State {
	items := feed.Items
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	states := make([]card.State, 0, len(items))
	for _, item := range items {
		states = append(states, ItemToState(item, dateLayout))
	}
	return states
}
