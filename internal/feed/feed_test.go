package feed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/blogcard/internal/card"
)

const layout = "January 2, 2006"

const rssFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example Blog</title>
    <link>https://example.com</link>
    <item>
      <title>First post</title>
      <link>https://example.com/first</link>
      <pubDate>Mon, 15 Jan 2024 10:30:00 +0000</pubDate>
      <enclosure url="https://example.com/first.jpg" length="100" type="image/jpeg"/>
    </item>
    <item>
      <title>Second post</title>
      <link>https://example.com/second</link>
    </item>
  </channel>
</rss>`

// TestItemToState_Basic verifies field mapping
func TestItemToState_Basic(t *testing.T) {
	published := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	item := &gofeed.Item{
		Title:           "  Test Article ",
		Link:            "http://example.com/article",
		PublishedParsed: &published,
		Image:           &gofeed.Image{URL: "http://example.com/a.png"},
	}

	assert.Equal(t, card.State{
		Title:    "Test Article",
		Date:     "January 15, 2024",
		ImageURL: "http://example.com/a.png",
		LinkURL:  "http://example.com/article",
	}, ItemToState(item, layout))
}

// TestItemToState_Empty verifies defaults for missing fields
func TestItemToState_Empty(t *testing.T) {
	assert.Equal(t, card.DefaultState(), ItemToState(&gofeed.Item{}, layout))
}

// TestItemToState_DateFallbacks verifies updated and raw dates are used
func TestItemToState_DateFallbacks(t *testing.T) {
	updated := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)

	s := ItemToState(&gofeed.Item{UpdatedParsed: &updated}, "2006-01-02")
	assert.Equal(t, "2023-12-01", s.Date)

	s = ItemToState(&gofeed.Item{Published: "sometime in spring"}, layout)
	assert.Equal(t, "sometime in spring", s.Date)
}

// TestItemToState_Enclosure verifies image enclosures are used
func TestItemToState_Enclosure(t *testing.T) {
	item := &gofeed.Item{
		Enclosures: []*gofeed.Enclosure{
			{URL: "http://example.com/a.mp3", Type: "audio/mpeg"},
			{URL: "http://example.com/a.webp", Type: "image/webp"},
		},
	}

	assert.Equal(t, "http://example.com/a.webp", ItemToState(item, layout).ImageURL)
}

// TestParseFile verifies a local RSS file converts to states
func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.xml")
	require.NoError(t, os.WriteFile(path, []byte(rssFeed), 0644))

	feed, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Example Blog", feed.Title)

	states := ToStates(feed, layout, 0)
	require.Len(t, states, 2)
	assert.Equal(t, "First post", states[0].Title)
	assert.Equal(t, "January 15, 2024", states[0].Date)
	assert.Equal(t, "https://example.com/first.jpg", states[0].ImageURL)
	assert.Equal(t, card.DefaultDate, states[1].Date)

	assert.Len(t, ToStates(feed, layout, 1), 1)
}

// TestParse_Invalid verifies non-feed input fails
func TestParse_Invalid(t *testing.T) {
	_, err := Parse(strings.NewReader("not a feed"))
	assert.Error(t, err)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}
