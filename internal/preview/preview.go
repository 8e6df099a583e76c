package preview

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/arcanaland/blogcard/internal/ansi"
	"github.com/arcanaland/blogcard/internal/card"
)

// StackedBelow is the terminal width under which the art is stacked above
// the text, mirroring the card's narrow layout.
const StackedBelow = 60

// Art dimensions in terminal cells
const (
	ArtWidth  = 20
	ArtHeight = 10
)

const spacing = 4

var (
	titleColor = color.New(color.FgHiWhite, color.Bold)
	dateColor  = color.New(color.FgHiBlack)
	linkColor  = color.New(color.FgCyan, color.Underline)
)

// Render lays out the card for a terminal of the given width: art on the
// left and text on the right, or stacked when the terminal is narrow.
func Render(s card.State, art string, width int) string {
	if width <= 0 {
		width = 80
	}

	artLines := []string{}
	if art != "" {
		artLines = strings.Split(art, "\n")
	}
	maxArtWidth := 0
	for _, line := range artLines {
		if w := ansi.VisibleWidth(line); w > maxArtWidth {
			maxArtWidth = w
		}
	}

	stacked := width < StackedBelow || len(artLines) == 0
	textWidth := width - 4
	if !stacked {
		textWidth = width - maxArtWidth - spacing - 4
	}
	if textWidth < 20 {
		textWidth = 20
	}

	var infoLines []string
	for _, line := range ansi.WrapText(s.Title, textWidth) {
		infoLines = append(infoLines, titleColor.Sprint(line))
	}
	infoLines = append(infoLines, "")
	infoLines = append(infoLines, dateColor.Sprint(s.Date))
	infoLines = append(infoLines, linkColor.Sprint("→ "+s.LinkURL))

	var b strings.Builder
	b.WriteString("\n")

	if stacked {
		for _, line := range artLines {
			b.WriteString("  " + line + "\n")
		}
		if len(artLines) > 0 {
			b.WriteString("\n")
		}
		for _, line := range infoLines {
			b.WriteString("  " + line + "\n")
		}
		return b.String()
	}

	infoStartCol := maxArtWidth + spacing
	maxLines := max(len(artLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		b.WriteString("  ")
		if i < len(artLines) {
			b.WriteString(artLines[i])
			b.WriteString(strings.Repeat(" ", infoStartCol-ansi.VisibleWidth(artLines[i])))
		} else {
			b.WriteString(strings.Repeat(" ", infoStartCol))
		}
		if i < len(infoLines) {
			b.WriteString(infoLines[i])
		}
		b.WriteString("\n")
	}

	return b.String()
}

// LocalImagePath resolves an image URL to a file on disk. Only file: URLs
// and plain paths qualify; anything with another scheme, a host or a bare
// fragment does not.
func LocalImagePath(imageURL, baseDir string) (string, bool) {
	if imageURL == "" || strings.HasPrefix(imageURL, "#") || strings.HasPrefix(imageURL, "//") {
		return "", false
	}

	u, err := url.Parse(imageURL)
	if err != nil {
		return "", false
	}

	var path string
	switch u.Scheme {
	case "file":
		if u.Host != "" && u.Host != "localhost" {
			return "", false
		}
		path = u.Path
	case "":
		path = u.Path
	default:
		return "", false
	}

	if path == "" {
		return "", false
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	return path, true
}
