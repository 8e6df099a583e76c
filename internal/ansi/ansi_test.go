package ansi

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper: a solid red image
func solidImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	return img
}

// TestImageToAnsi_Dimensions verifies one line per cell row
func TestImageToAnsi_Dimensions(t *testing.T) {
	art := ImageToAnsi(solidImage(20, 20), 8, 4)

	lines := strings.Split(art, "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 8, VisibleWidth(line))
		assert.Equal(t, 8, strings.Count(line, "▀"))
	}
	assert.Contains(t, art, "\x1b[38;2;")
}

// TestFromImageFile_Cache verifies generated art is cached
func TestFromImageFile_Cache(t *testing.T) {
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "thumb.png")
	f, err := os.Create(imagePath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, solidImage(10, 10)))
	require.NoError(t, f.Close())

	cacheDir := filepath.Join(dir, "cache")
	art, err := FromImageFile(imagePath, 4, 2, cacheDir)
	require.NoError(t, err)

	entries, err := os.ReadDir(cacheDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// A cached result is served even once the source is gone
	require.NoError(t, os.Remove(imagePath))
	cached, err := FromImageFile(imagePath, 4, 2, cacheDir)
	require.NoError(t, err)
	assert.Equal(t, art, cached)
}

// TestFromImageFile_Errors verifies missing and undecodable images fail
func TestFromImageFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := FromImageFile(filepath.Join(dir, "missing.png"), 4, 2, "")
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0644))
	_, err = FromImageFile(bad, 4, 2, "")
	assert.Error(t, err)
}

// TestPlaceholder verifies the box outline
func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "┌──┐\n│  │\n└──┘", Placeholder(4, 3))
	assert.Empty(t, Placeholder(1, 1))
}

// TestStrip verifies escape sequences are removed
func TestStrip(t *testing.T) {
	assert.Equal(t, "red", Strip("\x1b[31mred\x1b[0m"))
	assert.Equal(t, 3, VisibleWidth("\x1b[1m▀▀▀\x1b[0m"))
}

// TestWrapText verifies word wrapping
func TestWrapText(t *testing.T) {
	lines := WrapText("the quick brown fox jumps over the lazy dog", 15)
	assert.Equal(t, []string{"the quick brown", "fox jumps over", "the lazy dog"}, lines)

	assert.Equal(t, []string{""}, WrapText("   ", 20))
	assert.Equal(t, []string{"short"}, WrapText("short", 3), "tiny widths fall back to a default")
}
