package ansi

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// FromImageFile converts a local image to ANSI art of width x height cells.
// When cacheDir is not empty, generated art is stored there keyed by path
// and size and reused.
func FromImageFile(imagePath string, width, height int, cacheDir string) (string, error) {
	var cachePath string
	if cacheDir != "" {
		key := fmt.Sprintf("%s:%dx%d", imagePath, width, height)
		cachePath = filepath.Join(cacheDir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(key))))
		if data, err := os.ReadFile(cachePath); err == nil {
			return string(data), nil
		}
	}

	file, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %v", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %v", err)
	}

	art := ImageToAnsi(img, width, height)

	if cachePath != "" {
		if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
			return "", fmt.Errorf("failed to create ANSI cache directory: %v", err)
		}
		if err := os.WriteFile(cachePath, []byte(art), 0644); err != nil {
			return "", fmt.Errorf("failed to write ANSI art to cache: %v", err)
		}
	}

	return art, nil
}

// ImageToAnsi renders img with upper half blocks, two pixel rows per line.
// Lines are separated by newlines with no trailing newline.
func ImageToAnsi(img image.Image, width, height int) string {
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	lines := make([]string, 0, height)
	for y := 0; y < height*2; y += 2 {
		var line strings.Builder
		for x := 0; x < width*2; x += 2 {
			c1, _ := colorful.MakeColor(colorAt(resized, x, y))
			c2, _ := colorful.MakeColor(colorAt(resized, x+1, y))
			c3, _ := colorful.MakeColor(colorAt(resized, x, y+1))
			c4, _ := colorful.MakeColor(colorAt(resized, x+1, y+1))

			// Top pixels as foreground, bottom pixels as background
			fg := averageColor(c1, c2)
			bg := averageColor(c3, c4)
			line.WriteString(cell('▀', fg, bg))
		}
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}

// Placeholder returns a plain box of width x height cells used when no
// local image is available.
func Placeholder(width, height int) string {
	if width < 2 || height < 2 {
		return ""
	}
	lines := make([]string, 0, height)
	lines = append(lines, "┌"+strings.Repeat("─", width-2)+"┐")
	for i := 0; i < height-2; i++ {
		lines = append(lines, "│"+strings.Repeat(" ", width-2)+"│")
	}
	lines = append(lines, "└"+strings.Repeat("─", width-2)+"┘")
	return strings.Join(lines, "\n")
}

// colorAt returns the color at a coordinate, black when out of bounds
func colorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255}
}

// averageColor calculates the average of multiple colors
func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

// cell formats a character with 24-bit foreground and background colors
func cell(char rune, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.Clamped().RGB255()
	r2, g2, b2 := bg.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}
