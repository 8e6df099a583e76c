package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/blogcard/internal/ansi"
	"github.com/arcanaland/blogcard/internal/card"
	"github.com/arcanaland/blogcard/internal/cardfile"
	"github.com/arcanaland/blogcard/internal/config"
	"github.com/arcanaland/blogcard/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview [cards.yaml|cards.toml]",
	Short: "Preview cards in the terminal",
	Long: `Preview shows cards in the terminal with ANSI art for the thumbnail.
Thumbnails are only read from local files: a plain path (relative to the
definitions file) or a file: URL. Remote images are shown as an empty frame.

Wide terminals show the thumbnail left of the text; narrow terminals stack
them, like the card does in a browser.

Examples:
  blogcard preview cards.yaml
  blogcard preview --title "Hello" --image ./thumb.png`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var states []card.State
		baseDir, _ := os.Getwd()

		if len(args) == 1 {
			file, err := cardfile.LoadFile(args[0])
			if err != nil {
				return err
			}
			for _, entry := range file.Cards {
				states = append(states, entry.State())
			}
			baseDir = filepath.Dir(args[0])
		} else {
			s := card.DefaultState()
			for _, f := range cardFlags {
				if cmd.Flags().Changed(f.flag) {
					value, _ := cmd.Flags().GetString(f.flag)
					s.Set(f.attr, value)
				}
			}
			states = append(states, s)
		}

		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width <= 0 {
			width = 80
		}

		noArt, _ := cmd.Flags().GetBool("no-art")
		out := cmd.OutOrStdout()
		for _, s := range states {
			art := ""
			if !noArt {
				art = thumbnailArt(s.ImageURL, baseDir)
			}
			fmt.Fprint(out, preview.Render(s, art, width))
		}
		fmt.Fprintln(out)

		return nil
	},
}

func init() {
	RootCmd.AddCommand(previewCmd)

	for _, f := range cardFlags {
		previewCmd.Flags().String(f.flag, "", f.usage)
	}
	previewCmd.Flags().Bool("no-art", false, "Do not draw thumbnails")
}

// thumbnailArt returns ANSI art for a local image, or an empty frame
func thumbnailArt(imageURL, baseDir string) string {
	path, ok := preview.LocalImagePath(imageURL, baseDir)
	if !ok {
		return ansi.Placeholder(preview.ArtWidth, preview.ArtHeight)
	}

	art, err := ansi.FromImageFile(path, preview.ArtWidth, preview.ArtHeight, config.GetCacheDir())
	if err != nil {
		logger.Warn("could not draw thumbnail", "image", path, "error", err)
		return ansi.Placeholder(preview.ArtWidth, preview.ArtHeight)
	}
	return art
}
