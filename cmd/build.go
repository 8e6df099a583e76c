package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/blogcard/internal/cardfile"
	"github.com/arcanaland/blogcard/internal/page"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build [cards.yaml|cards.toml]",
	Short: "Build a page of cards from a definitions file",
	Long: `Build renders every card in a definitions file into a standalone HTML page.

A definitions file lists cards by attribute name:

  cards:
    - article-title: Hello
      publish-date: May 1, 2024
      image-url: /img/hello.png
      article-url: https://example.com/hello`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := cardfile.LoadFile(args[0])
		if err != nil {
			return err
		}

		elements, err := file.Elements(registry)
		if err != nil {
			return fmt.Errorf("error rendering cards: %v", err)
		}
		logger.Debug("built cards", "path", args[0], "cards", len(elements))

		css, err := themeCSS(cmd)
		if err != nil {
			return err
		}

		pageTitle, _ := cmd.Flags().GetString("page-title")
		if pageTitle == "" {
			base := filepath.Base(args[0])
			pageTitle = strings.TrimSuffix(base, filepath.Ext(base))
		}

		outPath, _ := cmd.Flags().GetString("output")
		out, err := openOutput(cmd, outPath)
		if err != nil {
			return err
		}
		defer out.Close()

		if err := page.Write(out, elements, page.Options{Title: pageTitle, HostCSS: css}); err != nil {
			return err
		}
		reportWritten(cmd, len(elements), outPath)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(buildCmd)
	addPageFlags(buildCmd)
}
