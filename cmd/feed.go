package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/blogcard/internal/cardfile"
	"github.com/arcanaland/blogcard/internal/config"
	"github.com/arcanaland/blogcard/internal/feed"
	"github.com/arcanaland/blogcard/internal/page"
)

// feedCmd represents the feed command
var feedCmd = &cobra.Command{
	Use:   "feed [feed.xml|-]",
	Short: "Turn a local RSS or Atom feed into cards",
	Long: `Feed reads an RSS, Atom or JSON feed from a local file (or stdin) and
renders one card per item. Dates use the date_layout from the config file.

With --format yaml the cards are written as a definitions file instead, ready
to be edited and passed to 'blogcard build'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if format != "html" && format != "yaml" {
			return fmt.Errorf("unknown format %q (expected html or yaml)", format)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		in, err := openInput(cmd, args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		parsed, err := feed.Parse(in)
		if err != nil {
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")
		states := feed.ToStates(parsed, cfg.Feed.DateLayout, limit)
		logger.Debug("converted feed", "title", parsed.Title, "items", len(parsed.Items), "cards", len(states))

		file := cardfile.FromStates(states)

		outPath, _ := cmd.Flags().GetString("output")
		out, err := openOutput(cmd, outPath)
		if err != nil {
			return err
		}
		defer out.Close()

		if format == "yaml" {
			data, err := file.WriteYAML()
			if err != nil {
				return err
			}
			if _, err := out.Write(data); err != nil {
				return fmt.Errorf("error writing cards: %v", err)
			}
			reportWritten(cmd, len(states), outPath)
			return nil
		}

		elements, err := file.Elements(registry)
		if err != nil {
			return fmt.Errorf("error rendering cards: %v", err)
		}

		css, err := themeCSS(cmd)
		if err != nil {
			return err
		}
		pageTitle, _ := cmd.Flags().GetString("page-title")
		if pageTitle == "" {
			pageTitle = parsed.Title
		}
		if err := page.Write(out, elements, page.Options{Title: pageTitle, HostCSS: css}); err != nil {
			return err
		}
		reportWritten(cmd, len(elements), outPath)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(feedCmd)

	feedCmd.Flags().IntP("limit", "n", 0, "Maximum number of items (0 for all)")
	feedCmd.Flags().String("format", "html", "Output format: html or yaml")
	addPageFlags(feedCmd)
}
