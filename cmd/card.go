package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/blogcard/internal/card"
	"github.com/arcanaland/blogcard/internal/dom"
	"github.com/arcanaland/blogcard/internal/page"
)

// cardFlags maps flag names to the attribute they set
var cardFlags = []struct {
	flag, attr, usage string
}{
	{"title", card.AttrTitle, "Article title"},
	{"date", card.AttrDate, "Publish date text"},
	{"image", card.AttrImageURL, "Thumbnail image URL"},
	{"url", card.AttrLinkURL, "Article URL"},
}

// cardCmd represents the card command
var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Render a single card from flags",
	Long: `Card renders one <blog-card> element with its shadow root.
Attributes not given on the command line keep their defaults.

Examples:
  blogcard card --title "Hello" --date "May 1, 2024" --url https://example.com/hello
  blogcard card --title "Hello" --page -o hello.html`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		el, err := dom.CreateElement(registry, card.TagName)
		if err != nil {
			return err
		}
		for _, f := range cardFlags {
			if cmd.Flags().Changed(f.flag) {
				value, _ := cmd.Flags().GetString(f.flag)
				el.SetAttribute(f.attr, value)
			}
		}
		el.Connect()
		logger.Debug("rendered card", "id", el.ID, "attributes", len(el.Attributes()))

		outPath, _ := cmd.Flags().GetString("output")
		out, err := openOutput(cmd, outPath)
		if err != nil {
			return err
		}
		defer out.Close()

		asPage, _ := cmd.Flags().GetBool("page")
		if !asPage {
			if err := page.WriteFragment(out, []*dom.Element{el}); err != nil {
				return err
			}
			reportWritten(cmd, 1, outPath)
			return nil
		}

		css, err := themeCSS(cmd)
		if err != nil {
			return err
		}
		pageTitle, _ := cmd.Flags().GetString("page-title")
		if err := page.Write(out, []*dom.Element{el}, page.Options{Title: pageTitle, HostCSS: css}); err != nil {
			return fmt.Errorf("error writing page: %v", err)
		}
		reportWritten(cmd, 1, outPath)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cardCmd)

	for _, f := range cardFlags {
		cardCmd.Flags().String(f.flag, "", f.usage)
	}
	cardCmd.Flags().Bool("page", false, "Wrap the card in a standalone HTML page")
	addPageFlags(cardCmd)
}

// addPageFlags registers the flags shared by commands that write pages
func addPageFlags(c *cobra.Command) {
	c.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
	c.Flags().String("page-title", "", "Title of the generated page")
	c.Flags().Bool("no-theme", false, "Do not apply the configured theme")
}
