package cmd

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blogcard/internal/dom"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render [page.html|-]",
	Short: "Expand <blog-card> elements inside an HTML page",
	Long: `Render reads an HTML page, renders every <blog-card> element it contains
and writes the page back with each card's shadow root in place, so the cards
display without any script. The configured theme is added to the page head.

Rendering an already rendered page replaces the previous shadow roots.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(cmd, args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		doc, err := goquery.NewDocumentFromReader(in)
		if err != nil {
			return fmt.Errorf("error parsing page: %v", err)
		}

		n, err := dom.ExpandDocument(doc, registry)
		if err != nil {
			return fmt.Errorf("error rendering cards: %v", err)
		}
		logger.Debug("expanded page", "path", args[0], "cards", n)

		css, err := themeCSS(cmd)
		if err != nil {
			return err
		}
		if css != "" && n > 0 {
			head := doc.Find("head")
			head.Find("style#blogcard-theme").Remove()
			head.AppendHtml(`<style id="blogcard-theme">` + "\n" + css + `</style>`)
		}

		html, err := doc.Html()
		if err != nil {
			return fmt.Errorf("error rendering page: %v", err)
		}

		outPath, _ := cmd.Flags().GetString("output")
		out, err := openOutput(cmd, outPath)
		if err != nil {
			return err
		}
		defer out.Close()

		if _, err := fmt.Fprint(out, html); err != nil {
			return fmt.Errorf("error writing page: %v", err)
		}
		reportWritten(cmd, n, outPath)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
	renderCmd.Flags().Bool("no-theme", false, "Do not apply the configured theme")
}
