package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arcanaland/blogcard/internal/card"
	"github.com/arcanaland/blogcard/internal/logging"
	"github.com/arcanaland/blogcard/internal/widget"
)

var (
	// registry holds the widget definitions for this process
	registry *widget.Registry

	logger = slog.Default()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "blogcard",
	Short: "Render self-contained article cards",
	Long: `Blogcard renders <blog-card> elements: article cards with a title, publish
date, thumbnail and link, each in its own shadow root so page styles and card
styles stay apart.

Cards can be rendered from flags, from a card definitions file, from a local
RSS/Atom feed, or expanded in place inside an existing HTML page.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logging.LevelFromEnv()
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		logger = logging.NewLogger(cmd.ErrOrStderr(), level)

		reg, err := newRegistry()
		if err != nil {
			return err
		}
		registry = reg
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	RootCmd.AddCommand(validateCmd)
}

// newRegistry defines every widget this tool renders. It runs once per
// process; a duplicate definition is a setup error.
func newRegistry() (*widget.Registry, error) {
	reg := widget.NewRegistry()
	if err := card.Register(reg); err != nil {
		return nil, fmt.Errorf("error registering %s: %w", card.TagName, err)
	}
	return reg, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
