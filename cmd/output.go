package cmd

import (
	"fmt"
	"io"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blogcard/internal/card"
	"github.com/arcanaland/blogcard/internal/config"
)

// nopCloser wraps stdout so callers can always Close the output
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// openOutput returns the file at path, or the command's stdout for "" and "-"
func openOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("error creating output file: %v", err)
	}
	return f, nil
}

// openInput returns the file at path, or the command's stdin for "-"
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening input file: %v", err)
	}
	return f, nil
}

// themeCSS loads the configured theme as a host stylesheet rule. It returns
// an empty string when themes are disabled or nothing is overridden.
func themeCSS(cmd *cobra.Command) (string, error) {
	if noTheme, _ := cmd.Flags().GetBool("no-theme"); noTheme {
		return "", nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return "", fmt.Errorf("error loading config: %v", err)
	}

	css, err := cfg.Theme.HostCSS(card.TagName)
	if err != nil {
		return "", fmt.Errorf("error in theme: %v", err)
	}
	return css, nil
}

// reportWritten prints a status line to stderr when output went to a file
func reportWritten(cmd *cobra.Command, n int, path string) {
	if path == "" || path == "-" {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s wrote %d card(s) to %s\n",
		colorize.GreenString("✓"), n, colorize.HiWhiteString(path))
}
