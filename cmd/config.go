package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blogcard/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the blogcard configuration",
	Long:  `Commands for managing the theme and feed settings in your config file.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", config.GetConfigFilePath())
		if err := toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg); err != nil {
			return fmt.Errorf("error encoding config: %v", err)
		}
		return nil
	},
}

// configSetCmd represents the config set command
var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a theme color or the feed date layout",
	Long: `Set changes one setting in the config file.

Theme keys override the card's style variables on the host page:
  background_color, primary_color, secondary_color, hover_color
An empty value restores the card's built-in default.

The date_layout key sets the Go time layout used for feed dates.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		var err error
		if key == "date_layout" {
			err = config.SetDateLayout(value)
		} else {
			err = config.SetThemeValue(key, value)
		}
		if err != nil {
			return fmt.Errorf("error setting %s: %v", key, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s set to: %q\n", key, value)
		return nil
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Run: func(cmd *cobra.Command, args []string) {
		path := config.GetConfigFilePath()
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (not created yet)\n", path)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
}
