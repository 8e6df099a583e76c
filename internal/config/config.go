package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/blogcard/internal/card"
)

// Config represents the application configuration
type Config struct {
	Theme ThemeConfig `toml:"theme"`
	Feed  FeedConfig  `toml:"feed"`
}

// ThemeConfig holds host-level overrides for the card's style variables.
// Empty values keep the card's built-in defaults.
type ThemeConfig struct {
	BackgroundColor string `toml:"background_color"`
	PrimaryColor    string `toml:"primary_color"`
	SecondaryColor  string `toml:"secondary_color"`
	HoverColor      string `toml:"hover_color"`
}

// FeedConfig controls how feed items become cards
type FeedConfig struct {
	DateLayout string `toml:"date_layout"`
}

// DefaultDateLayout is the Go time layout used for card dates
const DefaultDateLayout = "January 2, 2006"

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return xdgCache
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache")
}

// GetCacheDir returns the directory for generated preview art
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), "blogcard")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "blogcard", "config.toml")
}

// Default returns the configuration written on first use
func Default() *Config {
	return &Config{
		Feed: FeedConfig{DateLayout: DefaultDateLayout},
	}
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}
	if config.Feed.DateLayout == "" {
		config.Feed.DateLayout = DefaultDateLayout
	}

	return config, nil
}

// createDefaultConfig writes a default config file
func createDefaultConfig(configPath string) (*Config, error) {
	config := Default()
	if err := writeConfig(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(configPath string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// themeKeys maps config keys to the style variable they override
var themeKeys = map[string]string{
	"background_color": card.VarBackgroundColor,
	"primary_color":    card.VarPrimaryColor,
	"secondary_color":  card.VarSecondaryColor,
	"hover_color":      card.VarHoverColor,
}

// ThemeKeys returns the settable theme keys in sorted order
func ThemeKeys() []string {
	keys := make([]string, 0, len(themeKeys))
	for k := range themeKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (t *ThemeConfig) field(key string) *string {
	switch key {
	case "background_color":
		return &t.BackgroundColor
	case "primary_color":
		return &t.PrimaryColor
	case "secondary_color":
		return &t.SecondaryColor
	case "hover_color":
		return &t.HoverColor
	}
	return nil
}

// SetThemeValue sets one theme key in the config file
func SetThemeValue(key, value string) error {
	if err := checkCSSValue(value); err != nil {
		return err
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}

	field := config.Theme.field(key)
	if field == nil {
		return fmt.Errorf("unknown theme key: %s (valid: %s)", key, strings.Join(ThemeKeys(), ", "))
	}
	*field = value

	return writeConfig(GetConfigFilePath(), config)
}

// SetDateLayout sets the Go time layout used for feed dates
func SetDateLayout(layout string) error {
	if strings.TrimSpace(layout) == "" {
		return fmt.Errorf("date layout must not be empty")
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}
	config.Feed.DateLayout = layout

	return writeConfig(GetConfigFilePath(), config)
}

// checkCSSValue rejects values that would escape a declaration
func checkCSSValue(value string) error {
	if strings.ContainsAny(value, ";{}<>\\") {
		return fmt.Errorf("invalid style value %q: must not contain ; { } < > or \\", value)
	}
	return nil
}

// Overrides returns the style variables the theme sets, in the card's
// declaration order.
func (t ThemeConfig) Overrides() []card.StyleVariable {
	var vars []card.StyleVariable
	for _, key := range []string{"background_color", "primary_color", "secondary_color", "hover_color"} {
		value := *t.field(key)
		if value == "" {
			continue
		}
		vars = append(vars, card.StyleVariable{Name: themeKeys[key], Default: value})
	}
	return vars
}

// HostCSS returns a host document rule that applies the theme to every
// element named tag. It returns an empty string when nothing is overridden.
func (t ThemeConfig) HostCSS(tag string) (string, error) {
	vars := t.Overrides()
	if len(vars) == 0 {
		return "", nil
	}

	var b strings.Builder
	b.WriteString(tag)
	b.WriteString(" {\n")
	for _, v := range vars {
		if err := checkCSSValue(v.Default); err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "  %s: %s;\n", v.Name, v.Default)
	}
	b.WriteString("}\n")
	return b.String(), nil
}
