package styledtext

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed config/default_theme.yaml
var defaultThemeYAML []byte

// Library-wide defaults for the generator configuration.
const (
	DefaultFontSize   = 14.0
	DefaultFontFamily = `"Times New Roman", Times, serif`
	DefaultFontColor  = "#000000"
)

// Options is the generator's behavioral toggle set: a small set of named
// booleans with room to grow. Options only affect in-process behavior;
// they are never serialized to a wire format.
type Options struct {
	// StrictBlocks makes Generate fail on block kinds the style table does
	// not cover instead of silently skipping them. Off by default: silent
	// skipping matches the permissive policy of the default contract, but
	// strict mode surfaces upstream parser changes early.
	StrictBlocks bool `yaml:"strict_blocks"`
}

// Config is the generator configuration. It is set once at construction
// and shared read-only by all rendering calls.
type Config struct {
	Options    Options
	FontSize   float64
	FontFamily string
	FontColor  string
}

// DefaultConfig returns the library default configuration.
func DefaultConfig() Config {
	return Config{
		FontSize:   DefaultFontSize,
		FontFamily: DefaultFontFamily,
		FontColor:  DefaultFontColor,
	}
}

// theme holds the raw YAML theme shape (for parsing only). Optional fields
// are pointers so absent keys fall back to the library defaults.
type theme struct {
	FontSize   *float64 `yaml:"font_size,omitempty"`
	FontFamily *string  `yaml:"font_family,omitempty"`
	FontColor  *string  `yaml:"font_color,omitempty"`
	Options    Options  `yaml:"options,omitempty"`
}

// LoadConfig loads a theme file from path. If path is empty, the embedded
// default theme is used. The returned Config is fully validated; an
// unresolvable font binding is reported here rather than during rendering.
func LoadConfig(path string) (Config, error) {
	var data []byte
	var err error

	if path == "" {
		data = defaultThemeYAML
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read theme file %s: %w", path, err)
		}
	}

	var t theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Config{}, fmt.Errorf("failed to parse YAML theme: %w", err)
	}

	cfg := DefaultConfig()
	if t.FontSize != nil {
		cfg.FontSize = *t.FontSize
	}
	if t.FontFamily != nil {
		cfg.FontFamily = *t.FontFamily
	}
	if t.FontColor != nil {
		cfg.FontColor = *t.FontColor
	}
	cfg.Options = t.Options

	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid theme: %w", err)
	}

	return cfg, nil
}

// validate ensures the configuration describes a resolvable font binding.
func validate(cfg Config) error {
	if cfg.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive, got %g", cfg.FontSize)
	}
	if strings.TrimSpace(cfg.FontFamily) == "" {
		return fmt.Errorf("font_family is required")
	}
	if _, err := parseWebColor(cfg.FontColor); err != nil {
		return fmt.Errorf("invalid font_color: %w", err)
	}
	return nil
}
