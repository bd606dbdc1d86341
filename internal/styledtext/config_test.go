package styledtext

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FontSize != 14.0 {
		t.Errorf("default font size = %g, want 14", cfg.FontSize)
	}
	if cfg.FontFamily != `"Times New Roman", Times, serif` {
		t.Errorf("default font family = %q", cfg.FontFamily)
	}
	if cfg.FontColor != "#000000" {
		t.Errorf("default font color = %q, want #000000", cfg.FontColor)
	}
	if cfg.Options.StrictBlocks {
		t.Error("strict blocks should be off by default")
	}
}

func TestLoadConfig_EmbeddedDefault(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg != DefaultConfig() {
		t.Errorf("embedded theme = %+v, want library defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoadConfig_CustomTheme(t *testing.T) {
	tmpDir := t.TempDir()
	themePath := filepath.Join(tmpDir, "theme.yaml")

	themeYAML := `font_size: 16
font_family: "Helvetica, sans-serif"
font_color: "#24292E"
options:
  strict_blocks: true
`
	if err := os.WriteFile(themePath, []byte(themeYAML), 0644); err != nil {
		t.Fatalf("Failed to write theme: %v", err)
	}

	cfg, err := LoadConfig(themePath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.FontSize != 16 {
		t.Errorf("font size = %g, want 16", cfg.FontSize)
	}
	if cfg.FontFamily != "Helvetica, sans-serif" {
		t.Errorf("font family = %q", cfg.FontFamily)
	}
	if cfg.FontColor != "#24292E" {
		t.Errorf("font color = %q, want #24292E", cfg.FontColor)
	}
	if !cfg.Options.StrictBlocks {
		t.Error("strict_blocks not applied")
	}
}

func TestLoadConfig_PartialThemeFallsBackToDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	themePath := filepath.Join(tmpDir, "theme.yaml")

	if err := os.WriteFile(themePath, []byte("font_size: 18\n"), 0644); err != nil {
		t.Fatalf("Failed to write theme: %v", err)
	}

	cfg, err := LoadConfig(themePath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.FontSize != 18 {
		t.Errorf("font size = %g, want 18", cfg.FontSize)
	}
	if cfg.FontFamily != DefaultFontFamily {
		t.Errorf("font family = %q, want default", cfg.FontFamily)
	}
	if cfg.FontColor != DefaultFontColor {
		t.Errorf("font color = %q, want default", cfg.FontColor)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		theme string
	}{
		{"zero font size", "font_size: 0\n"},
		{"negative font size", "font_size: -2\n"},
		{"empty font family", "font_family: \"\"\n"},
		{"bad color", "font_color: \"red\"\n"},
		{"short hex color", "font_color: \"#FFF\"\n"},
		{"malformed yaml", "font_size: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			themePath := filepath.Join(tmpDir, "theme.yaml")
			if err := os.WriteFile(themePath, []byte(tt.theme), 0644); err != nil {
				t.Fatalf("Failed to write theme: %v", err)
			}

			if _, err := LoadConfig(themePath); err == nil {
				t.Errorf("LoadConfig() succeeded for %q, want error", tt.theme)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/theme.yaml"); err == nil {
		t.Error("LoadConfig() succeeded for missing file, want error")
	}
}

func TestParseWebColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{"black", "#000000", RGB{0, 0, 0}, false},
		{"white", "#FFFFFF", RGB{65535, 65535, 65535}, false},
		{"no hash prefix", "808080", RGB{128 * 257, 128 * 257, 128 * 257}, false},
		{"mixed case", "#AbCdEf", RGB{0xAB * 257, 0xCD * 257, 0xEF * 257}, false},
		{"too short", "#FFF", RGB{}, true},
		{"not hex", "#GGGGGG", RGB{}, true},
		{"empty", "", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWebColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseWebColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseWebColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
