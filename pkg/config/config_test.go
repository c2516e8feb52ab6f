package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Delimiter != "," {
		t.Errorf("Delimiter = %q, want \",\"", cfg.Delimiter)
	}
	if cfg.SkipRows != 1 {
		t.Errorf("SkipRows = %d, want 1", cfg.SkipRows)
	}
	if !cfg.Display {
		t.Error("Display = false, want true")
	}
	if cfg.OverlayFit {
		t.Error("OverlayFit = true, want false")
	}
	if cfg.Plot.Width != 6.4 || cfg.Plot.Height != 4.8 {
		t.Errorf("Plot size = %vx%v, want 6.4x4.8", cfg.Plot.Width, cfg.Plot.Height)
	}
	if cfg.Plot.LabelFontSize != 18 {
		t.Errorf("LabelFontSize = %v, want 18", cfg.Plot.LabelFontSize)
	}
	if cfg.Plot.GridAlpha != 0.1 {
		t.Errorf("GridAlpha = %v, want 0.1", cfg.Plot.GridAlpha)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
delimiter: ";"
skip_rows: 0
overlay_fit: true
display: false
plot:
  width: 8
  label_font_size: 12
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(envFrom(map[string]string{EnvConfigFile: path}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DelimiterRune() != ';' {
		t.Errorf("DelimiterRune() = %q, want ';'", cfg.DelimiterRune())
	}
	if cfg.SkipRows != 0 || !cfg.OverlayFit || cfg.Display {
		t.Errorf("got skip=%d overlay=%v display=%v", cfg.SkipRows, cfg.OverlayFit, cfg.Display)
	}
	if cfg.Plot.Width != 8 || cfg.Plot.LabelFontSize != 12 {
		t.Errorf("plot = %+v", cfg.Plot)
	}
	// untouched keys keep their defaults
	if cfg.Plot.Height != 4.8 || cfg.Plot.GridAlpha != 0.1 {
		t.Errorf("defaults lost: %+v", cfg.Plot)
	}
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := Load(envFrom(map[string]string{EnvConfigFile: filepath.Join(t.TempDir(), "none.yaml")}))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	cfg, err := Load(envFrom(map[string]string{
		EnvLogLevel:  "debug",
		EnvDelimiter: `\t`,
		EnvNoDisplay: "1",
		EnvWidth:     "10",
		EnvHeight:    "5",
	}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.DelimiterRune() != '\t' {
		t.Errorf("DelimiterRune() = %q, want tab", cfg.DelimiterRune())
	}
	if cfg.Display {
		t.Error("Display = true, want false")
	}
	if cfg.Plot.Width != 10 || cfg.Plot.Height != 5 {
		t.Errorf("Plot size = %vx%v, want 10x5", cfg.Plot.Width, cfg.Plot.Height)
	}
}

func TestLoadEnvInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad bool", map[string]string{EnvNoDisplay: "maybe"}},
		{"bad width", map[string]string{EnvWidth: "wide"}},
		{"bad height", map[string]string{EnvHeight: "-1"}},
		{"long delimiter", map[string]string{EnvDelimiter: "::"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(envFrom(tt.env)); err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative skip", func(c *Config) { c.SkipRows = -1 }},
		{"quote delimiter", func(c *Config) { c.Delimiter = `"` }},
		{"empty delimiter", func(c *Config) { c.Delimiter = "" }},
		{"zero font", func(c *Config) { c.Plot.LabelFontSize = 0 }},
		{"alpha above one", func(c *Config) { c.Plot.GridAlpha = 1.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() error = nil, want error")
			}
		})
	}
}
