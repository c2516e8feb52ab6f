// Package config loads the tool settings from an optional YAML file and
// environment variables. The defaults reproduce the plain behaviour: comma
// separated input, first row skipped, 6.4x4.8in figure, interactive display on.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfigFile = "LOGLOGPLOT_CONFIG"
	EnvLogLevel   = "LOGLOGPLOT_LOG_LEVEL"
	EnvDelimiter  = "LOGLOGPLOT_DELIMITER"
	EnvNoDisplay  = "LOGLOGPLOT_NO_DISPLAY"
	EnvWidth      = "LOGLOGPLOT_WIDTH"
	EnvHeight     = "LOGLOGPLOT_HEIGHT"
)

// DefaultFiles are looked up in the working directory when EnvConfigFile is unset.
var DefaultFiles = []string{"loglogplot.yaml", "loglogplot.yml"}

// Config holds all settings.
type Config struct {
	// Delimiter is the input field separator, a single character.
	Delimiter string `yaml:"delimiter"`

	// SkipRows is how many leading data rows are left out of the fit and the plot.
	SkipRows int `yaml:"skip_rows"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Display opens an interactive window after saving the figure.
	Display bool `yaml:"display"`

	// OverlayFit draws the fitted power law over the data.
	OverlayFit bool `yaml:"overlay_fit"`

	Plot PlotConfig `yaml:"plot"`
}

// PlotConfig holds figure settings. Sizes are in inches and points.
type PlotConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	LabelFontSize float64 `yaml:"label_font_size"`
	GridAlpha     float64 `yaml:"grid_alpha"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Delimiter:  ",",
		SkipRows:   1,
		LogLevel:   "info",
		Display:    true,
		OverlayFit: false,
		Plot: PlotConfig{
			Width:         6.4,
			Height:        4.8,
			LabelFontSize: 18,
			GridAlpha:     0.1,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file, then environment overrides.
// A file named by EnvConfigFile must exist; the default files are optional.
func Load(getenv func(string) string) (*Config, error) {
	cfg := DefaultConfig()

	if path := getenv(EnvConfigFile); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	} else {
		for _, path := range DefaultFiles {
			err := cfg.loadFile(path)
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, err
			}
			break
		}
	}

	if err := cfg.applyEnv(getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if level := getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
	if delim := getenv(EnvDelimiter); delim != "" {
		// allow "\t" to be passed literally
		if delim == `\t` {
			delim = "\t"
		}
		c.Delimiter = delim
	}
	if v := getenv(EnvNoDisplay); v != "" {
		noDisplay, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvNoDisplay, err)
		}
		c.Display = !noDisplay
	}
	if v := getenv(EnvWidth); v != "" {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWidth, err)
		}
		c.Plot.Width = w
	}
	if v := getenv(EnvHeight); v != "" {
		h, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHeight, err)
		}
		c.Plot.Height = h
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		errs = append(errs, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter))
	} else if strings.ContainsAny(c.Delimiter, "\"\r\n") {
		errs = append(errs, fmt.Errorf("invalid delimiter %q", c.Delimiter))
	}
	if c.SkipRows < 0 {
		errs = append(errs, fmt.Errorf("skip_rows must be >= 0, got %d", c.SkipRows))
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		errs = append(errs, fmt.Errorf("plot size must be positive, got %vx%v", c.Plot.Width, c.Plot.Height))
	}
	if c.Plot.LabelFontSize <= 0 {
		errs = append(errs, fmt.Errorf("label_font_size must be positive, got %v", c.Plot.LabelFontSize))
	}
	if c.Plot.GridAlpha < 0 || c.Plot.GridAlpha > 1 {
		errs = append(errs, fmt.Errorf("grid_alpha must be in [0, 1], got %v", c.Plot.GridAlpha))
	}
	return errors.Join(errs...)
}

// DelimiterRune returns the delimiter as a rune. Call after Validate.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}
