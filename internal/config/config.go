package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/colornames"
)

// Config holds the application configuration
type Config struct {
	Analyzer AnalyzerConfig `json:"analyzer"`
	Overlay  OverlayConfig  `json:"overlay"`
	Output   OutputConfig   `json:"output"`
}

// AnalyzerConfig holds configuration for image loading
type AnalyzerConfig struct {
	SupportedFormats []string `json:"supported_formats"`
}

// OverlayConfig holds configuration for the dimension badge
type OverlayConfig struct {
	FontCandidates []string `json:"font_candidates"`
	Background     string   `json:"background"`
	Border         string   `json:"border"`
	Text           string   `json:"text"`
}

// OutputConfig holds configuration for output generation
type OutputConfig struct {
	DefaultFormat string `json:"default_format"`
	Quality       int    `json:"quality"`
	Lossless      bool   `json:"lossless"`
	OutputDir     string `json:"output_dir"`
	Prefix        string `json:"prefix"`
	Suffix        string `json:"suffix"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Analyzer: AnalyzerConfig{
			SupportedFormats: []string{"jpeg", "png", "gif", "bmp", "tiff", "webp"},
		},
		Overlay: OverlayConfig{
			FontCandidates: DefaultFontCandidates(),
			Background:     "black",
			Border:         "red",
			Text:           "white",
		},
		Output: OutputConfig{
			DefaultFormat: "png",
			Quality:       92,
			Lossless:      false,
			OutputDir:     "",
			Prefix:        "",
			Suffix:        "_dims",
		},
	}
}

// LoadFromFile loads configuration from a JSON file. Fields missing from the
// file keep their default values.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.Analyzer.SupportedFormats) == 0 {
		return fmt.Errorf("analyzer.supported_formats cannot be empty")
	}

	for field, name := range map[string]string{
		"overlay.background": c.Overlay.Background,
		"overlay.border":     c.Overlay.Border,
		"overlay.text":       c.Overlay.Text,
	} {
		if _, err := ParseColor(name); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}

	switch strings.ToLower(c.Output.DefaultFormat) {
	case "png", "jpg", "jpeg", "webp":
	default:
		return fmt.Errorf("output.default_format must be png, jpg or webp")
	}

	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return fmt.Errorf("output.quality must be between 1 and 100")
	}

	return nil
}

// Colors returns the parsed badge colors: background, border, text
func (c *Config) Colors() (bg, border, text color.Color, err error) {
	if bg, err = ParseColor(c.Overlay.Background); err != nil {
		return nil, nil, nil, err
	}
	if border, err = ParseColor(c.Overlay.Border); err != nil {
		return nil, nil, nil, err
	}
	if text, err = ParseColor(c.Overlay.Text); err != nil {
		return nil, nil, nil, err
	}
	return bg, border, text, nil
}

// ParseColor resolves an SVG color name such as "red"
func ParseColor(name string) (color.Color, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "pixeldims", "config.json")
}
