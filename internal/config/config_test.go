package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "png", cfg.Output.DefaultFormat)
	assert.NotEmpty(t, cfg.Overlay.FontCandidates)

	bg, border, text, err := cfg.Colors()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, bg)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, border)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, text)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no formats", func(c *Config) { c.Analyzer.SupportedFormats = nil }},
		{"bad background", func(c *Config) { c.Overlay.Background = "ultraviolet" }},
		{"bad border", func(c *Config) { c.Overlay.Border = "" }},
		{"bad output format", func(c *Config) { c.Output.DefaultFormat = "gif" }},
		{"quality too low", func(c *Config) { c.Output.Quality = 0 }},
		{"quality too high", func(c *Config) { c.Output.Quality = 101 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Overlay.Border = "gold"
	cfg.Output.Suffix = "_size"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"overlay":{"border":"blue"}}`), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "blue", cfg.Overlay.Border)
	assert.Equal(t, "black", cfg.Overlay.Background)
	assert.Equal(t, 92, cfg.Output.Quality)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadFromFile(bad)
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor(" Red ")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c)

	_, err = ParseColor("not-a-color")
	assert.Error(t, err)
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := GetConfigPath()
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, filepath.Join("pixeldims", "config.json"), filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
}
