// Package config loads the watch face settings from a JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"owlface/internal/geom"
)

const (
	PlatformColor = "color"
	PlatformBW    = "bw"
)

// Config mirrors the contents of the JSON config file.
type Config struct {
	Platform    string     `json:"platform"`     // "color" or "bw"
	Scale       int        `json:"scale"`        // desktop window scale
	TPS         int        `json:"tps"`          // desktop update rate
	HeadlessHz  int        `json:"headless_hz"`  // headless poll rate
	MinutePivot geom.Point `json:"minute_pivot"` // minute hand center
	HourPivot   geom.Point `json:"hour_pivot"`   // hour hand center
	AssetsDir   string     `json:"assets_dir"`   // optional override for the bundled images
}

// NewDefault returns the settings used when no file is given.
func NewDefault() *Config {
	return &Config{
		Platform:    PlatformColor,
		Scale:       3,
		TPS:         60,
		HeadlessHz:  1,
		MinutePivot: geom.Point{X: 105, Y: 56},
		HourPivot:   geom.Point{X: 41, Y: 56},
	}
}

// Load reads filename over the defaults. A missing file is not an error.
func Load(filename string) (*Config, error) {
	cfg := NewDefault()
	if filename == "" {
		return cfg, nil
	}

	file, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	return cfg, nil
}

// Validate checks the ranges of every field.
func (c *Config) Validate() error {
	switch c.Platform {
	case PlatformColor, PlatformBW:
	default:
		return fmt.Errorf("unknown platform %q", c.Platform)
	}
	if c.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", c.Scale)
	}
	if c.TPS < 1 {
		return fmt.Errorf("tps must be at least 1, got %d", c.TPS)
	}
	if c.HeadlessHz < 1 {
		return fmt.Errorf("headless_hz must be at least 1, got %d", c.HeadlessHz)
	}
	return nil
}

// Color reports whether the display has a color palette.
func (c *Config) Color() bool { return c.Platform == PlatformColor }
