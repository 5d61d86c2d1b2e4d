package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/danidoni/raytracer/internal/canvas"
	"github.com/danidoni/raytracer/internal/output"
)

// Config holds all configurable render settings.
type Config struct {
	// Canvas size in pixels
	Width  int `json:"width"`
	Height int `json:"height"`

	// Projection plane
	ViewportWidth    float64 `json:"viewport_width"`
	ViewportHeight   float64 `json:"viewport_height"`
	ViewportDistance float64 `json:"viewport_distance"`

	// I/O
	ScenePath  string `json:"scene"`
	OutputPath string `json:"output"`
	Format     string `json:"format"`
	Scale      int    `json:"scale"`

	// Batch mode only; a single frame always renders on one goroutine
	Workers int `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Scene   string
	Output  string
	Format  string
	Width   int
	Height  int
	Scale   int
	Workers int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Scene != "" {
		c.ScenePath = flags.Scene
	}
	if flags.Output != "" {
		c.OutputPath = flags.Output
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Defaults
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.ViewportWidth <= 0 {
		c.ViewportWidth = 1
	}
	if c.ViewportHeight <= 0 {
		c.ViewportHeight = 1
	}
	if c.ViewportDistance <= 0 {
		c.ViewportDistance = 1
	}
	if c.Format == "" {
		c.Format = output.FormatWebP
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.OutputPath == "" {
		c.OutputPath = "render." + output.Ext(c.Format)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Canvas returns the configured canvas dimensions.
func (c *Config) Canvas() canvas.Canvas {
	return canvas.Canvas{Width: c.Width, Height: c.Height}
}

// Viewport returns the configured projection plane.
func (c *Config) Viewport() canvas.Viewport {
	return canvas.Viewport{
		Width:    c.ViewportWidth,
		Height:   c.ViewportHeight,
		Distance: c.ViewportDistance,
	}
}
