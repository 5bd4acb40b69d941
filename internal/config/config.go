package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"softraster/internal/imageio"
)

// Config holds render and presentation settings shared by the commands.
type Config struct {
	// Canvas
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`

	// Output
	OutputDir string `json:"output_dir" yaml:"output_dir"`
	Format    string `json:"format" yaml:"format"`
	Scale     int    `json:"scale" yaml:"scale"`

	// Texture is a file path, or a name looked up in TextureDir.
	TextureDir string `json:"texture_dir" yaml:"texture_dir"`
	Texture    string `json:"texture" yaml:"texture"`

	// Scenes
	Scenes []string `json:"scenes" yaml:"scenes"`
	Seed   int64    `json:"seed" yaml:"seed"`
	Angle  float64  `json:"angle" yaml:"angle"`
	Tilt   float64  `json:"tilt" yaml:"tilt"`

	// Uniforms for input-driven scenes when rendered offline
	MouseX float64 `json:"mouse_x" yaml:"mouse_x"`
	MouseY float64 `json:"mouse_y" yaml:"mouse_y"`
	Radius float64 `json:"radius" yaml:"radius"`

	// Runtime
	Workers     int `json:"workers" yaml:"workers"`
	WindowScale int `json:"window_scale" yaml:"window_scale"`
	TPS         int `json:"tps" yaml:"tps"`
}

// Load reads a JSON or YAML config file, picked by extension (.yaml/.yml
// for YAML, anything else JSON). Fields not set in the file keep their zero
// values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width     int
	Height    int
	OutputDir string
	Format    string
	Scale     int
	Texture   string
	Scenes    []string
	Workers   int
}

// Resolve applies flag overrides and fills empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if len(flags.Scenes) > 0 {
		c.Scenes = flags.Scenes
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 240
	}
	if c.OutputDir == "" {
		c.OutputDir = "out"
	}
	c.Format = strings.ToLower(strings.TrimPrefix(c.Format, "."))
	if c.Format == "" {
		c.Format = "ppm"
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Radius <= 0 {
		c.Radius = 40
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.WindowScale <= 0 {
		c.WindowScale = 2
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
}

// Validate reports settings that Resolve cannot repair.
func (c *Config) Validate() error {
	if c.Width > 1<<15 || c.Height > 1<<15 {
		return fmt.Errorf("config: canvas %dx%d too large", c.Width, c.Height)
	}
	if !imageio.Supported(c.Format) {
		return fmt.Errorf("config: unsupported format %q (want one of %s)",
			c.Format, strings.Join(imageio.Formats, ", "))
	}
	return nil
}
