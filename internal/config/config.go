package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"wireframe/internal/scene"
)

// Config holds output settings and the scene to render.
type Config struct {
	// Output
	OutputDir   string `json:"output_dir" toml:"output_dir" yaml:"output_dir"`
	Format      string `json:"format" toml:"format" yaml:"format"`
	Width       int    `json:"width" toml:"width" yaml:"width"`
	Height      int    `json:"height" toml:"height" yaml:"height"`
	Supersample int    `json:"supersample" toml:"supersample" yaml:"supersample"`
	Frames      int    `json:"frames" toml:"frames" yaml:"frames"`
	Workers     int    `json:"workers" toml:"workers" yaml:"workers"`

	// Window mode
	TPS int `json:"tps" toml:"tps" yaml:"tps"`

	// Style
	LineWidth  float32 `json:"line_width" toml:"line_width" yaml:"line_width"`
	LineColor  string  `json:"line_color" toml:"line_color" yaml:"line_color"`
	Background string  `json:"background" toml:"background" yaml:"background"`

	Scene scene.Scene `json:"scene" toml:"scene" yaml:"scene"`
}

// Load reads a config file. The decoder is chosen by extension: .toml,
// .yaml/.yml, anything else is JSON. Fields not set keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
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
	OutputDir   string
	Format      string
	Width       int
	Height      int
	Supersample int
	Frames      int
	Workers     int
	TPS         int
}

// Resolve applies flag overrides and fills every unset field with a default.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
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
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.TPS > 0 {
		c.TPS = flags.TPS
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 120
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.LineWidth <= 0 {
		c.LineWidth = 1.5
	}
	if c.LineColor == "" {
		c.LineColor = "#ffffff"
	}
	if len(c.Scene.Triangles) == 0 {
		spin := c.Scene.Spin
		center := c.Scene.Center
		c.Scene = scene.Default()
		if !spin.IsZero() {
			c.Scene.Spin = spin
		}
		c.Scene.Center = center
	}
}

// Validate checks a resolved config.
func (c *Config) Validate() error {
	switch c.Format {
	case "webp", "png", "tga":
	default:
		return fmt.Errorf("config: unknown format %q (want webp, png or tga)", c.Format)
	}
	if _, _, err := c.Colors(); err != nil {
		return err
	}
	return c.Scene.Validate()
}

// Colors parses LineColor and Background. An empty background is transparent.
func (c *Config) Colors() (line, background color.NRGBA, err error) {
	line, err = ParseColor(c.LineColor)
	if err != nil {
		return line, background, fmt.Errorf("config: line_color: %w", err)
	}
	if c.Background == "" {
		return line, background, nil
	}
	background, err = ParseColor(c.Background)
	if err != nil {
		return line, background, fmt.Errorf("config: background: %w", err)
	}
	return line, background, nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
