// Package config handles demo configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/distortion/pkg/tessellate"
)

// Config holds all demo settings.
type Config struct {
	Graphics     GraphicsConfig     `yaml:"graphics" toml:"graphics"`
	Demo         DemoConfig         `yaml:"demo" toml:"demo"`
	Tessellation TessellationConfig `yaml:"tessellation" toml:"tessellation"`
	Screenshots  ScreenshotConfig   `yaml:"screenshots" toml:"screenshots"`
	Logging      LoggingConfig      `yaml:"logging" toml:"logging"`
}

// GraphicsConfig holds display and rendering settings. A zero width or height
// selects the size the demo variant was designed for.
type GraphicsConfig struct {
	Width         int     `yaml:"width" toml:"width"`
	Height        int     `yaml:"height" toml:"height"`
	Fullscreen    bool    `yaml:"fullscreen" toml:"fullscreen"`
	VSync         bool    `yaml:"vsync" toml:"vsync"`
	Multisampling bool    `yaml:"multisampling" toml:"multisampling"`
	LineWidth     float32 `yaml:"line_width" toml:"line_width"`
}

// DemoConfig selects the demo and its animation.
type DemoConfig struct {
	Variant          string  `yaml:"variant" toml:"variant"`
	RadiansPerSecond float32 `yaml:"radians_per_second" toml:"radians_per_second"`
	ShowGridLines    bool    `yaml:"show_grid_lines" toml:"show_grid_lines"`
	ShowFPS          bool    `yaml:"show_fps" toml:"show_fps"`
}

// TessellationConfig overrides the mesh resolutions of the variant. Zero
// fields keep the variant defaults.
type TessellationConfig struct {
	Cylinder tessellate.Resolution `yaml:"cylinder" toml:"cylinder"`
	Grid     tessellate.Resolution `yaml:"grid" toml:"grid"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir" toml:"dir"`
	Format string `yaml:"format" toml:"format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			VSync:         true,
			Multisampling: false,
			LineWidth:     1.5,
		},
		Demo: DemoConfig{
			Variant:          "bettergrid",
			RadiansPerSecond: 0.5,
			ShowGridLines:    true,
		},
		Screenshots: ScreenshotConfig{
			Dir:    "screenshots",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if c.Graphics.Width < 0 || c.Graphics.Height < 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Demo.RadiansPerSecond < 0 {
		return fmt.Errorf("radians_per_second must not be negative, got %v", c.Demo.RadiansPerSecond)
	}
	for name, res := range map[string]tessellate.Resolution{
		"cylinder": c.Tessellation.Cylinder,
		"grid":     c.Tessellation.Grid,
	} {
		if res.Rows < 0 || res.Cols < 0 {
			return fmt.Errorf("invalid %s resolution %s", name, res)
		}
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}
