package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 0 || cfg.Graphics.Height != 0 {
		t.Errorf("expected variant-sized window by default, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test demo defaults
	if cfg.Demo.Variant != "bettergrid" {
		t.Errorf("expected variant 'bettergrid', got %s", cfg.Demo.Variant)
	}
	if cfg.Demo.RadiansPerSecond != 0.5 {
		t.Errorf("expected 0.5 rad/s, got %f", cfg.Demo.RadiansPerSecond)
	}

	// Test screenshot defaults
	if cfg.Screenshots.Format != "png" {
		t.Errorf("expected png screenshots, got %s", cfg.Screenshots.Format)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  multisampling: true

demo:
  variant: "gridless"
  radians_per_second: 1.25
  show_fps: true

tessellation:
  cylinder:
    rows: 12
    cols: 48

screenshots:
  format: "bmp"

logging:
  level: "debug"
  log_file: "distortion.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if !cfg.Graphics.Multisampling {
		t.Error("expected multisampling to be true")
	}
	if cfg.Demo.Variant != "gridless" {
		t.Errorf("expected variant 'gridless', got %s", cfg.Demo.Variant)
	}
	if cfg.Demo.RadiansPerSecond != 1.25 {
		t.Errorf("expected 1.25 rad/s, got %f", cfg.Demo.RadiansPerSecond)
	}
	if cfg.Tessellation.Cylinder.Rows != 12 || cfg.Tessellation.Cylinder.Cols != 48 {
		t.Errorf("expected cylinder 12x48, got %s", cfg.Tessellation.Cylinder)
	}
	if cfg.Screenshots.Format != "bmp" {
		t.Errorf("expected bmp, got %s", cfg.Screenshots.Format)
	}
	// Untouched keys keep their defaults
	if cfg.Screenshots.Dir != "screenshots" {
		t.Errorf("expected default screenshot dir, got %s", cfg.Screenshots.Dir)
	}
	if cfg.Logging.LogFile != "distortion.log" {
		t.Errorf("expected log file 'distortion.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
[graphics]
width = 800
line_width = 1.0

[demo]
variant = "original"

[tessellation.grid]
rows = 10
cols = 18
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.LineWidth != 1.0 {
		t.Errorf("expected line width 1.0, got %f", cfg.Graphics.LineWidth)
	}
	if cfg.Demo.Variant != "original" {
		t.Errorf("expected variant 'original', got %s", cfg.Demo.Variant)
	}
	if cfg.Tessellation.Grid.Rows != 10 || cfg.Tessellation.Grid.Cols != 18 {
		t.Errorf("expected grid 10x18, got %s", cfg.Tessellation.Grid)
	}
	if !cfg.Graphics.VSync {
		t.Error("vsync default should survive a partial TOML file")
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative width", func(c *Config) { c.Graphics.Width = -1 }},
		{"negative rate", func(c *Config) { c.Demo.RadiansPerSecond = -0.5 }},
		{"negative grid rows", func(c *Config) { c.Tessellation.Grid.Rows = -3 }},
		{"unknown level", func(c *Config) { c.Logging.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// A TOML file in the working directory is found
	tomlPath := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(tomlPath, []byte("[graphics]\nwidth = 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path != "./config.toml" {
		t.Errorf("expected ./config.toml, got %q", path)
	}

	// YAML wins over TOML in the same directory
	yamlPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(yamlPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path != "./config.yaml" {
		t.Errorf("expected ./config.yaml, got %q", path)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Demo.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "variant flag",
			setup: func() { *flagVariant = "cylinders" },
			verify: func(cfg *Config) {
				if cfg.Demo.Variant != "cylinders" {
					t.Errorf("expected variant cylinders, got %s", cfg.Demo.Variant)
				}
			},
			teardown: func() { *flagVariant = "" },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
demo:
  variant: original
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	// Height and variant come from the file
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
	if cfg.Demo.Variant != "original" {
		t.Errorf("expected variant original from file, got %s", cfg.Demo.Variant)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			cfg := Default()
			cfg.Demo.Variant = "gridless"
			cfg.Tessellation.Cylinder.Rows = 16
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("SaveTo: %v", err)
			}

			loaded := Default()
			if err := loadFromFile(loaded, path); err != nil {
				t.Fatalf("loading saved config: %v", err)
			}
			if loaded.Demo.Variant != "gridless" {
				t.Errorf("expected variant gridless, got %s", loaded.Demo.Variant)
			}
			if loaded.Tessellation.Cylinder.Rows != 16 {
				t.Errorf("expected cylinder rows 16, got %d", loaded.Tessellation.Cylinder.Rows)
			}
		})
	}
}
