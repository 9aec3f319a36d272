package config

import (
	"fmt"
	"os"

	"chrono-ghost/internal/core"
	"chrono-ghost/internal/sims/sand"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Sim     SimConfig     `toml:"sim"`
	Window  WindowConfig  `toml:"window"`
	Brush   BrushConfig   `toml:"brush"`
	Sand    sand.Config   `toml:"sand"`
	Logging LoggingConfig `toml:"logging"`
}

type SimConfig struct {
	Name   string `toml:"name"`
	Scene  string `toml:"scene"`  // YAML strokes applied after reset
	Script string `toml:"script"` // Lua script run after the scene
}

type WindowConfig struct {
	Scale    int  `toml:"scale"`
	TPS      int  `toml:"tps"`
	HUDWidth int  `toml:"hud_width"`
	Sound    bool `toml:"sound"`
}

type BrushConfig struct {
	Radius   int    `toml:"radius"`
	Material string `toml:"material"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // console or json
}

// Load reads a TOML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults returns the configuration used when no file is given.
func Defaults() *Config {
	return &Config{
		Sim: SimConfig{
			Name: "sand",
		},
		Window: WindowConfig{
			Scale:    4,
			TPS:      60,
			HUDWidth: 260,
			Sound:    true,
		},
		Brush: BrushConfig{
			Radius:   3,
			Material: "sand",
		},
		Sand: sand.DefaultConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate rejects values the launchers cannot run with.
func (c *Config) Validate() error {
	if _, ok := core.Lookup(c.Sim.Name); !ok {
		return fmt.Errorf("sim.name: unknown sim %q", c.Sim.Name)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window.scale must be positive, got %d", c.Window.Scale)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS)
	}
	if c.Window.HUDWidth < 0 {
		return fmt.Errorf("window.hud_width must not be negative, got %d", c.Window.HUDWidth)
	}
	if c.Brush.Radius < 0 {
		return fmt.Errorf("brush.radius must not be negative, got %d", c.Brush.Radius)
	}
	if _, ok := sand.MaterialByName(c.Brush.Material); !ok {
		return fmt.Errorf("brush.material: unknown material %q", c.Brush.Material)
	}
	if c.Sand.Width <= 0 || c.Sand.Height <= 0 {
		return fmt.Errorf("sand: grid must be at least 1x1, got %dx%d", c.Sand.Width, c.Sand.Height)
	}
	switch c.Sand.Layout {
	case sand.LayoutBasin, sand.LayoutEmpty:
	default:
		return fmt.Errorf("sand.layout: unknown layout %q", c.Sand.Layout)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

// SandBrush resolves the configured brush for the sand world.
func (c *Config) SandBrush() sand.Brush {
	m, ok := sand.MaterialByName(c.Brush.Material)
	if !ok {
		m = sand.Sand
	}
	return sand.Brush{Radius: c.Brush.Radius, Material: m}
}
