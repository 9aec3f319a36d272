package app

import (
	"flag"
	"fmt"
	"strings"

	"chrono-ghost/internal/config"
	"chrono-ghost/internal/sims/sand"
)

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later pairs win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

// Flags represents the command-line parameters shared by the launchers.
// Anything given on the command line overrides the config file.
type Flags struct {
	ConfigPath string
	Scene      string
	Script     string
	Scale      int
	TPS        int
	Seed       int64
	LogLevel   string
	Sets       KVList
}

// NewFlags returns Flags populated from the config defaults.
func NewFlags() *Flags {
	d := config.Defaults()
	return &Flags{
		Scale:    d.Window.Scale,
		TPS:      d.Window.TPS,
		Seed:     d.Sand.Seed,
		LogLevel: d.Logging.Level,
	}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "TOML session config")
	fs.StringVar(&f.Scene, "scene", f.Scene, "YAML scene painted after reset")
	fs.StringVar(&f.Script, "script", f.Script, "Lua script run after the scene")
	fs.IntVar(&f.Scale, "scale", f.Scale, "pixel scale multiplier")
	fs.IntVar(&f.TPS, "tps", f.TPS, "ticks per second")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "seed for simulation reset")
	fs.StringVar(&f.LogLevel, "log-level", f.LogLevel, "debug, info, warn or error")
	fs.Var(&f.Sets, "set", "sand parameter override in key=value form (repeatable)")
}

// Resolve loads the config file, if any, and applies the flags that were
// set explicitly on fs. Call it after fs.Parse.
func (f *Flags) Resolve(fs *flag.FlagSet) (*config.Config, error) {
	cfg := config.Defaults()
	if f.ConfigPath != "" {
		loaded, err := config.Load(f.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "scene":
			cfg.Sim.Scene = f.Scene
		case "script":
			cfg.Sim.Script = f.Script
		case "scale":
			cfg.Window.Scale = f.Scale
		case "tps":
			cfg.Window.TPS = f.TPS
		case "seed":
			cfg.Sand.Seed = f.Seed
		case "log-level":
			cfg.Logging.Level = f.LogLevel
		}
	})
	cfg.Sand = sand.ApplyMap(cfg.Sand, f.Sets.Map())

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
