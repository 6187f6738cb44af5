package app

import (
	"flag"
	"fmt"
	"strings"

	"starfall/internal/game"
)

// kvList collects repeatable key=value flags.
type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not in key=value form", value)
	}
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters shared by the launchers.
type Config struct {
	Scale      int
	TPS        int
	Seed       int64
	ConfigPath string
	Width      float64
	Height     float64
	Overrides  kvList
	DumpConfig bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 1, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for enemy spawns (0 keeps the config seed)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "TOML file with game settings")
	fs.Float64Var(&c.Width, "width", c.Width, "field width, capped at max_width (0 keeps the config value)")
	fs.Float64Var(&c.Height, "height", c.Height, "field height (0 keeps the config value)")
	fs.Var(&c.Overrides, "set", "game setting override in key=value form (repeatable)")
	fs.BoolVar(&c.DumpConfig, "dump-config", c.DumpConfig, "print the resolved game settings as TOML and exit")
}

// GameConfig resolves the game settings: defaults, then the config file, then
// -set overrides, then the explicit size and seed flags.
func (c *Config) GameConfig() (game.Config, error) {
	cfg := game.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := game.LoadFile(c.ConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	overrides := make(map[string]string, len(c.Overrides))
	for _, kv := range c.Overrides {
		parts := strings.SplitN(kv, "=", 2)
		overrides[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	game.ApplyMap(&cfg, overrides)

	if c.Width > 0 {
		cfg.Width = c.Width
	}
	if c.Height > 0 {
		cfg.Height = c.Height
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
