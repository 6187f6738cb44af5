package game

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig reports a configuration that cannot describe a playable field.
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds every tunable of a session. Lengths are in field units and
// speeds in field units per tick.
type Config struct {
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	MaxWidth float64 `toml:"max_width"`

	PlayerWidth  float64 `toml:"player_width"`
	PlayerHeight float64 `toml:"player_height"`
	PlayerSpeed  float64 `toml:"player_speed"`
	InitialLives int     `toml:"initial_lives"`

	BulletWidth  float64 `toml:"bullet_width"`
	BulletHeight float64 `toml:"bullet_height"`
	BulletSpeed  float64 `toml:"bullet_speed"`

	EnemyWidth      float64 `toml:"enemy_width"`
	EnemyHeight     float64 `toml:"enemy_height"`
	EnemySpeedMin   float64 `toml:"enemy_speed_min"`
	EnemySpeedMax   float64 `toml:"enemy_speed_max"`
	EnemySpawnDepth float64 `toml:"enemy_spawn_depth"`
	EnemyCount      int     `toml:"enemy_count"`

	KillScore int `toml:"kill_score"`

	// FreezeOnTerminal stops entity updates once GameOver or Win is reached.
	FreezeOnTerminal bool `toml:"freeze_on_terminal"`

	Seed int64 `toml:"seed"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    800,
		Height:   600,
		MaxWidth: 800,

		PlayerWidth:  100,
		PlayerHeight: 100,
		PlayerSpeed:  5,
		InitialLives: 3,

		BulletWidth:  4,
		BulletHeight: 10,
		BulletSpeed:  10,

		EnemyWidth:      50,
		EnemyHeight:     50,
		EnemySpeedMin:   1,
		EnemySpeedMax:   3,
		EnemySpawnDepth: 100,
		EnemyCount:      8,

		KillScore: 10,

		FreezeOnTerminal: true,
		Seed:             1337,
	}
}

// Normalize caps the field width at MaxWidth and repairs inverted ranges.
func (c *Config) Normalize() {
	if c.MaxWidth > 0 && c.Width > c.MaxWidth {
		c.Width = c.MaxWidth
	}
	if c.EnemySpeedMax < c.EnemySpeedMin {
		c.EnemySpeedMax = c.EnemySpeedMin
	}
	if c.EnemySpawnDepth < 0 {
		c.EnemySpawnDepth = -c.EnemySpawnDepth
	}
	if c.BulletSpeed < 0 {
		c.BulletSpeed = -c.BulletSpeed
	}
	if c.InitialLives < 0 {
		c.InitialLives = 0
	}
	if c.EnemyCount < 0 {
		c.EnemyCount = 0
	}
}

// Validate reports whether the config describes a usable field.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: field %gx%g", ErrInvalidConfig, c.Width, c.Height)
	case c.PlayerWidth <= 0 || c.PlayerHeight <= 0:
		return fmt.Errorf("%w: player %gx%g", ErrInvalidConfig, c.PlayerWidth, c.PlayerHeight)
	case c.EnemyWidth <= 0 || c.EnemyHeight <= 0:
		return fmt.Errorf("%w: enemy %gx%g", ErrInvalidConfig, c.EnemyWidth, c.EnemyHeight)
	case c.BulletWidth <= 0 || c.BulletHeight <= 0:
		return fmt.Errorf("%w: bullet %gx%g", ErrInvalidConfig, c.BulletWidth, c.BulletHeight)
	case c.PlayerWidth > c.Width:
		return fmt.Errorf("%w: player wider than field", ErrInvalidConfig)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	ApplyMap(&c, cfg)
	return c
}

// ApplyMap overlays flag-style key/value pairs onto c.
func ApplyMap(c *Config, cfg map[string]string) {
	if cfg == nil {
		return
	}
	positive := []struct {
		key string
		dst *float64
	}{
		{"w", &c.Width},
		{"width", &c.Width},
		{"h", &c.Height},
		{"height", &c.Height},
		{"max_width", &c.MaxWidth},
		{"player_width", &c.PlayerWidth},
		{"player_height", &c.PlayerHeight},
		{"player_speed", &c.PlayerSpeed},
		{"bullet_width", &c.BulletWidth},
		{"bullet_height", &c.BulletHeight},
		{"bullet_speed", &c.BulletSpeed},
		{"enemy_width", &c.EnemyWidth},
		{"enemy_height", &c.EnemyHeight},
	}
	for _, f := range positive {
		if v, ok := cfg[f.key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
				*f.dst = parsed
			}
		}
	}
	nonNegative := []struct {
		key string
		dst *float64
	}{
		{"enemy_speed_min", &c.EnemySpeedMin},
		{"enemy_speed_max", &c.EnemySpeedMax},
		{"enemy_spawn_depth", &c.EnemySpawnDepth},
	}
	for _, f := range nonNegative {
		if v, ok := cfg[f.key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
				*f.dst = parsed
			}
		}
	}
	counts := []struct {
		key string
		dst *int
	}{
		{"lives", &c.InitialLives},
		{"initial_lives", &c.InitialLives},
		{"enemies", &c.EnemyCount},
		{"enemy_count", &c.EnemyCount},
		{"kill_score", &c.KillScore},
	}
	for _, f := range counts {
		if v, ok := cfg[f.key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*f.dst = parsed
			}
		}
	}
	if v, ok := cfg["freeze_on_terminal"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.FreezeOnTerminal = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	c.Normalize()
}

// LoadFile decodes a TOML file over the default configuration. Keys missing
// from the file keep their defaults.
func LoadFile(path string) (Config, error) {
	c := DefaultConfig()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return c, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("load config %s: %w", path, err)
	}
	return c, nil
}

// WriteTOML encodes the config as TOML.
func (c Config) WriteTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
