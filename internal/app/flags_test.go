package app

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"starfall/internal/game"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cfg
}

func TestGameConfigDefaults(t *testing.T) {
	got, err := parse(t).GameConfig()
	if err != nil {
		t.Fatalf("GameConfig: %v", err)
	}
	if got != game.DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestGameConfigLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	if err := os.WriteFile(path, []byte("enemy_count = 4\nkill_score = 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := parse(t,
		"-config", path,
		"-set", "kill_score=20",
		"-set", "lives=1",
		"-width", "1200",
		"-height", "400",
		"-seed", "5",
	)
	got, err := cfg.GameConfig()
	if err != nil {
		t.Fatalf("GameConfig: %v", err)
	}
	if got.EnemyCount != 4 {
		t.Fatalf("file setting lost, enemy_count=%d", got.EnemyCount)
	}
	if got.KillScore != 20 || got.InitialLives != 1 {
		t.Fatalf("-set should win over the file: kill_score=%d lives=%d", got.KillScore, got.InitialLives)
	}
	if got.Width != 800 || got.Height != 400 {
		t.Fatalf("expected 800x400 after capping, got %fx%f", got.Width, got.Height)
	}
	if got.Seed != 5 {
		t.Fatalf("expected seed 5, got %d", got.Seed)
	}
}

func TestOverrideRequiresKeyValue(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-set", "lives"}); err == nil {
		t.Fatal("expected a parse error for a bare key")
	}
}

func TestGameConfigRejectsNarrowField(t *testing.T) {
	_, err := parse(t, "-width", "50").GameConfig()
	if !errors.Is(err, game.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
