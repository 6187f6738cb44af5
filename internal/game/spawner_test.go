package game

import (
	"testing"

	rng "starfall/pkg/core"
)

func TestSpawnerResetBatch(t *testing.T) {
	cfg := DefaultConfig()
	sp := NewSpawner(&cfg, rng.NewRNG(1))

	enemies := []Enemy{{}, {}}
	bullets := []Bullet{{}, {}, {}}
	sp.Reset(&enemies, &bullets)

	if len(enemies) != 8 {
		t.Fatalf("expected 8 enemies, got %d", len(enemies))
	}
	if len(bullets) != 0 {
		t.Fatalf("expected bullets cleared, got %d", len(bullets))
	}
}

func TestSpawnerPlacementRanges(t *testing.T) {
	cfg := DefaultConfig()
	sp := NewSpawner(&cfg, rng.NewRNG(42))
	seen := map[Variant]int{}
	for i := 0; i < 2000; i++ {
		e := sp.Spawn()
		if e.X < 0 || e.X > cfg.Width-e.W {
			t.Fatalf("x=%f outside [0,%f]", e.X, cfg.Width-e.W)
		}
		if e.Y > 0 || e.Y <= -cfg.EnemySpawnDepth {
			t.Fatalf("y=%f outside (-%f,0]", e.Y, cfg.EnemySpawnDepth)
		}
		if e.Speed < cfg.EnemySpeedMin || e.Speed >= cfg.EnemySpeedMax {
			t.Fatalf("speed=%f outside [%f,%f)", e.Speed, cfg.EnemySpeedMin, cfg.EnemySpeedMax)
		}
		if e.W != cfg.EnemyWidth || e.H != cfg.EnemyHeight {
			t.Fatalf("unexpected size %fx%f", e.W, e.H)
		}
		seen[e.Variant]++
	}
	if seen[VariantA] < 800 || seen[VariantB] < 800 {
		t.Fatalf("variants should be close to 50/50, got %v", seen)
	}
}
