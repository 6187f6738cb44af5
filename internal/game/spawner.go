package game

import rng "starfall/pkg/core"

// Spawner owns the enemy creation and recycle policy.
type Spawner struct {
	cfg *Config
	src rng.Source
}

// NewSpawner returns a spawner drawing from src.
func NewSpawner(cfg *Config, src rng.Source) *Spawner {
	return &Spawner{cfg: cfg, src: src}
}

// Spawn creates a fresh enemy above the field.
func (s *Spawner) Spawn() Enemy {
	e := Enemy{W: s.cfg.EnemyWidth, H: s.cfg.EnemyHeight}
	s.Place(&e)
	return e
}

// Place redraws position, speed and variant: x in [0, W-w], y in
// (-depth, 0], speed in [min, max), variant 50/50.
func (s *Spawner) Place(e *Enemy) {
	e.X = rng.Range(s.src, 0, s.cfg.Width-e.W)
	e.Y = -s.src.Float64() * s.cfg.EnemySpawnDepth
	e.Speed = rng.Range(s.src, s.cfg.EnemySpeedMin, s.cfg.EnemySpeedMax)
	e.Variant = VariantA
	if !rng.Chance(s.src, 0.5) {
		e.Variant = VariantB
	}
}

// Reset clears both collections and fills enemies with the configured batch.
func (s *Spawner) Reset(enemies *[]Enemy, bullets *[]Bullet) {
	*bullets = (*bullets)[:0]
	*enemies = (*enemies)[:0]
	for i := 0; i < s.cfg.EnemyCount; i++ {
		*enemies = append(*enemies, s.Spawn())
	}
}
