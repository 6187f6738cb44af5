package game

import (
	"sync"

	"starfall/internal/core"
	rng "starfall/pkg/core"
)

// Session owns the whole simulation state: the player, both collections,
// score, lives and the current phase. Tick and the On* commands must be
// called from one goroutine; other goroutines go through Enqueue.
type Session struct {
	cfg     Config
	src     rng.Source
	spawner *Spawner

	player  Player
	enemies []Enemy
	bullets []Bullet
	score   int
	state   State

	tick  uint64
	kills int
	hits  int

	resolver resolver

	mu      sync.Mutex
	pending []Command
}

// NewSession builds a session and performs the initial reset. A nil src
// seeds a PCG stream from cfg.Seed.
func NewSession(cfg Config, src rng.Source) *Session {
	cfg.Normalize()
	if src == nil {
		src = rng.NewRNG(cfg.Seed)
	}
	s := &Session{cfg: cfg, src: src}
	s.spawner = NewSpawner(&s.cfg, s.src)
	s.OnReset()
	return s
}

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Size returns the field dimensions rounded to whole units.
func (s *Session) Size() core.Size {
	return core.Size{W: int(s.cfg.Width), H: int(s.cfg.Height)}
}

// frozen reports whether ticks and play commands are suspended.
func (s *Session) frozen() bool {
	return s.cfg.FreezeOnTerminal && s.state.Terminal()
}

// Tick advances the simulation by one frame: queued commands, enemy and
// bullet movement, collision resolution, then the terminal transitions.
func (s *Session) Tick() {
	s.drain()
	if s.frozen() {
		return
	}
	s.tick++

	for i := range s.enemies {
		if s.enemies[i].Update(s.cfg.Height) {
			s.spawner.Place(&s.enemies[i])
		}
	}

	live := s.bullets[:0]
	for _, b := range s.bullets {
		b.Update()
		if b.Gone() {
			continue
		}
		live = append(live, b)
	}
	s.bullets = live

	c := s.resolver.resolve(&s.player, &s.enemies, &s.bullets)
	s.kills += c.Kills
	s.hits += c.Hits
	s.score += c.Kills * s.cfg.KillScore

	s.state = nextState(s.state, s.player.Lives, len(s.enemies))
}

// OnMove shifts the player one step. DirNone is ignored.
func (s *Session) OnMove(d Direction) {
	if s.frozen() {
		return
	}
	s.player.Move(d, s.cfg.Width)
}

// OnSteer moves the player one step toward pointer x, the way a touch on
// either side of the ship does.
func (s *Session) OnSteer(x float64) {
	if x < s.player.X+s.player.W/2 {
		s.OnMove(DirLeft)
		return
	}
	s.OnMove(DirRight)
}

// OnFire launches a bullet from the player's muzzle.
func (s *Session) OnFire() {
	if s.frozen() {
		return
	}
	x, y := s.player.Muzzle(s.cfg.BulletWidth)
	s.bullets = append(s.bullets, Bullet{
		X:     x,
		Y:     y,
		W:     s.cfg.BulletWidth,
		H:     s.cfg.BulletHeight,
		Speed: -s.cfg.BulletSpeed,
	})
}

// OnReset restores the player, clears the score and respawns the enemy batch.
// It keeps the current random stream.
func (s *Session) OnReset() {
	s.player = Player{
		W:     s.cfg.PlayerWidth,
		H:     s.cfg.PlayerHeight,
		Speed: s.cfg.PlayerSpeed,
		Lives: s.cfg.InitialLives,
	}
	s.player.X = s.cfg.Width/2 - s.player.W/2
	s.player.Y = s.cfg.Height - s.player.H
	s.score = 0
	s.tick = 0
	s.kills = 0
	s.hits = 0
	s.spawner.Reset(&s.enemies, &s.bullets)
	s.state = StatePlaying
}

// Reseed replaces the random stream with a fresh one and resets.
func (s *Session) Reseed(seed int64) {
	s.cfg.Seed = seed
	s.src = rng.NewRNG(seed)
	s.spawner = NewSpawner(&s.cfg, s.src)
	s.OnReset()
}

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// Enemies returns a copy of the enemy collection.
func (s *Session) Enemies() []Enemy { return append([]Enemy(nil), s.enemies...) }

// Bullets returns a copy of the bullet collection.
func (s *Session) Bullets() []Bullet { return append([]Bullet(nil), s.bullets...) }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the player's remaining lives.
func (s *Session) Lives() int { return s.player.Lives }

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Snapshot is a read-only copy of the session for one rendered frame.
type Snapshot struct {
	Width, Height float64

	Player  Player
	Enemies []Enemy
	Bullets []Bullet
	Score   int
	Lives   int
	State   State

	Tick  uint64
	Kills int
	Hits  int
}

// Snapshot copies the state a renderer needs after Tick.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Width:   s.cfg.Width,
		Height:  s.cfg.Height,
		Player:  s.player,
		Enemies: s.Enemies(),
		Bullets: s.Bullets(),
		Score:   s.score,
		Lives:   s.player.Lives,
		State:   s.state,
		Tick:    s.tick,
		Kills:   s.kills,
		Hits:    s.hits,
	}
}
