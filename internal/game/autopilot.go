package game

import "math"

// Autopilot is a simple steering policy for headless runs. It chases the
// lowest enemy and fires when roughly underneath it.
type Autopilot struct {
	// FireEvery is the minimum number of ticks between shots.
	FireEvery int

	cooldown int
}

// NewAutopilot returns an autopilot firing at most every fireEvery ticks.
func NewAutopilot(fireEvery int) *Autopilot {
	if fireEvery < 1 {
		fireEvery = 1
	}
	return &Autopilot{FireEvery: fireEvery}
}

// Commands decides this tick's input from a snapshot.
func (a *Autopilot) Commands(snap Snapshot) []Command {
	if snap.State.Terminal() {
		return nil
	}
	target, ok := lowestEnemy(snap.Enemies)
	if !ok {
		return nil
	}

	var cmds []Command
	muzzle := snap.Player.X + snap.Player.W/2
	aim := target.X + target.W/2
	if gap := aim - muzzle; math.Abs(gap) > snap.Player.Speed {
		d := DirRight
		if gap < 0 {
			d = DirLeft
		}
		cmds = append(cmds, Move(d))
	}

	if a.cooldown > 0 {
		a.cooldown--
	}
	if a.cooldown == 0 && math.Abs(aim-muzzle) < target.W/2 {
		cmds = append(cmds, Fire())
		a.cooldown = a.FireEvery
	}
	return cmds
}

// Drive applies this tick's commands directly to s.
func (a *Autopilot) Drive(s *Session) {
	for _, cmd := range a.Commands(s.Snapshot()) {
		s.Apply(cmd)
	}
}

func lowestEnemy(enemies []Enemy) (Enemy, bool) {
	best := -1
	for i, e := range enemies {
		if best < 0 || e.Y > enemies[best].Y {
			best = i
		}
	}
	if best < 0 {
		return Enemy{}, false
	}
	return enemies[best], true
}

// RunResult summarises one autopilot session.
type RunResult struct {
	Seed  int64
	State State
	Score int
	Lives int
	Ticks uint64
	Kills int
	Hits  int
}

// RunAutopilot plays a fresh session seeded with cfg.Seed until it reaches a
// terminal state or maxTicks elapse.
func RunAutopilot(cfg Config, fireEvery, maxTicks int) RunResult {
	s := NewSession(cfg, nil)
	a := NewAutopilot(fireEvery)
	for i := 0; i < maxTicks && !s.State().Terminal(); i++ {
		a.Drive(s)
		s.Tick()
	}
	snap := s.Snapshot()
	return RunResult{
		Seed:  s.cfg.Seed,
		State: snap.State,
		Score: snap.Score,
		Lives: snap.Lives,
		Ticks: snap.Tick,
		Kills: snap.Kills,
		Hits:  snap.Hits,
	}
}
