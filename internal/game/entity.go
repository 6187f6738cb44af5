package game

import (
	"strings"

	"starfall/internal/core"
)

// Direction is a horizontal move command.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// ParseDirection maps "left"/"right" to a Direction. Anything else yields
// DirNone, which every consumer treats as a no-op.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return DirLeft
	case "right":
		return DirRight
	}
	return DirNone
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// Variant selects one of the two enemy sprites.
type Variant uint8

const (
	VariantA Variant = iota
	VariantB
)

// Player is the ship at the bottom of the field.
type Player struct {
	X, Y  float64
	W, H  float64
	Speed float64
	Lives int
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.Rect { return core.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H} }

// Move shifts the player by one step, clamped to [0, fieldW-W].
func (p *Player) Move(d Direction, fieldW float64) {
	switch d {
	case DirLeft:
		p.X -= p.Speed
	case DirRight:
		p.X += p.Speed
	default:
		return
	}
	p.X = core.Clamp(p.X, 0, fieldW-p.W)
}

// Muzzle returns the spawn point for a bullet of width bw: horizontally
// centred on the ship, level with its top edge.
func (p Player) Muzzle(bw float64) (float64, float64) {
	return p.X + p.W/2 - bw/2, p.Y
}

// Enemy is a descending object. Speed is fixed until the next recycle.
type Enemy struct {
	X, Y    float64
	W, H    float64
	Speed   float64
	Variant Variant
}

// Rect returns the enemy's bounding box.
func (e Enemy) Rect() core.Rect { return core.Rect{X: e.X, Y: e.Y, W: e.W, H: e.H} }

// Update advances the enemy and reports whether it left the bottom of the field.
func (e *Enemy) Update(fieldH float64) bool {
	e.Y += e.Speed
	return e.Y > fieldH
}

// Bullet travels straight up. Speed is negative.
type Bullet struct {
	X, Y  float64
	W, H  float64
	Speed float64
}

// Rect returns the bullet's bounding box.
func (b Bullet) Rect() core.Rect { return core.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H} }

// Update advances the bullet. It never clamps.
func (b *Bullet) Update() { b.Y += b.Speed }

// Gone reports whether the bullet is entirely above the field.
func (b Bullet) Gone() bool { return b.Y+b.H < 0 }
