// Package tty renders a session in a terminal through tcell.
package tty

import (
	"starfall/internal/core"
	"starfall/internal/game"
)

// Cell kinds written into the raster.
const (
	CellEmpty uint8 = iota
	CellEnemyA
	CellEnemyB
	CellBullet
	CellPlayer
)

// Rasterize scales the snapshot onto grid, one cell per terminal character.
// Later layers overwrite earlier ones: enemies, then bullets, then the player.
func Rasterize(grid *core.ByteGrid, snap game.Snapshot) {
	grid.Clear()
	if snap.Width <= 0 || snap.Height <= 0 {
		return
	}
	sx := float64(grid.W) / snap.Width
	sy := float64(grid.H) / snap.Height
	scale := func(r core.Rect) core.Rect {
		return core.Rect{X: r.X * sx, Y: r.Y * sy, W: r.W * sx, H: r.H * sy}
	}

	for _, e := range snap.Enemies {
		kind := CellEnemyA
		if e.Variant == game.VariantB {
			kind = CellEnemyB
		}
		grid.FillRect(scale(e.Rect()), kind)
	}
	for _, b := range snap.Bullets {
		grid.FillRect(scale(b.Rect()), CellBullet)
	}
	grid.FillRect(scale(snap.Player.Rect()), CellPlayer)
}
