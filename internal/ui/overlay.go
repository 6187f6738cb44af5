//go:build ebiten

package ui

import (
	"image/color"

	"starfall/internal/core"
	"starfall/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	playerBox = color.RGBA{R: 60, G: 255, B: 120, A: 200}
	enemyBox  = color.RGBA{R: 255, G: 200, B: 40, A: 200}
	bulletBox = color.RGBA{R: 255, G: 60, B: 60, A: 200}
)

// Overlay draws collision boxes on top of the sprites. Key 1 toggles it.
type Overlay struct {
	scale float64
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale float64) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, snap game.Snapshot) {
	if !o.show {
		return
	}
	o.drawBox(screen, snap.Player.Rect(), playerBox)
	for _, e := range snap.Enemies {
		o.drawBox(screen, e.Rect(), enemyBox)
	}
	for _, b := range snap.Bullets {
		o.drawBox(screen, b.Rect(), bulletBox)
	}
}

func (o *Overlay) drawBox(screen *ebiten.Image, r core.Rect, c color.Color) {
	x, y := r.X*o.scale, r.Y*o.scale
	w, h := r.W*o.scale, r.H*o.scale
	o.fill(screen, x, y, w, 1, c)
	o.fill(screen, x, y+h-1, w, 1, c)
	o.fill(screen, x, y, 1, h, c)
	o.fill(screen, x+w-1, y, 1, h, c)
}

func (o *Overlay) fill(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}
