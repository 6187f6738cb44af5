//go:build ebiten

package render

import (
	"image/color"

	"starfall/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

// BulletColor is the fill used for projectiles.
var BulletColor = color.RGBA{R: 255, A: 255}

// Painter draws a session snapshot with the procedural sprites scaled to each
// entity's bounding box.
type Painter struct {
	ship      *ebiten.Image
	asteroids [2]*ebiten.Image
	bullet    *ebiten.Image
}

// NewPainter uploads the sprite bitmaps.
func NewPainter() *Painter {
	return &Painter{
		ship: spriteImage(Ship),
		asteroids: [2]*ebiten.Image{
			spriteImage(Asteroid(game.VariantA)),
			spriteImage(Asteroid(game.VariantB)),
		},
		bullet: bulletImage(),
	}
}

func spriteImage(s Sprite) *ebiten.Image {
	w, h := s.Size()
	img := ebiten.NewImage(w, h)
	img.WritePixels(s.RGBA())
	return img
}

func bulletImage() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.WritePixels(BulletPixels(1, 1, BulletColor))
	return img
}

// Draw paints every entity of snap onto dst. scale converts field units to
// screen pixels.
func (p *Painter) Draw(dst *ebiten.Image, snap game.Snapshot, scale float64) {
	pl := snap.Player
	p.blit(dst, p.ship, pl.X, pl.Y, pl.W, pl.H, scale)
	for _, e := range snap.Enemies {
		p.blit(dst, p.asteroids[int(e.Variant)&1], e.X, e.Y, e.W, e.H, scale)
	}
	for _, b := range snap.Bullets {
		p.blit(dst, p.bullet, b.X, b.Y, b.W, b.H, scale)
	}
}

func (p *Painter) blit(dst, img *ebiten.Image, x, y, w, h, scale float64) {
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(iw)*scale, h/float64(ih)*scale)
	op.GeoM.Translate(x*scale, y*scale)
	dst.DrawImage(img, op)
}
