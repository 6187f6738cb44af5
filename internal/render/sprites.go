package render

import (
	"image/color"

	"starfall/internal/game"
)

// Sprite is a small indexed bitmap. Rows use '.' for transparent pixels and
// digits for palette entries.
type Sprite struct {
	Name    string
	Rows    []string
	Palette []color.RGBA
}

// Size returns the bitmap dimensions.
func (s Sprite) Size() (int, int) {
	if len(s.Rows) == 0 {
		return 0, 0
	}
	return len(s.Rows[0]), len(s.Rows)
}

// Cells decodes the rows into palette indices. Short rows are padded with
// transparent pixels.
func (s Sprite) Cells() []uint8 {
	w, h := s.Size()
	cells := make([]uint8, w*h)
	for y, row := range s.Rows {
		for x := 0; x < w && x < len(row); x++ {
			ch := row[x]
			if ch >= '0' && ch <= '9' {
				cells[y*w+x] = ch - '0'
			}
		}
	}
	return cells
}

// RGBA returns the sprite as a w*h*4 pixel buffer.
func (s Sprite) RGBA() []byte {
	cells := s.Cells()
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, s.Palette)
	return buf
}

var (
	none   = color.RGBA{}
	hull   = color.RGBA{R: 200, G: 210, B: 230, A: 255}
	canopy = color.RGBA{R: 60, G: 160, B: 255, A: 255}
	flame  = color.RGBA{R: 255, G: 140, B: 40, A: 255}
	rockA  = color.RGBA{R: 130, G: 110, B: 90, A: 255}
	rockB  = color.RGBA{R: 95, G: 90, B: 100, A: 255}
	crater = color.RGBA{R: 60, G: 50, B: 45, A: 255}
)

// Ship is the player sprite.
var Ship = Sprite{
	Name: "ship",
	Rows: []string{
		".......1.......",
		"......121......",
		"......121......",
		".....11211.....",
		".....11111.....",
		"..1..11111..1..",
		"..1.1111111.1..",
		".111111111111..",
		"1111111111111.1",
		"11..1111111..11",
		"1....33.33....1",
		"......3.3......",
	},
	Palette: []color.RGBA{none, hull, canopy, flame},
}

var asteroidA = Sprite{
	Name: "asteroid-a",
	Rows: []string{
		"...1111...",
		".11111111.",
		"1112111111",
		"1111111211",
		"1111111111",
		"1121111111",
		"1111111121",
		".11111111.",
		"..111111..",
		"...1111...",
	},
	Palette: []color.RGBA{none, rockA, crater},
}

var asteroidB = Sprite{
	Name: "asteroid-b",
	Rows: []string{
		"..11111...",
		".1111111..",
		"111211111.",
		"1111111111",
		"1111112111",
		".111111111",
		"1111111111",
		"1211111121",
		".1111111..",
		"..1111....",
	},
	Palette: []color.RGBA{none, rockB, crater},
}

// Asteroid returns the sprite for an enemy variant.
func Asteroid(v game.Variant) Sprite {
	if v == game.VariantB {
		return asteroidB
	}
	return asteroidA
}

// BulletPixels returns a solid w*h bullet in the given color.
func BulletPixels(w, h int, c color.Color) []byte {
	if w <= 0 || h <= 0 {
		return nil
	}
	cells := make([]uint8, w*h)
	for i := range cells {
		cells[i] = 1
	}
	buf := make([]byte, 4*len(cells))
	fillBinaryRGBA(buf, cells, c, color.Transparent)
	return buf
}
