package render

import (
	"image/color"
	"slices"
	"testing"

	"starfall/internal/game"
)

func TestFillPaletteClampsIndex(t *testing.T) {
	buf := make([]byte, 8)
	palette := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}}
	fillPaletteRGBA(buf, []uint8{0, 9}, palette)
	want := []byte{1, 0, 0, 255, 0, 2, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v, expected %v", buf, want)
	}

	fillPaletteRGBA(buf, []uint8{0, 1}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not cleared", i)
		}
	}
}

func TestSpritesAreRectangular(t *testing.T) {
	for _, s := range []Sprite{Ship, Asteroid(game.VariantA), Asteroid(game.VariantB)} {
		w, h := s.Size()
		if w == 0 || h == 0 {
			t.Fatalf("%s has no pixels", s.Name)
		}
		for y, row := range s.Rows {
			if len(row) != w {
				t.Fatalf("%s row %d has width %d, expected %d", s.Name, y, len(row), w)
			}
		}
		for i, c := range s.Cells() {
			if int(c) >= len(s.Palette) {
				t.Fatalf("%s cell %d uses index %d outside palette", s.Name, i, c)
			}
		}
		if got := len(s.RGBA()); got != 4*w*h {
			t.Fatalf("%s buffer size %d, expected %d", s.Name, got, 4*w*h)
		}
	}
}

func TestAsteroidVariantsDiffer(t *testing.T) {
	if Asteroid(game.VariantA).Name == Asteroid(game.VariantB).Name {
		t.Fatal("variants must map to distinct sprites")
	}
}

func TestBulletPixelsSolid(t *testing.T) {
	buf := BulletPixels(2, 3, color.RGBA{R: 255, A: 255})
	if len(buf) != 24 {
		t.Fatalf("expected 24 bytes, got %d", len(buf))
	}
	for i := 0; i < len(buf); i += 4 {
		if buf[i] != 255 || buf[i+3] != 255 {
			t.Fatalf("pixel %d not red: %v", i/4, buf[i:i+4])
		}
	}
	if BulletPixels(0, 3, color.White) != nil {
		t.Fatal("empty bullet should have no pixels")
	}
}
