//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"starfall/internal/core"
	"starfall/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

var (
	hudText    = color.White
	bannerText = color.RGBA{R: 255, A: 255}
	panelFill  = color.RGBA{R: 16, G: 16, B: 20, A: 200}
)

const (
	lineHeight = 16
	hudMargin  = 10
	panelWidth = 220
)

// HUD draws score and lives, the terminal banners and an optional parameter
// panel toggled with Tab.
type HUD struct {
	provider  parameterProvider
	snapshot  core.ParameterSnapshot
	showPanel bool
	panel     *ebiten.Image
}

// NewHUD constructs a HUD reading parameters from provider.
func NewHUD(provider parameterProvider) *HUD {
	return &HUD{provider: provider}
}

// Update refreshes the cached parameter snapshot and handles the panel toggle.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.showPanel = !h.showPanel
	}
	if h.showPanel && h.provider != nil {
		h.snapshot = h.provider.Parameters()
	}
}

// Draw paints the HUD for snap onto screen.
func (h *HUD) Draw(screen *ebiten.Image, snap game.Snapshot) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	text.Draw(screen, fmt.Sprintf("Score: %d", snap.Score), face, hudMargin, 2*hudMargin, hudText)
	text.Draw(screen, fmt.Sprintf("Lives: %d", snap.Lives), face, hudMargin, 2*hudMargin+lineHeight, hudText)

	if h.showPanel {
		h.drawPanel(screen)
	}

	if banner := snap.State.Banner(); banner != "" {
		b := screen.Bounds()
		cx, cy := b.Dx()/2, b.Dy()/2
		drawCentered(screen, banner, cx, cy-lineHeight, bannerText)
		drawCentered(screen, game.RestartHint, cx, cy+lineHeight, bannerText)
	}
}

func (h *HUD) drawPanel(screen *ebiten.Image) {
	lines := 0
	for _, g := range h.snapshot.Groups {
		lines += 1 + len(g.Params)
	}
	height := (lines+1)*lineHeight + hudMargin
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(panelWidth, height)
	}
	h.panel.Fill(panelFill)

	y := lineHeight
	for _, g := range h.snapshot.Groups {
		text.Draw(h.panel, g.Name, basicfont.Face7x13, hudMargin, y, bannerText)
		y += lineHeight
		for _, p := range g.Params {
			text.Draw(h.panel, fmt.Sprintf("%-16s %s", p.Label, p.Value), basicfont.Face7x13, hudMargin, y, hudText)
			y += lineHeight
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx()-panelWidth-hudMargin), float64(hudMargin))
	screen.DrawImage(h.panel, op)
}

func drawCentered(screen *ebiten.Image, s string, cx, cy int, c color.Color) {
	w := text.BoundString(basicfont.Face7x13, s).Dx()
	text.Draw(screen, s, basicfont.Face7x13, cx-w/2, cy, c)
}
