//go:build ebiten

package app

import (
	"image/color"
	"time"

	"starfall/internal/game"
	"starfall/internal/render"
	"starfall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var background = color.Black

// Game adapts a game session to the ebiten.Game interface.
type Game struct {
	session *game.Session
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale   int
	touches []ebiten.TouchID
}

// New constructs a Game for the provided session.
func New(session *game.Session, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		session: session,
		painter: render.NewPainter(),
		hud:     ui.NewHUD(session),
		overlay: ui.NewOverlay(float64(scale)),
		scale:   scale,
	}
}

// Update maps input to session commands and advances the simulation once.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.session.OnMove(game.DirLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.session.OnMove(game.DirRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.OnFire()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.OnReset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Reseed(time.Now().UnixNano())
	}
	g.steer()

	g.hud.Update()
	g.overlay.Update()

	g.session.Tick()
	return nil
}

// steer moves the ship toward a pressed mouse button or the first touch.
func (g *Game) steer() {
	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	if len(g.touches) > 0 {
		x, _ := ebiten.TouchPosition(g.touches[0])
		g.session.OnSteer(float64(x) / float64(g.scale))
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		g.session.OnSteer(float64(x) / float64(g.scale))
	}
}

// Draw renders the current session state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	snap := g.session.Snapshot()
	if !snap.State.Terminal() {
		g.painter.Draw(screen, snap, float64(g.scale))
		g.overlay.Draw(screen, snap)
	}
	g.hud.Draw(screen, snap)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Size()
	return s.W * g.scale, s.H * g.scale
}
