package tty

import (
	"context"
	"strings"
	"testing"
	"time"

	"starfall/internal/core"
	"starfall/internal/game"

	"github.com/gdamore/tcell/v2"
)

func TestRasterizeLayers(t *testing.T) {
	grid := core.NewByteGrid(8, 6)
	snap := game.Snapshot{
		Width:  80,
		Height: 60,
		Player: game.Player{X: 30, Y: 50, W: 20, H: 10},
		Enemies: []game.Enemy{
			{X: 0, Y: 0, W: 10, H: 10, Variant: game.VariantA},
			{X: 70, Y: 0, W: 10, H: 10, Variant: game.VariantB},
			{X: 30, Y: 45, W: 10, H: 10},
		},
		Bullets: []game.Bullet{{X: 50, Y: 20, W: 1, H: 10}},
	}
	Rasterize(grid, snap)

	checks := []struct {
		x, y int
		want uint8
	}{
		{0, 0, CellEnemyA},
		{7, 0, CellEnemyB},
		{5, 2, CellBullet},
		{3, 5, CellPlayer},
		{4, 5, CellPlayer},
		{3, 4, CellEnemyA},
		{2, 2, CellEmpty},
	}
	for _, c := range checks {
		if got := grid.At(c.x, c.y); got != c.want {
			t.Fatalf("cell (%d,%d)=%d, expected %d", c.x, c.y, got, c.want)
		}
	}
}

func TestKeyCommand(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		cmd  game.Command
		ok   bool
		quit bool
	}{
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), game.Move(game.DirLeft), true, false},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), game.Move(game.DirRight), true, false},
		{"fire", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), game.Fire(), true, false},
		{"reset", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), game.Reset(), true, false},
		{"quit", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), game.Command{}, false, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), game.Command{}, false, true},
		{"unknown", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), game.Command{}, false, false},
	}
	for _, tc := range cases {
		cmd, ok, quit := keyCommand(tc.ev)
		if cmd != tc.cmd || ok != tc.ok || quit != tc.quit {
			t.Fatalf("%s: got (%+v,%v,%v), expected (%+v,%v,%v)", tc.name, cmd, ok, quit, tc.cmd, tc.ok, tc.quit)
		}
	}
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func TestDrawShowsHUDAndBanner(t *testing.T) {
	screen := newScreen(t)
	session := game.NewSession(game.DefaultConfig(), nil)
	f := New(screen, session, 60)

	f.draw()
	if r, _, _, _ := screen.GetContent(0, 0); r != 'S' {
		t.Fatalf("expected HUD at the top-left, got %q", r)
	}

	found := false
	for y := hudRows; y < 24 && !found; y++ {
		for x := 0; x < 80; x++ {
			if r, _, _, _ := screen.GetContent(x, y); r == glyphs[CellPlayer].r {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatal("player glyph not drawn")
	}

	session.OnReset()
	for session.Lives() >= 0 {
		enemies := session.Enemies()
		if len(enemies) == 0 {
			t.Fatal("ran out of enemies before losing")
		}
		session.Tick()
	}
	f.draw()
	row := ""
	for x := 0; x < 80; x++ {
		r, _, _, _ := screen.GetContent(x, hudRows+23/2-1)
		row += string(r)
	}
	if want := game.StateGameOver.Banner(); !strings.Contains(row, want) {
		t.Fatalf("banner row %q does not contain %q", row, want)
	}
}

func TestRunStopsOnQuitKey(t *testing.T) {
	screen := newScreen(t)
	session := game.NewSession(game.DefaultConfig(), nil)
	f := New(screen, session, 60)

	screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := f.Run(ctx); err != nil {
		t.Fatalf("Run returned %v, expected nil after quit", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newScreen(t)
	f := New(screen, game.NewSession(game.DefaultConfig(), nil), 60)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := f.Run(ctx); err != context.DeadlineExceeded {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
