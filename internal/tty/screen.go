package tty

import (
	"context"
	"fmt"
	"time"

	"starfall/internal/core"
	"starfall/internal/game"

	"github.com/gdamore/tcell/v2"
)

const hudRows = 1

var glyphs = [...]struct {
	r     rune
	style tcell.Style
}{
	CellEmpty:  {' ', tcell.StyleDefault},
	CellEnemyA: {'@', tcell.StyleDefault.Foreground(tcell.ColorTan)},
	CellEnemyB: {'O', tcell.StyleDefault.Foreground(tcell.ColorSilver)},
	CellBullet: {'|', tcell.StyleDefault.Foreground(tcell.ColorRed)},
	CellPlayer: {'A', tcell.StyleDefault.Foreground(tcell.ColorLightGreen).Bold(true)},
}

var (
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Frontend drives a session on a tcell screen. The screen is owned by the
// caller, which must call Init before Run and Fini afterwards.
type Frontend struct {
	screen  tcell.Screen
	session *game.Session
	step    *core.FixedStep
	grid    *core.ByteGrid
}

// New returns a front end ticking session at tps.
func New(screen tcell.Screen, session *game.Session, tps int) *Frontend {
	return &Frontend{
		screen:  screen,
		session: session,
		step:    core.NewFixedStep(tps),
		grid:    core.NewByteGrid(1, 1),
	}
}

// Run polls input on a separate goroutine and ticks the session on this one
// until the player quits or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context) error {
	quit := make(chan struct{})
	resized := make(chan struct{}, 1)
	go f.pollInput(quit, resized)

	ticker := time.NewTicker(f.step.Interval())
	defer ticker.Stop()

	f.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-quit:
			return nil
		case <-resized:
			f.screen.Sync()
			f.draw()
		case <-ticker.C:
			for n := f.step.Due(); n > 0; n-- {
				f.session.Tick()
			}
			f.draw()
		}
	}
}

// pollInput feeds key events to the session queue. It returns when the
// screen is finalised or a quit key is pressed.
func (f *Frontend) pollInput(quit chan<- struct{}, resized chan<- struct{}) {
	for {
		ev := f.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			select {
			case resized <- struct{}{}:
			default:
			}
		case *tcell.EventKey:
			cmd, ok, stop := keyCommand(ev)
			if stop {
				close(quit)
				return
			}
			if ok {
				f.session.Enqueue(cmd)
			}
		}
	}
}

// keyCommand maps a key press to a session command.
func keyCommand(ev *tcell.EventKey) (cmd game.Command, ok bool, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Command{}, false, true
	case tcell.KeyLeft:
		return game.Move(game.DirLeft), true, false
	case tcell.KeyRight:
		return game.Move(game.DirRight), true, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return game.Fire(), true, false
		case 'r', 'R':
			return game.Reset(), true, false
		case 's', 'S':
			return game.Reseed(time.Now().UnixNano()), true, false
		case 'q', 'Q':
			return game.Command{}, false, true
		}
	}
	return game.Command{}, false, false
}

func (f *Frontend) draw() {
	w, h := f.screen.Size()
	rows := h - hudRows
	if w <= 0 || rows <= 0 {
		return
	}
	if f.grid.W != w || f.grid.H != rows {
		f.grid = core.NewByteGrid(w, rows)
	}

	snap := f.session.Snapshot()
	f.screen.Clear()
	drawText(f.screen, 0, 0, hudStyle, fmt.Sprintf("Score: %d  Lives: %d  [<- -> move, space fire, r reset, q quit]", snap.Score, snap.Lives))

	if !snap.State.Terminal() {
		Rasterize(f.grid, snap)
		for y := 0; y < f.grid.H; y++ {
			for x := 0; x < f.grid.W; x++ {
				c := f.grid.At(x, y)
				if c == CellEmpty || int(c) >= len(glyphs) {
					continue
				}
				f.screen.SetContent(x, y+hudRows, glyphs[c].r, nil, glyphs[c].style)
			}
		}
	} else {
		cy := hudRows + rows/2
		drawCentered(f.screen, w, cy-1, bannerStyle, snap.State.Banner())
		drawCentered(f.screen, w, cy+1, bannerStyle, game.RestartHint)
	}
	f.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func drawCentered(s tcell.Screen, width, y int, style tcell.Style, text string) {
	x := (width - len([]rune(text))) / 2
	if x < 0 {
		x = 0
	}
	drawText(s, x, y, style, text)
}
