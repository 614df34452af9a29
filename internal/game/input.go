package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/samdwyer/memoryflash/internal/session"
	"github.com/samdwyer/memoryflash/internal/ui"
)

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.moveCursor(0, -1)
	case tcell.KeyDown:
		g.moveCursor(0, 1)
	case tcell.KeyLeft:
		g.moveCursor(-1, 0)
	case tcell.KeyRight:
		g.moveCursor(1, 0)

	case tcell.KeyEnter:
		g.pickCursor(ctx)

	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			g.pickCursor(ctx)
		case 's', 'S':
			g.session.Start(ctx)
		case 'r', 'R':
			g.session.Reset(ctx)
		case 'q', 'Q':
			g.running = false
		}
	}
}

// handleMouseEvent acts on the left button's press edge only, so a held
// button or a drag does not repeat the click.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	edge := pressed && !g.mouseDown
	g.mouseDown = pressed
	if !edge {
		return
	}

	x, y := ev.Position()
	if box := g.layout.BoxAt(x, y); box != 0 {
		g.cursor = box
		g.click(ctx, box)
		return
	}

	if g.buttonRect().Contains(x, y) {
		g.pressButton(ctx)
	}
}

// buttonRect returns the clickable row of the start button. After the final
// level it is the "Play Again" line under the win message.
func (g *Game) buttonRect() ui.Rect {
	r := g.layout.ButtonRect()
	if g.session.State() == session.StateGameOver {
		r.Y += 2
	}
	return r
}

// pressButton starts a round, or begins a new game after a win.
func (g *Game) pressButton(ctx context.Context) {
	if g.session.State() == session.StateGameOver {
		g.session.Reset(ctx)
		return
	}
	g.session.Start(ctx)
}

// moveCursor moves the keyboard cursor within the grid. The first move
// places it on box 1.
func (g *Game) moveCursor(dx, dy int) {
	if g.cursor == 0 {
		g.cursor = 1
		return
	}
	i := g.cursor - 1
	col := clamp(i%g.cfg.Columns+dx, 0, g.cfg.Columns-1)
	row := clamp(i/g.cfg.Columns+dy, 0, g.cfg.Rows-1)
	g.cursor = row*g.cfg.Columns + col + 1
}

func (g *Game) pickCursor(ctx context.Context) {
	if g.cursor != 0 {
		g.click(ctx, g.cursor)
	}
}

func (g *Game) click(ctx context.Context, box int) {
	if !g.session.Click(ctx, box) {
		log.WithFields(log.Fields{
			"box":   box,
			"state": g.session.State(),
		}).Debug("click ignored")
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
