package ui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/memoryflash/internal/gamedata"
	"github.com/samdwyer/memoryflash/internal/notify"
	"github.com/samdwyer/memoryflash/internal/session"
)

const (
	toastWidth = 40
	title      = "FlashGame"
	footer     = "Memory Flash Game - Level up your memory skills!"
)

var rules = []string{
	"Watch flashing boxes",
	"Pick the same ones (any order)",
	"Each level adds more",
}

var (
	styleDefault  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle    = tcell.StyleDefault.Foreground(gamedata.MustParseHexColor("#A855F7")).Bold(true)
	styleButton   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(gamedata.MustParseHexColor("#7E22CE")).Bold(true)
	styleDisabled = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(gamedata.MustParseHexColor("#3B0764"))
	styleSuccess  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleFailure  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleWin      = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleYou      = tcell.StyleDefault.Foreground(gamedata.MustParseHexColor("#C084FC")).Bold(true)
	styleToast    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(gamedata.MustParseHexColor("#1F2937"))
)

// Frame is everything drawn in one pass.
type Frame struct {
	Snapshot      session.Snapshot
	Notifications []notify.Notification
	Cursor        int // Box under the keyboard cursor, 0 for none
	Pulses        *Pulses
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	colors map[string]tcell.Color
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{
		screen: screen,
		colors: make(map[string]tcell.Color),
	}
}

// Render draws a full frame.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	snap := f.Snapshot
	layout := NewLayout(snap.Columns, snap.Rows)

	r.renderHeader(layout)
	for _, b := range snap.Boxes {
		r.renderBox(layout, b, f.Cursor == b.ID, f.Pulses)
	}
	r.renderButton(layout, snap)
	r.renderPanel(layout, snap)
	r.renderNotifications(f.Notifications)

	w, h := r.screen.Size()
	if w < layout.Width() {
		r.screen.DrawText(gridOriginX, h-1, "Widen the terminal to see the side panel", styleDim)
	} else {
		r.screen.DrawText(gridOriginX, h-1, footer, styleDim)
	}

	r.screen.Show()
}

func (r *Renderer) renderHeader(layout Layout) {
	r.screen.DrawText(gridOriginX, 1, title, styleTitle)
	r.screen.DrawText(layout.PanelX(), 1, "[s] start  [r] reset  [q] quit", styleDim)
}

// renderBox paints one box. Lit boxes blend toward white; a fading glow
// keeps some brightness after the box goes dark.
func (r *Renderer) renderBox(layout Layout, b session.BoxView, cursor bool, pulses *Pulses) {
	rect := layout.BoxRect(b.ID)

	glow := float32(0)
	if pulses != nil {
		glow = pulses.Intensity(b.ID)
	}
	blend := glow * 0.5
	if b.Active {
		blend = 0.5 + glow*0.5
	}

	bg := blendToWhite(r.color(b.Color), blend)
	style := tcell.StyleDefault.Background(bg).Foreground(tcell.ColorBlack)
	r.screen.Fill(rect.X, rect.Y, rect.W, rect.H, ' ', style)

	switch b.Mark {
	case session.MarkCorrect:
		r.screen.SetContent(rect.X+rect.W/2, rect.Y+1, '✓', style.Foreground(tcell.ColorGreen).Bold(true))
	case session.MarkWrong:
		r.screen.SetContent(rect.X+rect.W/2, rect.Y+1, '✗', style.Foreground(tcell.ColorRed).Bold(true))
	default:
		if b.Selected {
			r.screen.SetContent(rect.X+rect.W/2, rect.Y+1, '●', style)
		}
	}

	if cursor {
		r.screen.SetContent(rect.X, rect.Y+1, '▶', style.Bold(true))
		r.screen.SetContent(rect.X+rect.W-1, rect.Y+1, '◀', style.Bold(true))
	}
}

func (r *Renderer) renderButton(layout Layout, snap session.Snapshot) {
	rect := layout.ButtonRect()

	switch snap.State {
	case session.StateGameOver:
		r.screen.DrawText(rect.X, rect.Y, "You Win!", styleWin)
		r.screen.DrawText(rect.X, rect.Y+1,
			fmt.Sprintf("All %d levels cleared - %d pts", snap.MaxLevel, snap.Progress.Score), styleDim)
		r.screen.DrawText(rect.X, rect.Y+2, " [r] Play Again ", styleButton)
	case session.StateIdle:
		label := fmt.Sprintf(" ▶ Start Lv %d ", snap.Progress.Level)
		r.screen.DrawText(rect.X, rect.Y, label, styleButton)
	default:
		r.screen.DrawText(rect.X, rect.Y, " Playing... ", styleDisabled)
	}
}

func (r *Renderer) renderPanel(layout Layout, snap session.Snapshot) {
	x := layout.PanelX()
	y := gridOriginY

	stats := []struct {
		label string
		value int
	}{
		{"Level", snap.Progress.Level},
		{"Score", snap.Progress.Score},
		{"High", snap.Progress.HighScore},
		{"Boxes", snap.BoxesToFlash},
	}
	col := x
	for _, s := range stats {
		r.screen.DrawText(col, y, s.label, styleDim)
		r.screen.DrawText(col, y+1, strconv.Itoa(s.value), styleDefault.Bold(true))
		col += 8
	}
	y += 3

	switch snap.Outcome {
	case session.OutcomeSuccess:
		r.screen.DrawText(x, y, "✓ You got it!", styleSuccess)
	case session.OutcomeFailure:
		r.screen.DrawText(x, y, "✗ Try again.", styleFailure)
	}
	y += 2

	r.screen.DrawText(x, y, "Leaderboard", styleWin)
	y++
	r.screen.DrawText(x, y, fmt.Sprintf("%-14s %6s  %s", "Name", "Score", "Date"), styleDim)
	y++
	for _, e := range snap.Leaderboard {
		style := styleDefault
		if e.Name == snap.PlayerName {
			style = styleYou
		}
		r.screen.DrawText(x, y, fmt.Sprintf("%-14.14s %6d  %s", e.Name, e.Score, e.Date), style)
		y++
	}
	y++

	r.screen.DrawText(x, y, "Rules:", styleDefault.Bold(true))
	y++
	for _, line := range rules {
		r.screen.DrawText(x, y, "• "+line, styleDim)
		y++
	}
	r.screen.DrawText(x, y, fmt.Sprintf("• Finish all %d levels to win", snap.MaxLevel), styleDim)
}

// renderNotifications stacks notifications in the top-right corner.
func (r *Renderer) renderNotifications(notes []notify.Notification) {
	w, _ := r.screen.Size()
	x := max(w-toastWidth-1, 0)
	y := 0
	for _, n := range notes {
		r.screen.Fill(x, y, toastWidth, 3, ' ', styleToast)
		r.screen.DrawText(x+1, y, truncate(n.Title, toastWidth-2), styleToast.Bold(true))
		r.screen.DrawText(x+1, y+1, truncate(n.Message, toastWidth-2), styleToast)
		y += 4
	}
}

// color parses and caches a box colour.
func (r *Renderer) color(hex string) tcell.Color {
	if c, ok := r.colors[hex]; ok {
		return c
	}
	c, err := gamedata.ParseHexColor(hex)
	if err != nil {
		c = tcell.ColorGray
	}
	r.colors[hex] = c
	return c
}

// blendToWhite mixes c with white by t in [0, 1].
func blendToWhite(c tcell.Color, t float32) tcell.Color {
	if t <= 0 {
		return c
	}
	if t > 1 {
		t = 1
	}
	red, green, blue := c.RGB()
	mix := func(v int32) int32 {
		return v + int32(float32(255-v)*t)
	}
	return tcell.NewRGBColor(mix(red), mix(green), mix(blue))
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}
