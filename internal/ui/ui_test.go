package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/memoryflash/internal/leaderboard"
	"github.com/samdwyer/memoryflash/internal/notify"
	"github.com/samdwyer/memoryflash/internal/session"
)

func TestLayoutBoxAt(t *testing.T) {
	l := NewLayout(4, 4)

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"first box corner", gridOriginX, gridOriginY, 1},
		{"first box far corner", gridOriginX + boxWidth - 1, gridOriginY + boxHeight - 1, 1},
		{"gap between columns", gridOriginX + boxWidth, gridOriginY, 0},
		{"second column", gridOriginX + boxWidth + boxGap, gridOriginY, 2},
		{"gap between rows", gridOriginX, gridOriginY + boxHeight, 0},
		{"second row", gridOriginX, gridOriginY + boxHeight + boxGap, 5},
		{"last box", gridOriginX + 3*(boxWidth+boxGap), gridOriginY + 3*(boxHeight+boxGap), 16},
		{"left of grid", gridOriginX - 1, gridOriginY, 0},
		{"below grid", gridOriginX, gridOriginY + 4*(boxHeight+boxGap), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.BoxAt(tt.x, tt.y); got != tt.want {
				t.Errorf("BoxAt(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestLayoutBoxRectRoundTrip(t *testing.T) {
	l := NewLayout(3, 2)
	for id := 1; id <= 6; id++ {
		r := l.BoxRect(id)
		if got := l.BoxAt(r.X+r.W/2, r.Y+r.H/2); got != id {
			t.Errorf("centre of box %d hit box %d", id, got)
		}
	}
}

func TestLayoutButtonBelowGrid(t *testing.T) {
	l := NewLayout(4, 4)
	g := l.GridRect()
	b := l.ButtonRect()
	if b.Y <= g.Y+g.H-1 {
		t.Errorf("button row %d overlaps grid ending at %d", b.Y, g.Y+g.H-1)
	}
	if l.BoxAt(b.X, b.Y) != 0 {
		t.Error("button should not hit a box")
	}
	if l.PanelX() <= g.X+g.W {
		t.Errorf("panel at %d overlaps grid", l.PanelX())
	}
}

func TestPulsesFade(t *testing.T) {
	p := NewPulses()
	p.Trigger(3, 400*time.Millisecond)

	if got := p.Intensity(3); got != 1 {
		t.Fatalf("Intensity after trigger = %v, want 1", got)
	}
	if p.Intensity(4) != 0 {
		t.Error("untriggered box should have no glow")
	}

	p.Update(200 * time.Millisecond)
	mid := p.Intensity(3)
	if mid <= 0 || mid >= 1 {
		t.Errorf("Intensity half way = %v, want in (0, 1)", mid)
	}

	p.Update(300 * time.Millisecond)
	if p.Active() != 0 {
		t.Errorf("Active = %d after fade, want 0", p.Active())
	}
	if p.Intensity(3) != 0 {
		t.Errorf("Intensity after fade = %v, want 0", p.Intensity(3))
	}
}

func TestPulsesRetrigger(t *testing.T) {
	p := NewPulses()
	p.Trigger(1, 0)
	p.Update(DefaultPulse / 2)
	p.Trigger(1, 0)
	if got := p.Intensity(1); got != 1 {
		t.Errorf("Intensity after retrigger = %v, want 1", got)
	}
	p.Clear()
	if p.Active() != 0 {
		t.Error("Clear should drop every glow")
	}
}

func TestBlendToWhite(t *testing.T) {
	base := tcell.NewRGBColor(0, 100, 200)

	if got := blendToWhite(base, 0); got != base {
		t.Errorf("zero blend changed colour to %v", got)
	}

	r, g, b := blendToWhite(base, 1).RGB()
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("full blend = (%d, %d, %d), want white", r, g, b)
	}

	r, _, _ = blendToWhite(base, 0.5).RGB()
	if r < 120 || r > 135 {
		t.Errorf("half blend red = %d, want about 127", r)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"too long by far", 8, "too lon…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func newSimRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom: %v", err)
	}
	t.Cleanup(screen.Close)
	sim.SetSize(120, 40)
	return NewRenderer(screen), sim
}

func screenText(sim tcell.SimulationScreen) string {
	w, h := sim.Size()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := sim.GetContent(x, y)
			if r == 0 {
				r = ' '
			}
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func testSnapshot(state session.State) session.Snapshot {
	boxes := make([]session.BoxView, 0, 4)
	for id := 1; id <= 4; id++ {
		boxes = append(boxes, session.BoxView{ID: id, Color: "#3B82F6"})
	}
	return session.Snapshot{
		PlayerName:   "You",
		State:        state,
		Progress:     session.Progress{Level: 3, Score: 2, HighScore: 2},
		MaxLevel:     10,
		BoxesToFlash: 4,
		Columns:      2,
		Rows:         2,
		Boxes:        boxes,
		Leaderboard: []leaderboard.Entry{
			{Name: "Mia", Score: 120, Date: "2025-04-01"},
			{Name: "You", Score: 2, Date: "2025-04-08"},
		},
	}
}

func TestRenderIdle(t *testing.T) {
	r, sim := newSimRenderer(t)
	r.Render(Frame{Snapshot: testSnapshot(session.StateIdle)})

	text := screenText(sim)
	for _, want := range []string{"FlashGame", "Start Lv 3", "Level", "Boxes", "Leaderboard", "Mia", "Rules:"} {
		if !strings.Contains(text, want) {
			t.Errorf("idle frame missing %q", want)
		}
	}
	if strings.Contains(text, "Playing...") {
		t.Error("idle frame should not show Playing...")
	}
}

func TestRenderStates(t *testing.T) {
	tests := []struct {
		name    string
		state   session.State
		outcome session.Outcome
		want    string
	}{
		{"flashing", session.StateFlashing, session.OutcomeNone, "Playing..."},
		{"success", session.StateResult, session.OutcomeSuccess, "You got it!"},
		{"failure", session.StateResult, session.OutcomeFailure, "Try again."},
		{"game over", session.StateGameOver, session.OutcomeSuccess, "Play Again"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, sim := newSimRenderer(t)
			snap := testSnapshot(tt.state)
			snap.Outcome = tt.outcome
			r.Render(Frame{Snapshot: snap})

			if text := screenText(sim); !strings.Contains(text, tt.want) {
				t.Errorf("frame missing %q", tt.want)
			}
		})
	}
}

func TestRenderMarksAndNotifications(t *testing.T) {
	r, sim := newSimRenderer(t)
	snap := testSnapshot(session.StateResult)
	snap.Outcome = session.OutcomeFailure
	snap.Boxes[1].Selected = true
	snap.Boxes[1].Mark = session.MarkWrong

	r.Render(Frame{
		Snapshot: snap,
		Notifications: []notify.Notification{
			{ID: "n1", Title: "Level Complete!", Message: "Moving to Level 3. Get ready!"},
		},
	})

	text := screenText(sim)
	if !strings.Contains(text, "✗") {
		t.Error("wrong pick should be marked")
	}
	if !strings.Contains(text, "Level Complete!") {
		t.Error("notification title missing")
	}

	rect := NewLayout(2, 2).BoxRect(2)
	got, _, _, _ := sim.GetContent(rect.X+rect.W/2, rect.Y+1)
	if got != '✗' {
		t.Errorf("box 2 centre = %q, want ✗", got)
	}
}
