package session

import (
	"time"

	"github.com/samdwyer/memoryflash/internal/grid"
)

// Timing is the per-level playback profile. Each level shortens both the
// "on" pulse and the gap between pulses down to a floor.
type Timing struct {
	BaseOn   time.Duration
	OnDecay  time.Duration
	MinOn    time.Duration
	BaseGap  time.Duration
	GapDecay time.Duration
	MinGap   time.Duration
}

// For returns the on duration and the gap for level.
func (t Timing) For(level int) (on, gap time.Duration) {
	steps := time.Duration(max(level-1, 0))
	on = max(t.MinOn, t.BaseOn-steps*t.OnDecay)
	gap = max(t.MinGap, t.BaseGap-steps*t.GapDecay)
	return on, gap
}

// Rules are the fixed parameters of a session.
type Rules struct {
	MaxLevel   int
	Sequence   grid.Policy
	Timing     Timing
	ResultHold time.Duration // How long the judged round stays on screen
	ClickPulse time.Duration // How long a clicked box glows
}

// Progress is the player's standing within a session.
type Progress struct {
	Level     int `json:"level"`
	Score     int `json:"score"`
	HighScore int `json:"highScore"`
}
