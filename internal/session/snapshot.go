package session

import (
	"slices"

	"github.com/samdwyer/memoryflash/internal/grid"
	"github.com/samdwyer/memoryflash/internal/leaderboard"
)

// BoxView is what the presentation needs to draw one box.
type BoxView struct {
	ID       int    `json:"id"`
	Color    string `json:"color"`
	Active   bool   `json:"active"`
	Selected bool   `json:"selected"`
	Mark     Mark   `json:"mark"`
}

// Snapshot is a read-only copy of the session for rendering and broadcasting.
type Snapshot struct {
	SessionID    string              `json:"sessionId"`
	PlayerName   string              `json:"playerName"`
	State        State               `json:"state"`
	Progress     Progress            `json:"progress"`
	MaxLevel     int                 `json:"maxLevel"`
	BoxesToFlash int                 `json:"boxesToFlash"`
	ActiveBox    int                 `json:"activeBox"`
	Outcome      Outcome             `json:"outcome"`
	Selected     []int               `json:"selected"`
	Columns      int                 `json:"columns"`
	Rows         int                 `json:"rows"`
	Boxes        []BoxView           `json:"boxes"`
	Leaderboard  []leaderboard.Entry `json:"leaderboard"`
}

// Snapshot copies the current state. Selected boxes are marked correct or
// wrong only while the judged round is on display.
func (s *Session) Snapshot() Snapshot {
	var selected []int
	if s.round != nil {
		selected = slices.Clone(s.round.Selection)
	}

	judged := s.state == StateResult || s.state == StateGameOver
	mark := MarkNone
	if judged {
		switch s.outcome {
		case OutcomeSuccess:
			mark = MarkCorrect
		case OutcomeFailure:
			mark = MarkWrong
		}
	}

	boxes := make([]BoxView, 0, s.grid.Size())
	for _, b := range s.grid.Boxes() {
		v := BoxView{
			ID:       b.ID,
			Color:    b.Color,
			Active:   b.ID == s.active,
			Selected: slices.Contains(selected, b.ID),
		}
		if v.Selected {
			v.Mark = mark
		}
		boxes = append(boxes, v)
	}

	return Snapshot{
		SessionID:    s.id,
		PlayerName:   s.player,
		State:        s.state,
		Progress:     s.progress,
		MaxLevel:     s.rules.MaxLevel,
		BoxesToFlash: grid.SequenceLength(s.progress.Level, s.grid.Size(), s.rules.Sequence),
		ActiveBox:    s.active,
		Outcome:      s.outcome,
		Selected:     selected,
		Columns:      s.grid.Columns,
		Rows:         s.grid.Rows,
		Boxes:        boxes,
		Leaderboard:  s.board.Entries(),
	}
}
