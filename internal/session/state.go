// Package session implements the flash/recall game state machine: sequence
// playback on a cancellable timeline, input collection, judging and
// score/level/leaderboard progression.
package session

// State is the session's current phase.
type State int

const (
	// StateIdle waits for the player to start a round.
	StateIdle State = iota
	// StateFlashing plays the sequence back one box at a time.
	StateFlashing
	// StateAwaitingInput collects the player's picks.
	StateAwaitingInput
	// StateResult shows the judged round before returning to idle.
	StateResult
	// StateGameOver is reached by clearing the final level. Only a reset leaves it.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFlashing:
		return "flashing"
	case StateAwaitingInput:
		return "awaiting_input"
	case StateResult:
		return "result"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Outcome is the verdict of the most recent round.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeFailure
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Mark is the per-box highlight shown once a round is judged.
type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkWrong
)

// String returns a human-readable mark name.
func (m Mark) String() string {
	switch m {
	case MarkNone:
		return "none"
	case MarkCorrect:
		return "correct"
	case MarkWrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// MarshalText encodes the mark by name.
func (m Mark) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
