package session

import "context"

// EventKind identifies what changed in a session.
type EventKind int

const (
	EventStateChanged EventKind = iota
	EventBoxActivated
	EventBoxDeactivated
	EventBoxSelected
	EventJudged
	EventLeaderboardUpdated
	EventReset
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventStateChanged:
		return "state_changed"
	case EventBoxActivated:
		return "box_activated"
	case EventBoxDeactivated:
		return "box_deactivated"
	case EventBoxSelected:
		return "box_selected"
	case EventJudged:
		return "judged"
	case EventLeaderboardUpdated:
		return "leaderboard_updated"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Event describes a single session change. Box is 0 when not relevant.
type Event struct {
	Kind     EventKind `json:"kind"`
	Box      int       `json:"box,omitempty"`
	State    State     `json:"state"`
	Outcome  Outcome   `json:"outcome"`
	Progress Progress  `json:"progress"`
}

// Listener receives session events synchronously, on the goroutine driving the session.
type Listener interface {
	HandleEvent(ctx context.Context, ev Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(ctx context.Context, ev Event)

// HandleEvent calls f.
func (f ListenerFunc) HandleEvent(ctx context.Context, ev Event) {
	f(ctx, ev)
}

// Notifier displays transient (title, message) notifications.
type Notifier interface {
	Notify(title, message string)
}
