package session

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/memoryflash/internal/grid"
	"github.com/samdwyer/memoryflash/internal/leaderboard"
	"github.com/samdwyer/memoryflash/internal/telemetry"
	"github.com/samdwyer/memoryflash/internal/timeline"
)

// DefaultPlayerName is the leaderboard name used when none is configured.
const DefaultPlayerName = "You"

// Config holds everything a session needs. Grid and Rules are required.
type Config struct {
	Grid        *grid.Grid
	Rules       Rules
	PlayerName  string
	Leaderboard *leaderboard.Board // Defaults to an empty board
	Rand        *rand.Rand         // Defaults to a time-seeded source
	Start       time.Time          // Timeline origin, defaults to time.Now()
	Notifier    Notifier           // Optional
	Tracer      trace.Tracer       // Defaults to telemetry.Tracer("session")
}

// Session owns all state of one game: progress, the current round, the
// leaderboard and every pending scheduled step. It is not safe for concurrent
// use; drive it from a single goroutine.
type Session struct {
	id       string
	grid     *grid.Grid
	rules    Rules
	player   string
	board    *leaderboard.Board
	rng      *rand.Rand
	timeline *timeline.Timeline
	notifier Notifier
	tracer   trace.Tracer

	listeners []Listener

	// draw picks the sequence for a level.
	draw func(level int) []int

	state    State
	progress Progress
	round    *Round
	active   int // Box currently lit, 0 for none
	outcome  Outcome
	closed   bool
}

// New creates a session in StateIdle at level 1.
func New(cfg Config) (*Session, error) {
	if cfg.Grid == nil || cfg.Grid.Size() == 0 {
		return nil, errors.New("session: grid has no boxes")
	}
	if cfg.Rules.MaxLevel < 1 {
		return nil, errors.New("session: max level must be at least 1")
	}

	if cfg.PlayerName == "" {
		cfg.PlayerName = DefaultPlayerName
	}
	if cfg.Leaderboard == nil {
		cfg.Leaderboard = leaderboard.New(leaderboard.DefaultCap)
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Start.IsZero() {
		cfg.Start = time.Now()
	}
	if cfg.Tracer == nil {
		cfg.Tracer = telemetry.Tracer("session")
	}

	s := &Session{
		id:       uuid.NewString(),
		grid:     cfg.Grid,
		rules:    cfg.Rules,
		player:   cfg.PlayerName,
		board:    cfg.Leaderboard,
		rng:      cfg.Rand,
		timeline: timeline.New(cfg.Start),
		notifier: cfg.Notifier,
		tracer:   cfg.Tracer,
		state:    StateIdle,
		progress: Progress{Level: 1},
	}
	s.draw = func(level int) []int {
		return grid.Generate(s.rng, level, s.grid.Size(), s.rules.Sequence)
	}
	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Progress returns the current level, score and high score.
func (s *Session) Progress() Progress {
	return s.progress
}

// ActiveBox returns the lit box, or 0 when none is lit.
func (s *Session) ActiveBox() int {
	return s.active
}

// Outcome returns the verdict of the last judged round.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Pending returns the number of scheduled steps.
func (s *Session) Pending() int {
	return s.timeline.Pending()
}

// Subscribe registers l for all future events.
func (s *Session) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Tick runs every scheduled step due at or before now and returns how many ran.
func (s *Session) Tick(ctx context.Context, now time.Time) int {
	if s.closed {
		return 0
	}
	return s.timeline.Advance(ctx, now)
}

// Start begins a round from StateIdle: it draws a new sequence and schedules
// its playback. It reports whether a round was started.
func (s *Session) Start(ctx context.Context) bool {
	if s.closed || s.state != StateIdle {
		return false
	}

	// Anything still queued belongs to the previous round.
	s.timeline.CancelAll()

	level := s.progress.Level
	sequence := s.draw(level)
	on, gap := s.rules.Timing.For(level)

	_, span := s.tracer.Start(ctx, "session.start")
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.Int("level", level),
		attribute.Int("sequence_length", len(sequence)),
		attribute.Int64("on_ms", on.Milliseconds()),
		attribute.Int64("gap_ms", gap.Milliseconds()),
	)
	span.End()

	s.round = &Round{Sequence: sequence}
	s.outcome = OutcomeNone
	s.active = 0
	s.setState(ctx, StateFlashing)

	s.play(playback{sequence: sequence, on: on, gap: gap}, 0, 0)
	return true
}

// Reset cancels every pending step and returns to StateIdle at level 1 with a
// zero score. The high score and leaderboard are kept.
func (s *Session) Reset(ctx context.Context) {
	if s.closed {
		return
	}

	cancelled := s.timeline.CancelAll()
	from := s.state

	_, span := s.tracer.Start(ctx, "session.reset")
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.String("from_state", from.String()),
		attribute.Int("cancelled_steps", cancelled),
	)
	span.End()

	s.round = nil
	s.active = 0
	s.outcome = OutcomeNone
	s.progress.Level = 1
	s.progress.Score = 0

	log.WithFields(log.Fields{
		"session":   s.id,
		"from":      from,
		"cancelled": cancelled,
	}).Debug("session reset")

	s.emit(ctx, EventReset, 0)
	s.setState(ctx, StateIdle)
}

// Close cancels all pending steps. Every later call on the session is a no-op.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.timeline.CancelAll()
	s.closed = true
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	return s.closed
}

// setState transitions to next and notifies listeners if it changed.
func (s *Session) setState(ctx context.Context, next State) {
	if s.state == next {
		return
	}
	prev := s.state
	s.state = next

	log.WithFields(log.Fields{
		"session": s.id,
		"from":    prev,
		"to":      next,
		"level":   s.progress.Level,
		"score":   s.progress.Score,
	}).Debug("state changed")

	s.emit(ctx, EventStateChanged, 0)
}

// emit delivers an event to every listener in subscription order.
func (s *Session) emit(ctx context.Context, kind EventKind, box int) {
	if len(s.listeners) == 0 {
		return
	}
	ev := Event{
		Kind:     kind,
		Box:      box,
		State:    s.state,
		Outcome:  s.outcome,
		Progress: s.progress,
	}
	for _, l := range s.listeners {
		l.HandleEvent(ctx, ev)
	}
}

// notify forwards to the configured notifier, if any.
func (s *Session) notify(title, message string) {
	if s.notifier != nil {
		s.notifier.Notify(title, message)
	}
}
