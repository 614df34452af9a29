package session

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// playback is the fixed plan for one round's flash sequence.
type playback struct {
	sequence []int
	on       time.Duration
	gap      time.Duration
}

// play schedules box i of the plan after delay. Each step schedules the next
// one only when it runs, so a single CancelAll stops the whole chain.
// Once i passes the end of the sequence the session waits for input.
func (s *Session) play(pb playback, i int, delay time.Duration) {
	s.timeline.After(delay, func(ctx context.Context) {
		if i >= len(pb.sequence) {
			s.playbackComplete(ctx)
			return
		}

		id := pb.sequence[i]
		s.light(ctx, id)

		s.timeline.After(pb.on, func(ctx context.Context) {
			s.unlight(ctx, id)
			s.play(pb, i+1, pb.gap)
		})
	})
}

// playbackComplete hands control to input collection.
func (s *Session) playbackComplete(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "playback.complete")
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.Int("level", s.progress.Level),
		attribute.Int("sequence_length", len(s.round.Sequence)),
	)
	span.End()

	s.setState(ctx, StateAwaitingInput)

	// Nothing to pick on a degenerate round.
	if s.round.Full() {
		s.judge(ctx)
	}
}

// light makes id the only active box.
func (s *Session) light(ctx context.Context, id int) {
	if s.active != 0 && s.active != id {
		s.unlight(ctx, s.active)
	}
	s.active = id
	s.emit(ctx, EventBoxActivated, id)
}

// unlight clears id if it is still the active box.
func (s *Session) unlight(ctx context.Context, id int) {
	if s.active != id {
		return
	}
	s.active = 0
	s.emit(ctx, EventBoxDeactivated, id)
}
