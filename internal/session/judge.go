package session

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/memoryflash/internal/leaderboard"
)

// Click records a pick of box id. Picks are only taken while awaiting input;
// unknown boxes, repeat picks and picks past a full selection are ignored.
// It reports whether the pick was accepted. The pick that completes the
// selection judges the round immediately.
func (s *Session) Click(ctx context.Context, id int) bool {
	if s.closed || s.state != StateAwaitingInput || s.round == nil {
		return false
	}
	if !s.grid.Contains(id) || s.round.Full() || s.round.Selected(id) {
		return false
	}

	s.round.Selection = append(s.round.Selection, id)
	s.emit(ctx, EventBoxSelected, id)
	s.pulse(ctx, id)

	if s.round.Full() {
		s.judge(ctx)
	}
	return true
}

// pulse lights a clicked box for the click pulse duration.
func (s *Session) pulse(ctx context.Context, id int) {
	s.light(ctx, id)
	s.timeline.After(s.rules.ClickPulse, func(ctx context.Context) {
		s.unlight(ctx, id)
	})
}

// judge compares the selection with the sequence and moves the session on.
func (s *Session) judge(ctx context.Context) {
	ctx, span := s.tracer.Start(ctx, "session.judge")
	defer span.End()

	s.setState(ctx, StateResult)

	correct := s.round.Matches()
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.Int("level", s.progress.Level),
		attribute.Int("selection_size", len(s.round.Selection)),
		attribute.Bool("correct", correct),
	)

	if !correct {
		s.outcome = OutcomeFailure
		s.finishRound(ctx)
		return
	}

	s.outcome = OutcomeSuccess
	s.progress.Score++

	if s.progress.Level >= s.rules.MaxLevel {
		span.SetAttributes(attribute.Bool("game_over", true))
		s.emit(ctx, EventJudged, 0)
		s.setState(ctx, StateGameOver)
		s.notify("Congratulations!",
			fmt.Sprintf("You've completed all %d levels! Final score: %d", s.rules.MaxLevel, s.progress.Score))
		return
	}

	s.progress.Level++
	s.notify("Level Complete!", fmt.Sprintf("Moving to Level %d. Get ready!", s.progress.Level))

	if s.progress.Score > s.progress.HighScore {
		s.progress.HighScore = s.progress.Score
		s.recordHighScore(ctx)
	}

	s.finishRound(ctx)
}

// finishRound announces the verdict and schedules the return to idle.
func (s *Session) finishRound(ctx context.Context) {
	log.WithFields(log.Fields{
		"session": s.id,
		"outcome": s.outcome,
		"level":   s.progress.Level,
		"score":   s.progress.Score,
	}).Debug("round judged")

	s.emit(ctx, EventJudged, 0)
	s.timeline.After(s.rules.ResultHold, func(ctx context.Context) {
		s.setState(ctx, StateIdle)
	})
}

// recordHighScore places the current player's score on the leaderboard.
func (s *Session) recordHighScore(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "leaderboard.upsert")
	defer span.End()

	entry := leaderboard.NewEntry(s.player, s.progress.HighScore, s.timeline.Now())
	rank := s.board.Upsert(entry)

	span.SetAttributes(
		attribute.String("player", s.player),
		attribute.Int("score", entry.Score),
		attribute.Int("rank", rank),
	)

	s.emit(ctx, EventLeaderboardUpdated, 0)
}
