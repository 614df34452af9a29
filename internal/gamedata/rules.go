package gamedata

import (
	"errors"
	"fmt"
	"time"

	"github.com/samdwyer/memoryflash/internal/grid"
	"github.com/samdwyer/memoryflash/internal/leaderboard"
	"github.com/samdwyer/memoryflash/internal/session"
)

// SequenceDef controls how many boxes flash per level.
type SequenceDef struct {
	BaseOffset int `json:"baseOffset"`
	MinLength  int `json:"minLength"`
	Cap        int `json:"cap"`
}

// TimingDef is the playback timing profile in milliseconds.
type TimingDef struct {
	BaseOnMs   int `json:"baseOnMs"`
	OnDecayMs  int `json:"onDecayMs"`
	MinOnMs    int `json:"minOnMs"`
	BaseGapMs  int `json:"baseGapMs"`
	GapDecayMs int `json:"gapDecayMs"`
	MinGapMs   int `json:"minGapMs"`
}

// LeaderboardDef sizes the leaderboard and seeds its opening entries.
type LeaderboardDef struct {
	Cap        int                 `json:"cap"`
	PlayerName string              `json:"playerName"`
	Seed       []leaderboard.Entry `json:"seed"`
}

// RulesDef defines the game rules loaded from rules.json.
type RulesDef struct {
	MaxLevel       int            `json:"maxLevel"`
	Sequence       SequenceDef    `json:"sequence"`
	Timing         TimingDef      `json:"timing"`
	ResultHoldMs   int            `json:"resultHoldMs"`
	ClickPulseMs   int            `json:"clickPulseMs"`
	NotificationMs int            `json:"notificationMs"`
	Leaderboard    LeaderboardDef `json:"leaderboard"`
}

// Validate checks that the rules describe a playable game.
func (r *RulesDef) Validate() error {
	if r.MaxLevel < 1 {
		return fmt.Errorf("maxLevel must be at least 1, got %d", r.MaxLevel)
	}
	if r.Sequence.Cap < 1 {
		return fmt.Errorf("sequence cap must be at least 1, got %d", r.Sequence.Cap)
	}
	if r.Timing.MinOnMs <= 0 || r.Timing.MinGapMs < 0 {
		return errors.New("timing floors must be positive")
	}
	if r.ResultHoldMs < 0 || r.ClickPulseMs < 0 || r.NotificationMs < 0 {
		return errors.New("durations must not be negative")
	}
	for _, e := range r.Leaderboard.Seed {
		if _, err := time.Parse(leaderboard.DateLayout, e.Date); err != nil {
			return fmt.Errorf("seed entry %q has bad date: %w", e.Name, err)
		}
	}
	return nil
}

// Policy returns the sequence length policy.
func (r *RulesDef) Policy() grid.Policy {
	return grid.Policy{
		BaseOffset: r.Sequence.BaseOffset,
		MinLength:  r.Sequence.MinLength,
		Cap:        r.Sequence.Cap,
	}
}

// SessionRules converts the definition into session rules.
func (r *RulesDef) SessionRules() session.Rules {
	return session.Rules{
		MaxLevel: r.MaxLevel,
		Sequence: r.Policy(),
		Timing: session.Timing{
			BaseOn:   ms(r.Timing.BaseOnMs),
			OnDecay:  ms(r.Timing.OnDecayMs),
			MinOn:    ms(r.Timing.MinOnMs),
			BaseGap:  ms(r.Timing.BaseGapMs),
			GapDecay: ms(r.Timing.GapDecayMs),
			MinGap:   ms(r.Timing.MinGapMs),
		},
		ResultHold: ms(r.ResultHoldMs),
		ClickPulse: ms(r.ClickPulseMs),
	}
}

// NotificationTTL is how long a notification stays visible.
func (r *RulesDef) NotificationTTL() time.Duration {
	return ms(r.NotificationMs)
}

// NewLeaderboard creates a board seeded from the rules.
func (r *RulesDef) NewLeaderboard() *leaderboard.Board {
	return leaderboard.New(r.Leaderboard.Cap, r.Leaderboard.Seed...)
}

// LoadRules loads and validates the embedded rules.json.
func LoadRules() (*RulesDef, error) {
	rules, err := Load[RulesDef]("rules.json")
	if err != nil {
		return nil, err
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules.json: %w", err)
	}
	return &rules, nil
}

// MustLoadRules loads the rules, panicking on error.
func MustLoadRules() *RulesDef {
	rules, err := LoadRules()
	if err != nil {
		panic(err)
	}
	return rules
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
