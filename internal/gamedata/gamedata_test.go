package gamedata

import (
	"testing"
	"time"
)

func TestLoadRules(t *testing.T) {
	rules, err := LoadRules()
	if err != nil {
		t.Fatalf("Failed to load rules: %v", err)
	}

	if rules.MaxLevel != 10 {
		t.Errorf("Expected maxLevel 10, got %d", rules.MaxLevel)
	}

	sr := rules.SessionRules()
	if sr.ResultHold != 2*time.Second {
		t.Errorf("Expected result hold 2s, got %v", sr.ResultHold)
	}
	if sr.ClickPulse != 300*time.Millisecond {
		t.Errorf("Expected click pulse 300ms, got %v", sr.ClickPulse)
	}
	if rules.NotificationTTL() != 5*time.Second {
		t.Errorf("Expected notification TTL 5s, got %v", rules.NotificationTTL())
	}

	on, gap := sr.Timing.For(1)
	if on != 700*time.Millisecond || gap != 300*time.Millisecond {
		t.Errorf("Expected level 1 timing 700ms/300ms, got %v/%v", on, gap)
	}

	p := rules.Policy()
	if p.BaseOffset != 2 || p.Cap != 12 || p.MinLength != 2 {
		t.Errorf("Unexpected sequence policy %+v", p)
	}
}

func TestRulesLeaderboardSeed(t *testing.T) {
	rules := MustLoadRules()

	if rules.Leaderboard.PlayerName != "You" {
		t.Errorf("Expected player name 'You', got %q", rules.Leaderboard.PlayerName)
	}

	board := rules.NewLeaderboard()
	if board.Cap() != 5 {
		t.Errorf("Expected cap 5, got %d", board.Cap())
	}

	entries := board.Entries()
	expected := []string{"Mia", "Noah", "Emma"}
	if len(entries) != len(expected) {
		t.Fatalf("Expected %d seed entries, got %d", len(expected), len(entries))
	}
	for i, name := range expected {
		if entries[i].Name != name {
			t.Errorf("Entry %d: expected %q, got %q", i, name, entries[i].Name)
		}
	}
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *RulesDef)
		valid  bool
	}{
		{"embedded", func(r *RulesDef) {}, true},
		{"zero max level", func(r *RulesDef) { r.MaxLevel = 0 }, false},
		{"zero cap", func(r *RulesDef) { r.Sequence.Cap = 0 }, false},
		{"zero min on", func(r *RulesDef) { r.Timing.MinOnMs = 0 }, false},
		{"negative hold", func(r *RulesDef) { r.ResultHoldMs = -1 }, false},
		{"bad seed date", func(r *RulesDef) { r.Leaderboard.Seed[0].Date = "07/04/2025" }, false},
	}

	for _, tt := range tests {
		rules := MustLoadRules()
		tt.mutate(rules)
		err := rules.Validate()
		if tt.valid && err != nil {
			t.Errorf("%s: expected valid, got error: %v", tt.name, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}

func TestLoadPalette(t *testing.T) {
	palette, err := LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}

	colors := palette.Colors()
	if len(colors) != 5 {
		t.Fatalf("Expected 5 colours, got %d", len(colors))
	}
	if colors[0] != "#A855F7" {
		t.Errorf("Expected purple first, got %s", colors[0])
	}

	for _, s := range palette.Palette {
		if s.TCellColor() == 0 {
			t.Errorf("Swatch %s has zero colour", s.Name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load[RulesDef]("missing.json"); err == nil {
		t.Error("Expected error loading a missing file")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}
