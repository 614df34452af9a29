// Package leaderboard keeps the session's top scores.
package leaderboard

import (
	"slices"
	"time"
)

const (
	// DefaultCap is the number of entries kept.
	DefaultCap = 5

	// DateLayout is the calendar date format used for entries.
	DateLayout = "2006-01-02"
)

// Entry is one leaderboard row.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Date  string `json:"date"` // Calendar date, see DateLayout
}

// NewEntry creates an entry dated on the calendar day of t.
func NewEntry(name string, score int, t time.Time) Entry {
	return Entry{Name: name, Score: score, Date: t.Format(DateLayout)}
}

// Board is an ordered, capped list of entries, highest score first.
// Entries with equal scores keep their relative order.
type Board struct {
	capacity int
	entries  []Entry
}

// New creates a board holding at most capacity entries, seeded with seed.
// A non-positive capacity falls back to DefaultCap.
func New(capacity int, seed ...Entry) *Board {
	if capacity <= 0 {
		capacity = DefaultCap
	}
	b := &Board{
		capacity: capacity,
		entries:  make([]Entry, 0, capacity+1),
	}
	b.entries = append(b.entries, seed...)
	b.normalize()
	return b
}

// Cap returns the maximum number of entries.
func (b *Board) Cap() int {
	return b.capacity
}

// Len returns the current number of entries.
func (b *Board) Len() int {
	return len(b.entries)
}

// Entries returns a copy of the entries in rank order.
func (b *Board) Entries() []Entry {
	return slices.Clone(b.entries)
}

// Rank returns the 0-based rank of the named player, or -1 if absent.
func (b *Board) Rank(name string) int {
	return slices.IndexFunc(b.entries, func(e Entry) bool { return e.Name == name })
}

// Upsert records e, replacing any existing entry with the same name rather
// than adding a second one. It returns the entry's rank after re-sorting and
// truncating, or -1 if it did not make the cut.
func (b *Board) Upsert(e Entry) int {
	if i := b.Rank(e.Name); i >= 0 {
		b.entries[i] = e
	} else {
		b.entries = append(b.entries, e)
	}
	b.normalize()
	return b.Rank(e.Name)
}

// normalize sorts by descending score and trims to capacity.
func (b *Board) normalize() {
	slices.SortStableFunc(b.entries, func(x, y Entry) int {
		return y.Score - x.Score
	})
	if len(b.entries) > b.capacity {
		b.entries = b.entries[:b.capacity]
	}
}
