package leaderboard

import (
	"testing"
	"time"
)

func seedEntries() []Entry {
	return []Entry{
		{Name: "Mia", Score: 120, Date: "2025-04-07"},
		{Name: "Noah", Score: 90, Date: "2025-04-06"},
		{Name: "Emma", Score: 70, Date: "2025-04-05"},
	}
}

func assertSorted(t *testing.T, b *Board) {
	t.Helper()
	entries := b.Entries()
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Score < entries[i].Score {
			t.Errorf("entries not sorted at %d: %d < %d", i, entries[i-1].Score, entries[i].Score)
		}
	}
	if len(entries) > b.Cap() {
		t.Errorf("Len() = %d exceeds Cap() = %d", len(entries), b.Cap())
	}
}

func TestNewSortsAndTrimsSeed(t *testing.T) {
	b := New(2, Entry{Name: "a", Score: 1}, Entry{Name: "b", Score: 3}, Entry{Name: "c", Score: 2})

	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	entries := b.Entries()
	if entries[0].Name != "b" || entries[1].Name != "c" {
		t.Errorf("Entries() = %v, want b then c", entries)
	}
}

func TestNewDefaultCap(t *testing.T) {
	if got := New(0).Cap(); got != DefaultCap {
		t.Errorf("New(0).Cap() = %d, want %d", got, DefaultCap)
	}
}

func TestUpsertAppendsAndRanks(t *testing.T) {
	b := New(DefaultCap, seedEntries()...)

	rank := b.Upsert(Entry{Name: "You", Score: 100, Date: "2025-04-08"})
	if rank != 1 {
		t.Errorf("Upsert() rank = %d, want 1", rank)
	}
	if b.Len() != 4 {
		t.Errorf("Len() = %d, want 4", b.Len())
	}
	assertSorted(t, b)
}

func TestUpsertReplacesSameName(t *testing.T) {
	b := New(DefaultCap, seedEntries()...)

	b.Upsert(Entry{Name: "You", Score: 1, Date: "2025-04-08"})
	b.Upsert(Entry{Name: "You", Score: 2, Date: "2025-04-08"})
	rank := b.Upsert(Entry{Name: "You", Score: 95, Date: "2025-04-09"})

	count := 0
	for _, e := range b.Entries() {
		if e.Name == "You" {
			count++
			if e.Score != 95 {
				t.Errorf("You score = %d, want 95", e.Score)
			}
		}
	}
	if count != 1 {
		t.Errorf("found %d entries for You, want 1", count)
	}
	if rank != 1 {
		t.Errorf("Upsert() rank = %d, want 1", rank)
	}
	assertSorted(t, b)
}

func TestUpsertNeverExceedsCap(t *testing.T) {
	b := New(3, seedEntries()...)

	if rank := b.Upsert(Entry{Name: "Low", Score: 5}); rank != -1 {
		t.Errorf("Upsert() of low score rank = %d, want -1", rank)
	}
	if b.Len() != 3 {
		t.Errorf("Len() = %d, want 3", b.Len())
	}

	b.Upsert(Entry{Name: "High", Score: 500})
	entries := b.Entries()
	if entries[0].Name != "High" {
		t.Errorf("top entry = %q, want High", entries[0].Name)
	}
	if b.Rank("Emma") != -1 {
		t.Error("Emma should have been pushed off the board")
	}
	assertSorted(t, b)
}

func TestEntriesReturnsCopy(t *testing.T) {
	b := New(DefaultCap, seedEntries()...)
	entries := b.Entries()
	entries[0].Score = -1

	if b.Entries()[0].Score != 120 {
		t.Error("mutating Entries() result changed the board")
	}
}

func TestNewEntryDate(t *testing.T) {
	when := time.Date(2025, 4, 8, 23, 59, 0, 0, time.UTC)
	e := NewEntry("You", 3, when)
	if e.Date != "2025-04-08" {
		t.Errorf("NewEntry().Date = %q, want %q", e.Date, "2025-04-08")
	}
}
