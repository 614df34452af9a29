package session

import (
	"slices"
)

// Round holds one flash/recall cycle: the flashed sequence in flash order and
// the player's picks in click order.
type Round struct {
	Sequence  []int
	Selection []int
}

// Full reports whether the player has picked as many boxes as were flashed.
func (r *Round) Full() bool {
	return len(r.Selection) >= len(r.Sequence)
}

// Selected reports whether id has already been picked this round.
func (r *Round) Selected(id int) bool {
	return slices.Contains(r.Selection, id)
}

// Flashed reports whether id is part of the sequence.
func (r *Round) Flashed(id int) bool {
	return slices.Contains(r.Sequence, id)
}

// Matches compares the selection and the sequence as unordered collections.
func (r *Round) Matches() bool {
	if len(r.Selection) != len(r.Sequence) {
		return false
	}
	want := slices.Clone(r.Sequence)
	got := slices.Clone(r.Selection)
	slices.Sort(want)
	slices.Sort(got)
	return slices.Equal(want, got)
}
