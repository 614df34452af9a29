package grid

import "math/rand"

// Policy controls how many boxes flash at a given level.
type Policy struct {
	BaseOffset int // Added to the level
	MinLength  int // Lower clamp
	Cap        int // Upper clamp, before limiting to the grid size
}

// DefaultPolicy flashes level+2 boxes, at least 2 and at most 12.
var DefaultPolicy = Policy{BaseOffset: 2, MinLength: 2, Cap: 12}

// SequenceLength returns how many boxes flash at level on a grid of n boxes.
// The result never exceeds n.
func SequenceLength(level, n int, p Policy) int {
	k := p.BaseOffset + level
	if p.Cap > 0 && k > p.Cap {
		k = p.Cap
	}
	if k < p.MinLength {
		k = p.MinLength
	}
	if k > n {
		k = n
	}
	if k < 0 {
		k = 0
	}
	return k
}

// Generate picks SequenceLength distinct box ids uniformly from [1..n] and
// returns them in flash order. It never fails: a small grid just yields a
// shorter sequence.
func Generate(rng *rand.Rand, level, n int, p Policy) []int {
	k := SequenceLength(level, n, p)
	if k == 0 {
		return []int{}
	}

	available := make([]int, n)
	for i := range available {
		available[i] = i + 1
	}

	// Partial Fisher-Yates: the first k slots end up as the draw.
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		available[i], available[j] = available[j], available[i]
	}

	return available[:k:k]
}
