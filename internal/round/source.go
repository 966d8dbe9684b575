package round

import (
	"math/rand"
)

// IndexSource supplies the indices used to draw cards from a deck.
// NextIndex must return a value in [lo, hi); it is never called with hi <= lo.
// This allows us to swap out random and scripted selection.
type IndexSource interface {
	NextIndex(lo, hi int) int
}

// --- Implementations ---

// RandomSource implements IndexSource with a uniformly distributed draw.
type RandomSource struct {
	rand *rand.Rand
}

// NewRandomSource creates a new random index source.
func NewRandomSource(rand *rand.Rand) *RandomSource {
	return &RandomSource{rand: rand}
}

func (r *RandomSource) NextIndex(lo, hi int) int {
	return lo + r.rand.Intn(hi-lo)
}

// ScriptedSource returns a fixed sequence of indices. Once the sequence is
// used up it keeps returning the last value. This is used for predictable testing.
type ScriptedSource struct {
	indices []int
	pos     int
	calls   int
}

func NewScriptedSource(indices ...int) *ScriptedSource {
	return &ScriptedSource{indices: indices}
}

func (s *ScriptedSource) NextIndex(lo, hi int) int {
	s.calls++
	if len(s.indices) == 0 {
		return lo
	}
	v := s.indices[s.pos]
	if s.pos < len(s.indices)-1 {
		s.pos++
	}
	return v
}

// Calls reports how many indices have been handed out.
func (s *ScriptedSource) Calls() int { return s.calls }
