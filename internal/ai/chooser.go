package ai

import (
	"math/rand"

	"example.com/rarityduel/internal/card"
)

// Chooser defines an interface for selecting a single card from a list of options.
// It returns the index of the chosen card, or -1 for an empty list.
// This allows us to swap out random and deterministic selection strategies.
type Chooser interface {
	Choose(cards []card.Card) int
}

// --- Implementations ---

// RandomChooser implements the Chooser interface by picking an element randomly.
type RandomChooser struct {
	rand *rand.Rand
}

// NewRandomChooser creates a new random chooser.
func NewRandomChooser(rand *rand.Rand) *RandomChooser {
	return &RandomChooser{rand: rand}
}

func (r *RandomChooser) Choose(cards []card.Card) int {
	if len(cards) == 0 {
		return -1
	}
	return r.rand.Intn(len(cards))
}

// DeterministicChooser implements the Chooser interface by always picking the
// card whose image sorts first. This is used for predictable testing.
type DeterministicChooser struct{}

func (d *DeterministicChooser) Choose(cards []card.Card) int {
	if len(cards) == 0 {
		return -1
	}
	best := 0
	for i, c := range cards {
		if c.Image < cards[best].Image {
			best = i
		}
	}
	return best
}
