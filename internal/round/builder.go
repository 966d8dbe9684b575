// Package round selects the pair of cards shown in a "which is rarer" round.
package round

import (
	"example.com/rarityduel/internal/card"

	"github.com/sirupsen/logrus"
)

const (
	cardsInRound = 2

	// DefaultMaxDraws bounds the candidate loop of a single Build call.
	DefaultMaxDraws = 1000
)

// Round is a pair of cards plus the rarer of the two. The zero value is the
// empty round, returned when no valid pair could be drawn.
type Round struct {
	Cards  []card.Card
	Winner card.Card
}

func (r Round) IsEmpty() bool { return len(r.Cards) == 0 }

// WinnerIndex returns the position of the winner in Cards, or -1 for an empty round.
func (r Round) WinnerIndex() int {
	for i, c := range r.Cards {
		if c == r.Winner {
			return i
		}
	}
	return -1
}

// IsCorrect reports whether choosing Cards[choice] picks the winner.
func (r Round) IsCorrect(choice int) bool {
	return !r.IsEmpty() && choice == r.WinnerIndex()
}

// Builder draws rounds from a caller-owned deck.
type Builder struct {
	source   IndexSource
	log      logrus.FieldLogger
	maxDraws int
}

// NewBuilder creates a round builder with its required dependencies.
func NewBuilder(logger logrus.FieldLogger, source IndexSource) *Builder {
	return &Builder{
		source:   source,
		log:      logger,
		maxDraws: DefaultMaxDraws,
	}
}

// WithMaxDraws overrides the number of candidate draws allowed per round.
func (b *Builder) WithMaxDraws(n int) *Builder {
	if n > 0 {
		b.maxDraws = n
	}
	return b
}

// Build selects two cards of different rarity and different image from the
// deck and designates the rarer one as the winner.
//
// Every rejected candidate is removed from the deck (first card equal to it
// by value), so the deck shrinks by one card per rejection. The first card
// drawn is never removed. Decks with fewer than two cards or a single rarity
// yield the empty round and are left untouched.
func (b *Builder) Build(deck *card.Deck) Round {
	if len(*deck) < cardsInRound || !deck.HasMixedRarity() {
		return Round{}
	}

	firstIdx := b.source.NextIndex(0, len(*deck))
	cardOne := (*deck)[firstIdx]

	for draws := 0; draws < b.maxDraws; draws++ {
		if !hasPartner(*deck, cardOne) {
			b.log.Warnf("No card left that can be paired with %s.", cardOne)
			return Round{}
		}

		i := b.source.NextIndex(0, len(*deck))
		candidate := (*deck)[i]
		if isPair(cardOne, candidate) {
			return newRound(cardOne, candidate)
		}
		if i == firstIdx {
			continue
		}

		removedAt := removeMatch(deck, candidate, firstIdx)
		if removedAt >= 0 && removedAt < firstIdx {
			firstIdx--
		}
		b.log.Debugf("Rejected %s against %s; %d cards left.", candidate, cardOne, len(*deck))
	}

	b.log.Warnf("Gave up pairing %s after %d draws.", cardOne, b.maxDraws)
	return Round{}
}

func newRound(one, two card.Card) Round {
	winner := two
	if one.Rarity > two.Rarity {
		winner = one
	}
	return Round{Cards: []card.Card{one, two}, Winner: winner}
}

// isPair reports whether two cards can be shown side by side.
func isPair(a, b card.Card) bool {
	return a.Rarity != b.Rarity && a.Image != b.Image
}

func hasPartner(deck card.Deck, c card.Card) bool {
	for _, other := range deck {
		if isPair(c, other) {
			return true
		}
	}
	return false
}

// removeMatch removes the first card equal to c, skipping the slot at keep.
func removeMatch(deck *card.Deck, c card.Card, keep int) int {
	for i, other := range *deck {
		if i != keep && other == c {
			deck.RemoveAt(i)
			return i
		}
	}
	return -1
}
