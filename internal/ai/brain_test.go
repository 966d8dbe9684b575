package ai

import (
	"io"
	"math/rand"
	"testing"

	"example.com/rarityduel/internal/card"
	"example.com/rarityduel/internal/config"
	"example.com/rarityduel/internal/events"
	"example.com/rarityduel/internal/round"

	"github.com/sirupsen/logrus"
)

// setupTestAI is a helper function to create a clean AI instance for each test.
// The deck spans Common..RareHolo with a Rare median.
func setupTestAI() *RarityBrain {
	cfg := &config.GameConfig{Cards: card.Deck{
		card.New("caterpie", card.Common),
		card.New("weedle", card.Common),
		card.New("metapod", card.Uncommon),
		card.New("kakuna", card.Rare),
		card.New("pidgeot", card.Rare),
		card.New("beedrill", card.RareHolo),
	}}

	// GIVEN a "null" logger that discards output
	log := logrus.New()
	log.SetOutput(io.Discard)

	brain := NewRarityBrain(log, &DeterministicChooser{})
	brain.Setup(cfg.DeepCopy(), "Professor Oak")
	return brain
}

func newRound(one, two card.Card) round.Round {
	winner := two
	if one.Rarity > two.Rarity {
		winner = one
	}
	return round.Round{Cards: []card.Card{one, two}, Winner: winner}
}

func reveal(brain *RarityBrain, cards ...card.Card) {
	for i := 0; i+1 < len(cards); i += 2 {
		brain.HandleEvent(events.RoundResolvedEvent{RoundNumber: i/2 + 1, Round: newRound(cards[i], cards[i+1])})
	}
}

func TestSetupComputesRarityRange(t *testing.T) {
	brain := setupTestAI()
	if brain.lowest != card.Common || brain.highest != card.RareHolo || brain.median != card.Rare {
		t.Errorf("Unexpected range %v..%v median %v", brain.lowest, brain.highest, brain.median)
	}
	if brain.Name() != "Professor Oak" || brain.IsHuman() {
		t.Errorf("Unexpected identity %q human=%v", brain.Name(), brain.IsHuman())
	}
}

func TestLearnFromResolvedRounds(t *testing.T) {
	// GIVEN a fresh AI brain
	brain := setupTestAI()

	// WHEN a round is revealed
	reveal(brain, card.New("weedle", card.Common), card.New("kakuna", card.Rare))

	// THEN both rarities are remembered
	t.Run("it remembers revealed cards", func(t *testing.T) {
		if r, ok := brain.Known("weedle"); !ok || r != card.Common {
			t.Errorf("Expected weedle to be known as Common, got %v (known=%v)", r, ok)
		}
		if r, ok := brain.Known("kakuna"); !ok || r != card.Rare {
			t.Errorf("Expected kakuna to be known as Rare, got %v (known=%v)", r, ok)
		}
	})

	t.Run("it stops trusting images seen in several rarities", func(t *testing.T) {
		reveal(brain, card.New("weedle", card.Uncommon), card.New("metapod", card.Common))
		if _, ok := brain.Known("weedle"); ok {
			t.Error("Expected weedle to be ambiguous after two rarities were revealed")
		}
	})
}

func TestGuessStrategies(t *testing.T) {
	t.Run("it picks the rarer of two remembered cards", func(t *testing.T) {
		brain := setupTestAI()
		reveal(brain, card.New("metapod", card.Uncommon), card.New("pidgeot", card.Rare))
		got := brain.Guess(newRound(card.New("pidgeot", card.Rare), card.New("metapod", card.Uncommon)))
		if got != 0 {
			t.Errorf("Expected guess 0, but got %d", got)
		}
	})

	t.Run("it picks a remembered top rarity card", func(t *testing.T) {
		brain := setupTestAI()
		reveal(brain, card.New("beedrill", card.RareHolo), card.New("caterpie", card.Common))
		got := brain.Guess(newRound(card.New("pidgeot", card.Rare), card.New("beedrill", card.RareHolo)))
		if got != 1 {
			t.Errorf("Expected guess 1, but got %d", got)
		}
	})

	t.Run("it avoids a remembered bottom rarity card", func(t *testing.T) {
		brain := setupTestAI()
		brain.learn(card.New("caterpie", card.Common))
		got := brain.Guess(newRound(card.New("caterpie", card.Common), card.New("pidgeot", card.Rare)))
		if got != 1 {
			t.Errorf("Expected guess 1, but got %d", got)
		}
	})

	t.Run("it compares a single remembered card with the median", func(t *testing.T) {
		brain := setupTestAI()
		brain.learn(card.New("metapod", card.Uncommon))
		got := brain.Guess(newRound(card.New("metapod", card.Uncommon), card.New("kakuna", card.Rare)))
		if got != 1 {
			t.Errorf("Expected an Uncommon card below the median to lose, but guess was %d", got)
		}
	})

	t.Run("it falls back to the chooser", func(t *testing.T) {
		brain := setupTestAI()
		got := brain.Guess(newRound(card.New("zubat", card.Common), card.New("abra", card.Rare)))
		if got != 1 {
			t.Errorf("Expected the deterministic chooser to pick abra, but guess was %d", got)
		}
	})
}

func TestChoosers(t *testing.T) {
	cards := []card.Card{card.New("b", card.Common), card.New("a", card.Rare)}

	if (&DeterministicChooser{}).Choose(cards) != 1 {
		t.Error("Expected the deterministic chooser to pick the first image alphabetically")
	}
	if (&DeterministicChooser{}).Choose(nil) != -1 {
		t.Error("Expected -1 for an empty list")
	}

	random := NewRandomChooser(rand.New(rand.NewSource(1)))
	for i := 0; i < 20; i++ {
		if got := random.Choose(cards); got < 0 || got > 1 {
			t.Fatalf("Random chooser returned out of range index %d", got)
		}
	}
}
