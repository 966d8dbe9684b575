package game

import (
	"io"
	"math/rand"
	"testing"

	"example.com/rarityduel/internal/card"
	"example.com/rarityduel/internal/config"
	"example.com/rarityduel/internal/events"
	"example.com/rarityduel/internal/player"
	"example.com/rarityduel/internal/round"

	"github.com/sirupsen/logrus"
)

type eventRecorder struct {
	events []events.Event
}

func (r *eventRecorder) HandleEvent(e events.Event) { r.events = append(r.events, e) }

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestGoldenGame(t *testing.T) {
	// GIVEN a small deck and a scripted source that yields (0,1) twice
	discard := true
	cfg := &config.GameConfig{
		Cards: card.Deck{
			card.New("A", card.Common),
			card.New("B", card.Uncommon),
			card.New("C", card.Common),
			card.New("D", card.Rare),
		},
		Rounds:        10,
		MaxDraws:      50,
		DiscardPlayed: &discard,
	}
	recorder := &eventRecorder{}
	builder := NewBuilder(cfg, silentLogger(), rand.New(rand.NewSource(1))).
		WithIndexSource(round.NewScriptedSource(0, 1, 0, 1)).
		WithPlayer("Misty", player.NewHumanPlayer(func(round.Round) int { return 1 })).
		WithPlayer("Brock", player.NewHumanPlayer(func(round.Round) int { return 0 }))
	builder.EventManager().Subscribe(recorder)

	game, err := builder.Build()
	if err != nil {
		t.Fatalf("Failed to build game: %v", err)
	}

	// WHEN the game runs to completion
	scores := game.Run()

	// THEN two rounds are played before the deck runs dry
	t.Run("it plays until the deck is exhausted", func(t *testing.T) {
		if game.RoundsPlayed() != 2 {
			t.Errorf("Expected 2 rounds, but played %d", game.RoundsPlayed())
		}
		if len(game.Deck) != 0 {
			t.Errorf("Expected every card to be discarded, but %v remain", game.Deck)
		}
	})

	t.Run("it scores correct guesses", func(t *testing.T) {
		if scores["Misty"] != 2 || scores["Brock"] != 0 {
			t.Errorf("Expected Misty 2 and Brock 0, but got %v", scores)
		}
	})

	t.Run("it announces the end of the game", func(t *testing.T) {
		last, ok := recorder.events[len(recorder.events)-1].(events.GameOverEvent)
		if !ok {
			t.Fatalf("Expected the last event to be GameOverEvent, got %T", recorder.events[len(recorder.events)-1])
		}
		if last.Reason != ReasonDeckExhausted || last.RoundsPlayed != 2 {
			t.Errorf("Unexpected game over event %+v", last)
		}
	})

	t.Run("the configured deck is untouched", func(t *testing.T) {
		if len(cfg.Cards) != 4 {
			t.Errorf("Expected the config deck to keep 4 cards, but it has %d", len(cfg.Cards))
		}
	})
}

func TestAISimulationHonorsRoundLimit(t *testing.T) {
	// GIVEN the default deck and three AI players
	cfg, err := config.Load("../../default_config.json")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	cfg.Rounds = 3

	game, err := NewBuilder(cfg, silentLogger(), rand.New(rand.NewSource(1))).WithAIPlayers(3).Build()
	if err != nil {
		t.Fatalf("Failed to build game: %v", err)
	}

	// WHEN the simulation runs
	scores := game.Run()

	// THEN it stops at the round limit and every round removed two cards
	if game.RoundsPlayed() != 3 {
		t.Errorf("Expected 3 rounds, but played %d", game.RoundsPlayed())
	}
	if len(game.Deck) > len(cfg.Cards)-6 {
		t.Errorf("Expected at least 6 cards to leave the deck, but %d of %d remain", len(game.Deck), len(cfg.Cards))
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, but got %v", scores)
	}
	for name, score := range scores {
		if score < 0 || score > 3 {
			t.Errorf("Score for %s out of range: %d", name, score)
		}
	}
}

func TestBuildValidation(t *testing.T) {
	cfg := &config.GameConfig{Cards: card.Deck{card.New("A", card.Common), card.New("B", card.Rare)}, Rounds: 1, MaxDraws: 1}
	seeded := rand.New(rand.NewSource(1))

	if _, err := NewBuilder(cfg, silentLogger(), seeded).Build(); err == nil {
		t.Error("Expected a game without players to be rejected")
	}
	if _, err := NewBuilder(cfg, silentLogger(), seeded).WithAIPlayers(len(TrainerNames) + 1).Build(); err == nil {
		t.Error("Expected too many players to be rejected")
	}
	small := &config.GameConfig{Cards: card.Deck{card.New("A", card.Common)}, Rounds: 1, MaxDraws: 1}
	if _, err := NewBuilder(small, silentLogger(), seeded).WithAIPlayers(1).Build(); err == nil {
		t.Error("Expected a one card deck to be rejected")
	}
}
