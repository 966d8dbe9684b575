package game

import (
	"example.com/rarityduel/internal/card"
	"example.com/rarityduel/internal/config"
	"example.com/rarityduel/internal/events"
	"example.com/rarityduel/internal/player"
	"example.com/rarityduel/internal/round"

	"github.com/sirupsen/logrus"
)

const (
	ReasonRoundLimit    = "round limit reached"
	ReasonDeckExhausted = "no valid pair left in the deck"
)

// Game represents the state and logic of a single game of Rarity Duel.
type Game struct {
	Config       *config.GameConfig
	Players      []player.Player
	Deck         card.Deck
	Scores       map[string]int
	EventManager *events.Manager
	builder      *round.Builder
	round        int
	log          *logrus.Logger
}

func (g *Game) addPlayer(p player.Player, name string) {
	p.Setup(g.Config.DeepCopy(), name)
	g.Players = append(g.Players, p)
	g.Scores[name] = 0
	g.EventManager.Subscribe(p)
}

// RoundsPlayed returns the number of rounds that produced a pair.
func (g *Game) RoundsPlayed() int { return g.round }

// PlayRound draws the next pair, collects every player's guess and scores it.
// It returns false once the deck cannot produce a valid pair.
func (g *Game) PlayRound() (round.Round, bool) {
	r := g.builder.Build(&g.Deck)
	if r.IsEmpty() {
		g.log.Debugf("Deck exhausted with %d cards left.", len(g.Deck))
		g.EventManager.Publish(events.DeckExhaustedEvent{Remaining: len(g.Deck)})
		return r, false
	}

	g.round++
	g.EventManager.Publish(events.RoundStartEvent{RoundNumber: g.round, Cards: r.Cards})

	for _, p := range g.Players {
		choice := p.Guess(r)
		if choice < 0 || choice >= len(r.Cards) {
			g.log.Warnf("%s guessed out of range (%d); counting the first card.", p.Name(), choice)
			choice = 0
		}
		correct := r.IsCorrect(choice)
		if correct {
			g.Scores[p.Name()]++
		}
		g.EventManager.Publish(events.GuessEvent{PlayerName: p.Name(), Choice: r.Cards[choice], Correct: correct})
	}

	g.EventManager.Publish(events.RoundResolvedEvent{RoundNumber: g.round, Round: r})

	if g.Config.ShouldDiscardPlayed() {
		for _, c := range r.Cards {
			g.Deck.Remove(c)
		}
	}
	g.log.Debugf("Round %d: %v vs %v, winner %v. %d cards left.", g.round, r.Cards[0], r.Cards[1], r.Winner, len(g.Deck))
	return r, true
}

// Run plays rounds until the round limit is reached or the deck runs dry.
func (g *Game) Run() map[string]int {
	reason := ReasonRoundLimit
	for g.round < g.Config.Rounds {
		if _, ok := g.PlayRound(); !ok {
			reason = ReasonDeckExhausted
			break
		}
	}

	g.EventManager.Publish(events.GameOverEvent{
		Scores:       g.Scores,
		RoundsPlayed: g.round,
		Reason:       reason,
	})
	return g.Scores
}
