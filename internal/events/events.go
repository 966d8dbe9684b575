package events

import (
	"example.com/rarityduel/internal/card"
	"example.com/rarityduel/internal/round"
)

// Event is a marker interface for all event types.
type Event interface{}

// Listener defines an interface for any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// Manager (or Event Bus) manages listeners and dispatches events.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}
func (em *Manager) Subscribe(l Listener) {
	em.listeners = append(em.listeners, l)
}
func (em *Manager) Publish(e Event) {
	for _, l := range em.listeners {
		l.HandleEvent(e)
	}
}

// --- Event Types for Rendering ---

// GameReadyEvent is published once the game is built.
type GameReadyEvent struct {
	Players  interface{}
	DeckSize int
}

// RoundStartEvent carries the two cards on the table. Rarities are not
// meant to be shown until the round is resolved.
type RoundStartEvent struct {
	RoundNumber int
	Cards       []card.Card
}

type GuessEvent struct {
	PlayerName string
	Choice     card.Card
	Correct    bool
}

// DeckExhaustedEvent is published when no valid pair can be drawn any more.
type DeckExhaustedEvent struct {
	Remaining int
}

type GameOverEvent struct {
	Scores       map[string]int
	RoundsPlayed int
	Reason       string
}

// --- Event Type for AI Logic ---

// RoundResolvedEvent reveals both rarities of a finished round.
type RoundResolvedEvent struct {
	RoundNumber int
	Round       round.Round
}
