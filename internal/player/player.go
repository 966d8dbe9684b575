package player

import (
	"example.com/rarityduel/internal/config"
	"example.com/rarityduel/internal/events"
	"example.com/rarityduel/internal/round"
)

// Player is the interface that all player types (human or AI) must implement.
// It also implements events.Listener to react to game events.
type Player interface {
	events.Listener // Embed the Listener interface

	Name() string
	IsHuman() bool
	Setup(cfg *config.GameConfig, myName string)
	// Guess returns the index in r.Cards of the card believed to be rarer.
	Guess(r round.Round) int
}
