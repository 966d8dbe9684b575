package player

import (
	"example.com/rarityduel/internal/config"
	"example.com/rarityduel/internal/events"
	"example.com/rarityduel/internal/round"
)

// PromptFunc asks a person which card of the round is rarer.
type PromptFunc func(r round.Round) int

// HumanPlayer represents a player controlled by a person.
type HumanPlayer struct {
	name   string
	cfg    *config.GameConfig
	prompt PromptFunc
	seen   int
}

// NewHumanPlayer accepts the prompt used to collect guesses. A nil prompt
// always picks the first card.
func NewHumanPlayer(prompt PromptFunc) *HumanPlayer {
	return &HumanPlayer{prompt: prompt}
}

func (h *HumanPlayer) Name() string  { return h.name }
func (h *HumanPlayer) IsHuman() bool { return true }

func (h *HumanPlayer) Setup(cfg *config.GameConfig, myName string) {
	h.name = myName
	h.cfg = cfg
}

// RoundsSeen is the number of resolved rounds this player has watched.
func (h *HumanPlayer) RoundsSeen() int { return h.seen }

func (h *HumanPlayer) HandleEvent(e events.Event) {
	if _, ok := e.(events.RoundResolvedEvent); ok {
		h.seen++
	}
}

func (h *HumanPlayer) Guess(r round.Round) int {
	if h.prompt == nil {
		return 0
	}
	choice := h.prompt(r)
	if choice < 0 || choice >= len(r.Cards) {
		return 0
	}
	return choice
}
