package ai

import (
	"sort"

	"example.com/rarityduel/internal/card"
	"example.com/rarityduel/internal/config"
	"example.com/rarityduel/internal/events"
	"example.com/rarityduel/internal/round"

	"github.com/sirupsen/logrus"
)

// RarityBrain implements the Player interface by remembering the rarity of
// every image revealed at the end of a round.
type RarityBrain struct {
	name       string
	config     *config.GameConfig
	knowledge  map[string]map[card.Rarity]struct{}
	lowest     card.Rarity
	highest    card.Rarity
	median     card.Rarity
	strategies []GuessStrategy
	log        logrus.FieldLogger
	chooser    Chooser
}

// NewRarityBrain is the constructor for the AI player. It injects dependencies.
func NewRarityBrain(logger logrus.FieldLogger, chooser Chooser) *RarityBrain {
	ai := &RarityBrain{
		log:     logger,
		chooser: chooser,
	}

	ai.strategies = []GuessStrategy{
		&KnownPairStrategy{},
		&KnownExtremeStrategy{},
		&MedianStrategy{},
	}
	return ai
}

func (ai *RarityBrain) Name() string  { return ai.name }
func (ai *RarityBrain) IsHuman() bool { return false }

func (ai *RarityBrain) Setup(cfg *config.GameConfig, myName string) {
	ai.name = myName
	ai.config = cfg
	ai.log = ai.log.WithField("player", myName)
	ai.knowledge = make(map[string]map[card.Rarity]struct{})

	ai.lowest, ai.highest, ai.median = rarityRange(cfg.Cards)
	ai.log.Debugf("Rarity memory initialized. Deck spans %v..%v, median %v.", ai.lowest, ai.highest, ai.median)
}

func (ai *RarityBrain) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.RoundResolvedEvent:
		for _, c := range event.Round.Cards {
			ai.learn(c)
		}
	}
}

func (ai *RarityBrain) Guess(r round.Round) int {
	for _, s := range ai.strategies {
		if choice, ok := s.Guess(ai, r); ok {
			return choice
		}
	}
	ai.log.Debugf("Strategy: GUESS. No memory of either card.")
	choice := ai.chooser.Choose(r.Cards)
	if choice < 0 {
		return 0
	}
	return choice
}

// Known returns the remembered rarity of an image. Images seen with more
// than one rarity are not known.
func (ai *RarityBrain) Known(image string) (card.Rarity, bool) {
	rarities := ai.knowledge[image]
	if len(rarities) != 1 {
		return card.Common, false
	}
	for r := range rarities {
		return r, true
	}
	return card.Common, false
}

// --- Internal Memory Logic ---

func (ai *RarityBrain) learn(c card.Card) {
	rarities, ok := ai.knowledge[c.Image]
	if !ok {
		rarities = make(map[card.Rarity]struct{})
		ai.knowledge[c.Image] = rarities
	}
	if _, seen := rarities[c.Rarity]; seen {
		return
	}
	rarities[c.Rarity] = struct{}{}
	if len(rarities) > 1 {
		ai.log.Debugf("Image '%s' exists in several rarities; no longer trusting it.", c.Image)
		return
	}
	ai.log.Debugf("Learned that '%s' is %v.", c.Image, c.Rarity)
}

// rarityRange returns the lowest, highest and median rarity of a deck.
func rarityRange(deck card.Deck) (lowest, highest, median card.Rarity) {
	if len(deck) == 0 {
		return card.Common, card.RareSecret, card.Rare
	}
	rarities := make([]int, len(deck))
	for i, c := range deck {
		rarities[i] = int(c.Rarity)
	}
	sort.Ints(rarities)
	return card.Rarity(rarities[0]), card.Rarity(rarities[len(rarities)-1]), card.Rarity(rarities[len(rarities)/2])
}
