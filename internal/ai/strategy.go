package ai

import (
	"example.com/rarityduel/internal/card"
	"example.com/rarityduel/internal/round"
)

// GuessStrategy defines the interface for an AI's decision-making logic.
type GuessStrategy interface {
	Guess(ai *RarityBrain, r round.Round) (int, bool)
}

// --- Strategy Implementations ---

// 1. KnownPairStrategy
type KnownPairStrategy struct{}

func (s *KnownPairStrategy) Guess(ai *RarityBrain, r round.Round) (int, bool) {
	if len(r.Cards) != 2 {
		return 0, false
	}
	first, okFirst := ai.Known(r.Cards[0].Image)
	second, okSecond := ai.Known(r.Cards[1].Image)
	if !okFirst || !okSecond || first == second {
		return 0, false
	}
	ai.log.Infof("Strategy: RECALL. I remember both cards.")
	if first > second {
		return 0, true
	}
	return 1, true
}

// 2. KnownExtremeStrategy
type KnownExtremeStrategy struct{}

func (s *KnownExtremeStrategy) Guess(ai *RarityBrain, r round.Round) (int, bool) {
	idx, rarity, ok := ai.singleKnown(r)
	if !ok {
		return 0, false
	}
	switch rarity {
	case ai.highest:
		ai.log.Infof("Strategy: EXTREME. '%s' is as rare as this deck gets.", r.Cards[idx].Image)
		return idx, true
	case ai.lowest:
		ai.log.Infof("Strategy: EXTREME. '%s' is as common as this deck gets.", r.Cards[idx].Image)
		return 1 - idx, true
	}
	return 0, false
}

// 3. MedianStrategy
type MedianStrategy struct{}

func (s *MedianStrategy) Guess(ai *RarityBrain, r round.Round) (int, bool) {
	idx, rarity, ok := ai.singleKnown(r)
	if !ok {
		return 0, false
	}
	ai.log.Infof("Strategy: MEDIAN. Comparing %v against the deck median %v.", rarity, ai.median)
	if rarity > ai.median {
		return idx, true
	}
	return 1 - idx, true
}

// --- Strategy Helpers ---

// singleKnown returns the index and rarity of the one remembered card of a
// round. It fails when neither or both are known.
func (ai *RarityBrain) singleKnown(r round.Round) (int, card.Rarity, bool) {
	if len(r.Cards) != 2 {
		return 0, card.Common, false
	}
	first, okFirst := ai.Known(r.Cards[0].Image)
	second, okSecond := ai.Known(r.Cards[1].Image)
	switch {
	case okFirst && !okSecond:
		return 0, first, true
	case okSecond && !okFirst:
		return 1, second, true
	}
	return 0, card.Common, false
}
