package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"example.com/rarityduel/internal/card"

	"github.com/BurntSushi/toml"
)

const (
	DefaultRounds   = 10
	DefaultMaxDraws = 1000
)

// GameConfig holds the deck and the settings for a game of Rarity Duel.
type GameConfig struct {
	Cards         card.Deck `json:"cards" toml:"cards"`
	Rounds        int       `json:"rounds" toml:"rounds"`
	MaxDraws      int       `json:"max_draws" toml:"max_draws"`
	DiscardPlayed *bool     `json:"discard_played" toml:"discard_played"`
}

// Load reads, parses, and prepares the game configuration from a file.
// Files ending in .toml are decoded as TOML, everything else as JSON.
func Load(path string) (*GameConfig, error) {
	var cfg GameConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *GameConfig) applyDefaults() {
	if c.Rounds == 0 {
		c.Rounds = DefaultRounds
	}
	if c.MaxDraws == 0 {
		c.MaxDraws = DefaultMaxDraws
	}
	if c.DiscardPlayed == nil {
		discard := true
		c.DiscardPlayed = &discard
	}
}

// Validate checks the settings that cannot be defaulted.
func (c *GameConfig) Validate() error {
	if c.Rounds < 1 {
		return errors.New("rounds must be at least 1")
	}
	if c.MaxDraws < 1 {
		return errors.New("max_draws must be at least 1")
	}
	return nil
}

// ShouldDiscardPlayed reports whether played cards leave the deck after a round.
func (c *GameConfig) ShouldDiscardPlayed() bool {
	return c.DiscardPlayed == nil || *c.DiscardPlayed
}

// DeepCopy creates a new GameConfig with the deck copied to prevent shared state.
func (c *GameConfig) DeepCopy() *GameConfig {
	newCfg := &GameConfig{
		Cards:    c.Cards.Clone(),
		Rounds:   c.Rounds,
		MaxDraws: c.MaxDraws,
	}
	if c.DiscardPlayed != nil {
		discard := *c.DiscardPlayed
		newCfg.DiscardPlayed = &discard
	}
	return newCfg
}

// RarityCounts returns how many cards of each rarity the configured deck holds.
func (c *GameConfig) RarityCounts() map[card.Rarity]int {
	return c.Cards.RarityCounts()
}
