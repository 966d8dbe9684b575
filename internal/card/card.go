package card

import (
	"fmt"
	"strings"
)

// Rarity defines how scarce a card is using a typed enum. Higher is rarer.
type Rarity int

const (
	Common Rarity = iota
	Uncommon
	Rare
	RareHolo
	RareUltra
	RareSecret
)

var rarityNames = []string{"Common", "Uncommon", "Rare", "RareHolo", "RareUltra", "RareSecret"}

// AllRarities lists every rarity from most to least common.
var AllRarities = []Rarity{Common, Uncommon, Rare, RareHolo, RareUltra, RareSecret}

// String returns the string representation of a Rarity.
func (r Rarity) String() string {
	if r < Common || r > RareSecret {
		return fmt.Sprintf("Rarity(%d)", int(r))
	}
	return rarityNames[r]
}

// ParseRarity accepts the enum name ("RareHolo") as well as the spaced
// trading card form ("Rare Holo"), case-insensitively.
func ParseRarity(s string) (Rarity, error) {
	key := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	for i, name := range rarityNames {
		if strings.EqualFold(name, key) {
			return Rarity(i), nil
		}
	}
	return Common, fmt.Errorf("unknown rarity %q", s)
}

func (r Rarity) MarshalText() ([]byte, error) {
	if r < Common || r > RareSecret {
		return nil, fmt.Errorf("invalid rarity %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *Rarity) UnmarshalText(text []byte) error {
	parsed, err := ParseRarity(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Card is a single playable card. Two cards are equal when both the image
// and the rarity match.
type Card struct {
	Image  string `json:"imageUrl" toml:"imageUrl"`
	Rarity Rarity `json:"rarity" toml:"rarity"`
}

func New(image string, rarity Rarity) Card {
	return Card{Image: image, Rarity: rarity}
}

func (c Card) String() string {
	return fmt.Sprintf("%s (%s)", c.Image, c.Rarity)
}
