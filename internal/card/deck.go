package card

// Deck is the ordered pool of cards rounds are drawn from. It is owned by
// the caller; round building may shrink it.
type Deck []Card

// Clone returns an independent copy of the deck.
func (d Deck) Clone() Deck {
	if d == nil {
		return nil
	}
	out := make(Deck, len(d))
	copy(out, d)
	return out
}

// IndexOf returns the position of the first card equal to c, or -1.
func (d Deck) IndexOf(c Card) int {
	for i, other := range d {
		if other == c {
			return i
		}
	}
	return -1
}

// HasMixedRarity reports whether at least two distinct rarities are present.
// The scan stops at the first card whose rarity differs from the first one.
func (d Deck) HasMixedRarity() bool {
	if len(d) == 0 {
		return false
	}
	first := d[0].Rarity
	for _, c := range d[1:] {
		if c.Rarity != first {
			return true
		}
	}
	return false
}

// RemoveAt deletes the card at position i, preserving order.
func (d *Deck) RemoveAt(i int) Card {
	s := *d
	removed := s[i]
	copy(s[i:], s[i+1:])
	s[len(s)-1] = Card{}
	*d = s[:len(s)-1]
	return removed
}

// Remove deletes the first card equal to c. It returns the position the
// card was removed from, or -1 when no card matched.
func (d *Deck) Remove(c Card) int {
	i := d.IndexOf(c)
	if i < 0 {
		return -1
	}
	d.RemoveAt(i)
	return i
}

// RarityCounts returns how many cards of each rarity the deck holds.
func (d Deck) RarityCounts() map[Rarity]int {
	counts := make(map[Rarity]int)
	for _, c := range d {
		counts[c.Rarity]++
	}
	return counts
}
