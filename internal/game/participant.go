package game

import (
	"twentyone/internal/cards"
	"twentyone/internal/chips"
)

// Participant is a player or dealer seat. The chip ledger lives as long as
// the session; hands are created per round.
type Participant struct {
	Name  string
	Chips *chips.Stack
}

// Hand is one ordered card sequence in play, together with the stake riding
// on it. The value is recomputed from the cards every time it is needed;
// ace valuation depends on the full sequence, so no running total is kept.
type Hand struct {
	Cards   []cards.Card
	Stake   int
	Escrow  []chips.Chip
	Doubled bool
	Busted  bool
}

// Add appends a card to the hand.
func (h *Hand) Add(c cards.Card) { h.Cards = append(h.Cards, c) }

// Value scores the hand under the house valuation rule.
func (h *Hand) Value() int { return HandValue(h.Cards) }

// Dealer owns the dealing operation: revealing cards from the shoe into a
// target hand.
type Dealer struct {
	Participant
}

// Deal dispenses one card from the shoe into the given hand.
func (d *Dealer) Deal(shoe *cards.Shoe, h *Hand) (cards.Card, error) {
	c, err := shoe.Dispense()
	if err != nil {
		return cards.Card{}, err
	}
	h.Add(c)
	return c, nil
}
