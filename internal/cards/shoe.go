package cards

import (
	"errors"
	"math/rand"
)

// ErrEmptyShoe is returned by Dispense once all cards have been dealt.
var ErrEmptyShoe = errors.New("shoe is empty")

// Shoe is an ordered supply of cards dispensed one at a time, with no
// replacement. A shoe is built fresh for every round and discarded with it.
type Shoe struct {
	cards []Card
	pos   int
}

// fullDeck returns all 52 rank and suit combinations in deck order.
func fullDeck() []Card {
	deck := make([]Card, 0, 52)
	for rank := 0; rank < 13; rank++ {
		for suit := 0; suit < 4; suit++ {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}

// NewShuffledShoe returns a full 52-card shoe under a uniform random
// permutation.
func NewShuffledShoe() *Shoe {
	deck := fullDeck()
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return &Shoe{cards: deck}
}

// NewSeededShoe returns a full shoe whose permutation is derived entirely
// from the seed and round number. The same pair always produces the same
// order, which makes a session replayable.
func NewSeededShoe(seed string, round uint64) *Shoe {
	deck := fullDeck()
	stream := newByteStream(seed, round)
	for i := len(deck) - 1; i > 0; i-- {
		j := int(stream.nextFloat() * float64(i+1))
		if j > i {
			j = i
		}
		deck[i], deck[j] = deck[j], deck[i]
	}
	return &Shoe{cards: deck}
}

// NewStackedShoe returns a shoe that dispenses exactly the given cards in
// the given order.
func NewStackedShoe(cs ...Card) *Shoe {
	return &Shoe{cards: append([]Card(nil), cs...)}
}

// Dispense removes and returns the next card. Once dispensed, a card never
// returns to the shoe.
func (s *Shoe) Dispense() (Card, error) {
	if s.pos >= len(s.cards) {
		return Card{}, ErrEmptyShoe
	}
	c := s.cards[s.pos]
	s.pos++
	return c, nil
}

// Remaining reports how many cards are left to dispense.
func (s *Shoe) Remaining() int { return len(s.cards) - s.pos }
