package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"twentyone/internal/cards"
)

func c(rank int) cards.Card { return cards.Card{Rank: rank, Suit: cards.SuitSpades} }

// Numeral helpers: numeral n is rank n-2.
func num(n int) cards.Card { return c(n - 2) }

func TestHandValue(t *testing.T) {
	tests := []struct {
		name string
		hand []cards.Card
		want int
	}{
		{"empty hand", nil, 0},
		{"numerals sum", []cards.Card{num(2), num(7), num(10)}, 19},
		{"court cards count ten", []cards.Card{c(cards.RankJack), c(cards.RankQueen)}, 20},
		{"king and nine", []cards.Card{c(cards.RankKing), num(9)}, 19},
		{"ace counts eleven", []cards.Card{c(cards.RankAce), num(9)}, 20},
		{"ace falls to one", []cards.Card{c(cards.RankKing), c(cards.RankQueen), c(cards.RankAce)}, 21},
		{"two aces", []cards.Card{c(cards.RankAce), c(cards.RankAce)}, 12},
		{"natural", []cards.Card{c(cards.RankAce), c(cards.RankKing)}, 21},
		{"ace first busts", []cards.Card{c(cards.RankAce), num(5), num(8)}, 24},
		{"ace last saves", []cards.Card{num(5), num(8), c(cards.RankAce)}, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HandValue(tt.hand))
		})
	}
}

func TestHandValueOrderIndependentWithoutAces(t *testing.T) {
	a := []cards.Card{num(4), c(cards.RankJack), num(7)}
	b := []cards.Card{num(7), num(4), c(cards.RankJack)}
	assert.Equal(t, HandValue(a), HandValue(b))
}
