// Package game implements the blackjack round engine and the session loop
// that drives it.
package game

import "twentyone/internal/cards"

// HandValue scores a hand in card order. Kings, queens and jacks count 10;
// an ace counts 11 unless that would bust the total accumulated before it,
// in which case it counts 1; numerals count face value.
//
// The ace decision looks only at cards earlier in the hand, so the score is
// order-dependent: [A,5,8] comes to 24 while [5,8,A] comes to 14, and [A,A]
// comes to 12. This sequential policy is the house rule here, not the
// count-aces-last optimum.
func HandValue(cs []cards.Card) int {
	total := 0
	for _, c := range cs {
		switch {
		case c.Rank == cards.RankAce:
			if total+11 > 21 {
				total++
			} else {
				total += 11
			}
		case c.IsFaceCard():
			total += 10
		default:
			total += c.Rank + 2
		}
	}
	return total
}
