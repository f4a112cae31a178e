package cards

// Card is one of the 52 standard playing cards. Rank 0-8 covers the numerals
// 2-10; ranks 9-12 are Jack, Queen, King and Ace. Suit is cosmetic and never
// affects scoring. A Card is immutable once created.
type Card struct {
	Rank int
	Suit int
}

// Named ranks. Numerals use their position: rank 0 is the two, rank 8 the ten.
const (
	RankJack = 9 + iota
	RankQueen
	RankKing
	RankAce
)

// Suits in deck order.
const (
	SuitSpades = iota
	SuitClubs
	SuitDiamonds
	SuitHearts
)

var rankShort = [13]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

var rankNames = [13]string{
	"two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "jack", "queen", "king", "ace",
}

var suitGlyphs = [4]string{"♠", "♣", "♦", "♥"}

// RankShort returns the compact rank label: a numeral, or J/Q/K/A.
func (c Card) RankShort() string { return rankShort[c.Rank] }

// RankName returns the spelled-out rank, "two" through "ace".
func (c Card) RankName() string { return rankNames[c.Rank] }

// SuitGlyph returns the unicode suit symbol.
func (c Card) SuitGlyph() string { return suitGlyphs[c.Suit] }

// IsFaceCard reports whether the card depicts a person. The ace is grouped
// here for display purposes only; scoring always treats it separately.
func (c Card) IsFaceCard() bool { return c.Rank > 8 }

// String returns the display form, like "A♠" or "10♦".
func (c Card) String() string { return c.RankShort() + c.SuitGlyph() }
