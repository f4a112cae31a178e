package cards

import "testing"

func TestCardLabels(t *testing.T) {
	tests := []struct {
		name  string
		card  Card
		short string
		long  string
		glyph string
		str   string
	}{
		{"ace of spades", Card{Rank: RankAce, Suit: SuitSpades}, "A", "ace", "♠", "A♠"},
		{"two of hearts", Card{Rank: 0, Suit: SuitHearts}, "2", "two", "♥", "2♥"},
		{"ten of diamonds", Card{Rank: 8, Suit: SuitDiamonds}, "10", "ten", "♦", "10♦"},
		{"jack of clubs", Card{Rank: RankJack, Suit: SuitClubs}, "J", "jack", "♣", "J♣"},
		{"queen of spades", Card{Rank: RankQueen, Suit: SuitSpades}, "Q", "queen", "♠", "Q♠"},
		{"king of hearts", Card{Rank: RankKing, Suit: SuitHearts}, "K", "king", "♥", "K♥"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.RankShort(); got != tt.short {
				t.Errorf("RankShort: expected %q, got %q", tt.short, got)
			}
			if got := tt.card.RankName(); got != tt.long {
				t.Errorf("RankName: expected %q, got %q", tt.long, got)
			}
			if got := tt.card.SuitGlyph(); got != tt.glyph {
				t.Errorf("SuitGlyph: expected %q, got %q", tt.glyph, got)
			}
			if got := tt.card.String(); got != tt.str {
				t.Errorf("String: expected %q, got %q", tt.str, got)
			}
		})
	}
}

func TestIsFaceCard(t *testing.T) {
	for rank := 0; rank <= 8; rank++ {
		if (Card{Rank: rank}).IsFaceCard() {
			t.Errorf("rank %d should not be a face card", rank)
		}
	}
	for rank := RankJack; rank <= RankAce; rank++ {
		if !(Card{Rank: rank}).IsFaceCard() {
			t.Errorf("rank %d should be a face card", rank)
		}
	}
}
