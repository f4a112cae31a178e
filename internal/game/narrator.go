package game

import (
	"fmt"
	"io"
	"strings"

	"twentyone/internal/cards"
	"twentyone/internal/chips"
	"twentyone/internal/history"
)

// Narrator writes the line-oriented account of play. Exact wording is
// presentation; the amounts and hand values always come straight from the
// round engine.
type Narrator struct {
	w io.Writer
}

// NewNarrator returns a narrator writing to w.
func NewNarrator(w io.Writer) *Narrator { return &Narrator{w: w} }

// Blank prints an empty separator line.
func (n *Narrator) Blank() { fmt.Fprintln(n.w) }

// Shuffle announces the fresh shoe at the top of a round.
func (n *Narrator) Shuffle() { fmt.Fprintln(n.w, "Dealer shuffles a deck of cards.") }

// ChipReport prints the per-denomination counts and total of a stack.
func (n *Narrator) ChipReport(title string, s *chips.Stack) {
	fmt.Fprintln(n.w)
	fmt.Fprintln(n.w, title)
	for _, g := range s.Summary() {
		fmt.Fprintf(n.w, "%d %s ($%d) chips\n", g.Count, g.Category, g.Value)
	}
	fmt.Fprintf(n.w, "Total chip value: $%d\n", s.TotalValue())
}

// PlaceBet opens the betting phase.
func (n *Narrator) PlaceBet() {
	fmt.Fprintln(n.w)
	fmt.Fprintln(n.w, "Place a bet.")
}

// InsufficientChips rejects a bet the player cannot cover.
func (n *Narrator) InsufficientChips(bet, held int) {
	fmt.Fprintf(n.w, "You cannot bet $%d with only $%d in chips.\n", bet, held)
}

// DealTo reports one card leaving the shoe.
func (n *Narrator) DealTo(name string, c cards.Card) {
	fmt.Fprintf(n.w, "Dealer deals %s %s\n", name, c)
}

// Hand prints a labeled hand with its value.
func (n *Narrator) Hand(label string, cs []cards.Card, value int) {
	strs := make([]string, len(cs))
	for i, c := range cs {
		strs[i] = c.String()
	}
	fmt.Fprintf(n.w, "%s: %s (%d)\n", label, strings.Join(strs, ", "), value)
}

// Blackjack announces a natural and the total returned, stake included.
func (n *Narrator) Blackjack(total int) {
	fmt.Fprintln(n.w)
	fmt.Fprintln(n.w, "You got blackjack! You win.")
	fmt.Fprintf(n.w, "You win $%d.\n", total)
}

// Doubled reports the raised stake after a double down.
func (n *Narrator) Doubled(stake int) {
	fmt.Fprintf(n.w, "You double down; your stake is now $%d.\n", stake)
}

// Split announces the hand splitting in two.
func (n *Narrator) Split() {
	fmt.Fprintln(n.w, "You split your hand into two.")
}

// Bust reports a busted hand.
func (n *Narrator) Bust(value int) {
	fmt.Fprintln(n.w)
	fmt.Fprintf(n.w, "You have busted with hand value of %d.\n", value)
}

// Push reports a tied settlement and the returned stake.
func (n *Narrator) Push(value, stake int) {
	fmt.Fprintf(n.w, "It's a push. Both the dealer and you have the same hand value of %d.\n", value)
	fmt.Fprintf(n.w, "You get your $%d back.\n", stake)
}

// Win reports a winning settlement; total includes the returned stake.
func (n *Narrator) Win(playerValue, dealerValue, total int) {
	fmt.Fprintf(n.w, "You win! Your hand value is %d vs dealer's %d.\n", playerValue, dealerValue)
	fmt.Fprintf(n.w, "You win $%d.\n", total)
}

// Lose reports a losing settlement. A busted hand already had its value
// announced, so only the forfeited stake is repeated.
func (n *Narrator) Lose(playerValue, dealerValue, stake int, busted bool) {
	if !busted {
		fmt.Fprintf(n.w, "You lose. Your hand value is %d vs dealer's %d.\n", playerValue, dealerValue)
	}
	fmt.Fprintf(n.w, "You lose $%d.\n", stake)
}

// SessionSummary prints the aggregate record at quit.
func (n *Narrator) SessionSummary(s *history.Summary) {
	fmt.Fprintln(n.w)
	fmt.Fprintf(n.w, "You played %d rounds: %d wins, %d blackjacks, %d pushes, %d losses.\n",
		s.Rounds, s.Wins, s.Blackjacks, s.Pushes, s.Losses)
	switch {
	case s.Net > 0:
		fmt.Fprintf(n.w, "You leave the table up $%d.\n", s.Net)
	case s.Net < 0:
		fmt.Fprintf(n.w, "You leave the table down $%d.\n", -s.Net)
	default:
		fmt.Fprintln(n.w, "You leave the table even.")
	}
}
