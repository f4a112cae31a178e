package game

import (
	"fmt"

	"github.com/shopspring/decimal"

	"twentyone/internal/cards"
	"twentyone/internal/chips"
)

// Prompter supplies validated decisions from the player. Implementations
// re-prompt on invalid input; the round engine only ever sees an index in
// [1, len(options)] from Choose, or an amount within the given bounds from
// Amount.
type Prompter interface {
	Choose(options []string) (int, error)
	Amount(min, max int) (int, error)
}

// Outcome of a single hand at settlement.
type Outcome string

const (
	OutcomeBlackjack Outcome = "blackjack"
	OutcomeWin       Outcome = "win"
	OutcomePush      Outcome = "push"
	OutcomeLoss      Outcome = "loss"
)

// HandResult is the settled fate of one hand.
type HandResult struct {
	Outcome     Outcome
	Stake       int
	PlayerValue int
	Payout      int // winnings on top of the returned stake
}

// Result summarizes a finished round.
type Result struct {
	Bet         int
	DealerValue int
	Hands       []HandResult
	Net         int
}

type action int

const (
	actStay action = iota
	actHit
	actDouble
	actSplit
)

// Round runs one game of blackjack from betting through settlement. The
// participants' ledgers persist across rounds; everything else here is
// created fresh per round and discarded with it.
type Round struct {
	player *Participant
	dealer *Dealer
	shoe   *cards.Shoe
	in     Prompter
	out    *Narrator

	minBet int
	maxBet int
}

// NewRound prepares a round against the given shoe and house limits.
func NewRound(player *Participant, dealer *Dealer, shoe *cards.Shoe, in Prompter, out *Narrator, minBet, maxBet int) *Round {
	return &Round{
		player: player,
		dealer: dealer,
		shoe:   shoe,
		in:     in,
		out:    out,
		minBet: minBet,
		maxBet: maxBet,
	}
}

// Play drives the round: betting, the initial deal, the player turn loop
// (including a possible split hand), and settlement against the dealer's
// fixed two-card hand. The dealer never draws past the initial deal; that
// deviation from casino rules is deliberate house behavior here.
func (r *Round) Play() (*Result, error) {
	bet, escrow, err := r.takeBet()
	if err != nil {
		return nil, err
	}

	playerHand := &Hand{Stake: bet, Escrow: escrow}
	dealerHand := &Hand{}
	if err := r.dealInitial(playerHand, dealerHand); err != nil {
		return nil, err
	}

	hands := []*Hand{playerHand}
	firstMove := true

	for i := 0; i < len(hands); i++ {
		h := hands[i]
		if i == 1 {
			// The split hand waits single-carded until the first hand
			// finishes, then receives its second card.
			c, err := r.dealer.Deal(r.shoe, h)
			if err != nil {
				return nil, fmt.Errorf("dealing to split hand: %w", err)
			}
			r.out.DealTo("you", c)
		}

	turn:
		for {
			r.showHands(hands, i, dealerHand)

			if firstMove && h.Value() == 21 {
				res := r.payBlackjack(h)
				return r.finish(bet, dealerHand, []HandResult{res}), nil
			}

			options, acts := r.options(h, len(hands) > 1)
			choice, err := r.in.Choose(options)
			if err != nil {
				return nil, fmt.Errorf("reading decision: %w", err)
			}
			firstMove = false

			switch acts[choice-1] {
			case actStay:
				break turn

			case actHit:
				c, err := r.dealer.Deal(r.shoe, h)
				if err != nil {
					return nil, fmt.Errorf("dealing hit card: %w", err)
				}
				r.out.DealTo("you", c)
				if h.Value() > 21 {
					h.Busted = true
					r.out.Bust(h.Value())
					break turn
				}

			case actDouble:
				c, err := r.dealer.Deal(r.shoe, h)
				if err != nil {
					return nil, fmt.Errorf("dealing double-down card: %w", err)
				}
				r.out.DealTo("you", c)
				h.Escrow = append(h.Escrow, r.player.Chips.Remove(bet)...)
				h.Stake += bet
				h.Doubled = true
				r.out.Doubled(h.Stake)
				if h.Value() > 21 {
					h.Busted = true
					r.out.Bust(h.Value())
				}
				break turn

			case actSplit:
				second := h.Cards[1]
				h.Cards = h.Cards[:1]
				hands = append(hands, &Hand{
					Cards:  []cards.Card{second},
					Stake:  bet,
					Escrow: r.player.Chips.Remove(bet),
				})
				r.out.Split()
				c, err := r.dealer.Deal(r.shoe, h)
				if err != nil {
					return nil, fmt.Errorf("dealing after split: %w", err)
				}
				r.out.DealTo("you", c)
			}
		}
	}

	r.out.Blank()
	dealerValue := dealerHand.Value()
	results := make([]HandResult, 0, len(hands))
	for _, h := range hands {
		results = append(results, r.settle(h, dealerValue))
	}
	return r.finish(bet, dealerHand, results), nil
}

// takeBet reports both ledgers, then collects a bet within the house limits
// that the player can cover. The escrowed chips come out of the player's
// stack greedily and may sum below the bet when the held denominations
// cannot express it; the nominal bet remains the stake.
func (r *Round) takeBet() (int, []chips.Chip, error) {
	r.out.ChipReport("Your chips:", r.player.Chips)
	r.out.ChipReport("Dealer's chips:", r.dealer.Chips)
	r.out.PlaceBet()

	options := []string{
		fmt.Sprintf("bet minimum ($%d)", r.minBet),
		fmt.Sprintf("bet maximum ($%d)", r.maxBet),
		"bet a custom amount",
	}

	for {
		choice, err := r.in.Choose(options)
		if err != nil {
			return 0, nil, fmt.Errorf("reading bet: %w", err)
		}

		var bet int
		switch choice {
		case 1:
			bet = r.minBet
		case 2:
			bet = r.maxBet
		case 3:
			bet, err = r.in.Amount(r.minBet, r.maxBet)
			if err != nil {
				return 0, nil, fmt.Errorf("reading bet amount: %w", err)
			}
		}

		if held := r.player.Chips.TotalValue(); bet > held {
			r.out.InsufficientChips(bet, held)
			continue
		}
		return bet, r.player.Chips.Remove(bet), nil
	}
}

func (r *Round) dealInitial(player, dealer *Hand) error {
	r.out.Blank()
	order := []struct {
		hand *Hand
		name string
	}{
		{player, "you"},
		{dealer, "himself"},
		{player, "you"},
		{dealer, "himself"},
	}
	for _, d := range order {
		c, err := r.dealer.Deal(r.shoe, d.hand)
		if err != nil {
			return fmt.Errorf("initial deal: %w", err)
		}
		r.out.DealTo(d.name, c)
	}
	return nil
}

func (r *Round) showHands(hands []*Hand, active int, dealerHand *Hand) {
	r.out.Blank()
	if len(hands) == 1 {
		r.out.Hand("Your hand", hands[0].Cards, hands[0].Value())
	} else {
		labels := [2]string{"Your first hand", "Your second hand"}
		for i, h := range hands {
			label := labels[i]
			if i == active {
				label += " (playing)"
			}
			r.out.Hand(label, h.Cards, h.Value())
		}
	}
	r.out.Hand("Dealer's hand", dealerHand.Cards, dealerHand.Value())
}

// options lists the legal decisions for the active hand.
func (r *Round) options(h *Hand, splitDone bool) ([]string, []action) {
	opts := []string{"stay", "hit"}
	acts := []action{actStay, actHit}
	if len(h.Cards) == 2 && !h.Doubled {
		opts = append(opts, "double down")
		acts = append(acts, actDouble)
	}
	if len(h.Cards) == 2 && !splitDone && h.Cards[0].Rank == h.Cards[1].Rank {
		opts = append(opts, "split")
		acts = append(acts, actSplit)
	}
	return opts, acts
}

// payBlackjack settles a natural: 3:2 on the stake, rounded up, drawn from
// the dealer's ledger, plus the escrowed stake back.
func (r *Round) payBlackjack(h *Hand) HandResult {
	win := blackjackPayout(h.Stake)
	winChips := r.dealer.Chips.Remove(win)
	r.player.Chips.Add(h.Escrow...)
	r.player.Chips.Add(winChips...)
	r.out.Blackjack(win + h.Stake)
	return HandResult{Outcome: OutcomeBlackjack, Stake: h.Stake, PlayerValue: 21, Payout: win}
}

// settle resolves one finished hand against the dealer's fixed value. A
// forfeited stake stays out of both ledgers: it was escrowed from the player
// and is simply discarded, matching the house's accounting.
func (r *Round) settle(h *Hand, dealerValue int) HandResult {
	playerValue := h.Value()
	res := HandResult{Stake: h.Stake, PlayerValue: playerValue}

	switch {
	case h.Busted || playerValue < dealerValue:
		res.Outcome = OutcomeLoss
		r.out.Lose(playerValue, dealerValue, h.Stake, h.Busted)
	case playerValue == dealerValue:
		res.Outcome = OutcomePush
		r.player.Chips.Add(h.Escrow...)
		r.out.Push(playerValue, h.Stake)
	default:
		res.Outcome = OutcomeWin
		res.Payout = h.Stake
		winChips := r.dealer.Chips.Remove(h.Stake)
		r.player.Chips.Add(h.Escrow...)
		r.player.Chips.Add(winChips...)
		r.out.Win(playerValue, dealerValue, h.Stake*2)
	}
	return res
}

func (r *Round) finish(bet int, dealerHand *Hand, results []HandResult) *Result {
	res := &Result{Bet: bet, DealerValue: dealerHand.Value(), Hands: results}
	for _, h := range results {
		switch h.Outcome {
		case OutcomeBlackjack, OutcomeWin:
			res.Net += h.Payout
		case OutcomeLoss:
			res.Net -= h.Stake
		}
	}
	return res
}

// blackjackPayout is the 3:2 premium on a natural, rounded up to a whole
// dollar: a $5 stake wins $8.
func blackjackPayout(stake int) int {
	return int(decimal.NewFromInt(int64(stake)).
		Mul(decimal.NewFromInt(3)).
		Div(decimal.NewFromInt(2)).
		Ceil().
		IntPart())
}
