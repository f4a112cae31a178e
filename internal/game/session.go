package game

import (
	"fmt"
	"log"

	"twentyone/internal/cards"
	"twentyone/internal/history"
)

// Session drives rounds until the player quits, recording each finished
// round in the history ledger. The player and dealer ledgers are owned here
// and passed by reference into every round.
type Session struct {
	Player *Participant
	Dealer *Dealer
	In     Prompter
	Out    *Narrator
	Rec    history.Recorder
	Logger *log.Logger

	MinBet   int
	MaxBet   int
	ShoeSeed string

	roundsPlayed uint64
}

// Run plays rounds until the player chooses to quit, then prints the
// session summary.
func (s *Session) Run() error {
	for {
		s.Out.Shuffle()
		round := NewRound(s.Player, s.Dealer, s.newShoe(), s.In, s.Out, s.MinBet, s.MaxBet)
		result, err := round.Play()
		if err != nil {
			return fmt.Errorf("round %d: %w", s.roundsPlayed+1, err)
		}
		s.roundsPlayed++
		s.record(result)

		again, err := s.In.Choose([]string{"play again", "quit"})
		if err != nil {
			return fmt.Errorf("reading play-again choice: %w", err)
		}
		if again != 1 {
			break
		}
		s.Out.Blank()
	}

	s.printSummary()
	return nil
}

// newShoe builds the round's shoe: seeded and replayable when a seed is
// configured, uniformly shuffled otherwise.
func (s *Session) newShoe() *cards.Shoe {
	if s.ShoeSeed != "" {
		return cards.NewSeededShoe(s.ShoeSeed, s.roundsPlayed)
	}
	return cards.NewShuffledShoe()
}

// record saves the round; recorder trouble is logged, never fatal to play.
func (s *Session) record(res *Result) {
	if s.Rec == nil {
		return
	}
	rec := &history.Round{Bet: res.Bet, DealerValue: res.DealerValue, Net: res.Net}
	for i, h := range res.Hands {
		rec.Hands = append(rec.Hands, history.Hand{
			Idx:         i,
			Outcome:     string(h.Outcome),
			Stake:       h.Stake,
			PlayerValue: h.PlayerValue,
			Payout:      h.Payout,
		})
	}
	if err := s.Rec.SaveRound(rec); err != nil && s.Logger != nil {
		s.Logger.Printf("recording round: %v", err)
	}
}

func (s *Session) printSummary() {
	if s.Rec == nil {
		return
	}
	sum, err := s.Rec.Summary()
	if err != nil {
		if s.Logger != nil {
			s.Logger.Printf("summarizing session: %v", err)
		}
		return
	}
	s.Out.SessionSummary(sum)
}
