// Package history keeps the per-session record of finished rounds.
package history

import "time"

// Recorder persists finished rounds for the lifetime of the session.
type Recorder interface {
	Migrate() error
	SaveRound(r *Round) error
	ListRounds(limit int) ([]*Round, error)
	Summary() (*Summary, error)
	Close() error
}

// Round is one finished round of play.
type Round struct {
	ID          string
	Bet         int
	DealerValue int
	Net         int
	Hands       []Hand
	CreatedAt   time.Time
}

// Hand is one settled hand within a round.
type Hand struct {
	ID          int64
	RoundID     string
	Idx         int
	Outcome     string
	Stake       int
	PlayerValue int
	Payout      int
}

// Summary aggregates a session's record.
type Summary struct {
	Rounds     int
	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int
	Net        int
}
