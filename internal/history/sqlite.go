package history

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder implements Recorder on an SQLite database. The default DSN
// is ":memory:", so the record lives exactly as long as the process.
type SQLiteRecorder struct {
	db *sql.DB
}

// NewSQLiteRecorder opens the database at dsn, defaulting to in-memory.
func NewSQLiteRecorder(dsn string) (*SQLiteRecorder, error) {
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &SQLiteRecorder{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteRecorder) Close() error { return s.db.Close() }

// Migrate creates the schema.
func (s *SQLiteRecorder) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			bet INTEGER NOT NULL,
			dealer_value INTEGER NOT NULL,
			net INTEGER NOT NULL,
			hand_count INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS hands (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL,
			idx INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			stake INTEGER NOT NULL,
			player_value INTEGER NOT NULL,
			payout INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (round_id) REFERENCES rounds(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_hands_round_id ON hands(round_id)`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_created_at ON rounds(created_at DESC)`,
	}
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// SaveRound stores a round and its hands in one transaction. A missing ID is
// assigned here.
func (s *SQLiteRecorder) SaveRound(r *Round) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO rounds (id, bet, dealer_value, net, hand_count) VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.Bet, r.DealerValue, r.Net, len(r.Hands),
	)
	if err != nil {
		return fmt.Errorf("saving round: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO hands (round_id, idx, outcome, stake, player_value, payout) VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, h := range r.Hands {
		if _, err := stmt.Exec(r.ID, h.Idx, h.Outcome, h.Stake, h.PlayerValue, h.Payout); err != nil {
			return fmt.Errorf("saving hand %d: %w", h.Idx, err)
		}
	}

	return tx.Commit()
}

// ListRounds returns the most recent rounds with their hands, newest first.
func (s *SQLiteRecorder) ListRounds(limit int) ([]*Round, error) {
	rows, err := s.db.Query(
		`SELECT id, bet, dealer_value, net, created_at FROM rounds
		 ORDER BY created_at DESC, id LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing rounds: %w", err)
	}
	defer rows.Close()

	var rounds []*Round
	for rows.Next() {
		var r Round
		if err := rows.Scan(&r.ID, &r.Bet, &r.DealerValue, &r.Net, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning round: %w", err)
		}
		rounds = append(rounds, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, r := range rounds {
		if err := s.loadHands(r); err != nil {
			return nil, err
		}
	}
	return rounds, nil
}

func (s *SQLiteRecorder) loadHands(r *Round) error {
	rows, err := s.db.Query(
		`SELECT id, round_id, idx, outcome, stake, player_value, payout
		 FROM hands WHERE round_id = ? ORDER BY idx`, r.ID,
	)
	if err != nil {
		return fmt.Errorf("loading hands for round %s: %w", r.ID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var h Hand
		if err := rows.Scan(&h.ID, &h.RoundID, &h.Idx, &h.Outcome, &h.Stake, &h.PlayerValue, &h.Payout); err != nil {
			return fmt.Errorf("scanning hand: %w", err)
		}
		r.Hands = append(r.Hands, h)
	}
	return rows.Err()
}

// Summary aggregates the session: rounds played, hand outcomes, and net
// chips won or lost.
func (s *SQLiteRecorder) Summary() (*Summary, error) {
	var sum Summary
	err := s.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(net), 0) FROM rounds`).
		Scan(&sum.Rounds, &sum.Net)
	if err != nil {
		return nil, fmt.Errorf("summarizing rounds: %w", err)
	}

	rows, err := s.db.Query(`SELECT outcome, COUNT(*) FROM hands GROUP BY outcome`)
	if err != nil {
		return nil, fmt.Errorf("summarizing hands: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var outcome string
		var count int
		if err := rows.Scan(&outcome, &count); err != nil {
			return nil, fmt.Errorf("scanning outcome count: %w", err)
		}
		switch outcome {
		case "win":
			sum.Wins = count
		case "loss":
			sum.Losses = count
		case "push":
			sum.Pushes = count
		case "blackjack":
			sum.Blackjacks = count
		}
	}
	return &sum, rows.Err()
}
