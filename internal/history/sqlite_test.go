package history

import "testing"

func newTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	rec, err := NewSQLiteRecorder(":memory:")
	if err != nil {
		t.Fatalf("opening recorder: %v", err)
	}
	t.Cleanup(func() { rec.Close() })
	if err := rec.Migrate(); err != nil {
		t.Fatalf("migrating: %v", err)
	}
	return rec
}

func TestSaveRoundAssignsID(t *testing.T) {
	rec := newTestRecorder(t)

	r := &Round{
		Bet:         5,
		DealerValue: 16,
		Net:         0,
		Hands:       []Hand{{Idx: 0, Outcome: "push", Stake: 5, PlayerValue: 16}},
	}
	if err := rec.SaveRound(r); err != nil {
		t.Fatalf("SaveRound failed: %v", err)
	}
	if r.ID == "" {
		t.Error("expected an ID to be assigned")
	}
}

func TestSummary(t *testing.T) {
	rec := newTestRecorder(t)

	rounds := []*Round{
		{
			Bet: 5, DealerValue: 18, Net: 13,
			Hands: []Hand{{Idx: 0, Outcome: "blackjack", Stake: 5, PlayerValue: 21, Payout: 8}},
		},
		{
			Bet: 10, DealerValue: 19, Net: -5,
			Hands: []Hand{
				{Idx: 0, Outcome: "loss", Stake: 10, PlayerValue: 18},
				{Idx: 1, Outcome: "win", Stake: 10, PlayerValue: 20, Payout: 10},
			},
		},
		{
			Bet: 5, DealerValue: 17, Net: 0,
			Hands: []Hand{{Idx: 0, Outcome: "push", Stake: 5, PlayerValue: 17}},
		},
	}
	for i, r := range rounds {
		if err := rec.SaveRound(r); err != nil {
			t.Fatalf("saving round %d: %v", i, err)
		}
	}

	sum, err := rec.Summary()
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	if sum.Rounds != 3 {
		t.Errorf("expected 3 rounds, got %d", sum.Rounds)
	}
	if sum.Wins != 1 {
		t.Errorf("expected 1 win, got %d", sum.Wins)
	}
	if sum.Losses != 1 {
		t.Errorf("expected 1 loss, got %d", sum.Losses)
	}
	if sum.Pushes != 1 {
		t.Errorf("expected 1 push, got %d", sum.Pushes)
	}
	if sum.Blackjacks != 1 {
		t.Errorf("expected 1 blackjack, got %d", sum.Blackjacks)
	}
	if sum.Net != 8 {
		t.Errorf("expected net 8, got %d", sum.Net)
	}
}

func TestListRounds(t *testing.T) {
	rec := newTestRecorder(t)

	rounds := []*Round{
		{Bet: 5, DealerValue: 18, Net: 5,
			Hands: []Hand{{Idx: 0, Outcome: "win", Stake: 5, PlayerValue: 20, Payout: 5}}},
		{Bet: 10, DealerValue: 19, Net: -5,
			Hands: []Hand{
				{Idx: 0, Outcome: "loss", Stake: 10, PlayerValue: 18},
				{Idx: 1, Outcome: "win", Stake: 10, PlayerValue: 20, Payout: 10},
			}},
		{Bet: 5, DealerValue: 17, Net: 0,
			Hands: []Hand{{Idx: 0, Outcome: "push", Stake: 5, PlayerValue: 17}}},
	}
	for i, r := range rounds {
		if err := rec.SaveRound(r); err != nil {
			t.Fatalf("saving round %d: %v", i, err)
		}
	}

	listed, err := rec.ListRounds(10)
	if err != nil {
		t.Fatalf("ListRounds failed: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 rounds, got %d", len(listed))
	}

	byID := make(map[string]*Round, len(listed))
	for _, r := range listed {
		byID[r.ID] = r
	}
	split := byID[rounds[1].ID]
	if split == nil {
		t.Fatalf("round %s missing from listing", rounds[1].ID)
	}
	if len(split.Hands) != 2 {
		t.Fatalf("expected 2 hands, got %d", len(split.Hands))
	}
	if split.Hands[0].Idx != 0 || split.Hands[1].Idx != 1 {
		t.Errorf("hands out of order: %+v", split.Hands)
	}
	if split.Hands[1].Outcome != "win" || split.Hands[1].Payout != 10 {
		t.Errorf("unexpected second hand: %+v", split.Hands[1])
	}

	limited, err := rec.ListRounds(2)
	if err != nil {
		t.Fatalf("ListRounds failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected the limit to cap at 2 rounds, got %d", len(limited))
	}
}

func TestSummaryEmpty(t *testing.T) {
	rec := newTestRecorder(t)

	sum, err := rec.Summary()
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if sum.Rounds != 0 || sum.Net != 0 {
		t.Errorf("expected empty summary, got %+v", sum)
	}
}
