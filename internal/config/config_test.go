package config

import "testing"

func TestDefaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.MinBet != 5 {
		t.Errorf("expected default min bet 5, got %d", cfg.MinBet)
	}
	if cfg.MaxBet != 500 {
		t.Errorf("expected default max bet 500, got %d", cfg.MaxBet)
	}
	if cfg.HistoryDSN != ":memory:" {
		t.Errorf("expected default DSN :memory:, got %q", cfg.HistoryDSN)
	}
	if cfg.ShoeSeed != "" {
		t.Errorf("expected empty shoe seed, got %q", cfg.ShoeSeed)
	}
}

func TestOverrides(t *testing.T) {
	t.Setenv("TWENTYONE_MIN_BET", "10")
	t.Setenv("TWENTYONE_MAX_BET", "1000")
	t.Setenv("TWENTYONE_SHOE_SEED", "table-7")
	t.Setenv("TWENTYONE_HISTORY_DSN", "file:session.db")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.MinBet != 10 || cfg.MaxBet != 1000 {
		t.Errorf("expected limits 10/1000, got %d/%d", cfg.MinBet, cfg.MaxBet)
	}
	if cfg.ShoeSeed != "table-7" {
		t.Errorf("expected shoe seed table-7, got %q", cfg.ShoeSeed)
	}
	if cfg.HistoryDSN != "file:session.db" {
		t.Errorf("expected DSN override, got %q", cfg.HistoryDSN)
	}
}

func TestInvalidValues(t *testing.T) {
	t.Run("non-integer", func(t *testing.T) {
		t.Setenv("TWENTYONE_MIN_BET", "five")
		if _, err := FromEnv(); err == nil {
			t.Error("expected an error for non-integer min bet")
		}
	})

	t.Run("max below min", func(t *testing.T) {
		t.Setenv("TWENTYONE_MIN_BET", "100")
		t.Setenv("TWENTYONE_MAX_BET", "50")
		if _, err := FromEnv(); err == nil {
			t.Error("expected an error for max below min")
		}
	})

	t.Run("non-positive min", func(t *testing.T) {
		t.Setenv("TWENTYONE_MIN_BET", "0")
		if _, err := FromEnv(); err == nil {
			t.Error("expected an error for zero min bet")
		}
	})
}
