package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"twentyone/internal/chips"
	"twentyone/internal/cli"
	"twentyone/internal/config"
	"twentyone/internal/game"
	"twentyone/internal/history"
)

func main() {
	// .env is an optional convenience; real configuration is the environment.
	_ = godotenv.Load()

	logger := log.New(os.Stderr, "[twentyone] ", log.LstdFlags)

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatalf("configuration: %v", err)
	}

	rec, err := history.NewSQLiteRecorder(cfg.HistoryDSN)
	if err != nil {
		logger.Fatalf("opening history store: %v", err)
	}
	defer rec.Close()
	if err := rec.Migrate(); err != nil {
		logger.Fatalf("migrating history store: %v", err)
	}

	session := &game.Session{
		Player:   &game.Participant{Name: "you", Chips: chips.StarterStack()},
		Dealer:   &game.Dealer{Participant: game.Participant{Name: "dealer", Chips: chips.HouseStack()}},
		In:       cli.NewPrompter(os.Stdin, os.Stdout),
		Out:      game.NewNarrator(os.Stdout),
		Rec:      rec,
		Logger:   logger,
		MinBet:   cfg.MinBet,
		MaxBet:   cfg.MaxBet,
		ShoeSeed: cfg.ShoeSeed,
	}
	if err := session.Run(); err != nil {
		logger.Fatalf("session: %v", err)
	}
}
