package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/saeidalz13/battleship-bot/console"
	"github.com/saeidalz13/battleship-bot/internal/config"
	mb "github.com/saeidalz13/battleship-bot/models/battleship"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "battleship",
		Level:           cfg.LogLevel,
		ReportTimestamp: cfg.Stage == config.StageDev,
	})

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Debug("starting", "stage", cfg.Stage, "seed", seed)

	c := console.New(os.Stdin, os.Stdout, console.WithClearScreen(cfg.ClearScreen))
	session := console.NewSession(c, mb.NewRand(seed), console.WithLogger(logger))
	if err := session.Run(); err != nil {
		logger.Fatal("session ended without a winner", "err", err)
	}
}
