package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/dimaq12/minesweeper/config"
	"github.com/dimaq12/minesweeper/game"
	"github.com/dimaq12/minesweeper/models"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger, closer, err := config.NewLogger(cfg.Log)
	if err != nil {
		fmt.Println("Error setting up logging:", err)
		os.Exit(1)
	}
	defer closer.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session, err := game.NewSession(models.DefaultSize, models.DefaultMineProbability,
		game.WithRand(rand.New(rand.NewSource(seed))),
		game.WithLogger(logger),
	)
	if err != nil {
		logger.WithError(err).Error("cannot start session")
		fmt.Println("Error starting game:", err)
		return
	}
	logger.WithField("seed", seed).WithField("session", session.ID()).Info("session started")

	service := game.NewMinesweeperService(session, logger)
	controller := game.NewGameController(service)

	fmt.Println("Enter reveals, f flags, q quits.")
	if err := controller.StartGame(); err != nil {
		logger.WithError(err).Error("terminal UI failed")
		fmt.Println("Error running game:", err)
		return
	}
	fmt.Println("Quitting...")
}
