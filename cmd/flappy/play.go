package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W - Flap (Space also starts)
  Enter/R    - Start / restart after game over
  Ctrl+S     - Save a screenshot to ~/.flappy/screenshots
  Q/Ctrl+C   - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --fps 30
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "flappy")
	if err != nil {
		return err
	}

	newGame, err := loadGameFactory(flagConfig, logger)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without persistence", "db", flagDBPath, "error", err)
		store = nil
	}

	game := newGame(store, logger)
	logger.Info("starting game", "fps", cfg.TickRate, "seed", cfg.Seed, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	runErr := tui.Run(game, store, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
