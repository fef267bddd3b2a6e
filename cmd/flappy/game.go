package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var _ flappy.BestScoreStore = (*storage.Store)(nil)

// loadGameFactory loads the game config at path (empty for the default
// search order) and returns a factory for games using it.
func loadGameFactory(path string, logger *log.Logger) (tui.GameFactory, error) {
	cfg, err := config.LoadFlappy(path, logger)
	if err != nil {
		return nil, err
	}
	return gameFactory(&cfg), nil
}

// gameFactory returns a tui.GameFactory building games from cfg.
func gameFactory(cfg *config.FlappyConfig) tui.GameFactory {
	return func(store *storage.Store, logger *log.Logger) tui.Game {
		opts := flappy.Options{Config: cfg, Logger: logger}
		// A nil *Store must not become a non-nil interface
		if store != nil {
			opts.Store = store
		}
		return flappy.New(opts)
	}
}
