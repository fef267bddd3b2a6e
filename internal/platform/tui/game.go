package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Game is the contract between the platform loop and a game simulation.
// The platform calls Step once per tick and Render once per frame.
type Game interface {
	// ID returns the identifier used for score history.
	ID() string
	// Title returns the display name.
	Title() string
	// Reset applies the runtime config and returns to the start screen.
	Reset(cfg core.RuntimeConfig)
	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult
	// Render draws the current state into dst.
	Render(dst *core.Screen)
	// State returns the current score and status flags.
	State() core.GameState
}

// GameFactory creates a fresh Game. The SSH server calls it once per session.
// store may be nil when the scores database is unavailable.
type GameFactory func(store *storage.Store, logger *log.Logger) Game
