// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Options configures a new Game.
type Options struct {
	Config *config.FlappyConfig // nil means defaults
	Store  BestScoreStore       // nil disables best-score persistence
	Logger *log.Logger          // nil discards logs
}

// Game drives a Session one step per tick and renders it.
type Game struct {
	cfg     config.FlappyConfig
	session *Session
	dt      float64 // Step length in nominal frames
	frame   int     // Ticks since creation, drives decoration
	logger  *log.Logger
}

// New creates a new Flappy Bird game instance. The best score is loaded once here.
func New(opts Options) *Game {
	cfg := config.DefaultFlappyConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:    cfg,
		logger: logger,
		dt:     1,
	}
	g.session = NewSession(cfg, 0, opts.Store, logger)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset applies the runtime config and returns to the start screen.
// The best score is kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.dt = StepDuration(g.cfg.Physics.NominalRate, runtime.TickRate)
	g.session.reset(runtime.Seed)
}

// StepDuration returns the length of one tick in nominal frames.
func StepDuration(nominalRate, tickRate int) float64 {
	if nominalRate <= 0 || tickRate <= 0 {
		return 1
	}
	return float64(nominalRate) / float64(tickRate)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++

	// Flap is resolved against the state the tick began in.
	if in.Has(core.ActionFlap) {
		g.session.Flap()
	}
	if in.Has(core.ActionStart) {
		g.session.Start()
	}

	ended := g.session.Advance(g.dt)
	if ended {
		g.logger.Debug("run ended", "score", g.session.Score(), "steps", g.session.Steps())
	}

	return core.StepResult{State: g.State(), Ended: ended}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Score(),
		BestScore: g.session.Best(),
		Waiting:   g.session.State() == StateStart,
		GameOver:  g.session.State() == StateEnded,
	}
}

// Snapshot returns a read-only copy of the simulation state.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	render(dst, g.session.Snapshot(), g.frame, g.cfg.Obstacles.Speed)
}
