package flappy

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// BestScoreKey is the persistent key holding the best score.
const BestScoreKey = "flappy.best_score"

// State is the session phase.
type State int

const (
	StateStart   State = iota // Waiting for the first start command
	StatePlaying              // Simulation running
	StateEnded                // Run over, waiting for restart
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// BestScoreStore persists the best score under a single key.
type BestScoreStore interface {
	LoadBestScore(key string) (int, error)
	SaveBestScore(key string, score int) error
}

// Session owns everything that changes during play: the actor, the obstacle
// stream, the score and the best score.
type Session struct {
	cfg    config.FlappyConfig
	state  State
	actor  Actor
	stream *ObstacleStream
	score  int
	best   int
	step   int // Steps since the run started

	store  BestScoreStore
	logger *log.Logger
}

// NewSession creates a session in the Start state and loads the best score.
// A nil store disables persistence; a nil logger discards output.
func NewSession(cfg config.FlappyConfig, seed int64, store BestScoreStore, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:    cfg,
		state:  StateStart,
		actor:  NewActor(cfg, cfg.World.Height/2),
		stream: NewObstacleStream(cfg, seed),
		store:  store,
		logger: logger,
	}
	s.best = s.loadBest()
	return s
}

// loadBest reads the persisted best score. Any failure counts as zero.
func (s *Session) loadBest() int {
	if s.store == nil {
		return 0
	}
	best, err := s.store.LoadBestScore(BestScoreKey)
	if err != nil {
		s.logger.Warn("could not load best score", "error", err)
		return 0
	}
	if best < 0 {
		return 0
	}
	return best
}

// reset returns to the Start state with a fresh RNG, keeping the best score.
func (s *Session) reset(seed int64) {
	s.actor.Reset(s.cfg.World.Height / 2)
	s.stream.Reset(seed)
	s.score = 0
	s.step = 0
	s.state = StateStart
}

// Start begins a new run from the Start or Ended state.
// Returns false if a run is already in progress.
func (s *Session) Start() bool {
	if s.state == StatePlaying {
		return false
	}

	s.actor.Reset(s.cfg.World.Height / 2)
	s.stream.Clear()
	s.score = 0
	s.step = 0
	s.state = StatePlaying
	return true
}

// Flap forwards to the actor while playing. Returns false if ignored.
func (s *Session) Flap() bool {
	if s.state != StatePlaying {
		return false
	}
	s.actor.Flap()
	return true
}

// Advance runs one simulation step of dt nominal frames.
// Returns true if the run ended on this step.
func (s *Session) Advance(dt float64) bool {
	if s.state != StatePlaying {
		return false
	}

	s.actor.Integrate(dt)

	s.stream.SetStepDuration(dt)
	s.stream.MaybeSpawn(s.step)
	s.stream.Advance(dt)
	s.score += s.stream.MarkPassedAndScore(s.actor.X)
	s.stream.Prune()

	ended := false
	if Collides(s.actor, s.stream.Obstacles(), s.cfg.FloorY()) {
		s.End()
		ended = true
	}

	s.step++
	return ended
}

// End finishes the current run and records a new best score.
func (s *Session) End() {
	if s.state != StatePlaying {
		return
	}
	s.state = StateEnded

	if s.score <= s.best {
		return
	}
	s.best = s.score
	s.logger.Info("new best score", "score", s.best)

	if s.store == nil {
		return
	}
	if err := s.store.SaveBestScore(BestScoreKey, s.best); err != nil {
		s.logger.Error("could not save best score", "score", s.best, "error", err)
	}
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Score returns the score of the current or last run.
func (s *Session) Score() int { return s.score }

// Best returns the best score seen so far.
func (s *Session) Best() int { return s.best }

// Steps returns the number of steps processed in the current run.
func (s *Session) Steps() int { return s.step }

// Actor returns a copy of the actor.
func (s *Session) Actor() Actor { return s.actor }
