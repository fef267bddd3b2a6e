package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// Snapshot is a read-only copy of the session, taken after a step completes.
// Renderers and tests consume it without touching live state.
type Snapshot struct {
	State     State
	Score     int
	Best      int
	Step      int
	Actor     Actor
	Obstacles []Obstacle
	FloorY    float64
	World     config.FlappyWorld
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]Obstacle, s.stream.Len())
	copy(obstacles, s.stream.Obstacles())

	return Snapshot{
		State:     s.state,
		Score:     s.score,
		Best:      s.best,
		Step:      s.step,
		Actor:     s.actor,
		Obstacles: obstacles,
		FloorY:    s.cfg.FloorY(),
		World:     s.cfg.World,
	}
}
