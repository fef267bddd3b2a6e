package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a pipe pair with a passable gap.
type Obstacle struct {
	X         float64 // Left edge
	GapTop    float64 // Top edge of the gap
	Width     float64
	GapHeight float64
	Passed    bool // Whether the player has passed this pipe (for scoring)
}

// Right returns the x-coordinate of the trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// GapBottom returns the bottom edge of the gap.
func (o Obstacle) GapBottom() float64 {
	return o.GapTop + o.GapHeight
}

// TopPipe returns the solid part above the gap.
func (o Obstacle) TopPipe() core.Rect {
	return core.NewRect(o.X, 0, o.Width, o.GapTop)
}

// BottomPipe returns the solid part between the gap and floorY.
func (o Obstacle) BottomPipe(floorY float64) core.Rect {
	return core.NewRect(o.X, o.GapBottom(), o.Width, floorY-o.GapBottom())
}

// ObstacleStream handles spawning, movement, scoring and removal of pipes.
// Obstacles are kept in spawn order, which is also left-to-right order.
type ObstacleStream struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.FlappyConfig
	every     int // Steps between spawns at the current step duration
}

// NewObstacleStream creates a stream with the given RNG seed.
func NewObstacleStream(cfg config.FlappyConfig, seed int64) *ObstacleStream {
	st := &ObstacleStream{
		obstacles: make([]Obstacle, 0, 8),
		cfg:       cfg,
	}
	st.SetStepDuration(1)
	st.Reset(seed)
	return st
}

// Reset clears all pipes and reseeds the RNG.
func (st *ObstacleStream) Reset(seed int64) {
	st.Clear()
	st.rng = rand.New(rand.NewSource(seed))
}

// Clear removes all pipes without touching the RNG.
func (st *ObstacleStream) Clear() {
	st.obstacles = st.obstacles[:0]
}

// SetStepDuration rescales the spawn interval for steps of dt nominal frames.
func (st *ObstacleStream) SetStepDuration(dt float64) {
	st.every = SpawnEvery(st.cfg.Obstacles.SpawnInterval, dt)
}

// SpawnEvery converts a spawn interval in nominal frames into a step count.
func SpawnEvery(interval int, dt float64) int {
	if dt <= 0 {
		dt = 1
	}
	return max(1, int(math.Round(float64(interval)/dt)))
}

// MaybeSpawn appends a pipe at the right edge on every spawn-interval step.
// Returns true if a pipe was spawned.
func (st *ObstacleStream) MaybeSpawn(step int) bool {
	if step%st.every != 0 {
		return false
	}

	lo, hi := st.cfg.GapTopRange()
	st.obstacles = append(st.obstacles, Obstacle{
		X:         st.cfg.World.Width,
		GapTop:    st.rng.Float64()*(hi-lo) + lo,
		Width:     st.cfg.Obstacles.Width,
		GapHeight: st.cfg.Obstacles.GapHeight,
	})
	return true
}

// Advance moves every pipe left by one step of travel.
func (st *ObstacleStream) Advance(dt float64) {
	dx := st.cfg.Obstacles.Speed * dt
	for i := range st.obstacles {
		st.obstacles[i].X -= dx
	}
}

// MarkPassedAndScore marks pipes whose trailing edge has crossed actorX.
// Returns the number of pipes passed this step; each pipe counts once.
func (st *ObstacleStream) MarkPassedAndScore(actorX float64) int {
	passed := 0
	for i := range st.obstacles {
		if !st.obstacles[i].Passed && st.obstacles[i].Right() < actorX {
			st.obstacles[i].Passed = true
			passed++
		}
	}
	return passed
}

// Prune removes pipes that have moved fully off the left side.
func (st *ObstacleStream) Prune() {
	kept := st.obstacles[:0]
	for _, o := range st.obstacles {
		if o.Right() >= 0 {
			kept = append(kept, o)
		}
	}
	st.obstacles = kept
}

// Obstacles returns the active pipes. The slice must not be modified.
func (st *ObstacleStream) Obstacles() []Obstacle {
	return st.obstacles
}

// Len returns the number of active pipes.
func (st *ObstacleStream) Len() int {
	return len(st.obstacles)
}
