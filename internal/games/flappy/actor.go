package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Actor is the bird. X never changes; Y grows downward.
type Actor struct {
	X        float64 // Fixed horizontal centre
	Y        float64 // Vertical centre
	Velocity float64 // Vertical velocity per nominal frame (negative = up)
	Tilt     float64 // Display angle in radians, derived from velocity
	Size     float64 // Hitbox edge length

	physics config.FlappyPhysics
}

// NewActor creates an actor at the configured column, resting at y.
func NewActor(cfg config.FlappyConfig, y float64) Actor {
	a := Actor{
		X:       cfg.Player.X,
		Size:    cfg.Player.Size,
		physics: cfg.Physics,
	}
	a.Reset(y)
	return a
}

// Reset places the actor at y with no motion.
func (a *Actor) Reset(y float64) {
	a.Y = y
	a.Velocity = 0
	a.Tilt = 0
}

// Integrate applies one step of gravity. dt is the step length in nominal
// frames; velocity is updated before it is applied to the position.
func (a *Actor) Integrate(dt float64) {
	a.Velocity += a.physics.Gravity * dt
	a.Y += a.Velocity * dt

	a.Tilt = core.ClampF(a.Velocity*a.physics.TiltFactor, -a.physics.MaxTilt, a.physics.MaxTilt)

	// Pinned to the ceiling
	if top := a.Size / 2; a.Y < top {
		a.Y = top
		a.Velocity = 0
	}
}

// Flap sets the velocity to the jump velocity regardless of the current one.
func (a *Actor) Flap() {
	a.Velocity = a.physics.JumpVelocity
}

// Bounds returns the actor's hitbox.
func (a Actor) Bounds() core.Rect {
	return core.RectAround(a.X, a.Y, a.Size, a.Size)
}
