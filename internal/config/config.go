// Package config provides YAML-based game configuration loading for the
// Flappy Bird simulation.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all configuration for the Flappy Bird game.
type FlappyConfig struct {
	Physics   FlappyPhysics   `yaml:"physics"`
	World     FlappyWorld     `yaml:"world"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Player    FlappyPlayer    `yaml:"player"`
}

// FlappyPhysics defines physics parameters. Values are per nominal frame.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"` // Negative = up
	TiltFactor   float64 `yaml:"tilt_factor"`
	MaxTilt      float64 `yaml:"max_tilt"`
	NominalRate  int     `yaml:"nominal_rate"` // Frames per second the constants are tuned for
}

// FlappyWorld defines the visible play area in world units.
type FlappyWorld struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	FloorHeight float64 `yaml:"floor_height"`
}

// FlappyObstacles defines pipe parameters.
type FlappyObstacles struct {
	Width         float64 `yaml:"width"`
	GapHeight     float64 `yaml:"gap_height"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval int     `yaml:"spawn_interval"` // Nominal frames between spawns
	EdgeMargin    float64 `yaml:"edge_margin"`    // Minimum distance of a gap from ceiling and floor
}

// FlappyPlayer defines the bird's fixed column and hitbox size.
type FlappyPlayer struct {
	X    float64 `yaml:"x"`
	Size float64 `yaml:"size"`
}

// FloorY returns the y-coordinate of the floor line.
func (c FlappyConfig) FloorY() float64 {
	return c.World.Height - c.World.FloorHeight
}

// GapTopRange returns the inclusive bounds a pipe's gap top edge is drawn from.
func (c FlappyConfig) GapTopRange() (lo, hi float64) {
	lo = c.Obstacles.EdgeMargin
	hi = c.World.Height - c.Obstacles.GapHeight - c.World.FloorHeight - c.Obstacles.EdgeMargin
	return lo, hi
}

// Validate reports geometry that would make the game unplayable.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.World.FloorHeight < 0 || c.World.FloorHeight >= c.World.Height {
		errs = append(errs, fmt.Errorf("floor_height %v out of range", c.World.FloorHeight))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.GapHeight <= 0 {
		errs = append(errs, errors.New("obstacle width and gap_height must be positive"))
	}
	if c.Obstacles.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("spawn_interval must be positive, got %d", c.Obstacles.SpawnInterval))
	}
	if lo, hi := c.GapTopRange(); hi < lo {
		errs = append(errs, fmt.Errorf("gap does not fit: gap top range [%v, %v] is empty", lo, hi))
	}
	if c.Player.Size <= 0 || c.Player.Size >= c.Obstacles.GapHeight {
		errs = append(errs, fmt.Errorf("player size %v must be positive and smaller than the gap", c.Player.Size))
	}
	if c.Physics.NominalRate <= 0 {
		errs = append(errs, fmt.Errorf("nominal_rate must be positive, got %d", c.Physics.NominalRate))
	}
	if c.Physics.JumpVelocity >= 0 {
		errs = append(errs, fmt.Errorf("jump_velocity must be negative (up), got %v", c.Physics.JumpVelocity))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
	}
	return nil
}
