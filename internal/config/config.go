// Package config provides YAML-based game configuration loading and the
// difficulty tier table for Fireball Dodge.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) by Validate for configs the
// simulation cannot run with.
var ErrInvalidConfig = errors.New("invalid config")

// FireballConfig contains all configuration for the game.
type FireballConfig struct {
	Arena   ArenaConfig  `yaml:"arena"`
	Player  PlayerConfig `yaml:"player"`
	Hazards HazardConfig `yaml:"hazards"`
	Tiers   TiersConfig  `yaml:"tiers"`
	Input   InputConfig  `yaml:"input"`
}

// ArenaConfig defines the play area in pixels.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player box and its fixed start position.
type PlayerConfig struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"` // Pixels per frame per held direction
}

// HazardConfig defines fireball size, spawn point, schedule and launch speeds.
type HazardConfig struct {
	Width              int `yaml:"width"`
	Height             int `yaml:"height"`
	SpawnX             int `yaml:"spawn_x"`
	SpawnY             int `yaml:"spawn_y"`
	ActivationInterval int `yaml:"activation_interval"` // Frames between activations
	MinSpeed           int `yaml:"min_speed"`           // Smallest velocity magnitude per axis
	MaxSpeed           int `yaml:"max_speed"`           // Largest velocity magnitude per axis
}

// InputConfig tunes how platforms turn key presses into held buttons.
type InputConfig struct {
	HoldFrames int `yaml:"hold_frames"` // Frames a key press counts as held
}

// Validate checks that the config keeps the simulation invariants satisfiable.
func (c FireballConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	a, p, h := c.Arena, c.Player, c.Hazards

	if a.Width <= 0 || a.Height <= 0 {
		fail("arena must have positive size, got %dx%d", a.Width, a.Height)
	}
	if p.Width <= 0 || p.Height <= 0 || p.Width > a.Width || p.Height > a.Height {
		fail("player size %dx%d does not fit arena %dx%d", p.Width, p.Height, a.Width, a.Height)
	}
	if h.Width <= 0 || h.Height <= 0 || h.Width > a.Width || h.Height > a.Height {
		fail("hazard size %dx%d does not fit arena %dx%d", h.Width, h.Height, a.Width, a.Height)
	}
	if p.Speed <= 0 {
		fail("player speed must be positive, got %d", p.Speed)
	}
	if p.StartX < 0 || p.StartX > a.Width-p.Width || p.StartY < 0 || p.StartY > a.Height-p.Height {
		fail("player start (%d, %d) is outside the arena", p.StartX, p.StartY)
	}
	if h.SpawnX < 0 || h.SpawnX > a.Width-h.Width || h.SpawnY < 0 || h.SpawnY > a.Height-h.Height {
		fail("hazard spawn (%d, %d) is outside the arena", h.SpawnX, h.SpawnY)
	}
	if h.ActivationInterval < 0 {
		fail("activation interval must not be negative, got %d", h.ActivationInterval)
	}
	if h.MinSpeed < 1 || h.MaxSpeed < h.MinSpeed {
		fail("hazard speed range [%d, %d] must satisfy 1 <= min <= max", h.MinSpeed, h.MaxSpeed)
	}
	// A reflected move stays in bounds only while a single step is at most
	// half of the travel range on that axis.
	if limit := min(a.Width-h.Width, a.Height-h.Height) / 2; h.MaxSpeed > limit {
		fail("hazard max speed %d exceeds reflection limit %d", h.MaxSpeed, limit)
	}
	for _, d := range Difficulties() {
		t := c.Tiers.Get(d)
		if t.Hazards <= 0 {
			fail("tier %s must have at least one hazard", d)
		}
		if t.SurvivalFrames <= 0 {
			fail("tier %s must have a positive survival threshold", d)
		}
	}
	if c.Input.HoldFrames < 1 {
		fail("input hold frames must be at least 1, got %d", c.Input.HoldFrames)
	}

	return errors.Join(errs...)
}
