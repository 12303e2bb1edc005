package config

import (
	_ "embed"
)

//go:embed defaults/fireball.yaml
var defaultFireballYAML []byte

// Default returns the built-in configuration: a 240x160 arena, a 20x20 player
// starting in the middle, 10x10 fireballs spawning in the top-left corner and
// activating every 6 seconds at 60 Hz.
func Default() FireballConfig {
	return FireballConfig{
		Arena: ArenaConfig{
			Width:  240,
			Height: 160,
		},
		Player: PlayerConfig{
			StartX: 110,
			StartY: 70,
			Width:  20,
			Height: 20,
			Speed:  1,
		},
		Hazards: HazardConfig{
			Width:              10,
			Height:             10,
			SpawnX:             0,
			SpawnY:             0,
			ActivationInterval: 360,
			MinSpeed:           1,
			MaxSpeed:           3,
		},
		Tiers: DefaultTiers,
		Input: InputConfig{
			HoldFrames: 8,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFireballYAML
}
