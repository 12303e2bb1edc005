package config

import (
	"fmt"
	"strings"
)

// Difficulty selects one of the three session tiers.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// String returns the lower-case tier name.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Difficulties returns all tiers, easiest first.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty converts a tier name ("easy", "medium", "hard") to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium", "normal":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return 0, fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
}

// TierConfig is the session configuration bound to a difficulty.
type TierConfig struct {
	Hazards        int `yaml:"hazards"`         // Number of fireballs in the session
	SurvivalFrames int `yaml:"survival_frames"` // Frames to survive for a win
}

// TiersConfig holds one TierConfig per difficulty.
type TiersConfig struct {
	Easy   TierConfig `yaml:"easy"`
	Medium TierConfig `yaml:"medium"`
	Hard   TierConfig `yaml:"hard"`
}

// Get returns the tier for a difficulty.
func (t TiersConfig) Get(d Difficulty) TierConfig {
	switch d {
	case DifficultyMedium:
		return t.Medium
	case DifficultyHard:
		return t.Hard
	default:
		return t.Easy
	}
}

// DefaultTiers is the stock tier table. Frame thresholds assume a 60 Hz clock.
var DefaultTiers = TiersConfig{
	Easy:   TierConfig{Hazards: 2, SurvivalFrames: 600},
	Medium: TierConfig{Hazards: 5, SurvivalFrames: 1500},
	Hard:   TierConfig{Hazards: 8, SurvivalFrames: 2400},
}
