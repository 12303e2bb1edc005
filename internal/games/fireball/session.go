package fireball

import (
	"github.com/vovakirdan/fireball-dodge/internal/config"
	"github.com/vovakirdan/fireball-dodge/internal/core"
)

// Session is the state of one run, from tier selection until the player
// returns to the start screen. The machine owns it exclusively.
type Session struct {
	Difficulty config.Difficulty
	Tier       config.TierConfig
	Player     Player
	Hazards    []Hazard // Exactly Tier.Hazards entries
	// Frame counts simulated frames since the session began.
	Frame int

	arena  core.Rect
	player config.PlayerConfig
	hazard config.HazardConfig
}

// newSession places the player at its start position and allocates the
// tier's hazards at the spawn point, all inactive.
func newSession(cfg config.FireballConfig, d config.Difficulty) *Session {
	tier := cfg.Tiers.Get(d)

	hazards := make([]Hazard, tier.Hazards)
	for i := range hazards {
		hazards[i] = Hazard{
			X:           cfg.Hazards.SpawnX,
			Y:           cfg.Hazards.SpawnY,
			W:           cfg.Hazards.Width,
			H:           cfg.Hazards.Height,
			ActivatedAt: -1,
		}
	}

	return &Session{
		Difficulty: d,
		Tier:       tier,
		Player: Player{
			X: cfg.Player.StartX,
			Y: cfg.Player.StartY,
			W: cfg.Player.Width,
			H: cfg.Player.Height,
		},
		Hazards: hazards,
		arena:   core.NewRect(0, 0, cfg.Arena.Width, cfg.Arena.Height),
		player:  cfg.Player,
		hazard:  cfg.Hazards,
	}
}

// Arena returns the play area.
func (s *Session) Arena() core.Rect {
	return s.arena
}

// ActiveHazards returns the number of live fireballs.
func (s *Session) ActiveHazards() int {
	n := 0
	for _, h := range s.Hazards {
		if h.Active {
			n++
		}
	}
	return n
}

// ActivationFrame returns the frame at which hazard i goes live.
func (s *Session) ActivationFrame(i int) int {
	return i * s.hazard.ActivationInterval
}
