package fireball

import (
	"github.com/vovakirdan/fireball-dodge/internal/config"
	"github.com/vovakirdan/fireball-dodge/internal/core"
)

// View is what a render surface needs to draw one frame.
// It is a copy; surfaces cannot mutate the session through it.
type View struct {
	Phase        Phase
	Arena        core.Rect
	HasSession   bool
	Difficulty   config.Difficulty
	Frame        int
	Threshold    int
	Player       core.Rect
	Hazards      []core.Rect // Active hazards only
	TotalHazards int
	Tiers        config.TiersConfig
}

// View returns the draw intents for the current frame.
func (m *Machine) View() View {
	v := View{
		Phase: m.phase,
		Arena: core.NewRect(0, 0, m.cfg.Arena.Width, m.cfg.Arena.Height),
		Tiers: m.cfg.Tiers,
	}

	s := m.session
	if s == nil {
		return v
	}

	v.HasSession = true
	v.Difficulty = s.Difficulty
	v.Frame = s.Frame
	v.Threshold = s.Tier.SurvivalFrames
	v.Player = s.Player.Rect()
	v.TotalHazards = len(s.Hazards)
	v.Hazards = make([]core.Rect, 0, len(s.Hazards))
	for _, h := range s.Hazards {
		if h.Active {
			v.Hazards = append(v.Hazards, h.Rect())
		}
	}
	return v
}
