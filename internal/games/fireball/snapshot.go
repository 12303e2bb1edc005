package fireball

// HazardSnapshot is the primitive-typed state of one hazard.
type HazardSnapshot struct {
	X, Y        int
	VX, VY      int
	Active      bool
	ActivatedAt int
}

// Snapshot contains the complete state of the machine.
// Uses primitive types only so runs can be compared and reported.
type Snapshot struct {
	Phase      string
	Difficulty string // Empty in START
	Frame      int
	Threshold  int
	PlayerX    int
	PlayerY    int
	Hazards    []HazardSnapshot
}

// Snapshot returns the current state of the machine.
func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{Phase: m.phase.String()}

	s := m.session
	if s == nil {
		return snap
	}

	snap.Difficulty = s.Difficulty.String()
	snap.Frame = s.Frame
	snap.Threshold = s.Tier.SurvivalFrames
	snap.PlayerX = s.Player.X
	snap.PlayerY = s.Player.Y
	snap.Hazards = make([]HazardSnapshot, len(s.Hazards))
	for i, h := range s.Hazards {
		snap.Hazards[i] = HazardSnapshot{
			X:           h.X,
			Y:           h.Y,
			VX:          h.VX,
			VY:          h.VY,
			Active:      h.Active,
			ActivatedAt: h.ActivatedAt,
		}
	}
	return snap
}
