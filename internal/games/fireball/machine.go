package fireball

import (
	"github.com/vovakirdan/fireball-dodge/internal/config"
	"github.com/vovakirdan/fireball-dodge/internal/core"
)

// Phase is the top-level mode of the game.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseGameplay
	PhaseWon
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhaseGameplay:
		return "GAMEPLAY"
	case PhaseWon:
		return "WON"
	case PhaseGameOver:
		return "GAMEOVER"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether the phase ends a session.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseGameOver
}

// Reason explains a phase transition.
type Reason string

const (
	ReasonSelect    Reason = "select"
	ReasonCollision Reason = "collision"
	ReasonSurvived  Reason = "survived"
	ReasonReturn    Reason = "return"
)

// Transition describes a phase change made by Update.
type Transition struct {
	From, To   Phase
	Reason     Reason
	Difficulty config.Difficulty
	Frame      int
}

// Machine is the game state machine: START -> GAMEPLAY -> WON | GAMEOVER,
// with Return leading back to START from any phase.
type Machine struct {
	cfg      config.FireballConfig
	launcher Launcher
	phase    Phase
	session  *Session
}

// NewMachine creates a machine in the START phase.
// cfg must have passed Validate.
func NewMachine(cfg config.FireballConfig, launcher Launcher) *Machine {
	return &Machine{
		cfg:      cfg,
		launcher: launcher,
		phase:    PhaseStart,
	}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Session returns the current session, or nil in START.
func (m *Machine) Session() *Session {
	return m.session
}

// Config returns the configuration the machine runs with.
func (m *Machine) Config() config.FireballConfig {
	return m.cfg
}

// Update handles one frame of input. It makes at most one phase transition
// and reports it.
func (m *Machine) Update(in core.InputFrame) (Transition, bool) {
	if in.Has(core.ActionReturn) && m.phase != PhaseStart {
		t := m.transition(PhaseStart, ReasonReturn)
		m.session = nil
		return t, true
	}

	switch m.phase {
	case PhaseStart:
		d, ok := selectedDifficulty(in)
		if !ok {
			return Transition{}, false
		}
		m.session = newSession(m.cfg, d)
		return m.transition(PhaseGameplay, ReasonSelect), true

	case PhaseGameplay:
		s := m.session
		if s.step(in, m.launcher) {
			return m.transition(PhaseGameOver, ReasonCollision), true
		}
		s.Frame++
		if s.Frame >= s.Tier.SurvivalFrames {
			return m.transition(PhaseWon, ReasonSurvived), true
		}
	}

	return Transition{}, false
}

func (m *Machine) transition(to Phase, reason Reason) Transition {
	t := Transition{From: m.phase, To: to, Reason: reason}
	if m.session != nil {
		t.Difficulty = m.session.Difficulty
		t.Frame = m.session.Frame
	}
	m.phase = to
	return t
}

// selectedDifficulty maps held tier buttons to a difficulty.
// The easiest held tier wins.
func selectedDifficulty(in core.InputFrame) (config.Difficulty, bool) {
	switch {
	case in.Has(core.ActionEasy):
		return config.DifficultyEasy, true
	case in.Has(core.ActionMedium):
		return config.DifficultyMedium, true
	case in.Has(core.ActionHard):
		return config.DifficultyHard, true
	}
	return 0, false
}

// SelectAction returns the input action that selects difficulty d.
func SelectAction(d config.Difficulty) core.Action {
	switch d {
	case config.DifficultyMedium:
		return core.ActionMedium
	case config.DifficultyHard:
		return core.ActionHard
	default:
		return core.ActionEasy
	}
}
