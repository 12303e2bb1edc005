// Package fireball implements Fireball Dodge: steer a box around an arena
// while fireballs join one by one and bounce off the walls. Survive the
// tier's time limit to win; touch a fireball and the run is over.
package fireball

import (
	"github.com/vovakirdan/fireball-dodge/internal/config"
	"github.com/vovakirdan/fireball-dodge/internal/core"
	"github.com/vovakirdan/fireball-dodge/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "fireball"

// gameConfig is the configuration set via the CLI, nil for defaults.
var gameConfig *config.FireballConfig

// difficultyPreset is a tier selected on the command line, if any.
var difficultyPreset *config.Difficulty

// UseConfig sets the configuration new games are created with.
func UseConfig(cfg config.FireballConfig) {
	gameConfig = &cfg
}

// SetDifficultyPreset makes new games select tier d on their first frame
// instead of waiting on the start screen.
func SetDifficultyPreset(d config.Difficulty) {
	difficultyPreset = &d
}

// Game adapts the state machine to the platform's game interface.
type Game struct {
	machine *Machine
	runtime core.RuntimeConfig
	preset  core.Action // Injected into the next Step, then cleared
	state   core.GameState
}

// New creates a new Fireball Dodge game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fireball Dodge"
}

// Reset discards any session and starts over at the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg := config.Default()
	if gameConfig != nil {
		cfg = *gameConfig
	}

	launcher := NewRandomLauncher(runtime.Seed, cfg.Hazards.MinSpeed, cfg.Hazards.MaxSpeed)
	g.machine = NewMachine(cfg, launcher)

	g.preset = core.ActionNone
	if difficultyPreset != nil {
		g.preset = SelectAction(*difficultyPreset)
	}
	g.state = g.currentState()
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.preset != core.ActionNone {
		in.Set(g.preset)
		g.preset = core.ActionNone
	}

	_, changed := g.machine.Update(in)
	g.state = g.currentState()
	return core.StepResult{State: g.state, Changed: changed}
}

// Render draws the current frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderView(dst, g.machine.View())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.state
}

// Machine exposes the underlying state machine.
func (g *Game) Machine() *Machine {
	return g.machine
}

func (g *Game) currentState() core.GameState {
	st := core.GameState{
		Phase: g.machine.Phase().String(),
		Over:  g.machine.Phase().Terminal(),
		Won:   g.machine.Phase() == PhaseWon,
	}
	if s := g.machine.Session(); s != nil {
		st.Frame = s.Frame
	}
	return st
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
