package fireball

import (
	"testing"

	"github.com/vovakirdan/fireball-dodge/internal/config"
	"github.com/vovakirdan/fireball-dodge/internal/core"
	"github.com/vovakirdan/fireball-dodge/internal/registry"
)

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("game %q not registered", ID)
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Fireball Dodge" {
		t.Errorf("unexpected title %q", g.Title())
	}
}

func TestGameStep(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	if st := g.State(); st.Phase != "START" || st.Over {
		t.Fatalf("unexpected initial state %+v", st)
	}

	res := g.Step(core.NewInputFrame(core.ActionMedium))
	if !res.Changed || res.State.Phase != "GAMEPLAY" {
		t.Fatalf("expected GAMEPLAY after selection, got %+v", res)
	}

	res = g.Step(core.NewInputFrame())
	if res.Changed || res.State.Frame != 1 {
		t.Errorf("expected frame 1 without transition, got %+v", res)
	}
}

func TestGameDifficultyPreset(t *testing.T) {
	SetDifficultyPreset(config.DifficultyHard)
	t.Cleanup(func() { difficultyPreset = nil })

	g := New()
	g.Reset(core.DefaultConfig())
	res := g.Step(core.NewInputFrame())

	if res.State.Phase != "GAMEPLAY" {
		t.Fatalf("preset should start the game, got %+v", res.State)
	}
	if d := g.Machine().Session().Difficulty; d != config.DifficultyHard {
		t.Errorf("expected hard, got %s", d)
	}

	// The preset is applied once per Reset
	g.Step(core.NewInputFrame(core.ActionReturn))
	g.Step(core.NewInputFrame())
	if g.State().Phase != "START" {
		t.Errorf("expected START after return, got %s", g.State().Phase)
	}
}

func TestGameUsesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Tiers.Easy = config.TierConfig{Hazards: 1, SurvivalFrames: 3}
	UseConfig(cfg)
	t.Cleanup(func() { gameConfig = nil })

	g := New()
	g.Reset(core.DefaultConfig())
	g.Step(core.NewInputFrame(core.ActionEasy))
	for i := 0; i < 3; i++ {
		g.Step(core.NewInputFrame())
	}

	if st := g.State(); !st.Won || st.Frame != 3 {
		t.Errorf("expected a win after 3 frames, got %+v", st)
	}
}
