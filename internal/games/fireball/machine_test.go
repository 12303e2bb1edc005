package fireball

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/fireball-dodge/internal/config"
	"github.com/vovakirdan/fireball-dodge/internal/core"
)

// columnLauncher keeps every hazard in the spawn column, bouncing between
// the top and bottom walls. With the default start position the player is
// never in that column.
func columnLauncher() Launcher {
	return LauncherFunc(func(i int) (int, int) {
		if i%2 == 1 {
			return 0, -1
		}
		return 0, 1
	})
}

func startGame(t *testing.T, m *Machine, d config.Difficulty) {
	t.Helper()
	tr, ok := m.Update(core.NewInputFrame(SelectAction(d)))
	if !ok || tr.To != PhaseGameplay {
		t.Fatalf("selecting %s should enter GAMEPLAY, got %+v (changed=%v)", d, tr, ok)
	}
}

// runUntilTransition steps with no input until the machine changes phase.
func runUntilTransition(t *testing.T, m *Machine, limit int) Transition {
	t.Helper()
	idle := core.NewInputFrame()
	for i := 0; i < limit; i++ {
		if tr, ok := m.Update(idle); ok {
			return tr
		}
	}
	t.Fatalf("no transition within %d frames", limit)
	return Transition{}
}

func TestNewMachineStartsAtStart(t *testing.T) {
	m := NewMachine(config.Default(), columnLauncher())

	if m.Phase() != PhaseStart {
		t.Errorf("expected START, got %s", m.Phase())
	}
	if m.Session() != nil {
		t.Error("START should have no session")
	}
}

func TestStartSelectsTier(t *testing.T) {
	tests := []struct {
		difficulty config.Difficulty
		hazards    int
		frames     int
	}{
		{config.DifficultyEasy, 2, 600},
		{config.DifficultyMedium, 5, 1500},
		{config.DifficultyHard, 8, 2400},
	}

	for _, tc := range tests {
		t.Run(tc.difficulty.String(), func(t *testing.T) {
			m := NewMachine(config.Default(), columnLauncher())
			startGame(t, m, tc.difficulty)

			s := m.Session()
			if s.Difficulty != tc.difficulty {
				t.Errorf("difficulty = %s, expected %s", s.Difficulty, tc.difficulty)
			}
			if s.Tier.Hazards != tc.hazards || s.Tier.SurvivalFrames != tc.frames {
				t.Errorf("tier = %+v, expected {%d %d}", s.Tier, tc.hazards, tc.frames)
			}
			if len(s.Hazards) != tc.hazards {
				t.Errorf("allocated %d hazards, expected %d", len(s.Hazards), tc.hazards)
			}
			for i, h := range s.Hazards {
				if h.Active {
					t.Errorf("hazard %d active before the first step", i)
				}
			}
			if s.Frame != 0 {
				t.Errorf("frame = %d, expected 0", s.Frame)
			}
			if s.Player.X != 110 || s.Player.Y != 70 {
				t.Errorf("player at (%d, %d), expected start (110, 70)", s.Player.X, s.Player.Y)
			}
		})
	}
}

func TestStartIgnoresOtherInput(t *testing.T) {
	m := NewMachine(config.Default(), columnLauncher())

	for _, a := range []core.Action{core.ActionUp, core.ActionRight, core.ActionReturn, core.ActionNone} {
		if tr, ok := m.Update(core.NewInputFrame(a)); ok {
			t.Errorf("%s in START should not transition, got %+v", a, tr)
		}
	}
	if m.Phase() != PhaseStart {
		t.Errorf("expected START, got %s", m.Phase())
	}
}

func TestEasiestHeldTierWins(t *testing.T) {
	m := NewMachine(config.Default(), columnLauncher())
	m.Update(core.NewInputFrame(core.ActionHard, core.ActionEasy, core.ActionMedium))

	if d := m.Session().Difficulty; d != config.DifficultyEasy {
		t.Errorf("expected easy, got %s", d)
	}
}

func TestHardTierWinsAt2400(t *testing.T) {
	m := NewMachine(config.Default(), columnLauncher())
	startGame(t, m, config.DifficultyHard)

	idle := core.NewInputFrame()
	for f := 0; f < 2399; f++ {
		if tr, ok := m.Update(idle); ok {
			t.Fatalf("unexpected transition at frame %d: %+v", f, tr)
		}
	}
	if m.Session().Frame != 2399 {
		t.Fatalf("frame = %d, expected 2399", m.Session().Frame)
	}
	if n := m.Session().ActiveHazards(); n != 7 {
		t.Errorf("expected 7 active hazards before frame 2520, got %d", n)
	}

	tr, ok := m.Update(idle)
	if !ok || tr.To != PhaseWon || tr.Reason != ReasonSurvived {
		t.Fatalf("expected WON, got %+v (changed=%v)", tr, ok)
	}
	if tr.Frame != 2400 || tr.Difficulty != config.DifficultyHard {
		t.Errorf("transition = %+v, expected hard at frame 2400", tr)
	}
}

func TestCollisionBeatsThreshold(t *testing.T) {
	m := NewMachine(config.Default(), columnLauncher())
	startGame(t, m, config.DifficultyEasy)

	idle := core.NewInputFrame()
	for f := 0; f < 599; f++ {
		if tr, ok := m.Update(idle); ok {
			t.Fatalf("unexpected transition at frame %d: %+v", f, tr)
		}
	}

	// Park a fireball on the player for the frame that would reach 600
	s := m.Session()
	h := &s.Hazards[0]
	h.X, h.Y = s.Player.X, s.Player.Y

	tr, ok := m.Update(idle)
	if !ok {
		t.Fatal("expected a transition on the final frame")
	}
	if tr.To != PhaseGameOver || tr.Reason != ReasonCollision {
		t.Errorf("collision should win over the time limit, got %+v", tr)
	}
	if tr.Frame != 599 {
		t.Errorf("game over frame = %d, expected 599", tr.Frame)
	}
}

func TestTerminalPhasesFreeze(t *testing.T) {
	m := NewMachine(config.Default(), columnLauncher())
	startGame(t, m, config.DifficultyEasy)
	runUntilTransition(t, m, 600)

	before := m.Snapshot()
	for i := 0; i < 100; i++ {
		if _, ok := m.Update(core.NewInputFrame(core.ActionLeft, core.ActionHard)); ok {
			t.Fatal("WON should ignore everything but Return")
		}
	}
	if after := m.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Errorf("state changed in a terminal phase:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestReturnFromEveryPhase(t *testing.T) {
	hit := config.Default()
	hit.Player.StartX, hit.Player.StartY = 0, 0

	tests := []struct {
		name  string
		cfg   config.FireballConfig
		setup func(t *testing.T, m *Machine)
		from  Phase
	}{
		{
			name: "gameplay",
			cfg:  config.Default(),
			setup: func(t *testing.T, m *Machine) {
				startGame(t, m, config.DifficultyMedium)
				for i := 0; i < 400; i++ {
					m.Update(core.NewInputFrame())
				}
			},
			from: PhaseGameplay,
		},
		{
			name: "won",
			cfg:  config.Default(),
			setup: func(t *testing.T, m *Machine) {
				startGame(t, m, config.DifficultyEasy)
				runUntilTransition(t, m, 600)
			},
			from: PhaseWon,
		},
		{
			name: "gameover",
			cfg:  hit,
			setup: func(t *testing.T, m *Machine) {
				startGame(t, m, config.DifficultyEasy)
				runUntilTransition(t, m, 1)
			},
			from: PhaseGameOver,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMachine(tc.cfg, columnLauncher())
			tc.setup(t, m)
			if m.Phase() != tc.from {
				t.Fatalf("setup reached %s, expected %s", m.Phase(), tc.from)
			}

			tr, ok := m.Update(core.NewInputFrame(core.ActionReturn, core.ActionUp))
			if !ok || tr.From != tc.from || tr.To != PhaseStart || tr.Reason != ReasonReturn {
				t.Fatalf("expected return to START, got %+v (changed=%v)", tr, ok)
			}
			if m.Session() != nil {
				t.Error("session should be discarded")
			}

			startGame(t, m, config.DifficultyEasy)
			s := m.Session()
			if s.Frame != 0 || s.ActiveHazards() != 0 {
				t.Errorf("new session not reset: frame %d, %d active hazards", s.Frame, s.ActiveHazards())
			}
		})
	}
}

func TestEasyRunEndsInGameOverAtFrame450(t *testing.T) {
	cfg := config.Default()
	cfg.Player.StartX, cfg.Player.StartY = 100, 100

	// Hazard 0 stays in the spawn column; hazard 1 heads for the player
	launcher := LauncherFunc(func(i int) (int, int) {
		if i == 0 {
			return 0, 1
		}
		return 1, 1
	})

	m := NewMachine(cfg, launcher)
	startGame(t, m, config.DifficultyEasy)

	tr := runUntilTransition(t, m, 600)
	if tr.To != PhaseGameOver || tr.Reason != ReasonCollision {
		t.Fatalf("expected GAMEOVER, got %+v", tr)
	}
	if tr.Frame != 450 {
		t.Errorf("game over at frame %d, expected 450", tr.Frame)
	}

	h := m.Session().Hazards[1]
	if h.ActivatedAt != 360 || h.X != 91 || h.Y != 91 {
		t.Errorf("hazard 1 = %+v, expected activated at 360 and at (91, 91)", h)
	}
}

func TestMediumRunEndsInWinAt1500(t *testing.T) {
	m := NewMachine(config.Default(), columnLauncher())
	startGame(t, m, config.DifficultyMedium)

	tr := runUntilTransition(t, m, 1500)
	if tr.To != PhaseWon || tr.Frame != 1500 {
		t.Fatalf("expected WON at 1500, got %+v", tr)
	}
	if n := m.Session().ActiveHazards(); n != 5 {
		t.Errorf("expected all 5 hazards active, got %d", n)
	}
}

func TestRunsAreDeterministic(t *testing.T) {
	run := func() Snapshot {
		cfg := config.Default()
		m := NewMachine(cfg, NewRandomLauncher(42, cfg.Hazards.MinSpeed, cfg.Hazards.MaxSpeed))
		rng := rand.New(rand.NewSource(7))
		m.Update(core.NewInputFrame(core.ActionHard))

		moves := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}
		for i := 0; i < 3000 && m.Phase() == PhaseGameplay; i++ {
			m.Update(core.NewInputFrame(moves[rng.Intn(len(moves))]))
		}
		return m.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different runs:\n%+v\n%+v", a, b)
	}
}

func TestSnapshotInStart(t *testing.T) {
	m := NewMachine(config.Default(), columnLauncher())
	snap := m.Snapshot()

	if snap.Phase != "START" || snap.Difficulty != "" || snap.Hazards != nil {
		t.Errorf("unexpected START snapshot: %+v", snap)
	}
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		PhaseStart:    "START",
		PhaseGameplay: "GAMEPLAY",
		PhaseWon:      "WON",
		PhaseGameOver: "GAMEOVER",
		Phase(42):     "UNKNOWN",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, expected %q", int(p), got, want)
		}
	}
}
