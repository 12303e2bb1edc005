package engine

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/fireball-dodge/internal/config"
	"github.com/vovakirdan/fireball-dodge/internal/core"
	"github.com/vovakirdan/fireball-dodge/internal/games/fireball"
	"github.com/vovakirdan/fireball-dodge/internal/logging"
)

// verticalLauncher keeps hazards in the spawn column.
var verticalLauncher = fireball.LauncherFunc(func(int) (int, int) { return 0, 1 })

func idle() core.InputFrame { return core.NewInputFrame() }

func TestLoopScriptedGameOver(t *testing.T) {
	cfg := config.Default()
	cfg.Player.StartX, cfg.Player.StartY = 100, 100
	launcher := fireball.LauncherFunc(func(i int) (int, int) {
		if i == 0 {
			return 0, 1
		}
		return 1, 1
	})

	var logs bytes.Buffer
	logger, err := logging.New(&logs, "info")
	if err != nil {
		t.Fatal(err)
	}

	loop := &Loop{
		Clock:          &StepClock{},
		Input:          NewScriptInput(Script{Difficulty: "easy"}),
		Machine:        fireball.NewMachine(cfg, launcher),
		Logger:         logger,
		MaxFrames:      1000,
		StopOnTerminal: true,
	}

	res, err := loop.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Frame 0 selects the tier; gameplay frame 450 is loop frame 451
	if res.Frames != 452 {
		t.Errorf("ran %d frames, expected 452", res.Frames)
	}
	if res.Final.Phase != "GAMEOVER" || res.Final.Frame != 450 {
		t.Errorf("final = %s at %d, expected GAMEOVER at 450", res.Final.Phase, res.Final.Frame)
	}
	if len(res.Transitions) != 2 || res.Transitions[1].Reason != fireball.ReasonCollision {
		t.Errorf("unexpected transitions %+v", res.Transitions)
	}
	if !strings.Contains(logs.String(), "phase change") || !strings.Contains(logs.String(), "phase=GAMEOVER") {
		t.Errorf("transition not logged:\n%s", logs.String())
	}
}

func TestLoopScriptedMovement(t *testing.T) {
	script, err := ParseScript([]byte(`
difficulty: medium
inputs:
  - {from: 1, to: 10, hold: [right]}
  - {from: 6, to: 10, hold: [up]}
`))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}

	loop := &Loop{
		Clock:     &StepClock{},
		Input:     NewScriptInput(script),
		Machine:   fireball.NewMachine(config.Default(), verticalLauncher),
		MaxFrames: 11,
	}
	res, err := loop.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Final.PlayerX != 120 || res.Final.PlayerY != 65 {
		t.Errorf("player at (%d, %d), expected (120, 65)", res.Final.PlayerX, res.Final.PlayerY)
	}
	if res.Final.Difficulty != "medium" || res.Final.Frame != 10 {
		t.Errorf("unexpected final snapshot %+v", res.Final)
	}
}

func TestLoopDrawsEveryFrame(t *testing.T) {
	draws := 0
	var last fireball.View
	loop := &Loop{
		Clock:   &StepClock{},
		Input:   InputFunc(func() core.InputFrame { return core.NewInputFrame(core.ActionHard) }),
		Surface: SurfaceFunc(func(v fireball.View) { draws++; last = v }),
		Machine: fireball.NewMachine(config.Default(), verticalLauncher),

		MaxFrames: 30,
	}
	if _, err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if draws != 30 {
		t.Errorf("drew %d frames, expected 30", draws)
	}
	if !last.HasSession || last.Frame != 29 || len(last.Hazards) != 1 {
		t.Errorf("unexpected last view %+v", last)
	}
}

func TestLoopScreenSurface(t *testing.T) {
	surface := NewScreenSurface(80, 24)
	loop := &Loop{
		Clock:     &StepClock{},
		Input:     InputFunc(idle),
		Surface:   surface,
		Machine:   fireball.NewMachine(config.Default(), verticalLauncher),
		MaxFrames: 1,
	}
	if _, err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(surface.Screen.String(), "[2] Medium") {
		t.Errorf("expected start menu:\n%s", surface.Screen.String())
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loop := &Loop{
		Clock:   &StepClock{},
		Input:   InputFunc(idle),
		Machine: fireball.NewMachine(config.Default(), verticalLauncher),
	}
	res, err := loop.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if res.Frames != 0 || res.Final.Phase != "START" {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestStepClock(t *testing.T) {
	c := &StepClock{}
	for i := 0; i < 3; i++ {
		if err := c.Wait(context.Background()); err != nil {
			t.Fatalf("Wait: %v", err)
		}
	}
	if c.Frame() != 3 {
		t.Errorf("Frame() = %d, expected 3", c.Frame())
	}
}

func TestTickerClock(t *testing.T) {
	c := NewTickerClock(1000)
	defer c.Stop()

	for i := 0; i < 2; i++ {
		if err := c.Wait(context.Background()); err != nil {
			t.Fatalf("Wait: %v", err)
		}
	}
	if c.Frame() != 2 {
		t.Errorf("Frame() = %d, expected 2", c.Frame())
	}
}

func TestTickerClockCancel(t *testing.T) {
	c := NewTickerClock(1)
	defer c.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if c.Frame() != 0 {
		t.Errorf("cancelled wait should not count a tick")
	}
}
