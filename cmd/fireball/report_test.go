package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/fireball-dodge/internal/engine"
	"github.com/vovakirdan/fireball-dodge/internal/games/fireball"
)

func TestPrintResult(t *testing.T) {
	res := engine.Result{
		Frames: 452,
		Transitions: []fireball.Transition{
			{From: fireball.PhaseStart, To: fireball.PhaseGameplay, Reason: fireball.ReasonSelect},
			{From: fireball.PhaseGameplay, To: fireball.PhaseGameOver, Reason: fireball.ReasonCollision, Frame: 450},
		},
		Final: fireball.Snapshot{
			Phase:      "GAMEOVER",
			Difficulty: "easy",
			Frame:      450,
			Threshold:  600,
			PlayerX:    100,
			PlayerY:    100,
			Hazards:    []fireball.HazardSnapshot{{Active: true}, {Active: true}},
		},
	}

	var buf bytes.Buffer
	printResult(&buf, engine.Script{Seed: 42}, res)
	out := buf.String()

	for _, want := range []string{
		"phase:       GAMEOVER",
		"frame:       450/600",
		"fireballs:   2/2 active",
		"seed:        42",
		"loop frames: 452",
		"at frame 450 (collision)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintResultAtStart(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, engine.Script{}, engine.Result{Final: fireball.Snapshot{Phase: "START"}})

	if strings.Contains(buf.String(), "tier:") {
		t.Errorf("START result should not report a tier:\n%s", buf.String())
	}
}
