package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fireball-dodge/internal/engine"
	"github.com/vovakirdan/fireball-dodge/internal/games/fireball"
	"github.com/vovakirdan/fireball-dodge/internal/logging"
)

var (
	flagScript       string
	flagSimTier      string
	flagSimFrames    int
	flagSimRender    bool
	flagSimRealtime  bool
	flagSimKeepGoing bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a game headless from an input script",
	Long: `Replay an input script without a terminal UI and print the outcome.

A script is YAML:

  seed: 42
  difficulty: easy
  frames: 3000
  inputs:
    - {from: 1, to: 120, hold: [right, down]}
    - {from: 400, to: 460, hold: [up]}

Frame 0 presses the difficulty button, so gameplay frame f is loop frame f+1.
Buttons: up, down, left, right, easy, medium, hard, return.
--seed overrides the script's seed; --difficulty overrides its tier.

Examples:
  fireball simulate --difficulty hard
  fireball simulate --script ./run.yaml --render
  fireball simulate --script ./run.yaml --realtime --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagScript, "script", "", "Input script YAML")
	simulateCmd.Flags().StringVar(&flagSimTier, "difficulty", "", "Tier to select on frame 0: easy, medium, hard")
	simulateCmd.Flags().IntVar(&flagSimFrames, "frames", 0, "Maximum loop frames (0 = script value)")
	simulateCmd.Flags().BoolVar(&flagSimRender, "render", false, "Print the final screen")
	simulateCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace frames at --fps instead of running flat out")
	simulateCmd.Flags().BoolVar(&flagSimKeepGoing, "keep-going", false, "Keep running after the session is won or lost")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, closer, err := logging.Open(logging.Options{Level: flagLogLevel, File: flagLogFile})
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	script := engine.Script{Frames: engine.DefaultScriptFrames}
	if flagScript != "" {
		if script, err = engine.LoadScript(flagScript); err != nil {
			return err
		}
	}
	if flagSimTier != "" {
		script.Difficulty = flagSimTier
	}
	if cmd.Flags().Changed("seed") {
		script.Seed = flagSeed
	}
	if flagSimFrames > 0 {
		script.Frames = flagSimFrames
	}
	if err := script.Validate(); err != nil {
		return err
	}
	if script.Difficulty == "" && len(script.Inputs) == 0 {
		return errors.New("nothing to simulate: give --script or --difficulty")
	}

	var clock engine.FrameClock = &engine.StepClock{}
	if flagSimRealtime {
		ticker := engine.NewTickerClock(flagFPS)
		defer ticker.Stop()
		clock = ticker
	}

	var surface *engine.ScreenSurface
	loop := &engine.Loop{
		Clock:          clock,
		Input:          engine.NewScriptInput(script),
		Machine:        fireball.NewMachine(cfg, fireball.NewRandomLauncher(script.Seed, cfg.Hazards.MinSpeed, cfg.Hazards.MaxSpeed)),
		Logger:         logger,
		MaxFrames:      uint64(script.Frames),
		StopOnTerminal: !flagSimKeepGoing,
	}
	if flagSimRender {
		surface = engine.NewScreenSurface(80, 24)
		loop.Surface = surface
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	res, runErr := loop.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	out := cmd.OutOrStdout()
	if surface != nil {
		fmt.Fprintln(out, surface.Screen.String())
		fmt.Fprintln(out)
	}
	printResult(out, script, res)
	return nil
}
