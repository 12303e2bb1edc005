package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fireball-dodge/internal/config"
	"github.com/vovakirdan/fireball-dodge/internal/core"
	"github.com/vovakirdan/fireball-dodge/internal/games/fireball"
	"github.com/vovakirdan/fireball-dodge/internal/logging"
	"github.com/vovakirdan/fireball-dodge/internal/platform/tui"
	"github.com/vovakirdan/fireball-dodge/internal/registry"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Arrows/WASD  - Move
  1 / 2 / 3    - Pick easy, medium or hard on the start screen
  Esc/B        - Back to the start screen
  Ctrl+S       - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C     - Quit

Logs go to ~/.arcade/logs/fireball.log unless --log-file is given.

Examples:
  fireball play
  fireball play --difficulty medium
  fireball play --config ./my-fireball.yaml --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Skip the start screen: easy, medium, hard")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logFile := flagLogFile
	if logFile == "" {
		var err error
		if logFile, err = logging.DefaultFile(); err != nil {
			return err
		}
	}
	logger, closer, err := logging.Open(logging.Options{Level: flagLogLevel, File: logFile})
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	if flagDifficulty != "" {
		d, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		fireball.SetDifficultyPreset(d)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(fireball.ID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	if err := tui.Run(game, rc, tui.Options{HoldFrames: cfg.Input.HoldFrames, Logger: logger}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
