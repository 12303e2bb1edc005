// fireball is a terminal survival game: dodge bouncing fireballs until the
// clock runs out.
//
// Usage:
//
//	fireball play                 - Play in the terminal
//	fireball simulate --script f  - Replay an input script headless
//	fireball list                 - List games and difficulty tiers
//	fireball config               - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - debug, info, warn, error (default: info)
//	--log-file <path>    - Log file (play defaults to ~/.arcade/logs/fireball.log)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fireball-dodge/internal/config"
	"github.com/vovakirdan/fireball-dodge/internal/games/fireball"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fireball",
	Short: "Fireball Dodge - survive the bouncing fireballs",
	Long: `Fireball Dodge is a terminal survival game. Pick a tier, steer your box
around the arena and stay clear of the fireballs that join one by one.

Tiers:
  easy    2 fireballs, survive 10 seconds
  medium  5 fireballs, survive 25 seconds
  hard    8 fireballs, survive 40 seconds

Examples:
  fireball play
  fireball play --difficulty hard
  fireball simulate --script ./run.yaml --seed 42
  fireball config > ~/.arcade/configs/fireball.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", fireball.FrameRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the game config and makes new games use it.
func loadConfig(logger *log.Logger) (config.FireballConfig, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config resolved", "source", src, "path", flagConfig)
	fireball.UseConfig(cfg)
	return cfg, nil
}
