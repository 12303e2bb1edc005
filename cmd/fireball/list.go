package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fireball-dodge/internal/config"
	"github.com/vovakirdan/fireball-dodge/internal/games/fireball"
	"github.com/vovakirdan/fireball-dodge/internal/logging"
	"github.com/vovakirdan/fireball-dodge/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and difficulty tiers",
	Long:  `Shows the registered games and the tiers of the effective config.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(cmd.ErrOrStderr(), flagLogLevel)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	games := registry.List()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Tiers:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-6s  %-9s  %s\n", "Tier", "Fireballs", "Survive")
	for _, d := range config.Difficulties() {
		t := cfg.Tiers.Get(d)
		fmt.Fprintf(out, "  %-6s  %-9d  %d frames (%.1fs)\n", d, t.Hazards, t.SurvivalFrames, float64(t.SurvivalFrames)/fireball.FrameRate)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'fireball play' to play.")
	return nil
}
