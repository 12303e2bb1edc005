package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fireball-dodge/internal/config"
	"github.com/vovakirdan/fireball-dodge/internal/logging"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolves the configuration the same way play does and prints it as YAML.

Search order: --config, ~/.arcade/configs/fireball.yaml,
./configs/fireball.yaml, then the built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(cmd.ErrOrStderr(), flagLogLevel)
	if err != nil {
		return err
	}

	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("config resolved", "source", src)

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", src)
	_, err = out.Write(data)
	return err
}
