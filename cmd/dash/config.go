package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/neon-dash/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the simulation tuning as YAML",
	Long: `Print the default tuning. Redirect it to a file, edit it, and pass it back
with --config. With --effective, prints the tuning actually loaded (after
--config and the user config directory) with a difficulty preset applied.

Examples:
  dash config > my-dash.yaml
  dash config --effective --config ./my-dash.yaml
  dash config --effective --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the loaded tuning instead of the default")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset applied with --effective")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagEffective {
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	cfg, err := config.LoadDash(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyDashPreset(&cfg, config.ParsePreset(flagDifficulty))

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
