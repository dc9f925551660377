package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dash/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start Neon Dash in interactive menu mode.

Pick a mode to play, visit the skin shop or browse the scoreboard.
After a run you return to the menu with your wallet updated.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  $            - Skin shop
  Q            - Quit

Examples:
  dash menu
  dash menu --fps 30
  dash menu --db ./scores.db --theme mono`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Do not ring the terminal bell")
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStoreOrWarn()
	cfg := runtimeConfig(store)

	err := tui.RunSession(store, cfg, localBell(), nil)

	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
