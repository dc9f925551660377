package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dash/internal/platform/tui"
	"github.com/vovakirdan/neon-dash/internal/registry"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode with the equipped skin.

Controls:
  Space/Up/W  - Start, jump
  Enter       - Start, restart after a crash
  P           - Pause
  R           - Restart after a crash
  Esc/B       - Leave (when paused or crashed)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Modes:
  dash        - Normal: speed ramps from a brisk start
  dash_easy   - Slow start, gentle ramp
  dash_hard   - Fast start, steep ramp
  dash_fixed  - Speed never changes

Examples:
  dash play dash
  dash play dash_hard --seed 42
  dash play dash --config ./my-dash.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Do not ring the terminal bell")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dash list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStoreOrWarn()
	cfg := runtimeConfig(store)

	runErr := tui.Run(game, store, cfg, localBell())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// localBell rings on the controlling terminal unless muted.
func localBell() *tui.Bell {
	if flagMute {
		return nil
	}
	return tui.NewBell(os.Stdout)
}
