// dash is Neon Dash, a one-button endless runner for the terminal.
//
// Usage:
//
//	dash list                  - List available modes
//	dash play <mode>           - Play a mode
//	dash menu                  - Start menu with modes, shop and scores
//	dash run                   - Run the simulation headless and log the result
//	dash scores <mode>         - Show high scores for a mode
//	dash shop [buy|equip] ...  - Browse, buy and equip skins
//	dash wallet                - Show coins and owned skins
//	dash serve                 - Start SSH server for remote play
//	dash config                - Print the default tuning YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.neondash/scores.db)
//	--config <path> - Load simulation tuning from a YAML file
//	--theme <name>  - Menu theme: neon or mono
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-dash/internal/core"
	"github.com/vovakirdan/neon-dash/internal/games/dash"
	"github.com/vovakirdan/neon-dash/internal/platform/tui"
	"github.com/vovakirdan/neon-dash/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagTheme  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dash",
	Short: "Neon Dash - a one-button endless runner in your terminal",
	Long: `Neon Dash is an endless runner: your box slides right over an endless
conveyor of spikes, walls and jump pads, and the only control is jump.
Coins picked up on the way buy new skins in the shop.

Available commands:
  list     - Show all difficulty modes
  play     - Play a mode directly
  menu     - Interactive menu with modes, shop and scores
  run      - Simulate a run without a terminal UI
  scores   - View high scores
  shop     - Browse, buy and equip skins
  wallet   - Show coins and owned skins
  serve    - Start SSH server for remote play
  config   - Print the default tuning

Examples:
  dash play dash
  dash play dash_hard --fps 30
  dash menu
  dash run --seed 7 --jump-every 40
  dash shop buy violet
  dash serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		t, err := tui.ThemeByName(flagTheme)
		if err != nil {
			return err
		}
		tui.SetTheme(t)
		dash.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.neondash/scores.db", "Path to scores and wallet database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "neon", "Menu theme: neon, mono")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(walletCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// openStoreOrWarn opens the database. The game still works without it.
func openStoreOrWarn() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// mustOpenStore opens the database for commands that are useless without it.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// runtimeConfig builds the host config from the terminal size, the global
// flags and the equipped skin.
func runtimeConfig(store *storage.Store) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed

	if store != nil {
		if skin, err := store.EquippedSkin(); err == nil {
			cfg.Skin = skin
		}
	}
	return cfg
}
