package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dash/internal/games/dash"
	"github.com/vovakirdan/neon-dash/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all difficulty modes",
	Long: `Shows every mode with its preset and, when the database is available,
your best score and number of runs. Each mode keeps its own leaderboard.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(_ *cobra.Command, _ []string) {
	// Best effort: the list is still useful without stats
	store, err := storage.Open(flagDBPath)
	if err != nil {
		store = nil
	} else {
		defer store.Close()
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		Headers("ID", "Title", "Preset", "Best", "Runs").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, m := range dash.Modes() {
		best, runs := "-", "-"
		if store != nil {
			if stats, err := store.GetGameStats(m.ID); err == nil && stats.GamesCount > 0 {
				best = fmt.Sprint(stats.HighScore)
				runs = fmt.Sprint(stats.GamesCount)
			}
		}
		t.Row(m.ID, m.Title, string(m.Preset), best, runs)
	}
	fmt.Println(t)

	fmt.Println()
	fmt.Println("Run 'dash play <id>' to play a mode.")
}
