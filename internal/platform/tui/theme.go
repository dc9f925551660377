package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles for the menu, shop and scoreboard.
// The playfield itself is colored cell by cell in RenderScreen.
type Theme struct {
	// Headers
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Lists
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	Description lipgloss.Style

	// Wallet and shop
	Wallet   lipgloss.Style
	Price    lipgloss.Style
	Owned    lipgloss.Style
	Equipped lipgloss.Style
	Locked   lipgloss.Style

	// Status line and help
	Notice lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style

	// Boxes
	Panel lipgloss.Style

	// Plain draws the playfield without colors.
	Plain bool

	// Table
	TableHeaderBorder lipgloss.Color
	TableSelectedFG   lipgloss.Color
	TableSelectedBG   lipgloss.Color
}

// NeonTheme returns the default cyan and magenta theme.
func NeonTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("213")),

		ItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("87")).Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Wallet:   lipgloss.NewStyle().Foreground(lipgloss.Color("227")).Bold(true),
		Price:    lipgloss.NewStyle().Foreground(lipgloss.Color("227")),
		Owned:    lipgloss.NewStyle().Foreground(lipgloss.Color("118")),
		Equipped: lipgloss.NewStyle().Foreground(lipgloss.Color("199")).Bold(true),
		Locked:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Notice: lipgloss.NewStyle().Foreground(lipgloss.Color("87")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 2),

		TableHeaderBorder: lipgloss.Color("240"),
		TableSelectedFG:   lipgloss.Color("229"),
		TableSelectedBG:   lipgloss.Color("57"),
	}
}

// MonochromeTheme returns a grayscale theme for terminals with poor color.
func MonochromeTheme() Theme {
	theme := NeonTheme()
	theme.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Subtitle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.ItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	theme.Wallet = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Price = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.Owned = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.Equipped = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Notice = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	theme.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Reverse(true)
	theme.Panel = theme.Panel.BorderForeground(lipgloss.Color("245"))
	theme.TableSelectedFG = lipgloss.Color("0")
	theme.TableSelectedBG = lipgloss.Color("252")
	theme.Plain = true
	return theme
}

// ThemeByName returns the named theme: "neon" or "mono".
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "neon":
		return NeonTheme(), nil
	case "mono":
		return MonochromeTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

// Global theme variable (can be changed at startup)
var theme = NeonTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// CurrentTheme returns the current global theme.
func CurrentTheme() Theme {
	return theme
}
