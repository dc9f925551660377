// Package skins defines the cosmetic runner skins sold in the shop.
// Skins only change how the runner and its trail are drawn.
package skins

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/neon-dash/internal/core"
)

// DefaultID is the skin every player owns from the start.
const DefaultID = "classic"

// ErrUnknownSkin is returned when an identifier is not in the catalog.
var ErrUnknownSkin = errors.New("unknown skin")

// Skin describes one purchasable look.
type Skin struct {
	ID    string
	Name  string
	Price int // in coins

	Fill string // body color, hex
	Glow string // outline and trail color, hex
	Face bool   // whether the runner is drawn with eyes

	Color core.Color // closest terminal color to Glow
}

var catalog = []Skin{
	{ID: "classic", Name: "Classic", Price: 0, Fill: "#141A2B", Glow: "#62D0FF", Face: true, Color: core.ColorBrightCyan},
	{ID: "violet", Name: "Violet", Price: 35, Fill: "#241A3B", Glow: "#B26BFF", Face: true, Color: core.ColorMagenta},
	{ID: "neon", Name: "Neon", Price: 60, Fill: "#0E1F28", Glow: "#62D0FF", Color: core.ColorCyan},
	{ID: "rose", Name: "Rose", Price: 90, Fill: "#2B1427", Glow: "#FF5EDB", Face: true, Color: core.ColorBrightMagenta},
	{ID: "mint", Name: "Mint", Price: 120, Fill: "#102B2B", Glow: "#4DFFD6", Face: true, Color: core.ColorBrightGreen},
	{ID: "gold", Name: "Gold", Price: 160, Fill: "#2B2414", Glow: "#FFD66E", Color: core.ColorBrightYellow},
}

// Catalog returns every skin in shop order, cheapest first.
func Catalog() []Skin {
	out := make([]Skin, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the skin with the given identifier.
func Lookup(id string) (Skin, error) {
	for _, s := range catalog {
		if s.ID == id {
			return s, nil
		}
	}
	return Skin{}, fmt.Errorf("%w: %q", ErrUnknownSkin, id)
}

// Resolve returns the skin for id, falling back to the default skin for
// unknown identifiers.
func Resolve(id string) Skin {
	if s, err := Lookup(id); err == nil {
		return s
	}
	return catalog[0]
}
