package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dash/internal/skins"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Show coins and owned skins",
	Args:  cobra.NoArgs,
	Run:   runWallet,
}

func runWallet(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	coins, err := store.Coins()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	owned, err := store.OwnedSkins()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	equipped, err := store.EquippedSkin()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	names := make([]string, 0, len(owned))
	for _, id := range owned {
		names = append(names, skins.Resolve(id).Name)
	}

	fmt.Printf("Coins:    %d\n", coins)
	fmt.Printf("Equipped: %s\n", skins.Resolve(equipped).Name)
	fmt.Printf("Owned:    %s\n", strings.Join(names, ", "))
}
