package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dash/internal/platform/tui"
	"github.com/vovakirdan/neon-dash/internal/skins"
	"github.com/vovakirdan/neon-dash/internal/storage"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse, buy and equip skins",
	Long: `Open the interactive skin shop, or use a subcommand from scripts.

Coins are earned by collecting them during runs. A bought skin is yours for
good; equipping an owned skin is free.

Examples:
  dash shop
  dash shop list
  dash shop buy violet
  dash shop equip classic`,
	Args: cobra.NoArgs,
	Run:  runShop,
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the skin catalog",
	Args:  cobra.NoArgs,
	Run:   runShopList,
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <skin>",
	Short: "Buy a skin with coins and equip it",
	Args:  cobra.ExactArgs(1),
	Run:   runShopBuy,
}

var shopEquipCmd = &cobra.Command{
	Use:   "equip <skin>",
	Short: "Equip an owned skin",
	Args:  cobra.ExactArgs(1),
	Run:   runShopEquip,
}

func init() {
	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopBuyCmd)
	shopCmd.AddCommand(shopEquipCmd)
}

func runShop(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	cfg := runtimeConfig(nil)

	_, err := tui.RunShop(store, cfg.ScreenW, cfg.ScreenH)
	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runShopList(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	wallet, err := store.Coins()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	equipped, _ := store.EquippedSkin()

	fmt.Printf("Wallet: %d coins\n", wallet)
	fmt.Println()
	fmt.Printf("  %-8s  %-8s  %-6s  %s\n", "ID", "Name", "Price", "Status")
	fmt.Printf("  %-8s  %-8s  %-6s  %s\n", "--", "----", "-----", "------")

	for _, s := range skins.Catalog() {
		status := ""
		owned, err := store.OwnsSkin(s.ID)
		switch {
		case err != nil:
			status = "?"
		case s.ID == equipped:
			status = "equipped"
		case owned:
			status = "owned"
		case s.Price > wallet:
			status = fmt.Sprintf("need %d more", s.Price-wallet)
		}
		fmt.Printf("  %-8s  %-8s  %-6d  %s\n", s.ID, s.Name, s.Price, status)
	}
}

func runShopBuy(_ *cobra.Command, args []string) {
	skin, err := skins.Lookup(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := mustOpenStore()
	defer store.Close()

	remaining, err := store.BuySkin(skin.ID, skin.Price)
	switch {
	case errors.Is(err, storage.ErrAlreadyOwned):
		fmt.Printf("You already own %s.\n", skin.Name)
	case errors.Is(err, storage.ErrInsufficientCoins):
		wallet, _ := store.Coins()
		fmt.Fprintf(os.Stderr, "Error: %s costs %d coins, you have %d\n", skin.Name, skin.Price, wallet)
		return
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	default:
		fmt.Printf("Bought %s for %d coins, %d left.\n", skin.Name, skin.Price, remaining)
	}

	if err := store.EquipSkin(skin.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("Equipped %s.\n", skin.Name)
}

func runShopEquip(_ *cobra.Command, args []string) {
	skin, err := skins.Lookup(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := mustOpenStore()
	defer store.Close()

	if err := store.EquipSkin(skin.ID); err != nil {
		if errors.Is(err, storage.ErrSkinNotOwned) {
			fmt.Fprintf(os.Stderr, "Error: you do not own %s yet, try 'dash shop buy %s'\n", skin.Name, skin.ID)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("Equipped %s.\n", skin.Name)
}
