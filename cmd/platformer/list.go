package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows the levels of the campaign in the order they are played.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	entries := registry.List()

	if len(entries) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, e := range entries {
		maxIDLen = max(maxIDLen, len(e.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "ID", "Size", "Coins", "Name")
	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "--", "----", "-----", "----")

	for _, e := range entries {
		size, coins := "?", "?"
		if lvl, err := sim.ParseLevel(e.Plan); err == nil {
			size = fmt.Sprintf("%dx%d", lvl.Width(), lvl.Height())
			coins = fmt.Sprint(lvl.CountKind(sim.KindCoin))
		}
		fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, e.ID, size, coins, e.Name)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to start at a level.")
}
