package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available boards",
	Long:  `Shows every registered board preset with its size.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No boards available.")
		return
	}

	maxIDLen := len("ID")
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Available boards:")
	fmt.Println()
	fmt.Printf("  %-*s  %-26s  %s\n", maxIDLen, "ID", "Title", "Size")
	fmt.Printf("  %-*s  %-26s  %s\n", maxIDLen, "--", "-----", "----")

	for _, g := range games {
		fmt.Printf("  %-*s  %-26s  %s\n", maxIDLen, g.ID, g.Title, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'mines play <id>' to play a board.")
}
