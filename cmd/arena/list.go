package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arena/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	modes := registry.List()
	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	width := len("ID")
	for _, m := range modes {
		width = max(width, len(m.ID))
	}

	fmt.Println("Available modes:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", width, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", width, "--", "-----")
	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", width, m.ID, m.Title)
	}
	fmt.Println()
	fmt.Println("Run 'arena play <id>' to play a mode.")
}
