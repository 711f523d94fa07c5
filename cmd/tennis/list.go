package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tennis/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game. The one marked with * is played when no game is named.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printGames(os.Stdout, registry.List())
	},
}

// printGames writes the game table.
func printGames(w io.Writer, games []registry.Info) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	idWidth := len("ID")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID)+1)
	}

	header := lipgloss.NewStyle().Bold(true)
	fmt.Fprintln(w, header.Render(fmt.Sprintf("  %-*s  %s", idWidth, "ID", "Title")))
	for _, g := range games {
		id := g.ID
		if id == defaultGame {
			id += "*"
		}
		fmt.Fprintf(w, "  %-*s  %s\n", idWidth, id, g.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'tennis play <id>' to play a game.")
}
