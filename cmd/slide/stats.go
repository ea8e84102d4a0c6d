package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/registry"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

var flagRecent int

var statsCmd = &cobra.Command{
	Use:   "stats [puzzle]",
	Short: "Show session statistics",
	Long: `Display aggregated statistics and recent sessions.
Without an argument, every puzzle is summarised.

Examples:
  slide stats
  slide stats 15-puzzle
  slide stats 8-puzzle --recent 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent sessions to show")
}

func runStats(cmd *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'slide list' to see available puzzles.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if gameID == "" {
		printAllStats(store)
		return
	}

	stats, err := store.GameStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	sessions, err := store.RecentSessions(gameID, flagRecent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Statistics - %s\n", titleOf(gameID))
	fmt.Println()

	if stats.Sessions == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'slide play %s' to start.\n", gameID)
		return
	}

	fmt.Printf("  Sessions:   %d\n", stats.Sessions)
	fmt.Printf("  Solved:     %d\n", stats.SolvedCount)
	if stats.BestMoves > 0 {
		fmt.Printf("  Best:       %d moves\n", stats.BestMoves)
	}
	fmt.Printf("  Avg moves:  %.1f\n", stats.AvgMoves)
	fmt.Printf("  Played:     %ds\n", stats.TotalDuration)
	fmt.Println()

	fmt.Printf("  %-6s  %-5s  %-6s  %-6s  %-7s  %s\n", "#", "Size", "Moves", "Clicks", "Drags", "Date")
	fmt.Printf("  %-6s  %-5s  %-6s  %-6s  %-7s  %s\n", "-", "----", "-----", "------", "-----", "----")
	for _, s := range sessions {
		size := fmt.Sprintf("%dx%d", s.Dimension, s.Dimension)
		drags := fmt.Sprintf("%d/%d", s.DragsCommitted, s.DragsCommitted+s.DragsCancelled)
		fmt.Printf("  %-6d  %-5s  %-6d  %-6d  %-7s  %s\n",
			s.ID, size, s.Moves, s.Clicks, drags, s.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
}

// printAllStats prints one summary line per played puzzle.
func printAllStats(store *storage.Store) {
	all, err := store.AllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Printf("  %-10s  %-8s  %-6s  %-5s  %s\n", "Puzzle", "Sessions", "Solved", "Best", "Last played")
	fmt.Printf("  %-10s  %-8s  %-6s  %-5s  %s\n", "------", "--------", "------", "----", "-----------")
	for _, g := range registry.List() {
		st, ok := all[g.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-10s  %-8d  %-6d  %-5d  %s\n",
			g.ID, st.Sessions, st.SolvedCount, st.BestMoves, st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
}

func titleOf(gameID string) string {
	for _, g := range registry.List() {
		if g.ID == gameID {
			return g.Title
		}
	}
	return gameID
}
