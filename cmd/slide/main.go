// slide is a sliding-tile puzzle for the terminal, played with the mouse.
//
// Usage:
//
//	slide list              - List available puzzles
//	slide play <puzzle>     - Play a puzzle
//	slide menu              - Start menu to pick puzzles interactively
//	slide stats [puzzle]    - Show session statistics
//	slide config            - Print the default config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.slide/sessions.db)
//	--log-file <path>    - Write a debug log to a file
//	--log-level <level>  - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/games/slide"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slide",
	Short: "Slide - Sliding tile puzzles in your terminal",
	Long: `Slide is a terminal sliding-tile puzzle. Click a tile in the row or
column of the empty cell to shift it, or drag a neighbouring tile
into the gap.

Available commands:
  list     - Show all available puzzles
  play     - Play a specific puzzle directly
  menu     - Interactive puzzle picker menu
  stats    - View session statistics
  config   - Print the default configuration

Examples:
  slide list
  slide play 15-puzzle
  slide play slide --size large
  slide menu
  slide stats 8-puzzle`,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slide/sessions.db", "Path to sessions database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write a debug log to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging builds the file logger. The terminal belongs to the UI,
// so without --log-file everything is discarded.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "slide",
			Level:           level,
		})
	}

	slide.SetLogger(logger)
	return nil
}
