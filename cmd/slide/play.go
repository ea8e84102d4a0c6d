package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/games/slide"
	"github.com/vovakirdan/tui-slide/internal/platform/tui"
	"github.com/vovakirdan/tui-slide/internal/registry"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

var (
	flagConfig string
	flagSize   string
)

var playCmd = &cobra.Command{
	Use:   "play <puzzle>",
	Short: "Play a puzzle",
	Long: `Start playing the specified puzzle.

Controls:
  Click      - Shift the tiles between the clicked tile and the gap
  Drag       - Slide a tile next to the gap; release past halfway to move it
  P/Esc      - Pause
  R          - Save the session and restore the board
  Q/Ctrl+C   - Quit

Size options (for the configurable "slide" puzzle):
  small    - 3x3
  classic  - 4x4
  large    - 5x5

Examples:
  slide play 8-puzzle
  slide play slide --size large
  slide play slide --config ./my-slide.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom slide config YAML")
	playCmd.Flags().StringVar(&flagSize, "size", "", "Board size preset: small, classic, large")
}

// terminalConfig builds the runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

// openStore opens the sessions database. Play continues without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		logger.Warn("sessions database unavailable", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'slide list' to see available puzzles.")
		os.Exit(1)
	}

	cfg := terminalConfig()

	// Set config path and size before creation
	slide.SetConfigPath(flagConfig)
	slide.SetSizePreset(flagSize)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating puzzle: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	runErr := tui.Run(game, store, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", runErr)
		os.Exit(1)
	}
}
