package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/games/slide"
	"github.com/vovakirdan/tui-slide/internal/platform/tui"
	"github.com/vovakirdan/tui-slide/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a puzzle picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a puzzle.
After quitting a puzzle, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select puzzle
  Tab          - Session history
  Q            - Quit

Examples:
  slide menu
  slide menu --fps 30
  slide menu --db ./sessions.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom slide config YAML")
	menuCmd.Flags().StringVar(&flagSize, "size", "", "Board size preset for the configurable puzzle")
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	cfg := terminalConfig()

	slide.SetConfigPath(flagConfig)
	slide.SetSizePreset(flagSize)

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating puzzle: %v\n", err)
			continue
		}

		logger.Info("starting puzzle", "game", menuResult.GameID)
		if err := tui.Run(game, store, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
