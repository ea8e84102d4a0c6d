package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in slide.yaml. Save it to ~/.slide/configs/slide.yaml
or ./configs/slide.yaml to customise the board and theme.

Examples:
  slide config > ~/.slide/configs/slide.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultSlideYAML())
		return err
	},
}
