package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-slide/internal/core"
)

// palette maps core.Color to ANSI 256-color codes.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// colorStyles maps core.Color to lipgloss styles. Bright colors are bold so
// highlighted tiles stand out on terminals with a small palette.
var colorStyles = newColorStyles()

func newColorStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, code := range palette {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(code))
		if c >= core.ColorBrightRed && c <= core.ColorBrightWhite {
			style = style.Bold(true)
		}
		styles[c] = style
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of cells with the same color share one style to keep escape sequences short.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
