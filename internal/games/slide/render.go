package slide

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/puzzle"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check screen size
	if g.tooSmall || g.puzzle == nil {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)

	if g.paused {
		cx := g.origin.X + g.boardW/2
		cy := g.origin.Y + g.boardH/2
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the title, move counter and order indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	left := g.origin.X - 1
	width := g.boardW + 2

	titleX := left + (width-len(g.title))/2
	dst.DrawText(titleX, 0, g.title)

	stats := g.puzzle.Stats()
	dst.DrawText(left, 1, fmt.Sprintf("Moves: %d", stats.Moves))

	if g.puzzle.Solved() {
		status := "In order"
		dst.DrawTextColored(left+width-len(status), 1, status, g.colors.Solved)
	}

	detail := fmt.Sprintf("Clicks %d  Drags %d/%d", stats.Clicks, stats.DragsCommitted,
		stats.DragsCommitted+stats.DragsCancelled)
	dst.DrawText(left+(width-len(detail))/2, 2, detail)
}

// renderBoard draws the frame, the empty cell and every tile at its
// animated position.
func (g *Game) renderBoard(dst *core.Screen) {
	frameColor := core.ColorDefault
	if g.puzzle.Solved() {
		frameColor = g.colors.Solved
	}
	dst.DrawBoxColored(core.NewRect(g.origin.X-1, g.origin.Y-1, g.boardW+2, g.boardH+2), frameColor)

	empty := g.puzzle.Position(g.puzzle.EmptyCell()).Moved(g.origin.X, g.origin.Y)
	dst.FillRect(empty, '·', g.colors.Empty)

	dragged := make(map[puzzle.Tile]bool)
	for _, t := range g.puzzle.DraggedTiles() {
		dragged[t] = true
	}

	// Moving tiles are drawn last so they pass over resting ones.
	var moving []puzzle.Tile
	for _, t := range g.puzzle.Layout() {
		if t == puzzle.NoTile {
			continue
		}
		if dragged[t] || g.tiles.Moving(t) {
			moving = append(moving, t)
			continue
		}
		g.drawTile(dst, t, g.colors.Tile)
	}
	for _, t := range moving {
		g.drawTile(dst, t, g.colors.Dragged)
	}
}

// drawTile draws one tile as a box when tall enough, else as a bracketed label.
func (g *Game) drawTile(dst *core.Screen, t puzzle.Tile, color core.Color) {
	r, ok := g.tiles.Rect(t)
	if !ok {
		return
	}
	r = r.Moved(g.origin.X, g.origin.Y)
	label := strconv.Itoa(int(t))

	dst.FillRect(r, ' ', color)
	if r.H >= 3 && r.W >= len(label)+2 {
		dst.DrawBoxColored(r, color)
		dst.DrawTextColored(r.X+(r.W-len(label))/2, r.Y+r.H/2, label, color)
		return
	}

	dst.SetColored(r.X, r.Y+r.H/2, '[', color)
	dst.SetColored(r.Right()-1, r.Y+r.H/2, ']', color)
	inner := r.W - 2
	if len(label) > inner {
		label = label[len(label)-inner:]
	}
	dst.DrawTextColored(r.X+1+(inner-len(label))/2, r.Y+r.H/2, label, color)
}

// renderFooter draws the control hints under the board.
func (g *Game) renderFooter(dst *core.Screen) {
	hint := g.Controls()
	y := g.origin.Y + g.boardH + 1
	if len(hint) > g.screenW {
		hint = "Click/Drag  P  R  Q"
	}
	dst.DrawText((g.screenW-len(hint))/2, y, hint)
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	// Find max line width
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
