package slide

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/puzzle"
)

// tween moves a tile visual between two board positions over a number of ticks.
type tween struct {
	from       core.Point
	to         core.Point
	ticks      int
	duration   int
	onComplete func()
}

// progress returns the eased completion in [0, 1].
func (tw *tween) progress() float64 {
	p := float64(tw.ticks) / float64(tw.duration)
	if p > 1.0 {
		p = 1.0
	}
	return easeOutQuad(p)
}

// tileVisual is the on-screen state of one tile.
type tileVisual struct {
	rect   core.Rect
	placed bool
	tween  *tween
}

// tweenRenderer implements puzzle.Renderer for the fixed-tick loop.
// Place is immediate; Slide starts a tween that Advance moves forward
// one tick at a time. Rects are relative to the board's top-left corner.
type tweenRenderer struct {
	tickRate int
	visuals  []tileVisual // indexed by tile
}

var _ puzzle.Renderer = (*tweenRenderer)(nil)

func newTweenRenderer(tileCount, tickRate int) *tweenRenderer {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return &tweenRenderer{
		tickRate: tickRate,
		visuals:  make([]tileVisual, tileCount+1),
	}
}

func (r *tweenRenderer) visual(t puzzle.Tile) *tileVisual {
	if t <= puzzle.NoTile || int(t) >= len(r.visuals) {
		return nil
	}
	return &r.visuals[t]
}

// Place moves a tile immediately and drops any running tween.
func (r *tweenRenderer) Place(t puzzle.Tile, rect core.Rect) {
	v := r.visual(t)
	if v == nil {
		return
	}
	v.rect = rect
	v.placed = true
	v.tween = nil
}

// Slide starts a tween from the tile's current position. A tween already
// running for the tile is replaced and its callback dropped.
func (r *tweenRenderer) Slide(t puzzle.Tile, d time.Duration, top, left int, onComplete func()) {
	v := r.visual(t)
	if v == nil {
		return
	}
	to := core.Pt(left, top)

	ticks := r.durationTicks(d)
	if ticks == 0 || v.rect.Origin() == to {
		v.rect.X, v.rect.Y = to.X, to.Y
		v.tween = nil
		if onComplete != nil {
			onComplete()
		}
		return
	}

	v.tween = &tween{
		from:       v.rect.Origin(),
		to:         to,
		duration:   ticks,
		onComplete: onComplete,
	}
}

// durationTicks converts a duration to the nearest whole number of ticks.
// Any positive duration lasts at least one tick.
func (r *tweenRenderer) durationTicks(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	ticks := int(math.Round(d.Seconds() * float64(r.tickRate)))
	return core.Max(ticks, 1)
}

// Advance moves every running tween forward by one tick.
func (r *tweenRenderer) Advance() {
	for i := range r.visuals {
		v := &r.visuals[i]
		tw := v.tween
		if tw == nil {
			continue
		}

		tw.ticks++
		if tw.ticks >= tw.duration {
			v.rect.X, v.rect.Y = tw.to.X, tw.to.Y
			v.tween = nil
			if tw.onComplete != nil {
				tw.onComplete()
			}
			continue
		}

		t := tw.progress()
		v.rect.X = tw.from.X + int(math.Round(float64(tw.to.X-tw.from.X)*t))
		v.rect.Y = tw.from.Y + int(math.Round(float64(tw.to.Y-tw.from.Y)*t))
	}
}

// Animating returns true while any tween is running.
func (r *tweenRenderer) Animating() bool {
	for i := range r.visuals {
		if r.visuals[i].tween != nil {
			return true
		}
	}
	return false
}

// Rect returns the current board-relative rectangle of a tile.
func (r *tweenRenderer) Rect(t puzzle.Tile) (core.Rect, bool) {
	v := r.visual(t)
	if v == nil || !v.placed {
		return core.Rect{}, false
	}
	return v.rect, true
}

// Moving reports whether the tile has a running tween.
func (r *tweenRenderer) Moving(t puzzle.Tile) bool {
	v := r.visual(t)
	return v != nil && v.tween != nil
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
