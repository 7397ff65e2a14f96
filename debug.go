package springcurve

import (
	"context"
	"log/slog"
	"time"
)

// frameStats holds per-frame timing and draw-call counts.
// Only populated when Scene.debug is true.
type frameStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	strokes    int
	fills      int
	texts      int
}

// debugLog logs frame stats and the curve state at debug level.
func (s *Scene) debugLog(stats frameStats) {
	if !s.debug {
		return
	}
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	b := s.curve.Bounds()
	l.Debug("frame",
		"frame", s.frame,
		"state", s.State(),
		"update", stats.updateTime,
		"draw", stats.drawTime,
		"strokes", stats.strokes,
		"fills", stats.fills,
		"texts", stats.texts,
		slog.Group("bounds", "x", b.X, "y", b.Y, "w", b.Width, "h", b.Height),
	)
}

// countingSurface wraps a Surface and counts its draw calls.
type countingSurface struct {
	Surface
	strokes, fills, texts int
}

func (c *countingSurface) Stroke() {
	c.strokes++
	c.Surface.Stroke()
}

func (c *countingSurface) Fill() {
	c.fills++
	c.Surface.Fill()
}

func (c *countingSurface) FillText(s string, x, y float64) {
	c.texts++
	c.Surface.FillText(s, x, y)
}
