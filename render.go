package springcurve

import (
	"math"
	"strconv"
)

// Renderer draws a Scene onto a Surface. It holds only the style; all
// geometry comes from the scene each frame.
type Renderer struct {
	style  Style
	labels [4]string
}

// NewRenderer creates a renderer with the given style.
func NewRenderer(style Style) *Renderer {
	r := &Renderer{style: style}
	for i := range r.labels {
		r.labels[i] = "P" + strconv.Itoa(i)
	}
	return r
}

// Style returns the renderer's style.
func (r *Renderer) Style() Style { return r.style }

// Draw issues one full frame on dst: background, dashed control polygon,
// control point markers with labels, the curve, then the tangent ticks.
func (r *Renderer) Draw(dst Surface, s *Scene) {
	cfg := s.Config()
	curve := s.Curve()

	dst.Clear(r.style.Background)
	r.drawHandles(dst, &curve, cfg)
	r.drawCurve(dst, &curve, cfg)
	r.drawTangents(dst, &curve, cfg)
}

// drawHandles draws the dashed control polygon and the point markers.
func (r *Renderer) drawHandles(dst Surface, c *Curve, cfg SimulationConfig) {
	pts := c.Points()

	dst.SetStrokeStyle(r.style.Handle, r.style.HandleWidth)
	dst.SetLineDash(r.style.HandleDash...)
	dst.BeginPath()
	dst.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dst.LineTo(p.X, p.Y)
	}
	dst.Stroke()
	dst.SetLineDash()

	inner := cfg.PointRadius * r.style.HighlightScale
	for i, p := range pts {
		dst.SetFillColor(r.style.Marker)
		dst.BeginPath()
		dst.Arc(p.X, p.Y, cfg.PointRadius, 0, 2*math.Pi)
		dst.Fill()

		dst.SetFillColor(r.style.Highlight)
		dst.BeginPath()
		dst.Arc(p.X, p.Y, inner, 0, 2*math.Pi)
		dst.Fill()

		dst.SetFillColor(r.style.Label)
		dst.FillText(r.labels[i], p.X+r.style.LabelOffset.X, p.Y+r.style.LabelOffset.Y)
	}
}

// drawCurve samples the curve every cfg.Step (at least MinStep) and strokes
// the polyline. t is accumulated by addition, so the last sample may fall
// short of 1; the path always finishes on P3.
func (r *Renderer) drawCurve(dst Surface, c *Curve, cfg SimulationConfig) {
	dst.SetStrokeStyle(r.style.Curve, r.style.CurveWidth)
	dst.BeginPath()

	start := c.At(0)
	dst.MoveTo(start.X, start.Y)
	step := max(cfg.Step, MinStep)
	for t := 0.0; t <= 1; t += step {
		p := c.At(t)
		dst.LineTo(p.X, p.Y)
	}
	dst.LineTo(c.P3.X, c.P3.Y)
	dst.Stroke()
}

// drawTangents draws a tick of TangentLength centered on the curve every
// cfg.TangentStep (at least MinTangentStep). Ticks run along the tangent
// direction, not across it.
func (r *Renderer) drawTangents(dst Surface, c *Curve, cfg SimulationConfig) {
	dst.SetStrokeStyle(r.style.Tangent, r.style.TangentWidth)
	half := cfg.TangentLength * 0.5

	step := max(cfg.TangentStep, MinTangentStep)
	for t := 0.0; t <= 1; t += step {
		p := c.At(t)
		n := Normalize(c.TangentAt(t))

		dst.BeginPath()
		dst.MoveTo(p.X-n.X*half, p.Y-n.Y*half)
		dst.LineTo(p.X+n.X*half, p.Y+n.Y*half)
		dst.Stroke()
	}
}
