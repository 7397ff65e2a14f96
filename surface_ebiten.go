package springcurve

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// arcSegmentsPerTurn is the flattening resolution of a full circle.
const arcSegmentsPerTurn = 48

// EbitenSurface is a Surface that draws onto an *ebiten.Image. Paths are kept
// as flattened polylines; strokes go through vector.StrokePath with round
// joins and fills through vector.FillPath.
type EbitenSurface struct {
	target *ebiten.Image
	face   *text.GoTextFace
	ascent float64

	stroke    Color
	lineWidth float32
	fill      Color
	dash      []float64

	subpaths [][]Vec2
	path     vector.Path
}

// NewEbitenSurface creates a surface using the Go Regular font at fontSize
// for labels. Call SetTarget before drawing.
func NewEbitenSurface(fontSize float64) (*EbitenSurface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("springcurve: parse label font: %w", err)
	}
	face := &text.GoTextFace{Source: src, Size: fontSize}

	return &EbitenSurface{
		face:      face,
		ascent:    face.Metrics().HAscent,
		lineWidth: 1,
		stroke:    Color{0, 0, 0, 1},
		fill:      Color{0, 0, 0, 1},
	}, nil
}

// SetTarget sets the image subsequent calls draw onto.
func (s *EbitenSurface) SetTarget(img *ebiten.Image) {
	s.target = img
}

// Size returns the bounds of the current target.
func (s *EbitenSurface) Size() (float64, float64) {
	if s.target == nil {
		return 0, 0
	}
	b := s.target.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear fills the whole target with c.
func (s *EbitenSurface) Clear(c Color) {
	s.target.Fill(c.toRGBA())
}

// SetStrokeStyle sets the color and width used by Stroke.
func (s *EbitenSurface) SetStrokeStyle(c Color, width float64) {
	s.stroke = c
	s.lineWidth = float32(width)
}

// SetFillColor sets the color used by Fill and FillText.
func (s *EbitenSurface) SetFillColor(c Color) { s.fill = c }

// SetLineDash sets the dash pattern used by Stroke; no arguments means solid.
func (s *EbitenSurface) SetLineDash(pattern ...float64) {
	s.dash = append(s.dash[:0], pattern...)
}

// BeginPath discards the current path.
func (s *EbitenSurface) BeginPath() {
	s.subpaths = s.subpaths[:0]
}

// MoveTo starts a new subpath at (x, y).
func (s *EbitenSurface) MoveTo(x, y float64) {
	s.subpaths = append(s.subpaths, []Vec2{{x, y}})
}

// LineTo extends the current subpath to (x, y).
func (s *EbitenSurface) LineTo(x, y float64) {
	if len(s.subpaths) == 0 {
		s.MoveTo(x, y)
		return
	}
	last := len(s.subpaths) - 1
	s.subpaths[last] = append(s.subpaths[last], Vec2{x, y})
}

// Arc appends a clockwise arc. If a subpath is open, a line joins its last
// point to the start of the arc.
func (s *EbitenSurface) Arc(cx, cy, r, startAngle, endAngle float64) {
	for endAngle < startAngle {
		endAngle += 2 * math.Pi
	}
	sweep := endAngle - startAngle
	n := max(int(math.Ceil(sweep/(2*math.Pi)*arcSegmentsPerTurn)), 1)

	first := Vec2{cx + r*math.Cos(startAngle), cy + r*math.Sin(startAngle)}
	if len(s.subpaths) == 0 {
		s.MoveTo(first.X, first.Y)
	} else {
		s.LineTo(first.X, first.Y)
	}
	for i := 1; i <= n; i++ {
		a := startAngle + sweep*float64(i)/float64(n)
		s.LineTo(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
}

// Stroke strokes the current path with the stroke style and dash pattern.
// Consecutive segments are joined with round joins; line ends are butt.
func (s *EbitenSurface) Stroke() {
	s.path.Reset()
	for _, sp := range s.subpaths {
		for _, run := range strokePolylines(sp, s.dash) {
			s.path.MoveTo(float32(run[0].X), float32(run[0].Y))
			for _, p := range run[1:] {
				s.path.LineTo(float32(p.X), float32(p.Y))
			}
		}
	}
	s.subpaths = s.subpaths[:0]

	sop := &vector.StrokeOptions{
		Width:    s.lineWidth,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapButt,
	}
	dop := &vector.DrawPathOptions{AntiAlias: true}
	dop.ColorScale.ScaleWithColor(s.stroke)
	vector.StrokePath(s.target, &s.path, sop, dop)
}

// Fill fills the current path with the fill color using the nonzero rule.
func (s *EbitenSurface) Fill() {
	s.path.Reset()
	for _, sp := range s.subpaths {
		if len(sp) < 3 {
			continue
		}
		s.path.MoveTo(float32(sp[0].X), float32(sp[0].Y))
		for _, p := range sp[1:] {
			s.path.LineTo(float32(p.X), float32(p.Y))
		}
		s.path.Close()
	}
	s.subpaths = s.subpaths[:0]

	dop := &vector.DrawPathOptions{AntiAlias: true}
	dop.ColorScale.ScaleWithColor(s.fill)
	vector.FillPath(s.target, &s.path, &vector.FillOptions{FillRule: vector.FillRuleNonZero}, dop)
}

// FillText draws s with its baseline at y.
func (s *EbitenSurface) FillText(str string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-s.ascent)
	op.ColorScale.ScaleWithColor(s.fill)
	text.Draw(s.target, str, s.face, op)
}
