package springcurve

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// ImageSurface is a Surface backed by a gg.Context software rasterizer. It
// needs no window or GPU and is used for headless export.
type ImageSurface struct {
	dc     *gg.Context
	stroke Color
	fill   Color
	width  float64
	err    error
}

// NewImageSurface creates a w×h image surface with the Go Regular font at
// fontSize for labels.
func NewImageSurface(w, h int, fontSize float64) (*ImageSurface, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("springcurve: parse label font: %w", err)
	}
	dc := gg.NewContext(w, h)
	dc.SetFont(src.Face(fontSize))
	return &ImageSurface{dc: dc, width: 1}, nil
}

// Context returns the underlying gg context.
func (s *ImageSurface) Context() *gg.Context { return s.dc }

// Err returns the first rasterization error since the last call, and
// clears it. Surface methods have no error return, so failures are held here.
func (s *ImageSurface) Err() error {
	err := s.err
	s.err = nil
	return err
}

func (s *ImageSurface) keep(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

// Size returns the pixmap size.
func (s *ImageSurface) Size() (float64, float64) {
	return float64(s.dc.Width()), float64(s.dc.Height())
}

// Clear fills the whole pixmap with c.
func (s *ImageSurface) Clear(c Color) {
	s.dc.ClearWithColor(gg.FromColor(c))
}

// SetStrokeStyle sets the color and width used by Stroke.
func (s *ImageSurface) SetStrokeStyle(c Color, width float64) {
	s.stroke = c
	s.width = width
}

// SetFillColor sets the color used by Fill and FillText.
func (s *ImageSurface) SetFillColor(c Color) { s.fill = c }

// SetLineDash sets the gg dash pattern; no arguments means solid.
func (s *ImageSurface) SetLineDash(pattern ...float64) {
	s.dc.SetDash(pattern...)
}

// BeginPath discards the current path.
func (s *ImageSurface) BeginPath() { s.dc.ClearPath() }

// MoveTo starts a new subpath at (x, y).
func (s *ImageSurface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }

// LineTo extends the current subpath to (x, y).
func (s *ImageSurface) LineTo(x, y float64) { s.dc.LineTo(x, y) }

// Arc appends a circular arc to the path.
func (s *ImageSurface) Arc(cx, cy, r, startAngle, endAngle float64) {
	s.dc.DrawArc(cx, cy, r, startAngle, endAngle)
}

// Stroke strokes and clears the path. Errors are kept for Err.
func (s *ImageSurface) Stroke() {
	s.dc.SetColor(s.stroke)
	s.dc.SetLineWidth(s.width)
	s.keep(s.dc.Stroke())
}

// Fill fills and clears the path. Errors are kept for Err.
func (s *ImageSurface) Fill() {
	s.dc.SetColor(s.fill)
	s.keep(s.dc.Fill())
}

// FillText draws str with its baseline at y.
func (s *ImageSurface) FillText(str string, x, y float64) {
	s.dc.SetColor(s.fill)
	s.dc.DrawString(str, x, y)
}

// EncodePNG writes the current image as PNG.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// SavePNG writes the current image to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Close releases the gg context.
func (s *ImageSurface) Close() error {
	return s.dc.Close()
}
