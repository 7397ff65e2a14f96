package springcurve

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Style holds the colors and stroke widths used by the Renderer.
type Style struct {
	Background Color
	Handle     Color // dashed control polygon
	Marker     Color // outer control point disc
	Highlight  Color // inner control point disc
	Label      Color
	Curve      Color
	Tangent    Color

	HandleWidth  float64
	CurveWidth   float64
	TangentWidth float64
	HandleDash   []float64

	HighlightScale float64 // inner disc radius as a fraction of PointRadius
	LabelOffset    Vec2    // label baseline position relative to its point
	FontSize       float64
}

// StyleSpec is the serializable form of Style with colors as hex strings.
type StyleSpec struct {
	Background string `json:"background"`
	Handle     string `json:"handle"`
	Marker     string `json:"marker"`
	Highlight  string `json:"highlight"`
	Label      string `json:"label"`
	Curve      string `json:"curve"`
	Tangent    string `json:"tangent"`

	HandleWidth    float64   `json:"handleWidth"`
	CurveWidth     float64   `json:"curveWidth"`
	TangentWidth   float64   `json:"tangentWidth"`
	HandleDash     []float64 `json:"handleDash"`
	HighlightScale float64   `json:"highlightScale"`
	LabelOffsetX   float64   `json:"labelOffsetX"`
	LabelOffsetY   float64   `json:"labelOffsetY"`
	FontSize       float64   `json:"fontSize"`
}

// DefaultStyleSpec returns the stock palette: a light slate background, blue
// curve, amber tangent ticks and red control points.
func DefaultStyleSpec() StyleSpec {
	return StyleSpec{
		Background:     "#f8f9fa",
		Handle:         "#cbd5e1",
		Marker:         "#ef4444",
		Highlight:      "#fca5a5",
		Label:          "#1e293b",
		Curve:          "#2563eb",
		Tangent:        "#f59e0b",
		HandleWidth:    1,
		CurveWidth:     2.5,
		TangentWidth:   1.4,
		HandleDash:     []float64{4, 4},
		HighlightScale: 0.4,
		LabelOffsetX:   10,
		LabelOffsetY:   -10,
		FontSize:       11,
	}
}

// DefaultStyle returns the parsed DefaultStyleSpec.
func DefaultStyle() Style {
	s, err := DefaultStyleSpec().Style()
	if err != nil {
		panic(err) // stock palette is a constant
	}
	return s
}

// Style parses the hex colors of sp into a Style.
func (sp StyleSpec) Style() (Style, error) {
	st := Style{
		HandleWidth:    sp.HandleWidth,
		CurveWidth:     sp.CurveWidth,
		TangentWidth:   sp.TangentWidth,
		HandleDash:     append([]float64(nil), sp.HandleDash...),
		HighlightScale: sp.HighlightScale,
		LabelOffset:    Vec2{sp.LabelOffsetX, sp.LabelOffsetY},
		FontSize:       sp.FontSize,
	}
	fields := []struct {
		name string
		hex  string
		dst  *Color
	}{
		{"background", sp.Background, &st.Background},
		{"handle", sp.Handle, &st.Handle},
		{"marker", sp.Marker, &st.Marker},
		{"highlight", sp.Highlight, &st.Highlight},
		{"label", sp.Label, &st.Label},
		{"curve", sp.Curve, &st.Curve},
		{"tangent", sp.Tangent, &st.Tangent},
	}
	for _, f := range fields {
		c, err := ParseHexColor(f.hex)
		if err != nil {
			return Style{}, fmt.Errorf("style %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return st, nil
}

// ParseHexColor parses a "#rrggbb" string into an opaque Color.
func ParseHexColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, err
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}
