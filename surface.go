package springcurve

import "math"

// Surface is a 2D drawing target with an HTML-Canvas-like immediate-mode
// API. The Renderer only issues commands; it never reads surface state back.
//
// A path is started with BeginPath, built with MoveTo/LineTo/Arc and consumed
// by Stroke or Fill. Stroke uses the current stroke style and dash pattern;
// Fill and FillText use the current fill color.
type Surface interface {
	Size() (w, h float64)
	Clear(c Color)
	SetStrokeStyle(c Color, width float64)
	SetFillColor(c Color)
	SetLineDash(pattern ...float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(cx, cy, r, startAngle, endAngle float64)
	Stroke()
	Fill()
	FillText(s string, x, y float64)
}

// CommandType identifies a recorded Surface call.
type CommandType uint8

const (
	CommandClear       CommandType = iota // Clear
	CommandStrokeStyle                    // SetStrokeStyle
	CommandFillColor                      // SetFillColor
	CommandLineDash                       // SetLineDash
	CommandBeginPath                      // BeginPath
	CommandMoveTo                         // MoveTo
	CommandLineTo                         // LineTo
	CommandArc                            // Arc
	CommandStroke                         // Stroke
	CommandFill                           // Fill
	CommandText                           // FillText
)

var commandNames = [...]string{
	"clear", "strokeStyle", "fillColor", "lineDash", "beginPath",
	"moveTo", "lineTo", "arc", "stroke", "fill", "text",
}

// String returns the lower-camel name of the command.
func (t CommandType) String() string {
	if int(t) < len(commandNames) {
		return commandNames[t]
	}
	return "unknown"
}

// Command is one recorded Surface call. Only the fields relevant to Type are
// set: X/Y for MoveTo, LineTo, Arc (center) and FillText; R and the angles
// for Arc; Color for Clear, SetStrokeStyle and SetFillColor; Width for
// SetStrokeStyle; Dash for SetLineDash; Text for FillText.
type Command struct {
	Type       CommandType
	X, Y       float64
	R          float64
	StartAngle float64
	EndAngle   float64
	Color      Color
	Width      float64
	Dash       []float64
	Text       string
}

// Recorder is a Surface that records every call instead of drawing. It backs
// the tests and the command counts reported in debug mode.
type Recorder struct {
	W, H     float64
	Commands []Command
}

// NewRecorder creates a recorder reporting the given size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h, Commands: make([]Command, 0, 512)}
}

// Reset drops all recorded commands, keeping the buffer.
func (r *Recorder) Reset() { r.Commands = r.Commands[:0] }

// Count returns how many commands of type t were recorded.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for i := range r.Commands {
		if r.Commands[i].Type == t {
			n++
		}
	}
	return n
}

func (r *Recorder) push(c Command) { r.Commands = append(r.Commands, c) }

// Size returns the size given to NewRecorder.
func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

// Clear records a CommandClear.
func (r *Recorder) Clear(c Color) { r.push(Command{Type: CommandClear, Color: c}) }

// SetStrokeStyle records a CommandStrokeStyle.
func (r *Recorder) SetStrokeStyle(c Color, width float64) {
	r.push(Command{Type: CommandStrokeStyle, Color: c, Width: width})
}

// SetFillColor records a CommandFillColor.
func (r *Recorder) SetFillColor(c Color) { r.push(Command{Type: CommandFillColor, Color: c}) }

// SetLineDash records a CommandLineDash with a copy of pattern. An empty
// call records a nil Dash.
func (r *Recorder) SetLineDash(pattern ...float64) {
	r.push(Command{Type: CommandLineDash, Dash: append([]float64(nil), pattern...)})
}

// BeginPath records a CommandBeginPath.
func (r *Recorder) BeginPath() { r.push(Command{Type: CommandBeginPath}) }

// MoveTo records a CommandMoveTo.
func (r *Recorder) MoveTo(x, y float64) { r.push(Command{Type: CommandMoveTo, X: x, Y: y}) }

// LineTo records a CommandLineTo.
func (r *Recorder) LineTo(x, y float64) { r.push(Command{Type: CommandLineTo, X: x, Y: y}) }

// Arc records a CommandArc centered on (cx, cy).
func (r *Recorder) Arc(cx, cy, rad, a0, a1 float64) {
	r.push(Command{Type: CommandArc, X: cx, Y: cy, R: rad, StartAngle: a0, EndAngle: a1})
}

// Stroke records a CommandStroke.
func (r *Recorder) Stroke() { r.push(Command{Type: CommandStroke}) }

// Fill records a CommandFill.
func (r *Recorder) Fill() { r.push(Command{Type: CommandFill}) }

// FillText records a CommandText at (x, y).
func (r *Recorder) FillText(s string, x, y float64) {
	r.push(Command{Type: CommandText, X: x, Y: y, Text: s})
}

// strokePolylines returns the visible runs of pts under a dash pattern. A
// dash that continues through a vertex stays one polyline so the stroker can
// join it. Without a pattern pts is returned as a single run.
func strokePolylines(pts []Vec2, pattern []float64) [][]Vec2 {
	if len(pts) < 2 {
		return nil
	}
	var runs [][]Vec2
	dashSegments(pts, pattern, func(a, b Vec2) {
		if n := len(runs); n > 0 {
			last := runs[n-1]
			if last[len(last)-1].Sub(a).Len() < 1e-9 {
				runs[n-1] = append(last, b)
				return
			}
		}
		runs = append(runs, []Vec2{a, b})
	})
	return runs
}

// dashSegments splits the polyline pts into the visible pieces of a dash
// pattern, calling emit for each dash. The pattern phase carries across
// vertices; an odd-length pattern alternates parity on each repeat, as in
// Canvas. An empty or all-zero pattern emits each segment whole.
func dashSegments(pts []Vec2, pattern []float64, emit func(a, b Vec2)) {
	total := 0.0
	for _, d := range pattern {
		total += d
	}
	if len(pattern) == 0 || total <= 0 {
		for i := 1; i < len(pts); i++ {
			emit(pts[i-1], pts[i])
		}
		return
	}

	idx := 0
	remain := pattern[0]
	on := true
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		seg := b.Sub(a)
		segLen := seg.Len()
		if segLen == 0 {
			continue
		}
		dir := seg.Scale(1 / segLen)
		pos := 0.0
		for pos < segLen {
			step := math.Min(remain, segLen-pos)
			if on && step > 0 {
				emit(a.Add(dir.Scale(pos)), a.Add(dir.Scale(pos+step)))
			}
			pos += step
			remain -= step
			if remain <= 0 {
				idx = (idx + 1) % len(pattern)
				remain = pattern[idx]
				on = !on
			}
		}
	}
}
