package springcurve

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerSample is one poll of the host's pointer devices.
type pointerSample struct {
	X, Y    int // cursor position
	Focused bool

	Touch          bool // a touch is held
	TouchX, TouchY int
}

// pointerInput turns polled cursor and touch samples into the move/leave
// events a Scene expects. The mouse counts as having left when the cursor
// is outside the viewport or the window loses focus.
type pointerInput struct {
	primed   bool // lastX/lastY hold a real sample
	lastX    int
	lastY    int
	touching bool
	touchIDs []ebiten.TouchID
}

// poll reads the current Ebitengine pointer state and forwards changes to s.
func (p *pointerInput) poll(s *Scene) {
	var smp pointerSample
	smp.X, smp.Y = ebiten.CursorPosition()
	smp.Focused = ebiten.IsFocused()
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		smp.Touch = true
		smp.TouchX, smp.TouchY = ebiten.TouchPosition(p.touchIDs[0])
	}
	p.apply(s, smp)
}

// apply forwards the changes between the previous sample and smp to s.
func (p *pointerInput) apply(s *Scene, smp pointerSample) {
	// A touch, while held, overrides the mouse.
	if smp.Touch {
		p.touching = true
		s.OnPointerMove(float64(smp.TouchX), float64(smp.TouchY))
		return
	}
	if p.touching {
		p.touching = false
		p.primed = false
		s.OnPointerLeave()
		return
	}

	if !smp.Focused || !p.inside(s.Viewport(), smp.X, smp.Y) {
		p.primed = false
		if s.Pointer().Active {
			s.OnPointerLeave()
		}
		return
	}

	// The cursor sits somewhere before the user moves it; only movement
	// activates tracking.
	if !p.primed {
		p.primed = true
		p.lastX, p.lastY = smp.X, smp.Y
		return
	}
	if smp.X != p.lastX || smp.Y != p.lastY {
		p.lastX, p.lastY = smp.X, smp.Y
		s.OnPointerMove(float64(smp.X), float64(smp.Y))
	}
}

func (p *pointerInput) inside(vp Viewport, x, y int) bool {
	r := Rect{Width: vp.Width - 1, Height: vp.Height - 1}
	return r.Contains(float64(x), float64(y))
}

// hotkeys holds the keyboard shortcuts of the window host.
type hotkeys struct {
	Quit       ebiten.Key
	Screenshot ebiten.Key
	Debug      ebiten.Key
}

var defaultHotkeys = hotkeys{
	Quit:       ebiten.KeyEscape,
	Screenshot: ebiten.KeyF12,
	Debug:      ebiten.KeyF3,
}

// poll applies the shortcuts to s and reports whether quit was requested.
func (k hotkeys) poll(s *Scene) (quit bool) {
	if inpututil.IsKeyJustPressed(k.Screenshot) {
		s.Screenshot("manual")
	}
	if inpututil.IsKeyJustPressed(k.Debug) {
		s.SetDebugMode(!s.DebugMode())
	}
	return inpututil.IsKeyJustPressed(k.Quit)
}
