package springcurve

import (
	"math"
	"testing"
)

func newSizedScene(w, h float64) *Scene {
	s := NewDefaultScene()
	s.OnResize(w, h)
	return s
}

// --- Resize ---

func TestOnResizeLayout(t *testing.T) {
	tests := []struct {
		name   string
		w, h   float64
		p0, p3 Vec2
		b, c   Vec2
	}{
		{"1000x800", 1000, 800, Vec2{100, 400}, Vec2{900, 400}, Vec2{330, 400}, Vec2{660, 400}},
		{"200x100", 200, 100, Vec2{20, 50}, Vec2{180, 50}, Vec2{66, 50}, Vec2{132, 50}},
		{"zero", 0, 0, Vec2{}, Vec2{}, Vec2{}, Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSizedScene(tt.w, tt.h)
			c := s.Curve()
			if !vecNear(c.P0, tt.p0, eps) || !vecNear(c.P3, tt.p3, eps) {
				t.Errorf("endpoints = %v, %v; want %v, %v", c.P0, c.P3, tt.p0, tt.p3)
			}
			if !vecNear(c.B.Pos, tt.b, eps) || !vecNear(c.B.Target, tt.b, eps) {
				t.Errorf("B = %+v, want pos and target %v", c.B, tt.b)
			}
			if !vecNear(c.C.Pos, tt.c, eps) || !vecNear(c.C.Target, tt.c, eps) {
				t.Errorf("C = %+v, want pos and target %v", c.C, tt.c)
			}
			if c.B.Vel != (Vec2{}) || c.C.Vel != (Vec2{}) {
				t.Errorf("velocities = %v, %v; want zero", c.B.Vel, c.C.Vel)
			}
			if vp := s.Viewport(); vp.Width != tt.w || vp.Height != tt.h {
				t.Errorf("Viewport = %+v", vp)
			}
		})
	}
}

func TestOnResizeMidFlightDiscardsMomentum(t *testing.T) {
	s := newSizedScene(1000, 800)
	s.OnPointerMove(700, 100)
	for range 10 {
		s.Update()
	}
	if s.Curve().B.Vel == (Vec2{}) {
		t.Fatal("expected B to be moving before resize")
	}

	s.OnResize(500, 400)
	c := s.Curve()
	if c.B.Vel != (Vec2{}) || c.C.Vel != (Vec2{}) {
		t.Errorf("velocities after resize = %v, %v; want zero", c.B.Vel, c.C.Vel)
	}
	if !vecNear(c.B.Pos, Vec2{165, 200}, eps) || !vecNear(c.C.Pos, Vec2{330, 200}, eps) {
		t.Errorf("positions after resize = %v, %v", c.B.Pos, c.C.Pos)
	}
	// Tracking survives a resize.
	if s.State() != StateTracking {
		t.Errorf("State = %v, want tracking", s.State())
	}
}

func TestOnResizeTwiceIsIdempotent(t *testing.T) {
	s := newSizedScene(640, 480)
	before := s.Curve()
	s.OnResize(640, 480)
	if s.Curve() != before {
		t.Errorf("second resize changed curve: %+v -> %+v", before, s.Curve())
	}
}

// --- Targets ---

func TestUpdateTargetsFollowPointer(t *testing.T) {
	s := newSizedScene(1000, 800)
	s.OnPointerMove(500, 400)
	s.Update()

	c := s.Curve()
	if !vecNear(c.B.Target, Vec2{400, 400}, eps) {
		t.Errorf("B.Target = %v, want {400 400}", c.B.Target)
	}
	if !vecNear(c.C.Target, Vec2{600, 400}, eps) {
		t.Errorf("C.Target = %v, want {600 400}", c.C.Target)
	}

	s.OnPointerLeave()
	s.Update()
	c = s.Curve()
	if !vecNear(c.B.Target, Vec2{330, 400}, eps) {
		t.Errorf("B.Target after leave = %v, want {330 400}", c.B.Target)
	}
	if !vecNear(c.C.Target, Vec2{660, 400}, eps) {
		t.Errorf("C.Target after leave = %v, want {660 400}", c.C.Target)
	}
}

func TestUpdatePointerOffsetFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PointerOffset = 25
	s := NewScene(cfg)
	s.OnResize(400, 400)
	s.OnPointerMove(200, 50)
	s.Update()
	c := s.Curve()
	if !vecNear(c.B.Target, Vec2{175, 50}, eps) || !vecNear(c.C.Target, Vec2{225, 50}, eps) {
		t.Errorf("targets = %v, %v", c.B.Target, c.C.Target)
	}
}

func TestEndpointsFixedDuringUpdate(t *testing.T) {
	s := newSizedScene(1000, 800)
	s.OnPointerMove(10, 10)
	for range 50 {
		s.Update()
	}
	c := s.Curve()
	if c.P0 != (Vec2{100, 400}) || c.P3 != (Vec2{900, 400}) {
		t.Errorf("endpoints moved: %v, %v", c.P0, c.P3)
	}
}

func TestUpdateConvergesToPointer(t *testing.T) {
	s := newSizedScene(1000, 800)
	s.OnPointerMove(500, 200)
	for range 500 {
		s.Update()
	}
	c := s.Curve()
	if d := c.B.Pos.Sub(Vec2{400, 200}).Len(); d > 0.01 {
		t.Errorf("B is %v from its target", d)
	}
	if d := c.C.Pos.Sub(Vec2{600, 200}).Len(); d > 0.01 {
		t.Errorf("C is %v from its target", d)
	}
}

func TestUpdateRelaxesToRest(t *testing.T) {
	s := newSizedScene(1000, 800)
	s.OnPointerMove(500, 100)
	for range 60 {
		s.Update()
	}
	s.OnPointerLeave()
	for range 500 {
		s.Update()
	}
	c := s.Curve()
	if d := c.B.Pos.Sub(Vec2{330, 400}).Len(); d > 0.01 {
		t.Errorf("B is %v from rest", d)
	}
	if d := c.C.Pos.Sub(Vec2{660, 400}).Len(); d > 0.01 {
		t.Errorf("C is %v from rest", d)
	}
}

func TestUpdateInactivePointerIgnored(t *testing.T) {
	s := newSizedScene(1000, 800)
	s.OnPointerMove(10, 10)
	s.OnPointerLeave()
	p := s.Pointer()
	if p.Active || p.X != 10 || p.Y != 10 {
		t.Errorf("Pointer = %+v, want inactive at last position", p)
	}
	s.Update()
	c := s.Curve()
	if !vecNear(c.B.Pos, Vec2{330, 400}, eps) {
		t.Errorf("B moved while idle at rest: %v", c.B.Pos)
	}
}

func TestUpdateFrameCounter(t *testing.T) {
	s := newSizedScene(100, 100)
	for range 7 {
		s.Update()
	}
	if s.Frame() != 7 {
		t.Errorf("Frame = %d, want 7", s.Frame())
	}
}

func TestUpdateWithoutResizeStaysAtOrigin(t *testing.T) {
	s := NewDefaultScene()
	s.Update()
	c := s.Curve()
	for _, p := range c.Points() {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || p != (Vec2{}) {
			t.Fatalf("point = %v, want origin", p)
		}
	}
}

// --- State ---

func TestStateTransitions(t *testing.T) {
	s := newSizedScene(1000, 800)
	var got []string
	s.OnStateChange(func(from, to State) {
		got = append(got, from.String()+"->"+to.String())
	})

	if s.State() != StateIdle {
		t.Fatalf("initial State = %v", s.State())
	}
	s.OnPointerMove(1, 1)
	s.OnPointerMove(2, 2) // no transition
	s.OnPointerLeave()
	s.OnPointerLeave() // no transition
	s.OnPointerMove(3, 3)

	want := []string{"idle->tracking", "tracking->idle", "idle->tracking"}
	if len(got) != len(want) {
		t.Fatalf("transitions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("transition %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateIdle, "idle"},
		{StateTracking, "tracking"},
		{State(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestDebugMode(t *testing.T) {
	s := NewDefaultScene()
	if s.DebugMode() {
		t.Error("debug mode should default to off")
	}
	s.SetDebugMode(true)
	if !s.DebugMode() {
		t.Error("SetDebugMode(true) not applied")
	}
}
