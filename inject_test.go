package springcurve

import "testing"

func TestInjectMove(t *testing.T) {
	s := newSizedScene(1000, 800)
	s.InjectMove(12, 34)
	if s.Pointer().Active {
		t.Fatal("injected move applied before a frame consumed it")
	}
	if !s.processInjectedInput() {
		t.Fatal("processInjectedInput returned false with a queued event")
	}
	if p := s.Pointer(); !p.Active || p.X != 12 || p.Y != 34 {
		t.Errorf("Pointer = %+v", p)
	}
	if s.processInjectedInput() {
		t.Error("processInjectedInput returned true on an empty queue")
	}
}

func TestInjectOnePerFrame(t *testing.T) {
	s := newSizedScene(1000, 800)
	s.InjectMove(1, 1)
	s.InjectLeave()
	s.InjectResize(200, 100)

	s.processInjectedInput()
	if s.State() != StateTracking {
		t.Errorf("after frame 1 State = %v", s.State())
	}
	s.processInjectedInput()
	if s.State() != StateIdle {
		t.Errorf("after frame 2 State = %v", s.State())
	}
	if s.Viewport().Width != 1000 {
		t.Error("resize applied early")
	}
	s.processInjectedInput()
	if vp := s.Viewport(); vp.Width != 200 || vp.Height != 100 {
		t.Errorf("Viewport = %+v", vp)
	}
	if s.pendingInjections() != 0 {
		t.Errorf("pending = %d", s.pendingInjections())
	}
}

func TestInjectSweep(t *testing.T) {
	tests := []struct {
		name   string
		frames int
		want   int
	}{
		{"four", 4, 4},
		{"one", 1, 1},
		{"zero clamps to one", 0, 1},
		{"negative clamps to one", -3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSizedScene(1000, 800)
			s.InjectSweep(0, 0, 10, 20, tt.frames)
			if s.pendingInjections() != tt.want {
				t.Fatalf("queued %d, want %d", s.pendingInjections(), tt.want)
			}
			last := s.injectQueue[len(s.injectQueue)-1]
			if last.kind != syntheticMove || last.x != 10 || last.y != 20 {
				t.Errorf("last event = %+v, want move to (10, 20)", last)
			}
		})
	}
}

func TestInjectSweepInterpolates(t *testing.T) {
	s := newSizedScene(1000, 800)
	s.InjectSweep(100, 200, 200, 100, 4)
	want := []Vec2{{125, 175}, {150, 150}, {175, 125}, {200, 100}}
	for i, w := range want {
		e := s.injectQueue[i]
		if !vecNear(Vec2{e.x, e.y}, w, eps) {
			t.Errorf("event %d = (%v, %v), want %v", i, e.x, e.y, w)
		}
	}
}
