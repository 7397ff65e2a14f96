package springcurve

// Rest positions as fractions of the viewport.
const (
	startFracX = 0.1
	endFracX   = 0.9
	restFracB  = 0.33
	restFracC  = 0.66
	restFracY  = 0.5
)

// Pointer is the last known pointer position and whether it is inside the
// tracking region. Written only by OnPointerMove and OnPointerLeave.
type Pointer struct {
	X, Y   float64
	Active bool
}

// Viewport is the current drawing-surface size.
type Viewport struct {
	Width, Height float64
}

// Scene is the top-level object that owns the curve, the pointer snapshot
// and the viewport. It is driven from a single goroutine: event handlers and
// Update must never run concurrently.
type Scene struct {
	cfg      SimulationConfig
	viewport Viewport
	curve    Curve
	pointer  Pointer
	frame    uint64
	debug    bool

	stateHandlers []func(from, to State)

	// Host glue: synthetic input, scripted runs and screenshots.
	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []string

	// ScreenshotDir is the directory queued screenshots are written to.
	ScreenshotDir string
}

// NewScene creates a scene using cfg. Call OnResize before the first Update;
// until then every point sits at the origin.
func NewScene(cfg SimulationConfig) *Scene {
	return &Scene{
		cfg:           cfg,
		ScreenshotDir: "screenshots",
	}
}

// NewDefaultScene creates a scene with DefaultConfig.
func NewDefaultScene() *Scene {
	return NewScene(DefaultConfig())
}

// Config returns the scene's simulation constants.
func (s *Scene) Config() SimulationConfig { return s.cfg }

// Curve returns a copy of the current curve.
func (s *Scene) Curve() Curve { return s.curve }

// Pointer returns the current pointer snapshot.
func (s *Scene) Pointer() Pointer { return s.pointer }

// Viewport returns the current viewport size.
func (s *Scene) Viewport() Viewport { return s.viewport }

// Frame returns the number of Update calls so far.
func (s *Scene) Frame() uint64 { return s.frame }

// State reports whether the scene is tracking the pointer.
func (s *Scene) State() State {
	if s.pointer.Active {
		return StateTracking
	}
	return StateIdle
}

// OnResize records the new viewport size and re-derives the endpoints and
// the rest positions of both interior points. Spring momentum is discarded.
func (s *Scene) OnResize(width, height float64) {
	s.viewport = Viewport{Width: width, Height: height}
	s.curve.P0 = Vec2{width * startFracX, height * restFracY}
	s.curve.P3 = Vec2{width * endFracX, height * restFracY}
	restB, restC := s.restPositions()
	s.curve.B.Reset(restB)
	s.curve.C.Reset(restC)
	Logger().Info("viewport resized", "width", width, "height", height)
}

// OnPointerMove records the pointer position and marks it active.
func (s *Scene) OnPointerMove(x, y float64) {
	prev := s.State()
	s.pointer.X = x
	s.pointer.Y = y
	s.pointer.Active = true
	s.transition(prev)
}

// OnPointerLeave marks the pointer inactive. The last position is kept but
// no longer used.
func (s *Scene) OnPointerLeave() {
	prev := s.State()
	s.pointer.Active = false
	s.transition(prev)
}

// OnStateChange registers fn to be called whenever the scene moves between
// StateIdle and StateTracking.
func (s *Scene) OnStateChange(fn func(from, to State)) {
	s.stateHandlers = append(s.stateHandlers, fn)
}

func (s *Scene) transition(prev State) {
	cur := s.State()
	if cur == prev {
		return
	}
	Logger().Info("state changed", "from", prev, "to", cur)
	for _, fn := range s.stateHandlers {
		fn(prev, cur)
	}
}

// Update recomputes the targets of both interior points and advances each by
// one spring step. B and C are integrated independently.
func (s *Scene) Update() {
	if s.pointer.Active {
		off := s.cfg.PointerOffset
		s.curve.B.Target = Vec2{s.pointer.X - off, s.pointer.Y}
		s.curve.C.Target = Vec2{s.pointer.X + off, s.pointer.Y}
	} else {
		s.curve.B.Target, s.curve.C.Target = s.restPositions()
	}

	s.curve.B.Step(s.cfg)
	s.curve.C.Step(s.cfg)
	s.frame++
}

// restPositions returns the rest positions of B and C for the current
// viewport.
func (s *Scene) restPositions() (Vec2, Vec2) {
	w, h := s.viewport.Width, s.viewport.Height
	return Vec2{w * restFracB, h * restFracY}, Vec2{w * restFracC, h * restFracY}
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame stats
// are logged at debug level through Logger.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// DebugMode reports whether debug mode is enabled.
func (s *Scene) DebugMode() bool { return s.debug }
