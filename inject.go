package springcurve

// syntheticKind identifies an injected event.
type syntheticKind uint8

const (
	syntheticMove syntheticKind = iota
	syntheticLeave
	syntheticResize
)

// syntheticEvent is a single injected pointer or viewport event. For moves
// X/Y are the pointer position; for resizes they are width and height.
type syntheticEvent struct {
	kind syntheticKind
	x, y float64
}

// InjectMove queues a pointer move to (x, y). The event is consumed at the
// start of a later frame, one event per frame, in queue order.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticMove, x: x, y: y})
}

// InjectLeave queues a pointer leave.
func (s *Scene) InjectLeave() {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticLeave})
}

// InjectResize queues a viewport resize.
func (s *Scene) InjectResize(width, height float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticResize, x: width, y: height})
}

// InjectSweep queues a pointer path from (fromX, fromY) to (toX, toY)
// linearly interpolated over frames moves (minimum 1). The last move lands
// exactly on the destination.
func (s *Scene) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// pendingInjections reports how many synthetic events are still queued.
func (s *Scene) pendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed; hosts skip real input that frame.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticMove:
		s.OnPointerMove(evt.x, evt.y)
	case syntheticLeave:
		s.OnPointerLeave()
	case syntheticResize:
		s.OnResize(evt.x, evt.y)
	}
	return true
}

// beginFrame runs the test script and consumes one synthetic event. It
// reports whether an event was consumed.
func (s *Scene) beginFrame() bool {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	return s.processInjectedInput()
}
