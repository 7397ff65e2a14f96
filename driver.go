package springcurve

import (
	"context"
	"time"
)

// Scheduler is the host's "schedule next frame" capability. It arranges for
// next to be called once at the host's next refresh and reports whether it
// did; returning false ends the loop.
type Scheduler func(next func()) bool

// Driver advances a Scene and draws it, one complete frame at a time.
type Driver struct {
	Scene    *Scene
	Renderer *Renderer

	// Input, if set, polls a real pointer source. It is skipped on frames
	// that consume a synthetic event.
	Input func(*Scene)

	stats frameStats
}

// NewDriver creates a driver for scene drawn with renderer.
func NewDriver(scene *Scene, renderer *Renderer) *Driver {
	return &Driver{Scene: scene, Renderer: renderer}
}

// Frame runs one complete frame on dst: Step then Draw. Frames never fail.
func (d *Driver) Frame(dst Surface) {
	d.Step()
	d.Draw(dst)
}

// Step runs pending script steps, consumes one synthetic event (or polls
// Input), and advances the scene by one Update.
func (d *Driver) Step() {
	s := d.Scene
	if !s.beginFrame() && d.Input != nil {
		d.Input(s)
	}

	if !s.debug {
		s.Update()
		return
	}
	t0 := time.Now()
	s.Update()
	d.stats.updateTime = time.Since(t0)
}

// Draw renders the scene on dst and writes any queued screenshots.
func (d *Driver) Draw(dst Surface) {
	s := d.Scene
	if !s.debug {
		d.Renderer.Draw(dst, s)
		s.flushScreenshots(dst)
		return
	}

	t0 := time.Now()
	cs := &countingSurface{Surface: dst}
	d.Renderer.Draw(cs, s)
	d.stats.drawTime = time.Since(t0)
	d.stats.strokes, d.stats.fills, d.stats.texts = cs.strokes, cs.fills, cs.texts
	s.debugLog(d.stats)

	s.flushScreenshots(dst)
}

// Run drives frames until schedule declines or ctx is done. surface is asked
// for the draw target on every frame so hosts may swap buffers. The first
// frame is requested through schedule as well.
func (d *Driver) Run(ctx context.Context, surface func() Surface, schedule Scheduler) error {
	done := make(chan struct{})
	var tick func()
	tick = func() {
		if ctx.Err() != nil {
			close(done)
			return
		}
		d.Frame(surface())
		if !schedule(tick) {
			close(done)
		}
	}
	if !schedule(tick) {
		return ctx.Err()
	}
	select {
	case <-done:
	case <-ctx.Done():
	}
	return ctx.Err()
}

// LoopScheduler returns a Scheduler that calls next synchronously for the
// given number of frames. It suits headless export and tests.
func LoopScheduler(frames int) Scheduler {
	queued := false
	var pending func()
	return func(next func()) bool {
		if frames <= 0 {
			return false
		}
		frames--
		pending = next
		if queued {
			return true
		}
		queued = true
		for pending != nil {
			fn := pending
			pending = nil
			fn()
		}
		queued = false
		return true
	}
}
