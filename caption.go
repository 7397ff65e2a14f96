package springcurve

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Caption timings in seconds.
const (
	captionFadeIn  = 0.25
	captionHold    = 1.2
	captionFadeOut = 0.6
)

type captionPhase uint8

const (
	captionHidden captionPhase = iota
	captionFadingIn
	captionHolding
	captionFadingOut
)

// Caption is a short status line that fades in when shown, holds, then
// fades out. Call Update(dt) each tick and Draw each frame; there is no
// global animation manager.
type Caption struct {
	Pos   Vec2
	Color Color

	text  string
	phase captionPhase
	tween *gween.Tween
	hold  float32
	alpha float64
}

// NewCaption creates a hidden caption drawn at pos in color c.
func NewCaption(pos Vec2, c Color) *Caption {
	return &Caption{Pos: pos, Color: c}
}

// Show restarts the caption with text, fading in from its current alpha.
func (c *Caption) Show(text string) {
	c.text = text
	c.phase = captionFadingIn
	c.tween = gween.New(float32(c.alpha), 1, captionFadeIn, ease.OutQuad)
}

// Text returns the caption text.
func (c *Caption) Text() string { return c.text }

// Alpha returns the current opacity in [0, 1].
func (c *Caption) Alpha() float64 { return c.alpha }

// Visible reports whether the caption would draw anything.
func (c *Caption) Visible() bool { return c.phase != captionHidden && c.alpha > 0 }

// Update advances the fade by dt seconds.
func (c *Caption) Update(dt float32) {
	switch c.phase {
	case captionFadingIn:
		v, done := c.tween.Update(dt)
		c.alpha = float64(v)
		if done {
			c.phase = captionHolding
			c.hold = captionHold
		}
	case captionHolding:
		c.hold -= dt
		if c.hold <= 0 {
			c.phase = captionFadingOut
			c.tween = gween.New(1, 0, captionFadeOut, ease.InQuad)
		}
	case captionFadingOut:
		v, done := c.tween.Update(dt)
		c.alpha = float64(v)
		if done {
			c.alpha = 0
			c.phase = captionHidden
		}
	}
}

// Draw renders the caption on dst if visible.
func (c *Caption) Draw(dst Surface) {
	if !c.Visible() {
		return
	}
	dst.SetFillColor(c.Color.WithAlpha(c.Color.A * c.alpha))
	dst.FillText(c.text, c.Pos.X, c.Pos.Y)
}

// Attach makes the caption announce every state change of s.
func (c *Caption) Attach(s *Scene) {
	s.OnStateChange(func(_, to State) {
		c.Show(to.String())
	})
}
