package springcurve

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds optional parameters for Run.
type RunConfig struct {
	// Title sets the window title. Defaults to "springcurve".
	Title string
	// Width and Height set the initial window size. Default to 1280×720.
	Width, Height int
	// Resizable allows the user to resize the window; the scene follows.
	Resizable bool
	// ShowFPS draws an FPS/TPS counter in the top-left corner.
	ShowFPS bool
	// Caption shows a fading status line on state changes.
	Caption bool
	// Style is the renderer style. Zero value means DefaultStyle.
	Style *Style
	// Debug enables Scene debug mode.
	Debug bool
}

// Run opens a window and drives scene until the window is closed or Escape
// is pressed. F12 queues a screenshot and F3 toggles debug mode.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "springcurve"
	}
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	style := DefaultStyle()
	if cfg.Style != nil {
		style = *cfg.Style
	}

	g, err := newGame(scene, style, cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("springcurve: run: %w", err)
	}
	return nil
}

// game implements ebiten.Game on top of a Driver.
type game struct {
	driver  *Driver
	surface *EbitenSurface
	input   pointerInput
	keys    hotkeys
	fps     *fpsWidget
	caption *Caption
	w, h    int
}

func newGame(scene *Scene, style Style, cfg RunConfig) (*game, error) {
	surface, err := NewEbitenSurface(style.FontSize)
	if err != nil {
		return nil, err
	}
	scene.SetDebugMode(scene.DebugMode() || cfg.Debug)

	g := &game{
		driver:  NewDriver(scene, NewRenderer(style)),
		surface: surface,
		keys:    defaultHotkeys,
	}
	g.driver.Input = g.input.poll
	if cfg.ShowFPS {
		g.fps = &fpsWidget{}
	}
	if cfg.Caption {
		g.caption = NewCaption(captionOrigin(cfg.ShowFPS, style.FontSize), style.Label)
		g.caption.Attach(scene)
	}
	return g, nil
}

// captionOrigin returns the caption baseline position: near the top-left
// corner, or below the FPS block when it is shown.
func captionOrigin(showFPS bool, fontSize float64) Vec2 {
	top := 12.0
	if showFPS {
		top = fpsBottom + 8
	}
	return Vec2{12, top + fontSize}
}

// Update polls hotkeys, then advances the scene one step.
func (g *game) Update() error {
	if g.keys.poll(g.driver.Scene) {
		return ebiten.Termination
	}
	g.driver.Step()

	dt := 1.0 / float64(ebiten.TPS())
	if g.fps != nil {
		g.fps.update(dt)
	}
	if g.caption != nil {
		g.caption.Update(float32(dt))
	}
	return nil
}

// Draw renders the scene and overlays onto the screen.
func (g *game) Draw(screen *ebiten.Image) {
	g.surface.SetTarget(screen)
	g.driver.Draw(g.surface)
	if g.caption != nil {
		g.caption.Draw(g.surface)
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout forwards size changes to the scene. The screen is drawn at the
// window's logical size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.driver.Scene.OnResize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
