package springcurve

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Placement of the FPS block. ebitenutil's debug font is 16px per line.
const (
	fpsX            = 4
	fpsY            = 4
	fpsLines        = 2
	debugLineHeight = 16
)

// fpsBottom is the y coordinate just below the FPS block.
const fpsBottom = fpsY + fpsLines*debugLineHeight

// fpsWidget prints the current FPS and TPS in the top-left corner of the
// window. The text is refreshed every ~0.5 seconds.
type fpsWidget struct {
	label   string
	elapsed float64
}

func (w *fpsWidget) update(dt float64) {
	w.elapsed += dt
	if w.label != "" && w.elapsed < 0.5 {
		return
	}
	w.elapsed = 0
	w.label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (w *fpsWidget) draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, w.label, fpsX, fpsY)
}
