package springcurve

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Snapshotter is implemented by surfaces whose pixels can be read back.
type Snapshotter interface {
	Snapshot() image.Image
}

// Screenshot queues a labeled screenshot to be captured at the end of the
// current frame's draw. The PNG is written to ScreenshotDir with a
// timestamped filename.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// flushScreenshots captures dst once for every queued label and writes each
// as a PNG file. When several labels are queued in one frame their names get
// the queue index appended. Failures are logged; the frame loop carries on.
func (s *Scene) flushScreenshots(dst Surface) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	defer func() { s.screenshotQueue = s.screenshotQueue[:0] }()

	snap, ok := dst.(Snapshotter)
	if !ok {
		Logger().Warn("screenshot: surface cannot be captured", "queued", len(s.screenshotQueue))
		return
	}
	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		Logger().Warn("screenshot: mkdir", "dir", s.ScreenshotDir, "err", err)
		return
	}

	img := snap.Snapshot()
	stamp := time.Now().Format("20060102_150405")

	multi := len(s.screenshotQueue) > 1
	for i, label := range s.screenshotQueue {
		name := fmt.Sprintf("%s_%06d_%s", stamp, s.frame, sanitizeLabel(label))
		if multi {
			name = fmt.Sprintf("%s_%d", name, i)
		}
		path := filepath.Join(s.ScreenshotDir, name+".png")
		if err := writePNG(path, img); err != nil {
			Logger().Warn("screenshot", "err", err)
			continue
		}
		Logger().Info("screenshot written", "path", path)
	}
}

// Snapshot returns the gg pixmap as an image.
func (s *ImageSurface) Snapshot() image.Image {
	s.keep(s.dc.FlushGPU())
	return s.dc.Image()
}

// Snapshot reads the target back as a straight-alpha NRGBA image.
func (s *EbitenSurface) Snapshot() image.Image {
	return readPixels(s.target)
}

// readPixels converts an ebiten image's premultiplied pixels to NRGBA.
func readPixels(src *ebiten.Image) *image.NRGBA {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	src.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
