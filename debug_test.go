package springcurve

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDriverDebugLog(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	d, rec := newTestDriver(1000, 800)
	d.Frame(rec)
	if strings.Contains(buf.String(), "msg=frame") {
		t.Fatal("frame stats logged with debug mode off")
	}

	d.Scene.SetDebugMode(true)
	d.Frame(rec)
	out := buf.String()
	for _, want := range []string{"msg=frame", "strokes=12", "fills=8", "texts=4", "state=idle", "bounds.x=100"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug log missing %q:\n%s", want, out)
		}
	}
}

func TestCountingSurface(t *testing.T) {
	rec := NewRecorder(10, 10)
	cs := &countingSurface{Surface: rec}
	cs.Stroke()
	cs.Stroke()
	cs.Fill()
	cs.FillText("x", 0, 0)
	cs.Clear(ColorWhite)
	if cs.strokes != 2 || cs.fills != 1 || cs.texts != 1 {
		t.Errorf("counts = %d %d %d", cs.strokes, cs.fills, cs.texts)
	}
	if len(rec.Commands) != 5 {
		t.Errorf("wrapped surface saw %d commands, want 5", len(rec.Commands))
	}
}
