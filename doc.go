// Package springcurve draws an interactive cubic Bézier curve whose two
// interior control points are pulled toward the pointer by damped springs.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens an [Ebitengine]
// window and drives the scene for you:
//
//	scene := springcurve.NewDefaultScene()
//	springcurve.Run(scene, springcurve.RunConfig{
//		Title: "Spring Curve", Width: 1280, Height: 720, Resizable: true,
//	})
//
// # Frame model
//
// A [Scene] owns the curve, the pointer snapshot and the viewport. Each frame
// is one [Scene.Update] followed by one [Renderer.Draw]; a [Driver] bundles
// the two and can be stepped by hand, which is how tests and headless
// export run without a display:
//
//	scene.OnResize(1000, 800)
//	scene.OnPointerMove(500, 400)
//	d := springcurve.NewDriver(scene, springcurve.NewRenderer(springcurve.DefaultStyle()))
//	rec := springcurve.NewRecorder(1000, 800)
//	d.Frame(rec)
//
// Pointer and resize events mutate the scene between frames. Nothing is
// locked: event handlers and frames must run on the same goroutine.
//
// # Surfaces
//
// The renderer draws through the [Surface] interface, a small Canvas-like
// API. [EbitenSurface] targets an ebiten image, [ImageSurface] rasterizes
// in software with [gg] for PNG output, and [Recorder] keeps a command list.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/gogpu/gg
package springcurve
