// Package px is a software 2D rendering engine for packed ARGB buffers.
//
// # Overview
//
// px draws directly into an in-memory color buffer. It has two layers:
//
//   - Renderer rasterizes primitives (pixels, Bresenham and Wu lines,
//     midpoint circles and arcs, rectangles, rounded rectangles, linear
//     gradients, image blits, 8×16 bitmap glyphs, box shadows) into any
//     Surface.
//   - Canvas is an HTML canvas style path engine: paths made of straight
//     and flattened curve segments, an affine transform stack, even-odd
//     scanline fill and one pixel strokes.
//
// # Quick Start
//
//	pm := px.NewPixmap(320, 200)
//	r := px.NewRenderer(pm)
//	r.Clear()
//	r.Circle(160, 100, -40, px.RGB(255, 200, 0))
//	r.WuLine(0, 0, 319, 199, px.White)
//	_ = pm.SavePNG("out.png")
//
//	cv := px.NewCanvas(100, 100)
//	cv.SetFillStyle(px.Red)
//	cv.BeginPath()
//	cv.MoveTo(10, 10)
//	cv.LineTo(90, 10)
//	cv.LineTo(90, 90)
//	cv.ClosePath()
//	cv.Fill()
//
// # Compositing
//
// Colors are straight-alpha 0xAARRGGBB values. Every primitive composites
// through Blend, so a color with zero alpha never changes the buffer and
// an opaque one replaces what is there.
//
// # Clipping
//
// Drawing never fails. Geometry outside the surface is clipped or skipped
// and degenerate input (zero radius, zero length gradient) has a defined
// result. Apart from file I/O in SavePNG, the only error in the package
// comes from ParseColor.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// Renderers and canvases are single-owner values. The only parallel work
// is Image splitting large blits into disjoint row bands on a WorkerPool
// supplied with WithWorkerPool; Image waits for all bands before it
// returns.
//
// # Related Packages
//
//   - glyphs builds and loads 8×16 glyph tables for WithFont.
//   - surface opens drawing destinations (memory, or an SDL window with
//     the sdl build tag).
//   - scene loads YAML and TOML scene files and replays them on a
//     Renderer.
package px
