// Package lipuma is the core of a 2D vector-drawing surface whose strokes
// are perturbed by a deterministic fractal noise field.
//
// # Overview
//
// The root package holds the shared geometry vocabulary (Point, Rect,
// Matrix, Path) and the Canvas contract a host drawing context fulfils.
// The engine is split into sub-packages:
//
//   - noise: seedable 1D fractal value noise
//   - shape: fractal line tessellation and the closed Drawable union
//   - scene: persistent scene store, diffing, damage tracking, hit testing
//   - input: pointer and keyboard events already in scene space
//   - tool: drawing tools and the editing Session that drives them
//   - render: viewport-culled incremental painting and a software Canvas
//
// # Quick Start
//
//	s := tool.NewSession(tool.DefaultSettings())
//	s.HandlePointer(input.Down(lipuma.Pt(10, 10)))
//	s.HandlePointer(input.Move(lipuma.Pt(200, 40)))
//	res, _ := s.HandlePointer(input.Up(lipuma.Pt(200, 40)))
//
//	// res.Dirty lists the scene-space rectangles the host must repaint.
//	var p render.Painter
//	p.Paint(canvas, s.Scene(), view, res.Dirty, s.Preview())
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Threading
//
// The engine is single-threaded and event driven. Scene values are
// immutable snapshots and may be read from any goroutine; a Session must be
// driven from one goroutine at a time.
package lipuma
