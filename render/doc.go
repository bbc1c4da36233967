// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render paints scene snapshots through a lipuma.Canvas.
//
// # Painter
//
// Painter repaints only the regions a Session reports as dirty. For each
// dirty rectangle that overlaps the visible area it clips, clears to the
// background and paints, in ascending draw order, every object whose
// bounding box touches the region, followed by the tool preview. Objects
// outside the visible area are never painted.
//
// Painter works in scene coordinates. Hosts map the scene onto their
// surface by pushing the viewport transform first:
//
//	c.Save()
//	c.Transform(view.Transform)
//	stats := painter.Paint(c, session.Scene(), view.Visible(), dirty, session.Preview())
//	c.Restore()
//
// # RasterCanvas
//
// RasterCanvas is a software Canvas backed by *image.RGBA. Strokes, dashes
// and clipping go through github.com/fogleman/gg; rectangular clears
// replace pixels with golang.org/x/image/draw. It is used by tests, by the
// command-line host and by any host without a drawing context of its own.
package render
