// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/lipuma"
)

// canvasState is the part of RasterCanvas saved by Save.
type canvasState struct {
	transform lipuma.Matrix
	clip      image.Rectangle
}

// RasterCanvas is a lipuma.Canvas that draws into an *image.RGBA through a
// fogleman/gg context.
//
// gg cannot load an arbitrary affine matrix, so the canvas keeps its own
// transform and hands gg device-space coordinates with gg's matrix left at
// identity. Clip rectangles are transformed to device space and rounded
// outwards to whole pixels.
type RasterCanvas struct {
	dc    *gg.Context
	img   *image.RGBA
	state canvasState
	stack []canvasState
}

// NewRasterCanvas creates a canvas over a new transparent image.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return NewRasterCanvasFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewRasterCanvasFromImage wraps an existing image. The image is drawn into
// directly without copying and must have its origin at (0, 0).
func NewRasterCanvasFromImage(img *image.RGBA) *RasterCanvas {
	return &RasterCanvas{
		dc:  gg.NewContextForRGBA(img),
		img: img,
		state: canvasState{
			transform: lipuma.Identity(),
			clip:      img.Bounds(),
		},
	}
}

// Image returns the underlying image.
// The returned image shares memory with the canvas.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

// Width returns the canvas width in pixels.
func (c *RasterCanvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the canvas height in pixels.
func (c *RasterCanvas) Height() int {
	return c.img.Bounds().Dy()
}

// Matrix returns the current transform.
func (c *RasterCanvas) Matrix() lipuma.Matrix {
	return c.state.transform
}

// Clip returns the current device-space clip.
func (c *RasterCanvas) Clip() image.Rectangle {
	return c.state.clip
}

// SavePNG writes the image to path.
func (c *RasterCanvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// Save pushes the transform and clip.
func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the state pushed by the matching Save. Unbalanced calls are
// ignored.
func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Transform post-multiplies the current transform by m.
func (c *RasterCanvas) Transform(m lipuma.Matrix) {
	c.state.transform = c.state.transform.Multiply(m)
}

// ClipRect intersects the clip with the device-space bounds of r.
func (c *RasterCanvas) ClipRect(r lipuma.Rect) {
	c.state.clip = c.state.clip.Intersect(c.deviceRect(r))
}

// Clear replaces the pixels under r with col, within the clip.
func (c *RasterCanvas) Clear(r lipuma.Rect, col color.Color) {
	dr := c.deviceRect(r).Intersect(c.state.clip)
	if dr.Empty() {
		return
	}
	draw.Draw(c.img, dr, image.NewUniform(col), image.Point{}, draw.Src)
}

// Fill replaces the whole image with col, ignoring transform and clip.
func (c *RasterCanvas) Fill(col color.Color) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

// StrokePath strokes p with butt caps and round joins. Widths and dash
// lengths scale with the transform; widths below one device pixel are
// drawn one pixel wide.
func (c *RasterCanvas) StrokePath(p *lipuma.Path, style lipuma.StrokeStyle) {
	if p == nil || p.IsEmpty() || style.Color == nil || c.state.clip.Empty() {
		return
	}

	c.dc.Push()
	defer c.dc.Pop()

	if c.state.clip != c.img.Bounds() {
		clip := c.state.clip
		c.dc.DrawRectangle(float64(clip.Min.X), float64(clip.Min.Y), float64(clip.Dx()), float64(clip.Dy()))
		c.dc.Clip()
	}

	m := c.state.transform
	scale := m.MaxScale()
	c.dc.SetColor(style.Color)
	c.dc.SetLineWidth(math.Max(style.Width*scale, 1))
	c.dc.SetLineCap(gg.LineCapButt)
	c.dc.SetLineJoin(gg.LineJoinRound)
	if validDash(style.Dash) {
		dash := make([]float64, len(style.Dash))
		for i, d := range style.Dash {
			dash[i] = d * scale
		}
		c.dc.SetDash(dash...)
	} else {
		c.dc.SetDash()
	}

	c.tracePath(p, m)
	c.dc.Stroke()
}

// tracePath replays p into gg's current path in device space.
func (c *RasterCanvas) tracePath(p *lipuma.Path, m lipuma.Matrix) {
	c.dc.ClearPath()
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case lipuma.MoveTo:
			pt := m.TransformPoint(e.Point)
			c.dc.MoveTo(pt.X, pt.Y)
		case lipuma.LineTo:
			pt := m.TransformPoint(e.Point)
			c.dc.LineTo(pt.X, pt.Y)
		case lipuma.QuadTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			c.dc.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case lipuma.CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			c.dc.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case lipuma.Close:
			c.dc.ClosePath()
		}
	}
}

// validDash reports whether dash describes a usable pattern: no negative
// lengths and a positive total. Anything else strokes solid.
func validDash(dash []float64) bool {
	var total float64
	for _, d := range dash {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return false
		}
		total += d
	}
	return total > 0
}

// deviceRect returns the pixel bounds of r under the current transform.
func (c *RasterCanvas) deviceRect(r lipuma.Rect) image.Rectangle {
	if r.IsEmpty() {
		return image.Rectangle{}
	}
	d := c.state.transform.TransformRect(r)
	return image.Rect(
		pixel(math.Floor(d.Min.X)), pixel(math.Floor(d.Min.Y)),
		pixel(math.Ceil(d.Max.X)), pixel(math.Ceil(d.Max.Y)),
	)
}

// pixel converts a whole-valued coordinate to int, saturating far outside
// any image.
func pixel(v float64) int {
	const limit = 1 << 30
	switch {
	case math.IsNaN(v):
		return 0
	case v < -limit:
		return -limit
	case v > limit:
		return limit
	}
	return int(v)
}

var _ lipuma.Canvas = (*RasterCanvas)(nil)
