// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import "github.com/gogpu/lipuma"

// Viewport maps scene space onto the host's screen.
type Viewport struct {
	// Transform maps scene coordinates to screen coordinates.
	Transform lipuma.Matrix

	// Width and Height are the screen size.
	Width, Height float64
}

// NewViewport returns an unzoomed viewport of the given screen size.
func NewViewport(width, height float64) Viewport {
	return Viewport{Transform: lipuma.Identity(), Width: width, Height: height}
}

// Screen returns the screen rectangle.
func (v Viewport) Screen() lipuma.Rect {
	return lipuma.XYWH(0, 0, v.Width, v.Height)
}

// Visible returns the part of scene space currently on screen.
func (v Viewport) Visible() lipuma.Rect {
	return v.Transform.Invert().TransformRect(v.Screen())
}

// ToScene converts a screen position to scene space.
func (v Viewport) ToScene(p lipuma.Point) lipuma.Point {
	return v.Transform.Invert().TransformPoint(p)
}

// ToScreen converts a scene position to screen space.
func (v Viewport) ToScreen(p lipuma.Point) lipuma.Point {
	return v.Transform.TransformPoint(p)
}

// ScreenRect returns the screen-space bounds of a scene rectangle.
func (v Viewport) ScreenRect(r lipuma.Rect) lipuma.Rect {
	return v.Transform.TransformRect(r)
}

// Pan shifts the view by a screen-space delta.
func (v Viewport) Pan(delta lipuma.Point) Viewport {
	v.Transform = lipuma.Translate(delta.X, delta.Y).Multiply(v.Transform)
	return v
}

// ZoomAt scales the view by factor while keeping the scene point under
// the screen position at fixed in place.
func (v Viewport) ZoomAt(at lipuma.Point, factor float64) Viewport {
	if factor <= 0 {
		return v
	}
	v.Transform = lipuma.ScaleAround(at, factor).Multiply(v.Transform)
	return v
}

// Resize changes the screen size, keeping the transform.
func (v Viewport) Resize(width, height float64) Viewport {
	v.Width, v.Height = width, height
	return v
}
