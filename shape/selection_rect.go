// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shape

import (
	"image/color"

	"github.com/gogpu/lipuma"
)

// selectionDash is the on/off pattern of the selection outline.
var selectionDash = []float64{3, 3}

// SelectionRect is the rubber band drawn while drag-selecting.
// It is a tool preview and is never stored in a scene.
type SelectionRect struct {
	Rect lipuma.Rect
}

func (SelectionRect) isDrawable() {}

// Kind returns KindSelectionRect.
func (SelectionRect) Kind() Kind { return KindSelectionRect }

// AABB returns the rectangle inflated by one unit to cover the stroke.
func (r SelectionRect) AABB() lipuma.Rect {
	return r.Rect.Inflate(1, 1)
}

// FineShape returns the outline of the inflated rectangle.
func (r SelectionRect) FineShape() *lipuma.Path {
	return r.AABB().ToPath()
}

// Paint strokes a dashed black outline.
func (r SelectionRect) Paint(c lipuma.Canvas, _ bool) {
	c.StrokePath(r.Rect.ToPath(), lipuma.StrokeStyle{
		Color: color.Black,
		Width: 1,
		Dash:  selectionDash,
	})
}
