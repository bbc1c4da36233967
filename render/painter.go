// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image/color"

	"github.com/gogpu/lipuma"
	"github.com/gogpu/lipuma/scene"
)

// Stats reports the work done by one Paint call.
type Stats struct {
	// Regions is the number of dirty rectangles that overlapped the view.
	Regions int

	// Painted counts object paints, preview included. An object touching
	// several regions is counted once per region.
	Painted int
}

// Painter repaints dirty regions of a scene.
//
// The zero value paints on a white background.
type Painter struct {
	// Background fills every repainted region before objects are drawn.
	// Nil means white.
	Background color.Color
}

// Paint repaints the parts of dirty that lie inside view. All rectangles
// are in scene space and c's current transform must map scene space to
// the surface.
func (p Painter) Paint(c lipuma.Canvas, s scene.Store, view lipuma.Rect, dirty []lipuma.Rect, preview *scene.RenderObject) Stats {
	bg := p.Background
	if bg == nil {
		bg = color.White
	}

	var st Stats
	for _, d := range dirty {
		region := d.Intersect(view)
		if region.IsEmpty() {
			continue
		}
		st.Regions++

		c.Save()
		c.ClipRect(region)
		c.Clear(region, bg)
		for obj := range s.All() {
			if obj.AABB().Intersects(region) {
				obj.Paint(c)
				st.Painted++
			}
		}
		if preview != nil && preview.AABB().Intersects(region) {
			preview.Paint(c)
			st.Painted++
		}
		c.Restore()
	}

	if st.Regions > 0 {
		lipuma.Logger().Debug("render: painted", "regions", st.Regions, "objects", st.Painted)
	}
	return st
}

// PaintAll repaints the whole view.
func (p Painter) PaintAll(c lipuma.Canvas, s scene.Store, view lipuma.Rect, preview *scene.RenderObject) Stats {
	return p.Paint(c, s, view, []lipuma.Rect{view}, preview)
}
