// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import "github.com/gogpu/lipuma"

// maxDirtyRects is the threshold after which we switch to full redraw.
// When more than this many rects accumulate, it's cheaper to redraw everything.
const maxDirtyRects = 16

// Damage accumulates the scene-space regions that need repainting between
// two paints.
//
// The zero value is ready to use.
type Damage struct {
	rects      []lipuma.Rect
	fullRedraw bool
}

// Add marks r as needing repaint. Empty rectangles are ignored.
// If the accumulated rects exceed maxDirtyRects, Damage switches to full
// redraw mode.
func (d *Damage) Add(r lipuma.Rect) {
	if d.fullRedraw || r.IsEmpty() {
		return
	}

	d.rects = append(d.rects, r)

	if len(d.rects) > maxDirtyRects {
		d.fullRedraw = true
		d.rects = d.rects[:0]
	}
}

// AddChanges marks every footprint touched by c.
func (d *Damage) AddChanges(c Changes) {
	for _, r := range c.Rects {
		d.Add(r)
	}
}

// InvalidateAll requests a full redraw.
func (d *Damage) InvalidateAll() {
	d.fullRedraw = true
	d.rects = d.rects[:0]
}

// NeedsFullRedraw reports whether the whole view must be repainted.
func (d *Damage) NeedsFullRedraw() bool {
	return d.fullRedraw
}

// IsEmpty reports whether nothing needs repainting.
func (d *Damage) IsEmpty() bool {
	return !d.fullRedraw && len(d.rects) == 0
}

// Rects returns the accumulated rectangles.
// Returns nil in full redraw mode (check NeedsFullRedraw first).
// The returned slice should not be modified by the caller.
func (d *Damage) Rects() []lipuma.Rect {
	if d.fullRedraw {
		return nil
	}
	return d.rects
}

// Bounds returns the union of the accumulated rectangles.
func (d *Damage) Bounds() lipuma.Rect {
	b := lipuma.EmptyRect()
	for _, r := range d.rects {
		b = b.Union(r)
	}
	return b
}

// Take returns the pending regions and resets the tracker. When full is
// true the caller should repaint its whole view and rects is nil.
func (d *Damage) Take() (rects []lipuma.Rect, full bool) {
	full = d.fullRedraw
	if !full && len(d.rects) > 0 {
		rects = make([]lipuma.Rect, len(d.rects))
		copy(rects, d.rects)
	}
	d.Clear()
	return rects, full
}

// Clear discards all pending damage.
func (d *Damage) Clear() {
	d.rects = d.rects[:0]
	d.fullRedraw = false
}
