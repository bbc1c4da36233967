package lipuma

import "image/color"

// StrokeStyle describes how a path outline is painted.
type StrokeStyle struct {
	Color color.Color
	Width float64

	// Dash holds alternating on/off lengths. Nil means a solid stroke.
	Dash []float64
}

// Canvas is the drawing context supplied by the host.
//
// lipuma never rasterizes by itself: drawables describe their geometry
// through a Canvas and the host decides how pixels are produced. Save and
// Restore bracket both the transform and the clip state.
type Canvas interface {
	// Save pushes the current transform and clip.
	Save()

	// Restore pops the state pushed by the matching Save.
	Restore()

	// Transform post-multiplies the current transform by m.
	Transform(m Matrix)

	// ClipRect intersects the current clip with r (in current coordinates).
	ClipRect(r Rect)

	// Clear replaces the pixels under r (in current coordinates) with c,
	// honoring the clip.
	Clear(r Rect, c color.Color)

	// StrokePath strokes the outline of p.
	StrokePath(p *Path, style StrokeStyle)
}
