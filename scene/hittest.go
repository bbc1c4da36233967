// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"errors"
	"fmt"

	"github.com/gogpu/lipuma"
)

// ErrUnsupportedSegment is returned when a collision shape contains a
// segment the fine hit test cannot evaluate yet.
var ErrUnsupportedSegment = errors.New("scene: unsupported segment in collision shape")

// HitTest reports whether obj touches query.
//
// The broad phase rejects objects whose bounding box misses query. The
// fine phase walks the object's collision path in scene space and reports
// a hit on the first vertex inside query or the first segment crossing one
// of its edges. It is a containment test, not a polygon clip: a closed
// shape that fully surrounds query without any vertex or edge crossing it
// is not hit.
//
// Curved segments are not supported and yield ErrUnsupportedSegment.
func HitTest(query lipuma.Rect, obj RenderObject) (bool, error) {
	if query.IsEmpty() || !obj.AABB().Intersects(query) {
		return false, nil
	}

	var cur, start lipuma.Point
	for _, elem := range obj.FineShape().Elements() {
		switch e := elem.(type) {
		case lipuma.MoveTo:
			cur, start = e.Point, e.Point
			if query.Contains(cur) {
				return true, nil
			}
		case lipuma.LineTo:
			if segmentHitsRect(query, cur, e.Point) {
				return true, nil
			}
			cur = e.Point
		case lipuma.Close:
			if segmentHitsRect(query, cur, start) {
				return true, nil
			}
			cur = start
		default:
			return false, fmt.Errorf("%w: %T in %s", ErrUnsupportedSegment, elem, obj.Drawable.Kind())
		}
	}
	return false, nil
}

// SelectIn sets Selected on every object that HitTest reports as touching
// query and clears it on every other object. Objects whose flag does not
// change are left untouched, so a diff against s only reports real
// selection changes.
//
// On error the original store is returned unchanged.
func SelectIn(s Store, query lipuma.Rect) (Store, error) {
	out := s
	for obj := range s.All() {
		hit, err := HitTest(query, obj)
		if err != nil {
			return s, err
		}
		if hit != obj.Selected {
			obj.Selected = hit
			out = out.Update(obj)
		}
	}
	return out, nil
}

// ClearSelection deselects every object.
func ClearSelection(s Store) Store {
	out := s
	for obj := range s.Selected() {
		obj.Selected = false
		out = out.Update(obj)
	}
	return out
}

// segmentHitsRect reports whether segment ab has an endpoint inside r or
// crosses one of r's edges.
func segmentHitsRect(r lipuma.Rect, a, b lipuma.Point) bool {
	if r.Contains(a) || r.Contains(b) {
		return true
	}
	if !lipuma.NewRect(a, b).Intersects(r) {
		return false
	}
	c := r.Corners()
	for i := range c {
		if segmentsIntersect(a, b, c[i], c[(i+1)%len(c)]) {
			return true
		}
	}
	return false
}

// segmentsIntersect reports whether segments p1p2 and p3p4 share a point.
func segmentsIntersect(p1, p2, p3, p4 lipuma.Point) bool {
	d1 := orient(p3, p4, p1)
	d2 := orient(p3, p4, p2)
	d3 := orient(p1, p2, p3)
	d4 := orient(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	switch {
	case d1 == 0 && onSegment(p3, p4, p1):
		return true
	case d2 == 0 && onSegment(p3, p4, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, p3):
		return true
	case d4 == 0 && onSegment(p1, p2, p4):
		return true
	}
	return false
}

// orient returns the signed area of the triangle abc.
func orient(a, b, c lipuma.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// onSegment reports whether p, known to be collinear with ab, lies on ab.
func onSegment(a, b, p lipuma.Point) bool {
	return lipuma.NewRect(a, b).Contains(p)
}
