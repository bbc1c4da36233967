// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"math"

	"github.com/gogpu/lipuma"
	"github.com/gogpu/lipuma/shape"
)

// ObjectID is the stable identity of a stored object.
// Zero means the object has not been inserted into a store.
type ObjectID uint64

// Order is a draw order. Higher orders draw on top.
type Order int32

const (
	// NoOrder marks an object whose order is assigned on insert. It is
	// also what MaxOrder reports for an empty store.
	NoOrder Order = -1

	// PreviewOrder places tool previews above everything in the scene.
	PreviewOrder Order = math.MaxInt32
)

// RenderObject is a drawable placed in the scene.
//
// RenderObject is a comparable value: == compares identity, order,
// transform, selection and geometry.
type RenderObject struct {
	ID        ObjectID
	Order     Order
	Transform lipuma.Matrix
	Selected  bool
	Drawable  shape.Drawable
}

// NewObject wraps d in an unplaced, unselected object with an identity
// transform.
func NewObject(d shape.Drawable) RenderObject {
	return RenderObject{
		Order:     NoOrder,
		Transform: lipuma.Identity(),
		Drawable:  d,
	}
}

// AABB returns the drawable's bounding box in scene space.
func (o RenderObject) AABB() lipuma.Rect {
	if o.Drawable == nil {
		return lipuma.EmptyRect()
	}
	return o.Transform.TransformRect(o.Drawable.AABB())
}

// FineShape returns the drawable's collision path in scene space.
func (o RenderObject) FineShape() *lipuma.Path {
	if o.Drawable == nil {
		return lipuma.NewPath()
	}
	return o.Drawable.FineShape().Transform(o.Transform)
}

// Paint draws the object under its transform.
func (o RenderObject) Paint(c lipuma.Canvas) {
	if o.Drawable == nil {
		return
	}
	c.Save()
	c.Transform(o.Transform)
	o.Drawable.Paint(c, o.Selected)
	c.Restore()
}

// Intersects reports whether the bounding boxes of o and other overlap.
func (o RenderObject) Intersects(other RenderObject) bool {
	return o.AABB().Intersects(other.AABB())
}

// key is the sort key of an object within a Store.
func (o RenderObject) key() drawKey {
	return drawKey{order: o.Order, id: o.ID}
}

// drawKey orders objects by draw order, then by identity.
type drawKey struct {
	order Order
	id    ObjectID
}
