// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shape

import "github.com/gogpu/lipuma"

// Drawable is a shape that can live in a scene or be shown as a preview.
// The set of implementations is closed to this package.
type Drawable interface {
	// AABB returns a conservative axis-aligned bounding box in local space.
	AABB() lipuma.Rect

	// FineShape returns the precise outline used for hit testing.
	FineShape() *lipuma.Path

	// Paint draws the shape. selected switches to the highlight style.
	Paint(c lipuma.Canvas, selected bool)

	// Kind identifies the variant.
	Kind() Kind

	isDrawable()
}

// Kind enumerates the Drawable variants.
type Kind uint8

const (
	KindFractalLine Kind = iota
	KindSelectionRect
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindFractalLine:
		return "FractalLine"
	case KindSelectionRect:
		return "SelectionRect"
	default:
		return "Unknown"
	}
}

// Interface assertions.
var (
	_ Drawable = FractalLine{}
	_ Drawable = SelectionRect{}
)
