// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tool

import (
	"github.com/gogpu/lipuma"
	"github.com/gogpu/lipuma/input"
	"github.com/gogpu/lipuma/scene"
	"github.com/gogpu/lipuma/shape"
)

// SelectionState is the gesture state of a SelectionTool.
type SelectionState uint8

const (
	// Inactive waits for a press.
	Inactive SelectionState = iota
	// Active follows the pointer until release.
	Active
)

// SelectionTool selects objects by dragging a rectangle. Every object the
// rectangle touches is selected and every other object is deselected,
// updated live while the pointer moves.
//
// Selection changes made during a gesture stay in the scene when the
// gesture is aborted; only the rectangle preview is dropped.
type SelectionTool struct {
	state      SelectionState
	start, end lipuma.Point
}

// NewSelectionTool creates an inactive selection tool.
func NewSelectionTool() *SelectionTool {
	return &SelectionTool{}
}

func (*SelectionTool) isTool() {}

// Kind returns KindSelection.
func (*SelectionTool) Kind() Kind { return KindSelection }

// State returns the gesture state.
func (t *SelectionTool) State() SelectionState { return t.state }

// Active reports whether a rectangle is being dragged.
func (t *SelectionTool) Active() bool { return t.state == Active }

// Rect returns the current selection rectangle in scene space.
func (t *SelectionTool) Rect() lipuma.Rect {
	return lipuma.NewRect(t.start, t.end)
}

// Preview returns the dashed selection rectangle.
func (t *SelectionTool) Preview() (scene.RenderObject, bool) {
	if t.state != Active {
		return scene.RenderObject{}, false
	}
	obj := scene.NewObject(shape.SelectionRect{Rect: t.Rect()})
	obj.Order = scene.PreviewOrder
	return obj, true
}

// Pointer handles a primary-button gesture.
func (t *SelectionTool) Pointer(ev input.PointerEvent, s scene.Store) (scene.Store, error) {
	if ev.Kind.Ends() {
		t.Abort()
		return s, nil
	}
	if ev.Button != input.ButtonPrimary {
		return s, nil
	}

	switch ev.Kind {
	case input.PointerDown:
		t.state = Active
		t.start, t.end = ev.Position, ev.Position
		return s, nil
	case input.PointerMove:
		if t.state != Active {
			return s, nil
		}
		t.end = ev.Position
		return scene.SelectIn(s, t.Rect())
	case input.PointerUp:
		if t.state != Active {
			return s, nil
		}
		t.end = ev.Position
		t.state = Inactive
		return scene.SelectIn(s, t.Rect())
	}
	return s, nil
}

// Abort drops the selection rectangle.
func (t *SelectionTool) Abort() {
	if t.state == Active {
		lipuma.Logger().Debug("tool: selection aborted", "rect", t.Rect())
	}
	t.state = Inactive
}
