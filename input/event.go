// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import (
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/lipuma"
)

// PointerKind identifies what happened to the pointer.
type PointerKind uint8

const (
	// PointerDown is a button press.
	PointerDown PointerKind = iota
	// PointerMove is pointer motion, with or without a button held.
	PointerMove
	// PointerUp is a button release.
	PointerUp
	// PointerWheel is a scroll wheel step.
	PointerWheel
	// PointerLeave means the pointer left the drawing surface.
	PointerLeave
	// PointerCancel means the host aborted the gesture (focus loss, touch
	// cancel).
	PointerCancel
)

// String returns the kind name.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "Down"
	case PointerMove:
		return "Move"
	case PointerUp:
		return "Up"
	case PointerWheel:
		return "Wheel"
	case PointerLeave:
		return "Leave"
	case PointerCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// Ends reports whether the event ends an in-progress gesture without
// completing it.
func (k PointerKind) Ends() bool {
	return k == PointerLeave || k == PointerCancel
}

// Button identifies a pointer button.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonMiddle
	ButtonSecondary
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "None"
	case ButtonPrimary:
		return "Primary"
	case ButtonMiddle:
		return "Middle"
	case ButtonSecondary:
		return "Secondary"
	default:
		return "Unknown"
	}
}

// PointerEvent is a normalized pointer event.
type PointerEvent struct {
	Kind PointerKind

	// Position is the pointer location in scene space. A Session derives it
	// from Screen through its viewport before any tool sees the event,
	// unless only Position is set, in which case Screen is derived from it.
	Position lipuma.Point

	// Screen is the pointer location in device space.
	Screen lipuma.Point

	Button Button

	// WheelDelta is the number of wheel steps, positive away from the user.
	// Only meaningful for PointerWheel.
	WheelDelta float64
}

// String implements fmt.Stringer.
func (e PointerEvent) String() string {
	if e.Kind == PointerWheel {
		return fmt.Sprintf("Wheel(%v at %v)", e.WheelDelta, e.Screen)
	}
	return fmt.Sprintf("%s(%s at %v)", e.Kind, e.Button, e.Screen)
}

// Down returns a primary-button press at screen position p.
func Down(p lipuma.Point) PointerEvent {
	return PointerEvent{Kind: PointerDown, Screen: p, Button: ButtonPrimary}
}

// Move returns a primary-button drag to screen position p.
func Move(p lipuma.Point) PointerEvent {
	return PointerEvent{Kind: PointerMove, Screen: p, Button: ButtonPrimary}
}

// Up returns a primary-button release at screen position p.
func Up(p lipuma.Point) PointerEvent {
	return PointerEvent{Kind: PointerUp, Screen: p, Button: ButtonPrimary}
}

// Wheel returns a wheel event of delta steps at screen position p.
func Wheel(p lipuma.Point, delta float64) PointerEvent {
	return PointerEvent{Kind: PointerWheel, Screen: p, WheelDelta: delta}
}

// Leave returns a pointer-left-surface event.
func Leave() PointerEvent {
	return PointerEvent{Kind: PointerLeave}
}

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Key  gpucontext.Key
	Mods gpucontext.Modifiers

	// Down is true for presses and repeats, false for releases.
	Down bool
}

// Press returns a key press event with no modifiers.
func Press(k gpucontext.Key) KeyEvent {
	return KeyEvent{Key: k, Down: true}
}
