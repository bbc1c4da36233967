// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tool

import (
	"github.com/gogpu/lipuma/input"
	"github.com/gogpu/lipuma/scene"
)

// Kind identifies a tool.
type Kind uint8

const (
	// KindFractalLine selects FractalLineTool.
	KindFractalLine Kind = iota
	// KindSelection selects SelectionTool.
	KindSelection
)

// String returns the tool name.
func (k Kind) String() string {
	switch k {
	case KindFractalLine:
		return "FractalLine"
	case KindSelection:
		return "Selection"
	default:
		return "Unknown"
	}
}

// Tool is an input-driven editor of the scene.
//
// Tool is a closed set: its implementations are *FractalLineTool and
// *SelectionTool.
type Tool interface {
	// Kind identifies the tool.
	Kind() Kind

	// Active reports whether a gesture is in progress.
	Active() bool

	// Preview returns the object to draw on top of the scene while a
	// gesture is in progress.
	Preview() (scene.RenderObject, bool)

	// Pointer advances the gesture with a scene-space pointer event and
	// returns the possibly updated scene.
	Pointer(ev input.PointerEvent, s scene.Store) (scene.Store, error)

	// Abort drops the gesture in progress without committing it.
	Abort()

	isTool()
}

// Compile-time interface checks.
var (
	_ Tool = (*FractalLineTool)(nil)
	_ Tool = (*SelectionTool)(nil)
)
