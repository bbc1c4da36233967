// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tool

import (
	"math"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/lipuma"
	"github.com/gogpu/lipuma/input"
	"github.com/gogpu/lipuma/scene"
)

// zoomStep is the view scale applied per wheel step.
const zoomStep = 1.01

// Result describes the outcome of one event.
type Result struct {
	// Preview is the active tool's preview after the event, or nil.
	Preview *scene.RenderObject

	// Changes is the scene diff when the event committed a mutation.
	Changes *scene.Changes

	// Dirty lists the scene-space regions to repaint: the footprint of
	// every changed object plus the old and new preview bounds.
	Dirty []lipuma.Rect

	// Redraw is set when the viewport changed and the whole view must be
	// repainted. Dirty then holds the visible scene rectangle.
	Redraw bool
}

// Session is an editing session over one scene.
//
// A Session is not safe for concurrent use. The scene snapshots it hands
// out are immutable and may be shared freely.
type Session struct {
	scene     scene.Store
	line      *FractalLineTool
	selection *SelectionTool
	current   Tool
	view      scene.Viewport
	damage    scene.Damage

	panning bool
	panFrom lipuma.Point
}

// NewSession creates a session with an empty scene and the line tool
// active. Settings are used as given; hosts that load them from a file
// call Settings.Validate first.
func NewSession(settings Settings) *Session {
	s := &Session{
		scene:     scene.NewStore(),
		line:      NewFractalLineTool(settings),
		selection: NewSelectionTool(),
		view:      scene.NewViewport(0, 0),
	}
	s.current = s.line
	return s
}

// Scene returns the current scene snapshot.
func (s *Session) Scene() scene.Store { return s.scene }

// Tool returns the active tool.
func (s *Session) Tool() Tool { return s.current }

// Viewport returns the current view.
func (s *Session) Viewport() scene.Viewport { return s.view }

// Settings returns the line tool settings.
func (s *Session) Settings() Settings { return s.line.Settings() }

// SetSettings changes the settings used for lines started after the call.
func (s *Session) SetSettings(settings Settings) { s.line.SetSettings(settings) }

// Preview returns the active tool's preview, or nil when no gesture is in
// progress.
func (s *Session) Preview() *scene.RenderObject {
	if obj, ok := s.current.Preview(); ok {
		return &obj
	}
	return nil
}

// Resize sets the screen size of the view and requests a full redraw.
func (s *Session) Resize(width, height float64) Result {
	s.view = s.view.Resize(width, height)
	return s.redraw()
}

// SetTool switches the active tool, aborting any gesture in progress.
func (s *Session) SetTool(k Kind) Result {
	next := s.toolFor(k)
	if next == nil || next == s.current {
		return Result{Preview: s.Preview()}
	}
	res := s.abort()
	s.current = next
	lipuma.Logger().Debug("tool: switched", "tool", k)
	return res
}

func (s *Session) toolFor(k Kind) Tool {
	switch k {
	case KindFractalLine:
		return s.line
	case KindSelection:
		return s.selection
	default:
		return nil
	}
}

// HandlePointer routes a pointer event.
//
// Screen is authoritative: when it is set, Position is derived from it
// through the viewport. Hosts that already work in scene space may leave
// Screen zero and set only Position; Screen is then derived from Position.
//
// Middle-button drags pan the view and wheel events zoom it around the
// pointer; everything else goes to the active tool.
func (s *Session) HandlePointer(ev input.PointerEvent) (Result, error) {
	if ev.Screen == (lipuma.Point{}) && ev.Position != (lipuma.Point{}) {
		ev.Screen = s.view.ToScreen(ev.Position)
	} else {
		ev.Position = s.view.ToScene(ev.Screen)
	}

	if res, ok := s.handleView(ev); ok {
		return res, nil
	}

	prevPreview := s.Preview()
	next, err := s.current.Pointer(ev, s.scene)
	if err != nil {
		lipuma.Logger().Warn("tool: event rejected", "tool", s.current.Kind(), "event", ev, "err", err)
		return Result{Preview: s.Preview()}, err
	}

	var res Result
	s.commit(next, &res)
	s.previewDamage(prevPreview, &res)
	return res, nil
}

// handleView applies pan and zoom gestures. It reports false when the
// event belongs to the active tool.
func (s *Session) handleView(ev input.PointerEvent) (Result, bool) {
	switch {
	case ev.Kind == input.PointerWheel:
		if ev.WheelDelta == 0 {
			return Result{Preview: s.Preview()}, true
		}
		s.view = s.view.ZoomAt(ev.Screen, math.Pow(zoomStep, ev.WheelDelta))
		return s.redraw(), true

	case ev.Kind == input.PointerDown && ev.Button == input.ButtonMiddle:
		s.panning = true
		s.panFrom = ev.Screen
		return Result{Preview: s.Preview()}, true

	case ev.Kind == input.PointerMove && s.panning:
		s.view = s.view.Pan(ev.Screen.Sub(s.panFrom))
		s.panFrom = ev.Screen
		return s.redraw(), true

	case ev.Kind == input.PointerUp && ev.Button == input.ButtonMiddle:
		s.panning = false
		return Result{Preview: s.Preview()}, true

	case ev.Kind.Ends():
		s.panning = false
	}
	return Result{}, false
}

// HandleKey handles key presses. Escape aborts the gesture in progress
// and Delete or Backspace removes the selected objects.
func (s *Session) HandleKey(ev input.KeyEvent) (Result, error) {
	if !ev.Down {
		return Result{Preview: s.Preview()}, nil
	}
	switch ev.Key {
	case gpucontext.KeyEscape:
		return s.abort(), nil
	case gpucontext.KeyDelete, gpucontext.KeyBackspace:
		return s.DeleteSelected(), nil
	}
	return Result{Preview: s.Preview()}, nil
}

// DeleteSelected removes every selected object from the scene.
func (s *Session) DeleteSelected() Result {
	var res Result
	s.commit(s.scene.Retain(func(o scene.RenderObject) bool { return !o.Selected }), &res)
	res.Preview = s.Preview()
	return res
}

// TakeDamage returns the scene-space regions changed since the last call
// and resets the tracker. When full is true the host repaints its whole
// view.
func (s *Session) TakeDamage() (rects []lipuma.Rect, full bool) {
	return s.damage.Take()
}

// abort drops the active gesture and reports the preview region it leaves
// behind.
func (s *Session) abort() Result {
	prev := s.Preview()
	s.current.Abort()
	s.panning = false
	var res Result
	s.previewDamage(prev, &res)
	return res
}

// commit installs next as the current scene and records its diff.
func (s *Session) commit(next scene.Store, res *Result) {
	changes := scene.Diff(s.scene, next)
	s.scene = next
	if changes.IsEmpty() {
		return
	}
	res.Changes = &changes
	res.Dirty = append(res.Dirty, changes.Rects...)
	s.damage.AddChanges(changes)
	lipuma.Logger().Debug("tool: scene changed",
		"added", len(changes.Added), "updated", len(changes.Updated), "removed", len(changes.Removed),
		"objects", next.Len(), "bounds", changes.Bounds)
}

// previewDamage records the current preview in res and marks the old and
// new preview footprints dirty when the preview changed.
func (s *Session) previewDamage(prev *scene.RenderObject, res *Result) {
	cur := s.Preview()
	res.Preview = cur
	if prev == nil && cur == nil {
		return
	}
	if prev != nil && cur != nil && *prev == *cur {
		return
	}
	for _, p := range []*scene.RenderObject{prev, cur} {
		if p == nil {
			continue
		}
		r := p.AABB()
		if r.IsEmpty() {
			continue
		}
		res.Dirty = append(res.Dirty, r)
		s.damage.Add(r)
	}
}

// redraw invalidates the whole view.
func (s *Session) redraw() Result {
	s.damage.InvalidateAll()
	return Result{
		Preview: s.Preview(),
		Dirty:   []lipuma.Rect{s.view.Visible()},
		Redraw:  true,
	}
}
