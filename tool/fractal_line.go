// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tool

import (
	"math/rand/v2"

	"github.com/gogpu/lipuma"
	"github.com/gogpu/lipuma/input"
	"github.com/gogpu/lipuma/scene"
	"github.com/gogpu/lipuma/shape"
)

// seedStream decorrelates the two PCG words derived from Settings.Seed.
const seedStream = 0x9e3779b97f4a7c15

// LineState is the gesture state of a FractalLineTool.
type LineState uint8

const (
	// Standby waits for a press.
	Standby LineState = iota
	// Drawing follows the pointer until release.
	Drawing
)

// FractalLineTool draws fractal lines. A press anchors the start point, a
// drag moves the end point and a release commits the line to the scene on
// top of every existing object.
type FractalLineTool struct {
	settings Settings
	rng      *rand.Rand
	state    LineState
	line     shape.FractalLine
}

// NewFractalLineTool creates a line tool. Every line gets a fresh noise
// seed drawn from a PCG generator seeded with settings.Seed.
func NewFractalLineTool(settings Settings) *FractalLineTool {
	return &FractalLineTool{
		settings: settings,
		rng:      rand.New(rand.NewPCG(settings.Seed, settings.Seed^seedStream)),
	}
}

func (*FractalLineTool) isTool() {}

// Kind returns KindFractalLine.
func (*FractalLineTool) Kind() Kind { return KindFractalLine }

// State returns the gesture state.
func (t *FractalLineTool) State() LineState { return t.state }

// Active reports whether a line is being drawn.
func (t *FractalLineTool) Active() bool { return t.state == Drawing }

// Settings returns the settings new lines are drawn with.
func (t *FractalLineTool) Settings() Settings { return t.settings }

// SetSettings changes the settings for lines started after the call.
func (t *FractalLineTool) SetSettings(s Settings) { t.settings = s }

// Preview returns the line being drawn.
func (t *FractalLineTool) Preview() (scene.RenderObject, bool) {
	if t.state != Drawing {
		return scene.RenderObject{}, false
	}
	obj := scene.NewObject(t.line)
	obj.Order = scene.PreviewOrder
	return obj, true
}

// Pointer handles a primary-button gesture.
func (t *FractalLineTool) Pointer(ev input.PointerEvent, s scene.Store) (scene.Store, error) {
	if ev.Kind.Ends() {
		t.Abort()
		return s, nil
	}
	if ev.Button != input.ButtonPrimary {
		return s, nil
	}

	switch ev.Kind {
	case input.PointerDown:
		t.begin(ev.Position)
	case input.PointerMove:
		if t.state == Drawing {
			t.line.End = ev.Position
		}
	case input.PointerUp:
		if t.state == Drawing {
			t.line.End = ev.Position
			s = t.commit(s)
		}
	}
	return s, nil
}

// Abort discards the line being drawn.
func (t *FractalLineTool) Abort() {
	if t.state == Drawing {
		lipuma.Logger().Debug("tool: line aborted", "start", t.line.Start, "end", t.line.End)
	}
	t.state = Standby
}

func (t *FractalLineTool) begin(p lipuma.Point) {
	t.state = Drawing
	t.line = shape.FractalLine{
		Start:          p,
		End:            p,
		Noise:          t.settings.field(t.rng.Uint32()),
		Width:          t.settings.Width,
		Wavelength:     t.settings.Wavelength,
		SampleDistance: t.settings.SampleDistance,
		Offset:         t.settings.Offset,
	}
}

func (t *FractalLineTool) commit(s scene.Store) scene.Store {
	t.state = Standby
	s, obj := s.Insert(scene.NewObject(t.line))
	lipuma.Logger().Debug("tool: line committed",
		"id", obj.ID, "order", obj.Order, "seed", t.line.Noise.Seed, "samples", t.line.SampleCount())
	return s
}
