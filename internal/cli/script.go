// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/lipuma"
	"github.com/gogpu/lipuma/input"
	"github.com/gogpu/lipuma/tool"
)

// ErrBadGesture is returned for script entries that cannot be replayed.
var ErrBadGesture = errors.New("cli: bad gesture")

// Gesture is one scripted pointer interaction, in screen coordinates.
type Gesture struct {
	// Action is "line", "select", "delete", "pan" or "zoom".
	Action string `toml:"action"`

	From [2]float64 `toml:"from"`
	To   [2]float64 `toml:"to"`

	// Steps is the number of intermediate moves of a drag. Zero means one.
	Steps int `toml:"steps"`

	// Delta is the number of wheel steps for "zoom".
	Delta float64 `toml:"delta"`
}

// Script is a gesture file.
//
//	[[gesture]]
//	action = "line"
//	from = [10.0, 10.0]
//	to = [200.0, 40.0]
type Script struct {
	Gestures []Gesture `toml:"gesture"`
}

// DecodeScript parses a gesture script.
func DecodeScript(r io.Reader) (Script, error) {
	var s Script
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return Script{}, fmt.Errorf("decode script: %w", err)
	}
	for i, g := range s.Gestures {
		if err := g.validate(); err != nil {
			return Script{}, fmt.Errorf("gesture %d: %w", i, err)
		}
	}
	return s, nil
}

func (g Gesture) validate() error {
	switch g.Action {
	case "line", "select", "delete", "pan", "zoom":
	default:
		return fmt.Errorf("%w: unknown action %q", ErrBadGesture, g.Action)
	}
	if g.Steps < 0 {
		return fmt.Errorf("%w: negative steps %d", ErrBadGesture, g.Steps)
	}
	return nil
}

// Replay runs every gesture against s.
func (sc Script) Replay(s *tool.Session) error {
	for i, g := range sc.Gestures {
		if err := g.Replay(s); err != nil {
			return fmt.Errorf("gesture %d (%s): %w", i, g.Action, err)
		}
	}
	return nil
}

// Replay performs the gesture on s.
func (g Gesture) Replay(s *tool.Session) error {
	from := lipuma.Pt(g.From[0], g.From[1])
	to := lipuma.Pt(g.To[0], g.To[1])

	switch g.Action {
	case "line":
		s.SetTool(tool.KindFractalLine)
		return drag(s, from, to, g.Steps, input.ButtonPrimary)
	case "select":
		s.SetTool(tool.KindSelection)
		return drag(s, from, to, g.Steps, input.ButtonPrimary)
	case "pan":
		return drag(s, from, to, g.Steps, input.ButtonMiddle)
	case "zoom":
		_, err := s.HandlePointer(input.Wheel(from, g.Delta))
		return err
	case "delete":
		s.DeleteSelected()
		return nil
	}
	return fmt.Errorf("%w: unknown action %q", ErrBadGesture, g.Action)
}

// drag presses at from, moves to "to" in steps and releases.
func drag(s *tool.Session, from, to lipuma.Point, steps int, button input.Button) error {
	steps = max(steps, 1)
	events := make([]input.PointerEvent, 0, steps+2)
	events = append(events, input.PointerEvent{Kind: input.PointerDown, Screen: from, Button: button})
	for i := 1; i <= steps; i++ {
		p := from.Lerp(to, float64(i)/float64(steps))
		events = append(events, input.PointerEvent{Kind: input.PointerMove, Screen: p, Button: button})
	}
	events = append(events, input.PointerEvent{Kind: input.PointerUp, Screen: to, Button: button})

	for _, ev := range events {
		if _, err := s.HandlePointer(ev); err != nil {
			return err
		}
	}
	return nil
}
