// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"math"
	"testing"

	"github.com/gogpu/lipuma"
)

func near(a, b lipuma.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestViewport_RoundTrip(t *testing.T) {
	v := NewViewport(800, 600).Pan(lipuma.Pt(30, -20)).ZoomAt(lipuma.Pt(400, 300), 2)

	for _, p := range []lipuma.Point{{}, {X: 10, Y: 20}, {X: -300, Y: 77.5}} {
		if got := v.ToScene(v.ToScreen(p)); !near(got, p) {
			t.Errorf("ToScene(ToScreen(%v)) = %v", p, got)
		}
	}
}

func TestViewport_ZoomKeepsAnchor(t *testing.T) {
	v := NewViewport(800, 600).Pan(lipuma.Pt(15, 25))
	at := lipuma.Pt(120, 80)
	before := v.ToScene(at)
	after := v.ZoomAt(at, 1.01).ToScene(at)
	if !near(before, after) {
		t.Errorf("anchor moved: %v -> %v", before, after)
	}
	if got := v.ZoomAt(at, 0); got != v {
		t.Error("non-positive zoom factor changed the viewport")
	}
}

func TestViewport_Visible(t *testing.T) {
	v := NewViewport(800, 600)
	if got := v.Visible(); got != lipuma.XYWH(0, 0, 800, 600) {
		t.Errorf("Visible() = %v", got)
	}

	v = v.ZoomAt(lipuma.Pt(0, 0), 2)
	if got := v.Visible(); !near(got.Max, lipuma.Pt(400, 300)) {
		t.Errorf("zoomed Visible() = %v, want max (400,300)", got)
	}

	v = v.Resize(1600, 1200)
	if got := v.Visible(); !near(got.Max, lipuma.Pt(800, 600)) {
		t.Errorf("resized Visible() = %v, want max (800,600)", got)
	}
}

func TestViewport_ScreenRect(t *testing.T) {
	v := NewViewport(100, 100).Pan(lipuma.Pt(10, 10))
	if got := v.ScreenRect(lipuma.XYWH(0, 0, 5, 5)); got != lipuma.XYWH(10, 10, 5, 5) {
		t.Errorf("ScreenRect() = %v", got)
	}
}
