// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shape

import (
	"image/color"
	"math"
	"slices"
	"testing"

	"github.com/gogpu/lipuma"
	"github.com/gogpu/lipuma/noise"
)

const epsilon = 1e-9

func scenarioLine() FractalLine {
	return FractalLine{
		Start:          lipuma.Pt(0, 0),
		End:            lipuma.Pt(100, 0),
		Noise:          noise.New(0, 0.35, 3),
		Width:          5,
		Wavelength:     5,
		SampleDistance: 2,
		Offset:         0,
	}
}

func TestFractalLine_Scenario(t *testing.T) {
	l := scenarioLine()

	if got := l.SampleCount(); got != 10 {
		t.Fatalf("SampleCount() = %d, want 10", got)
	}

	verts := slices.Collect(l.Vertices())
	if len(verts) != 11 {
		t.Fatalf("len(vertices) = %d, want 11", len(verts))
	}
	if verts[0] != lipuma.Pt(0, 0) {
		t.Errorf("first vertex = %v, want (0,0)", verts[0])
	}
	if verts[10] != l.End {
		t.Errorf("last vertex = %v, want exactly %v", verts[10], l.End)
	}

	// Seed 0 gives a constant noise value of -(0.35+0.35²), so the
	// displacement at the midpoint is width * 3 * that value.
	wantMid := 5 * 3 * -(0.35 + 0.35*0.35)
	mid := verts[5]
	if math.Abs(mid.X-50) > epsilon || math.Abs(mid.Y-wantMid) > epsilon {
		t.Errorf("midpoint = %v, want (50, %v)", mid, wantMid)
	}
	for i, v := range verts {
		if math.Abs(v.X-float64(i)*10) > epsilon {
			t.Errorf("vertex %d x = %v, want %v", i, v.X, float64(i)*10)
		}
	}
}

func TestFractalLine_EndpointExact(t *testing.T) {
	lines := []FractalLine{
		{Start: lipuma.Pt(0.1, 0.2), End: lipuma.Pt(333.3, -71.7), Noise: noise.New(9, 0.5, 6), Width: 10, Wavelength: 20, SampleDistance: 0.05},
		{Start: lipuma.Pt(-5, 7), End: lipuma.Pt(1.0/3, 2.0/3), Noise: noise.New(1, 0.3, 4), Width: 2, Wavelength: 0.7, SampleDistance: 0.3, Offset: 4.2},
		{Start: lipuma.Pt(1e6, 1e6), End: lipuma.Pt(1e6+0.1, 1e6), Noise: noise.New(3, 0.9, 8), Width: 100, Wavelength: 1, SampleDistance: 1},
	}
	for _, l := range lines {
		var last lipuma.Point
		n := 0
		for v := range l.Vertices() {
			if !v.IsFinite() {
				t.Fatalf("%+v produced non-finite vertex %v", l, v)
			}
			last = v
			n++
		}
		if last != l.End {
			t.Errorf("last vertex = %v, want exactly %v", last, l.End)
		}
		if n != l.SampleCount()+1 {
			t.Errorf("vertex count = %d, want %d", n, l.SampleCount()+1)
		}
	}
}

func TestFractalLine_ZeroLength(t *testing.T) {
	p := lipuma.Pt(42, 17)
	l := FractalLine{Start: p, End: p, Noise: noise.New(1, 0.5, 5), Width: 10, Wavelength: 5, SampleDistance: 0.1}

	if got := l.SampleCount(); got != 0 {
		t.Errorf("SampleCount() = %d, want 0", got)
	}
	verts := slices.Collect(l.Vertices())
	if len(verts) != 1 || verts[0] != p {
		t.Errorf("vertices = %v, want [%v]", verts, p)
	}
	if it := l.Path(); it.Len() != 1 {
		t.Errorf("Path().Len() = %d, want 1", it.Len())
	}
}

func TestFractalLine_DegenerateParameters(t *testing.T) {
	tests := []struct {
		name string
		line FractalLine
	}{
		{"zero wavelength", FractalLine{End: lipuma.Pt(10, 0), Wavelength: 0, SampleDistance: 1}},
		{"zero sample distance", FractalLine{End: lipuma.Pt(10, 0), Wavelength: 1, SampleDistance: 0}},
		{"negative wavelength", FractalLine{End: lipuma.Pt(10, 0), Wavelength: -1, SampleDistance: 1}},
		{"nan", FractalLine{End: lipuma.Pt(10, 0), Wavelength: math.NaN(), SampleDistance: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.line.SampleCount(); got != 0 {
				t.Errorf("SampleCount() = %d, want 0", got)
			}
			verts := slices.Collect(tt.line.Vertices())
			if len(verts) != 1 || verts[0] != tt.line.End {
				t.Errorf("vertices = %v, want [End]", verts)
			}
		})
	}
}

func TestFractalLine_PathIsRederivable(t *testing.T) {
	l := scenarioLine()
	l.Noise = noise.New(77, 0.5, 6)

	a := slices.Collect(l.Vertices())
	b := slices.Collect(l.Vertices())
	if !slices.Equal(a, b) {
		t.Fatal("two walks of the same line differ")
	}

	it := l.Path()
	for range it.Len() {
		if _, ok := it.Next(); !ok {
			t.Fatal("iterator ended early")
		}
	}
	if _, ok := it.Next(); ok {
		t.Error("exhausted iterator yielded another vertex")
	}
}

func TestFractalLine_EndpointsAnchored(t *testing.T) {
	l := FractalLine{
		Start: lipuma.Pt(10, 10), End: lipuma.Pt(10, 210),
		Noise: noise.New(12, 0.6, 7), Width: 8, Wavelength: 4, SampleDistance: 0.5,
	}
	verts := slices.Collect(l.Vertices())
	if verts[0] != l.Start {
		t.Errorf("first vertex = %v, want %v", verts[0], l.Start)
	}
}

func TestFractalLine_AABB(t *testing.T) {
	l := scenarioLine()
	got := l.AABB()
	want := lipuma.NewRect(lipuma.Pt(-52.5, -52.5), lipuma.Pt(152.5, 52.5))
	if got != want {
		t.Errorf("AABB() = %v, want %v", got, want)
	}
	for v := range l.Vertices() {
		if !got.Contains(v) {
			t.Errorf("vertex %v outside AABB %v", v, got)
		}
	}
}

func TestFractalLine_FineShape(t *testing.T) {
	l := scenarioLine()
	p := l.FineShape()
	if p.Len() != 11 {
		t.Fatalf("FineShape().Len() = %d, want 11", p.Len())
	}
	if _, ok := p.Elements()[0].(lipuma.MoveTo); !ok {
		t.Errorf("first element = %T, want MoveTo", p.Elements()[0])
	}
	for i, e := range p.Elements()[1:] {
		if _, ok := e.(lipuma.LineTo); !ok {
			t.Errorf("element %d = %T, want LineTo", i+1, e)
		}
	}
}

func TestSelectionRect(t *testing.T) {
	r := SelectionRect{Rect: lipuma.NewRect(lipuma.Pt(10, 20), lipuma.Pt(30, 40))}
	want := lipuma.NewRect(lipuma.Pt(9, 19), lipuma.Pt(31, 41))
	if got := r.AABB(); got != want {
		t.Errorf("AABB() = %v, want %v", got, want)
	}
	if got := r.FineShape().Bounds(); got != want {
		t.Errorf("FineShape().Bounds() = %v, want %v", got, want)
	}
}

func TestDrawable_Equality(t *testing.T) {
	var a, b Drawable = scenarioLine(), scenarioLine()
	if a != b {
		t.Error("structurally equal lines compare unequal")
	}
	moved := scenarioLine()
	moved.End = lipuma.Pt(101, 0)
	if a == Drawable(moved) {
		t.Error("different lines compare equal")
	}
	if a == Drawable(SelectionRect{}) {
		t.Error("different variants compare equal")
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		d    Drawable
		want string
	}{
		{FractalLine{}, "FractalLine"},
		{SelectionRect{}, "SelectionRect"},
	}
	for _, tt := range tests {
		if got := tt.d.Kind().String(); got != tt.want {
			t.Errorf("Kind().String() = %q, want %q", got, tt.want)
		}
	}
	if got := Kind(99).String(); got != "Unknown" {
		t.Errorf("Kind(99).String() = %q, want Unknown", got)
	}
}

// recordingCanvas captures stroke calls.
type recordingCanvas struct {
	strokes []lipuma.StrokeStyle
	paths   []*lipuma.Path
}

func (c *recordingCanvas) Save()                          {}
func (c *recordingCanvas) Restore()                       {}
func (c *recordingCanvas) Transform(lipuma.Matrix)        {}
func (c *recordingCanvas) ClipRect(lipuma.Rect)           {}
func (c *recordingCanvas) Clear(lipuma.Rect, color.Color) {}
func (c *recordingCanvas) StrokePath(p *lipuma.Path, s lipuma.StrokeStyle) {
	c.paths = append(c.paths, p)
	c.strokes = append(c.strokes, s)
}

func TestPaint(t *testing.T) {
	var c recordingCanvas
	l := scenarioLine()
	l.Paint(&c, false)
	l.Paint(&c, true)
	SelectionRect{Rect: lipuma.XYWH(0, 0, 10, 10)}.Paint(&c, false)

	if len(c.strokes) != 3 {
		t.Fatalf("strokes = %d, want 3", len(c.strokes))
	}
	if c.strokes[0].Color != color.Black {
		t.Errorf("unselected color = %v, want black", c.strokes[0].Color)
	}
	if c.strokes[1].Color != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("selected color = %v, want red", c.strokes[1].Color)
	}
	if len(c.strokes[2].Dash) != 2 {
		t.Errorf("selection dash = %v, want [3 3]", c.strokes[2].Dash)
	}
	if c.paths[0].Len() != 11 {
		t.Errorf("painted path has %d elements, want 11", c.paths[0].Len())
	}
}

func BenchmarkFractalLine_Vertices(b *testing.B) {
	lines := make([]FractalLine, 500)
	for i := range lines {
		lines[i] = FractalLine{
			End:            lipuma.Pt(500, 0),
			Noise:          noise.New(uint32(i), 0.3, 3),
			Width:          5,
			Wavelength:     2,
			SampleDistance: 0.5,
		}
	}
	for b.Loop() {
		for _, l := range lines {
			for range l.Vertices() {
			}
		}
	}
}
