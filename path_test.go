package lipuma

import "testing"

func TestPathBuild(t *testing.T) {
	p := NewPath()
	if !p.IsEmpty() {
		t.Fatal("new path should be empty")
	}
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.QuadraticTo(15, 5, 10, 10)
	p.CubicTo(8, 12, 2, 12, 0, 10)
	p.Close()

	want := []PathElement{
		MoveTo{Point: Pt(0, 0)},
		LineTo{Point: Pt(10, 0)},
		QuadTo{Control: Pt(15, 5), Point: Pt(10, 10)},
		CubicTo{Control1: Pt(8, 12), Control2: Pt(2, 12), Point: Pt(0, 10)},
		Close{},
	}
	got := p.Elements()
	if len(got) != len(want) {
		t.Fatalf("got %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %#v, want %#v", i, got[i], want[i])
		}
	}
	if p.CurrentPoint() != Pt(0, 0) {
		t.Errorf("Close should return to subpath start, current = %v", p.CurrentPoint())
	}
}

func TestPathBounds(t *testing.T) {
	if b := NewPath().Bounds(); !b.IsEmpty() {
		t.Errorf("empty path bounds = %v, want empty", b)
	}

	p := NewPath()
	p.MoveTo(5, 5)
	p.LineTo(10, 0)
	p.QuadraticTo(20, 30, 0, 10)
	if got := p.Bounds(); got != NewRect(Pt(0, 0), Pt(20, 30)) {
		t.Errorf("Bounds = %v, want control points included", got)
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(2, 3)
	p.Close()

	moved := p.Transform(Translate(10, 20))
	if got := moved.Bounds(); got != NewRect(Pt(11, 21), Pt(12, 23)) {
		t.Errorf("translated bounds = %v", got)
	}
	if got := p.Bounds(); got != NewRect(Pt(1, 1), Pt(2, 3)) {
		t.Errorf("Transform modified the receiver: %v", got)
	}
	if moved.Len() != p.Len() {
		t.Errorf("Transform changed element count: %d != %d", moved.Len(), p.Len())
	}
}

func TestPathCloneIsIndependent(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 1)

	c := p.Clone()
	c.LineTo(5, 5)
	if p.Len() != 2 {
		t.Errorf("original has %d elements after appending to clone, want 2", p.Len())
	}
	if c.CurrentPoint() != Pt(5, 5) {
		t.Errorf("clone current = %v", c.CurrentPoint())
	}
}
