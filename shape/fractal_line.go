// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shape

import (
	"image/color"
	"iter"
	"math"

	"github.com/gogpu/lipuma"
	"github.com/gogpu/lipuma/noise"
)

const (
	// noiseAmplitude scales the raw noise value before it displaces a vertex.
	noiseAmplitude = 3.0

	// boundsInflation is the multiple of Width added around the endpoint
	// rectangle. It overestimates the real displacement on purpose.
	boundsInflation = 10.5

	// envelopePower shapes the endpoint envelope 1-(2t-1)^n.
	envelopePower = 16

	// maxSamples bounds tessellation of absurdly long or fine lines.
	maxSamples = 1 << 20
)

// FractalLine is a straight segment displaced perpendicular to its
// direction by a noise field.
type FractalLine struct {
	Start, End lipuma.Point
	Noise      noise.Field

	// Width multiplies the perpendicular displacement.
	Width float64

	// Wavelength is the along-line distance covered by one unit of noise.
	Wavelength float64

	// SampleDistance is the tessellation step in noise units; smaller
	// values produce more vertices.
	SampleDistance float64

	// Offset shifts the phase along the noise axis.
	Offset float64
}

func (FractalLine) isDrawable() {}

// Kind returns KindFractalLine.
func (FractalLine) Kind() Kind { return KindFractalLine }

// Length returns the distance between Start and End.
func (l FractalLine) Length() float64 {
	return l.Start.Distance(l.End)
}

// SampleCount returns the number of noise samples taken between the
// endpoints: floor((Length / Wavelength) / SampleDistance).
//
// The count depends on the noise-space length rather than the pixel
// length, so zooming does not change the visual noise frequency. It is 0
// for a zero-length line or when the parameters do not yield a finite
// positive count, and never exceeds 1<<20.
func (l FractalLine) SampleCount() int {
	length := l.Length()
	if length == 0 {
		return 0
	}
	n := math.Floor((length / l.Wavelength) / l.SampleDistance)
	if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return 0
	}
	return int(math.Min(n, maxSamples))
}

// Path returns a fresh iterator over the tessellated vertices.
// Each call starts again from the first vertex.
func (l FractalLine) Path() *PathIter {
	return newPathIter(l)
}

// Vertices returns the tessellated vertices as a sequence.
func (l FractalLine) Vertices() iter.Seq[lipuma.Point] {
	return func(yield func(lipuma.Point) bool) {
		it := newPathIter(l)
		for {
			p, ok := it.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// AABB returns the endpoint rectangle inflated by Width*10.5 on each axis.
func (l FractalLine) AABB() lipuma.Rect {
	pad := l.Width * boundsInflation
	return lipuma.NewRect(l.Start, l.End).Inflate(pad, pad)
}

// FineShape returns the tessellated polyline.
func (l FractalLine) FineShape() *lipuma.Path {
	p := lipuma.NewPath()
	first := true
	for v := range l.Vertices() {
		if first {
			p.MoveTo(v.X, v.Y)
			first = false
			continue
		}
		p.LineTo(v.X, v.Y)
	}
	return p
}

// Paint strokes the polyline 1px wide, red when selected.
func (l FractalLine) Paint(c lipuma.Canvas, selected bool) {
	style := lipuma.StrokeStyle{Color: color.Black, Width: 1}
	if selected {
		style.Color = color.RGBA{R: 0xff, A: 0xff}
	}
	c.StrokePath(l.FineShape(), style)
}

// PathIter walks the vertices of a FractalLine lazily.
type PathIter struct {
	line          FractalLine
	i, n          int
	length        float64
	perpendicular lipuma.Point
}

func newPathIter(l FractalLine) *PathIter {
	dir := l.End.Sub(l.Start)
	return &PathIter{
		line:          l,
		n:             l.SampleCount(),
		length:        dir.Length(),
		perpendicular: dir.Normalize().Perp(),
	}
}

// Len returns the total number of vertices the iterator yields.
func (it *PathIter) Len() int {
	return it.n + 1
}

// Next returns the next vertex. The last vertex is always exactly End.
func (it *PathIter) Next() (lipuma.Point, bool) {
	if it.i > it.n {
		return lipuma.Point{}, false
	}
	k := it.i
	it.i++
	if k == it.n {
		return it.line.End, true
	}

	t := float64(k) / float64(it.n)
	d := it.length*t/it.line.Wavelength + it.line.Offset
	v := it.line.Noise.Get(d) * noiseAmplitude
	disp := it.line.Width * envelope(t) * v
	return it.line.Start.Lerp(it.line.End, t).Add(it.perpendicular.Mul(disp)), true
}

// envelope is 1 in the middle of the line and falls to 0 at both ends.
func envelope(t float64) float64 {
	return 1 - math.Pow(2*t-1, envelopePower)
}
