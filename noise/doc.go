// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package noise provides a deterministic, seedable 1D fractal value noise.
//
// A Field is a small comparable value: evaluating it is a pure function of
// the seed and the queried distance, so a preview and the geometry that is
// later committed from it always agree bit for bit.
//
//	f := noise.New(42, 0.35, 6)
//	v := f.Get(12.5)
//
// Each octave i in [1, Octaves) samples a lattice at frequency 2^i, hashes
// the lattice points to one of {-1, 0, 1}, blends them with a cubic
// smoothstep and weights the result by Lacunarity^i. Octave 0 is skipped
// on purpose, so Octaves of 0 or 1 produce a flat zero field.
package noise
