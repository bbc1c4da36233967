// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package noise

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidField is returned by Validate for out-of-range parameters.
var ErrInvalidField = errors.New("noise: invalid field")

// Hash mixing constants (xorshift-multiply, two rounds).
const (
	mixA uint32 = 0x21f0aaad
	mixB uint32 = 0xd35a2d97
)

// Field is a fractal noise function of one variable.
// The zero value is a valid field that evaluates to 0 everywhere.
type Field struct {
	Seed       uint32
	Lacunarity float64
	Octaves    int8
}

// New creates a Field.
func New(seed uint32, lacunarity float64, octaves int8) Field {
	return Field{Seed: seed, Lacunarity: lacunarity, Octaves: octaves}
}

// Validate reports whether the field parameters are in their documented
// ranges: Octaves >= 0 and Lacunarity in [0, 1).
func (f Field) Validate() error {
	if f.Octaves < 0 {
		return fmt.Errorf("%w: octaves %d < 0", ErrInvalidField, f.Octaves)
	}
	if math.IsNaN(f.Lacunarity) || f.Lacunarity < 0 || f.Lacunarity >= 1 {
		return fmt.Errorf("%w: lacunarity %v outside [0, 1)", ErrInvalidField, f.Lacunarity)
	}
	return nil
}

// Get evaluates the field at distance.
//
// Get is pure: the same Field and distance always yield the same value.
// It is defined for every finite distance, negative values included.
func (f Field) Get(distance float64) float64 {
	var val float64
	for i := int8(1); i < f.Octaves; i++ {
		scaled := distance * math.Pow(2, float64(i))
		_, frac := math.Modf(scaled)
		lo := f.lattice(math.Floor(scaled))
		hi := f.lattice(math.Ceil(scaled))
		val += smoothStep(lo, hi, frac) * math.Pow(f.Lacunarity, float64(i))
	}
	return val
}

// lattice returns the value {-1, 0, 1} attached to the lattice point x.
func (f Field) lattice(x float64) float64 {
	h := hash(f.Seed * toUint32(x))
	return float64(int32(h%3) - 1)
}

// hash is a two-round xorshift-multiply integer mixer.
func hash(i uint32) uint32 {
	i ^= i >> 16
	i *= mixA
	i ^= i >> 15
	i *= mixB
	i ^= i >> 15
	return i
}

// smoothStep blends start and end with the cubic Hermite curve 3x²-2x³.
func smoothStep(start, end, x float64) float64 {
	return start + (3*x*x-2*x*x*x)*(end-start)
}

// toUint32 converts a lattice coordinate to uint32, saturating at the type
// bounds. NaN maps to 0. Go leaves out-of-range float conversions
// implementation-defined, so the bounds are handled explicitly.
func toUint32(x float64) uint32 {
	switch {
	case math.IsNaN(x), x <= 0:
		return 0
	case x >= math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(x)
	}
}
