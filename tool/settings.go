// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tool

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/lipuma/noise"
)

// ErrInvalidSettings is returned by Settings.Validate.
var ErrInvalidSettings = errors.New("tool: invalid settings")

// Settings controls the lines drawn by FractalLineTool.
type Settings struct {
	// Width is the noise displacement scale in scene units.
	Width float64 `toml:"width"`

	// Wavelength is the scene distance covered by one unit of noise input.
	Wavelength float64 `toml:"wavelength"`

	// SampleDistance is the noise-space spacing between vertices.
	SampleDistance float64 `toml:"sample_distance"`

	// Offset shifts the noise input along the line.
	Offset float64 `toml:"offset"`

	// Lacunarity is the per-octave amplitude weight, in [0, 1).
	Lacunarity float64 `toml:"lacunarity"`

	// Octaves is the number of noise bands. Values of 0 and 1 draw
	// straight lines.
	Octaves int8 `toml:"octaves"`

	// Seed seeds the generator that picks a fresh noise seed for every
	// line. Equal seeds replay identical drawings.
	Seed uint64 `toml:"seed"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	return Settings{
		Width:          10,
		Wavelength:     20,
		SampleDistance: 0.05,
		Offset:         0,
		Lacunarity:     0.35,
		Octaves:        6,
	}
}

// Validate reports the first out-of-range field.
func (s Settings) Validate() error {
	switch {
	case !(s.Width >= 0) || math.IsInf(s.Width, 0):
		return fmt.Errorf("%w: width %v must be finite and non-negative", ErrInvalidSettings, s.Width)
	case !(s.Wavelength > 0) || math.IsInf(s.Wavelength, 0):
		return fmt.Errorf("%w: wavelength %v must be finite and positive", ErrInvalidSettings, s.Wavelength)
	case !(s.SampleDistance > 0) || math.IsInf(s.SampleDistance, 0):
		return fmt.Errorf("%w: sample distance %v must be finite and positive", ErrInvalidSettings, s.SampleDistance)
	case math.IsNaN(s.Offset) || math.IsInf(s.Offset, 0):
		return fmt.Errorf("%w: offset %v must be finite", ErrInvalidSettings, s.Offset)
	}
	if err := s.field(0).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}

// field returns the noise field for a line drawn with seed.
func (s Settings) field(seed uint32) noise.Field {
	return noise.New(seed, s.Lacunarity, s.Octaves)
}
