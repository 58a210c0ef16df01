// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// OutputScale maps the unit interval on to [min, max]. min may be
// greater than max, which flips the axis; vertical chart axes grow
// downward in surface coordinates.
type OutputScale struct {
	min, max float64
	clamp    int
}

const (
	clampCrop = iota
	clampNone
	clampClamp
)

// NewOutputScale returns an output scale for [min, max] that crops
// inputs outside [0, 1].
func NewOutputScale(min, max float64) OutputScale {
	return OutputScale{min, max, clampCrop}
}

// Crop causes Of to reject inputs outside [0, 1].
func (s *OutputScale) Crop() {
	s.clamp = clampCrop
}

// Unclamp causes Of to extrapolate linearly outside [0, 1].
func (s *OutputScale) Unclamp() {
	s.clamp = clampNone
}

// Clamp causes Of to pin inputs outside [0, 1] to the nearest end.
func (s *OutputScale) Clamp() {
	s.clamp = clampClamp
}

// Of maps x to the output range. The boolean result is false only if
// s crops and x falls outside [0, 1].
func (s OutputScale) Of(x float64) (float64, bool) {
	if s.clamp == clampCrop {
		if x < 0 || x > 1 {
			return 0, false
		}
	} else if s.clamp == clampClamp {
		if x < 0 {
			x = 0
		} else if x > 1 {
			x = 1
		}
	}
	return x*(s.max-s.min) + s.min, true
}

// Unmap is the inverse of Of for an unclamped scale. If the output
// range is empty, it returns 0.5.
func (s OutputScale) Unmap(y float64) float64 {
	if s.max == s.min {
		return 0.5
	}
	return (y - s.min) / (s.max - s.min)
}
