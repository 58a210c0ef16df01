// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps chart domains to the unit interval and from there
// to pixel coordinates.
//
// An input scale, such as Time, maps its domain to [0, 1]. An
// OutputScale maps [0, 1] on to a pixel range. Keeping the two apart
// lets a host chart rebuild either side independently on every redraw.
package scale // import "github.com/aclements/go-chartaxes/scale"

// A scale satisfies Interface if it maps from some input range to an
// output interval [0, 1].
type Interface interface {
	Of(x float64) float64
	Ticks(n int) (major, minor []float64)
}
