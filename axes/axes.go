// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axes draws the axes of a time-series line chart as an
// overlay on top of the plotted series.
//
// The overlay consists of a vertical axis line along the left edge of
// the plot area with evenly spaced value labels, and date (and, when
// needed, time of day) labels along the top edge with a thin vertical
// marker line under each. Time labels that would crowd each other or
// the value labels are dropped.
//
// Render is a pure function of its arguments. It draws through a
// Surface and keeps no state between calls, so it is meant to be
// called on every redraw of the host chart.
package axes // import "github.com/aclements/go-chartaxes/axes"

import (
	"fmt"
	"image/color"
	"math"
	"time"
)

// Area is the plot region of a chart in surface coordinates. (X, Y)
// is the top-left corner.
type Area struct {
	X, Y, W, H float64
}

// empty reports whether a has no drawable extent. NaN sizes are
// empty.
func (a Area) empty() bool {
	return !(a.W > 0 && a.H > 0) || math.IsInf(a.W, 0) || math.IsInf(a.H, 0) ||
		math.IsNaN(a.X) || math.IsNaN(a.Y)
}

// Font describes a font as a size in pixels and a family name.
type Font struct {
	Family string
	Size   float64
}

// String returns f in CSS font shorthand, such as "12px Roboto".
func (f Font) String() string {
	return fmt.Sprintf("%vpx %s", f.Size, f.Family)
}

// A Surface is an immediate-mode 2D drawing surface with pen state.
//
// Stroke strokes the current path with the current stroke color and
// line width and starts a new path. FillText draws text with its
// baseline starting at (x, y) in the current fill color and font.
type Surface interface {
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetLineWidth(w float64)
	SetFont(f Font)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()

	FillText(text string, x, y float64)
}

// A ColorSource supplies the overlay's colors. It is consulted once
// per Render, so it may change between calls.
type ColorSource interface {
	// AccentColor is used for the value axis and its labels.
	AccentColor() color.Color
	// DisabledColor is used for time labels and marker lines.
	DisabledColor() color.Color
}

// A Domain describes what a chart currently shows.
type Domain interface {
	// ValueRange returns the bounds of the vertical axis.
	ValueRange() (min, max float64)
	// TimeRange returns the visible time window.
	TimeRange() (start, end time.Time)
	// PixelRange returns the horizontal extent, relative to the
	// left edge of the plot area, that TimeRange maps to.
	PixelRange() (lo, hi float64)
}

// StaticDomain is a Domain with fixed bounds.
type StaticDomain struct {
	Min, Max   float64
	Start, End time.Time
	Lo, Hi     float64
}

func (d StaticDomain) ValueRange() (min, max float64) {
	return d.Min, d.Max
}

func (d StaticDomain) TimeRange() (start, end time.Time) {
	return d.Start, d.End
}

func (d StaticDomain) PixelRange() (lo, hi float64) {
	return d.Lo, d.Hi
}
