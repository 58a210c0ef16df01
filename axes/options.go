// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axes

import (
	"time"

	"github.com/aclements/go-chartaxes/labels"
	"github.com/aclements/go-chartaxes/scale"
	"golang.org/x/text/language"
)

// Options controls the layout and text of the overlay. The zero
// value of a function or count field means its default.
type Options struct {
	// YLabels is the number of value labels, including both ends
	// of the value range. It must be at least 2.
	YLabels int

	// Pad is the label padding in pixels.
	Pad float64

	// MinTickGap is the minimum horizontal distance in pixels
	// between two kept time labels.
	MinTickGap float64

	// ReservedLeft is the surface x coordinate left of which no
	// time label is drawn. It keeps time labels clear of the
	// value labels.
	ReservedLeft float64

	// TargetTicks is the approximate number of candidate time
	// ticks requested from Ticks.
	TargetTicks int

	// AxisWidth and MarkerWidth are the line widths of the value
	// axis and the time marker lines.
	AxisWidth, MarkerWidth float64

	ValueFont, TimeFont Font

	// Ticks returns about n candidate ticks within the domain of
	// s, in increasing order.
	Ticks func(s scale.Time, n int) []time.Time

	FormatValue func(v float64) string
	FormatDate  func(t time.Time) string
	FormatTime  func(t time.Time) string
}

// DefaultOptions returns the standard overlay layout with English
// label formatting.
func DefaultOptions() Options {
	f := labels.New(language.English)
	return Options{
		YLabels:      4,
		Pad:          10,
		MinTickGap:   70,
		ReservedLeft: 70,
		TargetTicks:  5,
		AxisWidth:    2,
		MarkerWidth:  1,
		ValueFont:    Font{"Roboto", 12},
		TimeFont:     Font{"Roboto", 11},
		Ticks:        scale.Time.TimeTicks,
		FormatValue:  f.Value,
		FormatDate:   f.Date,
		FormatTime:   f.Time,
	}
}

// normalized returns o with unset fields filled from DefaultOptions.
func (o Options) normalized() Options {
	if o.YLabels >= 2 && o.TargetTicks >= 1 && o.AxisWidth > 0 && o.MarkerWidth > 0 &&
		o.ValueFont.Size > 0 && o.TimeFont.Size > 0 &&
		o.Ticks != nil && o.FormatValue != nil && o.FormatDate != nil && o.FormatTime != nil {
		return o
	}
	def := DefaultOptions()
	if o.YLabels < 2 {
		o.YLabels = def.YLabels
	}
	if o.TargetTicks < 1 {
		o.TargetTicks = def.TargetTicks
	}
	if o.AxisWidth <= 0 {
		o.AxisWidth = def.AxisWidth
	}
	if o.MarkerWidth <= 0 {
		o.MarkerWidth = def.MarkerWidth
	}
	if o.ValueFont.Size <= 0 {
		o.ValueFont = def.ValueFont
	}
	if o.TimeFont.Size <= 0 {
		o.TimeFont = def.TimeFont
	}
	if o.Ticks == nil {
		o.Ticks = def.Ticks
	}
	if o.FormatValue == nil {
		o.FormatValue = def.FormatValue
	}
	if o.FormatDate == nil {
		o.FormatDate = def.FormatDate
	}
	if o.FormatTime == nil {
		o.FormatTime = def.FormatTime
	}
	return o
}
