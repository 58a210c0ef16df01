// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axes

import (
	"time"

	"github.com/aclements/go-chartaxes/scale"
)

// Render draws the overlay on s using DefaultOptions.
func Render(colors ColorSource, s Surface, area Area, d Domain) {
	DefaultOptions().Render(colors, s, area, d)
}

// Render draws the value axis, value labels, time labels and time
// marker lines for d on s within area.
//
// Render never fails. If area is empty or any argument is nil, it
// draws nothing. Labels that are not well defined for d, such as time
// labels for an empty time window, are omitted.
func (o Options) Render(colors ColorSource, s Surface, area Area, d Domain) {
	if colors == nil || s == nil || d == nil || area.empty() {
		return
	}
	o = o.normalized()
	accent, disabled := colors.AccentColor(), colors.DisabledColor()

	// Value axis on the left.
	s.SetLineWidth(o.AxisWidth)
	s.SetStrokeColor(accent)
	s.BeginPath()
	s.MoveTo(area.X, area.Y)
	s.LineTo(area.X, area.Y+area.H)
	s.Stroke()

	min, max := d.ValueRange()
	s.SetFont(o.ValueFont)
	s.SetFillColor(accent)
	for _, l := range o.ValueLabels(area, min, max) {
		s.FillText(l.Text, l.X, l.Y)
	}

	// Time labels and markers along the top.
	start, end := d.TimeRange()
	ts := scale.NewTime(start, end)
	lo, hi := d.PixelRange()
	out := scale.NewOutputScale(lo, hi)
	out.Unclamp()
	xOf := func(t time.Time) float64 {
		x, _ := out.Of(ts.OfTime(t))
		return area.X + x
	}

	s.SetFont(o.TimeFont)
	s.SetLineWidth(o.MarkerWidth)
	s.SetFillColor(disabled)
	s.SetStrokeColor(disabled)
	for _, l := range o.TimeLabels(area, o.Ticks(ts, o.TargetTicks), xOf) {
		s.FillText(l.Date, l.X+o.Pad/2, area.Y+o.Pad)
		if l.Time != "" {
			s.FillText(l.Time, l.X+o.Pad/2, area.Y+o.Pad*2+3)
		}

		s.BeginPath()
		s.MoveTo(l.X, area.Y)
		s.LineTo(l.X, area.Y+area.H)
		s.Stroke()
	}
}
