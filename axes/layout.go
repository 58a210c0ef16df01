// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axes

import (
	"math"
	"time"

	mscale "github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"

	"github.com/aclements/go-chartaxes/scale"
)

// A ValueLabel is a placed label on the value axis. (X, Y) is the
// start of the text baseline in surface coordinates.
type ValueLabel struct {
	Value float64
	X, Y  float64
	Text  string
}

// A TimeLabel is a kept time tick. X is the surface x coordinate of
// its marker line. Time is empty if time of day is not shown.
type TimeLabel struct {
	Tick       time.Time
	X          float64
	Date, Time string
}

// ValueLabels lays out o.YLabels labels evenly spaced over [min, max],
// from min at the bottom of area to max at the top.
//
// If min == max, there is a single label at the vertical center of
// area. If either bound is not finite, there are no labels.
func (o Options) ValueLabels(area Area, min, max float64) []ValueLabel {
	o = o.normalized()
	if area.empty() || !finite(min) || !finite(max) {
		return nil
	}
	if min > max {
		min, max = max, min
	}
	x := area.X + o.Pad/2
	if min == max {
		return []ValueLabel{{min, x, area.Y + area.H/2 + o.Pad/2, o.FormatValue(min)}}
	}

	in := mscale.Linear{Min: min, Max: max}
	out := scale.NewOutputScale(area.H, 0)
	out.Unclamp()

	values := vec.Linspace(min, max, o.YLabels)
	// Pin the ends against rounding.
	values[0], values[len(values)-1] = min, max

	labels := make([]ValueLabel, len(values))
	for i, v := range values {
		y, _ := out.Of(in.Map(v))
		switch i {
		case len(values) - 1:
			// Bring the top label down into view.
			y += o.Pad
		case 0:
			y--
		default:
			y += o.Pad / 2
		}
		labels[i] = ValueLabel{v, x, area.Y + y, o.FormatValue(v)}
	}
	return labels
}

// ShowTime reports whether time-of-day labels are needed for ticks,
// which is when any tick is not exactly midnight UTC.
func ShowTime(ticks []time.Time) bool {
	for _, t := range ticks {
		t = t.UTC()
		if t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
			return true
		}
	}
	return false
}

// TimeLabels selects which of ticks to label. xOf maps a tick to its
// surface x coordinate; ticks must be in increasing order.
//
// Ticks are considered from right to left. A tick is dropped if it is
// left of o.ReservedLeft or closer than o.MinTickGap to the last kept
// tick. The result is in right-to-left order.
func (o Options) TimeLabels(area Area, ticks []time.Time, xOf func(time.Time) float64) []TimeLabel {
	o = o.normalized()
	if area.empty() {
		return nil
	}
	showTime := ShowTime(ticks)

	var labels []TimeLabel
	last := math.Inf(1)
	for i := len(ticks) - 1; i >= 0; i-- {
		tick := ticks[i]
		x := xOf(tick)

		// Make room for the value labels.
		if math.IsNaN(x) || x < o.ReservedLeft {
			continue
		}

		// Calendar ticks can be uneven. For example, ticks
		// every two days restart on the first of the month, so
		// Oct 31 and Nov 1 are both ticks. Drop the earlier of
		// two ticks that are too close to label.
		if last-x < o.MinTickGap {
			continue
		}

		l := TimeLabel{Tick: tick, X: x, Date: o.FormatDate(tick)}
		if showTime {
			l.Time = o.FormatTime(tick)
		}
		labels = append(labels, l)
		last = x
	}
	return labels
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
