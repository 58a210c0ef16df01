// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"sort"
	"time"
)

var _ Interface = Time{}

// Time is a UTC time scale. It maps instants in [start, end] linearly
// to [0, 1].
type Time struct {
	start, end time.Time
}

// NewTime returns a time scale over [start, end]. If end is before
// start, the two are swapped.
func NewTime(start, end time.Time) Time {
	if end.Before(start) {
		start, end = end, start
	}
	return Time{start.UTC(), end.UTC()}
}

// Domain returns the bounds of s.
func (s Time) Domain() (start, end time.Time) {
	return s.start, s.end
}

// OfTime maps t to the unit interval. A zero-length scale maps every
// instant to 0.5.
func (s Time) OfTime(t time.Time) float64 {
	span := s.end.Sub(s.start)
	if span == 0 {
		return 0.5
	}
	return float64(t.Sub(s.start)) / float64(span)
}

// At is the inverse of OfTime.
func (s Time) At(x float64) time.Time {
	span := s.end.Sub(s.start)
	return s.start.Add(time.Duration(x * float64(span)))
}

// Of maps x, in seconds since the Unix epoch, to the unit interval.
func (s Time) Of(x float64) float64 {
	return s.OfTime(fromSeconds(x))
}

// Ticks returns TimeTicks(n) as seconds since the Unix epoch. Time
// scales have no minor ticks.
func (s Time) Ticks(n int) (major, minor []float64) {
	ticks := s.TimeTicks(n)
	major, minor = make([]float64, len(ticks)), []float64{}
	for i, t := range ticks {
		major[i] = toSeconds(t)
	}
	return
}

// TimeTicks returns roughly n "nice" instants within [start, end], in
// increasing order.
//
// Ticks fall on calendar boundaries. The interval between ticks is
// chosen from a fixed table (1s, 5s, 15s, 30s, 1m, ..., 1 month, 3
// months, 1 year) to be closest to span/n. Stepped intervals select by
// calendar field, so "every 2 days" restarts on the 1st of each month
// and may place two ticks a day apart at a month boundary.
//
// A zero-length scale has no ticks.
func (s Time) TimeTicks(n int) []time.Time {
	span := s.end.Sub(s.start)
	if n < 1 || span == 0 {
		return nil
	}
	target := span / time.Duration(n)

	i := sort.Search(len(timeIntervals), func(i int) bool {
		return timeIntervals[i].approx > target
	})
	switch i {
	case 0:
		return s.milliTicks(n)
	case len(timeIntervals):
		// Years are 365 days for choosing the step.
		spanYears := (toSeconds(s.end) - toSeconds(s.start)) / (365 * 24 * 60 * 60)
		step := tickStep(spanYears, n)
		years := int(math.Round(step))
		if years < 1 {
			years = 1
		}
		return s.rangeOf(timeInterval{unitYear, years, 0})
	}

	iv := timeIntervals[i]
	if prev := timeIntervals[i-1]; float64(target)/float64(prev.approx) < float64(iv.approx)/float64(target) {
		iv = prev
	}
	return s.rangeOf(iv)
}

// rangeOf returns the instants in [s.start, s.end] that fall on iv.
func (s Time) rangeOf(iv timeInterval) []time.Time {
	var ticks []time.Time
	t := iv.unit.floor(s.start)
	if t.Before(s.start) {
		t = iv.unit.next(t)
	}
	for ; !t.After(s.end); t = iv.unit.next(t) {
		if iv.unit.number(t)%iv.step == 0 {
			ticks = append(ticks, t)
		}
	}
	return ticks
}

// milliTicks returns ticks for spans too short for calendar
// intervals, at nice multiples of a millisecond.
func (s Time) milliTicks(n int) []time.Time {
	// Work in offsets from the whole second at or before start so the
	// arithmetic stays exact. Every such step divides a second.
	sec := time.Unix(s.start.Unix(), 0).UTC()
	lo := float64(s.start.Sub(sec)) / 1e6
	hi := float64(s.end.Sub(sec)) / 1e6
	step := tickStep(hi-lo, n)
	first := math.Ceil(lo/step) * step
	var ticks []time.Time
	for i := 0; ; i++ {
		ms := first + float64(i)*step
		if ms > hi {
			break
		}
		ticks = append(ticks, sec.Add(time.Duration(math.Round(ms*1e6))))
	}
	return ticks
}

// tickStep returns a step of 1, 2 or 5 times a power of ten that
// divides span into about n intervals.
func tickStep(span float64, n int) float64 {
	step := math.Pow(10, math.Floor(math.Log10(span/float64(n))))
	switch err := float64(n) / span * step; {
	case err <= .15:
		step *= 10
	case err <= .35:
		step *= 5
	case err <= .75:
		step *= 2
	}
	return step
}

type timeUnit int

const (
	unitSecond timeUnit = iota
	unitMinute
	unitHour
	unitDay
	unitWeek
	unitMonth
	unitYear
)

type timeInterval struct {
	unit   timeUnit
	step   int
	approx time.Duration
}

const day = 24 * time.Hour

// timeIntervals must be sorted by approx.
var timeIntervals = []timeInterval{
	{unitSecond, 1, time.Second},
	{unitSecond, 5, 5 * time.Second},
	{unitSecond, 15, 15 * time.Second},
	{unitSecond, 30, 30 * time.Second},
	{unitMinute, 1, time.Minute},
	{unitMinute, 5, 5 * time.Minute},
	{unitMinute, 15, 15 * time.Minute},
	{unitMinute, 30, 30 * time.Minute},
	{unitHour, 1, time.Hour},
	{unitHour, 3, 3 * time.Hour},
	{unitHour, 6, 6 * time.Hour},
	{unitHour, 12, 12 * time.Hour},
	{unitDay, 1, day},
	{unitDay, 2, 2 * day},
	{unitWeek, 1, 7 * day},
	{unitMonth, 1, 30 * day},
	{unitMonth, 3, 90 * day},
	{unitYear, 1, 365 * day},
}

// floor returns the latest boundary of u at or before t.
func (u timeUnit) floor(t time.Time) time.Time {
	t = t.UTC()
	y, mo, d := t.Date()
	switch u {
	case unitSecond:
		return time.Date(y, mo, d, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	case unitMinute:
		return time.Date(y, mo, d, t.Hour(), t.Minute(), 0, 0, time.UTC)
	case unitHour:
		return time.Date(y, mo, d, t.Hour(), 0, 0, 0, time.UTC)
	case unitDay:
		return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
	case unitWeek:
		// Weeks start on Sunday.
		return time.Date(y, mo, d-int(t.Weekday()), 0, 0, 0, 0, time.UTC)
	case unitMonth:
		return time.Date(y, mo, 1, 0, 0, 0, 0, time.UTC)
	case unitYear:
		return time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	panic("bad time unit")
}

// next returns the boundary of u following the boundary t.
func (u timeUnit) next(t time.Time) time.Time {
	switch u {
	case unitSecond:
		return t.Add(time.Second)
	case unitMinute:
		return t.Add(time.Minute)
	case unitHour:
		return t.Add(time.Hour)
	case unitDay:
		return t.AddDate(0, 0, 1)
	case unitWeek:
		return t.AddDate(0, 0, 7)
	case unitMonth:
		return t.AddDate(0, 1, 0)
	case unitYear:
		return t.AddDate(1, 0, 0)
	}
	panic("bad time unit")
}

// number returns the calendar field of t that stepped intervals of u
// count in.
func (u timeUnit) number(t time.Time) int {
	switch u {
	case unitSecond:
		return t.Second()
	case unitMinute:
		return t.Minute()
	case unitHour:
		return t.Hour()
	case unitDay:
		return t.Day() - 1
	case unitWeek:
		return 0
	case unitMonth:
		return int(t.Month()) - 1
	case unitYear:
		return t.Year()
	}
	panic("bad time unit")
}

func toSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

func fromSeconds(x float64) time.Time {
	sec, frac := math.Modf(x)
	return time.Unix(int64(sec), int64(math.Round(frac*1e9))).UTC()
}
