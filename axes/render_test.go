// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axes_test

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-chartaxes/axes"
	"github.com/aclements/go-chartaxes/canvas"
	"github.com/aclements/go-chartaxes/scale"
)

type testColors struct{}

var (
	accent   = color.NRGBA{0x9e, 0x9e, 0x9e, 0xff}
	disabled = color.NRGBA{0, 0, 0, 0x4d}
)

func (testColors) AccentColor() color.Color   { return accent }
func (testColors) DisabledColor() color.Color { return disabled }

func texts(calls []canvas.Call) []string {
	var out []string
	for _, c := range calls {
		out = append(out, c.Args[0].(string))
	}
	return out
}

var twoDays = axes.StaticDomain{
	Min:   0,
	Max:   100,
	Start: time.Date(2016, 10, 25, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2016, 11, 4, 0, 0, 0, 0, time.UTC),
	Lo:    0,
	Hi:    600,
}

func TestRenderDates(t *testing.T) {
	var r canvas.Recorder
	axes.Render(testColors{}, &r, axes.Area{X: 0, Y: 0, W: 600, H: 300}, twoDays)

	// Oct 31 is a day left of Nov 1 and Oct 25 is in the value
	// label zone.
	assert.Equal(t, []string{
		"0", "33", "67", "100",
		"Nov 3, 2016", "Nov 1, 2016", "Oct 29, 2016", "Oct 27, 2016",
	}, texts(r.Filter("fillText")))

	var markers []float64
	for _, c := range r.Filter("moveTo")[1:] {
		markers = append(markers, c.Args[0].(float64))
	}
	require.Len(t, markers, 4)
	for i, want := range []float64{540, 420, 240, 120} {
		assert.InDelta(t, want, markers[i], 1e-9)
	}
	assert.Len(t, r.Filter("stroke"), 5)
}

func TestRenderOrder(t *testing.T) {
	var r canvas.Recorder
	axes.Render(testColors{}, &r, axes.Area{X: 10, Y: 20, W: 600, H: 300}, twoDays)

	want := []canvas.Call{
		{Op: "setLineWidth", Args: []interface{}{2.0}},
		{Op: "setStrokeColor", Args: []interface{}{accent}},
		{Op: "beginPath"},
		{Op: "moveTo", Args: []interface{}{10.0, 20.0}},
		{Op: "lineTo", Args: []interface{}{10.0, 320.0}},
		{Op: "stroke"},
		{Op: "setFont", Args: []interface{}{"12px Roboto"}},
		{Op: "setFillColor", Args: []interface{}{accent}},
	}
	require.True(t, len(r.Calls) > len(want))
	for i := range want {
		assert.Equal(t, want[i].String(), r.Calls[i].String(), "call %d", i)
	}

	// The time section sets its pen state once.
	var after []string
	for _, c := range r.Calls[len(want)+4:][:4] {
		after = append(after, c.String())
	}
	assert.Equal(t, []string{
		`setFont("11px Roboto")`,
		"setLineWidth(1)",
		"setFillColor(rgba(0,0,0,0.301961))",
		"setStrokeColor(rgba(0,0,0,0.301961))",
	}, after)
}

func TestRenderTimes(t *testing.T) {
	d := twoDays
	d.Start = time.Date(2016, 10, 29, 0, 0, 0, 0, time.UTC)
	d.End = d.Start.Add(24 * time.Hour)

	var r canvas.Recorder
	axes.Render(testColors{}, &r, axes.Area{X: 0, Y: 0, W: 600, H: 300}, d)

	fills := r.Filter("fillText")
	require.Len(t, fills, 4+8)
	assert.Equal(t, []string{
		"Oct 30, 2016", "12:00 AM",
		"Oct 29, 2016", "6:00 PM",
		"Oct 29, 2016", "12:00 PM",
		"Oct 29, 2016", "6:00 AM",
	}, texts(fills[4:]))

	// Dates and times are on two lines below the top edge.
	assert.Equal(t, 10.0, fills[4].Args[2])
	assert.Equal(t, 23.0, fills[5].Args[2])
	assert.Equal(t, 605.0, fills[4].Args[1])
}

func TestRenderIdempotent(t *testing.T) {
	var a, b canvas.Recorder
	area := axes.Area{X: 5, Y: 5, W: 800, H: 250}
	axes.Render(testColors{}, &a, area, twoDays)
	axes.Render(testColors{}, &b, area, twoDays)
	assert.Equal(t, a.Calls, b.Calls)
}

func TestRenderDegenerate(t *testing.T) {
	var r canvas.Recorder
	axes.Render(testColors{}, &r, axes.Area{X: 0, Y: 0, W: 0, H: 300}, twoDays)
	assert.Empty(t, r.Calls)
	axes.Render(nil, &r, axes.Area{X: 0, Y: 0, W: 600, H: 300}, twoDays)
	assert.Empty(t, r.Calls)
	axes.Render(testColors{}, &r, axes.Area{X: 0, Y: 0, W: 600, H: 300}, nil)
	assert.Empty(t, r.Calls)

	// An empty window and a flat value range still draw the axis
	// and a single value label.
	d := twoDays
	d.Min, d.Max = 7, 7
	d.End = d.Start
	axes.Render(testColors{}, &r, axes.Area{X: 0, Y: 0, W: 600, H: 300}, d)
	assert.Equal(t, []string{"7"}, texts(r.Filter("fillText")))
	assert.Len(t, r.Filter("stroke"), 1)
}

func TestRenderOptions(t *testing.T) {
	var seen []int
	o := axes.DefaultOptions()
	o.YLabels = 3
	o.TargetTicks = 2
	o.Ticks = func(s scale.Time, n int) []time.Time {
		seen = append(seen, n)
		start, end := s.Domain()
		return []time.Time{start, end}
	}
	o.FormatValue = func(v float64) string { return "v" }
	o.FormatDate = func(t time.Time) string { return t.Format("2006-01-02") }

	var r canvas.Recorder
	o.Render(testColors{}, &r, axes.Area{X: 0, Y: 0, W: 600, H: 300}, twoDays)
	assert.Equal(t, []int{2}, seen)
	assert.Equal(t, []string{"v", "v", "v", "2016-11-04"}, texts(r.Filter("fillText")))
}
