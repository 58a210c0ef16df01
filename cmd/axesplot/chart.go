// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"math"

	mscale "github.com/aclements/go-moremath/scale"

	"github.com/aclements/go-chartaxes/axes"
	"github.com/aclements/go-chartaxes/internal/config"
	"github.com/aclements/go-chartaxes/internal/series"
	"github.com/aclements/go-chartaxes/scale"
	"github.com/aclements/go-chartaxes/theme"
)

// A chart is a series laid out in a plot area.
type chart struct {
	width, height float64
	area          axes.Area
	domain        axes.StaticDomain
	palette       theme.Palette
	opts          axes.Options
	data          series.Series
}

func newChart(cfg *config.Config, s series.Series) *chart {
	w, h := float64(cfg.Width), float64(cfg.Height)
	m := cfg.Margin
	area := axes.Area{X: m, Y: m, W: w - 2*m, H: h - 2*m}
	start, end := s.Window()
	min, max := s.Range()
	d := axes.StaticDomain{
		Min:   min,
		Max:   max,
		Start: start,
		End:   end,
		Lo:    0,
		Hi:    area.W,
	}
	return &chart{
		width:   w,
		height:  h,
		area:    area,
		domain:  d,
		palette: cfg.Theme,
		opts:    cfg.Options(),
		data:    s,
	}
}

type filler interface {
	SetFillColor(c color.Color)
	BeginPath()
	Rect(x, y, w, h float64)
	Fill()
}

// background paints the whole surface in the canvas color.
func (c *chart) background(f filler) {
	f.SetFillColor(c.palette.CanvasBackground())
	f.BeginPath()
	f.Rect(0, 0, c.width, c.height)
	f.Fill()
}

// draw paints the series line and then the axes over it.
func (c *chart) draw(s axes.Surface) {
	c.drawLine(s)
	c.opts.Render(c.palette, s, c.area, c.domain)
}

// drawLine strokes the series in the primary color. Non-finite values
// break the line.
func (c *chart) drawLine(s axes.Surface) {
	ts := scale.NewTime(c.domain.Start, c.domain.End)
	xs := scale.NewOutputScale(c.area.X, c.area.X+c.area.W)
	vs := mscale.Linear{Min: c.domain.Min, Max: c.domain.Max}
	ys := scale.NewOutputScale(c.area.Y+c.area.H, c.area.Y)
	xs.Clamp()
	ys.Clamp()

	s.SetStrokeColor(c.palette.PrimaryColor())
	s.SetLineWidth(1)
	s.BeginPath()
	pen := false
	for _, p := range c.data {
		if math.IsNaN(p.V) || math.IsInf(p.V, 0) {
			pen = false
			continue
		}
		x, _ := xs.Of(ts.OfTime(p.T))
		y, _ := ys.Of(vs.Map(p.V))
		if pen {
			s.LineTo(x, y)
		} else {
			s.MoveTo(x, y)
			pen = true
		}
	}
	s.Stroke()
}
