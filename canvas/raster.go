// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/aclements/go-chartaxes/axes"
)

// Raster is a Surface that draws into an RGBA image.
//
// All text is drawn in Go Regular; the font family is ignored.
type Raster struct {
	dc    *gg.Context
	font  *truetype.Font
	faces map[float64]font.Face

	stroke, fill color.Color
	lineWidth    float64
}

// NewRaster returns a transparent width×height raster.
func NewRaster(width, height int) (*Raster, error) {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	r := &Raster{
		dc:        gg.NewContext(width, height),
		font:      f,
		faces:     make(map[float64]font.Face),
		stroke:    color.Black,
		fill:      color.Black,
		lineWidth: 1,
	}
	r.SetFont(axes.Font{Size: 12})
	return r, nil
}

// Clear fills the whole raster with c.
func (r *Raster) Clear(c color.Color) {
	r.dc.SetColor(c)
	r.dc.Clear()
}

func (r *Raster) SetStrokeColor(c color.Color) { r.stroke = c }
func (r *Raster) SetFillColor(c color.Color)   { r.fill = c }
func (r *Raster) SetLineWidth(w float64)       { r.lineWidth = w }

func (r *Raster) SetFont(f axes.Font) {
	face, ok := r.faces[f.Size]
	if !ok {
		// Surface sizes are pixels, so use 72 DPI.
		face = truetype.NewFace(r.font, &truetype.Options{Size: f.Size, DPI: 72})
		r.faces[f.Size] = face
	}
	r.dc.SetFontFace(face)
}

func (r *Raster) BeginPath()          { r.dc.ClearPath() }
func (r *Raster) MoveTo(x, y float64) { r.dc.MoveTo(x, y) }
func (r *Raster) LineTo(x, y float64) { r.dc.LineTo(x, y) }

// Rect adds a closed rectangle to the current path.
func (r *Raster) Rect(x, y, w, h float64) { r.dc.DrawRectangle(x, y, w, h) }

func (r *Raster) Stroke() {
	r.dc.SetStrokeStyle(gg.NewSolidPattern(r.stroke))
	r.dc.SetLineWidth(r.lineWidth)
	r.dc.Stroke()
}

// Fill fills the current path with the fill color.
func (r *Raster) Fill() {
	r.dc.SetFillStyle(gg.NewSolidPattern(r.fill))
	r.dc.Fill()
}

func (r *Raster) FillText(text string, x, y float64) {
	// gg draws text in its current color.
	r.dc.SetColor(r.fill)
	r.dc.DrawString(text, x, y)
}

// Image returns the raster's image.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the raster to w as a PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}
