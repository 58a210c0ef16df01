// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package canvas provides drawing surfaces for the axes overlay: an
// SVG writer, a PNG raster and a call recorder.
package canvas // import "github.com/aclements/go-chartaxes/canvas"

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/aclements/go-chartaxes/axes"
)

// SVG is a Surface that streams SVG elements to a writer. Write
// errors are sticky and reported by Done.
type SVG struct {
	w   io.Writer
	err error

	fill, stroke string
	lineWidth    string
	font         string

	path []string
}

func NewSVG(w io.Writer, width, height int) *SVG {
	s := &SVG{w: w}
	s.fprintf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\">\n", width, height)
	s.BeginPath()
	return s
}

type svglen float64

func (v svglen) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func colorToCSS(c color.Color) string {
	cc := color.NRGBAModel.Convert(c).(color.NRGBA)
	if cc.A == 0xff {
		return fmt.Sprintf("rgb(%d,%d,%d)", cc.R, cc.G, cc.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%f)", cc.R, cc.G, cc.B, float64(cc.A)/0xff)
}

func (s *SVG) fprintf(format string, a ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *SVG) SetFillColor(c color.Color) {
	if c == nil {
		s.fill = ""
	} else {
		s.fill = "fill:" + colorToCSS(c)
	}
}

func (s *SVG) SetStrokeColor(c color.Color) {
	if c == nil {
		s.stroke = ""
	} else {
		s.stroke = "stroke:" + colorToCSS(c)
	}
}

func (s *SVG) SetLineWidth(lw float64) {
	s.lineWidth = fmt.Sprintf("stroke-width:%v", svglen(lw))
}

func (s *SVG) SetFont(f axes.Font) {
	s.font = fmt.Sprintf("font:%vpx %s", svglen(f.Size), f.Family)
}

func (s *SVG) style(parts ...string) string {
	val, sep := "", ""
	for _, part := range parts {
		if part != "" {
			val += sep + part
			sep = ";"
		}
	}
	if val != "" {
		return " style=\"" + val + "\""
	}
	return ""
}

func (s *SVG) BeginPath() {
	s.path = []string{}
}

func (s *SVG) MoveTo(x, y float64) {
	s.path = append(s.path, fmt.Sprintf("M%v %v", svglen(x), svglen(y)))
}

func (s *SVG) LineTo(x, y float64) {
	s.path = append(s.path, fmt.Sprintf("L%v %v", svglen(x), svglen(y)))
}

// Rect adds a closed rectangle to the current path.
func (s *SVG) Rect(x, y, w, h float64) {
	s.MoveTo(x, y)
	s.LineTo(x+w, y)
	s.LineTo(x+w, y+h)
	s.LineTo(x, y+h)
	s.path = append(s.path, "z")
}

func (s *SVG) pathData() string {
	return strings.Join(s.path, "")
}

// Stroke emits the current path as an unfilled, stroked path.
func (s *SVG) Stroke() {
	s.fprintf("<path d=\"%s\"%s/>\n", s.pathData(), s.style("fill:none", s.stroke, s.lineWidth))
	s.BeginPath()
}

// Fill emits the current path filled with the fill color.
func (s *SVG) Fill() {
	s.fprintf("<path d=\"%s\"%s/>\n", s.pathData(), s.style(s.fill))
	s.BeginPath()
}

func (s *SVG) FillText(text string, x, y float64) {
	s.fprintf("<text x=\"%v\" y=\"%v\"%s>", svglen(x), svglen(y), s.style(s.fill, s.font))
	if s.err == nil {
		s.err = xml.EscapeText(s.w, []byte(text))
	}
	s.fprintf("</text>\n")
}

// Done closes the SVG document and returns the first write error.
func (s *SVG) Done() error {
	s.fprintf("</svg>")
	return s.err
}
