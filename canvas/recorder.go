// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/aclements/go-chartaxes/axes"
)

// A Call is one recorded Surface method call.
type Call struct {
	Op   string
	Args []interface{}
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		switch arg := arg.(type) {
		case string:
			args[i] = fmt.Sprintf("%q", arg)
		case color.Color:
			args[i] = colorToCSS(arg)
		default:
			args[i] = fmt.Sprint(arg)
		}
	}
	return c.Op + "(" + strings.Join(args, ", ") + ")"
}

// Recorder is a Surface that records the calls made on it.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) add(op string, args ...interface{}) {
	r.Calls = append(r.Calls, Call{op, args})
}

// Reset discards the recorded calls.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// Filter returns the recorded calls to op.
func (r *Recorder) Filter(op string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// WriteTo writes the recorded calls to w, one per line.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, c := range r.Calls {
		n, err := fmt.Fprintln(w, c)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (r *Recorder) SetStrokeColor(c color.Color) { r.add("setStrokeColor", c) }
func (r *Recorder) SetFillColor(c color.Color)   { r.add("setFillColor", c) }
func (r *Recorder) SetLineWidth(w float64)       { r.add("setLineWidth", w) }
func (r *Recorder) SetFont(f axes.Font)          { r.add("setFont", f.String()) }
func (r *Recorder) BeginPath()                   { r.add("beginPath") }
func (r *Recorder) MoveTo(x, y float64)          { r.add("moveTo", x, y) }
func (r *Recorder) LineTo(x, y float64)          { r.add("lineTo", x, y) }
func (r *Recorder) Stroke()                      { r.add("stroke") }

func (r *Recorder) FillText(text string, x, y float64) {
	r.add("fillText", text, x, y)
}
