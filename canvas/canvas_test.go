// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-chartaxes/axes"
)

var (
	_ axes.Surface = (*SVG)(nil)
	_ axes.Surface = (*Raster)(nil)
	_ axes.Surface = (*Recorder)(nil)
)

type colors struct{}

func (colors) AccentColor() color.Color   { return color.NRGBA{0x9e, 0x9e, 0x9e, 0xff} }
func (colors) DisabledColor() color.Color { return color.NRGBA{0, 0, 0, 0x80} }

var domain = axes.StaticDomain{
	Min:   0,
	Max:   100,
	Start: time.Date(2016, 10, 25, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2016, 11, 4, 0, 0, 0, 0, time.UTC),
	Lo:    0,
	Hi:    600,
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf, 600, 300)
	axes.Render(colors{}, s, axes.Area{X: 0, Y: 0, W: 600, H: 300}, domain)
	require.NoError(t, s.Done())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="600" height="300">`))
	assert.True(t, strings.HasSuffix(out, "</svg>"))
	assert.Contains(t, out, `<path d="M0 0L0 300" style="fill:none;stroke:rgb(158,158,158);stroke-width:2"/>`)
	assert.Contains(t, out, `<text x="5" y="10" style="fill:rgb(158,158,158);font:12px Roboto">100</text>`)
	assert.Contains(t, out, `font:11px Roboto">Nov 3, 2016</text>`)
	assert.Equal(t, 5, strings.Count(out, "<path"))
}

func TestSVGEscape(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf, 10, 10)
	s.FillText("a<b&c", 1, 2)
	require.NoError(t, s.Done())
	assert.Contains(t, buf.String(), `<text x="1" y="2">a&lt;b&amp;c</text>`)
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("disk full")
	}
	w.n--
	return len(p), nil
}

func TestSVGStickyError(t *testing.T) {
	s := NewSVG(&failWriter{n: 1}, 10, 10)
	s.BeginPath()
	s.Rect(0, 0, 10, 10)
	s.Fill()
	s.FillText("x", 0, 0)
	assert.EqualError(t, s.Done(), "disk full")
}

func TestRaster(t *testing.T) {
	r, err := NewRaster(600, 300)
	require.NoError(t, err)
	r.Clear(color.White)
	axes.Render(colors{}, r, axes.Area{X: 0, Y: 0, W: 600, H: 300}, domain)

	// The axis line is two pixels wide on the left edge.
	_, _, _, a := r.Image().At(0, 150).RGBA()
	assert.NotZero(t, a)
	cr, cg, cb, _ := r.Image().At(0, 150).RGBA()
	assert.False(t, cr == 0xffff && cg == 0xffff && cb == 0xffff, "axis line not drawn")

	var buf bytes.Buffer
	require.NoError(t, r.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.SetFont(axes.Font{Family: "Roboto", Size: 12})
	r.SetFillColor(color.NRGBA{1, 2, 3, 0xff})
	r.FillText(`say "hi"`, 1.5, 2)

	var buf bytes.Buffer
	_, err := r.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "setFont(\"12px Roboto\")\nsetFillColor(rgb(1,2,3))\nfillText(\"say \\\"hi\\\"\", 1.5, 2)\n", buf.String())

	assert.Len(t, r.Filter("fillText"), 1)
	r.Reset()
	assert.Empty(t, r.Calls)
}
