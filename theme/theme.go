// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme resolves chart colors from a named palette.
package theme // import "github.com/aclements/go-chartaxes/theme"

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// A Palette names the colors of a chart theme. Colors are written as
// "#rgb", "#rrggbb", "#rrggbbaa", "rgb(r, g, b)", "rgba(r, g, b, a)"
// or a CSS color name.
//
// Palette implements axes.ColorSource. Colors are parsed on every
// call, so a Palette may be edited between redraws.
type Palette struct {
	Accent3  string `yaml:"accent3Color"`
	Disabled string `yaml:"disabledColor"`
	Primary1 string `yaml:"primary1Color"`
	Canvas   string `yaml:"canvasColor"`
}

// Light is the default light palette.
var Light = Palette{
	Accent3:  "#9e9e9e",
	Disabled: "rgba(0, 0, 0, 0.3)",
	Primary1: "#00bcd4",
	Canvas:   "white",
}

// Validate reports the first color in p that does not parse.
func (p Palette) Validate() error {
	for _, c := range []struct{ name, val string }{
		{"accent3Color", p.Accent3},
		{"disabledColor", p.Disabled},
		{"primary1Color", p.Primary1},
		{"canvasColor", p.Canvas},
	} {
		if _, err := Parse(c.val); err != nil {
			return fmt.Errorf("palette %s: %w", c.name, err)
		}
	}
	return nil
}

func (p Palette) AccentColor() color.Color   { return resolve(p.Accent3, Light.Accent3) }
func (p Palette) DisabledColor() color.Color { return resolve(p.Disabled, Light.Disabled) }
func (p Palette) PrimaryColor() color.Color  { return resolve(p.Primary1, Light.Primary1) }
func (p Palette) CanvasBackground() color.Color {
	return resolve(p.Canvas, Light.Canvas)
}

// resolve parses s, falling back to def if s is malformed.
func resolve(s, def string) color.Color {
	if c, err := Parse(s); err == nil {
		return c
	}
	c, _ := Parse(def)
	return c
}

// Parse parses a color string.
func Parse(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return nil, fmt.Errorf("empty color")
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgb"):
		return parseFunc(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}

func parseHex(s string) (color.Color, error) {
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// parseFunc parses "rgb(r, g, b)" and "rgba(r, g, b, a)" with alpha
// in [0, 1].
func parseFunc(s string) (color.Color, error) {
	open, close := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || close < open {
		return nil, fmt.Errorf("bad color %q", s)
	}
	name, args := s[:open], strings.Split(s[open+1:close], ",")
	want := 3
	if name == "rgba" {
		want = 4
	} else if name != "rgb" {
		return nil, fmt.Errorf("bad color function %q", name)
	}
	if len(args) != want {
		return nil, fmt.Errorf("%s needs %d components, got %d", name, want, len(args))
	}

	var c [4]uint8
	c[3] = 0xff
	for i, arg := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return nil, fmt.Errorf("bad color %q: %w", s, err)
		}
		if i == 3 {
			v *= 0xff
		}
		if v < 0 || v > 0xff {
			return nil, fmt.Errorf("bad color %q: component %d out of range", s, i)
		}
		c[i] = uint8(v + 0.5)
	}
	return color.NRGBA{c[0], c[1], c[2], c[3]}, nil
}
