// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package labels formats the text of chart axis labels.
package labels // import "github.com/aclements/go-chartaxes/labels"

import (
	"math"
	"strconv"
	"strings"
	"time"

	"bitbucket.org/tebeka/strftime"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// strftime layouts for the medium date and short time styles. In
// addition to the strftime directives, "%-d" is the day of the month
// without padding.
const (
	MediumDate = "%b %-d, %Y"
	ShortTime  = "%I:%M %p"
)

// Go layouts used if a strftime layout cannot be formatted.
const (
	fallbackDate = "Jan 2, 2006"
	fallbackTime = "3:04 PM"
)

// A Formatter formats axis label values in a particular locale.
// Times are always formatted in UTC.
type Formatter struct {
	printer *message.Printer

	// DateFormat and TimeFormat are strftime layouts.
	DateFormat, TimeFormat string
}

// New returns a Formatter for the given language using the
// MediumDate and ShortTime layouts.
func New(tag language.Tag) *Formatter {
	return &Formatter{
		printer:    message.NewPrinter(tag),
		DateFormat: MediumDate,
		TimeFormat: ShortTime,
	}
}

// Value formats v compactly, using a metric suffix for large and very
// small magnitudes and fewer fractional digits as |v| grows.
func (f *Formatter) Value(v float64) string {
	if v == 0 {
		return "0"
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	switch abs := math.Abs(v); {
	case abs >= 1e9:
		return f.decimal(v/1e9, 1) + "G"
	case abs >= 1e6:
		return f.decimal(v/1e6, 1) + "M"
	case abs >= 1e3:
		return f.decimal(v/1e3, 1) + "k"
	case abs < 0.01:
		return f.decimal(v*1e3, 1) + "m"
	case abs < 1:
		return f.decimal(v, 2)
	case abs < 10:
		return f.decimal(v, 1)
	default:
		return f.decimal(v, 0)
	}
}

// decimal formats v with at most digits fractional digits. Trailing
// zeros are dropped.
func (f *Formatter) decimal(v float64, digits int) string {
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(digits)))
}

// Date formats the date of t in UTC.
func (f *Formatter) Date(t time.Time) string {
	return format(f.DateFormat, fallbackDate, t)
}

// Time formats the time of day of t in UTC.
func (f *Formatter) Time(t time.Time) string {
	return format(f.TimeFormat, fallbackTime, t)
}

func format(layout, fallback string, t time.Time) string {
	t = t.UTC()
	// strftime has no unpadded day, so format around each "%-d".
	parts := strings.Split(layout, "%-d")
	for i, part := range parts {
		if part == "" {
			continue
		}
		s, err := strftime.Format(part, t)
		if err != nil {
			return t.Format(fallback)
		}
		parts[i] = s
	}
	return strings.Join(parts, strconv.Itoa(t.Day()))
}
