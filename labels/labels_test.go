// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package labels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestValue(t *testing.T) {
	f := New(language.English)
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{1500, "1.5k"},
		{-1500, "-1.5k"},
		{2000000, "2M"},
		{3.2e9, "3.2G"},
		{33.333, "33"},
		{66.667, "67"},
		{2.5, "2.5"},
		{0.25, "0.25"},
		{0.005, "5m"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, f.Value(test.v), "Value(%v)", test.v)
	}
}

func TestDateTime(t *testing.T) {
	f := New(language.English)
	tests := []struct {
		at         time.Time
		date, time string
	}{
		{time.Date(2016, 10, 29, 20, 30, 0, 0, time.UTC), "Oct 29, 2016", "8:30 PM"},
		{time.Date(2016, 11, 1, 9, 5, 0, 0, time.UTC), "Nov 1, 2016", "9:05 AM"},
		{time.Date(2016, 12, 31, 23, 59, 0, 0, time.UTC), "Dec 31, 2016", "11:59 PM"},
		{time.Date(2017, 1, 2, 0, 0, 0, 0, time.UTC), "Jan 2, 2017", "12:00 AM"},
		{time.Date(2017, 1, 2, 10, 0, 0, 0, time.UTC), "Jan 2, 2017", "10:00 AM"},
	}
	for _, test := range tests {
		assert.Equal(t, test.date, f.Date(test.at), "Date(%v)", test.at)
		assert.Equal(t, test.time, f.Time(test.at), "Time(%v)", test.at)
	}

	// Labels are always in UTC.
	at := tests[0].at
	pdt := time.FixedZone("PDT", -7*60*60)
	assert.Equal(t, "Oct 29, 2016", f.Date(at.In(pdt)))
	assert.Equal(t, "8:30 PM", f.Time(at.In(pdt)))
}

func TestCustomLayout(t *testing.T) {
	f := New(language.English)
	f.DateFormat = "%-d/%m/%Y"
	at := time.Date(2016, 11, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "1/11/2016", f.Date(at))

	f.DateFormat = "%Y-%m-%d"
	assert.Equal(t, "2016-11-01", f.Date(at))
}
