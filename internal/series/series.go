// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series reads time series from CSV.
package series

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// A Point is one sample of a series.
type Point struct {
	T time.Time
	V float64
}

// A Series is a list of points sorted by time.
type Series []Point

// Open reads the CSV file at path. See Read.
func Open(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Read parses "timestamp,value" records. Timestamps are RFC 3339 or
// Unix seconds. A first record whose value does not parse is treated
// as a header. The result is sorted by time.
func Read(r io.Reader) (Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var s Series
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("reading series: %w", err)
		}
		v, verr := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if verr != nil && len(s) == 0 && line == 1 {
			// Header.
			continue
		} else if verr != nil {
			return nil, fmt.Errorf("record %d: bad value: %w", line, verr)
		}
		t, err := parseTime(rec[0])
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", line, err)
		}
		s = append(s, Point{t, v})
	}
	if len(s) == 0 {
		return nil, errors.New("series has no points")
	}
	sort.SliceStable(s, func(i, j int) bool { return s[i].T.Before(s[j].T) })
	return s, nil
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(sec) || math.IsInf(sec, 0) {
		return time.Time{}, fmt.Errorf("bad timestamp %q", s)
	}
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(frac*1e9)).UTC(), nil
}

// Window returns the time span of s.
func (s Series) Window() (start, end time.Time) {
	if len(s) == 0 {
		return
	}
	return s[0].T, s[len(s)-1].T
}

// Range returns the minimum and maximum finite values in s. If s has
// no finite values, both are 0.
func (s Series) Range() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, p := range s {
		if math.IsNaN(p.V) || math.IsInf(p.V, 0) {
			continue
		}
		min, max = math.Min(min, p.V), math.Max(max, p.V)
	}
	if min > max {
		return 0, 0
	}
	return min, max
}
