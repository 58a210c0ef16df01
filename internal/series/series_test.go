// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	in := `timestamp,value
# comment
2016-10-26T00:00:00Z, 3.5
1477353600,-1
2016-10-27T12:00:00+02:00,NaN
`
	s, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, s, 3)

	assert.Equal(t, time.Date(2016, 10, 25, 0, 0, 0, 0, time.UTC), s[0].T)
	assert.Equal(t, -1.0, s[0].V)
	assert.Equal(t, time.Date(2016, 10, 26, 0, 0, 0, 0, time.UTC), s[1].T)
	assert.Equal(t, time.Date(2016, 10, 27, 10, 0, 0, 0, time.UTC), s[2].T)
	assert.True(t, math.IsNaN(s[2].V))

	start, end := s.Window()
	assert.Equal(t, s[0].T, start)
	assert.Equal(t, s[2].T, end)

	min, max := s.Range()
	assert.Equal(t, -1.0, min)
	assert.Equal(t, 3.5, max)
}

func TestReadErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"timestamp,value\n",
		"1,2,3\n",
		"1,2\nyesterday,3\n",
		"1,2\n3,x\n",
	} {
		_, err := Read(strings.NewReader(in))
		assert.Error(t, err, in)
	}
}

func TestRangeEmpty(t *testing.T) {
	min, max := Series{{V: math.NaN()}}.Range()
	assert.Zero(t, min)
	assert.Zero(t, max)

	start, end := Series(nil).Window()
	assert.True(t, start.IsZero())
	assert.True(t, end.IsZero())
}
