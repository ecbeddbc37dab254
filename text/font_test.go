// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palscope/palscope/cam/cie"
)

type recorder struct {
	pixels map[[2]int]cie.RGB255
}

func newRecorder() *recorder {
	return &recorder{pixels: map[[2]int]cie.RGB255{}}
}

func (r *recorder) PutPixel(x, y int, c cie.RGB255) {
	r.pixels[[2]int{x, y}] = c
}

func TestFontParses(t *testing.T) {
	f := New()
	require.NotNil(t, f)
	g := f.Glyph('A')
	require.NotEmpty(t, g)
	assert.Len(t, g, f.CharHeight('A'))
	assert.Len(t, g[0], f.CharWidth('A'))
}

func TestGlyphFallback(t *testing.T) {
	f := New()
	assert.Equal(t, f.Glyph('?'), f.Glyph('©'))
}

func TestWideGlyphsAreSpecial(t *testing.T) {
	f := New()
	assert.Greater(t, f.CharWidth('M'), f.CharWidth('I'))
	assert.Greater(t, f.CharWidth('W'), f.CharWidth('I'))
}

func TestStrWidth(t *testing.T) {
	f := New()
	assert.Equal(t, 0, f.StrWidth(""))
	one := f.StrWidth("A")
	assert.Equal(t, f.CharWidth('A'), one)
	// two characters gain a 1px gap
	assert.Equal(t, 2*one+1, f.StrWidth("AA"))
}

func TestRenderString(t *testing.T) {
	f := New()
	r := newRecorder()
	c := cie.RGB255{R: 255}
	f.RenderString(r, 0, 0, "AB", c)
	require.NotEmpty(t, r.pixels)
	minX, maxX := 1<<30, -1
	for p := range r.pixels {
		if p[0] < minX {
			minX = p[0]
		}
		if p[0] > maxX {
			maxX = p[0]
		}
	}
	assert.GreaterOrEqual(t, minX, 0)
	assert.Less(t, maxX, f.StrWidth("AB"))
}

func TestAnchors(t *testing.T) {
	dx, dy := NW.Align(10, 6)
	assert.Equal(t, 0, dx)
	assert.Equal(t, 0, dy)
	dx, dy = C.Align(10, 6)
	assert.Equal(t, -5, dx)
	assert.Equal(t, -3, dy)
	dx, dy = SE.Align(10, 6)
	assert.Equal(t, -10, dx)
	assert.Equal(t, -6, dy)
}

func TestStatusGlyphShapes(t *testing.T) {
	for _, g := range []Glyph{OkGlyph, WarnGlyph, AlertGlyph} {
		require.Len(t, g, 7)
		for _, row := range g {
			assert.Len(t, row, 7)
		}
	}
}
