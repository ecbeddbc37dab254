// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palscope/palscope/cam/cam16"
	"github.com/palscope/palscope/cam/cie"
)

func d65() *cam16.Illuminant {
	return cam16.NewIlluminant(cie.FromTemp(6503.51))
}

var primaries = []cie.RGB255{
	{R: 255}, {G: 255}, {B: 255},
}

var eightcol = []cie.RGB255{
	{R: 0x1a, G: 0x1c, B: 0x2c},
	{R: 0x5d, G: 0x27, B: 0x5d},
	{R: 0xb1, G: 0x3e, B: 0x53},
	{R: 0xef, G: 0x7d, B: 0x57},
	{R: 0xff, G: 0xcd, B: 0x75},
	{R: 0xa7, G: 0xf0, B: 0x70},
	{R: 0x38, G: 0xb7, B: 0x64},
	{R: 0x25, G: 0x71, B: 0x79},
}

func TestParallelArrays(t *testing.T) {
	p := New(eightcol, d65(), false)
	assert.Equal(t, 8, p.N)
	assert.Len(t, p.RGB, 8)
	assert.Len(t, p.XYZ, 8)
	assert.Len(t, p.CAM, 8)
	assert.Len(t, p.Sorted, 8)
}

func TestSortedAscendingLightness(t *testing.T) {
	p := New(eightcol, d65(), false)
	for i := 1; i < p.N; i++ {
		assert.LessOrEqual(t, p.CAM[p.Sorted[i-1]].J, p.CAM[p.Sorted[i]].J)
	}
}

func TestRoleDisjointness(t *testing.T) {
	for _, pal := range [][]cie.RGB255{primaries, eightcol} {
		p := New(pal, d65(), false)
		assert.NotEqual(t, p.Bl, p.Bg)
		assert.NotEqual(t, p.Bl, p.Fg)
		assert.NotEqual(t, p.Bg, p.Tl)
	}
}

func TestRolesPickDarkestBlack(t *testing.T) {
	p := New(eightcol, d65(), false)
	// the black role is the perceptually darkest entry
	assert.Equal(t, cie.RGB255{R: 0x1a, G: 0x1c, B: 0x2c}, p.RGB[p.Bl])
	assert.Equal(t, p.RGB[p.Bl], p.BlRGB)
}

func TestGreyUIOverride(t *testing.T) {
	p := New(eightcol, d65(), true)
	assert.Equal(t, cie.RGB255{}, p.BlRGB)
	assert.Equal(t, cie.RGB255{R: 127, G: 127, B: 127}, p.BgRGB)
	assert.Equal(t, cie.RGB255{R: 255, G: 255, B: 255}, p.FgRGB)
	assert.Equal(t, cie.RGB255{R: 255, G: 255, B: 255}, p.TlRGB)
	// role indices are still derived from the palette
	assert.Less(t, p.Bl, p.N)
}

func TestNearestIsIdentityOnMembers(t *testing.T) {
	p := New(eightcol, d65(), false)
	for i, c := range p.CAM {
		assert.Equal(t, p.RGB[i], p.Nearest(c))
		assert.Equal(t, p.RGB[i], p.NearestLiMatch(c, 0.5))
	}
}

func TestNeutraliserOpposesChroma(t *testing.T) {
	p := New(primaries, d65(), false)
	for i := range p.CAM {
		j := p.Neutraliser(p.CAM[i])
		require.Less(t, j, p.N)
		// a colour never neutralises itself among the primaries
		assert.NotEqual(t, i, j)
	}
}

func TestInternalSimilarity(t *testing.T) {
	two := New([]cie.RGB255{{}, {R: 255, G: 255, B: 255}}, d65(), false)
	iss := two.InternalSimilarity()
	// with one pair, mean equals min
	assert.InDelta(t, 1/math.Pow(2, 2.0/3.0), float64(iss), 1e-5)

	p := New(primaries, d65(), false)
	iss = p.InternalSimilarity()
	assert.False(t, math.IsNaN(float64(iss)))
	assert.Greater(t, iss, float32(0))
}

func TestIsAcyclic(t *testing.T) {
	assert.True(t, New([]cie.RGB255{{}, {R: 255, G: 255, B: 255}}, d65(), false).IsAcyclic())
	assert.True(t, New(primaries, d65(), false).IsAcyclic())
}

func TestUsefulMixes(t *testing.T) {
	p := New(eightcol, d65(), false)
	mixes := p.UsefulMixes(10)
	assert.Len(t, mixes, 10)
	seen := map[Pair]bool{}
	for _, m := range mixes {
		assert.Less(t, m.I, m.J)
		assert.False(t, seen[m], "pair %v picked twice", m)
		seen[m] = true
	}
	// more mixes than pairs exist clamps to the pair count
	two := New([]cie.RGB255{{}, {R: 255, G: 255, B: 255}}, d65(), false)
	assert.Len(t, two.UsefulMixes(10), 1)
}

func TestUsefulMixesFirstPickIsFarthest(t *testing.T) {
	p := New(eightcol, d65(), false)
	first := p.UsefulMixes(1)[0]
	best := p.distToNearest(p.Mix(first))
	for i := 0; i < p.N-1; i++ {
		for j := i + 1; j < p.N; j++ {
			d := p.distToNearest(p.Mix(Pair{I: i, J: j}))
			assert.LessOrEqual(t, d, best+1e-4)
		}
	}
}

func TestSpectralStats(t *testing.T) {
	p := New(primaries, d65(), false)
	stats, points := p.SpectralStats(d65())
	// red and green are spectral; blue is too, magenta would not be
	assert.NotEmpty(t, stats)
	sum := float32(0)
	for _, v := range stats {
		sum += v
	}
	assert.InDelta(t, 1, sum, 1e-4)
	for i, wl := range points {
		assert.Less(t, i, p.N)
		assert.GreaterOrEqual(t, wl, float32(cie.WavelengthMin))
		assert.LessOrEqual(t, wl, float32(cie.WavelengthMax))
	}
}

func TestCCTStats(t *testing.T) {
	// near-neutral warm and cold colours sit close to the locus
	p := New([]cie.RGB255{
		{R: 255, G: 244, B: 229}, // warm white
		{R: 201, G: 226, B: 255}, // cold white
	}, d65(), false)
	stats, points := p.CCTStats()
	assert.NotEmpty(t, stats)
	assert.NotEmpty(t, points)
	sum := float32(0)
	for _, v := range stats {
		sum += v
	}
	assert.InDelta(t, 1, sum, 1e-4)
}
