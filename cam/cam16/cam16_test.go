// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palscope/palscope/cam/cie"
)

func d55() *Illuminant {
	return NewIlluminant(cie.FromTemp(5500))
}

func TestIlluminantState(t *testing.T) {
	il := d55()
	assert.Equal(t, float32(100), il.YW)
	assert.GreaterOrEqual(t, il.D, float32(0))
	assert.LessOrEqual(t, il.D, float32(1))
	assert.Greater(t, il.FL, float32(0))
	assert.InDelta(t, 1.48+0.4472, il.Z, 1e-3)
	assert.Equal(t, il.NBB, il.NCB)
	assert.Greater(t, il.AW, float32(0))
}

func TestAchromaticPoint(t *testing.T) {
	// the adapted white point keeps full lightness and only a small
	// opponent residual (the dim-surround adaptation is partial)
	il := d55()
	white := FromXYZ(cie.XYZ{X: il.XW, Y: il.YW, Z: il.ZW}, il)
	assert.InDelta(t, 0, white.A, 3)
	assert.InDelta(t, 0, white.B, 3)
	assert.InDelta(t, 100, white.J, 0.1)
}

func TestDeterminism(t *testing.T) {
	il := d55()
	c := cie.RGB255{R: 12, G: 200, B: 99}
	first := FromRGB(c, il)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, FromRGB(c, il))
	}
}

func TestGreyscaleStaysNeutral(t *testing.T) {
	// under an illuminant matching the sRGB white, a grey ramp keeps
	// its opponent components near zero
	il := NewIlluminant(cie.RGB255{R: 255, G: 255, B: 255}.XY())
	for v := 10; v <= 255; v += 35 {
		c := FromRGB(cie.RGB255{R: uint8(v), G: uint8(v), B: uint8(v)}, il)
		assert.InDelta(t, 0, c.A, 3, "v=%d", v)
		assert.InDelta(t, 0, c.B, 3, "v=%d", v)
	}
}

func TestLightnessOrdering(t *testing.T) {
	il := d55()
	black := FromRGB(cie.RGB255{}, il)
	grey := FromRGB(cie.RGB255{R: 127, G: 127, B: 127}, il)
	white := FromRGB(cie.RGB255{R: 255, G: 255, B: 255}, il)
	assert.Less(t, black.J, grey.J)
	assert.Less(t, grey.J, white.J)
}

func TestDist(t *testing.T) {
	a := UCS{J: 10, A: 3, B: 4}
	b := UCS{J: 10, A: 0, B: 0}
	assert.InDelta(t, 5, a.Dist(b), 1e-6)
	assert.Equal(t, a.Dist(b), b.Dist(a))
	assert.Equal(t, float32(0), a.Dist(a))

	// C plays no part in distance
	c := UCS{J: 10, A: 3, B: 4, C: 99}
	assert.Equal(t, a.Dist(b), c.Dist(b))
}

func TestDistLiMatch(t *testing.T) {
	a := UCS{J: 30, A: 10, B: 0}
	b := UCS{J: 50, A: 0, B: 0}
	assert.InDelta(t, a.Dist(b), a.DistLiMatch(b, 0), 1e-6)
	assert.InDelta(t, 20, a.DistLiMatch(b, 1), 1e-6)
	mid := a.DistLiMatch(b, 0.5)
	assert.InDelta(t, (a.Dist(b)+20)/2, mid, 1e-5)
}

func TestComplementary(t *testing.T) {
	c := UCS{J: 40, A: 12, B: -7, C: 25}
	comp := c.Complementary()
	assert.Equal(t, UCS{J: 40, A: -12, B: 7, C: 25}, comp)
	assert.Equal(t, c, comp.Complementary())
}

func TestMix(t *testing.T) {
	a := UCS{J: 0, A: -10, B: 4, C: 0}
	b := UCS{J: 100, A: 10, B: 8, C: 50}
	assert.Equal(t, a, Mix(a, b, 0))
	assert.Equal(t, b, Mix(a, b, 1))
	assert.Equal(t, UCS{J: 50, A: 0, B: 6, C: 25}, Midpoint(a, b))
}

func TestHue(t *testing.T) {
	assert.InDelta(t, 0, UCS{A: 1}.Hue(), 1e-6)
	assert.InDelta(t, 0.25, UCS{B: 1}.Hue(), 1e-6)
	assert.InDelta(t, 0.5, UCS{A: -1}.Hue(), 1e-6)
	assert.InDelta(t, 0.75, UCS{B: -1}.Hue(), 1e-6)
}
