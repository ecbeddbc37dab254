// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dither

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palscope/palscope/cam/cam16"
	"github.com/palscope/palscope/cam/cie"
	"github.com/palscope/palscope/palette"
	"github.com/palscope/palscope/plotcache"
)

func assertPermutation(t *testing.T, m *Matrix) {
	t.Helper()
	seen := make([]bool, m.W*m.H)
	for _, row := range m.Order {
		for _, v := range row {
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, len(seen))
			assert.False(t, seen[v], "rank %d repeated", v)
			seen[v] = true
		}
	}
}

func TestBayerPermutation(t *testing.T) {
	for n := 0; n <= 4; n++ {
		m := Bayer(n)
		assert.Equal(t, 1<<n, m.W)
		assert.Equal(t, 1<<n, m.H)
		assertPermutation(t, m)
	}
}

func TestBayerCanonical(t *testing.T) {
	m := Bayer(2)
	assert.Equal(t, [][]int{
		{0, 8, 2, 10},
		{12, 4, 14, 6},
		{3, 11, 1, 9},
		{15, 7, 13, 5},
	}, m.Order)
}

func TestBayerZeroIsConstant(t *testing.T) {
	m := Bayer(0)
	assert.Equal(t, float32(0), m.At(0, 0))
	assert.Equal(t, float32(0), m.At(17, -3))
}

func TestWhiteNoisePermutation(t *testing.T) {
	m := WhiteNoise(9, 7, rand.New(rand.NewSource(1)))
	assertPermutation(t, m)
}

func TestBlueNoisePermutation(t *testing.T) {
	m := BlueNoise(8, 8, rand.New(rand.NewSource(2)))
	assertPermutation(t, m)
}

func TestNoiseReproducibleWithSeed(t *testing.T) {
	a := BlueNoise(8, 8, rand.New(rand.NewSource(42)))
	b := BlueNoise(8, 8, rand.New(rand.NewSource(42)))
	assert.Equal(t, a.Order, b.Order)

	c := WhiteNoise(8, 8, rand.New(rand.NewSource(42)))
	d := WhiteNoise(8, 8, rand.New(rand.NewSource(42)))
	assert.Equal(t, c.Order, d.Order)
}

func TestThresholdCyclicAddressing(t *testing.T) {
	m := Bayer(1)
	assert.Equal(t, m.At(0, 0), m.At(2, 2))
	assert.Equal(t, m.At(1, 0), m.At(-1, 0))
	assert.Equal(t, m.At(0, 1), m.At(0, -1))
}

func TestThresholdRange(t *testing.T) {
	m := BlueNoise(6, 6, rand.New(rand.NewSource(3)))
	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			v := m.At(x, y)
			assert.GreaterOrEqual(t, v, float32(0))
			assert.LessOrEqual(t, v, float32(1))
		}
	}
}

func testPalette() (*palette.Palette, *cam16.Illuminant) {
	il := cam16.NewIlluminant(cie.FromTemp(5500))
	pal := palette.New([]cie.RGB255{
		{}, {R: 255, G: 255, B: 255}, {R: 255}, {G: 255}, {B: 255},
	}, il, false)
	return pal, il
}

func TestDitherIdentityOnPaletteImage(t *testing.T) {
	pal, il := testPalette()
	const w, h = 10, 6
	input := plotcache.NewPlotData(w, h)
	want := make([]cie.RGB255, w*h)
	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			rgb := pal.RGB[(i+j)%pal.N]
			want[j*w+i] = rgb
			input.Set(i, j, cam16.FromRGB(rgb, il))
		}
	}
	for _, m := range []Method{
		{Kind: None},
		{Kind: KindBayer, N: 2},
		{Kind: KindWhiteNoise, W: 4, H: 4},
		{Kind: KindBlueNoise, W: 8, H: 8},
	} {
		out := Dither(input, pal, m, rand.New(rand.NewSource(7)))
		for i := 0; i < w; i++ {
			for j := 0; j < h; j++ {
				o := out.PixOffset(i, j)
				got := cie.RGB255{R: out.Pix[o], G: out.Pix[o+1], B: out.Pix[o+2]}
				assert.Equal(t, want[j*w+i], got, "method %v at (%d,%d)", m, i, j)
			}
		}
	}
}

func TestDitherSkipsMaskedPixels(t *testing.T) {
	pal, il := testPalette()
	input := plotcache.NewPlotData(2, 1)
	input.Set(0, 0, cam16.FromRGB(cie.RGB255{R: 255}, il))
	out := Apply(input, pal, Bayer(0))
	// the masked pixel stays fully transparent
	assert.Equal(t, uint8(0), out.Pix[out.PixOffset(1, 0)+3])
	assert.Equal(t, uint8(0xff), out.Pix[out.PixOffset(0, 0)+3])
}

func TestDitherStableAcrossRuns(t *testing.T) {
	pal, il := testPalette()
	input := plotcache.NewPlotData(16, 16)
	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			input.Set(i, j, cam16.FromXYZ(cie.RGB255{
				R: uint8(i * 16), G: uint8(j * 16), B: 128,
			}.XYZ(), il))
		}
	}
	m := Method{Kind: KindBlueNoise, W: 8, H: 8}
	a := Dither(input, pal, m, rand.New(rand.NewSource(11)))
	b := Dither(input, pal, m, rand.New(rand.NewSource(11)))
	assert.Equal(t, a.Pix, b.Pix)
}
