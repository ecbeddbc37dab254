// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dither

import (
	"fmt"
	"image"
	"math/rand"

	"github.com/palscope/palscope/base/logx"
	"github.com/palscope/palscope/palette"
	"github.com/palscope/palscope/plotcache"
)

// Kind selects a threshold generation method.
type Kind int

const (
	// None does plain colour reduction: a single zero threshold.
	None Kind = iota
	// KindBayer is the recursive ordered matrix.
	KindBayer
	// KindWhiteNoise is a random rank permutation.
	KindWhiteNoise
	// KindBlueNoise is the void-and-cluster matrix.
	KindBlueNoise
)

// Method is a fully parameterised dithering method.
type Method struct {
	Kind Kind
	N    int // Bayer: matrix is 2^N on a side
	W, H int // noise matrix dimensions
}

// DefaultMethod is blue noise at 14×14.
func DefaultMethod() Method {
	return Method{Kind: KindBlueNoise, W: 14, H: 14}
}

// Matrix generates the threshold matrix for the method, drawing
// randomness for the noise methods from the given source.
func (m Method) Matrix(rng *rand.Rand) *Matrix {
	switch m.Kind {
	case KindBayer:
		logx.PrintfInfo("Creating threshold matrix (Bayer, %dx%d)\n", 1<<m.N, 1<<m.N)
		return Bayer(m.N)
	case KindWhiteNoise:
		logx.PrintfInfo("Creating threshold matrix (White noise, %dx%d)\n", m.W, m.H)
		return WhiteNoise(m.W, m.H, rng)
	case KindBlueNoise:
		logx.PrintfInfo("Creating threshold matrix (Blue noise, %dx%d)\n", m.W, m.H)
		return BlueNoise(m.W, m.H, rng)
	}
	return Bayer(0)
}

func (m Method) String() string {
	switch m.Kind {
	case KindBayer:
		return fmt.Sprintf("bayer %d", m.N)
	case KindWhiteNoise:
		return fmt.Sprintf("whitenoise %dx%d", m.W, m.H)
	case KindBlueNoise:
		return fmt.Sprintf("bluenoise %dx%d", m.W, m.H)
	}
	return "nodither"
}

// Apply converts an image already projected into CAM16-UCS to
// palette colours under the threshold structure: each pixel's
// lightness is jittered by the threshold, scaled by the palette's
// lightness spread, before the nearest lookup. Unset input cells are
// left untouched in the output.
func Apply(input *plotcache.PlotData, pal *palette.Palette, th Threshold) *image.RGBA {
	jMin := pal.CAM[0].J
	jMax := pal.CAM[0].J
	for _, c := range pal.CAM {
		if c.J < jMin {
			jMin = c.J
		}
		if c.J > jMax {
			jMax = c.J
		}
	}
	jSpread := (jMax - jMin) / float32(pal.N)

	out := image.NewRGBA(image.Rect(0, 0, input.W, input.H))
	for i := 0; i < input.W; i++ {
		for j := 0; j < input.H; j++ {
			c, ok := input.At(i, j)
			if !ok {
				continue
			}
			c.J += jSpread * (th.At(i, j) - 0.5)
			rgb := pal.Nearest(c)
			o := out.PixOffset(i, j)
			out.Pix[o+0] = rgb.R
			out.Pix[o+1] = rgb.G
			out.Pix[o+2] = rgb.B
			out.Pix[o+3] = 0xff
		}
	}
	return out
}

// Dither generates the method's threshold matrix and applies it.
func Dither(input *plotcache.PlotData, pal *palette.Palette, m Method, rng *rand.Rand) *image.RGBA {
	matrix := m.Matrix(rng)
	logx.PrintlnInfo("Dithering in progress...")
	return Apply(input, pal, matrix)
}
