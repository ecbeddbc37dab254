// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette owns a colour palette together with its CAM16-UCS
// projection, and implements the perceptual analyses computed over
// it: nearest-colour lookup, UI role selection, neutralisers,
// spectral and temperature distributions, useful mixes, the
// acyclicity test and the internal similarity score.
package palette

import (
	"sort"

	"github.com/chewxy/math32"

	"github.com/palscope/palscope/cam/cam16"
	"github.com/palscope/palscope/cam/cie"
)

// Palette is an analysed palette. The RGB, XYZ and CAM slices are
// parallel arrays of length N. It is immutable after New.
type Palette struct {
	N   int
	RGB []cie.RGB255
	XYZ []cie.XYZ
	CAM []cam16.UCS

	// Sorted holds palette indices in ascending lightness order.
	Sorted []int

	// UI role indices: black, background, foreground and title text.
	Bl, Bg, Fg, Tl int

	// UI role colours. These equal RGB[Bl] etc unless the grey-UI
	// override is active.
	BlRGB, BgRGB, FgRGB, TlRGB cie.RGB255
}

// New projects the colours under the given adaptation state and picks
// the UI roles. With greyUI set, the role colours are overridden with
// black, mid-grey and white while the role indices stay palette-derived.
func New(rgb []cie.RGB255, il *cam16.Illuminant, greyUI bool) *Palette {
	n := len(rgb)
	p := &Palette{N: n, RGB: rgb}
	p.XYZ = make([]cie.XYZ, n)
	p.CAM = make([]cam16.UCS, n)
	for i, c := range rgb {
		p.XYZ[i] = c.XYZ()
		p.CAM[i] = cam16.FromXYZ(p.XYZ[i], il)
	}
	p.Sorted = make([]int, n)
	for i := range p.Sorted {
		p.Sorted[i] = i
	}
	sort.SliceStable(p.Sorted, func(a, b int) bool {
		return p.CAM[p.Sorted[a]].J < p.CAM[p.Sorted[b]].J
	})

	p.Bl = p.minimise(func(i int, c cam16.UCS) float32 {
		return c.Dist(cam16.UCS{})
	})
	p.Bg = p.minimise(func(i int, c cam16.UCS) float32 {
		if i == p.Bl {
			return math32.MaxFloat32
		}
		notGrey := 100 - c.Dist(cam16.UCS{J: 50})
		notBl := c.DistLiMatch(p.CAM[p.Bl], 0.6)
		return -(math32.Pow(notBl, 0.02) * math32.Pow(notGrey, 0.98))
	})
	p.Fg = p.minimise(func(i int, c cam16.UCS) float32 {
		if i == p.Bl {
			return math32.MaxFloat32
		}
		return -c.Dist(p.CAM[p.Bl])
	})
	p.Tl = p.minimise(func(i int, c cam16.UCS) float32 {
		if i == p.Bg {
			return math32.MaxFloat32
		}
		return -c.DistLiMatch(p.CAM[p.Bg], 0.6)
	})

	if greyUI {
		p.BlRGB = cie.RGB255{R: 0, G: 0, B: 0}
		p.BgRGB = cie.RGB255{R: 127, G: 127, B: 127}
		p.FgRGB = cie.RGB255{R: 255, G: 255, B: 255}
		p.TlRGB = cie.RGB255{R: 255, G: 255, B: 255}
	} else {
		p.BlRGB = rgb[p.Bl]
		p.BgRGB = rgb[p.Bg]
		p.FgRGB = rgb[p.Fg]
		p.TlRGB = rgb[p.Tl]
	}
	return p
}

// minimise returns the palette index with the lowest score.
func (p *Palette) minimise(score func(i int, c cam16.UCS) float32) int {
	min := float32(math32.MaxFloat32)
	argmin := 0
	for i, c := range p.CAM {
		d := score(i, c)
		if d < min {
			argmin = i
			min = d
		}
	}
	return argmin
}

// Nearest returns the palette colour closest to the given point in
// CAM16-UCS.
func (p *Palette) Nearest(x cam16.UCS) cie.RGB255 {
	return p.RGB[p.NearestIndex(x)]
}

// NearestIndex returns the index of the palette colour closest to the
// given point.
func (p *Palette) NearestIndex(x cam16.UCS) int {
	min := float32(math32.MaxFloat32)
	argmin := 0
	for i, y := range p.CAM {
		d := x.Dist(y)
		if d < min {
			argmin = i
			min = d
		}
	}
	return argmin
}

// NearestLiMatch is Nearest under the lightness-weighted distance mix.
func (p *Palette) NearestLiMatch(x cam16.UCS, t float32) cie.RGB255 {
	min := float32(math32.MaxFloat32)
	argmin := 0
	for i, y := range p.CAM {
		d := x.Dist(y)*(1-t) + math32.Abs(x.J-y.J)*t
		if d < min {
			argmin = i
			min = d
		}
	}
	return p.RGB[argmin]
}

// Neutraliser returns the index of the palette colour best placed to
// neutralise x: the entry nearest to x's complementary under a mild
// lightness-weighted distance.
func (p *Palette) Neutraliser(x cam16.UCS) int {
	z := x.Complementary()
	return p.minimise(func(i int, c cam16.UCS) float32 {
		return z.DistLiMatch(c, 0.1)
	})
}

// InternalSimilarity scores how repetitive the palette is: the ratio
// of mean to minimum pairwise distance, normalised by n^(2/3).
// It is NaN when two entries coincide.
func (p *Palette) InternalSimilarity() float32 {
	min := float32(math32.MaxFloat32)
	mean := float32(0)
	pairN := p.N * (p.N - 1) / 2
	for i := 0; i < p.N; i++ {
		for j := i + 1; j < p.N; j++ {
			d := p.CAM[i].Dist(p.CAM[j])
			mean += d / float32(pairN)
			if d < min {
				min = d
			}
		}
	}
	if min <= 0 {
		return math32.NaN()
	}
	score := mean / min
	return score / math32.Pow(float32(p.N), 2.0/3.0)
}
