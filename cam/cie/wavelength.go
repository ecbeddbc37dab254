// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"math"

	"github.com/chewxy/math32"
)

// Wavelength is monochromatic radiation, in ångströms.
// The analyser samples the visible span 4100..6650 Å in 5 Å steps.
type Wavelength float32

const (
	// WavelengthMin is the shortest sampled wavelength in ångströms.
	WavelengthMin = 4100
	// WavelengthMax is the longest sampled wavelength in ångströms.
	WavelengthMax = 6650
	// WavelengthStep is the sampling step in ångströms.
	WavelengthStep = 5
)

// XYZ evaluates an analytic fit of the CIE standard observer colour
// matching functions at the wavelength. Each channel is a sum of
// Gaussians with distinct widths on each side of the mode. The sums
// are evaluated in float64 and narrowed at the end.
func (wl Wavelength) XYZ() XYZ {
	w := float64(wl)
	x := brokenGaussian(w, 1.056, 5998, 379, 310) +
		brokenGaussian(w, 0.362, 4420, 160, 267) +
		brokenGaussian(w, -0.065, 5011, 204, 262)
	y := brokenGaussian(w, 0.821, 5688, 469, 405) +
		brokenGaussian(w, 0.286, 5309, 163, 311)
	z := brokenGaussian(w, 1.217, 4370, 118, 360) +
		brokenGaussian(w, 0.681, 4590, 260, 138)
	return XYZ{X: float32(x) * 100, Y: float32(y) * 100, Z: float32(z) * 100}
}

// XY returns the chromaticity of the monochromatic stimulus.
func (wl Wavelength) XY() XY {
	return wl.XYZ().XY()
}

func brokenGaussian(x, a, mu, s1, s2 float64) float64 {
	s := s1
	if x > mu {
		s = s2
	}
	t := (x - mu) / s
	return a * math.Exp(-(t*t)/2)
}

// HasSpectral reports whether the hue of the chromaticity about the
// given reference white lies within the arc spanned by the spectral
// locus (i.e. the colour is not a purple).
func (c XY) HasSpectral(o XY) bool {
	h := c.HueAbout(o)
	hMin := Wavelength(WavelengthMax).XY().HueAbout(o)
	hMax := Wavelength(WavelengthMin).XY().HueAbout(o)
	return hMin <= h && h <= hMax
}

// NearestSpectral scans the sampled wavelength table and returns the
// wavelength whose hue about the reference white is closest to that
// of the chromaticity.
func (c XY) NearestSpectral(o XY) Wavelength {
	h := c.HueAbout(o)
	best := Wavelength(0)
	min := float32(math32.MaxFloat32)
	for wl := WavelengthMin; wl <= WavelengthMax; wl += WavelengthStep {
		sh := Wavelength(wl).XY().HueAbout(o)
		d := math32.Abs(sh - h)
		if d < min {
			best = Wavelength(wl)
			min = d
		}
	}
	return best
}

// TryNearestSpectral returns the nearest spectral wavelength and true
// when the colour has one, i.e. when [XY.HasSpectral] holds.
func (c XY) TryNearestSpectral(o XY) (Wavelength, bool) {
	if !c.HasSpectral(o) {
		return 0, false
	}
	return c.NearestSpectral(o), true
}
