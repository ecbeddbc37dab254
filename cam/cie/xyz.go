// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie implements the CIE colorimetry used by the analyser:
// XYZ tristimulus values and their chromaticity projections (xyY, xy,
// u'v'), the daylight locus, spectral wavelength lookup, and
// correlated colour temperature.
package cie

import "github.com/chewxy/math32"

// XYZ is a CIE tristimulus value. Y is 100 at the reference white.
type XYZ struct {
	X, Y, Z float32
}

// XYY is a CIE chromaticity with retained luminance.
type XYY struct {
	X, Y float32
	YY   float32 // luminance
}

// XY is a CIE chromaticity.
type XY struct {
	X, Y float32
}

// UV is a CIE 1960 uniform chromaticity, used for measuring
// distance to the daylight locus.
type UV struct {
	U, V float32
}

// XYY projects the tristimulus value onto chromaticity coordinates,
// keeping luminance. A black (all-zero) input maps to the origin.
func (c XYZ) XYY() XYY {
	sum := c.X + c.Y + c.Z
	if sum <= 0 {
		return XYY{}
	}
	return XYY{X: c.X / sum, Y: c.Y / sum, YY: c.Y}
}

// XY projects the tristimulus value onto chromaticity coordinates.
func (c XYZ) XY() XY {
	xyy := c.XYY()
	return XY{X: xyy.X, Y: xyy.Y}
}

// UV converts to CIE 1960 uniform chromaticity.
func (c XYZ) UV() UV {
	return c.XY().UV()
}

// XY drops the luminance component.
func (c XYY) XY() XY {
	return XY{X: c.X, Y: c.Y}
}

// WithY attaches a luminance to the chromaticity.
func (c XY) WithY(y float32) XYY {
	return XYY{X: c.X, Y: c.Y, YY: y}
}

// UV converts the chromaticity to CIE 1960 uniform coordinates.
func (c XY) UV() UV {
	d := c.Y - 0.15735*c.X + 0.2424
	return UV{
		U: (0.4661*c.X + 0.1593*c.Y) / d,
		V: 0.6581 * c.Y / d,
	}
}

// Dist returns the Euclidean distance between two uniform chromaticities.
func (c UV) Dist(o UV) float32 {
	du := c.U - o.U
	dv := c.V - o.V
	return math32.Sqrt(du*du + dv*dv)
}

// D65 is the standard daylight white point chromaticity.
func D65() XY {
	return XY{X: 0.31270, Y: 0.32900}
}

// FromTemp returns the daylight-locus chromaticity for the given
// correlated colour temperature in Kelvin, using one polynomial for
// T <= 7000 K and another above.
func FromTemp(t float32) XY {
	var x float32
	if t <= 7000 {
		x = 0.244063 +
			0.09911*1000/t +
			2.9678*1000000/(t*t) -
			4.6070*1000000000/pow9(t)
	} else {
		x = 0.237040 +
			0.24748*1000/t +
			1.9018*1000000/(t*t) -
			2.0064*1000000000/pow9(t)
	}
	y := -3*x*x + 2.87*x - 0.275
	return XY{X: x, Y: y}
}

func pow9(t float32) float32 {
	t3 := t * t * t
	return t3 * t3 * t3
}

// HueAbout returns the hue of the chromaticity around the given
// reference white, in [0, 1), with 0 pointing down the negative
// y-axis and values increasing counter-clockwise:
//
//	 0.5
//	/   \
//	0.75  0.25
//	\   /
//	 1|0
func (c XY) HueAbout(o XY) float32 {
	dx := c.X - o.X
	dy := c.Y - o.Y
	a := math32.Atan2(dy, dx)
	a += math32.Pi / 2
	a /= 2 * math32.Pi
	return wrapUnit(a)
}

func wrapUnit(a float32) float32 {
	for a < 0 {
		a++
	}
	for a >= 1 {
		a--
	}
	return a
}
