// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBRoundTrip(t *testing.T) {
	for _, c := range []RGB255{
		{0, 0, 0}, {255, 255, 255}, {1, 2, 3}, {127, 128, 129}, {255, 0, 68},
	} {
		assert.Equal(t, c, c.Float().Bytes())
	}
}

func TestSRGBToLinearComp(t *testing.T) {
	assert.Equal(t, float32(0), SRGBToLinearComp(0))
	assert.InDelta(t, 1, SRGBToLinearComp(1), 1e-6)
	// below the linear knee
	assert.InDelta(t, 25*0.04/323, SRGBToLinearComp(0.04), 1e-7)
	// mid grey
	assert.InDelta(t, 0.2140, SRGBToLinearComp(0.5), 1e-3)
}

func TestWhiteXYZ(t *testing.T) {
	xyz := RGB255{255, 255, 255}.XYZ()
	assert.InDelta(t, 95.05, xyz.X, 0.05)
	assert.InDelta(t, 100.0, xyz.Y, 0.05)
	assert.InDelta(t, 108.9, xyz.Z, 0.1)
}

func TestChromaticityProjections(t *testing.T) {
	xyz := XYZ{X: 50, Y: 100, Z: 50}
	xy := xyz.XY()
	assert.InDelta(t, 0.25, xy.X, 1e-6)
	assert.InDelta(t, 0.5, xy.Y, 1e-6)
	xyy := xyz.XYY()
	assert.Equal(t, float32(100), xyy.YY)
	assert.Equal(t, xy, xyy.XY())

	// black projects to the origin rather than dividing by zero
	assert.Equal(t, XY{}, XYZ{}.XY())
}

func TestFromTemp(t *testing.T) {
	// pinned values for the standard presets
	xy := FromTemp(6503.51)
	assert.InDelta(t, 0.3295, xy.X, 0.001)
	assert.InDelta(t, 0.3449, xy.Y, 0.002)
	xy = FromTemp(5500)
	assert.InDelta(t, 0.3602, xy.X, 0.001)

	// both polynomial branches produce plausible daylight points
	for _, temp := range []float32{4000, 5500, 7000, 7500, 25000} {
		xy := FromTemp(temp)
		assert.Greater(t, xy.X, float32(0.2), "T=%v", temp)
		assert.Less(t, xy.X, float32(0.6), "T=%v", temp)
		assert.Greater(t, xy.Y, float32(0.2), "T=%v", temp)
		assert.Less(t, xy.Y, float32(0.45), "T=%v", temp)
	}
}

func TestCCTRoundTrip(t *testing.T) {
	for _, temp := range []float32{1000, 3000, 5500, 6500, 10000, 25000} {
		got, dist, ok := FromTemp(temp).UV().CCT()
		assert.True(t, ok, "T=%v", temp)
		assert.InDelta(t, temp, got, 1, "T=%v", temp)
		assert.InDelta(t, 0, dist, 1e-5, "T=%v", temp)
	}
}

func TestCCTOffLocus(t *testing.T) {
	// saturated green is nowhere near the daylight locus
	_, _, ok := RGB255{0, 255, 0}.XYZ().UV().CCT()
	assert.False(t, ok)
}

func TestHueAbout(t *testing.T) {
	o := D65()
	up := XY{X: o.X, Y: o.Y + 0.1}
	right := XY{X: o.X + 0.1, Y: o.Y}
	down := XY{X: o.X, Y: o.Y - 0.1}
	assert.InDelta(t, 0.5, up.HueAbout(o), 1e-6)
	assert.InDelta(t, 0.25, right.HueAbout(o), 1e-6)
	// straight down is the wrap point
	h := down.HueAbout(o)
	assert.True(t, h < 1e-6 || h > 1-1e-6, "h=%v", h)
}

func TestSpectralLookup(t *testing.T) {
	o := D65()

	// a red lies on the spectral arc, near the long end of the table
	red := RGB255{255, 0, 0}.XY()
	assert.True(t, red.HasSpectral(o))
	wl, ok := red.TryNearestSpectral(o)
	assert.True(t, ok)
	assert.Greater(t, float32(wl), float32(6000))

	// a green sits in the middle of the table
	green := RGB255{0, 255, 0}.XY()
	wl, ok = green.TryNearestSpectral(o)
	assert.True(t, ok)
	assert.Greater(t, float32(wl), float32(5000))
	assert.Less(t, float32(wl), float32(5600))

	// magenta is a purple: no spectral wavelength
	_, ok = RGB255{255, 0, 255}.XY().TryNearestSpectral(o)
	assert.False(t, ok)
}

func TestWavelengthXYZ(t *testing.T) {
	// the CMF fit peaks in Y near 555 nm
	mid := Wavelength(5550).XYZ()
	assert.InDelta(t, 100, mid.Y, 5)
	lo := Wavelength(WavelengthMin).XYZ()
	hi := Wavelength(WavelengthMax).XYZ()
	assert.Less(t, lo.Y, mid.Y)
	assert.Less(t, hi.Y, mid.Y)
	// short wavelengths are Z-heavy, long ones X-heavy
	assert.Greater(t, lo.Z, lo.X)
	assert.Greater(t, hi.X, hi.Z)
}
