// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import (
	"github.com/chewxy/math32"

	"github.com/palscope/palscope/cam/cie"
)

// UCS is a colour in CAM16-UCS coordinates. J is the compressed
// lightness, A and B the uniform-space opponent components. C retains
// the pre-UCS chroma, which several analyses use for weighting;
// it does not take part in distance.
type UCS struct {
	J, A, B, C float32
}

// FromXYZ runs the CAM16 forward transform under the given adaptation
// state and returns the UCS coordinates. The transform is total: out
// of gamut and negative inputs pass through the signed non-linearity.
func FromXYZ(c cie.XYZ, il *Illuminant) UCS {
	r, g, b := XYZToLMS(c.X, c.Y, c.Z)

	rc := r * il.DR
	gc := g * il.DG
	bc := b * il.DB

	ra := adapt(rc, il.FL)
	ga := adapt(gc, il.FL)
	ba := adapt(bc, il.FL)

	a := ra - 12*ga/11 + ba/11
	bb := (ra + ga - 2*ba) / 9

	h := wrapUnit(math32.Atan2(bb, a)/(2*math32.Pi)) * 360
	hh := h
	if h < 20.14 {
		hh += 360
	}

	et := 0.25 * (math32.Cos(hh/180*math32.Pi+2) + 3.8)
	ach := il.NBB * (2*ra + ga + 0.05*ba - 0.305)
	j := 100 * math32.Pow(ach/il.AW, SurroundC*il.Z)
	t := (50000.0 / 13 * SurroundNc * il.NCB * et * math32.Hypot(a, bb)) /
		(ra + ga + 21.0/20*ba)
	chr := math32.Pow(t, 0.9) * math32.Sqrt(j/100) *
		math32.Pow(1.64-math32.Pow(0.29, il.N), 0.73)
	m := chr * math32.Pow(il.FL, 0.25)

	jj := j * 1.7 / (1 + 0.007*j)
	mm := math32.Log(1+0.0228*m) / 0.0228
	return UCS{
		J: jj,
		A: mm * math32.Cos(h/360*2*math32.Pi),
		B: mm * math32.Sin(h/360*2*math32.Pi),
		C: chr,
	}
}

// FromRGB converts a gamma-encoded sRGB colour through XYZ.
func FromRGB(c cie.RGB255, il *Illuminant) UCS {
	return FromXYZ(c.XYZ(), il)
}

// adapt applies the signed post-adaptation non-linearity to an
// adapted cone response.
func adapt(v, fl float32) float32 {
	f := math32.Pow(fl*math32.Abs(v)/100, 0.42)
	return 400*sign(v)*f/(f+27.13) + 0.1
}

func sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Dist returns the Euclidean distance in (J, a, b). C is excluded.
func (u UCS) Dist(o UCS) float32 {
	dj := u.J - o.J
	da := u.A - o.A
	db := u.B - o.B
	return math32.Sqrt(dj*dj + da*da + db*db)
}

// DistLiMatch mixes the full perceptual distance with the plain
// lightness difference: (1-t)*dist + t*|dJ|.
func (u UCS) DistLiMatch(o UCS, t float32) float32 {
	return (1-t)*u.Dist(o) + t*math32.Abs(u.J-o.J)
}

// Complementary negates the opponent components, keeping lightness.
// The retained chroma is carried over unchanged, which is only an
// approximation.
func (u UCS) Complementary() UCS {
	return UCS{J: u.J, A: -u.A, B: -u.B, C: u.C}
}

// Chroma50 halves the chromatic components.
func (u UCS) Chroma50() UCS {
	return UCS{J: u.J, A: u.A / 2, B: u.B / 2, C: u.C / 2}
}

// Lightness50 halves the lightness.
func (u UCS) Lightness50() UCS {
	return UCS{J: u.J / 2, A: u.A, B: u.B, C: u.C}
}

// Hue returns the hue angle of the opponent components in [0, 1).
func (u UCS) Hue() float32 {
	return wrapUnit(math32.Atan2(u.B, u.A) / (2 * math32.Pi))
}

// Mix linearly interpolates all four components.
func Mix(x, y UCS, a float32) UCS {
	return UCS{
		J: lerp(x.J, y.J, a),
		A: lerp(x.A, y.A, a),
		B: lerp(x.B, y.B, a),
		C: lerp(x.C, y.C, a),
	}
}

// Midpoint is the component-wise average of two colours.
func Midpoint(x, y UCS) UCS {
	return Mix(x, y, 0.5)
}

func lerp(x, y, a float32) float32 {
	return x*(1-a) + y*a
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
