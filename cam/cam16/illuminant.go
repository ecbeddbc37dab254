// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cam16 implements the CAM16 colour appearance model with the
// CAT16 chromatic adaptation transform and the UCS uniform-space
// post-transform. Every perceptual metric in the analyser is computed
// in this space.
package cam16

import (
	"github.com/chewxy/math32"

	"github.com/palscope/palscope/cam/cie"
)

// Surround and environment constants fixing the "dim surround"
// viewing conditions the analyser assumes throughout.
const (
	SurroundF  = 0.9   // degree-of-adaptation surround factor
	SurroundC  = 0.590 // exponential non-linearity
	SurroundNc = 0.9   // chromatic induction factor
	Illum      = 64    // ambient illumination in lux
	BgY        = 20    // background relative luminance
)

// Illuminant is the precomputed CAT16 adaptation state for one white
// point. It is built once per run and treated as an immutable value;
// its construction costs a dozen transcendentals that must not be
// paid per pixel.
type Illuminant struct {
	XW, YW, ZW    float32 // white point tristimulus, YW = 100
	LA            float32 // adapting luminance
	RW, GW, BW    float32 // cone responses to the white point
	D             float32 // degree of adaptation, in [0, 1]
	DR, DG, DB    float32 // per-channel adaptation factors
	K             float32
	FL            float32 // luminance-level adaptation factor
	N             float32 // background to white luminance ratio
	Z             float32 // base exponential non-linearity
	NBB, NCB      float32 // luminance-level induction factors
	RWC, GWC, BWC float32 // adapted white cone responses
	RAW, GAW, BAW float32 // post-nonlinearity white cone responses
	AW            float32 // achromatic response to the white point
}

// XYZToLMS converts tristimulus values to long/medium/short cone
// responses using the CAT16 matrix.
func XYZToLMS(x, y, z float32) (l, m, s float32) {
	l = 0.401288*x + 0.650173*y - 0.051461*z
	m = -0.250268*x + 1.204414*y + 0.045854*z
	s = -0.002079*x + 0.048952*y + 0.953127*z
	return
}

// NewIlluminant derives the full adaptation state from a white point
// chromaticity, with the white luminance fixed at 100.
func NewIlluminant(xy cie.XY) *Illuminant {
	il := &Illuminant{}
	il.YW = 100
	il.XW = il.YW * xy.X / xy.Y
	il.ZW = il.YW * (1 - xy.X - xy.Y) / xy.Y

	lw := float32(Illum) / math32.Pi
	il.LA = lw * BgY / il.YW

	il.RW, il.GW, il.BW = XYZToLMS(il.XW, il.YW, il.ZW)

	d := SurroundF * (1 - (1/3.6)*math32.Exp((-il.LA-42)/92))
	il.D = clamp(d, 0, 1)

	il.DR = il.D*il.YW/il.RW + 1 - il.D
	il.DG = il.D*il.YW/il.GW + 1 - il.D
	il.DB = il.D*il.YW/il.BW + 1 - il.D

	il.K = 1 / (5*il.LA + 1)
	k4 := il.K * il.K * il.K * il.K
	il.FL = 0.2*k4*5*il.LA + 0.1*(1-k4)*(1-k4)*math32.Cbrt(5*il.LA)
	il.N = BgY / il.YW
	il.Z = 1.48 + math32.Sqrt(il.N)

	il.NBB = 0.725 * math32.Pow(1/il.N, 0.2)
	il.NCB = il.NBB

	il.RWC = il.DR * il.RW
	il.GWC = il.DG * il.GW
	il.BWC = il.DB * il.BW

	il.RAW = adaptWhite(il.RWC, il.FL)
	il.GAW = adaptWhite(il.GWC, il.FL)
	il.BAW = adaptWhite(il.BWC, il.FL)

	il.AW = il.NBB * (2*il.RAW + il.GAW + 0.05*il.BAW - 0.305)
	return il
}

// adaptWhite applies the post-adaptation non-linearity to a white cone
// response, which is always positive.
func adaptWhite(v, fl float32) float32 {
	f := math32.Pow(fl*v/100, 0.42)
	return 400*f/(f+27.13) + 0.1
}

func clamp(v, mn, mx float32) float32 {
	if v < mn {
		return mn
	}
	if v > mx {
		return mx
	}
	return v
}
