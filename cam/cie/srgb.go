// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "github.com/chewxy/math32"

// RGB255 is a gamma-encoded sRGB colour with 8-bit components.
type RGB255 struct {
	R, G, B uint8
}

// RGB1 is a gamma-encoded sRGB colour with float components in [0, 1].
type RGB1 struct {
	R, G, B float32
}

// Float converts to [RGB1] by scaling each component into [0, 1].
func (c RGB255) Float() RGB1 {
	return RGB1{
		R: clamp(float32(c.R)/255, 0, 1),
		G: clamp(float32(c.G)/255, 0, 1),
		B: clamp(float32(c.B)/255, 0, 1),
	}
}

// XYZ converts to tristimulus coordinates with Y = 100 at the reference white.
func (c RGB255) XYZ() XYZ {
	return c.Float().XYZ()
}

// XY returns the chromaticity of the colour.
func (c RGB255) XY() XY {
	return c.XYZ().XY()
}

// Dist returns the Euclidean distance to the other colour
// in raw 8-bit component space.
func (c RGB255) Dist(o RGB255) float32 {
	dr := float32(c.R) - float32(o.R)
	dg := float32(c.G) - float32(o.G)
	db := float32(c.B) - float32(o.B)
	return math32.Sqrt(dr*dr + dg*dg + db*db)
}

// SRGBToLinearComp converts an sRGB component to linear space
// (removes gamma). The exact-rational form of the IEC 61966-2-1
// transfer function is used so that round-trips are stable.
func SRGBToLinearComp(srgb float32) float32 {
	if srgb <= 0.04045 {
		return 25 * srgb / 323
	}
	return math32.Pow((200*srgb+11)/211, 12.0/5.0)
}

// XYZ converts to tristimulus coordinates with Y = 100 at the reference white.
func (c RGB1) XYZ() XYZ {
	r := SRGBToLinearComp(c.R)
	g := SRGBToLinearComp(c.G)
	b := SRGBToLinearComp(c.B)
	x := 0.4124*r + 0.3576*g + 0.1805*b
	y := 0.2126*r + 0.7152*g + 0.0722*b
	z := 0.0193*r + 0.1192*g + 0.9505*b
	return XYZ{X: x * 100, Y: y * 100, Z: z * 100}
}

// Bytes converts back to [RGB255], rounding each component.
func (c RGB1) Bytes() RGB255 {
	return RGB255{
		R: uint8(clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(clamp(c.B, 0, 1)*255 + 0.5),
	}
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
