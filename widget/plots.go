// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/palscope/palscope/cam/cam16"
	"github.com/palscope/palscope/cam/cie"
	"github.com/palscope/palscope/graph"
	"github.com/palscope/palscope/palette"
	"github.com/palscope/palscope/plotcache"
	"github.com/palscope/palscope/text"
)

// RectJCh plots lightness against hue at a fixed chroma.
type RectJCh struct {
	W, H int
	C    float32
}

func (w RectJCh) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	graph.Plot(g, cache, x0, y0, w.W, w.H, pal,
		fmt.Sprintf("RectJCh:C=%.2f", w.C),
		func(x, y float32) (cam16.UCS, bool) {
			return cam16.UCS{
				J: (1 - y) * 100,
				A: w.C * math32.Cos(x*2*math32.Pi),
				B: w.C * math32.Sin(x*2*math32.Pi),
				C: w.C,
			}, true
		})
}

// Spectrum draws three thin spectral ramps (full, half chroma, half
// lightness). The leading ratio of the width follows the
// monochromatic locus; the rest mixes the endpoints.
type Spectrum struct {
	W, H  int
	Ratio float32
}

// NewSpectrum returns the widget at the standard 0.8 locus ratio.
func NewSpectrum(w, h int) Spectrum {
	return Spectrum{W: w, H: h, Ratio: 0.8}
}

func (w Spectrum) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	wSpectral := int(float32(w.W) * w.Ratio)
	wExtra := w.W - wSpectral
	atWavelength := func(x float32) cam16.UCS {
		wl := cie.WavelengthMin + x*(cie.WavelengthMax-cie.WavelengthMin)
		return cam16.FromXYZ(cie.Wavelength(wl).XYZ(), il)
	}
	graph.Plot(g, cache, x0, y0, wSpectral, w.H, pal, "Spectrum",
		func(x, y float32) (cam16.UCS, bool) {
			return atWavelength(x), true
		})
	graph.Plot(g, cache, x0, y0+w.H+1, wSpectral, w.H, pal, "Spectrum:chr50",
		func(x, y float32) (cam16.UCS, bool) {
			return atWavelength(x).Chroma50(), true
		})
	graph.Plot(g, cache, x0, y0+(w.H+1)*2, wSpectral, w.H, pal, "Spectrum:li50",
		func(x, y float32) (cam16.UCS, bool) {
			return atWavelength(x).Lightness50(), true
		})
	min := cam16.FromXYZ(cie.Wavelength(cie.WavelengthMin).XYZ(), il)
	max := cam16.FromXYZ(cie.Wavelength(cie.WavelengthMax).XYZ(), il)
	graph.Plot(g, cache, x0+wSpectral, y0, wExtra, w.H, pal, "SpectrumExtra",
		func(x, y float32) (cam16.UCS, bool) {
			return cam16.Mix(max, min, x), true
		})
	graph.Plot(g, cache, x0+wSpectral, y0+w.H+1, wExtra, w.H, pal, "SpectrumExtra:chr50",
		func(x, y float32) (cam16.UCS, bool) {
			return cam16.Mix(max, min, x).Chroma50(), true
		})
	graph.Plot(g, cache, x0+wSpectral, y0+(w.H+1)*2, wExtra, w.H, pal, "SpectrumExtra:li50",
		func(x, y float32) (cam16.UCS, bool) {
			return cam16.Mix(max, min, x).Lightness50(), true
		})
}

// SpectroBox fans each spectral column towards black below and white
// above. The chroma modulation used here is a heuristic, not a
// colorimetric quantity.
type SpectroBox struct {
	W, H  int
	Ratio float32
}

// NewSpectroBox returns the widget at the standard 0.8 locus ratio.
func NewSpectroBox(w, h int) SpectroBox {
	return SpectroBox{W: w, H: h, Ratio: 0.8}
}

func spectroSample(c cam16.UCS, y float32) cam16.UCS {
	t := 2*y - 1
	var j float32
	if t < 0 {
		j = lerp(c.J, 0, -t)
	} else {
		j = lerp(c.J, 100, t)
	}
	chr := math32.Hypot(c.A, c.B) * (1 - t*t) / 100
	return cam16.UCS{J: j, A: chr * c.A, B: chr * c.B, C: chr}
}

func (w SpectroBox) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	wSpectral := int(float32(w.W) * w.Ratio)
	wExtra := w.W - wSpectral
	graph.Plot(g, cache, x0, y0, wSpectral, w.H, pal, "SpectroBox",
		func(x, y float32) (cam16.UCS, bool) {
			wl := cie.WavelengthMin + x*(cie.WavelengthMax-cie.WavelengthMin)
			return spectroSample(cam16.FromXYZ(cie.Wavelength(wl).XYZ(), il), y), true
		})
	min := cam16.FromXYZ(cie.Wavelength(cie.WavelengthMin).XYZ(), il)
	max := cam16.FromXYZ(cie.Wavelength(cie.WavelengthMax).XYZ(), il)
	graph.Plot(g, cache, x0+wSpectral, y0, wExtra, w.H, pal, "SpectroBoxExtra",
		func(x, y float32) (cam16.UCS, bool) {
			return spectroSample(cam16.Mix(max, min, x), y), true
		})
}

// HueLightnessPolarFilled maps lightness to the radius and hue to the
// angle at a fixed chroma, optionally inverted so that white sits in
// the centre.
type HueLightnessPolarFilled struct {
	C   float32
	D   int
	Inv bool
}

func (w HueLightnessPolarFilled) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	graph.PlotPolar(g, cache, x0, y0, w.D, w.D, pal,
		fmt.Sprintf("HueLightness:d=%d:inv=%v:C=%.2f", w.D, w.Inv, w.C),
		func(r, a float32) (cam16.UCS, bool) {
			j := r * 100
			if w.Inv {
				j = 100 * (1 - r)
			}
			return cam16.UCS{
				J: j,
				A: w.C * math32.Cos(a*2*math32.Pi),
				B: w.C * math32.Sin(a*2*math32.Pi),
				C: w.C,
			}, true
		})
}

// HueLightnessPolarFilledGroup overlaps four polar hue-lightness
// discs: a low and a high chroma, each inverted and not.
type HueLightnessPolarFilledGroup struct {
	CLow, CHigh    float32
	DSmall, DBig   int
}

func (w HueLightnessPolarFilledGroup) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	dCross := int(math32.Round(float32(w.DBig) / math32.Sqrt(2)))
	g.Text(fmt.Sprintf("C: %d", int(math32.Round(w.CLow))),
		x0, y0, text.NW, font, pal.FgRGB)
	HueLightnessPolarFilled{C: w.CLow, D: w.DBig, Inv: true}.
		Render(g, cache, pal, il, font, x0, y0)
	g.Text(fmt.Sprintf("C: %d", int(math32.Round(w.CLow))),
		x0+w.DBig+w.DSmall, y0+w.DBig+dCross, text.SE, font, pal.FgRGB)
	HueLightnessPolarFilled{C: w.CLow, D: w.DBig}.
		Render(g, cache, pal, il, font, x0+dCross, y0+dCross)
	g.Text(fmt.Sprintf("C: %d", int(math32.Round(w.CHigh))),
		x0+w.DBig+w.DSmall, y0+w.DSmall, text.E, font, pal.FgRGB)
	HueLightnessPolarFilled{C: w.CHigh, D: w.DSmall, Inv: true}.
		Render(g, cache, pal, il, font, x0+w.DBig, y0)
	g.Text(fmt.Sprintf("C: %d", int(math32.Round(w.CHigh))),
		x0, y0+w.DBig, text.SW, font, pal.FgRGB)
	HueLightnessPolarFilled{C: w.CHigh, D: w.DSmall}.
		Render(g, cache, pal, il, font, x0, y0+w.DBig)
}

// Complementaries plots the mixing plane between one opponent
// direction and its complementary, lightness along the diagonal.
type Complementaries struct {
	A, B float32
	W, H int
}

func (w Complementaries) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	key := fmt.Sprintf("Comp:w=%d:h=%d:a=%d:b=%d", w.W, w.H, int(w.A), int(w.B))
	graph.Plot(g, cache, x0, y0, w.W, w.H, pal, key,
		func(x, y float32) (cam16.UCS, bool) {
			return cam16.UCS{
				J: (x + y) / 2 * 100,
				A: (y - x) * w.A,
				B: (y - x) * w.B,
			}, true
		})
}

func lerp(x, y, a float32) float32 {
	return x*(1-a) + y*a
}
