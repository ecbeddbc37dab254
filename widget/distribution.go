// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"fmt"
	"sort"

	"github.com/chewxy/math32"

	"github.com/palscope/palscope/cam/cam16"
	"github.com/palscope/palscope/cam/cie"
	"github.com/palscope/palscope/graph"
	"github.com/palscope/palscope/palette"
	"github.com/palscope/palscope/plotcache"
	"github.com/palscope/palscope/text"
)

// Distribution draws a smoothed weight distribution over [0, 1] as a
// curve, with one mark per contributing palette colour stacked under
// the curve at its position.
type Distribution struct {
	W, H   int
	Dist   map[float32]float32 // weight per normalised position
	Points map[int]float32     // normalised position per palette index
	S      float32             // Gaussian smoothing width
}

func (w Distribution) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	g.Frame(x0, y0, w.W, w.H, pal.BgRGB)

	plotX := x0 + 2
	plotY := y0 + 2
	plotW := w.W - 4
	plotH := w.H - 4

	data := make([]float32, plotW)
	for i := 0; i < plotW; i++ {
		x := float32(i) / float32(plotW-1)
		for y, weight := range w.Dist {
			t := (x - y) / w.S
			data[i] += weight * math32.Exp(-(t*t)/2)
		}
	}
	norm := float32(0)
	for _, v := range data {
		if v > norm {
			norm = v
		}
	}
	if norm > 0 {
		for i := range data {
			data[i] /= norm
		}
	}

	points := make([]int, 0, len(w.Points))
	for i := range w.Points {
		points = append(points, i)
	}
	sort.SliceStable(points, func(a, b int) bool {
		return pal.CAM[points[a]].C < pal.CAM[points[b]].C
	})
	marks := make([]int, plotW)
	for _, i := range points {
		xi := clampInt(int(w.Points[i]*float32(plotW-1)), 0, plotW-1)
		yyMax := clampInt(int(float32(plotH-1)*data[xi]), 0, plotH-1) + 1
		y := y0 + w.H - 2 - marks[xi]%yyMax
		g.PutPixel(plotX+xi, y, pal.RGB[i])
		marks[xi]++
	}
	for i := 0; i < plotW-1; i++ {
		fromY := clampInt(int(float32(plotH-1)*data[i]), 0, plotH-1)
		toY := clampInt(int(float32(plotH-1)*data[i+1]), 0, plotH-1)
		g.Line(plotX+i, plotY+plotH-1-fromY,
			plotX+i+1, plotY+plotH-1-toY, pal.FgRGB, 0)
	}
}

// SpectralDistribution shows where the palette sits along the
// spectral locus, labelled with the wavelength span in ångströms.
type SpectralDistribution struct {
	W, H int
}

func (w SpectralDistribution) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	const min, max = float32(cie.WavelengthMin), float32(cie.WavelengthMax)
	stats, points := pal.SpectralStats(il)
	dist := make(map[float32]float32, len(stats))
	for k, v := range stats {
		dist[(k-min)/(max-min)] = v
	}
	pos := make(map[int]float32, len(points))
	for i, x := range points {
		pos[i] = (x - min) / (max - min)
	}
	Distribution{W: w.W, H: w.H, Dist: dist, Points: pos, S: 0.02083333}.
		Render(g, cache, pal, il, font, x0, y0)
	g.Text(fmt.Sprintf("%d", cie.WavelengthMin),
		x0, y0+w.H+1, text.NW, font, pal.BgRGB)
	g.Text(fmt.Sprintf("%d", cie.WavelengthMax),
		x0+w.W, y0+w.H+1, text.NE, font, pal.BgRGB)
}

// TemperatureDistribution shows the palette's correlated colour
// temperatures on a reversed log scale, warm on the right.
type TemperatureDistribution struct {
	W, H int
}

func (w TemperatureDistribution) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	min := math32.Log10(cie.CCTMin)
	max := math32.Log10(cie.CCTMax)
	stats, points := pal.CCTStats()
	dist := make(map[float32]float32, len(stats))
	for k, v := range stats {
		dist[1-(math32.Log10(k)-min)/(max-min)] = v
	}
	pos := make(map[int]float32, len(points))
	for i, x := range points {
		pos[i] = 1 - (math32.Log10(x)-min)/(max-min)
	}
	Distribution{W: w.W, H: w.H, Dist: dist, Points: pos, S: 0.02083333}.
		Render(g, cache, pal, il, font, x0, y0)
	g.Text("COLD", x0, y0+w.H+1, text.NW, font, pal.BgRGB)
	g.Text("WARM", x0+w.W, y0+w.H+1, text.NE, font, pal.BgRGB)
}

// ISS shows the internal similarity score as a bar with warn and
// alert levels.
type ISS struct {
	W, H        int
	Warn, Alert float32
}

func (w ISS) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	iss := pal.InternalSimilarity()
	const issMin = 0.4
	BarBox{
		W: w.W, H: w.H,
		Text:      []string{"internal", "similarity"},
		V:         (iss - issMin) / (w.Alert - issMin),
		Threshold: (w.Warn - issMin) / (w.Alert - issMin),
		HasThresh: true,
	}.Render(g, cache, pal, il, font, x0, y0)
	eval := EvalAlert
	switch {
	case iss < w.Warn:
		eval = EvalOk
	case iss < w.Alert:
		eval = EvalWarn
	}
	eval.Render(g, cache, pal, il, font, x0+w.W-1, y0)
}

// Acyclic shows the acyclicity verdict. A cyclic palette is fine;
// an acyclic one of meaningful size gets a warning, since it tends
// to indicate a palette that is a single sweep.
type Acyclic struct {
	W, H int
}

func (w Acyclic) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	acyclic := pal.IsAcyclic()
	YesNoBox{W: w.W, H: w.H, Text: []string{"acyclic?"}, V: acyclic}.
		Render(g, cache, pal, il, font, x0, y0)
	eval := EvalOk
	if acyclic && pal.N > 3 {
		eval = EvalWarn
	}
	eval.Render(g, cache, pal, il, font, x0-10, y0+w.H-11)
}
