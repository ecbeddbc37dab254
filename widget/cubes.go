// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"sort"

	"github.com/chewxy/math32"

	"github.com/palscope/palscope/cam/cam16"
	"github.com/palscope/palscope/cam/cie"
	"github.com/palscope/palscope/graph"
	"github.com/palscope/palscope/palette"
	"github.com/palscope/palscope/plotcache"
	"github.com/palscope/palscope/text"
)

// CubePoint is a palette entry positioned in the unit cube.
type CubePoint struct {
	X, Y, Z float32
	Index   int
}

// IsometricCube draws a wireframe isometric cube with palette discs
// at the given unit-cube positions, painter-sorted back to front.
type IsometricCube struct {
	W      int
	Points []CubePoint
}

func (w IsometricCube) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	h := int(float32(w.W) * math32.Sqrt(1.25))
	cx := x0 + w.W/2
	cy := y0 + h/2
	dy := h / 4
	dd := clampInt(int(32/math32.Sqrt(float32(pal.N))), 2, 5)
	vertices := [6][2]int{
		{cx, y0},
		{x0 + w.W, y0 + dy},
		{x0 + w.W, y0 + h - dy},
		{cx, y0 + h},
		{x0, y0 + h - dy},
		{x0, y0 + dy},
	}
	for i := 0; i < 6; i++ {
		p1, p2 := vertices[i], vertices[(i+1)%6]
		g.Line(p1[0], p1[1], p2[0], p2[1], pal.BgRGB, 0)
	}
	g.Line(cx, cy, vertices[0][0], vertices[0][1], pal.BgRGB, 0)
	g.Line(cx, cy, vertices[2][0], vertices[2][1], pal.BgRGB, 0)
	g.Line(cx, cy, vertices[4][0], vertices[4][1], pal.BgRGB, 0)

	sorted := append([]CubePoint(nil), w.Points...)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].X+sorted[a].Y+sorted[a].Z <
			sorted[b].X+sorted[b].Y+sorted[b].Z
	})

	for _, p := range sorted {
		xx := int((p.Y-p.X)*float32(w.W)) / 2
		yy := int((p.X+p.Y)*float32(dy) - p.Z*float32(h)/2)
		g.Disc(cx+xx-dd/2, cy+yy-dd/2, dd, pal.RGB[p.Index])
		if p.Index == pal.Bl {
			g.Circle(cx+xx-dd/2-1, cy+yy-dd/2-1, dd+1, pal.BgRGB, 0)
		}
	}
}

// CAM16IsoCubes draws the palette in CAM16-UCS space as two isometric
// cubes rotated a quarter turn from each other.
type CAM16IsoCubes struct {
	WW, DX int
}

func (w CAM16IsoCubes) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	points := make([]CubePoint, pal.N)
	for i := 0; i < pal.N; i++ {
		points[i] = CubePoint{
			X:     clamp(pal.CAM[i].A/200+0.5, 0, 1),
			Y:     clamp(pal.CAM[i].B/200+0.5, 0, 1),
			Z:     clamp(pal.CAM[i].J/100, 0, 1),
			Index: i,
		}
	}
	IsometricCube{W: w.WW, Points: points}.
		Render(g, cache, pal, il, font, x0, y0)
	rotated := make([]CubePoint, len(points))
	for i, p := range points {
		rotated[i] = CubePoint{X: 1 - p.Y, Y: p.X, Z: p.Z, Index: p.Index}
	}
	IsometricCube{W: w.WW, Points: rotated}.
		Render(g, cache, pal, il, font, x0+w.WW+w.DX, y0)
}

// ChromaLightnessHue is the two-panel map: colours grouped into three
// chroma bands on the left, and a lightness/hue scatter with ruled
// guides on the right.
type ChromaLightnessHue struct {
	W1, HH1 int
	W2, H2  int
}

func (w ChromaLightnessHue) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	h1 := (w.HH1-1)*3 + 1
	g.Text("CHR", x0, y0-1, text.SW, font, pal.FgRGB)
	for i := 0; i < 3; i++ {
		g.Frame(x0, y0+(w.HH1-1)*i, w.W1, w.HH1, pal.BgRGB)
	}
	g.Frame(x0-4, y0, 3, h1, pal.BgRGB)
	var chromaStats [3]int
	for i := 0; i < pal.N; i++ {
		c := pal.CAM[i]
		chr := clamp(c.C/100, 0, 1)
		group := clampInt(int(chr*3), 0, 2)
		innerX := x0 + 2
		innerY := y0 + (2-group)*(w.HH1-1) + 2
		innerW := w.W1 - 4
		innerH := w.HH1 - 4
		x := clampInt(int(c.J/100*float32(innerW-1)), 0, innerW-1)
		y := clampInt(int(c.Hue()*float32(innerH-1)), 0, innerH-1)
		g.PutPixel(innerX+x, innerY+innerH-1-y, pal.RGB[i])
		chromaStats[group]++
	}
	total := chromaStats[0] + chromaStats[1] + chromaStats[2]
	for i := 0; i < 3; i++ {
		if chromaStats[i] == 0 {
			continue
		}
		p := float32(chromaStats[i]) / float32(total)
		l := int(p * float32(w.HH1-1))
		x := x0 - 3
		y := y0 + (2-i)*(w.HH1-1) + (w.HH1-1)/2
		g.Line(x, y-l/2+1, x, y+l/2-1, pal.FgRGB, 0)
	}

	x0 = x0 + w.W1 + 1
	g.Text("LI-HUE", x0+w.W2, y0-1, text.SE, font, pal.FgRGB)
	g.Frame(x0, y0, w.W2, w.H2, pal.BgRGB)
	const xOffset, yOffset = 5, 5
	innerX := x0 + xOffset
	innerY := y0 + yOffset
	innerW := w.W2 - 2*xOffset
	innerH := w.H2 - 2*yOffset
	dd := clampInt(int(48/math32.Sqrt(float32(pal.N))), 1, 7)
	for i := 1; i < 6; i++ {
		y := innerY + i*innerH/6
		g.Line(x0, y, x0+w.W2-1, y, pal.BgRGB, 2)
	}
	g.Line(x0, innerY, x0+w.W2-1, innerY, pal.BgRGB, 0)
	g.Line(x0, y0+w.H2-1-yOffset, x0+w.W2-1, y0+w.H2-1-yOffset, pal.BgRGB, 0)
	g.Line(innerX, y0, innerX, y0+w.H2-1, pal.BgRGB, 0)
	g.Line(x0+w.W2/2, y0, x0+w.W2/2, y0+w.H2-1, pal.BgRGB, 0)
	g.Line(x0+w.W2-1-xOffset, y0, x0+w.W2-1-xOffset, y0+w.H2-1, pal.BgRGB, 0)

	marks := make([]int, w.W2)
	innerX++
	innerY++
	innerW -= 2
	innerH -= 2
	for i := 0; i < pal.N; i++ {
		c := pal.CAM[i]
		x := clampInt(int(c.J/100*float32(innerW-1)), 0, innerW-1)
		y := clampInt(int(c.Hue()*float32(innerH-1)), 0, innerH-1)
		g.Disc(innerX+x-dd/2, innerY+innerH-1-y-dd/2, dd, pal.RGB[i])
		if i == pal.Bl {
			g.Circle(innerX+x-dd/2-1, innerY+innerH-1-y-dd/2-1, dd+1, pal.BgRGB, 0)
		}
		g.PutPixel(innerX+x, y0+w.H2+1+marks[x+1+xOffset], pal.RGB[i])
		marks[x+1+xOffset]++
	}
}

// HueChromaPolar scatters the palette on a polar hue/chroma disc,
// with the sRGB gamut boundary drawn around it and the primaries and
// secondaries labelled outside it.
type HueChromaPolar struct {
	D int
}

func (w HueChromaPolar) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	r := w.D / 2
	cx := x0 + r
	cy := y0 + r
	const crossL = 5
	g.Circle(x0, y0, w.D, pal.BgRGB, 0)
	g.Line(cx-crossL, cy, cx+crossL, cy, pal.BgRGB, 0)
	g.Line(cx, cy-crossL, cx, cy+crossL, pal.BgRGB, 0)
	for _, radius := range [3]int{r / 4, r / 2, r * 3 / 4} {
		g.Circle(cx-radius, cy-radius, radius*2+1, pal.BgRGB, 3)
	}

	boundary := cache.GetBoundary()
	n := len(boundary)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		ai := float32(i) / float32(n) * 2 * math32.Pi
		aj := float32(j) / float32(n) * 2 * math32.Pi
		xi := cx + int(math32.Round(boundary[i]*float32(r)*math32.Cos(ai)))
		yi := cy - int(math32.Round(boundary[i]*float32(r)*math32.Sin(ai)))
		xj := cx + int(math32.Round(boundary[j]*float32(r)*math32.Cos(aj)))
		yj := cy - int(math32.Round(boundary[j]*float32(r)*math32.Sin(aj)))
		g.Line(xi, yi, xj, yj, pal.FgRGB, 0)
	}

	marks := [6]struct {
		rgb   cie.RGB255
		label string
	}{
		{cie.RGB255{R: 255}, "R"},
		{cie.RGB255{R: 255, G: 255}, "Y"},
		{cie.RGB255{G: 255}, "G"},
		{cie.RGB255{G: 255, B: 255}, "C"},
		{cie.RGB255{B: 255}, "B"},
		{cie.RGB255{R: 255, B: 255}, "M"},
	}
	for _, m := range marks {
		c := cam16.FromRGB(m.rgb, il)
		h := math32.Atan2(c.B, c.A)
		chr := c.C / 100
		x := cx + int(math32.Round((chr*float32(r)+6)*math32.Cos(h)))
		y := cy - int(math32.Round((chr*float32(r)+6)*math32.Sin(h)))
		g.Text(m.label, x, y, text.C, font, pal.FgRGB)
	}

	minDD := 2
	if pal.N <= 24 {
		minDD = 4
	}
	maxDD := 4
	switch {
	case pal.N <= 64:
		maxDD = 8
	case pal.N <= 128:
		maxDD = 6
	}
	for i := 0; i < pal.N; i++ {
		c := pal.CAM[i]
		h := math32.Atan2(c.B, c.A)
		chr := c.C / 100
		if chr <= 0.1 {
			chr = 0
		}
		dd := 2 + minDD + int(math32.Round(chr*float32(maxDD-minDD)))
		x := cx + int(math32.Round(chr*float32(r)*math32.Cos(h)))
		y := cy - int(math32.Round(chr*float32(r)*math32.Sin(h)))
		g.Disc(x-dd/2, y-dd/2, dd, pal.RGB[i])
		if i == pal.Bl {
			g.Circle(x-dd/2-1, y-dd/2-1, dd+1, pal.BgRGB, 0)
		}
	}
}
