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

// Indexed shows the palette in index order on a fixed grid. Slots
// past the palette end are struck through.
type Indexed struct {
	SlotsX, SlotsY int
	WW, HH         int
}

func (w Indexed) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	g.Frame(x0, y0, w.WW*w.SlotsX+4, w.HH*w.SlotsY+4, pal.BgRGB)
	for ix := 0; ix < w.SlotsX; ix++ {
		x := x0 + 2 + ix*w.WW
		for iy := 0; iy < w.SlotsY; iy++ {
			y := y0 + 2 + iy*w.HH
			i := iy*w.SlotsX + ix
			if i < pal.N {
				g.Block(x, y, w.WW, w.HH, pal.RGB[i])
			} else {
				g.Block(x, y, w.WW, w.HH, pal.RGB[pal.N-1])
				g.Block(x+1, y+1, w.WW-2, 1, pal.FgRGB)
				g.Block(x+1, y+w.HH-2, w.WW-2, 1, pal.BlRGB)
			}
		}
	}
}

// CloseLiMatch shows the n closest colour pairs under the
// lightness-weighted distance, closest first. Pairs touching the
// black role are framed.
type CloseLiMatch struct {
	WW, HH  int
	N       int
	LiMatch float32
}

func (w CloseLiMatch) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	type pair struct {
		i, j int
		d    float32
	}
	var pairs []pair
	for i := 0; i < pal.N; i++ {
		for j := i + 1; j < pal.N; j++ {
			pairs = append(pairs, pair{i: i, j: j,
				d: pal.CAM[i].DistLiMatch(pal.CAM[j], w.LiMatch)})
		}
	}
	sort.SliceStable(pairs, func(a, b int) bool { return pairs[a].d < pairs[b].d })
	for k := 0; k < w.N; k++ {
		x := x0 + (w.WW+1)*k
		if k < len(pairs) {
			i, j := pairs[k].i, pairs[k].j
			g.Block(x, y0, w.WW, w.HH, pal.RGB[i])
			g.Block(x, y0+w.HH, w.WW, w.HH, pal.RGB[j])
			if i == pal.Bl || j == pal.Bl {
				g.Frame(x, y0, w.WW, w.HH*2, pal.BgRGB)
			}
		} else {
			g.Dither(x, y0, w.WW, w.HH*2, pal.BgRGB, pal.BlRGB)
		}
	}
}

// LiMatchGreyscale maps, column by column, the greyscale axis through
// nearest-lookup at a lightness weight growing from 0 (left) to 1
// (right). Palette entries are marked beside the map at their
// lightness rows.
type LiMatchGreyscale struct {
	W, H int
}

func (w LiMatchGreyscale) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	for i := 0; i < w.W; i++ {
		x := float32(i) / float32(w.W-1)
		for j := 0; j < w.H; j++ {
			y := float32(w.H-1-j) / float32(w.H-1)
			c := pal.NearestLiMatch(cam16.UCS{J: y * 100}, x)
			g.PutPixel(x0+i, y0+j, c)
		}
	}
	mdx, mw := 2, 1
	if pal.N <= 64 {
		mdx, mw = 3, 2
	}
	marks := make([]int, w.H)
	for i := 0; i < pal.N; i++ {
		yy := clampInt(int(pal.CAM[i].J/100*float32(w.H-1)), 0, w.H-1)
		x := x0 + w.W + 1 + marks[yy]*(mdx+mw)
		g.Block(x, y0+w.H-1-yy, mw, 1, pal.RGB[i])
		marks[yy]++
	}
}

// MainPalette is the palette strip in ascending lightness order, with
// the black role outlined.
type MainPalette struct {
	W, H int
}

func (w MainPalette) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	ww := w.W / pal.N
	for k := 0; k < pal.N; k++ {
		x := x0 + ww*k
		i := pal.Sorted[k]
		g.Block(x, y0, ww, w.H, pal.RGB[i])
		if i == pal.Bl {
			if ww >= 3 {
				g.Frame(x, y0, ww, w.H, pal.BgRGB)
			} else {
				y1 := y0 + w.H - 1
				g.Line(x, y0, x+ww-1, y0, pal.BgRGB, 0)
				g.Line(x, y1, x+ww-1, y1, pal.BgRGB, 0)
			}
		}
	}
}

// Neutralisers shows, for each palette colour whose best neutraliser
// actually lands near grey, that neutraliser and the checkerboard mix
// of the two.
type Neutralisers struct {
	W      int
	H1, H2 int
}

func (w Neutralisers) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	ww := w.W / pal.N
	wx1, wx2 := 2, 3
	if ww <= 12 {
		wx1, wx2 = 1, 2
	}
	for k := 0; k < pal.N; k++ {
		x := x0 + ww*k
		i := pal.Sorted[k]
		c := pal.CAM[i]
		j := pal.Neutraliser(c)
		cNeu := pal.CAM[j]
		a := (c.A + cNeu.A) / 2
		b := (c.B + cNeu.B) / 2
		if math32.Hypot(a, b) <= 10 && i != j {
			g.Block(x+wx1, y0, ww-2*wx1, w.H1, pal.RGB[j])
			g.Dither(x+wx2, y0+w.H1, ww-2*wx2, w.H2, pal.RGB[j], pal.RGB[i])
		}
	}
}

// UsefulMixes shows the checkerboard mixes judged to add the most to
// the palette.
type UsefulMixes struct {
	XN, YN int
	WW, HH int
}

func (w UsefulMixes) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	pairs := pal.UsefulMixes(w.XN * w.YN)
	for xi := 0; xi < w.XN; xi++ {
		x := x0 + (w.WW+1)*xi
		for yi := 0; yi < w.YN; yi++ {
			y := y0 + (w.HH+1)*yi
			i := yi*w.XN + xi
			if i < len(pairs) {
				g.Dither(x, y, w.WW, w.HH, pal.RGB[pairs[i].I], pal.RGB[pairs[i].J])
			} else {
				g.Frame(x, y, w.WW, w.HH, pal.BgRGB)
			}
		}
	}
}

// LightnessChromaComponents draws per-colour lightness and chroma
// bars anchored at the middle and growing outwards: lightness to the
// left, chroma to the right.
type LightnessChromaComponents struct {
	W, H int
}

func (w LightnessChromaComponents) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	hh := clampInt(w.H/pal.N, 1, 6)
	n := (w.H + 1) / (hh + 1)
	const wEmpty = 4
	ww := (w.W - wEmpty) / 2
	x1 := x0 + w.W - ww
	g.Text("LI", x0, y0-1, text.SW, font, pal.FgRGB)
	g.Text("CHR", x0+w.W, y0-1, text.SE, font, pal.FgRGB)
	for i := 0; i < n; i++ {
		y := y0 + (hh+1)*i
		if i < pal.N {
			c := pal.CAM[i]
			j := clamp(c.J/100, 0, 1)
			chr := clamp(c.C/100, 0, 1)
			lJ := clampInt(int(math32.Round(j*float32(ww))), 0, ww)
			lC := clampInt(int(math32.Round(chr*float32(ww))), 0, ww)
			if lJ >= 1 {
				g.Block(x0+ww-lJ, y, lJ, hh, pal.RGB[i])
			}
			if ww-lJ-1 >= 1 {
				g.Frame(x0, y, ww-lJ-1, hh, pal.BgRGB)
			}
			if lC >= 1 {
				g.Block(x1, y, lC, hh, pal.RGB[i])
			}
			if ww-lC-1 >= 1 {
				g.Frame(x1+lC+1, y, ww-lC-1, hh, pal.BgRGB)
			}
		} else {
			g.Dither(x0, y, ww, hh, pal.BgRGB, pal.BlRGB)
			g.Dither(x1, y, ww, hh, pal.BgRGB, pal.BlRGB)
		}
	}
}

// RGB12Bit maps the whole 12-bit RGB cube through the palette's
// nearest lookup, one 16×16 tile per green level.
type RGB12Bit struct{}

func (w RGB12Bit) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	for green := 0; green < 16; green++ {
		x := x0 + (green%8)*16
		y := y0 + (green/8)*16
		for r := 0; r < 16; r++ {
			for b := 0; b < 16; b++ {
				c := cam16.FromRGB(cie.RGB255{
					R: uint8(r * 17),
					G: uint8(green * 17),
					B: uint8(b * 17),
				}, il)
				g.PutPixel(x+r, y+b, pal.Nearest(c))
			}
		}
	}
}
