// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"github.com/chewxy/math32"

	"github.com/palscope/palscope/cam/cam16"
	"github.com/palscope/palscope/cam/cie"
	"github.com/palscope/palscope/palette"
	"github.com/palscope/palscope/plotcache"
	"github.com/palscope/palscope/text"
)

// Provider is the drawing contract widgets render against. Image
// implements it directly; Remote implements it by forwarding tagged
// operations to the host. Within one provider, operations land on
// the canvas in call order; between providers there is no ordering,
// so anything that must paint atop a plot has to come from the same
// provider as the plot.
type Provider interface {
	PutPixel(x, y int, c cie.RGB255)
	Frame(x0, y0, w, h int, c cie.RGB255)
	Block(x0, y0, w, h int, c cie.RGB255)
	Dither(x0, y0, w, h int, c1, c2 cie.RGB255)
	Line(x0, y0, x1, y1 int, c cie.RGB255, dotted int)
	Circle(x0, y0, d int, c cie.RGB255, dotted int)
	Disc(x0, y0, d int, c cie.RGB255)
	Text(s string, x0, y0 int, p text.Anchor, font *text.Font, c cie.RGB255)
	VText(s string, x0, y0 int, p text.HAnchor, font *text.Font, c cie.RGB255)
	RenderGlyph(x0, y0 int, glyph text.Glyph, font *text.Font, c cie.RGB255)
	BlitPlotData(x0, y0 int, pal *palette.Palette, data *plotcache.PlotData)
}

// Plot materialises a w×h plot by evaluating f over normalised
// coordinates (x growing right, y growing up, both in [0, 1]) and
// blits it through the palette. The evaluation happens on the calling
// goroutine so it parallelises across widget workers; only the
// finished matrix travels to the canvas.
func Plot(g Provider, cache plotcache.Provider, x0, y0, w, h int,
	pal *palette.Palette, key string, f func(x, y float32) (cam16.UCS, bool)) {
	data := cache.GetPlot(key, func() *plotcache.PlotData {
		data := plotcache.NewPlotData(w, h)
		for i := 0; i < w; i++ {
			x := float32(i) / float32(w-1)
			for j := 0; j < h; j++ {
				y := float32(h-1-j) / float32(h-1)
				if c, ok := f(x, y); ok {
					data.Set(i, j, c)
				}
			}
		}
		return data
	})
	g.BlitPlotData(x0, y0, pal, data)
}

// PlotPolar is Plot over a polar domain: f receives the radius in
// [0, 1] and the angle as a fraction of a full turn; points outside
// the unit disc stay unset.
func PlotPolar(g Provider, cache plotcache.Provider, x0, y0, w, h int,
	pal *palette.Palette, key string, f func(r, a float32) (cam16.UCS, bool)) {
	data := cache.GetPlot(key, func() *plotcache.PlotData {
		data := plotcache.NewPlotData(w, h)
		for i := 0; i < w; i++ {
			x := (float32(i)/float32(w-1))*2 - 1
			for j := 0; j < h; j++ {
				y := (float32(h-1-j)/float32(h-1))*2 - 1
				r := math32.Hypot(x, y)
				if r > 1 {
					continue
				}
				a := math32.Atan2(y, x) / (2 * math32.Pi)
				for a < 0 {
					a++
				}
				for a >= 1 {
					a--
				}
				if c, ok := f(r, a); ok {
					data.Set(i, j, c)
				}
			}
		}
		return data
	})
	g.BlitPlotData(x0, y0, pal, data)
}
