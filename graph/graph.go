// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph draws the diagnostic image. Image is the in-memory
// RGB canvas with the primitive raster operations widgets are built
// from; Remote forwards the same operations over a channel to a Host
// that owns the canvas, which is how widget goroutines draw in the
// multithreaded run.
package graph

import (
	"image"

	"github.com/chewxy/math32"

	"github.com/palscope/palscope/cam/cie"
	"github.com/palscope/palscope/palette"
	"github.com/palscope/palscope/plotcache"
	"github.com/palscope/palscope/text"
)

// Image is an RGB canvas with an optional ICC profile carried through
// to the saved PNG. All primitives silently clip writes that fall
// off the canvas.
type Image struct {
	buf  *image.RGBA
	w, h int
	icc  []byte
}

// New returns a canvas of the given size, initially all black.
func New(w, h int) *Image {
	return &Image{buf: image.NewRGBA(image.Rect(0, 0, w, h)), w: w, h: h}
}

// SetICCProfile attaches profile bytes to carry into the output PNG.
func (g *Image) SetICCProfile(p []byte) {
	g.icc = p
}

// RGBA exposes the underlying buffer.
func (g *Image) RGBA() *image.RGBA {
	return g.buf
}

// PutPixel writes one pixel, clipping silently.
func (g *Image) PutPixel(x, y int, c cie.RGB255) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	i := g.buf.PixOffset(x, y)
	g.buf.Pix[i+0] = c.R
	g.buf.Pix[i+1] = c.G
	g.buf.Pix[i+2] = c.B
	g.buf.Pix[i+3] = 0xff
}

// Frame draws a 1px rectangle outline.
func (g *Image) Frame(x0, y0, w, h int, c cie.RGB255) {
	for x := x0; x < x0+w; x++ {
		g.PutPixel(x, y0, c)
		g.PutPixel(x, y0+h-1, c)
	}
	for y := y0; y < y0+h; y++ {
		g.PutPixel(x0, y, c)
		g.PutPixel(x0+w-1, y, c)
	}
}

// Block fills a rectangle.
func (g *Image) Block(x0, y0, w, h int, c cie.RGB255) {
	for x := x0; x < x0+w; x++ {
		for y := y0; y < y0+h; y++ {
			g.PutPixel(x, y, c)
		}
	}
}

// Dither fills a rectangle with a two-colour checkerboard.
func (g *Image) Dither(x0, y0, w, h int, c1, c2 cie.RGB255) {
	c := [2]cie.RGB255{c1, c2}
	for x := x0; x < x0+w; x++ {
		for y := y0; y < y0+h; y++ {
			k := (x - x0 + y - y0) % 2
			g.PutPixel(x, y, c[k])
		}
	}
}

// Line draws a straight line with an integer DDA: it iterates on the
// major axis and rounds the interpolated minor coordinate. A dotted
// stride d > 0 writes only every d-th pixel; 0 draws solid.
func (g *Image) Line(x0, y0, x1, y1 int, c cie.RGB255, dotted int) {
	if x0 == x1 {
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		for i := 0; i <= y1-y0; i++ {
			if dotted <= 0 || i%dotted == 0 {
				g.PutPixel(x0, y0+i, c)
			}
		}
		return
	}
	dc := 0
	if absInt(x1-x0) >= absInt(y1-y0) {
		if x1 < x0 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
		}
		dx := x1 - x0
		dy := y1 - y0
		for i := 0; i <= dx; i++ {
			x := x0 + i
			y := int(math32.Round(float32(y0) + float32(i)*float32(dy)/float32(dx)))
			if dotted <= 0 || dc%dotted == 0 {
				g.PutPixel(x, y, c)
			}
			dc++
		}
	} else {
		if y1 < y0 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
		}
		dx := x1 - x0
		dy := y1 - y0
		for i := 0; i <= dy; i++ {
			y := y0 + i
			x := int(math32.Round(float32(x0) + float32(i)*float32(dx)/float32(dy)))
			if dotted <= 0 || dc%dotted == 0 {
				g.PutPixel(x, y, c)
			}
			dc++
		}
	}
}

// Circle traces the rim of a circle of diameter d whose bounding box
// has its top-left corner at (x0, y0), using octant symmetry. The
// trace stops when the running point crosses the box diagonal.
func (g *Image) Circle(x0, y0, d int, c cie.RGB255, dotted int) {
	r := (float32(d) - 1) / 2
	cx := float32(x0) + r
	cy := float32(y0) + r
	y := int(math32.Floor(cy))
	dc := 0
	for x := x0; x <= x0+d/2; x++ {
		for math32.Hypot(float32(x)-cx, float32(y)-cy) <= r {
			dx := x - x0
			dy := y - y0
			if dx > dy {
				return
			}
			if dotted <= 0 || dc%dotted == 0 {
				g.PutPixel(x, y, c)
				g.PutPixel(x, y0+d-1-dy, c)
				g.PutPixel(x0+d-1-dx, y, c)
				g.PutPixel(x0+d-1-dx, y0+d-1-dy, c)
				g.PutPixel(y-y0+x0, x-x0+y0, c)
				g.PutPixel(x0+d-1-(y-y0), x-x0+y0, c)
				g.PutPixel(y-y0+x0, y0+d-1-(x-x0), c)
				g.PutPixel(x0+d-1-(y-y0), y0+d-1-(x-x0), c)
			}
			dc++
			y--
		}
	}
}

// Disc fills a circle of diameter d with its bounding box top-left at
// (x0, y0). Diameters 1 and 2 degenerate to a pixel and a block.
func (g *Image) Disc(x0, y0, d int, c cie.RGB255) {
	if d == 1 {
		g.PutPixel(x0, y0, c)
		return
	}
	if d == 2 {
		g.Block(x0, y0, d, d, c)
		return
	}
	for i := 0; i < d; i++ {
		dx := (float32(i)/float32(d-1))*2 - 1
		for j := 0; j < d; j++ {
			dy := (float32(j)/float32(d-1))*2 - 1
			if math32.Hypot(dx, dy) <= 1 {
				g.PutPixel(x0+i, y0+j, c)
			}
		}
	}
}

// Text draws a string at the given anchor.
func (g *Image) Text(s string, x0, y0 int, p text.Anchor, font *text.Font, c cie.RGB255) {
	w := font.StrWidth(s)
	h := font.StrHeight(s)
	dx, dy := p.Align(w, h)
	font.RenderString(g, x0+dx, y0+dy, s, c)
}

// VText stacks the string's glyphs vertically, one per line.
func (g *Image) VText(s string, x0, y0 int, p text.HAnchor, font *text.Font, c cie.RGB255) {
	anchor := text.Anchor{H: p, V: text.Top}
	y := y0
	for _, ch := range s {
		g.Text(string(ch), x0, y, anchor, font, c)
		y += 1 + font.CharHeight(ch)
	}
}

// RenderGlyph draws a raw glyph bitmap, for the status glyphs.
func (g *Image) RenderGlyph(x0, y0 int, glyph text.Glyph, font *text.Font, c cie.RGB255) {
	font.RenderGlyph(g, x0, y0, glyph, c)
}

// BlitPlotData writes a finished plot through the palette's nearest
// lookup. Unset cells leave the canvas untouched.
func (g *Image) BlitPlotData(x0, y0 int, pal *palette.Palette, data *plotcache.PlotData) {
	for i := 0; i < data.W; i++ {
		for j := 0; j < data.H; j++ {
			if c, ok := data.At(i, j); ok {
				g.PutPixel(x0+i, y0+j, pal.Nearest(c))
			}
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
