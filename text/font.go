// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package text renders the analyser's bitmap font: a tiny
// per-character grid map embedded as a JSON asset, plus the status
// glyphs drawn next to metric boxes.
package text

import (
	_ "embed"
	"encoding/json"

	"github.com/palscope/palscope/base/errors"
	"github.com/palscope/palscope/cam/cie"
)

//go:embed font.json
var fontData []byte

// PixelWriter is the single capability the font needs from a render
// target.
type PixelWriter interface {
	PutPixel(x, y int, c cie.RGB255)
}

// Glyph is a bitmap: rows of 0/1 cells.
type Glyph [][]int

// Special is a glyph with its own metrics.
type Special struct {
	Data  Glyph `json:"data"`
	XKern int   `json:"x_kern"`
	YKern int   `json:"y_kern"`
}

type fontFile struct {
	W       int                `json:"w"`
	H       int                `json:"h"`
	Data    map[string]Glyph   `json:"data"`
	Special map[string]Special `json:"special"`
}

// Status glyphs rendered next to metric evaluations.
var (
	OkGlyph = Glyph{
		{0, 0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 1, 1, 0},
		{0, 0, 0, 0, 1, 1, 0},
		{1, 0, 0, 1, 1, 0, 0},
		{1, 1, 0, 1, 1, 0, 0},
		{0, 1, 1, 1, 0, 0, 0},
		{0, 0, 1, 1, 0, 0, 0},
	}
	WarnGlyph = Glyph{
		{0, 0, 0, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 0},
		{0, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1},
	}
	AlertGlyph = Glyph{
		{1, 1, 0, 0, 0, 1, 1},
		{1, 1, 1, 0, 1, 1, 1},
		{0, 1, 1, 1, 1, 1, 0},
		{0, 0, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 0, 1, 1, 1},
		{1, 1, 0, 0, 0, 1, 1},
	}
)

// Font is the loaded bitmap font. It is immutable and safe to share
// across goroutines.
type Font struct {
	w, h    int
	data    map[string]Glyph
	special map[string]Special
}

// New parses the embedded font asset. The asset is compiled in, so a
// parse failure is a programmer error.
func New() *Font {
	var ff fontFile
	errors.Must(json.Unmarshal(fontData, &ff))
	return &Font{w: ff.W, h: ff.H, data: ff.Data, special: ff.Special}
}

// Glyph returns the bitmap for the character, falling back to the
// "?" glyph for anything the font does not cover.
func (f *Font) Glyph(ch rune) Glyph {
	k := string(ch)
	if sp, ok := f.special[k]; ok {
		return sp.Data
	}
	if g, ok := f.data[k]; ok {
		return g
	}
	return f.data["?"]
}

// RenderGlyph draws a glyph with its top-left cell at (x0, y0).
func (f *Font) RenderGlyph(w PixelWriter, x0, y0 int, g Glyph, c cie.RGB255) {
	for dy, row := range g {
		for dx, v := range row {
			if v == 1 {
				w.PutPixel(x0+dx, y0+dy, c)
			}
		}
	}
}

// RenderString draws a string with 1px inter-character gaps,
// honouring per-character kerning of special glyphs.
func (f *Font) RenderString(w PixelWriter, x0, y0 int, s string, c cie.RGB255) {
	x := x0
	for _, ch := range s {
		if sp, ok := f.special[string(ch)]; ok {
			f.RenderGlyph(w, x+sp.XKern, y0-sp.YKern, sp.Data, c)
		} else {
			f.RenderGlyph(w, x, y0, f.Glyph(ch), c)
		}
		x += 1 + f.CharWidth(ch)
	}
}

// CharWidth returns the advance width of the character in pixels,
// not counting the inter-character gap.
func (f *Font) CharWidth(ch rune) int {
	if sp, ok := f.special[string(ch)]; ok {
		return len(sp.Data[0])
	}
	return f.w
}

// CharHeight returns the height of the character cell in pixels.
func (f *Font) CharHeight(ch rune) int {
	if sp, ok := f.special[string(ch)]; ok && sp.YKern != 0 {
		return f.h + sp.YKern
	}
	return f.h
}

// StrWidth returns the rendered width of the string.
func (f *Font) StrWidth(s string) int {
	rs := []rune(s)
	w := len(rs) - 1
	if w < 0 {
		w = 0
	}
	for _, ch := range rs {
		w += f.CharWidth(ch)
	}
	return w
}

// StrHeight returns the rendered height of the string.
func (f *Font) StrHeight(s string) int {
	h := 0
	for _, ch := range s {
		if ch := f.CharHeight(ch); ch > h {
			h = ch
		}
	}
	return h
}
