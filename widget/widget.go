// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package widget renders the analysis image: each widget draws one
// diagnostic into its declared rectangle through the graph and cache
// providers, and the orchestrator runs the whole layout either
// sequentially or with one worker goroutine per widget.
package widget

import (
	"github.com/chewxy/math32"

	"github.com/palscope/palscope/cam/cam16"
	"github.com/palscope/palscope/graph"
	"github.com/palscope/palscope/palette"
	"github.com/palscope/palscope/plotcache"
	"github.com/palscope/palscope/text"
)

// Widget draws itself at (x0, y0). A widget must stay within the
// rectangle implied by its parameters and must emit everything it
// draws through the one provider it is given, since only
// per-provider ordering is guaranteed.
type Widget interface {
	Render(g graph.Provider, cache plotcache.Provider,
		pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
		x0, y0 int)
}

// EvalState is a traffic-light glyph drawn next to metric boxes.
type EvalState int

const (
	EvalOk EvalState = iota
	EvalWarn
	EvalAlert
)

func (e EvalState) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	const d = 11
	g.Frame(x0, y0, d, d, pal.BgRGB)
	glyph := text.OkGlyph
	switch e {
	case EvalWarn:
		glyph = text.WarnGlyph
	case EvalAlert:
		glyph = text.AlertGlyph
	}
	g.RenderGlyph(x0+2, y0+2, glyph, font, pal.FgRGB)
}

// BarBox is a framed box with caption lines and a progress bar, used
// for scalar metrics. An optional threshold in [0, 1] is marked with
// ticks above and below the bar.
type BarBox struct {
	W, H      int
	Text      []string
	V         float32
	Threshold float32
	HasThresh bool
}

func (b BarBox) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	g.Frame(x0, y0, b.W, b.H, pal.BgRGB)
	textX := x0 + b.W/2
	for i, s := range b.Text {
		g.Text(s, textX, y0+2+6*i, text.N, font, pal.FgRGB)
	}

	barX := x0 + 2
	barY := y0 + b.H - 7
	barW := b.W - 4
	barH := 4
	progress := b.V
	if math32.IsNaN(progress) {
		progress = 0
	}
	progress = clamp(progress, 0, 1)
	progressW := clampInt(int(float32(barW-2)*progress), 0, barW-2)
	g.Frame(barX, barY, barW, barH, pal.BgRGB)
	g.Block(barX+1, barY+1, progressW, barH-2, pal.FgRGB)

	if b.HasThresh {
		t := clamp(b.Threshold, 0, 1)
		thresholdW := clampInt(int(float32(barW-2)*t), 0, barW-2)
		g.Line(barX+1+thresholdW, barY-1, barX+barW-1, barY-1, pal.BgRGB, 0)
		g.Line(barX+1+thresholdW, barY+barH, barX+barW-1, barY+barH, pal.BgRGB, 0)
	}
}

// YesNoBox is a framed box with caption lines and a yes/no verdict.
type YesNoBox struct {
	W, H int
	Text []string
	V    bool
}

func (b YesNoBox) Render(g graph.Provider, cache plotcache.Provider,
	pal *palette.Palette, il *cam16.Illuminant, font *text.Font,
	x0, y0 int) {
	g.Frame(x0, y0, b.W, b.H, pal.BgRGB)
	textX := x0 + b.W/2
	for i, s := range b.Text {
		g.Text(s, textX, y0+2+6*i, text.N, font, pal.FgRGB)
	}
	s := "<no>"
	if b.V {
		s = "<yes>"
	}
	g.Text(s, textX, y0+b.H-3, text.S, font, pal.FgRGB)
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

func clampInt(v, mn, mx int) int {
	if v < mn {
		return mn
	}
	if v > mx {
		return mx
	}
	return v
}
