// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"github.com/palscope/palscope/cam/cie"
	"github.com/palscope/palscope/palette"
	"github.com/palscope/palscope/plotcache"
	"github.com/palscope/palscope/text"
)

// The multithreaded shape: the Host goroutine owns the canvas, the
// widget workers hold Remote providers whose every primitive becomes
// a tagged operation on an unbuffered channel. Operations from one
// provider arrive in send order, which is the only ordering widgets
// may rely on.

type op interface {
	apply(g *Image)
}

type pixelOp struct {
	x, y int
	c    cie.RGB255
}

func (o pixelOp) apply(g *Image) { g.PutPixel(o.x, o.y, o.c) }

type frameOp struct {
	x, y, w, h int
	c          cie.RGB255
}

func (o frameOp) apply(g *Image) { g.Frame(o.x, o.y, o.w, o.h, o.c) }

type blockOp struct {
	x, y, w, h int
	c          cie.RGB255
}

func (o blockOp) apply(g *Image) { g.Block(o.x, o.y, o.w, o.h, o.c) }

type ditherOp struct {
	x, y, w, h int
	c1, c2     cie.RGB255
}

func (o ditherOp) apply(g *Image) { g.Dither(o.x, o.y, o.w, o.h, o.c1, o.c2) }

type lineOp struct {
	x0, y0, x1, y1 int
	c              cie.RGB255
	dotted         int
}

func (o lineOp) apply(g *Image) { g.Line(o.x0, o.y0, o.x1, o.y1, o.c, o.dotted) }

type circleOp struct {
	x, y, d int
	c       cie.RGB255
	dotted  int
}

func (o circleOp) apply(g *Image) { g.Circle(o.x, o.y, o.d, o.c, o.dotted) }

type discOp struct {
	x, y, d int
	c       cie.RGB255
}

func (o discOp) apply(g *Image) { g.Disc(o.x, o.y, o.d, o.c) }

type textOp struct {
	s    string
	x, y int
	p    text.Anchor
	font *text.Font
	c    cie.RGB255
}

func (o textOp) apply(g *Image) { g.Text(o.s, o.x, o.y, o.p, o.font, o.c) }

type vtextOp struct {
	s    string
	x, y int
	p    text.HAnchor
	font *text.Font
	c    cie.RGB255
}

func (o vtextOp) apply(g *Image) { g.VText(o.s, o.x, o.y, o.p, o.font, o.c) }

type glyphOp struct {
	x, y  int
	glyph text.Glyph
	font  *text.Font
	c     cie.RGB255
}

func (o glyphOp) apply(g *Image) { g.RenderGlyph(o.x, o.y, o.glyph, o.font, o.c) }

type plotDataOp struct {
	x, y int
	pal  *palette.Palette
	data *plotcache.PlotData
}

func (o plotDataOp) apply(g *Image) { g.BlitPlotData(o.x, o.y, o.pal, o.data) }

// Host applies operations from all registered Remote providers to
// the canvas it owns, in arrival order.
type Host struct {
	img *Image
	ops chan op
}

// NewHost returns a host owning the given canvas. The operation
// channel is unbuffered: every draw call suspends its worker until
// the host accepts it.
func NewHost(img *Image) *Host {
	return &Host{img: img, ops: make(chan op)}
}

// Register returns a new provider drawing through this host.
func (h *Host) Register() *Remote {
	return &Remote{ops: h.ops}
}

// Run applies operations until the host is closed.
func (h *Host) Run() {
	for o := range h.ops {
		o.apply(h.img)
	}
}

// Close shuts the operation channel down. It must only be called
// after every worker holding a provider has finished.
func (h *Host) Close() {
	close(h.ops)
}

// Remote is the worker-side graph provider: a send-only client of the
// host's canvas.
type Remote struct {
	ops chan<- op
}

func (r *Remote) PutPixel(x, y int, c cie.RGB255) {
	r.ops <- pixelOp{x: x, y: y, c: c}
}

func (r *Remote) Frame(x0, y0, w, h int, c cie.RGB255) {
	r.ops <- frameOp{x: x0, y: y0, w: w, h: h, c: c}
}

func (r *Remote) Block(x0, y0, w, h int, c cie.RGB255) {
	r.ops <- blockOp{x: x0, y: y0, w: w, h: h, c: c}
}

func (r *Remote) Dither(x0, y0, w, h int, c1, c2 cie.RGB255) {
	r.ops <- ditherOp{x: x0, y: y0, w: w, h: h, c1: c1, c2: c2}
}

func (r *Remote) Line(x0, y0, x1, y1 int, c cie.RGB255, dotted int) {
	r.ops <- lineOp{x0: x0, y0: y0, x1: x1, y1: y1, c: c, dotted: dotted}
}

func (r *Remote) Circle(x0, y0, d int, c cie.RGB255, dotted int) {
	r.ops <- circleOp{x: x0, y: y0, d: d, c: c, dotted: dotted}
}

func (r *Remote) Disc(x0, y0, d int, c cie.RGB255) {
	r.ops <- discOp{x: x0, y: y0, d: d, c: c}
}

func (r *Remote) Text(s string, x0, y0 int, p text.Anchor, font *text.Font, c cie.RGB255) {
	r.ops <- textOp{s: s, x: x0, y: y0, p: p, font: font, c: c}
}

func (r *Remote) VText(s string, x0, y0 int, p text.HAnchor, font *text.Font, c cie.RGB255) {
	r.ops <- vtextOp{s: s, x: x0, y: y0, p: p, font: font, c: c}
}

func (r *Remote) RenderGlyph(x0, y0 int, glyph text.Glyph, font *text.Font, c cie.RGB255) {
	r.ops <- glyphOp{x: x0, y: y0, glyph: glyph, font: font, c: c}
}

func (r *Remote) BlitPlotData(x0, y0 int, pal *palette.Palette, data *plotcache.PlotData) {
	r.ops <- plotDataOp{x: x0, y: y0, pal: pal, data: data}
}
