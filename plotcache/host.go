// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotcache

import "github.com/palscope/palscope/cam/cam16"

// The multithreaded shape: one Host goroutine owns the cacher and
// serialises all reads and writes arriving from Multi providers on
// worker goroutines. Reads are request/response; writes are
// fire-and-forget. The first write for a key wins; later writes for
// the same key are dropped, and would carry an identical value anyway
// since producers are pure.

type cacheOp int

const (
	opPlotGet cacheOp = iota
	opPlotSet
	opBoundaryGet
	opBoundarySet
	opSpectrumGet
	opSpectrumSet
)

type cacheRequest struct {
	op    cacheOp
	t     float32
	key   string
	ratio float32

	plot     *PlotData
	boundary []float32
	spectrum []cam16.UCS

	// reply is non-nil for get requests only.
	reply chan cacheReply
}

type cacheReply struct {
	plot     *PlotData
	boundary []float32
	spectrum []cam16.UCS
}

// Host serialises cache access for Multi providers. Run it on its own
// goroutine; it exits when Close is called after all workers finished.
type Host struct {
	cacher *Cacher
	req    chan cacheRequest
}

// NewHost returns a host around the given cacher. The request channel
// is unbuffered: every cache access suspends its worker until the
// host picks the request up.
func NewHost(cacher *Cacher) *Host {
	return &Host{cacher: cacher, req: make(chan cacheRequest)}
}

// Register returns a new provider connected to this host for a worker
// rendering under the given illuminant.
func (h *Host) Register(t float32, il *cam16.Illuminant) *Multi {
	return &Multi{t: t, il: il, req: h.req}
}

// Run processes requests until the host is closed.
func (h *Host) Run() {
	for r := range h.req {
		switch r.op {
		case opPlotGet:
			r.reply <- cacheReply{plot: h.cacher.Plot(r.t, r.key)}
		case opPlotSet:
			if h.cacher.Plot(r.t, r.key) == nil {
				h.cacher.SetPlot(r.t, r.key, r.plot)
			}
		case opBoundaryGet:
			r.reply <- cacheReply{boundary: h.cacher.Boundary(r.t)}
		case opBoundarySet:
			if h.cacher.Boundary(r.t) == nil {
				h.cacher.SetBoundary(r.t, r.boundary)
			}
		case opSpectrumGet:
			r.reply <- cacheReply{spectrum: h.cacher.Spectrum(r.t, r.ratio)}
		case opSpectrumSet:
			if h.cacher.Spectrum(r.t, r.ratio) == nil {
				h.cacher.SetSpectrum(r.t, r.ratio, r.spectrum)
			}
		}
	}
}

// Close shuts the request channel down. It must only be called after
// every worker holding a provider has finished.
func (h *Host) Close() {
	close(h.req)
}

// Multi is the worker-side cache provider. On a miss it computes
// locally, so the expensive loops run in parallel across workers, and
// posts the result back without waiting.
type Multi struct {
	t   float32
	il  *cam16.Illuminant
	req chan cacheRequest
}

func (p *Multi) GetPlot(key string, produce func() *PlotData) *PlotData {
	reply := make(chan cacheReply)
	p.req <- cacheRequest{op: opPlotGet, t: p.t, key: key, reply: reply}
	if d := (<-reply).plot; d != nil {
		return d
	}
	d := produce()
	p.req <- cacheRequest{op: opPlotSet, t: p.t, key: key, plot: d}
	return d
}

func (p *Multi) GetBoundary() []float32 {
	reply := make(chan cacheReply)
	p.req <- cacheRequest{op: opBoundaryGet, t: p.t, reply: reply}
	if b := (<-reply).boundary; b != nil {
		return b
	}
	b := ComputeBoundary(p.il)
	p.req <- cacheRequest{op: opBoundarySet, t: p.t, boundary: b}
	return b
}

func (p *Multi) GetSpectrum(ratio float32) []cam16.UCS {
	reply := make(chan cacheReply)
	p.req <- cacheRequest{op: opSpectrumGet, t: p.t, ratio: ratio, reply: reply}
	if s := (<-reply).spectrum; s != nil {
		return s
	}
	s := ComputeSpectrum(p.il, ratio)
	p.req <- cacheRequest{op: opSpectrumSet, t: p.t, ratio: ratio, spectrum: s}
	return s
}

func (p *Multi) Uncached() *NoCache {
	return NewNoCache(p.t, p.il)
}
