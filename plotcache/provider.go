// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotcache

import "github.com/palscope/palscope/cam/cam16"

// Provider is the cache access contract widgets render against.
// Implementations differ in where the memo store lives; a producer
// must be a pure function of the illuminant and the key parameters,
// so that recomputing on a racing miss is idempotent.
type Provider interface {
	// GetPlot returns the plot stored under key, calling produce
	// on a miss.
	GetPlot(key string, produce func() *PlotData) *PlotData

	// GetBoundary returns the gamut boundary for the provider's
	// illuminant.
	GetBoundary() []float32

	// GetSpectrum returns the spectral ramp with the given
	// locus/mix ratio.
	GetSpectrum(ratio float32) []cam16.UCS

	// Uncached returns a provider that always recomputes, for
	// plots that are cheaper to redo than to store.
	Uncached() *NoCache
}

// NoCache recomputes every request. It carries its own copy of the
// illuminant so it stays valid on any goroutine.
type NoCache struct {
	t  float32
	il *cam16.Illuminant
}

// NewNoCache returns a provider that never stores anything.
func NewNoCache(t float32, il *cam16.Illuminant) *NoCache {
	return &NoCache{t: t, il: il}
}

func (p *NoCache) GetPlot(key string, produce func() *PlotData) *PlotData {
	return produce()
}

func (p *NoCache) GetBoundary() []float32 {
	return ComputeBoundary(p.il)
}

func (p *NoCache) GetSpectrum(ratio float32) []cam16.UCS {
	return ComputeSpectrum(p.il, ratio)
}

func (p *NoCache) Uncached() *NoCache {
	return p
}

// Single owns the cacher exclusively for the duration of a
// single-threaded run; misses compute and store in place.
type Single struct {
	t      float32
	il     *cam16.Illuminant
	cacher *Cacher
}

// NewSingle returns a provider borrowing the given cacher.
func NewSingle(t float32, il *cam16.Illuminant, cacher *Cacher) *Single {
	return &Single{t: t, il: il, cacher: cacher}
}

func (p *Single) GetPlot(key string, produce func() *PlotData) *PlotData {
	if d := p.cacher.Plot(p.t, key); d != nil {
		return d
	}
	d := produce()
	p.cacher.SetPlot(p.t, key, d)
	return d
}

func (p *Single) GetBoundary() []float32 {
	if b := p.cacher.Boundary(p.t); b != nil {
		return b
	}
	b := ComputeBoundary(p.il)
	p.cacher.SetBoundary(p.t, b)
	return b
}

func (p *Single) GetSpectrum(ratio float32) []cam16.UCS {
	if s := p.cacher.Spectrum(p.t, ratio); s != nil {
		return s
	}
	s := ComputeSpectrum(p.il, ratio)
	p.cacher.SetSpectrum(p.t, ratio, s)
	return s
}

func (p *Single) Uncached() *NoCache {
	return NewNoCache(p.t, p.il)
}
