// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotcache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palscope/palscope/cam/cam16"
	"github.com/palscope/palscope/cam/cie"
)

func d65() *cam16.Illuminant {
	return cam16.NewIlluminant(cie.FromTemp(6503.51))
}

func testPlot(w, h int) func() *PlotData {
	return func() *PlotData {
		d := NewPlotData(w, h)
		for i := 0; i < w; i++ {
			for j := 0; j < h; j++ {
				if (i+j)%2 == 0 {
					d.Set(i, j, cam16.UCS{J: float32(i), A: float32(j)})
				}
			}
		}
		return d
	}
}

func TestPlotData(t *testing.T) {
	d := NewPlotData(3, 2)
	_, ok := d.At(1, 1)
	assert.False(t, ok)
	d.Set(1, 1, cam16.UCS{J: 5})
	c, ok := d.At(1, 1)
	assert.True(t, ok)
	assert.Equal(t, float32(5), c.J)
	_, ok = d.At(2, 0)
	assert.False(t, ok)
}

func TestSingleProviderMemoizes(t *testing.T) {
	cacher := NewCacher()
	p := NewSingle(5500, d65(), cacher)
	calls := 0
	produce := func() *PlotData {
		calls++
		return testPlot(4, 4)()
	}
	first := p.GetPlot("test", produce)
	second := p.GetPlot("test", produce)
	assert.Equal(t, 1, calls)
	assert.Same(t, first, second)
}

func TestPlotIdempotence(t *testing.T) {
	p := NewSingle(5500, d65(), NewCacher())
	a := p.GetPlot("k", testPlot(6, 5))
	b := p.GetPlot("k", testPlot(6, 5))
	assert.Equal(t, a.Mask, b.Mask)
	assert.Equal(t, a.Cells, b.Cells)
}

func TestCacheKeys(t *testing.T) {
	c := NewCacher()
	c.SetPlot(5000, "a", testPlot(2, 2)())
	assert.NotNil(t, c.Plot(5000, "a"))
	assert.Nil(t, c.Plot(5000, "b"))
	assert.Nil(t, c.Plot(5500, "a"))

	c.SetSpectrum(5000, 0.8, []cam16.UCS{{J: 1}})
	assert.NotNil(t, c.Spectrum(5000, 0.8))
	assert.Nil(t, c.Spectrum(5000, 0.5))

	c.SetBoundary(5000, make([]float32, BoundaryBins))
	assert.NotNil(t, c.Boundary(5000))
	assert.Nil(t, c.Boundary(6000))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c := NewCacher()
	c.SetPlot(5500, "k", testPlot(3, 3)())
	c.SetSpectrum(5500, 0.8, []cam16.UCS{{J: 1, A: 2, B: 3, C: 4}})
	c.SetBoundary(5500, []float32{0.5, 0.25})
	require.NoError(t, c.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Version, loaded.Version)
	assert.Equal(t, c.Plots, loaded.Plots)
	assert.Equal(t, c.Spectra, loaded.Spectra)
	assert.Equal(t, c.Boundaries, loaded.Boundaries)
}

func TestVersionMismatchDiscards(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c := NewCacher()
	c.SetBoundary(5500, []float32{1})
	c.Version = Version + 1
	require.NoError(t, c.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.Boundaries)
	assert.Equal(t, Version, loaded.Version)
}

func TestInitSurvivesMissingCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c := Init()
	require.NotNil(t, c)
	assert.Equal(t, Version, c.Version)
}

func TestComputeSpectrum(t *testing.T) {
	il := d65()
	s := ComputeSpectrum(il, 0.8)
	assert.Len(t, s, SpectrumLen)

	// ratio 0 is the pure endpoint mix: J varies monotonically
	// between the two endpoints
	s0 := ComputeSpectrum(il, 0)
	assert.Len(t, s0, SpectrumLen)
	min := cam16.FromXYZ(cie.Wavelength(cie.WavelengthMin).XYZ(), il)
	max := cam16.FromXYZ(cie.Wavelength(cie.WavelengthMax).XYZ(), il)
	assert.InDelta(t, max.J, s0[0].J, 1e-4)
	assert.InDelta(t, min.J, s0[SpectrumLen-1].J, 1e-4)
}

func TestBoundaryCompleteness(t *testing.T) {
	if testing.Short() {
		t.Skip("boundary sweep is slow")
	}
	il := d65()
	b := ComputeBoundary(il)
	require.Len(t, b, BoundaryBins)
	maxC := float32(0)
	for i, v := range b {
		assert.Greater(t, v, float32(0), "bin %d is empty", i)
		if v > maxC {
			maxC = v
		}
	}
	// the most chromatic bin belongs to the most chromatic
	// primary or secondary
	best := float32(0)
	for _, c := range []cie.RGB255{
		{R: 255}, {G: 255}, {B: 255},
		{R: 255, G: 255}, {G: 255, B: 255}, {R: 255, B: 255},
	} {
		chr := cam16.FromRGB(c, il).C / 100
		if chr > best {
			best = chr
		}
	}
	assert.InDelta(t, best, maxC, 1e-4)
}

func TestMultiProviderThroughHost(t *testing.T) {
	cacher := NewCacher()
	host := NewHost(cacher)
	il := d65()

	done := make(chan struct{})
	go func() { host.Run(); close(done) }()

	const workers = 4
	providers := make([]*Multi, workers)
	for i := range providers {
		providers[i] = host.Register(5500, il)
	}
	var wg sync.WaitGroup
	results := make([]*PlotData, workers)
	for i := range providers {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = providers[i].GetPlot("shared", testPlot(5, 5))
		}()
	}
	wg.Wait()
	host.Close()
	<-done

	// every worker saw the same matrix content, and the cache holds it
	require.NotNil(t, cacher.Plot(5500, "shared"))
	for _, r := range results {
		assert.Equal(t, results[0].Cells, r.Cells)
		assert.Equal(t, results[0].Mask, r.Mask)
	}
}

func TestUncached(t *testing.T) {
	p := NewSingle(5500, d65(), NewCacher())
	nc := p.Uncached()
	calls := 0
	produce := func() *PlotData {
		calls++
		return testPlot(2, 2)()
	}
	nc.GetPlot("k", produce)
	nc.GetPlot("k", produce)
	assert.Equal(t, 2, calls)
	assert.Same(t, nc, nc.Uncached())
}
