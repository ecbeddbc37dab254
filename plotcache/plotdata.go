// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotcache memoizes the expensive per-plot computations:
// dense CAM16-UCS sample maps, spectral ramps and the gamut boundary,
// keyed by the illuminant temperature. The cache persists between
// runs in the user cache directory. Three provider shapes share one
// interface so widgets render identically with no cache, an
// exclusively borrowed cache, or a cache hosted on another goroutine.
package plotcache

import "github.com/palscope/palscope/cam/cam16"

// PlotData is a dense w×h matrix of optional CAM16-UCS samples.
// Unset cells mark points outside the plot's domain, e.g. outside a
// polar disc. Entries are write-once: plots are filled by a single
// producer and then only read.
type PlotData struct {
	W, H  int
	Cells []cam16.UCS
	Mask  []bool
}

// NewPlotData returns an empty w×h matrix with all cells unset.
func NewPlotData(w, h int) *PlotData {
	return &PlotData{
		W:     w,
		H:     h,
		Cells: make([]cam16.UCS, w*h),
		Mask:  make([]bool, w*h),
	}
}

// At returns the sample at (x, y) and whether it is set.
func (d *PlotData) At(x, y int) (cam16.UCS, bool) {
	i := y*d.W + x
	return d.Cells[i], d.Mask[i]
}

// Set stores a sample at (x, y).
func (d *PlotData) Set(x, y int, c cam16.UCS) {
	i := y*d.W + x
	d.Cells[i] = c
	d.Mask[i] = true
}
