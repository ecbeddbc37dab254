// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"github.com/palscope/palscope/cam/cam16"
	"github.com/palscope/palscope/cam/cie"
)

// SpectralStats maps each palette colour onto its nearest spectral
// wavelength about the illuminant's white point, for colours whose
// hue lies on the spectral arc. It returns the total weight per
// wavelength, weighting each colour by its chroma (C/100, clamped to
// [0, 1]), and the wavelength assigned to each participating index.
// Weights are normalised to sum to 1 when any weight accrued.
func (p *Palette) SpectralStats(il *cam16.Illuminant) (stats map[float32]float32, points map[int]float32) {
	stats = map[float32]float32{}
	points = map[int]float32{}
	o := cie.XYZ{X: il.XW, Y: il.YW, Z: il.ZW}.XY()
	for i := 0; i < p.N; i++ {
		xy := p.XYZ[i].XY()
		wl, ok := xy.TryNearestSpectral(o)
		if !ok {
			continue
		}
		weight := clamp01(p.CAM[i].C / 100)
		stats[float32(wl)] += weight
		points[i] = float32(wl)
	}
	normalise(stats)
	return stats, points
}

// CCTStats maps each palette colour onto its correlated colour
// temperature, for colours close enough to the daylight locus.
// Colours are weighted by their proximity to the locus
// (1 - 20*dist in u'v'). Weights are normalised to sum to 1 when any
// weight accrued.
func (p *Palette) CCTStats() (stats map[float32]float32, points map[int]float32) {
	stats = map[float32]float32{}
	points = map[int]float32{}
	for i := 0; i < p.N; i++ {
		t, dist, ok := p.XYZ[i].UV().CCT()
		if !ok {
			continue
		}
		stats[t] += 1 - dist*20
		points[i] = t
	}
	normalise(stats)
	return stats, points
}

func normalise(stats map[float32]float32) {
	norm := float32(0)
	for _, v := range stats {
		norm += v
	}
	if norm <= 0 {
		return
	}
	for k, v := range stats {
		stats[k] = v / norm
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
