// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"sync"

	"github.com/chewxy/math32"
)

const (
	// CCTMin is the lowest tabulated colour temperature in Kelvin.
	CCTMin = 1000
	// CCTMax is the highest tabulated colour temperature in Kelvin.
	CCTMax = 25000
	// CCTStep is the table step in Kelvin.
	CCTStep = 100
)

// CCTMaxDist is the u'v' distance beyond which a colour is considered
// off the daylight locus and has no correlated colour temperature.
const CCTMaxDist = 0.05

type cctEntry struct {
	t  float32
	uv UV
}

var (
	cctOnce  sync.Once
	cctTable []cctEntry
)

// The table is fixed, so it is computed once per process.
func cct() []cctEntry {
	cctOnce.Do(func() {
		for t := CCTMin; t <= CCTMax; t += CCTStep {
			cctTable = append(cctTable, cctEntry{
				t:  float32(t),
				uv: FromTemp(float32(t)).UV(),
			})
		}
	})
	return cctTable
}

// CCT returns the correlated colour temperature of the chromaticity:
// the tabulated temperature whose daylight-locus point is nearest in
// u'v', together with that distance. ok is false when the distance
// exceeds [CCTMaxDist], meaning the colour is too far off the locus.
func (c UV) CCT() (t, dist float32, ok bool) {
	min := float32(math32.MaxFloat32)
	best := float32(0)
	for _, e := range cct() {
		d := c.Dist(e.uv)
		if d < min {
			best = e.t
			min = d
		}
	}
	if min > CCTMaxDist {
		return 0, 0, false
	}
	return best, min, true
}
