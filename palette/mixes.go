// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"sort"

	"github.com/chewxy/math32"

	"github.com/palscope/palscope/cam/cam16"
)

// Pair is an unordered pair of palette indices.
type Pair struct {
	I, J int
}

// Mix returns the CAM16-UCS midpoint of the pair.
func (p *Palette) Mix(pr Pair) cam16.UCS {
	return cam16.Midpoint(p.CAM[pr.I], p.CAM[pr.J])
}

// UsefulMixes greedily selects up to max index pairs whose midpoints
// add the most to the palette. The initial score of a pair is the
// distance from its mix to the nearest existing palette entry; after
// each pick every remaining pair's score grows by the distance
// between its mix and the mix just chosen. Note that the growth is
// added uniformly as a positive term, which biases towards the
// earliest picks; the behaviour is kept as is.
func (p *Palette) UsefulMixes(max int) []Pair {
	if max > p.N*(p.N-1)/2 {
		max = p.N * (p.N - 1) / 2
	}
	type scored struct {
		score float32
		pair  Pair
	}
	var scores []scored
	for i := 0; i < p.N-1; i++ {
		for j := i + 1; j < p.N; j++ {
			pr := Pair{I: i, J: j}
			scores = append(scores, scored{
				score: p.distToNearest(p.Mix(pr)),
				pair:  pr,
			})
		}
	}
	var mixes []Pair
	for len(mixes) < max {
		sort.SliceStable(scores, func(a, b int) bool {
			return scores[a].score < scores[b].score
		})
		best := scores[len(scores)-1].pair
		mixes = append(mixes, best)

		mixed := p.Mix(best)
		scores = scores[:len(scores)-1]
		for i := range scores {
			scores[i].score += p.Mix(scores[i].pair).Dist(mixed)
		}
	}
	return mixes
}

// distToNearest is the distance from x to the closest palette entry.
func (p *Palette) distToNearest(x cam16.UCS) float32 {
	min := float32(math32.MaxFloat32)
	for _, y := range p.CAM {
		if d := x.Dist(y); d < min {
			min = d
		}
	}
	return min
}
