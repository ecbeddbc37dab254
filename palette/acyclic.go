// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "sort"

// unionFind is a disjoint-set forest with path halving.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(i int) int {
	for uf.parent[i] != i {
		uf.parent[i] = uf.parent[uf.parent[i]]
		i = uf.parent[i]
	}
	return i
}

func (uf *unionFind) union(i, j int) {
	uf.parent[uf.find(i)] = uf.find(j)
}

// IsAcyclic reports whether the palette's similarity structure is
// free of short cycles. All pairs are visited in ascending CAM16-UCS
// distance order, growing a minimum spanning forest; when a pair
// closes within an existing component, it only passes if some
// intermediate colour is already marked adjacent to both ends
// (a 2-hop witness). A closing pair without a witness is a cycle.
func (p *Palette) IsAcyclic() bool {
	type edge struct {
		i, j int
		d    float32
	}
	var edges []edge
	for i := 0; i < p.N-1; i++ {
		for j := i + 1; j < p.N; j++ {
			edges = append(edges, edge{i: i, j: j, d: p.CAM[i].Dist(p.CAM[j])})
		}
	}
	sort.SliceStable(edges, func(a, b int) bool { return edges[a].d < edges[b].d })

	connected := make(map[Pair]bool, p.N)
	for i := 0; i < p.N; i++ {
		connected[Pair{I: i, J: i}] = true
	}
	uf := newUnionFind(p.N)
	for _, e := range edges {
		if uf.find(e.i) != uf.find(e.j) {
			uf.union(e.i, e.j)
		} else {
			witness := false
			for k := 0; k < p.N; k++ {
				if connected[Pair{I: e.i, J: k}] && connected[Pair{I: k, J: e.j}] {
					witness = true
					break
				}
			}
			if !witness {
				return false
			}
		}
		connected[Pair{I: e.i, J: e.j}] = true
		connected[Pair{I: e.j, J: e.i}] = true
	}
	return true
}
