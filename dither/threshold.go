// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dither implements ordered dithering against a palette:
// threshold matrix generators (Bayer, white noise and
// void-and-cluster blue noise) and their application through a
// lightness-spread jitter.
package dither

import (
	"math/rand"

	"github.com/chewxy/math32"
)

// Threshold yields a dithering threshold in [0, 1] for every pixel
// position, addressed cyclically.
type Threshold interface {
	At(x, y int) float32
}

// Matrix is a threshold structure backed by a rank grid: Order holds
// each rank 0..W*H-1 exactly once.
type Matrix struct {
	W, H  int
	Order [][]int
}

// At returns the threshold at the given position, wrapping both
// coordinates around the matrix size.
func (m *Matrix) At(x, y int) float32 {
	max := m.W*m.H - 1
	if max == 0 {
		return 0
	}
	i := mod(x, m.W)
	j := mod(y, m.H)
	return float32(m.Order[j][i]) / float32(max)
}

// Binary thresholds the matrix at one half.
func (m *Matrix) Binary() [][]bool {
	data := make([][]bool, m.H)
	for j := range data {
		data[j] = make([]bool, m.W)
		for i := range data[j] {
			data[j][i] = m.At(i, j) > 0.5
		}
	}
	return data
}

// Bayer builds the classic recursive 2^n × 2^n ordered matrix:
// starting from a single zero cell, each step quadruples the size,
// placing 4k, 4k+2, 4k+3, 4k+1 into the NW, NE, SW and SE quadrants.
func Bayer(n int) *Matrix {
	d := 1
	order := [][]int{{0}}
	for s := 0; s < n; s++ {
		nd := d * 2
		no := make([][]int, nd)
		for j := range no {
			no[j] = make([]int, nd)
		}
		for i := 0; i < d; i++ {
			for j := 0; j < d; j++ {
				no[j][i] = 4 * order[j][i]
				no[j][d+i] = 4*order[j][i] + 2
				no[d+j][i] = 4*order[j][i] + 3
				no[d+j][d+i] = 4*order[j][i] + 1
			}
		}
		d = nd
		order = no
	}
	return &Matrix{W: d, H: d, Order: order}
}

// WhiteNoise fills a w×h matrix with a random permutation of the
// ranks drawn from the given source.
func WhiteNoise(w, h int, rng *rand.Rand) *Matrix {
	perm := rng.Perm(w * h)
	order := make([][]int, h)
	for j := range order {
		order[j] = make([]int, w)
		for i := range order[j] {
			order[j][i] = perm[j*w+i]
		}
	}
	return &Matrix{W: w, H: h, Order: order}
}

// BlueNoise builds a w×h void-and-cluster matrix: a white-noise
// binary pattern is relaxed by swapping the tightest cluster with the
// largest void until stable, then ranks are assigned by repeatedly
// removing the tightest cluster (downwards) and filling the largest
// void (upwards).
func BlueNoise(w, h int, rng *rand.Rand) *Matrix {
	initial := WhiteNoise(w, h, rng).Binary()
	for {
		cl := cluster(initial, w, h, true)
		x1, y1 := argmax(cl, w, h)
		initial[y1][x1] = false
		void := cluster(initial, w, h, false)
		x0, y0 := argmax(void, w, h)
		if x0 == x1 && y0 == y1 {
			initial[y1][x1] = true
			break
		}
		initial[y0][x0] = true
	}

	order := make([][]int, h)
	for j := range order {
		order[j] = make([]int, w)
	}
	ones := 0
	for _, row := range initial {
		for _, b := range row {
			if b {
				ones++
			}
		}
	}
	state := make([][]bool, h)
	for j := range state {
		state[j] = append([]bool(nil), initial[j]...)
	}
	for rank := ones - 1; rank >= 0; rank-- {
		cl := cluster(state, w, h, true)
		x1, y1 := argmax(cl, w, h)
		state[y1][x1] = false
		order[y1][x1] = rank
	}
	state = initial
	for rank := ones; rank < w*h; rank++ {
		void := cluster(state, w, h, false)
		x0, y0 := argmax(void, w, h)
		state[y0][x0] = true
		order[y0][x0] = rank
	}
	return &Matrix{W: w, H: h, Order: order}
}

// cluster measures, for every cell holding val, how tightly it is
// packed among same-valued cells: a Gaussian kernel sum (sigma 1.5)
// over a window of half the matrix size, with toroidal distances.
func cluster(data [][]bool, w, h int, val bool) [][]float32 {
	const s = 1.5
	out := make([][]float32, h)
	for j := range out {
		out[j] = make([]float32, w)
	}
	radius := w
	if h < w {
		radius = h
	}
	radius /= 2
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if data[y][x] != val {
				continue
			}
			for xi := x - radius; xi <= x+radius; xi++ {
				xx := mod(xi, w)
				for yi := y - radius; yi <= y+radius; yi++ {
					yy := mod(yi, h)
					if data[yy][xx] != val {
						continue
					}
					xmin, xmax := minMax(x, xx)
					ymin, ymax := minMax(y, yy)
					dx := float32(min(xmax-xmin, w+xmin-xmax))
					dy := float32(min(ymax-ymin, h+ymin-ymax))
					t := math32.Hypot(dx, dy) / s
					out[y][x] += math32.Exp(-(t * t) / 2)
				}
			}
		}
	}
	return out
}

func argmax(data [][]float32, w, h int) (int, int) {
	x, y := 0, 0
	vmax := data[0][0]
	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			if data[j][i] > vmax {
				x, y = i, j
				vmax = data[j][i]
			}
		}
	}
	return x, y
}

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}

func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
