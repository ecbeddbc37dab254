// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palscope/palscope/base/pngx"
	"github.com/palscope/palscope/cam/cam16"
	"github.com/palscope/palscope/cam/cie"
	"github.com/palscope/palscope/palette"
	"github.com/palscope/palscope/plotcache"
	"github.com/palscope/palscope/text"
)

func d55() *cam16.Illuminant {
	return cam16.NewIlluminant(cie.FromTemp(5500))
}

func newTestPalette(t *testing.T) *palette.Palette {
	t.Helper()
	return palette.New(testColours, d55(), false)
}

var testColours = []cie.RGB255{
	{R: 0x1a, G: 0x1c, B: 0x2c},
	{R: 0xb1, G: 0x3e, B: 0x53},
	{R: 0xff, G: 0xcd, B: 0x75},
	{R: 0x38, G: 0xb7, B: 0x64},
	{R: 0x3b, G: 0x5d, B: 0xc9},
	{R: 0xff, G: 0xff, B: 0xff},
}

func runAnalyse(t *testing.T, multithreaded bool, icc []byte) string {
	t.Helper()
	out := filepath.Join(t.TempDir(), "plot.png")
	err := Analyse(Options{
		Colours:       testColours,
		ICC:           icc,
		T:             5500,
		Multithreaded: multithreaded,
		OutFile:       out,
		Cacher:        plotcache.NewCacher(),
		Font:          text.New(),
	})
	require.NoError(t, err)
	return out
}

func TestAnalyseSinglethreaded(t *testing.T) {
	if testing.Short() {
		t.Skip("full analysis render is slow")
	}
	out := runAnalyse(t, false, nil)
	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, Width, img.Bounds().Dx())
	assert.Equal(t, Height, img.Bounds().Dy())
}

func TestAnalyseMultithreadedMatchesDimensions(t *testing.T) {
	if testing.Short() {
		t.Skip("full analysis render is slow")
	}
	out := runAnalyse(t, true, nil)
	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, Width, cfg.Width)
	assert.Equal(t, Height, cfg.Height)
}

func TestAnalyseCarriesICCProfile(t *testing.T) {
	if testing.Short() {
		t.Skip("full analysis render is slow")
	}
	profile := []byte("test profile bytes")
	out := runAnalyse(t, false, profile)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	got, err := pngx.Profile(data)
	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestLayoutEmitsAllWidgets(t *testing.T) {
	il := d55()
	pal := newTestPalette(t)
	font := text.New()
	tasks := layout(pal, il, font)
	// small palettes get the useful-mixes and neutralisers panels
	assert.GreaterOrEqual(t, len(tasks), 25)
}
