// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotcache

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chewxy/math32"

	"github.com/palscope/palscope/base/logx"
	"github.com/palscope/palscope/cam/cam16"
	"github.com/palscope/palscope/cam/cie"
)

// Version tags the on-disk cache format. A loaded cache with any
// other version is discarded.
const Version = 2

// BoundaryBins is the number of angular bins in a gamut boundary.
const BoundaryBins = 400

// SpectrumLen is the number of samples in a spectral ramp.
const SpectrumLen = 800

// PlotKey addresses a cached plot: the illuminant temperature plus a
// short identifier such as "RectJCh:C=40.00".
type PlotKey struct {
	T   float32
	Key string
}

// SpectrumKey addresses a cached spectral ramp.
type SpectrumKey struct {
	T     float32
	Ratio float32
}

// Cacher is the whole memo store. All access goes through a provider;
// the zero value is not usable, construct with NewCacher or Init.
type Cacher struct {
	Version    int
	Plots      map[PlotKey]*PlotData
	Spectra    map[SpectrumKey][]cam16.UCS
	Boundaries map[float32][]float32
}

// NewCacher returns an empty cache at the current version.
func NewCacher() *Cacher {
	return &Cacher{
		Version:    Version,
		Plots:      map[PlotKey]*PlotData{},
		Spectra:    map[SpectrumKey][]cam16.UCS{},
		Boundaries: map[float32][]float32{},
	}
}

// Plot returns the cached plot for the key, or nil.
func (c *Cacher) Plot(t float32, key string) *PlotData {
	return c.Plots[PlotKey{T: t, Key: key}]
}

// SetPlot stores a plot under the key.
func (c *Cacher) SetPlot(t float32, key string, d *PlotData) {
	c.Plots[PlotKey{T: t, Key: key}] = d
}

// Spectrum returns the cached spectral ramp, or nil.
func (c *Cacher) Spectrum(t, ratio float32) []cam16.UCS {
	return c.Spectra[SpectrumKey{T: t, Ratio: ratio}]
}

// SetSpectrum stores a spectral ramp.
func (c *Cacher) SetSpectrum(t, ratio float32, s []cam16.UCS) {
	c.Spectra[SpectrumKey{T: t, Ratio: ratio}] = s
}

// Boundary returns the cached gamut boundary for the temperature, or nil.
func (c *Cacher) Boundary(t float32) []float32 {
	return c.Boundaries[t]
}

// SetBoundary stores a gamut boundary.
func (c *Cacher) SetBoundary(t float32, b []float32) {
	c.Boundaries[t] = b
}

// ComputeBoundary builds the gamut boundary under the given
// adaptation state: an angular histogram over all six faces of the
// sRGB cube keeping, per hue bin, the maximum chroma (C/100)
// observed. The result bounds the chroma reachable at each hue.
func ComputeBoundary(il *cam16.Illuminant) []float32 {
	boundary := make([]float32, BoundaryBins)
	consider := func(r, g, b uint8) {
		c := cam16.FromRGB(cie.RGB255{R: r, G: g, B: b}, il)
		i := nearestAngle(BoundaryBins, c.Hue())
		chr := c.C / 100
		if chr > boundary[i] {
			boundary[i] = chr
		}
	}
	// Iterating the faces of the RGB cube is enough: the boundary of
	// the gamut image is the image of the cube boundary.
	for i := 0; i <= 255; i++ {
		for j := 0; j <= 255; j++ {
			consider(0, uint8(i), uint8(j))
			consider(uint8(i), 0, uint8(j))
			consider(uint8(i), uint8(j), 0)
			consider(255, uint8(i), uint8(j))
			consider(uint8(i), 255, uint8(j))
			consider(uint8(i), uint8(j), 255)
		}
	}
	return boundary
}

func nearestAngle(n int, a float32) int {
	i := int(math32.Round(a * float32(n)))
	if i < 0 {
		i = 0
	}
	if i > n {
		i = n
	}
	return i % n
}

// ComputeSpectrum builds an 800-sample CAM16-UCS ramp. The first
// ratio fraction follows the monochromatic locus from 4100 to
// 6650 Å; the remainder linearly mixes the long-wavelength endpoint
// back into the short one across all four components.
func ComputeSpectrum(il *cam16.Illuminant, ratio float32) []cam16.UCS {
	data := make([]cam16.UCS, 0, SpectrumLen)
	min := cam16.FromXYZ(cie.Wavelength(cie.WavelengthMin).XYZ(), il)
	max := cam16.FromXYZ(cie.Wavelength(cie.WavelengthMax).XYZ(), il)
	for i := 0; i < SpectrumLen; i++ {
		x := float32(i) / float32(SpectrumLen-1)
		if x <= ratio && ratio > 0 {
			x /= ratio
			wl := cie.WavelengthMin + x*(cie.WavelengthMax-cie.WavelengthMin)
			data = append(data, cam16.FromXYZ(cie.Wavelength(wl).XYZ(), il))
		} else {
			x = (x - ratio) / (1 - ratio)
			data = append(data, cam16.Mix(max, min, x))
		}
	}
	return data
}

// cacheFile resolves the cache location under the platform user
// cache directory.
func cacheFile() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("choosing app cache directory: %w", err)
	}
	return filepath.Join(dir, "palscope", "cache.bin"), nil
}

// Save serialises the cache into the user cache directory.
func (c *Cacher) Save() error {
	file, err := cacheFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return err
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}
	return nil
}

// Load reads the cache back from disk. A cache written by a different
// version is silently replaced with an empty one.
func Load() (*Cacher, error) {
	file, err := cacheFile()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c := &Cacher{}
	if err := gob.NewDecoder(f).Decode(c); err != nil {
		return nil, fmt.Errorf("decoding cache: %w", err)
	}
	if c.Version != Version {
		return NewCacher(), nil
	}
	// gob omits empty maps, so a freshly-saved cache decodes with
	// nil ones
	if c.Plots == nil {
		c.Plots = map[PlotKey]*PlotData{}
	}
	if c.Spectra == nil {
		c.Spectra = map[SpectrumKey][]cam16.UCS{}
	}
	if c.Boundaries == nil {
		c.Boundaries = map[float32][]float32{}
	}
	return c, nil
}

// Init loads the cache, falling back to an empty one on any failure.
// Cache trouble is never fatal; it is only reported in verbose mode.
func Init() *Cacher {
	c, err := Load()
	if err != nil {
		logx.PrintlnInfo("Cache loading failed:", err)
		return NewCacher()
	}
	return c
}
