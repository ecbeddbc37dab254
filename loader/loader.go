// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loader turns the supported palette sources into colour
// lists: comma-separated hex values, hex files, images and remote
// lospec palettes. It also validates palettes and loads the input
// images for dithering.
package loader

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	// Decoders registered for image.Decode: the stdlib set here, the
	// x/image ones below.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	palscope "github.com/palscope/palscope"
	"github.com/palscope/palscope/base/pngx"
	"github.com/palscope/palscope/cam/cie"
)

// Loaded is a palette source's output: the colour list plus an ICC
// profile when the source carried one.
type Loaded struct {
	Colours []cie.RGB255
	ICC     []byte
}

// ParseHex parses a 6-digit hex colour, with an optional leading '#'.
func ParseHex(s string) (cie.RGB255, error) {
	if len(s) < 6 || len(s) > 7 || (len(s) == 7 && !strings.HasPrefix(s, "#")) {
		return cie.RGB255{}, ErrInvalidHexLength
	}
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return cie.RGB255{}, ErrInvalidHexLength
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return cie.RGB255{}, ErrNonHexCharacters
	}
	return cie.RGB255{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// FromHex loads a palette from a list of hex values.
func FromHex(list []string) (*Loaded, error) {
	colours := make([]cie.RGB255, 0, len(list))
	for _, s := range list {
		c, err := ParseHex(s)
		if err != nil {
			return nil, err
		}
		colours = append(colours, c)
	}
	return &Loaded{Colours: colours}, nil
}

// FromFile loads a palette from a file with one hex value per line.
// Blank lines are skipped.
func FromFile(filename string) (*Loaded, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening palette file: %w", err)
	}
	defer f.Close()
	var colours []cie.RGB255
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		c, err := ParseHex(line)
		if err != nil {
			return nil, err
		}
		colours = append(colours, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}
	return &Loaded{Colours: colours}, nil
}

// FromImage loads a palette from the fully opaque pixels of an image,
// in first-seen order with duplicates collapsed. A PNG input's ICC
// profile is carried along.
func FromImage(filename string) (*Loaded, error) {
	img, icc, err := decodeImageFile(filename)
	if err != nil {
		return nil, err
	}
	var colours []cie.RGB255
	seen := map[cie.RGB255]bool{}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, a := img.At(x, y).RGBA()
			if a != 0xffff {
				continue
			}
			c := cie.RGB255{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bb >> 8)}
			if !seen[c] {
				seen[c] = true
				colours = append(colours, c)
			}
		}
	}
	return &Loaded{Colours: colours, ICC: icc}, nil
}

// lospecURL is the palette download endpoint; variable for tests.
var lospecURL = "https://lospec.com/palette-list/%s.csv"

// FromLospec downloads a palette from lospec by its slug.
func FromLospec(slug string) (*Loaded, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf(lospecURL, slug), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "palscope/"+palscope.Version)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading palette: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading palette download: %w", err)
	}
	csv := strings.TrimSpace(string(body))
	if csv == "file not found" {
		return nil, ErrNotFound
	}
	fields := strings.Split(csv, ",")
	if len(fields) <= 2 {
		return nil, ErrNotFound
	}
	// The first two CSV fields are the palette name and author.
	return FromHex(fields[2:])
}

// ImageData is an input image prepared for dithering: per-pixel RGB
// with an opacity mask, plus any ICC profile found.
type ImageData struct {
	W, H int
	RGB  []cie.RGB255
	OK   []bool
	ICC  []byte
}

// At returns the pixel and whether it is opaque.
func (d *ImageData) At(x, y int) (cie.RGB255, bool) {
	i := y*d.W + x
	return d.RGB[i], d.OK[i]
}

// LoadImage reads an image for dithering. Pixels that are not fully
// opaque are masked out.
func LoadImage(filename string) (*ImageData, error) {
	img, icc, err := decodeImageFile(filename)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	d := &ImageData{
		W:   b.Dx(),
		H:   b.Dy(),
		RGB: make([]cie.RGB255, b.Dx()*b.Dy()),
		OK:  make([]bool, b.Dx()*b.Dy()),
		ICC: icc,
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, a := img.At(x, y).RGBA()
			if a != 0xffff {
				continue
			}
			i := (y-b.Min.Y)*d.W + (x - b.Min.X)
			d.RGB[i] = cie.RGB255{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bb >> 8)}
			d.OK[i] = true
		}
	}
	return d, nil
}

// decodeImageFile decodes the file and extracts a PNG ICC profile
// when one is present. Files that are not images at all get a
// type-aware error rather than a bare decode failure.
func decodeImageFile(filename string) (image.Image, []byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("opening image: %w", err)
	}
	if !filetype.IsImage(data) {
		if t, err := filetype.Match(data); err == nil && t != filetype.Unknown {
			return nil, nil, fmt.Errorf("decoding image %s: %s is not an image format", filename, t.Extension)
		}
		return nil, nil, fmt.Errorf("decoding image %s: not a recognised image", filename)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("decoding image %s: %w", filename, err)
	}
	icc, err := pngx.Profile(data)
	if err != nil {
		icc = nil
	}
	return img, icc, nil
}
