// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/palscope/palscope/base/logx"
	"github.com/palscope/palscope/base/pngx"
	"github.com/palscope/palscope/cam/cam16"
	"github.com/palscope/palscope/cam/cie"
	"github.com/palscope/palscope/dither"
	"github.com/palscope/palscope/loader"
	"github.com/palscope/palscope/palette"
	"github.com/palscope/palscope/plotcache"
)

func newDither(st *daemonState) *cobra.Command {
	c := &cobra.Command{
		Use:   "dither FILE",
		Short: "Reduces image's colours using the provided palette.",
		Args:  cobra.ExactArgs(1),
	}
	addPaletteFlags(c)
	addIlluminantFlags(c)
	addVerboseFlag(c)
	c.Flags().StringP("out", "o", "", "sets output image file (default plot.png)")
	c.Flags().BoolP("nodither", "0", false, "do no dithering - only colour reduction")
	c.Flags().Int("bayer", 0, "uses a Bayer matrix of size 2^N for ordered dithering")
	c.Flags().String("whitenoise", "", "uses a white noise matrix of size WxH for ordered dithering")
	c.Flags().String("bluenoise", "", "uses a blue noise matrix of size WxH for ordered dithering")
	c.MarkFlagsMutuallyExclusive("nodither", "bayer", "whitenoise", "bluenoise")

	c.RunE = func(c *cobra.Command, args []string) error {
		applyVerbose(c)
		t, err := tempFromFlags(c)
		if err != nil {
			return err
		}
		outfile, err := outFromFlags(c)
		if err != nil {
			return err
		}
		loaded, err := paletteFromFlags(c)
		if err != nil {
			return err
		}
		il := cam16.NewIlluminant(cie.FromTemp(t))
		pal := palette.New(loaded.Colours, il, false)

		method, err := methodFromFlags(c)
		if err != nil {
			return err
		}

		inputName, err := homedir.Expand(args[0])
		if err != nil {
			return err
		}
		img, err := loader.LoadImage(inputName)
		if err != nil {
			return err
		}

		logx.PrintlnInfo("Converting the image into CAM16UCS...")
		input := plotcache.NewPlotData(img.W, img.H)
		for y := 0; y < img.H; y++ {
			for x := 0; x < img.W; x++ {
				if rgb, ok := img.At(x, y); ok {
					input.Set(x, y, cam16.FromRGB(rgb, il))
				}
			}
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		out := dither.Dither(input, pal, method, rng)

		if err := savePNG(out, outfile); err != nil {
			return err
		}
		spliceICC(outfile, img.ICC)
		return nil
	}
	return c
}

func methodFromFlags(c *cobra.Command) (dither.Method, error) {
	switch {
	case c.Flags().Changed("nodither"):
		return dither.Method{Kind: dither.None}, nil
	case c.Flags().Changed("bayer"):
		n, _ := c.Flags().GetInt("bayer")
		return dither.Method{Kind: dither.KindBayer, N: n}, nil
	case c.Flags().Changed("whitenoise"):
		s, _ := c.Flags().GetString("whitenoise")
		w, h, err := parseSize(s)
		if err != nil {
			return dither.Method{}, err
		}
		return dither.Method{Kind: dither.KindWhiteNoise, W: w, H: h}, nil
	case c.Flags().Changed("bluenoise"):
		s, _ := c.Flags().GetString("bluenoise")
		w, h, err := parseSize(s)
		if err != nil {
			return dither.Method{}, err
		}
		return dither.Method{Kind: dither.KindBlueNoise, W: w, H: h}, nil
	}
	return dither.DefaultMethod(), nil
}

func savePNG(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("saving output image: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := png.Encode(bw, img); err != nil {
		f.Close()
		return fmt.Errorf("saving output image: %w", err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("saving output image: %w", err)
	}
	return f.Close()
}

// spliceICC carries the input's colour profile into the written PNG.
// Best effort: the plain PNG always wins over a failed splice.
func spliceICC(filename string, profile []byte) {
	if profile == nil {
		return
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return
	}
	spliced, err := pngx.WithProfile(data, profile)
	if err != nil {
		return
	}
	_ = os.WriteFile(filename, spliced, 0o644)
}
