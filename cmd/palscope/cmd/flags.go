// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/palscope/palscope/base/logx"
	"github.com/palscope/palscope/base/stringsx"
	"github.com/palscope/palscope/loader"
)

// Illuminant presets selectable with -D.
var presets = map[string]float32{
	"50": 5000.00,
	"55": 5500.00,
	"65": 6503.51,
}

// addPaletteFlags registers the palette source flags: exactly one of
// them must be given.
func addPaletteFlags(c *cobra.Command) {
	c.Flags().StringP("colours", "c", "",
		"sets input colours to the specified list of comma-separated hex values")
	c.Flags().StringP("hexfile", "f", "",
		"reads input colours from the specified file with newline-separated hex values")
	c.Flags().StringP("image", "i", "",
		"reads input colours from the specified image")
	c.Flags().StringP("lospec", "l", "",
		"loads input colours from https://lospec.com/palette-list/SLUG")
	c.MarkFlagsOneRequired("colours", "hexfile", "image", "lospec")
	c.MarkFlagsMutuallyExclusive("colours", "hexfile", "image", "lospec")
}

// addIlluminantFlags registers the white point selection flags.
func addIlluminantFlags(c *cobra.Command) {
	c.Flags().StringP("temperature", "T", "",
		"use TEMP Kelvins to define the white point for the daylight illuminant (default 5500)")
	c.Flags().StringP("daylight", "D", "",
		"use a predefined white point for the daylight illuminant: 50, 55 or 65")
	c.MarkFlagsMutuallyExclusive("temperature", "daylight")
}

// addVerboseFlag registers -v, wired straight into the log level.
func addVerboseFlag(c *cobra.Command) {
	c.Flags().BoolP("verbose", "v", false, "prints debugging output")
}

func applyVerbose(c *cobra.Command) {
	if v, _ := c.Flags().GetBool("verbose"); v || config().Verbose {
		logx.UserLevel = slog.LevelInfo
	}
}

// paletteFromFlags loads the palette from whichever source flag was
// given.
func paletteFromFlags(c *cobra.Command) (*loader.Loaded, error) {
	var result *loader.Loaded
	var err error
	switch {
	case c.Flags().Changed("colours"):
		list, _ := c.Flags().GetString("colours")
		result, err = loader.FromHex(strings.Split(list, ","))
	case c.Flags().Changed("hexfile"):
		name, _ := c.Flags().GetString("hexfile")
		name, err = homedir.Expand(name)
		if err == nil {
			result, err = loader.FromFile(name)
		}
	case c.Flags().Changed("image"):
		name, _ := c.Flags().GetString("image")
		name, err = homedir.Expand(name)
		if err == nil {
			result, err = loader.FromImage(name)
		}
	case c.Flags().Changed("lospec"):
		slug, _ := c.Flags().GetString("lospec")
		logx.PrintlnInfo("Downloading palette...")
		result, err = loader.FromLospec(slug)
	}
	if err != nil {
		return nil, fmt.Errorf("getting palette: %w", err)
	}
	if err := loader.Check(result.Colours); err != nil {
		return nil, fmt.Errorf("validating palette: %w", err)
	}
	return result, nil
}

// tempFromFlags resolves the illuminant temperature from the flags,
// the config file default, or 5500 K.
func tempFromFlags(c *cobra.Command) (float32, error) {
	if c.Flags().Changed("daylight") {
		d, _ := c.Flags().GetString("daylight")
		t, ok := presets[d]
		if !ok {
			return 0, fmt.Errorf("invalid illuminant preset: D%s", d)
		}
		return t, nil
	}
	if c.Flags().Changed("temperature") {
		s, _ := c.Flags().GetString("temperature")
		t, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return 0, fmt.Errorf("parsing temperature: %w", err)
		}
		return float32(t), nil
	}
	if cfg := config(); cfg.Temperature > 0 {
		return cfg.Temperature, nil
	}
	return 5500, nil
}

// outFromFlags resolves the output file, appending .png when missing.
func outFromFlags(c *cobra.Command) (string, error) {
	name, _ := c.Flags().GetString("out")
	if name == "" {
		if cfg := config(); cfg.Out != "" {
			name = cfg.Out
		} else {
			name = "plot.png"
		}
	}
	name, err := homedir.Expand(name)
	if err != nil {
		return "", err
	}
	return stringsx.EnsureSuffix(name, ".png"), nil
}

// parseSize parses a WxH matrix size.
func parseSize(s string) (w, h int, err error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("matrix size must be WxH, got %q", s)
	}
	w, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("matrix size must be WxH, got %q", s)
	}
	h, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("matrix size must be WxH, got %q", s)
	}
	return w, h, nil
}
