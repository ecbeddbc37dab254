// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/palscope/palscope/base/logx"
	"github.com/palscope/palscope/plotcache"
	"github.com/palscope/palscope/text"
	"github.com/palscope/palscope/widget"
)

func newAnalyse(st *daemonState) *cobra.Command {
	c := &cobra.Command{
		Use:   "analyse",
		Short: "Produces a plot with palette analysis.",
		Args:  cobra.NoArgs,
	}
	addPaletteFlags(c)
	addIlluminantFlags(c)
	addVerboseFlag(c)
	c.Flags().StringP("out", "o", "", "sets output image file (default plot.png)")
	c.Flags().BoolP("grey", "g", false,
		"uses black, grey and white for UI instead of choosing palette colours")
	c.Flags().BoolP("multithreaded", "j", false, "does computations in multiple threads")

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
		pal, err := paletteFromFlags(c)
		if err != nil {
			return err
		}
		grey, _ := c.Flags().GetBool("grey")
		multi, _ := c.Flags().GetBool("multithreaded")

		var cacher *plotcache.Cacher
		var font *text.Font
		if st != nil {
			cacher, font = st.cacher, st.font
		} else {
			cacher, font = plotcache.Init(), text.New()
		}

		err = widget.Analyse(widget.Options{
			Colours:       pal.Colours,
			ICC:           pal.ICC,
			T:             t,
			GreyUI:        grey || config().Grey,
			Multithreaded: multi,
			OutFile:       outfile,
			Cacher:        cacher,
			Font:          font,
		})
		if err != nil {
			return err
		}
		if err := cacher.Save(); err != nil {
			logx.PrintlnInfo("Error saving cache:", err)
		}
		return nil
	}
	return c
}
