// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/palscope/palscope/cam/cam16"
	"github.com/palscope/palscope/cam/cie"
	"github.com/palscope/palscope/palette"
)

// metrics in the order compute prints them.
var metrics = []string{"iss", "acyclic"}

func newCompute(st *daemonState) *cobra.Command {
	c := &cobra.Command{
		Use:   "compute",
		Short: "Computes palette metrics.",
		Args:  cobra.NoArgs,
	}
	addPaletteFlags(c)
	addIlluminantFlags(c)
	c.Flags().BoolP("all", "a", false, "computes all the metrics")
	c.Flags().Bool("iss", false, "computes internal similarity score")
	c.Flags().Bool("acyclic", false, "checks if a palette is acyclic")
	c.MarkFlagsOneRequired("all", "iss", "acyclic")

	c.RunE = func(c *cobra.Command, args []string) error {
		t, err := tempFromFlags(c)
		if err != nil {
			return err
		}
		loaded, err := paletteFromFlags(c)
		if err != nil {
			return err
		}
		il := cam16.NewIlluminant(cie.FromTemp(t))
		pal := palette.New(loaded.Colours, il, false)

		all, _ := c.Flags().GetBool("all")
		var out io.Writer = os.Stdout
		if st != nil {
			out = st.out
		}
		for _, metric := range metrics {
			enabled, _ := c.Flags().GetBool(metric)
			if !all && !enabled {
				continue
			}
			var v string
			switch metric {
			case "iss":
				v = fmt.Sprintf("%.2f", pal.InternalSimilarity())
			case "acyclic":
				v = fmt.Sprintf("%v", pal.IsAcyclic())
			}
			fmt.Fprintf(out, "%s,%s\n", metric, v)
		}
		return nil
	}
	return c
}
