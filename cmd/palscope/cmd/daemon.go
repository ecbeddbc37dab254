// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/palscope/palscope/daemon"
	"github.com/palscope/palscope/plotcache"
	"github.com/palscope/palscope/text"
)

func newDaemon() *cobra.Command {
	c := &cobra.Command{
		Use:   "daemon",
		Short: "Starts in daemon mode.",
		Args:  cobra.NoArgs,
	}
	addVerboseFlag(c)
	c.Flags().IntP("port", "p", 0, "the port exposed by the daemon")
	_ = c.MarkFlagRequired("port")

	c.RunE = func(c *cobra.Command, args []string) error {
		applyVerbose(c)
		port, _ := c.Flags().GetInt("port")

		// The cache and font live for the whole daemon; every
		// connection gets a fresh command tree over them.
		cacher := plotcache.Init()
		font := text.New()
		return daemon.Run(port, func(out io.Writer) *cobra.Command {
			return newDaemonTree(&daemonState{
				cacher: cacher,
				font:   font,
				out:    out,
			})
		})
	}
	return c
}
