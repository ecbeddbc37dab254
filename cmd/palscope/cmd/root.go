// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the palscope command line: analyse,
// compute, dither and daemon. The daemon re-enters the same command
// tree for the lines it receives.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	palscope "github.com/palscope/palscope"
	"github.com/palscope/palscope/plotcache"
	"github.com/palscope/palscope/text"
)

// daemonState is the context a daemon-dispatched command runs in:
// the long-lived cache and font, plus the connection to answer on.
type daemonState struct {
	cacher *plotcache.Cacher
	font   *text.Font
	out    io.Writer
}

// New returns the root command for CLI use.
func New() *cobra.Command {
	root := &cobra.Command{
		Use:           "palscope",
		Short:         "Palette analysis tool.",
		Version:       palscope.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAnalyse(nil))
	root.AddCommand(newCompute(nil))
	root.AddCommand(newDither(nil))
	root.AddCommand(newDaemon())
	return root
}

// newDaemonTree returns the command tree the daemon dispatches
// received lines into. It differs from the CLI tree in that the
// output file flags are required, the cache and font are shared, and
// there is no nested daemon command.
func newDaemonTree(st *daemonState) *cobra.Command {
	root := &cobra.Command{
		Use:           "palscope",
		Short:         "Palette analysis daemon.",
		Version:       palscope.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	analyse := newAnalyse(st)
	_ = analyse.MarkFlagRequired("out")
	dither := newDither(st)
	_ = dither.MarkFlagRequired("out")
	root.AddCommand(analyse)
	root.AddCommand(newCompute(st))
	root.AddCommand(dither)
	return root
}

// Execute runs the CLI and exits with status 1 on any failure.
func Execute() {
	if err := New().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
