// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package daemon serves the analyser's commands over a local TCP
// socket. Each accepted connection carries one shell-quoted command
// line mirroring the CLI syntax; the reply is the command's output
// followed by "OK\n", or "ERR\n" with a reason.
package daemon

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"

	"github.com/palscope/palscope/base/logx"
)

// TreeFunc builds a fresh command tree whose output goes to the
// given writer. A fresh tree per connection keeps flag state from
// leaking between commands.
type TreeFunc func(out io.Writer) *cobra.Command

// Run listens on 127.0.0.1:port and serves connections until the
// listener fails. Individual connection errors are logged and do not
// stop the daemon.
func Run(port int, tree TreeFunc) error {
	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Started daemon on port %d\n", ln.Addr().(*net.TCPAddr).Port)
	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		serve(conn, tree)
	}
}

func serve(conn net.Conn, tree TreeFunc) {
	defer conn.Close()
	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil && line == "" {
		logx.Error("reading daemon command", "err", err)
		return
	}
	args, err := shellwords.Parse(line)
	if err != nil {
		abort(conn, fmt.Errorf("splitting the command: %w", err))
		return
	}
	root := tree(conn)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		abort(conn, err)
		return
	}
	fmt.Fprint(conn, "OK\n")
}

func abort(conn net.Conn, err error) {
	logx.Error("command processing failed", "err", err)
	fmt.Fprintf(conn, "ERR\n%s", err)
}
