// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command palscope analyses colour palettes: it renders a diagnostic
// image, computes palette metrics, reduces images to a palette with
// ordered dithering, and serves all of that over a local socket in
// daemon mode.
package main

import "github.com/palscope/palscope/cmd/palscope/cmd"

func main() {
	cmd.Execute()
}
