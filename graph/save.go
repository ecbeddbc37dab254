// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"bufio"
	"image/png"
	"os"

	"github.com/palscope/palscope/base/pngx"
)

// Save writes the canvas to the given file as an 8-bit RGB PNG. When
// an ICC profile is attached, the written file is re-read and the
// profile spliced in; any failure there is swallowed, so the plain
// PNG always reaches disk.
func (g *Image) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := png.Encode(bw, g.buf); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if g.icc == nil {
		return nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil
	}
	spliced, err := pngx.WithProfile(data, g.icc)
	if err != nil {
		return nil
	}
	_ = os.WriteFile(filename, spliced, 0o644)
	return nil
}
