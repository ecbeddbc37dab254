// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", ""}, SplitLines("a\r\nb\n"))
	assert.Equal(t, []string{"one"}, SplitLines("one"))
}

func TestEnsureSuffix(t *testing.T) {
	assert.Equal(t, "plot.png", EnsureSuffix("plot", ".png"))
	assert.Equal(t, "plot.png", EnsureSuffix("plot.png", ".png"))
}
