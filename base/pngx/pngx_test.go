// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pngx

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProfileRoundTrip(t *testing.T) {
	data := testPNG(t)
	profile := []byte("pretend this is an ICC profile")

	_, err := Profile(data)
	assert.ErrorIs(t, err, ErrNoProfile)

	spliced, err := WithProfile(data, profile)
	require.NoError(t, err)

	// the spliced file still decodes as a PNG
	img, err := png.Decode(bytes.NewReader(spliced))
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())

	got, err := Profile(spliced)
	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestWithProfileReplacesExisting(t *testing.T) {
	data := testPNG(t)
	first, err := WithProfile(data, []byte("one"))
	require.NoError(t, err)
	second, err := WithProfile(first, []byte("two"))
	require.NoError(t, err)
	got, err := Profile(second)
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)
}

func TestNotPNG(t *testing.T) {
	_, err := Profile([]byte("nope"))
	assert.ErrorIs(t, err, ErrNotPNG)
	_, err = WithProfile([]byte("nope"), []byte("p"))
	assert.ErrorIs(t, err, ErrNotPNG)
}
