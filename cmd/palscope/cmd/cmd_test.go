// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palscope/palscope/plotcache"
	"github.com/palscope/palscope/text"
)

func daemonRun(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newDaemonTree(&daemonState{
		cacher: plotcache.NewCacher(),
		font:   text.New(),
		out:    &out,
	})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestComputeAll(t *testing.T) {
	out, err := daemonRun(t, "compute", "-c", "000000,ffffff", "--all")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "iss,"), "got %q", lines[0])
	assert.Equal(t, "acyclic,true", lines[1])
}

func TestComputeSingleMetric(t *testing.T) {
	out, err := daemonRun(t, "compute", "-c", "ff0000,00ff00,0000ff", "--acyclic")
	require.NoError(t, err)
	assert.Equal(t, "acyclic,true\n", out)
}

func TestComputeRequiresMetric(t *testing.T) {
	_, err := daemonRun(t, "compute", "-c", "000000,ffffff")
	assert.Error(t, err)
}

func TestComputeRejectsBadPalette(t *testing.T) {
	_, err := daemonRun(t, "compute", "-c", "000000", "--all")
	assert.Error(t, err)

	_, err = daemonRun(t, "compute", "-c", "000000,000000", "--all")
	assert.Error(t, err)

	_, err = daemonRun(t, "compute", "-c", "zzz", "--all")
	assert.Error(t, err)
}

func TestPaletteSourceIsExclusive(t *testing.T) {
	_, err := daemonRun(t, "compute", "-c", "000000,ffffff", "-f", "x.hex", "--all")
	assert.Error(t, err)
}

func TestIlluminantPresets(t *testing.T) {
	_, err := daemonRun(t, "compute", "-c", "000000,ffffff", "-D", "65", "--all")
	assert.NoError(t, err)

	_, err = daemonRun(t, "compute", "-c", "000000,ffffff", "-D", "99", "--all")
	assert.Error(t, err)

	_, err = daemonRun(t, "compute", "-c", "000000,ffffff", "-T", "bogus", "--all")
	assert.Error(t, err)
}

func TestDaemonAnalyseRequiresOut(t *testing.T) {
	_, err := daemonRun(t, "analyse", "-c", "000000,ffffff")
	assert.Error(t, err)
}

func TestParseSize(t *testing.T) {
	w, h, err := parseSize("14x9")
	require.NoError(t, err)
	assert.Equal(t, 14, w)
	assert.Equal(t, 9, h)
	_, _, err = parseSize("14")
	assert.Error(t, err)
	_, _, err = parseSize("ax9")
	assert.Error(t, err)
}

func TestCLITreeHasAllCommands(t *testing.T) {
	root := New()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "analyse")
	assert.Contains(t, names, "compute")
	assert.Contains(t, names, "dither")
	assert.Contains(t, names, "daemon")
}
