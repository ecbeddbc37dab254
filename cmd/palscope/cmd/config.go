// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/palscope/palscope/base/logx"
)

// Config holds the optional user defaults read from
// <user-config-dir>/palscope/palscope.toml. Flags always win over
// config values. A missing or unreadable config is not an error.
type Config struct {
	// Temperature is the default illuminant temperature in Kelvin.
	Temperature float32 `toml:"temperature"`

	// Out is the default output file for analyse and dither.
	Out string `toml:"out"`

	// Verbose enables progress output without passing -v.
	Verbose bool `toml:"verbose"`

	// Grey renders the analysis UI in black, grey and white.
	Grey bool `toml:"grey"`
}

var (
	configOnce sync.Once
	theConfig  Config
)

func config() Config {
	configOnce.Do(func() {
		dir, err := os.UserConfigDir()
		if err != nil {
			return
		}
		data, err := os.ReadFile(filepath.Join(dir, "palscope", "palscope.toml"))
		if err != nil {
			return
		}
		if err := toml.Unmarshal(data, &theConfig); err != nil {
			logx.PrintlnInfo("Ignoring malformed config:", err)
			theConfig = Config{}
		}
	})
	return theConfig
}
