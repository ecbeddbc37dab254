// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging on top of the standard
// library slog package, with a user-settable verbosity level.
package logx

import (
	"fmt"
	"log/slog"
	"os"
)

// UserLevel is the verbosity level set by the user, which governs
// what is printed. It defaults to [slog.LevelWarn] so that routine
// progress output stays quiet; the -v flag lowers it to
// [slog.LevelInfo].
var UserLevel = slog.LevelWarn

// UserInfo returns whether the user level allows info output.
func UserInfo() bool {
	return UserLevel <= slog.LevelInfo
}

// PrintlnInfo prints the given message to stderr if [UserLevel]
// admits info output. Progress messages go through this, not slog,
// so that verbose output stays plain.
func PrintlnInfo(a ...any) {
	if UserInfo() {
		fmt.Fprintln(os.Stderr, a...)
	}
}

// PrintfInfo is the formatted variant of [PrintlnInfo].
func PrintfInfo(format string, a ...any) {
	if UserInfo() {
		fmt.Fprintf(os.Stderr, format, a...)
	}
}

// Error logs the given message at the error level.
func Error(msg string, args ...any) {
	slog.Error(msg, args...)
}
