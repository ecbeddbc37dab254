// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loader

import (
	"errors"
	"fmt"

	"github.com/palscope/palscope/cam/cie"
)

// Parse and download errors surfaced to the user.
var (
	ErrInvalidHexLength = errors.New("hex colour must be 6 digits with an optional leading #")
	ErrNonHexCharacters = errors.New("hex colour contains non-hex characters")
	ErrNotFound         = errors.New("palette not found")
)

// CheckError reports why a colour list is not a usable palette.
type CheckError struct {
	// N is the offending palette size, when size is the problem.
	N int
	// Duplicates is set when the list repeats a colour.
	Duplicates bool
}

func (e *CheckError) Error() string {
	if e.Duplicates {
		return "palette contains duplicate colours"
	}
	if e.N < MinColours {
		return fmt.Sprintf("too few colours in palette: %d (minimum %d)", e.N, MinColours)
	}
	return fmt.Sprintf("too many colours in palette: %d (maximum %d)", e.N, MaxColours)
}

// Palette size limits.
const (
	MinColours = 2
	MaxColours = 256
)

// Check validates the palette size and uniqueness constraints.
func Check(colours []cie.RGB255) error {
	n := len(colours)
	if n < MinColours || n > MaxColours {
		return &CheckError{N: n}
	}
	seen := make(map[cie.RGB255]bool, n)
	for _, c := range colours {
		if seen[c] {
			return &CheckError{N: n, Duplicates: true}
		}
		seen[c] = true
	}
	return nil
}
