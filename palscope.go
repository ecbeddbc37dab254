// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palscope holds the project identity shared by the CLI, the
// daemon and the rendered image header.
package palscope

// Version is the released version of the tool.
const Version = "0.3.0"

// Repo is where the project lives, printed in the image footer.
const Repo = "github.com/palscope/palscope"
