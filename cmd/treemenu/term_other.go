// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package main

func isTerminal(fd int) bool {
	return false
}
