// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treemenu

import (
	"io"
	"strconv"
	"strings"
)

// Dump writes a rendering of the tree to Options.Stdout. Write errors are
// ignored; use DumpTo to observe them.
func (t *Tree[C]) Dump() {
	if t == nil || t.root == nil {
		return
	}
	_ = t.DumpTo(t.opts.Stdout)
}

// DumpTo writes a rendering of the tree to w. The first line names the module;
// it is followed by one line per node, in the same order in which Exec visits
// them. For example:
//
//	|o[MODULE]
//	|-[print_a], 1
//	|*[branch1], 1
//	|--[print_b], 2
//
// Each node line starts with a bar and depth-1 dashes, then a '-' for a leaf
// or a '*' for a branch, then the bracketed name and the depth. A closed tree
// renders as nothing.
func (t *Tree[C]) DumpTo(w io.Writer) error {
	if t == nil || t.root == nil {
		return nil
	}
	_, err := io.WriteString(w, t.String())
	return err
}

// String returns the rendering written by DumpTo.
func (t *Tree[C]) String() string {
	if t == nil || t.root == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("|o[")
	b.WriteString(t.root.name)
	b.WriteString("]\n")
	for n := t.root.preorderNext(t.root); n != nil; n = n.preorderNext(t.root) {
		b.WriteByte('|')
		for i := 1; i < n.depth; i++ {
			b.WriteByte('-')
		}
		if n.IsLeaf() {
			b.WriteByte('-')
		} else {
			b.WriteByte('*')
		}
		b.WriteByte('[')
		b.WriteString(n.name)
		b.WriteString("], ")
		b.WriteString(strconv.Itoa(n.depth))
		b.WriteByte('\n')
	}
	return b.String()
}
