// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treemenu

import (
	"github.com/cockroachdb/crlib/crtime"
	"github.com/cockroachdb/treemenu/internal/invariants"
)

// Exec invokes the callback of every leaf in the subtree rooted at n whose
// name matches name; n itself is not considered. Names are compared on their
// first Options.NameCompareLen bytes.
//
// The subtree is visited in pre-order: each child is visited before its own
// children, and a child's subtree is completed before its next sibling is
// visited. The walk does not stop at the first match and does not skip the
// descendants of a matching node, so a single Exec may invoke any number of
// callbacks, including none. Nothing is reported about whether any node
// matched.
//
// A callback may add nodes to the tree; nodes appended after the current
// position of the walk are visited. If a callback closes the tree, the walk
// stops.
func (n *Node[C]) Exec(name string) {
	t := n.tree
	if t == nil {
		return
	}
	if h := t.opts.ExecLatency; h != nil {
		start := crtime.NowMono()
		defer func() { h.Observe(float64(start.Elapsed())) }()
	}
	t.m.execs++

	for c := n.preorderNext(n); c != nil; c = c.preorderNext(n) {
		if !nameEqual(c.name, name, t.opts.NameCompareLen) {
			continue
		}
		if l, ok := c.action.(leaf[C]); ok {
			t.m.invocations++
			if t.opts.Invocations != nil {
				t.opts.Invocations.Inc()
			}
			l.fn(l.ctx)
			if c.tree == nil {
				// The tree was closed by the callback.
				return
			}
		}
	}

	if invariants.Sometimes(10) {
		if err := t.checkInvariants(); err != nil {
			panic(err)
		}
	}
}

// preorderNext returns the node that follows n in a pre-order walk of the
// subtree rooted at top, or nil if n is the last node of that walk. The walk
// uses the parent and sibling links, so it needs no stack regardless of the
// depth of the tree.
func (n *Node[C]) preorderNext(top *Node[C]) *Node[C] {
	if c := n.children.Front(); c != nil {
		return c
	}
	for n != top {
		p := n.parent
		if s := p.children.Next(&n.sibling); s != nil {
			return s
		}
		n = p
	}
	return nil
}

// nameEqual reports whether a and b are equal on their first limit bytes. A
// non-positive limit compares the names in full.
func nameEqual(a, b string, limit int) bool {
	if limit > 0 {
		if len(a) > limit {
			a = a[:limit]
		}
		if len(b) > limit {
			b = b[:limit]
		}
	}
	return a == b
}
