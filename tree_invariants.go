// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treemenu

import "github.com/cockroachdb/errors"

// checkInvariants walks the whole tree and verifies its structural
// invariants:
//   - the root is the only node without a parent, and is a branch at depth 0;
//   - every node is at depth one more than its parent;
//   - every node is linked into the children of its parent, and belongs to
//     this tree;
//   - every leaf has a callback;
//   - the node counters agree with the tree.
func (t *Tree[C]) checkInvariants() error {
	root := t.root
	if root == nil {
		return nil
	}
	if root.parent != nil || root.depth != 0 || root.IsLeaf() {
		return errors.AssertionFailedf("treemenu: malformed root %s", root)
	}
	var nodes, leaves int64
	nodes++
	for n := root.preorderNext(root); n != nil; n = n.preorderNext(root) {
		nodes++
		switch {
		case n.parent == nil:
			return errors.AssertionFailedf("treemenu: %s has no parent", n)
		case n.tree != t:
			return errors.AssertionFailedf("treemenu: %s belongs to another tree", n)
		case n.depth != n.parent.depth+1:
			return errors.AssertionFailedf("treemenu: %s is at depth %d under %s",
				n, n.depth, n.parent)
		case !n.sibling.Linked() || n.sibling.Owner() != n:
			return errors.AssertionFailedf("treemenu: %s is not linked into its parent", n)
		}
		if l, ok := n.action.(leaf[C]); ok {
			leaves++
			if l.fn == nil {
				return errors.AssertionFailedf("treemenu: leaf %s has no callback", n)
			}
		}
	}
	if nodes != t.m.nodes || leaves != t.m.leaves {
		return errors.AssertionFailedf("treemenu: counted %d nodes and %d leaves, expected %d and %d",
			nodes, leaves, t.m.nodes, t.m.leaves)
	}
	return nil
}
