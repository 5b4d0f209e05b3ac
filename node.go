// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treemenu

import (
	"iter"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/treemenu/internal/ilist"
	"github.com/cockroachdb/treemenu/internal/invariants"
)

// Kind distinguishes leaves from branches.
type Kind int8

const (
	// KindBranch is a node without a callback. The root is a branch.
	KindBranch Kind = iota
	// KindLeaf is a node bound to a callback and a context value.
	KindLeaf
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindBranch:
		return "branch"
	case KindLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// SafeFormat implements redact.SafeFormatter.
func (k Kind) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeString(redact.SafeString(k.String()))
}

// action is what a node does when it is matched by Exec. It is either a
// branch, which does nothing, or a leaf.
type action[C any] interface {
	kind() Kind
}

type branch[C any] struct{}

func (branch[C]) kind() Kind { return KindBranch }

type leaf[C any] struct {
	fn  Func[C]
	ctx C
}

func (leaf[C]) kind() Kind { return KindLeaf }

// Node is a vertex of a Tree. Nodes are created by Tree construction (the
// root), Node.AddLeaf and Node.AddBranch, and are owned by their parent; they
// are released by Tree.Close.
type Node[C any] struct {
	name   string
	depth  int
	action action[C]

	parent *Node[C]
	// children holds the child nodes in insertion order.
	children ilist.List[Node[C]]
	// sibling links the node into parent.children.
	sibling ilist.Link[Node[C]]

	tree *Tree[C]
}

// Name returns the name of the node. For the root this is the module name.
func (n *Node[C]) Name() string {
	return n.name
}

// Depth returns the distance of the node from the root; the root is at
// depth 0.
func (n *Node[C]) Depth() int {
	return n.depth
}

// Kind returns whether the node is a leaf or a branch.
func (n *Node[C]) Kind() Kind {
	if n.action == nil {
		return KindBranch
	}
	return n.action.kind()
}

// IsLeaf returns true if the node is bound to a callback.
func (n *Node[C]) IsLeaf() bool {
	return n.Kind() == KindLeaf
}

// Parent returns the parent of the node, or nil for the root.
func (n *Node[C]) Parent() *Node[C] {
	return n.parent
}

// Tree returns the tree the node belongs to, or nil if the tree was closed.
func (n *Node[C]) Tree() *Tree[C] {
	return n.tree
}

// Children returns an iterator over the children of n in insertion order.
func (n *Node[C]) Children() iter.Seq[*Node[C]] {
	return n.children.All()
}

// Walk returns an iterator over the subtree rooted at n, excluding n itself, in
// the pre-order used by Exec and Dump. The walk stops if the tree is closed.
func (n *Node[C]) Walk() iter.Seq[*Node[C]] {
	return func(yield func(*Node[C]) bool) {
		if n.tree == nil {
			return
		}
		for c := n.preorderNext(n); c != nil; c = c.preorderNext(n) {
			if !yield(c) || c.tree == nil {
				return
			}
		}
	}
}

// String implements fmt.Stringer.
func (n *Node[C]) String() string {
	return redact.StringWithoutMarkers(n)
}

// SafeFormat implements redact.SafeFormatter.
func (n *Node[C]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%s %s depth=%d", n.Kind(), n.name, n.depth)
}

// AddLeaf appends a leaf with the given name, callback and context as the last
// child of n. The context is never inspected; it is passed to fn unchanged
// when the leaf is executed.
//
// On error n is left unmodified.
func (n *Node[C]) AddLeaf(name string, fn Func[C], ctx C) error {
	if fn == nil {
		return errors.Wrapf(ErrNilCallback, "adding leaf %q", name)
	}
	_, err := n.add(name, leaf[C]{fn: fn, ctx: ctx})
	return err
}

// AddBranch appends a branch with the given name as the last child of n, and
// returns it so that further leaves and branches may be nested under it.
//
// On error n is left unmodified.
func (n *Node[C]) AddBranch(name string) (*Node[C], error) {
	return n.add(name, branch[C]{})
}

func (n *Node[C]) add(name string, a action[C]) (*Node[C], error) {
	if n == nil {
		return nil, errors.Wrapf(ErrInvalidParent, "adding %s %q under nil node", a.kind(), name)
	}
	t := n.tree
	if t == nil {
		return nil, errors.Wrapf(ErrClosed, "adding %s %q", a.kind(), name)
	}
	if t.opts.StrictLeaves && n.IsLeaf() {
		return nil, errors.Wrapf(ErrInvalidParent, "adding %s %q under leaf %q", a.kind(), name, n.name)
	}
	if depth := n.depth + 1; t.opts.MaxDepth > 0 && depth > t.opts.MaxDepth {
		return nil, errors.Wrapf(ErrMaxDepth, "adding %s %q at depth %d (max %d)",
			a.kind(), name, depth, t.opts.MaxDepth)
	}
	if l := t.opts.NameCompareLen; l > 0 && len(name) > l {
		t.opts.Logger.Infof("treemenu: name %q is longer than %d bytes; only its prefix is compared", name, l)
	}

	c := t.newNode(n, name, a)
	if invariants.Enabled {
		if c.depth != n.depth+1 || c.parent != n || c.tree != t ||
			n.children.Back() != c || c.sibling.Owner() != c {
			panic(errors.AssertionFailedf("treemenu: %s was not appended to %s", c, n))
		}
	}
	return c, nil
}

// cloneName returns a copy of name that does not share memory with the
// caller's string.
func cloneName(name string) string {
	return strings.Clone(name)
}
