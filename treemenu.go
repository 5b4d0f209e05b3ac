// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package treemenu provides a hierarchical command-dispatch tree.
//
// A Tree is an in-memory hierarchy of named nodes under a single named root.
// Every node other than the root is either a branch, which only groups other
// nodes, or a leaf, which is bound to a callback and a context value. The tree
// is built by appending leaves and branches under existing nodes, and commands
// are invoked by name:
//
//	t, _ := treemenu.New[string]("MODULE", nil)
//	_ = t.Root().AddLeaf("print_a", printA, "")
//	b, _ := t.Root().AddBranch("branch1")
//	_ = b.AddLeaf("print_b", printB, "ctx_print_b")
//	t.Exec("print_b")
//	t.Dump()
//	t.Close()
//
// Exec visits the entire tree and invokes the callback of every leaf whose
// name matches; names are not required to be unique, and nothing is reported
// back to the caller about whether anything matched.
//
// A Tree only grows: there is no operation to remove, rename or look up a
// single node. The whole tree is torn down at once by Close.
//
// A Tree is not safe for concurrent use. Callbacks run synchronously on the
// goroutine that called Exec.
package treemenu // import "github.com/cockroachdb/treemenu"

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/treemenu/internal/invariants"
)

var (
	// ErrClosed is returned when a node is added to a tree that has been
	// closed.
	ErrClosed = errors.New("treemenu: closed")
	// ErrNilCallback is returned when a leaf is added without a callback.
	ErrNilCallback = errors.New("treemenu: nil callback")
	// ErrMaxDepth is returned when adding a node would exceed
	// Options.MaxDepth.
	ErrMaxDepth = errors.New("treemenu: maximum depth exceeded")
	// ErrInvalidParent is returned when a node is added under a nil parent, or
	// under a leaf when Options.StrictLeaves is set.
	ErrInvalidParent = errors.New("treemenu: invalid parent")
)

// Func is the callback bound to a leaf. It receives the context value that was
// supplied when the leaf was added.
type Func[C any] func(ctx C)

// Tree is a command-dispatch tree whose leaves carry context values of type C.
// Use a closure-based Func with C set to struct{} when leaves need no context,
// or to any when contexts of different types are mixed.
type Tree[C any] struct {
	opts *Options
	root *Node[C]

	// Counters reported by Metrics. The tree is confined to a single
	// goroutine so they are not atomic.
	m struct {
		nodes       int64
		leaves      int64
		maxDepth    int
		execs       int64
		invocations int64
		allocated   int64
		released    int64
	}
}

// New creates a tree whose root carries the given module name. The root is at
// depth 0, has no children and no callback. opts may be nil.
//
// New fails only if the options are invalid, in which case nothing is created.
func New[C any](moduleName string, opts *Options) (*Tree[C], error) {
	opts = opts.Clone().EnsureDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	t := &Tree[C]{opts: opts}
	t.root = t.newNode(nil, moduleName, branch[C]{})
	return t, nil
}

// Root returns the root node of the tree, or nil if the tree has been closed.
func (t *Tree[C]) Root() *Node[C] {
	if t == nil {
		return nil
	}
	return t.root
}

// ModuleName returns the name of the root node.
func (t *Tree[C]) ModuleName() string {
	if t == nil || t.root == nil {
		return ""
	}
	return t.root.name
}

// Exec invokes the callback of every leaf in the tree whose name matches name.
// See Node.Exec.
func (t *Tree[C]) Exec(name string) {
	if t == nil || t.root == nil {
		return
	}
	t.root.Exec(name)
}

// Close tears down the tree. Every node is unlinked from its parent and
// released, children before their parents; the root is released last.
//
// Close may be called on a nil or already closed tree, in which case it does
// nothing. After Close the tree and any of its nodes must not be used to add
// nodes (doing so returns ErrClosed); Exec and Dump do nothing.
func (t *Tree[C]) Close() {
	if t == nil || t.root == nil {
		return
	}
	if invariants.Enabled {
		if err := t.checkInvariants(); err != nil {
			panic(err)
		}
	}
	root := t.root
	n := root
	for {
		// Descend to the first node in the subtree of n which has no children.
		// Its entire subtree, if any, has already been released.
		for c := n.children.Front(); c != nil; c = n.children.Front() {
			n = c
		}
		if n == root {
			break
		}
		parent := n.parent
		n.sibling.RemoveInit()
		t.release(n)
		n = parent
	}
	t.release(root)
	t.root = nil
	if invariants.Enabled && (t.m.nodes != 0 || t.m.allocated != t.m.released) {
		panic(errors.AssertionFailedf("treemenu: %d nodes still live after close (allocated %d, released %d)",
			t.m.nodes, t.m.allocated, t.m.released))
	}
}

// newNode allocates a node under parent (nil for the root) and links it at
// the tail of the parent's children.
func (t *Tree[C]) newNode(parent *Node[C], name string, a action[C]) *Node[C] {
	n := &Node[C]{
		name:   cloneName(name),
		parent: parent,
		action: a,
		tree:   t,
	}
	if parent != nil {
		n.depth = parent.depth + 1
		parent.children.PushBack(&n.sibling, n)
	}
	t.m.nodes++
	t.m.allocated++
	if a.kind() == KindLeaf {
		t.m.leaves++
	}
	t.m.maxDepth = max(t.m.maxDepth, n.depth)
	return n
}

// release clears a node that has already been unlinked from its parent.
func (t *Tree[C]) release(n *Node[C]) {
	if n.action.kind() == KindLeaf {
		t.m.leaves--
	}
	t.m.nodes--
	t.m.released++
	*n = Node[C]{}
}
