// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treemenu

import "github.com/cockroachdb/redact"

// Metrics holds counters describing the shape and use of a Tree.
type Metrics struct {
	// Nodes is the number of live nodes, including the root.
	Nodes int64
	// Leaves is the number of live leaves.
	Leaves int64
	// Branches is the number of live branches, including the root.
	Branches int64
	// MaxDepth is the depth of the deepest node ever added.
	MaxDepth int
	// Execs is the number of Exec calls.
	Execs int64
	// Invocations is the number of callbacks invoked by Exec.
	Invocations int64
	// Allocated is the number of nodes ever created. Released is the number of
	// nodes released by Close. Once the tree is closed the two are equal.
	Allocated int64
	Released  int64
}

// Metrics returns the current counters of the tree.
func (t *Tree[C]) Metrics() Metrics {
	return Metrics{
		Nodes:       t.m.nodes,
		Leaves:      t.m.leaves,
		Branches:    t.m.nodes - t.m.leaves,
		MaxDepth:    t.m.maxDepth,
		Execs:       t.m.execs,
		Invocations: t.m.invocations,
		Allocated:   t.m.allocated,
		Released:    t.m.released,
	}
}

// String implements fmt.Stringer.
func (m Metrics) String() string {
	return redact.StringWithoutMarkers(m)
}

// SafeFormat implements redact.SafeFormatter.
func (m Metrics) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("nodes: %d (leaves: %d, branches: %d), max depth: %d\n",
		m.Nodes, m.Leaves, m.Branches, m.MaxDepth)
	w.Printf("execs: %d, invocations: %d\n", m.Execs, m.Invocations)
	w.Printf("allocated: %d, released: %d\n", m.Allocated, m.Released)
}
