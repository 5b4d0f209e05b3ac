// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treemenu

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/treemenu/internal/base"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNameCompareLen is the default number of leading bytes of a name that
// take part in the comparison performed by Exec.
const DefaultNameCompareLen = 128

// Logger defines an interface for writing log messages.
type Logger = base.Logger

// DefaultLogger logs to the Go stdlib logs.
type DefaultLogger = base.DefaultLogger

// Options holds the optional parameters for configuring a Tree. These options
// apply to the Tree at creation time and are not modified afterwards.
type Options struct {
	// NameCompareLen bounds the number of leading bytes of a node name, and of
	// the name passed to Exec, that are compared. Two names which agree on
	// their first NameCompareLen bytes are considered equal.
	//
	// The default value is DefaultNameCompareLen. A negative value disables the
	// bound: names are compared in full.
	NameCompareLen int

	// MaxDepth is the maximum depth of any node in the tree; the root is at
	// depth 0. Adding a node that would be deeper fails with ErrMaxDepth.
	//
	// The default value of 0 means that depth is not bounded.
	MaxDepth int

	// StrictLeaves rejects adding children to a leaf with ErrInvalidParent.
	// When false (the default), a leaf may have children: they are visited by
	// Exec and Dump like the children of a branch.
	StrictLeaves bool

	// Logger used to write log messages.
	//
	// The default logger uses the Go standard library log package.
	Logger Logger

	// Stdout is the destination of Dump.
	//
	// The default value is os.Stdout.
	Stdout io.Writer

	// ExecLatency, if set, observes the duration of every Exec call in
	// nanoseconds.
	ExecLatency prometheus.Histogram

	// Invocations, if set, is incremented for every callback invoked by Exec.
	Invocations prometheus.Counter
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified. Returns the new options.
func (o *Options) EnsureDefaults() *Options {
	if o == nil {
		o = &Options{}
	}
	if o.NameCompareLen == 0 {
		o.NameCompareLen = DefaultNameCompareLen
	}
	if o.Logger == nil {
		o.Logger = DefaultLogger{}
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	return o
}

// Clone creates a shallow-copy of the supplied options.
func (o *Options) Clone() *Options {
	if o == nil {
		return &Options{}
	}
	n := *o
	return &n
}

// Validate verifies that the options are mutually consistent.
func (o *Options) Validate() error {
	if o.MaxDepth < 0 {
		return errors.Newf("treemenu: MaxDepth (%d) must be non-negative", errors.Safe(o.MaxDepth))
	}
	return nil
}
