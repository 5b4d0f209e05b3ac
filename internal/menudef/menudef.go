// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package menudef builds menu trees from definition files.
//
// Two formats are supported. The text format describes the hierarchy with
// indentation; every line is either a branch or a leaf:
//
//	* <name>
//	- <name> <handler> [<context>]
//
// The context of a leaf is the remainder of the line, with runs of whitespace
// collapsed to a single space. Lines starting with '#' are comments. For
// example:
//
//	- print_a print_a
//	* branch1
//	  - print_d print_b ctx_print_d
//
// The YAML format is a sequence of mappings, each describing a branch or a
// leaf:
//
//	- leaf: print_a
//	  handler: print_a
//	- branch: branch1
//	  children:
//	    - leaf: print_d
//	      handler: print_b
//	      context: ctx_print_d
//
// Handlers are resolved by name in a Handlers registry. Only branches may have
// children.
package menudef

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/treemenu"
)

// ErrUnknownHandler is returned when a leaf refers to a handler which is not
// in the registry.
var ErrUnknownHandler = errors.New("menudef: unknown handler")

// Handlers maps the handler names used in menu definitions to callbacks.
type Handlers map[string]treemenu.Func[string]

// Format identifies the syntax of a menu definition.
type Format int8

const (
	// FormatText is the indented text format.
	FormatText Format = iota
	// FormatYAML is the YAML format.
	FormatYAML
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFor returns the format of the menu definition at path, based on its
// extension: ".yaml" and ".yml" files are YAML, anything else is text.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Load reads the menu definition at path and appends its entries under
// parent.
func Load(path string, h Handlers, parent *treemenu.Node[string]) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "menudef")
	}
	if err := Parse(FormatFor(path), data, h, parent); err != nil {
		return errors.Wrapf(err, "%s", path)
	}
	return nil
}

// Parse parses a menu definition in the given format and appends its entries
// under parent. On error, the entries that precede the failing one remain in
// the tree.
func Parse(f Format, data []byte, h Handlers, parent *treemenu.Node[string]) error {
	switch f {
	case FormatText:
		return parseText(string(data), h, parent)
	case FormatYAML:
		return parseYAML(data, h, parent)
	default:
		return errors.AssertionFailedf("menudef: unknown format %d", errors.Safe(f))
	}
}

// entry is a single branch or leaf of a menu definition, independent of its
// syntax.
type entry struct {
	kind    treemenu.Kind
	name    string
	handler string
	context string
	line    int
}

// add appends e under parent. It returns the new node for a branch, and nil for
// a leaf.
func (e *entry) add(h Handlers, parent *treemenu.Node[string]) (*treemenu.Node[string], error) {
	if e.kind == treemenu.KindBranch {
		n, err := parent.AddBranch(e.name)
		return n, errors.Wrapf(err, "line %d", e.line)
	}
	fn, ok := h[e.handler]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownHandler, "line %d: leaf %q: handler %q", e.line, e.name, e.handler)
	}
	return nil, errors.Wrapf(parent.AddLeaf(e.name, fn, e.context), "line %d", e.line)
}
