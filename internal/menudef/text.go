// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package menudef

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/treemenu"
	"github.com/cockroachdb/treemenu/internal/indenttree"
	"github.com/cockroachdb/treemenu/internal/strparse"
)

func parseText(input string, h Handlers, parent *treemenu.Node[string]) error {
	nodes, err := indenttree.Parse(input)
	if err != nil {
		return errors.Wrap(err, "menudef")
	}
	return addTextNodes(nodes, h, parent)
}

func addTextNodes(nodes []indenttree.Node, h Handlers, parent *treemenu.Node[string]) error {
	for i := range nodes {
		n := &nodes[i]
		e, err := parseTextLine(n.Value())
		if err != nil {
			return errors.Wrapf(err, "line %d", n.Line())
		}
		e.line = n.Line()
		children := n.Children()
		if e.kind == treemenu.KindLeaf && len(children) > 0 {
			return errors.Errorf("line %d: leaf %q cannot have children", e.line, e.name)
		}
		b, err := e.add(h, parent)
		if err != nil {
			return err
		}
		if err := addTextNodes(children, h, b); err != nil {
			return err
		}
	}
	return nil
}

// parseTextLine parses a single line of the text format (without
// indentation).
func parseTextLine(line string) (e entry, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = rerr
		}
	}()
	p := strparse.MakeParser("", line)
	switch p.Next() {
	case "*":
		e.kind = treemenu.KindBranch
		e.name = p.Word("branch name")
		if !p.Done() {
			p.Next()
			p.Errf("unexpected token after branch name")
		}
	case "-":
		e.kind = treemenu.KindLeaf
		e.name = p.Word("leaf name")
		e.handler = p.Word("handler")
		e.context = p.Remaining()
	default:
		p.Errf(`expected "*" or "-"`)
	}
	return e, nil
}
