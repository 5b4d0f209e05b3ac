// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package indenttree implements a simple text processor which parses a
// hierarchy defined using indentation; see Parse.
package indenttree

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// Parse a multi-line input string into trees of nodes. For example:
//
//	a
//	 a1
//	  a11
//	 a2
//	b
//	 b1
//
// is parsed into two Nodes (a and b). Node a has two children (a1, a2), and a1
// has one child (a11); node b has one child (b1).
//
// Blank lines, and lines whose first non-space character is '#', are ignored.
//
// The indentation level is arbitrary but it must be consistent across nodes.
// For example, the following is not valid:
//
//	a
//	 a1
//	b
//	  b1
//
// Tabs cannot be used for indentation (they can cause confusion if editor
// settings vary). Nodes cannot be skipped, for example the following is not
// valid:
//
//	a
//	  a1
//	    a11
//	b
//	    b12
func Parse(input string) ([]Node, error) {
	type line struct {
		text   string
		number int
		indent int
	}
	var lines []line
	for i, text := range strings.Split(strings.TrimSuffix(input, "\n"), "\n") {
		text = strings.TrimRight(text, " \r")
		level := 0
		for strings.HasPrefix(text[level:], " ") {
			level++
		}
		if len(text) == level || text[level] == '#' {
			continue
		}
		if text[level] == '\t' {
			return nil, errors.Errorf("line %d: tab indentation", i+1)
		}
		lines = append(lines, line{text: text[level:], number: i + 1, indent: level})
	}
	if len(lines) == 0 {
		return nil, errors.Errorf("empty input")
	}
	levels := make([]int, len(lines))
	for i := range lines {
		levels[i] = lines[i].indent
	}
	slices.Sort(levels)
	levels = slices.Compact(levels)

	var parse func(levelIdx, startLineIdx, endLineIdx int) ([]Node, error)
	parse = func(levelIdx, startLineIdx, endLineIdx int) ([]Node, error) {
		if startLineIdx > endLineIdx {
			return nil, nil
		}
		l := lines[startLineIdx]
		if levelIdx >= len(levels) || l.indent != levels[levelIdx] {
			return nil, errors.Errorf("line %d: inconsistent indentation", l.number)
		}
		nextNode := startLineIdx + 1
		for ; nextNode <= endLineIdx; nextNode++ {
			if lines[nextNode].indent <= l.indent {
				break
			}
		}
		node := Node{value: l.text, line: l.number}
		var err error
		node.children, err = parse(levelIdx+1, startLineIdx+1, nextNode-1)
		if err != nil {
			return nil, err
		}
		otherNodes, err := parse(levelIdx, nextNode, endLineIdx)
		if err != nil {
			return nil, err
		}
		return append([]Node{node}, otherNodes...), nil
	}
	return parse(0, 0, len(lines)-1)
}

// Node in a hierarchy returned by Parse.
type Node struct {
	value    string
	line     int
	children []Node
}

// Value returns the contents of the line for this node (without the
// indentation).
func (n *Node) Value() string {
	return n.value
}

// Line returns the 1-based line number of the node in the input.
func (n *Node) Line() int {
	return n.line
}

// Children returns the child nodes, if any.
func (n *Node) Children() []Node {
	return n.children
}
