// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package menudef

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/treemenu"
	"gopkg.in/yaml.v3"
)

// yamlEntry is the YAML form of an entry. Children are kept as a raw node so
// that the line numbers of nested entries survive decoding.
type yamlEntry struct {
	Branch   string    `yaml:"branch"`
	Leaf     string    `yaml:"leaf"`
	Handler  string    `yaml:"handler"`
	Context  string    `yaml:"context"`
	Children yaml.Node `yaml:"children"`
}

func parseYAML(data []byte, h Handlers, parent *treemenu.Node[string]) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, "menudef")
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return errors.New("menudef: empty input")
	}
	return addYAMLNodes(doc.Content[0], h, parent)
}

func addYAMLNodes(seq *yaml.Node, h Handlers, parent *treemenu.Node[string]) error {
	if seq.Kind != yaml.SequenceNode {
		return errors.Errorf("line %d: expected a sequence of entries", seq.Line)
	}
	for _, item := range seq.Content {
		var y yamlEntry
		if err := item.Decode(&y); err != nil {
			return errors.Wrapf(err, "line %d", item.Line)
		}
		e := entry{
			name:    y.Branch,
			handler: y.Handler,
			context: y.Context,
			line:    item.Line,
		}
		switch {
		case y.Branch != "" && y.Leaf != "":
			return errors.Errorf("line %d: entry is both branch %q and leaf %q", e.line, y.Branch, y.Leaf)
		case y.Branch != "":
			e.kind = treemenu.KindBranch
			if y.Handler != "" || y.Context != "" {
				return errors.Errorf("line %d: branch %q cannot have a handler or context", e.line, e.name)
			}
		case y.Leaf != "":
			e.kind = treemenu.KindLeaf
			e.name = y.Leaf
			if y.Children.Kind != 0 {
				return errors.Errorf("line %d: leaf %q cannot have children", e.line, e.name)
			}
		default:
			return errors.Errorf("line %d: entry must name a branch or a leaf", e.line)
		}
		b, err := e.add(h, parent)
		if err != nil {
			return err
		}
		if y.Children.Kind != 0 {
			if err := addYAMLNodes(&y.Children, h, b); err != nil {
				return err
			}
		}
	}
	return nil
}
