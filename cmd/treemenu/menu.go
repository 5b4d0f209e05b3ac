// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/treemenu"
	"github.com/cockroachdb/treemenu/internal/menudef"
	"github.com/spf13/cobra"
)

const defaultModuleName = "MODULE_TEST"

// demoMenu is used when no menu definition is given. Some leaves share their
// names with branches, so executing "branch4" or "branch2" invokes every leaf
// with that name.
const demoMenu = `
- print_a print_a
- print_b print_b ctx_print_b
* branch1
  - print_c print_a
  - print_d print_b ctx_print_d
  * branch3
    - print_g print_a
    - print_h print_b ctx_print_h
    * branch4
      - branch4 print_a
      - branch4 print_b ctx_print_b
      * branch2
        - print_e print_a
        - print_f print_b ctx_print_f
  - branch2 print_b ctx_print_b
`

// handlers returns the callbacks available to menu definitions. They write to
// w.
func handlers(w io.Writer) menudef.Handlers {
	return menudef.Handlers{
		"print_a": func(string) {
			fmt.Fprintf(w, "print_a\n")
		},
		"print_b": func(ctx string) {
			fmt.Fprintf(w, "print_b, ctx[%s]\n", ctx)
		},
		"echo": func(ctx string) {
			fmt.Fprintf(w, "%s\n", ctx)
		},
	}
}

// openTree builds the tree for cmd. The menu definition is the first of args
// if present, then the configured menu, then the demo menu.
func openTree(
	cmd *cobra.Command, args []string, stdout io.Writer,
) (*treemenu.Tree[string], config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, cfg, err
	}
	if len(args) > 0 {
		cfg.Menu = args[0]
	}
	tree, err := treemenu.New[string](cfg.Module, cfg.options(stdout))
	if err != nil {
		return nil, cfg, err
	}
	h := handlers(stdout)
	if cfg.Menu != "" {
		err = menudef.Load(cfg.Menu, h, tree.Root())
	} else {
		err = menudef.Parse(menudef.FormatText, []byte(demoMenu), h, tree.Root())
	}
	if err != nil {
		tree.Close()
		return nil, cfg, err
	}
	return tree, cfg, nil
}
