// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/treemenu"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [menu-file]",
	Short: "print the tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, _, err := openTree(cmd, args, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer tree.Close()
		return tree.DumpTo(cmd.OutOrStdout())
	},
}

var execCmd = &cobra.Command{
	Use:   "exec [menu-file] -- <name>...",
	Short: "execute commands given on the command line",
	Long: `
Executes each name in turn. Without "--", all arguments are names and the
configured or demo menu is used.
`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func runExec(cmd *cobra.Command, args []string) error {
	menuArgs, names := splitExecArgs(args, cmd.ArgsLenAtDash())
	if len(menuArgs) > 1 {
		return errors.Errorf("at most one menu file may be given, got %d", len(menuArgs))
	}
	tree, _, err := openTree(cmd, menuArgs, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer tree.Close()
	for _, name := range names {
		tree.Exec(name)
	}
	return nil
}

// splitExecArgs splits the arguments of exec at the position of "--", as
// reported by cobra (-1 if there was none).
func splitExecArgs(args []string, dash int) (menuArgs, names []string) {
	if dash < 0 {
		return nil, args
	}
	return args[:dash], args[dash:]
}

var nodesCmd = &cobra.Command{
	Use:   "nodes [menu-file]",
	Short: "list the nodes of the tree in a table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stdout := cmd.OutOrStdout()
		tree, _, err := openTree(cmd, args, stdout)
		if err != nil {
			return err
		}
		defer tree.Close()

		tbl := tablewriter.NewWriter(stdout)
		tbl.SetHeader([]string{"Path", "Kind", "Depth", "Children"})
		tbl.SetAutoWrapText(false)
		row := func(n *treemenu.Node[string]) {
			var children int
			for range n.Children() {
				children++
			}
			tbl.Append([]string{
				nodePath(n),
				n.Kind().String(),
				fmt.Sprint(n.Depth()),
				fmt.Sprint(children),
			})
		}
		root := tree.Root()
		row(root)
		for n := range root.Walk() {
			row(n)
		}
		tbl.Render()
		return nil
	},
}

// nodePath returns the names from the root to n, separated by slashes.
func nodePath(n *treemenu.Node[string]) string {
	names := make([]string, n.Depth()+1)
	for ; n != nil; n = n.Parent() {
		names[n.Depth()] = n.Name()
	}
	return strings.Join(names, "/")
}
