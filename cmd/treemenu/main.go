// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath     string
	moduleName     string
	nameCompareLen int
	maxDepth       int
	strictLeaves   bool
)

var rootCmd = &cobra.Command{
	Use:   "treemenu [command] (flags)",
	Short: "command-dispatch tree host",
	Long: `
Builds a command-dispatch tree from a menu definition (or the built-in demo
menu) and dispatches commands to it interactively, from the command line, or
in a synthetic benchmark.
`,
	SilenceUsage: true,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		replCmd,
		dumpCmd,
		execCmd,
		nodesCmd,
		benchCmd,
	)

	rootCmd.PersistentFlags().StringVar(
		&configPath, "config", "", "TOML configuration file")
	rootCmd.PersistentFlags().StringVar(
		&moduleName, "module", defaultModuleName, "name of the root of the tree")
	rootCmd.PersistentFlags().IntVar(
		&nameCompareLen, "name-compare-len", 0,
		"number of leading bytes of names that are compared (0 for the default, negative for unbounded)")
	rootCmd.PersistentFlags().IntVar(
		&maxDepth, "max-depth", 0, "maximum depth of the tree (0 means unbounded)")
	rootCmd.PersistentFlags().BoolVar(
		&strictLeaves, "strict-leaves", false, "reject children under leaves")

	replCmd.Flags().BoolVar(
		&replEcho, "echo", false, "echo every line read as [<bytes>][<line>]")
	replCmd.Flags().StringVar(
		&replPrompt, "prompt", defaultPrompt, "prompt printed when stdin is a terminal")

	benchCmd.Flags().IntVar(
		&benchConfig.fanout, "fanout", 4, "number of children of every branch")
	benchCmd.Flags().IntVar(
		&benchConfig.depth, "depth", 4, "depth of the leaves")
	benchCmd.Flags().IntVarP(
		&benchConfig.concurrency, "concurrency", "c", 1, "number of concurrent workers, each with its own tree")
	benchCmd.Flags().IntVarP(
		&benchConfig.ops, "ops", "n", 10000, "number of Exec calls per worker")
	benchCmd.Flags().Int64Var(
		&benchConfig.seed, "seed", 1, "random seed")
	benchCmd.Flags().BoolVar(
		&benchConfig.plot, "plot", false, "plot the latency of the first worker")

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
