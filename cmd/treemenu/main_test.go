// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/crlib/testutils/leaktest"
	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/treemenu"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// testCmd returns a command without flags, so that openTree and
// resolveConfig only see defaults and the config file.
func testCmd(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	return cmd
}

func TestREPL(t *testing.T) {
	datadriven.RunTest(t, "testdata/repl", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "repl":
			var out bytes.Buffer
			tree, _, err := openTree(testCmd(&out), nil, &out)
			require.NoError(t, err)
			defer tree.Close()
			r := repl{
				tree: tree,
				in:   strings.NewReader(td.Input + "\n"),
				out:  &out,
				echo: td.HasArg("echo"),
			}
			require.NoError(t, r.run())
			return out.String()

		default:
			td.Fatalf(t, "unknown command: %s", td.Cmd)
			return ""
		}
	})
}

func TestREPLLongLine(t *testing.T) {
	var out bytes.Buffer
	tree, err := treemenu.New[string]("M", &treemenu.Options{Stdout: &out})
	require.NoError(t, err)
	defer tree.Close()
	long := strings.Repeat("x", 300)
	require.NoError(t, tree.Root().AddLeaf(long[:maxLineLen], func(ctx string) {
		out.WriteString("matched " + ctx + "\n")
	}, "prefix"))

	r := repl{tree: tree, in: strings.NewReader(long + "\nexit\nls\n"), out: &out, echo: true}
	require.NoError(t, r.run())
	require.Equal(t,
		"[256]["+long[:256]+"]\nmatched prefix\n"+
			"[45]["+long[256:]+"]\n"+
			"[5][exit]\n",
		out.String())
}

func TestREPLPrompt(t *testing.T) {
	var out bytes.Buffer
	tree, _, err := openTree(testCmd(&out), nil, &out)
	require.NoError(t, err)
	defer tree.Close()
	r := repl{tree: tree, in: strings.NewReader("print_a\n"), out: &out, prompt: defaultPrompt}
	require.NoError(t, r.run())
	require.Equal(t, "> print_a\n> ", out.String())
}

func TestConfig(t *testing.T) {
	var cfg config
	require.NoError(t, decodeConfig(strings.NewReader(`
module = "M"
echo = true
name_compare_len = -1
max_depth = 3
menu = "menu.yaml"
`), &cfg))
	require.Equal(t, config{
		Module:         "M",
		Echo:           true,
		NameCompareLen: -1,
		MaxDepth:       3,
		Menu:           "menu.yaml",
	}, cfg)

	err := decodeConfig(strings.NewReader("colour = \"red\"\n"), &cfg)
	require.ErrorContains(t, err, "unknown keys: colour")

	dir := t.TempDir()
	path := filepath.Join(dir, "treemenu.toml")
	require.NoError(t, os.WriteFile(path, []byte("module = \"FROM_FILE\"\nmax_depth = 1\n"), 0o644))
	defer func(prev string) { configPath = prev }(configPath)
	configPath = path

	// Flags that are set win over the file.
	cmd := &cobra.Command{}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "")
	require.NoError(t, cmd.Flags().Set("max-depth", "2"))
	cfg, err = resolveConfig(cmd)
	require.NoError(t, err)
	require.Equal(t, "FROM_FILE", cfg.Module)
	require.Equal(t, 2, cfg.MaxDepth)
	require.Equal(t, defaultPrompt, cfg.Prompt)

	configPath = filepath.Join(dir, "missing.toml")
	_, err = resolveConfig(&cobra.Command{})
	require.ErrorContains(t, err, "reading config")
}

func TestOpenTreeFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- leaf: hello
  handler: echo
  context: hello, world
- branch: sub
  children:
    - leaf: hello
      handler: print_a
`), 0o644))

	var out bytes.Buffer
	tree, _, err := openTree(testCmd(&out), []string{path}, &out)
	require.NoError(t, err)
	tree.Exec("hello")
	tree.Close()
	require.Equal(t, "hello, world\nprint_a\n", out.String())

	_, _, err = openTree(testCmd(&out), []string{filepath.Join(dir, "missing")}, &out)
	require.Error(t, err)
}

func TestExecCommand(t *testing.T) {
	menu, names := splitExecArgs([]string{"menu", "a", "b"}, 1)
	require.Equal(t, []string{"menu"}, menu)
	require.Equal(t, []string{"a", "b"}, names)
	menu, names = splitExecArgs([]string{"a", "b"}, -1)
	require.Empty(t, menu)
	require.Equal(t, []string{"a", "b"}, names)

	var out bytes.Buffer
	require.NoError(t, runExec(testCmd(&out), []string{"print_b", "branch2", "nothing"}))
	require.Equal(t, "print_b, ctx[ctx_print_b]\nprint_b, ctx[ctx_print_b]\n", out.String())
}

func TestDumpAndNodesCommands(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, dumpCmd.RunE(testCmd(&out), nil))
	require.True(t, strings.HasPrefix(out.String(), "|o[MODULE_TEST]\n|-[print_a], 1\n"), out.String())
	require.Equal(t, 16, strings.Count(out.String(), "\n"))

	out.Reset()
	require.NoError(t, nodesCmd.RunE(testCmd(&out), nil))
	for _, s := range []string{
		"MODULE_TEST/branch1/branch3/branch4/branch2/print_f",
		"MODULE_TEST/branch1/branch2",
		"PATH",
	} {
		require.Contains(t, out.String(), s)
	}
}

func TestBenchWorker(t *testing.T) {
	defer leaktest.AfterTest(t)()

	invocations := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_invocations"})
	cfg := defaultConfig()
	c := benchSettings{fanout: 3, depth: 2, concurrency: 1, ops: 200, seed: 7, plot: true}
	var res benchResult
	require.NoError(t, runBenchWorker(context.Background(), &cfg, c, 0, invocations, &res))

	// 1 root, 3 branches and 9 leaves.
	require.Equal(t, int64(13), res.metrics.Nodes)
	require.Equal(t, int64(9), res.metrics.Leaves)
	require.Equal(t, int64(200), res.metrics.Execs)
	require.Equal(t, int64(200), res.hist.TotalCount())
	require.Len(t, res.samples, 200)
	// Every name that matches is shared by one leaf under each branch.
	require.Zero(t, res.metrics.Invocations%3)

	var m dto.Metric
	require.NoError(t, invocations.Write(&m))
	require.Equal(t, float64(res.metrics.Invocations), m.GetCounter().GetValue())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, runBenchWorker(ctx, &cfg, c, 1, invocations, &benchResult{}), context.Canceled)
}

func TestBenchCommand(t *testing.T) {
	defer leaktest.AfterTest(t)()

	defer func(prev benchSettings) { benchConfig = prev }(benchConfig)
	benchConfig = benchSettings{fanout: 2, depth: 3, concurrency: 4, ops: 100, seed: 1, plot: true}
	var out bytes.Buffer
	require.NoError(t, runBench(testCmd(&out), nil))
	require.Contains(t, out.String(), "INVOCATIONS")
	require.Contains(t, out.String(), "exec latency of worker 0")

	benchConfig.fanout = 0
	require.ErrorContains(t, runBench(testCmd(&out), nil), "invalid bench settings")
}

func TestDownsample(t *testing.T) {
	require.Equal(t, []float64{1, 2}, downsample([]float64{1, 2}, 5))
	require.Equal(t, []float64{1.5, 3.5}, downsample([]float64{1, 2, 3, 4}, 2))
	require.Len(t, downsample(make([]float64, 1000), plotPoints), plotPoints)
}
