// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/crlib/crtime"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/treemenu"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	minLatency = 10 * time.Nanosecond
	maxLatency = 10 * time.Second

	plotPoints = 120
	plotHeight = 10
)

type benchSettings struct {
	fanout      int
	depth       int
	concurrency int
	ops         int
	seed        int64
	plot        bool
}

var benchConfig benchSettings

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "benchmark Exec on synthetic trees",
	Long: `
Builds one synthetic tree per worker and times Exec on it. Every branch has
--fanout children; the leaves sit at --depth and are named op0, op1, ...
according to their position among their siblings, so a single Exec invokes
many callbacks. One in fanout+1 executions uses a name that matches nothing.
`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	c := benchConfig
	if c.fanout < 1 || c.depth < 1 || c.concurrency < 1 || c.ops < 0 {
		return errors.Errorf("invalid bench settings: fanout=%d depth=%d concurrency=%d ops=%d",
			c.fanout, c.depth, c.concurrency, c.ops)
	}

	invocations := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "treemenu_bench_invocations_total",
		Help: "Number of callbacks invoked by the benchmark.",
	})
	results := make([]benchResult, c.concurrency)
	g, ctx := errgroup.WithContext(context.Background())
	start := crtime.NowMono()
	for i := range results {
		g.Go(func() error {
			return runBenchWorker(ctx, &cfg, c, i, invocations, &results[i])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	elapsed := start.Elapsed()

	var m dto.Metric
	if err := invocations.Write(&m); err != nil {
		return err
	}
	stdout := cmd.OutOrStdout()
	writeBenchSummary(stdout, c, results, int64(m.GetCounter().GetValue()), elapsed)
	if c.plot && len(results[0].samples) > 0 {
		fmt.Fprintf(stdout, "\nexec latency of worker 0 (µs)\n%s\n",
			asciigraph.Plot(downsample(results[0].samples, plotPoints), asciigraph.Height(plotHeight)))
	}
	return nil
}

type benchResult struct {
	hist    *hdrhistogram.Histogram
	metrics treemenu.Metrics
	// samples holds every latency, in microseconds, when plotting.
	samples []float64
}

func newHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(minLatency.Nanoseconds(), maxLatency.Nanoseconds(), 1)
}

func clampLatency(d time.Duration) time.Duration {
	return min(max(d, minLatency), maxLatency)
}

func benchName(i int) string {
	return fmt.Sprintf("op%d", i)
}

func runBenchWorker(
	ctx context.Context,
	cfg *config,
	c benchSettings,
	worker int,
	invocations prometheus.Counter,
	res *benchResult,
) error {
	opts := cfg.options(io.Discard)
	opts.Invocations = invocations
	tree, err := treemenu.New[int](fmt.Sprintf("bench-%d", worker), opts)
	if err != nil {
		return err
	}
	defer tree.Close()

	var sink int
	if err := buildBenchTree(tree.Root(), c.fanout, c.depth, func(v int) { sink += v }); err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(uint64(c.seed), uint64(worker)))
	res.hist = newHistogram()
	for i := 0; i < c.ops; i++ {
		if i%1024 == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		name := benchName(rng.IntN(c.fanout + 1))
		start := crtime.NowMono()
		tree.Exec(name)
		elapsed := start.Elapsed()
		if err := res.hist.RecordValue(clampLatency(elapsed).Nanoseconds()); err != nil {
			return errors.Wrapf(err, "worker %d", worker)
		}
		if c.plot && worker == 0 {
			res.samples = append(res.samples, float64(elapsed.Nanoseconds())/1e3)
		}
	}
	res.metrics = tree.Metrics()
	return nil
}

// buildBenchTree adds fanout children under n, recursively: branches above
// depth and leaves at depth.
func buildBenchTree(n *treemenu.Node[int], fanout, depth int, fn treemenu.Func[int]) error {
	for i := 0; i < fanout; i++ {
		if n.Depth()+1 >= depth {
			if err := n.AddLeaf(benchName(i), fn, i); err != nil {
				return err
			}
			continue
		}
		b, err := n.AddBranch(fmt.Sprintf("b%d", i))
		if err != nil {
			return err
		}
		if err := buildBenchTree(b, fanout, depth, fn); err != nil {
			return err
		}
	}
	return nil
}

func writeBenchSummary(
	w io.Writer, c benchSettings, results []benchResult, invocations int64, elapsed time.Duration,
) {
	hist := newHistogram()
	var execs int64
	for i := range results {
		hist.Merge(results[i].hist)
		execs += results[i].metrics.Execs
	}
	count := func(v int64) string {
		return string(crhumanize.Count(v, crhumanize.Compact))
	}
	latency := func(q float64) string {
		return time.Duration(hist.ValueAtQuantile(q)).String()
	}

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"workers", "nodes", "execs", "invocations", "ops/sec", "mean", "p50", "p95", "p99", "max"})
	tbl.Append([]string{
		fmt.Sprint(c.concurrency),
		count(results[0].metrics.Nodes),
		count(execs),
		count(invocations),
		count(int64(float64(execs) / max(elapsed.Seconds(), 1e-9))),
		time.Duration(hist.Mean()).String(),
		latency(50),
		latency(95),
		latency(99),
		latency(100),
	})
	tbl.Render()
}

// downsample reduces values to at most n points by averaging consecutive
// runs.
func downsample(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}
	out := make([]float64, n)
	for i := range out {
		lo, hi := i*len(values)/n, (i+1)*len(values)/n
		var sum float64
		for _, v := range values[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}
