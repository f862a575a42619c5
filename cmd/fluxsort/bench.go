// Copyright 2025 go-fluxsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-fluxsort/internal/patterns"
	"github.com/ajroetker/go-fluxsort/internal/platform"
)

type benchOptions struct {
	sizes      []int
	patterns   []string
	algorithms []string
	runs       int
	seed       uint64
}

func newBenchCmd() *cobra.Command {
	var opts benchOptions
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the sorts over sizes and input patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.IntSliceVar(&opts.sizes, "sizes", []int{1000, 100000}, "input sizes")
	addPatternsFlag(f, &opts.patterns)
	f.StringSliceVar(&opts.algorithms, "algorithms", nil, "algorithms (default all: "+strings.Join(algorithmNames(), ",")+")")
	f.IntVar(&opts.runs, "runs", 5, "timed runs per measurement")
	f.Uint64Var(&opts.seed, "seed", 1, "pattern seed")
	return cmd
}

type dataset struct {
	pattern string
	size    int
	keys    []int
}

type benchResult struct {
	dataset   *dataset
	algorithm string
	nsPerOp   float64
	cmpsPerOp float64
}

func runBench(cmd *cobra.Command, opts benchOptions) error {
	if opts.runs < 1 {
		return fmt.Errorf("--runs must be at least 1, got %d", opts.runs)
	}
	algs, err := lookupAlgorithms(opts.algorithms)
	if err != nil {
		return err
	}
	names, err := lookupPatterns(opts.patterns)
	if err != nil {
		return err
	}
	sizes := lo.Uniq(opts.sizes)
	for _, n := range sizes {
		if n < 0 {
			return fmt.Errorf("invalid size %d", n)
		}
	}

	datasets, err := generateDatasets(cmd, names, sizes, opts.seed)
	if err != nil {
		return err
	}

	var results []benchResult
	for _, ds := range datasets {
		for _, alg := range algs {
			res, err := measure(ds, alg, opts.runs)
			if err != nil {
				return err
			}
			results = append(results, res)
		}
	}

	w := cmd.OutOrStdout()
	info := platform.Current()
	fmt.Fprintf(w, "%s/%s %s, %d runs, seed %d\n", info.GOOS, info.GOARCH, strings.Join(info.Features, " "), opts.runs, opts.seed)
	renderBench(w, results)
	return nil
}

// generateDatasets builds every pattern and size combination concurrently.
func generateDatasets(cmd *cobra.Command, names []string, sizes []int, seed uint64) ([]*dataset, error) {
	datasets := make([]*dataset, 0, len(names)*len(sizes))
	for _, name := range names {
		for _, n := range sizes {
			datasets = append(datasets, &dataset{pattern: name, size: n})
		}
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, ds := range datasets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			keys, err := patterns.Generate(ds.pattern, ds.size, seed)
			if err != nil {
				return err
			}
			ds.keys = keys
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return datasets, nil
}

func measure(ds *dataset, alg algorithm, runs int) (benchResult, error) {
	data := make([]int, len(ds.keys))
	calls := 0
	compare := func(a, b int) int {
		calls++
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}

	var total time.Duration
	for range runs {
		copy(data, ds.keys)
		start := time.Now()
		alg.sort(data, compare)
		total += time.Since(start)
	}
	if !slices.IsSorted(data) {
		return benchResult{}, fmt.Errorf("%s left %s/%d unsorted", alg.name, ds.pattern, ds.size)
	}

	return benchResult{
		dataset:   ds,
		algorithm: alg.name,
		nsPerOp:   float64(total.Nanoseconds()) / float64(runs),
		cmpsPerOp: float64(calls) / float64(runs),
	}, nil
}

func renderBench(w io.Writer, results []benchResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Pattern", "Size", "Algorithm", "ns/op", "ns/elem", "cmps/elem"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	for _, r := range results {
		n := float64(max(r.dataset.size, 1))
		t.AppendRow(table.Row{
			r.dataset.pattern,
			r.dataset.size,
			r.algorithm,
			fmt.Sprintf("%.0f", r.nsPerOp),
			fmt.Sprintf("%.2f", r.nsPerOp/n),
			fmt.Sprintf("%.2f", r.cmpsPerOp/n),
		})
	}
	t.Render()
}
