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
	"slices"
	"sync"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-fluxsort/fluxsort"
	"github.com/ajroetker/go-fluxsort/internal/patterns"
	"github.com/ajroetker/go-fluxsort/internal/workerpool"
)

type verifyOptions struct {
	patterns []string
	trials   int
	maxSize  int
	workers  int
	seed     uint64
}

func newVerifyCmd() *cobra.Command {
	var opts verifyOptions
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Stress-test every sort path against a reference stable sort",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd.OutOrStdout(), opts)
		},
	}
	f := cmd.Flags()
	addPatternsFlag(f, &opts.patterns)
	f.IntVar(&opts.trials, "trials", 500, "number of random trials")
	f.IntVar(&opts.maxSize, "max-size", 20000, "largest input size")
	f.IntVar(&opts.workers, "workers", 0, "worker goroutines (0 means GOMAXPROCS)")
	f.Uint64Var(&opts.seed, "seed", 1, "base seed; trial i uses seed+i")
	return cmd
}

type sortPath struct {
	name string
	sort func(data []patterns.Record) error
}

var sortPaths = []sortPath{
	{"sort", func(d []patterns.Record) error {
		fluxsort.Sort(d, patterns.CompareKeys)
		return nil
	}},
	{"merge", func(d []patterns.Record) error {
		fluxsort.MergeSort(d, patterns.CompareKeys)
		return nil
	}},
	{"buffer", func(d []patterns.Record) error {
		return fluxsort.SortWithBuffer(d, make([]patterns.Record, fluxsort.BufferLen(len(d), false)), patterns.CompareKeys)
	}},
	{"half-buffer", func(d []patterns.Record) error {
		return fluxsort.SortWithBuffer(d, make([]patterns.Record, fluxsort.BufferLen(len(d), true)), patterns.CompareKeys)
	}},
	{"no-scratch", func(d []patterns.Record) error {
		fluxsort.New(patterns.CompareKeys, fluxsort.WithAllocator(fluxsort.NewBudget(0))).Sort(d)
		return nil
	}},
}

type verifyStats struct {
	trials   int
	elements int
}

func runVerify(w io.Writer, opts verifyOptions) error {
	if opts.trials < 0 || opts.maxSize < 0 {
		return fmt.Errorf("--trials and --max-size must not be negative")
	}
	names, err := lookupPatterns(opts.patterns)
	if err != nil {
		return err
	}

	pool := workerpool.New(opts.workers)
	defer pool.Close()

	var mu sync.Mutex
	stats := make(map[string]*verifyStats, len(names))
	for _, name := range names {
		stats[name] = &verifyStats{}
	}

	err = pool.Run(opts.trials, func(i int) error {
		seed := opts.seed + uint64(i)
		r := patterns.NewRand(seed)
		name := names[r.IntN(len(names))]
		n := r.IntN(opts.maxSize + 1)

		keys, err := patterns.Generate(name, n, seed)
		if err != nil {
			return err
		}
		// Fold keys into a smaller range so most trials carry duplicates.
		if div := 1 + r.IntN(n+1); div > 1 {
			for j := range keys {
				keys[j] %= div
			}
		}
		if err := verifyTrial(patterns.Tag(keys)); err != nil {
			return fmt.Errorf("trial %d (%s, n=%d, seed %d): %w", i, name, n, seed, err)
		}

		mu.Lock()
		stats[name].trials++
		stats[name].elements += n
		mu.Unlock()
		return nil
	})
	if err != nil {
		return err
	}

	renderVerify(w, names, stats)
	return nil
}

// verifyTrial runs input through every sort path and compares each result
// with the reference stable sort.
func verifyTrial(input []patterns.Record) error {
	want := slices.Clone(input)
	slices.SortStableFunc(want, patterns.CompareKeys)

	got := make([]patterns.Record, len(input))
	for _, p := range sortPaths {
		copy(got, input)
		if err := p.sort(got); err != nil {
			return fmt.Errorf("%s: %w", p.name, err)
		}
		if i := firstDifference(want, got); i >= 0 {
			return fmt.Errorf("%s: result differs at index %d: got %+v, want %+v", p.name, i, got[i], want[i])
		}
	}
	return nil
}

func firstDifference(want, got []patterns.Record) int {
	for i := range want {
		if want[i] != got[i] {
			return i
		}
	}
	return -1
}

func renderVerify(w io.Writer, names []string, stats map[string]*verifyStats) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Footer = text.FormatDefault
	t.AppendHeader(table.Row{"Pattern", "Trials", "Elements"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	for _, name := range names {
		s := stats[name]
		t.AppendRow(table.Row{name, s.trials, s.elements})
	}
	all := lo.Values(stats)
	t.AppendFooter(table.Row{
		"total",
		lo.SumBy(all, func(s *verifyStats) int { return s.trials }),
		lo.SumBy(all, func(s *verifyStats) int { return s.elements }),
	})
	t.Render()
	fmt.Fprintf(w, "all %d sort paths matched the reference\n", len(sortPaths))
}
