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
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-fluxsort/fluxsort"
	"github.com/ajroetker/go-fluxsort/internal/patterns"
)

// algorithm is a sort the bench command can time.
type algorithm struct {
	name string
	sort func(data []int, cmp func(a, b int) int)
}

var algorithms = []algorithm{
	{"flux", fluxsort.Sort[int]},
	{"merge", fluxsort.MergeSort[int]},
	{"stdlib", slices.SortFunc[[]int]},
	{"stdlib-stable", slices.SortStableFunc[[]int]},
}

func algorithmNames() []string {
	return lo.Map(algorithms, func(a algorithm, _ int) string { return a.name })
}

// lookupAlgorithms resolves names, dropping duplicates. An empty list
// selects every algorithm.
func lookupAlgorithms(names []string) ([]algorithm, error) {
	if len(names) == 0 {
		return algorithms, nil
	}
	var out []algorithm
	for _, name := range lo.Uniq(names) {
		a, ok := lo.Find(algorithms, func(a algorithm) bool { return a.name == name })
		if !ok {
			return nil, fmt.Errorf("unknown algorithm %q (available: %s)", name, strings.Join(algorithmNames(), ", "))
		}
		out = append(out, a)
	}
	return out, nil
}

// lookupPatterns validates pattern names, dropping duplicates. An empty
// list selects every pattern.
func lookupPatterns(names []string) ([]string, error) {
	if len(names) == 0 {
		return patterns.Names(), nil
	}
	names = lo.Uniq(names)
	for _, name := range names {
		if _, err := patterns.Lookup(name); err != nil {
			return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(patterns.Names(), ", "))
		}
	}
	return names, nil
}

// addPatternsFlag registers the --patterns flag shared by bench and verify.
func addPatternsFlag(f *pflag.FlagSet, names *[]string) {
	f.StringSliceVar(names, "patterns", nil, "input patterns (default all: "+strings.Join(patterns.Names(), ",")+")")
}
