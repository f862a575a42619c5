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

// Package patterns generates the named input distributions used to test and
// benchmark the sorters: random data, presorted data and the structured
// shapes in between.
package patterns

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// ErrUnknownPattern is returned for a pattern name that is not registered.
var ErrUnknownPattern = errors.New("patterns: unknown pattern")

// Generator fills a slice of n keys drawn from r.
type Generator func(r *rand.Rand, n int) []int

var registry = map[string]Generator{
	"random":        random,
	"ascending":     ascending,
	"descending":    descending,
	"saw":           saw,
	"pipe_organ":    pipeOrgan,
	"few_distinct":  fewDistinct,
	"random_tail":   randomTail,
	"random_half":   randomHalf,
	"ascending_sub": ascendingSub,
	"equal":         equal,
}

// Names returns the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the generator registered under name.
func Lookup(name string) (Generator, error) {
	g, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return g, nil
}

// Generate returns n keys of the named pattern. The same name, n and seed
// always produce the same keys.
func Generate(name string, n int, seed uint64) ([]int, error) {
	g, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return g(NewRand(seed), n), nil
}

// NewRand returns a deterministic source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

func random(r *rand.Rand, n int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = r.Int()
	}
	return a
}

func ascending(_ *rand.Rand, n int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = i
	}
	return a
}

func descending(_ *rand.Rand, n int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = n - i
	}
	return a
}

// saw is a sequence of ascending teeth, each about sqrt(n) long.
func saw(_ *rand.Rand, n int) []int {
	tooth := 1
	for tooth*tooth < n {
		tooth++
	}
	a := make([]int, n)
	for i := range a {
		a[i] = i % tooth
	}
	return a
}

func pipeOrgan(_ *rand.Rand, n int) []int {
	a := make([]int, n)
	half := n / 2
	for i := range a {
		if i < half {
			a[i] = i
		} else {
			a[i] = n - i
		}
	}
	return a
}

func fewDistinct(r *rand.Rand, n int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = r.IntN(16)
	}
	return a
}

// randomTail is ascending except for a random last eighth.
func randomTail(r *rand.Rand, n int) []int {
	a := ascending(r, n)
	for i := n - n/8; i < n; i++ {
		a[i] = r.IntN(max(n, 1))
	}
	return a
}

// randomHalf is ascending in the first half and random in the second.
func randomHalf(r *rand.Rand, n int) []int {
	a := ascending(r, n)
	for i := n / 2; i < n; i++ {
		a[i] = r.IntN(max(n, 1))
	}
	return a
}

// ascendingSub is an ascending sequence perturbed by small random offsets.
func ascendingSub(r *rand.Rand, n int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = i*8 + r.IntN(64)
	}
	return a
}

func equal(_ *rand.Rand, n int) []int {
	return make([]int, n)
}

// Record is a key tagged with its position in the input, for checking
// stability: equal keys must keep increasing Seq after a stable sort.
type Record struct {
	Key int
	Seq int
}

// Tag wraps keys as records numbered in input order.
func Tag(keys []int) []Record {
	recs := make([]Record, len(keys))
	for i, k := range keys {
		recs[i] = Record{Key: k, Seq: i}
	}
	return recs
}

// CompareKeys orders records by key alone.
func CompareKeys(a, b Record) int {
	switch {
	case a.Key < b.Key:
		return -1
	case a.Key > b.Key:
		return 1
	}
	return 0
}
