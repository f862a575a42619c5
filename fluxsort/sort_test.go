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

package fluxsort

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"slices"
	"strings"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-fluxsort/internal/patterns"
)

var boundarySizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 24, 31, 32, 33, 63, 64, 65,
	96, 97, 127, 128, 132, 133, 200, 255, 256, 257, 511, 512, 1000, 1024, 2049, 4096}

// entryPoints sorts records through every public path.
var entryPoints = []struct {
	name string
	sort func([]patterns.Record) error
}{
	{"Sort", func(d []patterns.Record) error {
		Sort(d, patterns.CompareKeys)
		return nil
	}},
	{"MergeSort", func(d []patterns.Record) error {
		MergeSort(d, patterns.CompareKeys)
		return nil
	}},
	{"SortWithBuffer", func(d []patterns.Record) error {
		return SortWithBuffer(d, make([]patterns.Record, BufferLen(len(d), false)), patterns.CompareKeys)
	}},
	{"SortWithHalfBuffer", func(d []patterns.Record) error {
		return SortWithBuffer(d, make([]patterns.Record, BufferLen(len(d), true)), patterns.CompareKeys)
	}},
	{"MergeSortWithBuffer", func(d []patterns.Record) error {
		return MergeSortWithBuffer(d, make([]patterns.Record, BufferLen(len(d), true)), patterns.CompareKeys)
	}},
	{"NoScratch", func(d []patterns.Record) error {
		New(patterns.CompareKeys, WithAllocator(NewBudget(0))).Sort(d)
		return nil
	}},
}

func TestSortBoundarySizes(t *testing.T) {
	r := rand.New(rand.NewSource(20))
	for _, ep := range entryPoints {
		t.Run(ep.name, func(t *testing.T) {
			for _, n := range boundarySizes {
				for _, limit := range []int{2, n + 1} {
					input := randomRecords(r, n, limit)
					got := slices.Clone(input)
					if err := ep.sort(got); err != nil {
						t.Fatalf("n=%d: %v", n, err)
					}
					checkStable(t, fmt.Sprintf("n=%d limit=%d", n, limit), input, got)
				}
			}
		})
	}
}

func TestSortPatterns(t *testing.T) {
	for _, ep := range entryPoints {
		t.Run(ep.name, func(t *testing.T) {
			for _, name := range patterns.Names() {
				for _, n := range []int{133, 1000, 5000} {
					keys, err := patterns.Generate(name, n, 21)
					if err != nil {
						t.Fatal(err)
					}
					input := patterns.Tag(keys)
					got := slices.Clone(input)
					if err := ep.sort(got); err != nil {
						t.Fatalf("%s n=%d: %v", name, n, err)
					}
					checkStable(t, fmt.Sprintf("%s n=%d", name, n), input, got)
				}
			}
		})
	}
}

func TestSortLarge(t *testing.T) {
	if testing.Short() {
		t.Skip("large inputs in -short mode")
	}
	for _, name := range []string{"random", "few_distinct", "random_tail"} {
		keys, err := patterns.Generate(name, 1<<20+3, 22)
		if err != nil {
			t.Fatal(err)
		}
		input := patterns.Tag(keys)
		got := slices.Clone(input)
		Sort(got, patterns.CompareKeys)
		checkStable(t, name, input, got)
	}
}

func TestSortExamples(t *testing.T) {
	tests := []struct {
		name string
		data []int
		want []int
	}{
		{"empty", []int{}, []int{}},
		{"single", []int{5}, []int{5}},
		{"three", []int{3, 1, 2}, []int{1, 2, 3}},
		{"reverse five", []int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}},
		{"duplicates", []int{2, 1, 2, 1, 0}, []int{0, 1, 1, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flux := slices.Clone(tt.data)
			SortOrdered(flux)
			if diff := cmp.Diff(tt.want, flux); diff != "" {
				t.Errorf("SortOrdered mismatch (-want +got):\n%s", diff)
			}
			merge := slices.Clone(tt.data)
			MergeSortOrdered(merge)
			if diff := cmp.Diff(tt.want, merge); diff != "" {
				t.Errorf("MergeSortOrdered mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortMatchesStdlib(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	data := randomInts(r, 1000, 1<<30)
	want := slices.Clone(data)
	slices.Sort(want)

	var c counter
	Sort(data, c.compare)
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("Sort mismatch (-want +got):\n%s", diff)
	}
	n := float64(len(data))
	if limit := int(2 * n * math.Log2(n)); c.calls > limit {
		t.Errorf("Sort(random 1000) made %d comparisons, want at most %d", c.calls, limit)
	}
}

func TestSortComparisons(t *testing.T) {
	ascending := func(n int) []int {
		a := make([]int, n)
		for i := range a {
			a[i] = i
		}
		return a
	}
	descending := func(n int) []int {
		a := make([]int, n)
		for i := range a {
			a[i] = n - i
		}
		return a
	}

	tests := []struct {
		name  string
		sort  func([]int, func(a, b int) int)
		data  []int
		limit int
	}{
		{"Sort sorted", Sort[int], ascending(1000), 999},
		{"Sort reversed", Sort[int], descending(1000), 1000},
		{"Sort reversed 64", Sort[int], descending(64), 64},
		{"Sort reversed 100", Sort[int], descending(100), 100},
		{"MergeSort reversed", MergeSort[int], descending(1000), 1000},
		{"MergeSort sorted", MergeSort[int], ascending(1000), 2000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c counter
			tt.sort(tt.data, c.compare)
			if !slices.IsSorted(tt.data) {
				t.Fatalf("result not sorted")
			}
			if c.calls > tt.limit {
				t.Errorf("made %d comparisons, want at most %d", c.calls, tt.limit)
			}
		})
	}
}

// Sorting a sorted result again takes the linear path.
func TestSortIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(24))
	data := randomInts(r, 1000, 100)
	Sort(data, compareOrdered[int])
	want := slices.Clone(data)

	var c counter
	Sort(data, c.compare)
	if !slices.Equal(data, want) {
		t.Errorf("second Sort changed a sorted slice")
	}
	if c.calls != len(data)-1 {
		t.Errorf("second Sort made %d comparisons, want %d", c.calls, len(data)-1)
	}
}

func TestSortWithBufferTooSmall(t *testing.T) {
	r := rand.New(rand.NewSource(25))
	data := randomInts(r, 100, 1000)
	orig := slices.Clone(data)

	err := SortWithBuffer(data, make([]int, 49), compareOrdered[int])
	if !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("SortWithBuffer(short buffer) error = %v, want ErrBufferTooSmall", err)
	}
	if diff := cmp.Diff(orig, data); diff != "" {
		t.Errorf("SortWithBuffer(short buffer) modified data (-want +got):\n%s", diff)
	}

	err = MergeSortWithBuffer(data, nil, compareOrdered[int])
	if !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("MergeSortWithBuffer(nil) error = %v, want ErrBufferTooSmall", err)
	}
	if diff := cmp.Diff(orig, data); diff != "" {
		t.Errorf("MergeSortWithBuffer(nil) modified data (-want +got):\n%s", diff)
	}

	short := randomInts(r, 31, 1000)
	if err := SortWithBuffer(short, nil, compareOrdered[int]); err != nil {
		t.Errorf("SortWithBuffer(n=31, nil) = %v, want nil", err)
	}
	if !slices.IsSorted(short) {
		t.Errorf("SortWithBuffer(n=31, nil) produced unsorted result")
	}
}

func TestSorterSortWithBufferStrategy(t *testing.T) {
	r := rand.New(rand.NewSource(26))
	s := New(compareOrdered[int])
	n := 1000

	data := randomInts(r, n, 1<<30)
	got, err := s.SortWithBuffer(data, make([]int, n))
	if err != nil || got != StrategyPartition {
		t.Errorf("SortWithBuffer(full) = (%v, %v), want (partition, nil)", got, err)
	}

	data = randomInts(r, n, 1<<30)
	got, err = s.SortWithBuffer(data, make([]int, n/2))
	if err != nil || got != StrategyMergeOnly {
		t.Errorf("SortWithBuffer(half) = (%v, %v), want (merge-only, nil)", got, err)
	}
	if !slices.IsSorted(data) {
		t.Errorf("SortWithBuffer(half) produced unsorted result")
	}
}

func TestSorterMergeOnly(t *testing.T) {
	r := rand.New(rand.NewSource(27))
	s := New(compareOrdered[int], WithMergeOnly(true))
	data := randomInts(r, 1000, 1<<30)
	if got := s.Sort(data); got != StrategyMergeOnly {
		t.Errorf("Sort with WithMergeOnly took %v, want merge-only", got)
	}
	if !slices.IsSorted(data) {
		t.Errorf("Sort with WithMergeOnly produced unsorted result")
	}
}

func TestSorterAllocatorFallback(t *testing.T) {
	r := rand.New(rand.NewSource(28))
	n := 1000
	size := int(unsafe.Sizeof(patterns.Record{}))

	tests := []struct {
		name  string
		limit int
		want  Strategy
	}{
		{"no scratch", 0, StrategyMergeOnly},
		{"half scratch", n / 2 * size, StrategyMergeOnly},
		{"full scratch", n * size, StrategyPartition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budget := NewBudget(tt.limit)
			s := New(patterns.CompareKeys, WithAllocator(budget))

			input := randomRecords(r, n, 1<<30)
			got := slices.Clone(input)
			if strategy := s.Sort(got); strategy != tt.want {
				t.Errorf("Sort took %v, want %v", strategy, tt.want)
			}
			checkStable(t, tt.name, input, got)
			if budget.InUse() != 0 {
				t.Errorf("budget holds %d bytes after Sort, want 0", budget.InUse())
			}
		})
	}
}

func TestSorterLogger(t *testing.T) {
	r := rand.New(rand.NewSource(29))
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	New(compareOrdered[int], WithLogger(logger)).Sort(randomInts(r, 1000, 1<<30))
	if out := buf.String(); !strings.Contains(out, "strategy=partition") {
		t.Errorf("log output %q does not name the strategy", out)
	}

	buf.Reset()
	New(compareOrdered[int], WithLogger(logger), WithAllocator(NewBudget(0))).Sort(randomInts(r, 1000, 1<<30))
	if out := buf.String(); !strings.Contains(out, "scratch refused") || !strings.Contains(out, "out of memory") {
		t.Errorf("log output %q does not report the fallback", out)
	}
}

func TestSortOrderedNaN(t *testing.T) {
	nan := math.NaN()
	data := []float64{3, nan, 1, math.Inf(-1), nan, 2}
	SortOrdered(data)
	if !math.IsNaN(data[0]) || !math.IsNaN(data[1]) {
		t.Fatalf("SortOrdered put NaNs at %v, want first", data)
	}
	if diff := cmp.Diff([]float64{math.Inf(-1), 1, 2, 3}, data[2:]); diff != "" {
		t.Errorf("SortOrdered mismatch (-want +got):\n%s", diff)
	}
	if !IsSorted(data) {
		t.Errorf("IsSorted(%v) = false after SortOrdered", data)
	}

	r := rand.New(rand.NewSource(30))
	big := make([]float64, 1000)
	for i := range big {
		big[i] = r.Float64()
		if i%10 == 0 {
			big[i] = nan
		}
	}
	MergeSortOrdered(big)
	if !IsSorted(big) {
		t.Errorf("MergeSortOrdered(with NaNs) produced unsorted result")
	}
	for i := range 100 {
		if !math.IsNaN(big[i]) {
			t.Fatalf("MergeSortOrdered: big[%d] = %v, want NaN", i, big[i])
		}
	}
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		name string
		data []float32
		want bool
	}{
		{"empty", []float32{}, true},
		{"single", []float32{1}, true},
		{"sorted", []float32{1, 2, 3, 4, 5}, true},
		{"unsorted", []float32{1, 3, 2, 4, 5}, false},
		{"reverse", []float32{5, 4, 3, 2, 1}, false},
		{"equal", []float32{3, 3, 3, 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSorted(tt.data); got != tt.want {
				t.Errorf("IsSorted(%v) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestBufferLen(t *testing.T) {
	tests := []struct {
		n         int
		mergeOnly bool
		want      int
	}{
		{0, false, 0},
		{100, false, 100},
		{100, true, 50},
		{20, true, 0},
	}
	for _, tt := range tests {
		if got := BufferLen(tt.n, tt.mergeOnly); got != tt.want {
			t.Errorf("BufferLen(%d, %v) = %d, want %d", tt.n, tt.mergeOnly, got, tt.want)
		}
	}
}

// A comparator that is not a strict weak ordering may leave any order
// behind, but the sort must still return.
func TestSortInconsistentComparator(t *testing.T) {
	r := rand.New(rand.NewSource(31))
	random := func(a, b int) int { return r.Intn(3) - 1 }
	for _, n := range []int{10, 100, 1000, 5000, 70000} {
		data := randomInts(r, n, 100)
		Sort(data, random)
		MergeSort(data, random)
		New(random, WithAllocator(NewBudget(0))).Sort(data)
		if len(data) != n {
			t.Fatalf("length changed to %d, want %d", len(data), n)
		}
	}
}
