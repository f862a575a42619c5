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
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-fluxsort/internal/patterns"
)

var (
	intCmp    = cmpFunc[int](compareOrdered[int])
	recordCmp = cmpFunc[patterns.Record](patterns.CompareKeys)
)

// counter counts comparator calls.
type counter struct {
	calls int
}

func (c *counter) compare(a, b int) int {
	c.calls++
	return compareOrdered(a, b)
}

func randomInts(r *rand.Rand, n, limit int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = r.Intn(limit)
	}
	return data
}

func randomRecords(r *rand.Rand, n, limit int) []patterns.Record {
	return patterns.Tag(randomInts(r, n, limit))
}

// checkStable fails t unless got is the stable sort of input by key.
func checkStable(t *testing.T, name string, input, got []patterns.Record) {
	t.Helper()
	want := slices.Clone(input)
	slices.SortStableFunc(want, patterns.CompareKeys)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
	}
}

// sortedBlocks reports whether every block-sized run of a, and the
// remainder, is sorted.
func sortedBlocks(a []int, block int) bool {
	for p := 0; p < len(a); p += block {
		if !slices.IsSorted(a[p:min(p+block, len(a))]) {
			return false
		}
	}
	return true
}
