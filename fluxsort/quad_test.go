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
)

func TestQuadSwapBlocks(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for _, n := range []int{8, 31, 32, 33, 64, 100, 257, 1000} {
		data := randomInts(r, n, 1000)
		if intCmp.quadSwap(data) {
			t.Fatalf("quadSwap(random, n=%d) reported a reversed input", n)
		}
		if !sortedBlocks(data, quadBlock) {
			t.Errorf("quadSwap(n=%d) left an unsorted block: %v", n, data)
		}
	}
}

func TestQuadSwapReversed(t *testing.T) {
	for _, n := range []int{8, 9, 64, 100, 133} {
		data := make([]int, n)
		for i := range data {
			data[i] = n - i
		}
		if !intCmp.quadSwap(data) {
			t.Errorf("quadSwap(reversed, n=%d) = false, want true", n)
		}
		if !slices.IsSorted(data) {
			t.Errorf("quadSwap(reversed, n=%d) produced unsorted result: %v", n, data)
		}
	}
}

// A descending run that stops inside the input is reversed but the scan
// carries on.
func TestQuadSwapPartialRun(t *testing.T) {
	n := 96
	data := make([]int, n)
	for i := range 44 {
		data[i] = 1000 - i
	}
	for i := 44; i < n; i++ {
		data[i] = i
	}
	if intCmp.quadSwap(data) {
		t.Fatalf("quadSwap(partial run) = true, want false")
	}
	if !sortedBlocks(data, quadBlock) {
		t.Errorf("quadSwap(partial run) left an unsorted block: %v", data)
	}
}

func TestQuadSwapStable(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	input := randomRecords(r, 256, 4)
	got := slices.Clone(input)
	recordCmp.quadSwap(got)
	for p := 0; p < len(got); p += quadBlock {
		checkStable(t, "quadSwap block", input[p:p+quadBlock], got[p:p+quadBlock])
	}
}

func TestParityMerge(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for _, k := range []int{1, 2, 8, 16} {
		src := randomInts(r, 2*k, 10)
		slices.Sort(src[:k])
		slices.Sort(src[k:])
		dst := make([]int, 2*k)
		intCmp.parityMerge(dst, src, k)
		if !slices.IsSorted(dst) {
			t.Errorf("parityMerge(k=%d) = %v, want sorted", k, dst)
		}
		want := slices.Clone(src)
		slices.Sort(want)
		if !slices.Equal(dst, want) {
			t.Errorf("parityMerge(k=%d) = %v, want %v", k, dst, want)
		}
	}
}
