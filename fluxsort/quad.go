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

// quadSwap turns a into sorted blocks of quadBlock elements, followed by a
// sorted remainder shorter than quadBlock. Strictly descending stretches of
// 4-blocks are collected as they are met and reversed in one go, so a fully
// reversed input is fixed in a single pass; quadSwap then reports true and
// a is completely sorted.
//
// The scan is a two-state machine: scanning sorts 8-aligned pairs of
// 4-blocks, reversing extends a descending run one 4-block at a time.
func (cmp cmpFunc[T]) quadSwap(a []T) bool {
	n := len(a)
	end := n &^ 7

	i := 0
	for i < end {
		if !cmp.descendingFour(a[i : i+4]) {
			cmp.sortFour(a[i : i+4])
			cmp.sortFour(a[i+4 : i+8])
			cmp.mergeSmall(a[i:i+8], 4)
			i += 8
			continue
		}

		start := i
		j := i + 4
		for j < end && cmp(a[j-1], a[j]) > 0 && cmp.descendingFour(a[j:j+4]) {
			j += 4
		}

		if start == 0 && j == end {
			k := j
			for k < n && cmp(a[k-1], a[k]) > 0 {
				k++
			}
			if k == n {
				reverse(a)
				return true
			}
		}
		reverse(a[start:j])

		// A run ending mid-pair leaves its last four elements, now sorted
		// ascending, to be joined with the next 4-block.
		if j&7 != 0 {
			cmp.sortFour(a[j : j+4])
			cmp.mergeSmall(a[j-4:j+4], 4)
			j += 4
		}
		i = j
	}
	cmp.tailSwap(a[end:])

	var swap [quadBlock]T
	p := 0
	for ; p+quadBlock <= n; p += quadBlock {
		cmp.parityMergeThirtyTwo(a[p:p+quadBlock], swap[:])
	}
	if n-p > 8 {
		cmp.tailMerge(a[p:], swap[:], 8)
	}
	return false
}

// parityMerge merges the two sorted halves of src (k elements each) into
// dst. It takes k elements from the front and k from the back, so no step
// needs a bound check: the front cursors can consume at most k elements
// together, and so can the back cursors.
func (cmp cmpFunc[T]) parityMerge(dst, src []T, k int) {
	_ = src[2*k-1]
	_ = dst[2*k-1]

	l, r := 0, k
	for d := 0; d < k; d++ {
		if cmp(src[l], src[r]) <= 0 {
			dst[d] = src[l]
			l++
		} else {
			dst[d] = src[r]
			r++
		}
	}

	l, r = k-1, 2*k-1
	for d := 2*k - 1; d >= k; d-- {
		if cmp(src[l], src[r]) > 0 {
			dst[d] = src[l]
			l--
		} else {
			dst[d] = src[r]
			r--
		}
	}
}

// parityMergeThirtyTwo joins four sorted 8-blocks of a, staging the two
// 16-element halves in swap.
func (cmp cmpFunc[T]) parityMergeThirtyTwo(a, swap []T) {
	_ = a[31]
	if cmp(a[7], a[8]) <= 0 && cmp(a[15], a[16]) <= 0 && cmp(a[23], a[24]) <= 0 {
		return
	}
	cmp.parityMerge(swap[:16], a[:16], 8)
	cmp.parityMerge(swap[16:32], a[16:32], 8)
	cmp.parityMerge(a[:32], swap[:32], 16)
}
