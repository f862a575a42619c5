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

// fluxPartition sorts dst by repeated stable partitioning around a pivot,
// handing short or lopsided sides to the merge engine. The elements are
// read from dst, or from swap[:len(dst)] when fromSwap is set. swap must
// hold at least len(dst) elements.
//
// When hasBound is set every element compares at or below bound. A pivot
// at or above the bound can then only split off elements equal to it, and
// the range is reverse partitioned instead.
//
// Both partition passes keep relative order on each side, so the result is
// stable. Only the smaller side is recursed into.
func (cmp cmpFunc[T]) fluxPartition(dst, swap []T, fromSwap bool, bound T, hasBound bool) {
	for {
		n := len(dst)
		src, scratch := dst, swap
		if fromSwap {
			src, scratch = swap[:n], dst
		}

		pivot, generic := cmp.selectPivot(src, scratch)
		if generic {
			if fromSwap {
				copy(dst, src)
			}
			cmp.quadsortSwap(dst, swap)
			return
		}

		if hasBound && cmp(bound, pivot) <= 0 {
			a, finished := cmp.reversePartition(dst, swap, fromSwap, pivot)
			if finished {
				return
			}
			dst, fromSwap, bound = dst[:a], false, pivot
			continue
		}

		a, finished := cmp.defaultPartition(dst, swap, fromSwap, pivot)
		if finished {
			return
		}
		s := n - a
		left, right := dst[:a], dst[a:]

		// The right side sits in swap[:s] until it is placed.
		switch {
		case a <= s/fluxSkew || s <= fluxOut:
			copy(right, swap[:s])
			cmp.quadsortSwap(right, swap)
		case s <= a:
			cmp.fluxPartition(right, swap, true, bound, hasBound)
		default:
			copy(right, swap[:s])
			if a <= fluxOut {
				cmp.quadsortSwap(left, swap)
			} else {
				cmp.fluxPartition(left, swap, false, pivot, true)
			}
			dst, fromSwap = right, false
			continue
		}

		switch {
		case a <= fluxOut:
			cmp.quadsortSwap(left, swap)
			return
		case s <= a/fluxSkew:
			// Nearly everything went left, so the pivot is close to the
			// top of the range: split off the run equal to it.
			na, finished := cmp.reversePartition(left, swap, false, pivot)
			if finished {
				return
			}
			dst, fromSwap, bound, hasBound = left[:na], false, pivot, true
		default:
			dst, fromSwap, bound, hasBound = left, false, pivot, true
		}
	}
}

// defaultPartition moves the elements at or below pivot to the front of
// dst and the rest to the front of swap, both in their original order, and
// returns the size of the front part.
//
// When a long aligned prefix went left the range is taken to be mostly
// ordered: both sides are finished by the merge engine and finished is
// true.
func (cmp cmpFunc[T]) defaultPartition(dst, swap []T, fromSwap bool, pivot T) (a int, finished bool) {
	n := len(dst)
	src := dst
	if fromSwap {
		src = swap[:n]
	}

	// Every element is written to both sides; only the index of the side
	// it belongs to advances. Neither write can pass the read position.
	m, s, run := 0, 0, 0
	i := 0
	for ; i+8 <= n; i += 8 {
		for _, x := range src[i : i+8] {
			v := b2i(cmp(x, pivot) <= 0)
			dst[m] = x
			swap[s] = x
			m += v
			s += 1 - v
		}
		if m == i+8 {
			run = m
		}
	}
	for _, x := range src[i:] {
		v := b2i(cmp(x, pivot) <= 0)
		dst[m] = x
		swap[s] = x
		m += v
		s += 1 - v
	}

	if run > n/4 {
		copy(dst[m:], swap[:s])
		cmp.quadsortSwap(dst[m:], swap)
		cmp.quadsortSwap(dst[:m], swap)
		return m, true
	}
	return m, false
}

// reversePartition moves the elements below pivot to the front of dst and
// the rest behind them, in order, and returns the size of the front part.
// The back part is left in place. finished is true when the front part was
// also completed here.
func (cmp cmpFunc[T]) reversePartition(dst, swap []T, fromSwap bool, pivot T) (a int, finished bool) {
	n := len(dst)
	src := dst
	if fromSwap {
		src = swap[:n]
	}

	m, s := 0, 0
	for _, x := range src {
		v := b2i(cmp(pivot, x) > 0)
		dst[m] = x
		swap[s] = x
		m += v
		s += 1 - v
	}
	copy(dst[m:], swap[:s])

	switch {
	case s == 0:
		// Nothing at or above the pivot, which only an inconsistent
		// comparator produces.
		cmp.quadsortSwap(dst, swap)
		return m, true
	case s <= m/fluxReverseSkew || m <= fluxOut:
		cmp.quadsortSwap(dst[:m], swap)
		return m, true
	}
	return m, false
}
