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

// mergeBufferLen is the scratch length the merge engine needs for n
// elements. Inputs below 2*quadStackLen are served from the stack.
func mergeBufferLen(n int) int {
	if n < tailSwapMax {
		return 0
	}
	return n / 2
}

// quadsortSwap sorts a with the merge engine. A swap shorter than
// mergeBufferLen(len(a)) is tolerated: merges that do not fit fall back to
// rotations.
func (cmp cmpFunc[T]) quadsortSwap(a, swap []T) {
	n := len(a)
	if n < tailSwapMax {
		cmp.tailSwap(a)
		return
	}
	if cmp.quadSwap(a) {
		return
	}
	if len(swap) >= n/2 {
		cmp.quadMerge(a, swap, quadBlock)
		return
	}
	cmp.rotateMerge(a, swap, quadBlock)
}

// crossMerge merges the sorted runs src[:mid] and src[mid:] into dst.
// Equal elements are taken from the left run first.
func (cmp cmpFunc[T]) crossMerge(dst, src []T, mid int) {
	l, r, e := 0, mid, len(src)
	d := 0

	// When the left run ends below the right one, the left run is the one
	// to run out, and the loop only has to watch it.
	if cmp(src[mid-1], src[e-1]) <= 0 {
		for l < mid && r < e {
			if cmp(src[l], src[r]) <= 0 {
				dst[d] = src[l]
				l++
			} else {
				dst[d] = src[r]
				r++
			}
			d++
		}
	} else {
		for r < e && l < mid {
			if cmp(src[l], src[r]) > 0 {
				dst[d] = src[r]
				r++
			} else {
				dst[d] = src[l]
				l++
			}
			d++
		}
	}
	d += copy(dst[d:], src[l:mid])
	copy(dst[d:], src[r:e])
}

// main memory: [A][B][C][D]
// swap memory: [A  B]       step 1
// swap memory: [A  B][C  D] step 2
// main memory: [A  B  C  D] step 3

// quadMergeBlock merges four adjacent sorted runs of block elements. The
// three inner boundaries are tested first so ordered neighbours are copied
// instead of merged.
func (cmp cmpFunc[T]) quadMergeBlock(a, swap []T, block int) {
	b2 := block * 2
	b4 := block * 4
	_ = a[b4-1]

	if cmp(a[block-1], a[block]) <= 0 {
		if cmp(a[b2+block-1], a[b2+block]) <= 0 {
			if cmp(a[b2-1], a[b2]) <= 0 {
				return
			}
			copy(swap[:b4], a[:b4])
			cmp.crossMerge(a[:b4], swap[:b4], b2)
			return
		}
		copy(swap[:b2], a[:b2])
	} else {
		cmp.crossMerge(swap[:b2], a[:b2], block)
	}
	cmp.crossMerge(swap[b2:b4], a[b2:b4], block)
	cmp.crossMerge(a[:b4], swap[:b4], b2)
}

// quadMerge merges the sorted runs of block elements in a, quadrupling the
// run length per pass. len(swap) must be at least len(a)/2.
func (cmp cmpFunc[T]) quadMerge(a, swap []T, block int) {
	n := len(a)
	block *= 4

	for block*2 <= n {
		p := 0
		for {
			cmp.quadMergeBlock(a[p:p+block], swap, block/4)
			p += block
			if p+block > n {
				break
			}
		}
		cmp.tailMerge(a[p:], swap, block/4)
		block *= 4
	}
	cmp.tailMerge(a, swap, block/4)
}

// partialBackwardMerge merges a[:mid] with a[mid:], where the right run is
// the shorter one. Right-run elements that already sit above the left run's
// maximum are left in place; only the rest is copied to swap.
func (cmp cmpFunc[T]) partialBackwardMerge(a, swap []T, mid int) {
	m, r, e := mid-1, mid, len(a)-1
	if cmp(a[m], a[r]) <= 0 {
		return
	}
	for e > r && cmp(a[m], a[e]) <= 0 {
		e--
	}

	s := copy(swap, a[r:e+1]) - 1
	a[e] = a[m]
	e--
	m--

	for m >= 0 && s >= 0 {
		if cmp(a[m], swap[s]) > 0 {
			a[e] = a[m]
			m--
		} else {
			a[e] = swap[s]
			s--
		}
		e--
	}
	copy(a[:s+1], swap[:s+1])
}

// partialForwardMerge is the mirror image of partialBackwardMerge for a
// shorter left run: left-run elements already below the right run's
// minimum stay in place.
func (cmp cmpFunc[T]) partialForwardMerge(a, swap []T, mid int) {
	l, m, r := 0, mid, mid
	n := len(a)
	if cmp(a[m-1], a[m]) <= 0 {
		return
	}
	for l < m-1 && cmp(a[l], a[r]) <= 0 {
		l++
	}

	s := 0
	sEnd := copy(swap, a[l:m])
	d := l
	a[d] = a[r]
	d++
	r++

	for s < sEnd && r < n {
		if cmp(swap[s], a[r]) <= 0 {
			a[d] = swap[s]
			s++
		} else {
			a[d] = a[r]
			r++
		}
		d++
	}
	copy(a[d:], swap[s:sEnd])
}

// tailMerge merges runs of block elements pairwise, doubling block until
// one run remains. The last run of a pass may be short.
func (cmp cmpFunc[T]) tailMerge(a, swap []T, block int) {
	n := len(a)
	for block < n {
		for p := 0; p+block < n; p += block * 2 {
			if p+block*2 < n {
				cmp.partialBackwardMerge(a[p:p+block*2], swap, block)
				continue
			}
			cmp.partialBackwardMerge(a[p:], swap, block)
			break
		}
		block *= 2
	}
}

// rotateMerge is tailMerge for a swap of any size, including none.
func (cmp cmpFunc[T]) rotateMerge(a, swap []T, block int) {
	n := len(a)
	for block < n {
		for p := 0; p+block < n; p += block * 2 {
			cmp.rotateMergeBlock(a[p:min(p+block*2, n)], swap, block)
		}
		block *= 2
	}
}

// rotateMergeBlock merges a[:mid] with a[mid:] using at most len(swap)
// scratch elements. When neither run fits, the longer run is cut in half,
// its partner is split at the cut's value by binary search, and the middle
// pieces swap places with a rotation, leaving two independent merges.
func (cmp cmpFunc[T]) rotateMergeBlock(a, swap []T, mid int) {
	for {
		n := len(a)
		if mid == 0 || mid == n || cmp(a[mid-1], a[mid]) <= 0 {
			return
		}
		if n == 2 {
			a[0], a[1] = a[1], a[0]
			return
		}
		left, right := mid, n-mid
		if right <= len(swap) {
			cmp.partialBackwardMerge(a, swap, mid)
			return
		}
		if left <= len(swap) {
			cmp.partialForwardMerge(a, swap, mid)
			return
		}

		var lcut, rcut int
		if left >= right {
			lcut = left / 2
			rcut = mid + cmp.lowerBound(a[mid:], a[lcut])
		} else {
			rcut = mid + right/2
			lcut = cmp.upperBound(a[:mid], a[rcut])
		}
		// [ a[:lcut] ][ a[lcut:mid] ][ a[mid:rcut] ][ a[rcut:] ]
		rotate(a[lcut:rcut], mid-lcut, swap)
		split := lcut + rcut - mid

		// Recurse into the shorter half, loop on the longer one.
		if split < n-split {
			cmp.rotateMergeBlock(a[:split], swap, lcut)
			a, mid = a[split:], rcut-split
		} else {
			cmp.rotateMergeBlock(a[split:], swap, rcut-split)
			a, mid = a[:split], lcut
		}
	}
}

// lowerBound returns the number of leading elements of a that compare
// below x.
func (cmp cmpFunc[T]) lowerBound(a []T, x T) int {
	lo, hi := 0, len(a)
	for lo < hi {
		h := int(uint(lo+hi) >> 1)
		if cmp(x, a[h]) > 0 {
			lo = h + 1
		} else {
			hi = h
		}
	}
	return lo
}

// upperBound returns the number of leading elements of a that do not
// compare above x.
func (cmp cmpFunc[T]) upperBound(a []T, x T) int {
	lo, hi := 0, len(a)
	for lo < hi {
		h := int(uint(lo+hi) >> 1)
		if cmp(a[h], x) > 0 {
			hi = h
		} else {
			lo = h + 1
		}
	}
	return lo
}

// rotate moves a[:m] behind a[m:]. The shorter side goes through swap when
// it fits; otherwise three reversals do the job in place.
func rotate[T any](a []T, m int, swap []T) {
	n := len(a)
	if m == 0 || m == n {
		return
	}
	switch {
	case m <= len(swap) && m <= n-m:
		copy(swap, a[:m])
		copy(a, a[m:])
		copy(a[n-m:], swap[:m])
	case n-m <= len(swap):
		copy(swap, a[m:])
		copy(a[n-m:], a[:m])
		copy(a, swap[:n-m])
	default:
		reverse(a[:m])
		reverse(a[m:])
		reverse(a)
	}
}
