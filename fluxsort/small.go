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

// tailSwap sorts short slices. Sizes up to four use fixed branch networks,
// up to eight two small blocks joined by a merge, and anything longer an
// insertion tail on top of a sorted 8-prefix. It is meant for fewer than
// tailSwapMax elements but stays correct for any length.
func (cmp cmpFunc[T]) tailSwap(a []T) {
	n := len(a)
	switch {
	case n < 2:
		return
	case n == 2:
		if cmp(a[0], a[1]) > 0 {
			a[0], a[1] = a[1], a[0]
		}
	case n == 3:
		cmp.sortThree(a)
	case n == 4:
		cmp.sortFour(a)
	case n <= 8:
		cmp.sortFour(a[:4])
		cmp.tailSwap(a[4:])
		cmp.mergeSmall(a, 4)
	default:
		cmp.tailSwap(a[:8])
		cmp.insertTail(a, 8)
	}
}

func (cmp cmpFunc[T]) sortThree(a []T) {
	_ = a[2]
	if cmp(a[0], a[1]) > 0 {
		a[0], a[1] = a[1], a[0]
	}
	if cmp(a[1], a[2]) > 0 {
		a[1], a[2] = a[2], a[1]
		if cmp(a[0], a[1]) > 0 {
			a[0], a[1] = a[1], a[0]
		}
	}
}

// sortFour sorts two pairs and then joins them with at most three more
// comparisons.
func (cmp cmpFunc[T]) sortFour(a []T) {
	_ = a[3]
	if cmp(a[0], a[1]) > 0 {
		a[0], a[1] = a[1], a[0]
	}
	if cmp(a[2], a[3]) > 0 {
		a[2], a[3] = a[3], a[2]
	}
	if cmp(a[1], a[2]) <= 0 {
		return
	}
	switch {
	case cmp(a[0], a[2]) <= 0:
		if cmp(a[1], a[3]) <= 0 {
			a[1], a[2] = a[2], a[1]
		} else {
			a[1], a[2], a[3] = a[2], a[3], a[1]
		}
	case cmp(a[0], a[3]) > 0:
		a[0], a[1], a[2], a[3] = a[2], a[3], a[0], a[1]
	case cmp(a[1], a[3]) <= 0:
		a[0], a[1], a[2] = a[2], a[0], a[1]
	default:
		a[0], a[1], a[2], a[3] = a[2], a[0], a[3], a[1]
	}
}

// descendingFour reports whether a[0:4] is strictly descending.
func (cmp cmpFunc[T]) descendingFour(a []T) bool {
	_ = a[3]
	return cmp(a[0], a[1]) > 0 && cmp(a[2], a[3]) > 0 && cmp(a[1], a[2]) > 0
}

// mergeSmall merges the sorted runs a[:mid] and a[mid:], len(a) <= 8.
func (cmp cmpFunc[T]) mergeSmall(a []T, mid int) {
	if cmp(a[mid-1], a[mid]) <= 0 {
		return
	}
	var buf [8]T
	copy(buf[:mid], a[:mid])

	l, r, d := 0, mid, 0
	for l < mid && r < len(a) {
		if cmp(buf[l], a[r]) <= 0 {
			a[d] = buf[l]
			l++
		} else {
			a[d] = a[r]
			r++
		}
		d++
	}
	copy(a[d:], buf[l:mid])
}

// insertTail extends the sorted prefix a[:from] to all of a.
func (cmp cmpFunc[T]) insertTail(a []T, from int) {
	for i := from; i < len(a); i++ {
		if cmp(a[i-1], a[i]) <= 0 {
			continue
		}
		x := a[i]

		// Below the head: shift the whole prefix at once.
		if cmp(a[0], x) > 0 {
			copy(a[1:i+1], a[:i])
			a[0] = x
			continue
		}

		a[i] = a[i-1]
		j := i - 1
		for j > 0 && cmp(a[j-1], x) > 0 {
			a[j] = a[j-1]
			j--
		}
		a[j] = x
	}
}
