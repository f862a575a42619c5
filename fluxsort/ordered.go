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

import "golang.org/x/exp/constraints"

// lessOrdered is compareOrdered(a, b) < 0 written with direct comparisons.
func lessOrdered[T constraints.Ordered](a, b T) bool {
	return a < b || (a != a && b == b)
}

// sortOrderedFast finishes data without calling through a comparator when it
// is already ascending, strictly descending or shorter than tailSwapMax, and
// reports whether it did.
func sortOrderedFast[T constraints.Ordered](data []T) bool {
	n := len(data)
	if n < 2 {
		return true
	}
	if n < tailSwapMax {
		insertionSortOrdered(data)
		return true
	}

	i := 1
	if lessOrdered(data[1], data[0]) {
		for i < n && lessOrdered(data[i], data[i-1]) {
			i++
		}
		if i == n {
			reverse(data)
			return true
		}
		return false
	}
	for i < n && !lessOrdered(data[i], data[i-1]) {
		i++
	}
	return i == n
}

func insertionSortOrdered[T constraints.Ordered](data []T) {
	for i := 1; i < len(data); i++ {
		x := data[i]
		j := i
		for j > 0 && lessOrdered(x, data[j-1]) {
			data[j] = data[j-1]
			j--
		}
		data[j] = x
	}
}
