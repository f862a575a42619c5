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

// cmpFunc is a three-way comparator. The engines only ever ask whether the
// result is positive, so equal elements are never moved past each other.
type cmpFunc[T any] func(a, b T) int

// compareOrdered is the default ordering for SortOrdered. NaNs sort before
// every other value and compare equal to each other, matching cmp.Compare.
func compareOrdered[T constraints.Ordered](a, b T) int {
	aNaN := a != a
	bNaN := b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// reverse reverses a in place. Callers only reverse strictly descending
// runs, which hold no equal neighbours, so stability is preserved.
func reverse[T any](a []T) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}
