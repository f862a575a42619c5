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

// Sort sorts data stably in the order defined by cmp, using the partition
// engine where the input looks random and the merge engine where it looks
// ordered. See Sorter.Sort.
func Sort[T any](data []T, cmp func(a, b T) int) {
	s := Sorter[T]{cmp: cmp, cfg: defaultConfig}
	s.Sort(data)
}

// SortWithBuffer is Sort using buf as scratch. See Sorter.SortWithBuffer.
func SortWithBuffer[T any](data, buf []T, cmp func(a, b T) int) error {
	s := Sorter[T]{cmp: cmp, cfg: defaultConfig}
	_, err := s.SortWithBuffer(data, buf)
	return err
}

// MergeSort sorts data stably with the merge engine alone. It uses half
// the scratch of Sort and is the better choice for mostly ordered input.
func MergeSort[T any](data []T, cmp func(a, b T) int) {
	s := Sorter[T]{cmp: cmp, cfg: defaultConfig}
	s.MergeSort(data)
}

// MergeSortWithBuffer is MergeSort using buf as scratch.
func MergeSortWithBuffer[T any](data, buf []T, cmp func(a, b T) int) error {
	s := Sorter[T]{cmp: cmp, cfg: defaultConfig}
	return s.MergeSortWithBuffer(data, buf)
}

// SortOrdered sorts data in ascending order. NaNs sort before all other
// floating-point values.
func SortOrdered[T constraints.Ordered](data []T) {
	if sortOrderedFast(data) {
		return
	}
	Sort(data, compareOrdered[T])
}

// MergeSortOrdered is SortOrdered using the merge engine alone.
func MergeSortOrdered[T constraints.Ordered](data []T) {
	if sortOrderedFast(data) {
		return
	}
	MergeSort(data, compareOrdered[T])
}

// IsSortedFunc reports whether data is in the order defined by cmp.
func IsSortedFunc[T any](data []T, cmp func(a, b T) int) bool {
	for i := len(data) - 1; i > 0; i-- {
		if cmp(data[i], data[i-1]) < 0 {
			return false
		}
	}
	return true
}

// IsSorted reports whether data is in ascending order, NaNs first.
func IsSorted[T constraints.Ordered](data []T) bool {
	for i := len(data) - 1; i > 0; i-- {
		if lessOrdered(data[i], data[i-1]) {
			return false
		}
	}
	return true
}

// BufferLen returns the scratch length, in elements, that SortWithBuffer
// needs to run the full algorithm on n elements, or with mergeOnly set the
// least that SortWithBuffer and MergeSortWithBuffer accept.
func BufferLen(n int, mergeOnly bool) int {
	if mergeOnly {
		return mergeBufferLen(n)
	}
	return n
}
