// Package fluxsort provides adaptive, stable, comparison-based sorting.
//
// Two cooperating algorithms are exposed:
//
//   - Merge sort ("quad" sort): a bottom-up merge sort that builds sorted
//     blocks of 32 with small branch networks and parity merges, then doubles
//     run sizes with quadruple block merges. It needs half the input length
//     as scratch and is always stable.
//   - Flux sort: a hybrid that scans the input for patterns first. Sorted and
//     reverse-sorted inputs are finished in O(n); highly patterned inputs are
//     handed to the merge sort; everything else is partitioned around sampled
//     pivots, using the merge sort to finish small or skewed partitions.
//     Partitions keep the original order of both sides, so flux sort is
//     stable too.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-fluxsort/fluxsort"
//
//	fluxsort.Sort(people, func(a, b Person) int {
//	    return cmp.Compare(a.Age, b.Age)
//	})
//
//	fluxsort.SortOrdered(values) // default ordering for numbers and strings
//
// # Scratch Memory
//
// Sort and MergeSort obtain scratch memory through an Allocator. If the
// allocator refuses, flux sort falls back to merge sort, and merge sort falls
// back to a fixed stack buffer with rotation-based merging, so these entry
// points never fail. Callers that manage memory themselves use
// SortWithBuffer and MergeSortWithBuffer, which reject buffers below the
// minimum with ErrBufferTooSmall instead of silently degrading.
//
// # Comparators
//
// Comparators follow the slices.SortFunc convention and must implement a
// strict weak ordering. An inconsistent comparator produces an unspecified
// order, but never an out-of-range access or a non-terminating sort.
//
// # Configuration
//
// The package-level functions read two environment variables at startup:
//   - FLUXSORT_MERGE_ONLY: when true, Sort behaves like MergeSort.
//   - FLUXSORT_BUFFER_LIMIT: a byte budget for scratch memory held at once
//     across all package-level calls.
package fluxsort
