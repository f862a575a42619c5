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

import "unsafe"

// Sorter sorts slices of T with a fixed comparator and configuration. A
// Sorter holds no mutable state and may be used from several goroutines;
// each call obtains its own scratch.
type Sorter[T any] struct {
	cmp cmpFunc[T]
	cfg config
}

// New returns a Sorter ordering elements by cmp, which must return a
// negative number when a sorts before b, a positive number when a sorts
// after b and zero when they are equivalent. The defaults come from the
// environment (see EnvMergeOnly and EnvBufferLimit) and are overridden by
// opts.
func New[T any](cmp func(a, b T) int, opts ...Option) *Sorter[T] {
	s := &Sorter[T]{cmp: cmp, cfg: defaultConfig}
	for _, opt := range opts {
		opt(&s.cfg)
	}
	return s
}

// Sort sorts data stably and returns the strategy that was taken.
//
// Sort needs len(data) elements of scratch. When the allocator refuses
// them it falls back to MergeSort, which is reported as
// StrategyMergeOnly.
func (s *Sorter[T]) Sort(data []T) Strategy {
	n := len(data)
	switch {
	case n < 2:
		return StrategyNone
	case s.cfg.mergeOnly:
		s.MergeSort(data)
		return StrategyMergeOnly
	case n <= analyzeMin:
		var stack [quadStackLen]T
		s.cmp.quadsortSwap(data, stack[:])
		return StrategySmall
	}

	swap, release, err := s.scratch(n)
	if err != nil {
		s.cfg.debug("fluxsort: scratch refused, using merge engine", "n", n, "err", err)
		s.MergeSort(data)
		return StrategyMergeOnly
	}
	defer release()

	strategy := s.cmp.fluxsort(data, swap)
	s.cfg.debug("fluxsort: sorted", "n", n, "strategy", strategy)
	return strategy
}

// SortWithBuffer sorts data stably using buf as scratch instead of
// allocating. A buf of len(data) elements runs the full algorithm; one of
// at least BufferLen(len(data), true) elements runs the merge engine only.
// A shorter buf leaves data untouched and returns an error wrapping
// ErrBufferTooSmall.
func (s *Sorter[T]) SortWithBuffer(data, buf []T) (Strategy, error) {
	n := len(data)
	if need := mergeBufferLen(n); len(buf) < need {
		return StrategyNone, bufferTooSmall(need, len(buf))
	}
	if n < 2 {
		return StrategyNone, nil
	}
	if s.cfg.mergeOnly || len(buf) < n {
		s.cmp.quadsortSwap(data, buf)
		return StrategyMergeOnly, nil
	}
	return s.cmp.fluxsort(data, buf), nil
}

// MergeSort sorts data stably with the merge engine alone. It needs
// len(data)/2 elements of scratch; when the allocator refuses them the
// merge runs with a small fixed buffer, trading moves for memory.
func (s *Sorter[T]) MergeSort(data []T) {
	n := len(data)
	switch {
	case n < 2:
		return
	case n < 2*quadStackLen:
		var stack [quadStackLen]T
		s.cmp.quadsortSwap(data, stack[:])
		return
	}

	// A reversed input needs no scratch at all.
	if s.cmp.quadSwap(data) {
		return
	}

	swap, release, err := s.scratch(n / 2)
	if err != nil {
		s.cfg.debug("fluxsort: merge scratch refused, using bounded buffer", "n", n, "err", err)
		var stack [boundedStackLen]T
		s.cmp.rotateMerge(data, stack[:], quadBlock)
		return
	}
	defer release()

	s.cmp.quadMerge(data, swap, quadBlock)
}

// MergeSortWithBuffer is MergeSort using buf as scratch. buf must hold at
// least BufferLen(len(data), true) elements, otherwise data is left
// untouched and an error wrapping ErrBufferTooSmall is returned.
func (s *Sorter[T]) MergeSortWithBuffer(data, buf []T) error {
	if need := mergeBufferLen(len(data)); len(buf) < need {
		return bufferTooSmall(need, len(buf))
	}
	s.cmp.quadsortSwap(data, buf)
	return nil
}

// scratch obtains an n element buffer through the allocator.
func (s *Sorter[T]) scratch(n int) ([]T, func(), error) {
	var zero T
	bytes := n * int(unsafe.Sizeof(zero))
	if err := s.cfg.alloc.Reserve(bytes); err != nil {
		return nil, nil, err
	}
	return make([]T, n), func() { s.cfg.alloc.Release(bytes) }, nil
}
