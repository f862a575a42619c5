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
	"fmt"
	"sync/atomic"
)

// Allocator accounts for the scratch memory a sort obtains. Reserve is
// called before a buffer of the given size in bytes is made, and Release
// once the sort no longer needs it. A refused Reserve makes the sort fall
// back to an algorithm needing less scratch.
type Allocator interface {
	Reserve(bytes int) error
	Release(bytes int)
}

type unlimited struct{}

func (unlimited) Reserve(int) error { return nil }
func (unlimited) Release(int)       {}

// Unlimited returns an Allocator that grants every request.
func Unlimited() Allocator {
	return unlimited{}
}

// Budget is an Allocator that refuses requests which would bring the bytes
// in use above a fixed limit. It is safe for concurrent use, so a single
// Budget can bound the scratch of many concurrent sorts.
type Budget struct {
	limit int64
	inUse atomic.Int64
}

// NewBudget returns a Budget allowing at most limit bytes in use.
func NewBudget(limit int) *Budget {
	return &Budget{limit: int64(limit)}
}

// Reserve implements Allocator. It returns an error wrapping
// ErrOutOfMemory when the request does not fit.
func (b *Budget) Reserve(bytes int) error {
	for {
		cur := b.inUse.Load()
		next := cur + int64(bytes)
		if next > b.limit {
			return fmt.Errorf("%w: %d bytes requested, %d of %d in use", ErrOutOfMemory, bytes, cur, b.limit)
		}
		if b.inUse.CompareAndSwap(cur, next) {
			return nil
		}
	}
}

// Release implements Allocator.
func (b *Budget) Release(bytes int) {
	b.inUse.Add(-int64(bytes))
}

// InUse returns the bytes currently reserved.
func (b *Budget) InUse() int {
	return int(b.inUse.Load())
}

// Limit returns the configured limit in bytes.
func (b *Budget) Limit() int {
	return int(b.limit)
}
