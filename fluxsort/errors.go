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
	"errors"
	"fmt"
)

var (
	// ErrBufferTooSmall is returned when a caller-supplied scratch buffer is
	// shorter than the requested operation needs.
	ErrBufferTooSmall = errors.New("fluxsort: buffer too small")

	// ErrOutOfMemory is returned by an Allocator that refuses a request.
	ErrOutOfMemory = errors.New("fluxsort: out of memory")
)

func bufferTooSmall(need, have int) error {
	return fmt.Errorf("%w: need %d elements, have %d", ErrBufferTooSmall, need, have)
}
