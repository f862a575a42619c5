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

// =============================================================================
// Thresholds shared by the merge and partition engines
// =============================================================================
//
// Several of these are coupled: fluxOut must stay at least 16 so the median
// of nine strides (n/16) are distinct, and quadBlock is four 8-blocks joined by
// parity merges.

const (
	// tailSwapMax: inputs shorter than this are sorted by tailSwap alone.
	tailSwapMax = 32

	// quadBlock is the run length produced by quadSwap before quadMerge.
	quadBlock = 32

	// quadStackLen is the scratch kept on the stack when merging inputs
	// shorter than 2*quadStackLen.
	quadStackLen = 128

	// boundedStackLen is the scratch used when no buffer could be obtained.
	boundedStackLen = 512

	// analyzeMin: flux sort analyzes and partitions only above this length.
	analyzeMin = 132

	// analyzeChunk is the number of comparisons per quadrant per lock-step
	// chunk; a chunk with 0 or analyzeChunk inversions counts as a streak.
	analyzeChunk = 32

	// streakDivisor: a quadrant with more than n/streakDivisor streaks is
	// handed to the merge engine.
	streakDivisor = 512

	// quadCache: quadrants longer than this always use the merge engine.
	quadCache = 262144

	// fluxOut: partitions of this size or smaller are finished by merging.
	fluxOut = 96

	// fluxSkew: a side smaller than 1/fluxSkew of the other marks the
	// partition as skewed.
	fluxSkew = 32

	// fluxReverseSkew: after a reverse partition, a back part of at most
	// 1/fluxReverseSkew of the front part finishes the front by merging.
	fluxReverseSkew = 16

	// pivotNineMax: median of nine pivots up to this length.
	pivotNineMax = 2048

	// pivotTwentyFiveMax: median of twenty-five pivots up to this length,
	// cube-root sampling above.
	pivotTwentyFiveMax = 65536

	// pivotSampleMin is the smallest cube-root sample.
	pivotSampleMin = 32
)
