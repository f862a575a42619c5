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

// Strategy reports which path a top-level sort took.
type Strategy int

const (
	// StrategyNone is reported for inputs of fewer than two elements.
	StrategyNone Strategy = iota
	// StrategySmall: the input was short enough for the merge engine alone.
	StrategySmall
	// StrategySorted: the input was already in order.
	StrategySorted
	// StrategyReversed: the input was strictly descending and was reversed.
	StrategyReversed
	// StrategyMerge: every quadrant was sorted by the merge engine.
	StrategyMerge
	// StrategyPartition: the whole input went to the partition engine.
	StrategyPartition
	// StrategyMixed: some quadrants were merged and some partitioned.
	StrategyMixed
	// StrategyMergeOnly: the partition engine was disabled, by option or by
	// the size of the available scratch buffer.
	StrategyMergeOnly
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyNone:
		return "none"
	case StrategySmall:
		return "small"
	case StrategySorted:
		return "sorted"
	case StrategyReversed:
		return "reversed"
	case StrategyMerge:
		return "merge"
	case StrategyPartition:
		return "partition"
	case StrategyMixed:
		return "mixed"
	case StrategyMergeOnly:
		return "merge-only"
	default:
		return "unknown"
	}
}

// fluxsort sorts a using swap, which must hold len(a) elements.
func (cmp cmpFunc[T]) fluxsort(a, swap []T) Strategy {
	switch n := len(a); {
	case n < 2:
		return StrategyNone
	case n <= analyzeMin:
		cmp.quadsortSwap(a, swap)
		return StrategySmall
	}
	return cmp.fluxAnalyze(a, swap)
}

// fluxAnalyze scans the four quadrants of a in lock step, counting
// descending adjacent pairs per quadrant and the 32-pair chunks that are
// entirely ascending or descending. Sorted input costs len(a)-1
// comparisons and no moves. Strictly descending quadrants are reversed in
// place, joined with their neighbors when the boundary between them is
// descending too. Quadrants with enough ordered chunks are sorted by the
// merge engine, runs of the remaining ones by the partition engine, and
// the quadrants are then merged pairwise.
func (cmp cmpFunc[T]) fluxAnalyze(a, swap []T) Strategy {
	n := len(a)
	half1 := n / 2
	quad1 := half1 / 2
	quad2 := half1 - quad1
	half2 := n - half1
	quad3 := half2 / 2
	quad4 := half2 - quad3

	pa, pb, pc, pd := 0, quad1, half1, half1+quad3

	var aBal, bBal, cBal, dBal int
	var aStreaks, bStreaks, cStreaks, dStreaks int

	count := n
	for ; count > analyzeMin; count -= 4 * analyzeChunk {
		var aSum, bSum, cSum, dSum int
		for range analyzeChunk {
			aSum += b2i(cmp(a[pa], a[pa+1]) > 0)
			bSum += b2i(cmp(a[pb], a[pb+1]) > 0)
			cSum += b2i(cmp(a[pc], a[pc+1]) > 0)
			dSum += b2i(cmp(a[pd], a[pd+1]) > 0)
			pa++
			pb++
			pc++
			pd++
		}
		aBal += aSum
		bBal += bSum
		cBal += cSum
		dBal += dSum
		aStreaks += b2i(aSum == 0 || aSum == analyzeChunk)
		bStreaks += b2i(bSum == 0 || bSum == analyzeChunk)
		cStreaks += b2i(cSum == 0 || cSum == analyzeChunk)
		dStreaks += b2i(dSum == 0 || dSum == analyzeChunk)
	}
	for ; count > 7; count -= 4 {
		aBal += b2i(cmp(a[pa], a[pa+1]) > 0)
		bBal += b2i(cmp(a[pb], a[pb+1]) > 0)
		cBal += b2i(cmp(a[pc], a[pc+1]) > 0)
		dBal += b2i(cmp(a[pd], a[pd+1]) > 0)
		pa++
		pb++
		pc++
		pd++
	}
	if quad1 < quad2 {
		bBal += b2i(cmp(a[pb], a[pb+1]) > 0)
		pb++
	}
	if quad1 < quad3 {
		cBal += b2i(cmp(a[pc], a[pc+1]) > 0)
		pc++
	}
	if quad1 < quad4 {
		dBal += b2i(cmp(a[pd], a[pd+1]) > 0)
		pd++
	}
	// pa, pb and pc now index the last element of their quadrant.

	if aBal+bBal+cBal+dBal == 0 &&
		cmp(a[pa], a[pa+1]) <= 0 &&
		cmp(a[pb], a[pb+1]) <= 0 &&
		cmp(a[pc], a[pc+1]) <= 0 {
		return StrategySorted
	}

	aRev := aBal == quad1-1
	bRev := bBal == quad2-1
	cRev := cBal == quad3-1
	dRev := dBal == quad4-1

	if aRev || bRev || cRev || dRev {
		span1 := aRev && bRev && cmp(a[pa], a[pa+1]) > 0
		span2 := bRev && cRev && cmp(a[pb], a[pb+1]) > 0
		span3 := cRev && dRev && cmp(a[pc], a[pc+1]) > 0

		switch b2i(span1) | b2i(span2)<<1 | b2i(span3)<<2 {
		case 1:
			reverse(a[:pb+1])
			aBal, bBal = 0, 0
		case 2:
			reverse(a[pa+1 : pc+1])
			bBal, cBal = 0, 0
		case 3:
			reverse(a[:pc+1])
			aBal, bBal, cBal = 0, 0, 0
		case 4:
			reverse(a[pb+1:])
			cBal, dBal = 0, 0
		case 5:
			reverse(a[:pb+1])
			reverse(a[pb+1:])
			aBal, bBal, cBal, dBal = 0, 0, 0, 0
		case 6:
			reverse(a[pa+1:])
			bBal, cBal, dBal = 0, 0, 0
		case 7:
			reverse(a)
			return StrategyReversed
		}

		if aRev && aBal != 0 {
			reverse(a[:pa+1])
			aBal = 0
		}
		if bRev && bBal != 0 {
			reverse(a[pa+1 : pb+1])
			bBal = 0
		}
		if cRev && cBal != 0 {
			reverse(a[pb+1 : pc+1])
			cBal = 0
		}
		if dRev && dBal != 0 {
			reverse(a[pc+1:])
			dBal = 0
		}
	}

	limit := n / streakDivisor
	merge := [4]bool{aStreaks > limit, bStreaks > limit, cStreaks > limit, dStreaks > limit}
	if quad1 > quadCache {
		merge = [4]bool{true, true, true, true}
	}
	if merge == [4]bool{} {
		cmp.partition(a, swap)
		return StrategyPartition
	}

	bounds := [5]int{0, quad1, half1, half1 + quad3, n}
	balance := [4]int{aBal, bBal, cBal, dBal}
	strategy := StrategyMerge
	for q := 0; q < 4; {
		if merge[q] {
			if balance[q] != 0 {
				cmp.quadsortSwap(a[bounds[q]:bounds[q+1]], swap)
			}
			q++
			continue
		}
		end := q + 1
		for end < 4 && !merge[end] {
			end++
		}
		cmp.partition(a[bounds[q]:bounds[end]], swap)
		strategy = StrategyMixed
		q = end
	}

	cmp.mergeQuadrants(a, swap, quad1, half1, half1+quad3)
	return strategy
}

// partition sorts a with the partition engine, or the merge engine when a
// is too short to partition.
func (cmp cmpFunc[T]) partition(a, swap []T) {
	if len(a) <= fluxOut {
		cmp.quadsortSwap(a, swap)
		return
	}
	var bound T
	cmp.fluxPartition(a, swap, false, bound, false)
}

// mergeQuadrants merges the four sorted quadrants a[:ab], a[ab:half],
// a[half:cd] and a[cd:] through swap, skipping ordered boundaries.
func (cmp cmpFunc[T]) mergeQuadrants(a, swap []T, ab, half, cd int) {
	n := len(a)
	abOrdered := cmp(a[ab-1], a[ab]) <= 0
	cdOrdered := cmp(a[cd-1], a[cd]) <= 0

	if abOrdered && cdOrdered {
		if cmp(a[half-1], a[half]) <= 0 {
			return
		}
		copy(swap[:n], a)
		cmp.crossMerge(a, swap[:n], half)
		return
	}

	if abOrdered {
		copy(swap[:half], a[:half])
	} else {
		cmp.crossMerge(swap[:half], a[:half], ab)
	}
	if cdOrdered {
		copy(swap[half:n], a[half:])
	} else {
		cmp.crossMerge(swap[half:n], a[half:], cd-half)
	}
	if cmp(swap[half-1], swap[half]) <= 0 {
		copy(a, swap[:n])
		return
	}
	cmp.crossMerge(a, swap[:n], half)
}
