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

// Pivot selection. Every selector returns a copy of an element of the
// range, never a position, because partitioning relocates everything.

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// selectPivot picks the pivot for src. Large ranges are sampled into
// scratch, which must not overlap src and must hold len(src) elements.
// generic reports a sample in which every element compared equal.
func (cmp cmpFunc[T]) selectPivot(src, scratch []T) (pivot T, generic bool) {
	switch n := len(src); {
	case n <= pivotNineMax:
		return cmp.medianOfNine(src), false
	case n <= pivotTwentyFiveMax:
		return cmp.medianOfTwentyFive(src), false
	}
	return cmp.medianOfCbrt(src, scratch)
}

// medianOfThree returns the index of the median of a[v0], a[v1], a[v2].
// Each element counts the others it beats; ties go to the later argument.
func (cmp cmpFunc[T]) medianOfThree(a []T, v0, v1, v2 int) int {
	x := b2i(cmp(a[v0], a[v1]) > 0)
	t0, t1 := x, 1-x
	t0 += b2i(cmp(a[v0], a[v2]) > 0)
	if t0 == 1 {
		return v0
	}
	t1 += b2i(cmp(a[v1], a[v2]) > 0)
	if t1 == 1 {
		return v1
	}
	return v2
}

// medianOfFive is medianOfThree's tournament for five elements; the median
// is the one element beating exactly two others.
func (cmp cmpFunc[T]) medianOfFive(a []T, v0, v1, v2, v3, v4 int) int {
	var t [4]int

	x := b2i(cmp(a[v0], a[v1]) > 0)
	t[0], t[1] = x, 1-x
	x = b2i(cmp(a[v0], a[v2]) > 0)
	t[0] += x
	t[2] = 1 - x
	x = b2i(cmp(a[v0], a[v3]) > 0)
	t[0] += x
	t[3] = 1 - x
	t[0] += b2i(cmp(a[v0], a[v4]) > 0)
	if t[0] == 2 {
		return v0
	}

	x = b2i(cmp(a[v1], a[v2]) > 0)
	t[1] += x
	t[2] += 1 - x
	x = b2i(cmp(a[v1], a[v3]) > 0)
	t[1] += x
	t[3] += 1 - x
	t[1] += b2i(cmp(a[v1], a[v4]) > 0)
	if t[1] == 2 {
		return v1
	}

	x = b2i(cmp(a[v2], a[v3]) > 0)
	t[2] += x
	t[3] += 1 - x
	t[2] += b2i(cmp(a[v2], a[v4]) > 0)
	if t[2] == 2 {
		return v2
	}

	t[3] += b2i(cmp(a[v3], a[v4]) > 0)
	if t[3] == 2 {
		return v3
	}
	return v4
}

// medianOfNine combines three medians of three taken at 1/16 strides.
// len(a) must be at least 16.
func (cmp cmpFunc[T]) medianOfNine(a []T) T {
	div := len(a) / 16

	v0 := cmp.medianOfThree(a, div*2, div*1, div*4)
	v1 := cmp.medianOfThree(a, div*8, div*6, div*10)
	v2 := cmp.medianOfThree(a, div*14, div*12, div*15)

	return a[cmp.medianOfThree(a, v1, v0, v2)]
}

// medianOfTwentyFive combines five medians of five taken at 1/26 strides.
func (cmp cmpFunc[T]) medianOfTwentyFive(a []T) T {
	div := len(a) / 26

	var m [5]int
	for g := range m {
		base := g * 5 * div
		m[g] = cmp.medianOfFive(a, base+div*3, base+div*1, base+div*2, base+div*4, base+div*5)
	}
	return a[cmp.medianOfFive(a, m[2], m[0], m[1], m[3], m[4])]
}

// medianOfCbrt sorts an evenly spaced sample of at least the cube root of
// len(src) elements and returns its middle element. The sample starts at
// an offset derived from the length so fixed-stride inputs do not line up
// with it.
func (cmp cmpFunc[T]) medianOfCbrt(src, scratch []T) (T, bool) {
	n := len(src)

	cbrt := pivotSampleMin
	for n > cbrt*cbrt*cbrt {
		cbrt *= 2
	}
	div := n / cbrt
	offset := int((uint(n)*2654435761)>>11) % div

	sample := scratch[:cbrt]
	for i := range sample {
		sample[i] = src[offset+i*div]
	}
	cmp.quadsortSwap(sample, scratch[cbrt:cbrt+cbrt/2])

	generic := cmp(sample[cbrt-1], sample[0]) <= 0
	return sample[cbrt/2], generic
}
