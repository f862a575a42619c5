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

package fluxsort_test

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/ajroetker/go-fluxsort/fluxsort"
)

type person struct {
	Name string
	Age  int
}

func ExampleSort() {
	people := []person{
		{"Alice", 30},
		{"Bob", 25},
		{"Carol", 30},
		{"Dave", 25},
	}
	fluxsort.Sort(people, func(a, b person) int {
		return cmp.Compare(a.Age, b.Age)
	})
	fmt.Println(people)
	// Output: [{Bob 25} {Dave 25} {Alice 30} {Carol 30}]
}

func ExampleSortOrdered() {
	values := []float64{3.5, -1, 2, 0}
	fluxsort.SortOrdered(values)
	fmt.Println(values)
	// Output: [-1 0 2 3.5]
}

func ExampleSortWithBuffer() {
	data := make([]int, 100)
	for i := range data {
		data[i] = (i * 37) % 100
	}

	err := fluxsort.SortWithBuffer(data, make([]int, 10), cmp.Compare[int])
	fmt.Println(errors.Is(err, fluxsort.ErrBufferTooSmall))

	buf := make([]int, fluxsort.BufferLen(len(data), true))
	err = fluxsort.SortWithBuffer(data, buf, cmp.Compare[int])
	fmt.Println(err, fluxsort.IsSorted(data))
	// Output:
	// true
	// <nil> true
}

func ExampleNew() {
	s := fluxsort.New(cmp.Compare[int], fluxsort.WithAllocator(fluxsort.NewBudget(0)))

	data := make([]int, 5000)
	for i := range data {
		data[i] = len(data) - i%1000
	}
	fmt.Println(s.Sort(data), fluxsort.IsSorted(data))
	// Output: merge-only true
}
