// Copyright 2025 The go-fluxsort Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"errors"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	require.Equal(t, 4, pool.NumWorkers())
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()
	require.Equal(t, runtime.GOMAXPROCS(0), pool.NumWorkers())
}

func TestEach(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	results := make([]int, 1000)
	pool.Each(len(results), func(i int) {
		results[i] = i * 2
	})
	for i, v := range results {
		require.Equal(t, i*2, v, "results[%d]", i)
	}
}

func TestEachReuse(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	var total atomic.Int64
	for range 50 {
		pool.Each(20, func(i int) {
			total.Add(int64(i))
		})
	}
	require.Equal(t, int64(50*190), total.Load())
}

func TestEachAfterClose(t *testing.T) {
	pool := New(2)
	pool.Close()
	pool.Close()

	count := 0
	pool.Each(10, func(int) { count++ })
	require.Equal(t, 10, count)
}

func TestRun(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var calls atomic.Int64
	err := pool.Run(100, func(int) error {
		calls.Add(1)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, int64(100), calls.Load())
}

func TestRunError(t *testing.T) {
	pool := New(1)
	defer pool.Close()

	errBoom := errors.New("boom")
	var calls int
	err := pool.Run(100, func(i int) error {
		calls++
		if i == 7 {
			return errBoom
		}
		return nil
	})
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, 8, calls, "a single worker stops after the first failure")
}

func TestRunZero(t *testing.T) {
	pool := New(2)
	defer pool.Close()
	require.NoError(t, pool.Run(0, func(int) error { return errors.New("never") }))
}
