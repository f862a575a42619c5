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

// Command fluxsort benchmarks, stress-tests and demonstrates the fluxsort
// package.
//
// Usage:
//
//	fluxsort bench -sizes 1000,100000 -patterns random,saw
//	fluxsort verify -trials 1000 -max-size 50000
//	fluxsort sort -numeric < values.txt
//	fluxsort info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fluxsort",
		Short:         "Benchmark and verify the fluxsort stable sorting algorithms",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(
		newBenchCmd(),
		newVerifyCmd(),
		newSortCmd(),
		newInfoCmd(),
	)
	return root
}
