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

package main

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-fluxsort/fluxsort"
)

type sortOptions struct {
	numeric bool
	merge   bool
	reverse bool
}

func newSortCmd() *cobra.Command {
	var opts sortOptions
	cmd := &cobra.Command{
		Use:   "sort [file]",
		Short: "Sort the lines of a file or standard input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return runSort(in, cmd.OutOrStdout(), opts)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&opts.numeric, "numeric", "n", false, "compare lines as numbers")
	f.BoolVarP(&opts.merge, "merge", "m", false, "use the merge sort only")
	f.BoolVarP(&opts.reverse, "reverse", "r", false, "sort in descending order")
	return cmd
}

type line struct {
	text string
	num  float64
}

func runSort(r io.Reader, w io.Writer, opts sortOptions) error {
	var lines []line
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		l := line{text: sc.Text()}
		if opts.numeric {
			v, err := strconv.ParseFloat(strings.TrimSpace(l.text), 64)
			if err != nil {
				return fmt.Errorf("line %d: %q is not a number", len(lines)+1, l.text)
			}
			l.num = v
		}
		lines = append(lines, l)
	}
	if err := sc.Err(); err != nil {
		return err
	}

	compare := func(a, b line) int { return strings.Compare(a.text, b.text) }
	if opts.numeric {
		compare = func(a, b line) int { return cmp.Compare(a.num, b.num) }
	}
	if opts.reverse {
		asc := compare
		compare = func(a, b line) int { return asc(b, a) }
	}

	if opts.merge {
		fluxsort.MergeSort(lines, compare)
	} else {
		fluxsort.Sort(lines, compare)
	}

	bw := bufio.NewWriter(w)
	for _, l := range lines {
		bw.WriteString(l.text)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
