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
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-fluxsort/fluxsort"
	"github.com/ajroetker/go-fluxsort/internal/platform"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the platform and the environment configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := platform.Current()
			settings := fluxsort.EnvSettings()

			limit := "unlimited"
			if settings.BufferLimit >= 0 {
				limit = fmt.Sprintf("%d bytes", settings.BufferLimit)
			}
			features := strings.Join(info.Features, " ")
			if features == "" {
				features = "none detected"
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendRows([]table.Row{
				{"Go", info.GoVersion},
				{"GOOS/GOARCH", info.GOOS + "/" + info.GOARCH},
				{"CPUs", info.NumCPU},
				{"GOMAXPROCS", info.GOMAXPROCS},
				{"CPU features", features},
				{fluxsort.EnvMergeOnly, settings.MergeOnly},
				{fluxsort.EnvBufferLimit, limit},
			})
			t.Render()
			return nil
		},
	}
}
