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

// Package platform reports the machine the sorter runs on and parses the
// environment variables that configure it.
package platform

import (
	"os"
	"runtime"
	"strconv"
	"strings"
)

// EnvBool reports whether the environment variable name is set to a true
// value. Any non-empty value that does not parse as a bool counts as true,
// so FOO=1, FOO=true and FOO=yes all enable the setting.
func EnvBool(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// EnvInt returns the integer value of the environment variable name. ok is
// false when the variable is unset or does not parse. Values may carry a
// binary size suffix: K, M or G (optionally followed by B or iB).
func EnvInt(name string) (value int, ok bool) {
	val := strings.TrimSpace(os.Getenv(name))
	if val == "" {
		return 0, false
	}
	v, err := ParseSize(val)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseSize parses a byte count such as "4096", "64K" or "1MiB".
func ParseSize(s string) (int, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	upper = strings.TrimSuffix(upper, "IB")
	upper = strings.TrimSuffix(upper, "B")

	shift := 0
	switch {
	case strings.HasSuffix(upper, "K"):
		shift = 10
	case strings.HasSuffix(upper, "M"):
		shift = 20
	case strings.HasSuffix(upper, "G"):
		shift = 30
	}
	if shift > 0 {
		upper = upper[:len(upper)-1]
	}

	v, err := strconv.ParseInt(upper, 10, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > int64(^uint(0)>>1)>>shift {
		return 0, strconv.ErrRange
	}
	return int(v << shift), nil
}

// Info describes the running platform.
type Info struct {
	GOOS       string
	GOARCH     string
	GoVersion  string
	NumCPU     int
	GOMAXPROCS int
	Features   []string
}

// Current returns the platform report for this process.
func Current() Info {
	return Info{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		GoVersion:  runtime.Version(),
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Features:   cpuFeatures(),
	}
}
