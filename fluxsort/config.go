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
	"log/slog"

	"github.com/ajroetker/go-fluxsort/internal/platform"
)

// Environment variables read once at package initialization.
const (
	// EnvMergeOnly disables the partition engine when set to a true value.
	EnvMergeOnly = "FLUXSORT_MERGE_ONLY"

	// EnvBufferLimit bounds the scratch bytes all sorts using the default
	// allocator may hold at once. Accepts K, M and G suffixes.
	EnvBufferLimit = "FLUXSORT_BUFFER_LIMIT"
)

type config struct {
	alloc     Allocator
	logger    *slog.Logger
	mergeOnly bool
}

// Settings is the configuration taken from the environment.
type Settings struct {
	MergeOnly bool
	// BufferLimit is the default allocator's limit in bytes, or -1 when
	// scratch is unlimited.
	BufferLimit int
}

var (
	envSettings   = loadSettings()
	defaultConfig = envSettings.config()
)

func loadSettings() Settings {
	s := Settings{
		MergeOnly:   platform.EnvBool(EnvMergeOnly),
		BufferLimit: -1,
	}
	if limit, ok := platform.EnvInt(EnvBufferLimit); ok {
		s.BufferLimit = limit
	}
	return s
}

func (s Settings) config() config {
	cfg := config{alloc: Unlimited(), mergeOnly: s.MergeOnly}
	if s.BufferLimit >= 0 {
		cfg.alloc = NewBudget(s.BufferLimit)
	}
	return cfg
}

// EnvSettings returns the settings read from the environment at startup.
func EnvSettings() Settings {
	return envSettings
}

func (c *config) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

// Option configures a Sorter.
type Option func(*config)

// WithAllocator sets the allocator accounting for scratch buffers.
func WithAllocator(a Allocator) Option {
	return func(c *config) {
		if a == nil {
			a = Unlimited()
		}
		c.alloc = a
	}
}

// WithLogger enables debug records for the strategy each sort takes and
// for scratch allocation fallbacks.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithMergeOnly selects the merge engine for every sort.
func WithMergeOnly(on bool) Option {
	return func(c *config) {
		c.mergeOnly = on
	}
}
