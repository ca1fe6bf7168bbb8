// Copyright 2025 walteh LLC
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

package filter

import (
	"sort"

	"gitlab.com/tozd/go/errors"
)

// DefaultPatterns are applied when a job does not specify its own
var DefaultPatterns = []string{"**/.DS_Store", "**/.git/**"}

var presets = map[string]string{
	"pycache":  "**/__pycache__/**",
	"git":      ".git/**",
	"venv":     "venv/**",
	"pyc":      "*.pyc",
	"log":      "*.log",
	"tmp":      "*.tmp",
	"ds_store": "*.DS_Store",
}

// Preset returns the pattern registered under name
func Preset(name string) (string, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames returns every preset name, sorted
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for k := range presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// 🧩 Resolve appends the patterns of the named presets to patterns.
// Duplicates are dropped while keeping first-seen order.
func Resolve(patterns []string, presetNames []string) ([]string, error) {
	seen := make(map[string]struct{}, len(patterns)+len(presetNames))
	out := make([]string, 0, len(patterns)+len(presetNames))

	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	for _, p := range patterns {
		add(p)
	}
	for _, name := range presetNames {
		p, ok := presets[name]
		if !ok {
			return nil, &ConfigError{Pattern: name, Err: errors.Errorf("unknown preset, options: %v", PresetNames())}
		}
		add(p)
	}
	return out, nil
}
