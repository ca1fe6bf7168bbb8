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
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🚫 ConfigError reports an ignore pattern that cannot be compiled
type ConfigError struct {
	Pattern string
	Err     error
}

func (e *ConfigError) Error() string {
	return "invalid ignore pattern " + `"` + e.Pattern + `": ` + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// 📋 Decision is the result of filtering one relative path
type Decision struct {
	Path     string
	Included bool
}

// 🎯 Matcher is a single compiled ignore pattern
type Matcher struct {
	raw  string
	expr string
}

// 🏭 NewMatcher compiles a pattern into a reusable matcher.
//
// Patterns use doublestar syntax. A pattern without a separator is unanchored
// and matches at any depth; a pattern with a separator, or one starting with
// "/" or "./", is anchored at the root. A matcher excludes a path when it
// matches the path or any directory above it.
func NewMatcher(pattern string) (*Matcher, error) {
	norm := normalizePattern(pattern)
	if norm == "" {
		return nil, &ConfigError{Pattern: pattern, Err: errors.New("pattern is empty")}
	}

	lead := strings.ReplaceAll(strings.TrimSpace(pattern), `\`, "/")
	rooted := strings.HasPrefix(lead, "/") || strings.HasPrefix(lead, "./")

	expr := norm
	if !rooted && !strings.Contains(norm, "/") {
		expr = "**/" + norm
	}

	if !doublestar.ValidatePattern(expr) {
		return nil, &ConfigError{Pattern: pattern, Err: doublestar.ErrBadPattern}
	}

	return &Matcher{raw: pattern, expr: expr}, nil
}

// Pattern returns the pattern as it was written
func (m *Matcher) Pattern() string {
	return m.raw
}

// Match reports whether rel, or one of its parent directories, matches
func (m *Matcher) Match(rel string) bool {
	rel = NormalizePath(rel)
	if rel == "" {
		return false
	}

	for i := 0; i < len(rel); i++ {
		if rel[i] == '/' && m.matchOne(rel[:i]) {
			return true
		}
	}
	return m.matchOne(rel)
}

func (m *Matcher) matchOne(name string) bool {
	// the expression was validated in NewMatcher, so the error is always nil
	ok, _ := doublestar.Match(m.expr, name)
	return ok
}

// 📦 Set is an ordered collection of matchers evaluated as a blacklist
type Set struct {
	matchers []*Matcher
}

// 🏭 Compile compiles every pattern, failing on the first invalid one
func Compile(patterns []string) (*Set, error) {
	set := &Set{matchers: make([]*Matcher, 0, len(patterns))}
	for _, p := range patterns {
		m, err := NewMatcher(p)
		if err != nil {
			return nil, err
		}
		set.matchers = append(set.matchers, m)
	}
	return set, nil
}

// MustCompile is like Compile but panics on error
func MustCompile(patterns ...string) *Set {
	s, err := Compile(patterns)
	if err != nil {
		panic(err)
	}
	return s
}

// 🔍 Included reports whether rel survives the set
func (s *Set) Included(rel string) bool {
	if s == nil {
		return true
	}
	for _, m := range s.matchers {
		if m.Match(rel) {
			return false
		}
	}
	return true
}

// Decide returns the full decision for rel
func (s *Set) Decide(rel string) Decision {
	return Decision{Path: NormalizePath(rel), Included: s.Included(rel)}
}

// Patterns returns the source patterns in order
func (s *Set) Patterns() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.matchers))
	for i, m := range s.matchers {
		out[i] = m.raw
	}
	return out
}

// Len returns the number of patterns in the set
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.matchers)
}

// 🔍 Included reports whether rel survives patterns.
// Invalid patterns are skipped; use Compile to surface them as errors.
func Included(rel string, patterns []string) bool {
	for _, p := range patterns {
		m, err := NewMatcher(p)
		if err != nil {
			continue
		}
		if m.Match(rel) {
			return false
		}
	}
	return true
}

// NormalizePath converts rel to a slash separated path with no leading "./" or "/"
func NormalizePath(rel string) string {
	rel = strings.ReplaceAll(rel, `\`, "/")
	for strings.HasPrefix(rel, "./") {
		rel = rel[2:]
	}
	rel = strings.TrimLeft(rel, "/")
	rel = strings.TrimRight(rel, "/")
	if rel == "." {
		return ""
	}
	return rel
}

func normalizePattern(p string) string {
	return NormalizePath(strings.TrimSpace(p))
}
