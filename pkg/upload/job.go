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

package upload

import (
	"path"
	"strings"

	"github.com/spf13/afero"
	"github.com/walteh/treepush/pkg/filter"
	"github.com/walteh/treepush/pkg/remote"
	"gitlab.com/tozd/go/errors"
)

// 🧩 Granularity decides how a source directory splits into units
type Granularity string

const (
	WholeTree           Granularity = "whole-tree"
	PerFirstLevelFolder Granularity = "per-first-level-folder"
)

// Valid reports whether g is known
func (g Granularity) Valid() bool {
	return g == WholeTree || g == PerFirstLevelFolder
}

// ParseGranularity parses a granularity name
func ParseGranularity(s string) (Granularity, error) {
	g := Granularity(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", errors.Errorf("unknown granularity %q, options: %s, %s", s, WholeTree, PerFirstLevelFolder)
	}
	return g, nil
}

// 📦 Job describes one user initiated upload. It is copied on submission and
// never changed afterwards.
type Job struct {
	SourceDirectory string            `json:"source_directory"`
	RepositoryID    string            `json:"repository_id"`
	Kind            remote.Kind       `json:"kind"`
	Visibility      remote.Visibility `json:"visibility"`
	TargetPath      string            `json:"target_path,omitempty"`
	Granularity     Granularity       `json:"granularity"`
	// IgnorePatterns nil means filter.DefaultPatterns; an empty slice means none
	IgnorePatterns []string `json:"ignore_patterns,omitempty"`
	Presets        []string `json:"presets,omitempty"`
	Token          string   `json:"-"`
	// Workers is the gateway's transfer concurrency; 0 means its default
	Workers       int    `json:"workers,omitempty"`
	CommitMessage string `json:"commit_message,omitempty"`
}

// 🚫 ValidationError is a job rejected before any remote call
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field, reason string, err error) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Err: err}
}

// NormalizeTarget converts a target path to slash form without leading or
// trailing separators. "." and "/" mean the repository root.
func NormalizeTarget(target string) string {
	target = strings.TrimSpace(strings.ReplaceAll(target, `\`, "/"))
	if target == "" {
		return ""
	}
	target = strings.Trim(path.Clean("/"+target), "/")
	return target
}

// plan is a validated job ready to run
type plan struct {
	job      Job
	target   string
	patterns []string
	set      *filter.Set
}

// Validate checks the job without contacting the remote side
func (j Job) Validate(fs afero.Fs) error {
	_, err := prepare(fs, j)
	return err
}

func prepare(fs afero.Fs, j Job) (*plan, error) {
	if strings.TrimSpace(j.SourceDirectory) == "" {
		return nil, invalid("source_directory", "is required", nil)
	}
	info, err := fs.Stat(j.SourceDirectory)
	if err != nil {
		return nil, invalid("source_directory", "does not exist: "+j.SourceDirectory, err)
	}
	if !info.IsDir() {
		return nil, invalid("source_directory", "is not a directory: "+j.SourceDirectory, nil)
	}

	if !remote.ValidRepoID(j.RepositoryID) {
		return nil, invalid("repository_id", "must look like owner/name, got "+`"`+j.RepositoryID+`"`, nil)
	}
	if strings.TrimSpace(j.Token) == "" {
		return nil, invalid("token", "is required", nil)
	}
	if !j.Kind.Valid() {
		return nil, invalid("kind", "unknown repository kind "+`"`+string(j.Kind)+`"`, nil)
	}
	if !j.Visibility.Valid() {
		return nil, invalid("visibility", "unknown visibility "+`"`+string(j.Visibility)+`"`, nil)
	}
	if !j.Granularity.Valid() {
		return nil, invalid("granularity", "unknown granularity "+`"`+string(j.Granularity)+`"`, nil)
	}
	if j.Workers < 0 {
		return nil, invalid("workers", "must not be negative", nil)
	}

	base := j.IgnorePatterns
	if base == nil {
		base = filter.DefaultPatterns
	}
	patterns, err := filter.Resolve(base, j.Presets)
	if err != nil {
		return nil, invalid("presets", err.Error(), err)
	}
	set, err := filter.Compile(patterns)
	if err != nil {
		return nil, invalid("ignore_patterns", err.Error(), err)
	}

	return &plan{
		job:      j,
		target:   NormalizeTarget(j.TargetPath),
		patterns: patterns,
		set:      set,
	}, nil
}
