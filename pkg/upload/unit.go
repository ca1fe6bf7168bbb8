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
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
	"github.com/walteh/treepush/pkg/filter"
	"github.com/walteh/treepush/pkg/remote"
	"gitlab.com/tozd/go/errors"
)

// RootFilesUnit names the unit holding loose files directly under the source
const RootFilesUnit = "."

// 📦 Unit is one gateway dispatch
type Unit struct {
	// Name is the first level folder, RootFilesUnit, or empty for a whole tree
	Name       string `json:"name"`
	SourcePath string `json:"source_path"`
	DestPath   string `json:"dest_path"`
	// RootFilesOnly limits the unit to regular files directly in SourcePath
	RootFilesOnly bool `json:"root_files_only,omitempty"`
}

// Label is the name shown in logs
func (u Unit) Label() string {
	if u.Name == "" {
		return filepath.Base(u.SourcePath)
	}
	return u.Name
}

// wholeTreeUnit is the single unit of a whole tree job
func wholeTreeUnit(p *plan) Unit {
	return Unit{SourcePath: p.job.SourceDirectory, DestPath: p.target}
}

// 🔪 partition splits a validated job into units. Child folders come in
// lexicographic order and the loose root files unit, if any, comes last.
// Folders the filter drops as a whole produce no unit.
func partition(afs afero.Fs, p *plan) ([]Unit, error) {
	if p.job.Granularity == WholeTree {
		return []Unit{wholeTreeUnit(p)}, nil
	}

	entries, err := afero.ReadDir(afs, p.job.SourceDirectory)
	if err != nil {
		return nil, errors.Errorf("listing %s: %w", p.job.SourceDirectory, err)
	}

	units := []Unit{}
	rootFiles := false
	for _, e := range entries {
		if !e.IsDir() {
			if e.Mode().IsRegular() {
				rootFiles = true
			}
			continue
		}
		if !p.set.Included(e.Name()) {
			continue
		}
		units = append(units, Unit{
			Name:       e.Name(),
			SourcePath: filepath.Join(p.job.SourceDirectory, e.Name()),
			DestPath:   path.Join(p.target, e.Name()),
		})
	}
	sort.SliceStable(units, func(i, j int) bool { return units[i].Name < units[j].Name })

	if rootFiles {
		units = append(units, Unit{
			Name:          RootFilesUnit,
			SourcePath:    p.job.SourceDirectory,
			DestPath:      p.target,
			RootFilesOnly: true,
		})
	}
	return units, nil
}

// 📂 unitFiles lists the files a unit sends, relative to its SourcePath.
// Patterns are matched against paths relative to the job source so anchored
// patterns mean the same thing in every granularity.
func unitFiles(afs afero.Fs, set *filter.Set, u Unit) ([]string, error) {
	if u.RootFilesOnly {
		out := []string{}
		entries, err := afero.ReadDir(afs, u.SourcePath)
		if err != nil {
			return nil, errors.Errorf("listing %s: %w", u.SourcePath, err)
		}
		for _, e := range entries {
			if e.Mode().IsRegular() && set.Included(e.Name()) {
				out = append(out, e.Name())
			}
		}
		return out, nil
	}

	return remote.WalkFiles(afs, u.SourcePath, u.Name, set)
}
