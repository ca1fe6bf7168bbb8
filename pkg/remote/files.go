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

package remote

import (
	"io/fs"
	"path"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
	"github.com/walteh/treepush/pkg/filter"
	"gitlab.com/tozd/go/errors"
)

// DefaultWorkers is the transfer concurrency used when a request leaves Workers at 0
const DefaultWorkers = 4

// EffectiveWorkers returns the effective transfer concurrency for req
func (r UploadRequest) EffectiveWorkers() int {
	if r.Workers <= 0 {
		return DefaultWorkers
	}
	return r.Workers
}

// RemotePath maps a path relative to LocalPath to its key in the repository
func (r UploadRequest) RemotePath(rel string) string {
	rel = filter.NormalizePath(rel)
	if r.DestPath == "" {
		return rel
	}
	return path.Join(r.DestPath, rel)
}

// Message returns the commit message, falling back to a generated one
func (r UploadRequest) Message() string {
	if r.CommitMessage != "" {
		return r.CommitMessage
	}
	if r.DestPath == "" {
		return "Upload folder with treepush"
	}
	return "Upload " + r.DestPath + " with treepush"
}

// 📂 ResolveFiles returns the files req asks to send, relative to LocalPath and
// sorted. An explicit Files list wins; otherwise LocalPath is walked and
// IgnorePatterns are applied.
func ResolveFiles(afs afero.Fs, req UploadRequest) ([]string, error) {
	if req.Files != nil {
		out := make([]string, 0, len(req.Files))
		for _, f := range req.Files {
			if n := filter.NormalizePath(f); n != "" {
				out = append(out, n)
			}
		}
		sort.Strings(out)
		return out, nil
	}

	set, err := filter.Compile(req.IgnorePatterns)
	if err != nil {
		return nil, errors.Errorf("compiling ignore patterns: %w", err)
	}
	return WalkFiles(afs, req.LocalPath, "", set)
}

// WalkFiles lists every regular file under root that survives set, relative to
// root. Patterns see prefix joined to that relative path. Symlinks, devices
// and other non-regular entries are never listed.
func WalkFiles(afs afero.Fs, root, prefix string, set *filter.Set) ([]string, error) {
	out := []string{}
	err := afero.Walk(afs, root, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return errors.Errorf("relativizing %s: %w", p, err)
		}
		rel = filepath.ToSlash(rel)
		if set.Included(path.Join(prefix, rel)) {
			out = append(out, rel)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}
	sort.Strings(out)
	return out, nil
}

// ReadFile reads rel from below the request's LocalPath
func ReadFile(afs afero.Fs, req UploadRequest, rel string) ([]byte, error) {
	p := filepath.Join(req.LocalPath, filepath.FromSlash(rel))
	data, err := afero.ReadFile(afs, p)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", p, err)
	}
	return data, nil
}
