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
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// Gateway is the contract for a remote content repository service.
//
// Implementations must make UploadDirectory overwrite-safe so a job can be
// re-run after a partial failure, and must report an existing repository on
// CreateRepository with an error wrapping ErrConflict.
type Gateway interface {
	// Authenticate checks that token is accepted by the service
	Authenticate(ctx context.Context, token string) error
	// RepositoryExists reports whether repoID exists as the given kind
	RepositoryExists(ctx context.Context, repoID string, kind Kind, token string) (bool, error)
	// CreateRepository provisions a repository
	CreateRepository(ctx context.Context, req CreateRequest) error
	// UploadDirectory pushes the files of a local directory under DestPath
	UploadDirectory(ctx context.Context, req UploadRequest) error
	// ListRemoteFiles returns every file key in the repository, slash separated
	ListRemoteFiles(ctx context.Context, repoID string, kind Kind, token string) ([]string, error)
}

// CreateRequest describes a repository to provision
type CreateRequest struct {
	RepoID     string
	Kind       Kind
	Visibility Visibility
	Token      string
}

// UploadRequest describes one directory transfer.
//
// Files, when set, is the exact list of slash separated paths relative to
// LocalPath to send; gateways must not send anything else. When Files is nil
// the gateway walks LocalPath itself and applies IgnorePatterns.
type UploadRequest struct {
	LocalPath      string
	RepoID         string
	Kind           Kind
	DestPath       string
	IgnorePatterns []string
	Files          []string
	Token          string
	Workers        int
	CommitMessage  string
}

// Options configures a gateway created through the registry
type Options struct {
	// Endpoint overrides the service base URL
	Endpoint string
	// Fs is the filesystem local paths are read from; nil means the OS filesystem
	Fs afero.Fs
}

// FS returns the configured filesystem, defaulting to the OS
func (o Options) FS() afero.Fs {
	if o.Fs == nil {
		return afero.NewOsFs()
	}
	return o.Fs
}

// Factory builds a gateway
type Factory func(ctx context.Context, opts Options) (Gateway, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a gateway available by name
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Names returns the registered gateway names, sorted
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	options := make([]string, 0, len(registry))
	for k := range registry {
		options = append(options, k)
	}
	sort.Strings(options)
	return options
}

// Open creates the gateway registered under name
func Open(ctx context.Context, name string, opts Options) (Gateway, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, errors.Errorf("gateway %s not found, options: %s", name, strings.Join(Names(), ", "))
	}
	gw, err := factory(ctx, opts)
	if err != nil {
		return nil, errors.Errorf("opening gateway %s: %w", name, err)
	}
	return gw, nil
}
