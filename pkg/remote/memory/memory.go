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

// Package memory is an in-process gateway that records every call. It backs
// dry runs and tests.
package memory

import (
	"context"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/afero"
	"github.com/walteh/treepush/pkg/remote"
	"gitlab.com/tozd/go/errors"
)

// Name is the registry name of this gateway
const Name = "memory"

func init() {
	remote.Register(Name, func(ctx context.Context, opts remote.Options) (remote.Gateway, error) {
		return New(WithFs(opts.FS())), nil
	})
}

// 📝 Call is one recorded gateway invocation
type Call struct {
	Method     string
	RepoID     string
	Kind       remote.Kind
	Visibility remote.Visibility
	DestPath   string
	Files      []string
}

// UploadHook runs before an upload is recorded; a non-nil error fails it
type UploadHook func(ctx context.Context, req remote.UploadRequest) error

type repository struct {
	visibility remote.Visibility
	files      map[string]struct{}
}

// Gateway is a recording remote.Gateway backed by maps
type Gateway struct {
	mu        sync.Mutex
	fs        afero.Fs
	token     string
	repos     map[string]*repository
	calls     []Call
	authErr   error
	existsErr error
	createErr error
	listErr   error
	onUpload  UploadHook
}

var _ remote.Gateway = (*Gateway)(nil)

// Option configures a Gateway
type Option func(*Gateway)

// WithFs sets the filesystem uploads are read from
func WithFs(fs afero.Fs) Option {
	return func(g *Gateway) { g.fs = fs }
}

// WithToken makes Authenticate accept only token
func WithToken(token string) Option {
	return func(g *Gateway) { g.token = token }
}

// WithRepository seeds an existing repository
func WithRepository(repoID string, kind remote.Kind, files ...string) Option {
	return func(g *Gateway) {
		r := &repository{visibility: remote.Public, files: map[string]struct{}{}}
		for _, f := range files {
			r.files[f] = struct{}{}
		}
		g.repos[key(repoID, kind)] = r
	}
}

// WithAuthError makes Authenticate fail with err
func WithAuthError(err error) Option {
	return func(g *Gateway) { g.authErr = err }
}

// WithExistsError makes RepositoryExists fail with err
func WithExistsError(err error) Option {
	return func(g *Gateway) { g.existsErr = err }
}

// WithCreateError makes CreateRepository fail with err
func WithCreateError(err error) Option {
	return func(g *Gateway) { g.createErr = err }
}

// WithListError makes ListRemoteFiles fail with err
func WithListError(err error) Option {
	return func(g *Gateway) { g.listErr = err }
}

// WithUploadHook runs hook before each upload is recorded
func WithUploadHook(hook UploadHook) Option {
	return func(g *Gateway) { g.onUpload = hook }
}

// 🏭 New creates an empty recording gateway
func New(opts ...Option) *Gateway {
	g := &Gateway{
		fs:    afero.NewOsFs(),
		repos: map[string]*repository{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func key(repoID string, kind remote.Kind) string {
	return string(kind) + ":" + repoID
}

func (g *Gateway) record(c Call) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, c)
}

// Calls returns a copy of every recorded call, in order
func (g *Gateway) Calls() []Call {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Call, len(g.calls))
	copy(out, g.calls)
	return out
}

// CallCount returns how many times method was called
func (g *Gateway) CallCount(method string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, c := range g.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls but keeps repositories
func (g *Gateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = nil
}

func (g *Gateway) Authenticate(ctx context.Context, token string) error {
	g.record(Call{Method: "Authenticate"})
	if g.authErr != nil {
		return remote.NewAuthError(g.authErr)
	}
	if token == "" || (g.token != "" && token != g.token) {
		return remote.NewAuthError(remote.ErrUnauthorized)
	}
	return nil
}

func (g *Gateway) RepositoryExists(ctx context.Context, repoID string, kind remote.Kind, token string) (bool, error) {
	g.record(Call{Method: "RepositoryExists", RepoID: repoID, Kind: kind})
	if g.existsErr != nil {
		return false, g.existsErr
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.repos[key(repoID, kind)]
	return ok, nil
}

func (g *Gateway) CreateRepository(ctx context.Context, req remote.CreateRequest) error {
	g.record(Call{Method: "CreateRepository", RepoID: req.RepoID, Kind: req.Kind, Visibility: req.Visibility})
	if g.createErr != nil {
		return g.createErr
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	k := key(req.RepoID, req.Kind)
	if _, ok := g.repos[k]; ok {
		return errors.Errorf("creating %s: %w", req.RepoID, remote.ErrConflict)
	}
	g.repos[k] = &repository{visibility: req.Visibility, files: map[string]struct{}{}}
	return nil
}

func (g *Gateway) UploadDirectory(ctx context.Context, req remote.UploadRequest) error {
	files, err := remote.ResolveFiles(g.fs, req)
	if err != nil {
		return err
	}
	g.record(Call{Method: "UploadDirectory", RepoID: req.RepoID, Kind: req.Kind, DestPath: req.DestPath, Files: files})

	if g.onUpload != nil {
		if err := g.onUpload(ctx, req); err != nil {
			return err
		}
	}

	if req.Files != nil {
		for _, f := range files {
			if _, err := g.fs.Stat(filepath.Join(req.LocalPath, filepath.FromSlash(f))); err != nil {
				return errors.Errorf("uploading %s: %w", f, err)
			}
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.repos[key(req.RepoID, req.Kind)]
	if !ok {
		return errors.Errorf("uploading to %s: %w", req.RepoID, remote.ErrNotFound)
	}
	for _, f := range files {
		r.files[req.RemotePath(f)] = struct{}{}
	}
	return nil
}

func (g *Gateway) ListRemoteFiles(ctx context.Context, repoID string, kind remote.Kind, token string) ([]string, error) {
	g.record(Call{Method: "ListRemoteFiles", RepoID: repoID, Kind: kind})
	if g.listErr != nil {
		return nil, g.listErr
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.repos[key(repoID, kind)]
	if !ok {
		return nil, errors.Errorf("listing %s: %w", repoID, remote.ErrNotFound)
	}
	out := make([]string, 0, len(r.files))
	for f := range r.files {
		out = append(out, f)
	}
	sort.Strings(out)
	return out, nil
}

// Visibility returns the visibility a repository was created with
func (g *Gateway) Visibility(repoID string, kind remote.Kind) (remote.Visibility, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.repos[key(repoID, kind)]
	if !ok {
		return "", false
	}
	return r.visibility, true
}
