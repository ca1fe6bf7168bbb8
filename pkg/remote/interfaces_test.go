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

package remote_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/treepush/gen/mockery"
	"github.com/walteh/treepush/pkg/filter"
	"github.com/walteh/treepush/pkg/remote"
	"gitlab.com/tozd/go/errors"
)

func TestRegistry(t *testing.T) {
	var opened remote.Options
	remote.Register("test-registry", func(ctx context.Context, opts remote.Options) (remote.Gateway, error) {
		opened = opts
		return mockery.NewMockGateway_remote(t), nil
	})
	remote.Register("test-broken", func(ctx context.Context, opts remote.Options) (remote.Gateway, error) {
		return nil, errors.New("no network")
	})

	gw, err := remote.Open(context.Background(), "test-registry", remote.Options{Endpoint: "http://localhost"})
	require.NoError(t, err)
	assert.NotNil(t, gw)
	assert.Equal(t, "http://localhost", opened.Endpoint)
	assert.Contains(t, remote.Names(), "test-registry")

	_, err = remote.Open(context.Background(), "test-broken", remote.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no network")

	_, err = remote.Open(context.Background(), "nope", remote.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test-registry", "error should list the options")
}

func TestParseKindAndVisibility(t *testing.T) {
	k, err := remote.ParseKind(" Dataset ")
	require.NoError(t, err)
	assert.Equal(t, remote.KindDataset, k)
	assert.Equal(t, "datasets", k.Plural())

	_, err = remote.ParseKind("bucket")
	assert.Error(t, err)

	v, err := remote.ParseVisibility("PRIVATE")
	require.NoError(t, err)
	assert.Equal(t, remote.Private, v)

	_, err = remote.ParseVisibility("internal")
	assert.Error(t, err)
}

func TestValidRepoID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"acme/data", true},
		{"a-b_c.d/e.f-g_h", true},
		{"acme", false},
		{"acme/", false},
		{"/data", false},
		{"acme/data/extra", false},
		{"ac me/data", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, remote.ValidRepoID(tt.id))
		})
	}

	owner, name, err := remote.SplitRepoID("acme/data")
	require.NoError(t, err)
	assert.Equal(t, "acme", owner)
	assert.Equal(t, "data", name)
}

func TestErrorClassification(t *testing.T) {
	conflict := errors.Errorf("creating: %w", remote.ErrConflict)
	assert.True(t, remote.IsConflict(conflict))
	assert.False(t, remote.IsNotFound(conflict))

	notFound := errors.Errorf("getting: %w", remote.ErrNotFound)
	assert.True(t, remote.IsNotFound(notFound))

	auth := remote.NewAuthError(errors.New("token expired"))
	assert.True(t, remote.IsAuth(errors.Errorf("wrapped: %w", auth)))
	assert.Equal(t, "authentication failed: token expired", auth.Error())
}

func TestResolveFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/root/keep.txt", []byte("k"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/root/skip.log", []byte("s"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/root/sub/deep.txt", []byte("d"), 0o644))

	files, err := remote.ResolveFiles(fs, remote.UploadRequest{LocalPath: "/root", IgnorePatterns: []string{"*.log"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.txt", "sub/deep.txt"}, files)

	files, err = remote.ResolveFiles(fs, remote.UploadRequest{LocalPath: "/root", Files: []string{`sub\deep.txt`, "keep.txt"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.txt", "sub/deep.txt"}, files, "explicit files are normalized and sorted")

	_, err = remote.ResolveFiles(fs, remote.UploadRequest{LocalPath: "/root", IgnorePatterns: []string{"[bad"}})
	var cfgErr *filter.ConfigError
	require.True(t, errors.As(err, &cfgErr))
}

func TestWalkFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("k"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "deep.txt"), []byte("d"), 0o644))
	require.NoError(t, os.Symlink(filepath.Join(dir, "keep.txt"), filepath.Join(dir, "link.txt")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "sub"), filepath.Join(dir, "linkdir")))

	fs := afero.NewOsFs()

	files, err := remote.WalkFiles(fs, dir, "", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.txt", "sub/deep.txt"}, files, "symlinks are not listed")

	set := filter.MustCompile("data/sub/**")
	files, err = remote.WalkFiles(fs, dir, "data", set)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.txt"}, files, "patterns see the prefix")

	files, err = remote.WalkFiles(fs, dir, "", set)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.txt", "sub/deep.txt"}, files, "results stay relative to root")

	_, err = remote.WalkFiles(fs, filepath.Join(dir, "missing"), "", nil)
	assert.Error(t, err)
}

func TestUploadRequestHelpers(t *testing.T) {
	req := remote.UploadRequest{DestPath: "data/train"}
	assert.Equal(t, "data/train/a/b.txt", req.RemotePath(`a\b.txt`))
	assert.Equal(t, "Upload data/train with treepush", req.Message())
	assert.Equal(t, remote.DefaultWorkers, req.EffectiveWorkers())

	root := remote.UploadRequest{Workers: 7, CommitMessage: "custom"}
	assert.Equal(t, "a.txt", root.RemotePath("a.txt"))
	assert.Equal(t, "custom", root.Message())
	assert.Equal(t, 7, root.EffectiveWorkers())
}
