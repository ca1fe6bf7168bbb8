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

package memory_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/treepush/pkg/remote"
	"github.com/walteh/treepush/pkg/remote/memory"
	"gitlab.com/tozd/go/errors"
)

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/a.txt", []byte("a"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/src/b/c.txt", []byte("c"), 0o644))

	gw := memory.New(memory.WithFs(fs), memory.WithToken("tok"))

	require.NoError(t, gw.Authenticate(ctx, "tok"))
	assert.True(t, remote.IsAuth(gw.Authenticate(ctx, "other")), "wrong token should be rejected")

	exists, err := gw.RepositoryExists(ctx, "acme/data", remote.KindDataset, "tok")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, gw.CreateRepository(ctx, remote.CreateRequest{RepoID: "acme/data", Kind: remote.KindDataset, Visibility: remote.Private}))
	err = gw.CreateRepository(ctx, remote.CreateRequest{RepoID: "acme/data", Kind: remote.KindDataset})
	assert.True(t, remote.IsConflict(err), "second create should conflict")

	vis, ok := gw.Visibility("acme/data", remote.KindDataset)
	require.True(t, ok)
	assert.Equal(t, remote.Private, vis)

	require.NoError(t, gw.UploadDirectory(ctx, remote.UploadRequest{LocalPath: "/src", RepoID: "acme/data", Kind: remote.KindDataset, DestPath: "x"}))
	require.NoError(t, gw.UploadDirectory(ctx, remote.UploadRequest{LocalPath: "/src", RepoID: "acme/data", Kind: remote.KindDataset, DestPath: "x"}))

	files, err := gw.ListRemoteFiles(ctx, "acme/data", remote.KindDataset, "tok")
	require.NoError(t, err)
	assert.Equal(t, []string{"x/a.txt", "x/b/c.txt"}, files, "re-uploading overwrites rather than duplicates")

	assert.Equal(t, 2, gw.CallCount("UploadDirectory"))
	calls := gw.Calls()
	require.NotEmpty(t, calls)
	assert.Equal(t, "Authenticate", calls[0].Method)

	gw.Reset()
	assert.Empty(t, gw.Calls())
}

func TestFailureHooks(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	gw := memory.New(
		memory.WithAuthError(boom),
		memory.WithExistsError(boom),
		memory.WithCreateError(boom),
		memory.WithListError(boom),
		memory.WithRepository("acme/data", remote.KindModel),
		memory.WithUploadHook(func(ctx context.Context, req remote.UploadRequest) error {
			return boom
		}),
	)

	assert.ErrorIs(t, gw.Authenticate(ctx, "tok"), boom)
	_, err := gw.RepositoryExists(ctx, "acme/data", remote.KindModel, "tok")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, gw.CreateRepository(ctx, remote.CreateRequest{RepoID: "acme/data"}), boom)
	_, err = gw.ListRemoteFiles(ctx, "acme/data", remote.KindModel, "tok")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, gw.UploadDirectory(ctx, remote.UploadRequest{RepoID: "acme/data", Kind: remote.KindModel, Files: []string{"a"}}), boom)
}

func TestUploadExplicitFiles(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/a.txt", []byte("a"), 0o644))

	gw := memory.New(memory.WithFs(fs), memory.WithRepository("acme/data", remote.KindDataset))
	req := remote.UploadRequest{LocalPath: "/src", RepoID: "acme/data", Kind: remote.KindDataset}

	req.Files = []string{"a.txt"}
	require.NoError(t, gw.UploadDirectory(ctx, req))

	req.Files = []string{"a.txt", "gone.txt"}
	err := gw.UploadDirectory(ctx, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gone.txt")

	files, err := gw.ListRemoteFiles(ctx, "acme/data", remote.KindDataset, "tok")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, files, "a failed upload adds nothing")
}

func TestRegistered(t *testing.T) {
	gw, err := remote.Open(context.Background(), memory.Name, remote.Options{Fs: afero.NewMemMapFs()})
	require.NoError(t, err)
	assert.IsType(t, &memory.Gateway{}, gw)
}
