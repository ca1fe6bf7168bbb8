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

package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/treepush/cmd/treepush/opts"
	"github.com/walteh/treepush/pkg/log"
	"github.com/walteh/treepush/pkg/remote"
	"github.com/walteh/treepush/pkg/remote/memory"
	"github.com/walteh/treepush/pkg/upload"
	"gitlab.com/tozd/go/errors"
)

func testRootOpts(t *testing.T, fs afero.Fs) *opts.RootOpts {
	t.Helper()
	return &opts.RootOpts{
		Env:    opts.NewEnv(),
		Fs:     fs,
		Logger: log.New(nil, zerolog.New(zerolog.NewTestWriter(t)), nil),
	}
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestPushDryRun(t *testing.T) {
	fs := seedFs(t)
	require.NoError(t, afero.WriteFile(fs, "/data/a/.DS_Store", []byte("x"), 0o644))
	ro := testRootOpts(t, fs)

	out, err := execute(t, NewPushCmd(ro), "/data", "--repo", "acme/data", "--dry-run", "-g", "per-first-level-folder", "-t", "raw")
	require.NoError(t, err)

	assert.Contains(t, out, "acme/data (dry run)")
	assert.Contains(t, out, "one.txt")
	assert.Contains(t, out, "root.txt")
	assert.NotContains(t, out, ".DS_Store", "default patterns apply")
	assert.Contains(t, out, "3 files would be uploaded")
}

func TestPushFlagErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errContains string
	}{
		{
			name:        "bad_kind",
			args:        []string{"/data", "--repo", "acme/data", "--dry-run", "--kind", "bucket"},
			errContains: "--kind",
		},
		{
			name:        "bad_granularity",
			args:        []string{"/data", "--repo", "acme/data", "--dry-run", "-g", "per-file"},
			errContains: "--granularity",
		},
		{
			name:        "missing_repo",
			args:        []string{"/data", "--dry-run"},
			errContains: "rejected: repository_id",
		},
		{
			name:        "unknown_gateway",
			args:        []string{"/data", "--repo", "acme/data", "--gateway", "ftp", "--token", "tok"},
			errContains: "ftp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DEFAULT_REPO", "")
			ro := testRootOpts(t, seedFs(t))
			_, err := execute(t, NewPushCmd(ro), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestRunPushOutcomes(t *testing.T) {
	tests := []struct {
		name        string
		gateway     func(fs afero.Fs) remote.Gateway
		errContains string
	}{
		{
			name: "completed",
			gateway: func(fs afero.Fs) remote.Gateway {
				return memory.New(memory.WithFs(fs))
			},
		},
		{
			name: "auth_failure",
			gateway: func(fs afero.Fs) remote.Gateway {
				return memory.New(memory.WithFs(fs), memory.WithAuthError(errors.New("bad token")))
			},
			errContains: "upload failed",
		},
		{
			name: "unit_failure",
			gateway: func(fs afero.Fs) remote.Gateway {
				return memory.New(memory.WithFs(fs), memory.WithUploadHook(func(ctx context.Context, req remote.UploadRequest) error {
					return errors.New("quota exceeded")
				}))
			},
			errContains: "quota exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := seedFs(t)
			ro := testRootOpts(t, fs)
			job := upload.Job{
				SourceDirectory: "/data",
				RepositoryID:    "acme/data",
				Kind:            remote.KindDataset,
				Visibility:      remote.Public,
				Granularity:     upload.WholeTree,
				Token:           "tok",
			}

			out := &bytes.Buffer{}
			err := runPush(context.Background(), ro, tt.gateway(fs), job, out)
			if tt.errContains == "" {
				require.NoError(t, err)
				assert.Contains(t, out.String(), "files would be uploaded", "memory gateways print the plan")
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestTreeCmd(t *testing.T) {
	fs := seedFs(t)
	require.NoError(t, afero.WriteFile(fs, "/data/.git/HEAD", []byte("ref"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/data/a/cache.pyc", []byte("x"), 0o644))

	tests := []struct {
		name       string
		args       []string
		want       []string
		notWant    []string
		wantCounts string
	}{
		{
			name:       "everything",
			args:       []string{"/data"},
			want:       []string{"HEAD", "cache.pyc", "one.txt"},
			wantCounts: "3 directories, 5 files",
		},
		{
			name:       "filtered_defaults",
			args:       []string{"/data", "--filtered"},
			want:       []string{"cache.pyc", "one.txt"},
			notWant:    []string{"HEAD"},
			wantCounts: "directories, 4 files",
		},
		{
			name:       "preset",
			args:       []string{"/data", "--preset", "pyc"},
			notWant:    []string{"HEAD", "cache.pyc"},
			wantCounts: "directories, 3 files",
		},
		{
			name:       "depth",
			args:       []string{"/data", "-L", "1"},
			notWant:    []string{"one.txt"},
			wantCounts: "3 directories, 5 files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, NewTreeCmd(testRootOpts(t, fs)), tt.args...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, out, w)
			}
			assert.Contains(t, out, tt.wantCounts)
		})
	}

	_, err := execute(t, NewTreeCmd(testRootOpts(t, fs)), "/data", "--preset", "nope")
	require.Error(t, err)
}

func TestRemoteTreeCmd(t *testing.T) {
	ro := testRootOpts(t, afero.NewMemMapFs())

	_, err := execute(t, NewRemoteTreeCmd(ro), "acme/data", "--gateway", "memory", "--token", "tok")
	require.Error(t, err)
	assert.True(t, remote.IsNotFound(err), "fresh memory gateways hold no repositories: %v", err)

	_, err = execute(t, NewRemoteTreeCmd(ro), "acme/data", "--gateway", "memory", "--kind", "bucket")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--kind")
}
