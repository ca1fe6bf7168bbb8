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

package hub

import (
	"bufio"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/treepush/pkg/remote"
)

func newTestHub(t *testing.T, handler http.HandlerFunc, opts ...Option) *Gateway {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	opts = append([]Option{WithEndpoint(srv.URL), WithHTTPClient(srv.Client())}, opts...)
	return New(opts...)
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{name: "ok", status: 200, body: `{"name":"walteh"}`},
		{name: "unauthorized", status: 401, body: `{"error":"Invalid credentials in Authorization header"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newTestHub(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/whoami-v2", r.URL.Path)
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			err := gw.Authenticate(context.Background(), "tok")
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, remote.IsAuth(err), "error should classify as auth")
			assert.Contains(t, err.Error(), "Invalid credentials in Authorization header")
		})
	}
}

func TestRepositoryExists(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		errorCode string
		want      bool
		wantErr   bool
	}{
		{name: "found", status: 200, want: true},
		{name: "not_found", status: 404, want: false},
		{name: "private_hidden", status: 401, errorCode: "RepoNotFound", want: false},
		{name: "server_error", status: 500, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newTestHub(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/datasets/acme/data", r.URL.Path)
				if tt.errorCode != "" {
					w.Header().Set("X-Error-Code", tt.errorCode)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{}`))
			})

			got, err := gw.RepositoryExists(context.Background(), "acme/data", remote.KindDataset, "tok")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateRepository(t *testing.T) {
	tests := []struct {
		name         string
		kind         remote.Kind
		visibility   remote.Visibility
		status       int
		wantPayload  createPayload
		wantConflict bool
	}{
		{
			name:        "dataset_private",
			kind:        remote.KindDataset,
			visibility:  remote.Private,
			status:      200,
			wantPayload: createPayload{Name: "data", Organization: "acme", Type: "dataset", Private: true},
		},
		{
			name:        "model_public",
			kind:        remote.KindModel,
			visibility:  remote.Public,
			status:      200,
			wantPayload: createPayload{Name: "data", Organization: "acme"},
		},
		{
			name:        "space_static",
			kind:        remote.KindSpace,
			visibility:  remote.Public,
			status:      200,
			wantPayload: createPayload{Name: "data", Organization: "acme", Type: "space", SDK: "static"},
		},
		{
			name:         "conflict",
			kind:         remote.KindDataset,
			visibility:   remote.Public,
			status:       409,
			wantPayload:  createPayload{Name: "data", Organization: "acme", Type: "dataset"},
			wantConflict: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newTestHub(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/repos/create", r.URL.Path)

				var got createPayload
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, tt.wantPayload, got)

				w.WriteHeader(tt.status)
				if tt.status == 409 {
					_, _ = w.Write([]byte(`{"error":"You already created this dataset repo"}`))
				}
			})

			err := gw.CreateRepository(context.Background(), remote.CreateRequest{
				RepoID:     "acme/data",
				Kind:       tt.kind,
				Visibility: tt.visibility,
				Token:      "tok",
			})
			if tt.wantConflict {
				require.Error(t, err)
				assert.True(t, remote.IsConflict(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestListRemoteFilesPaginates(t *testing.T) {
	var srvURL string
	gw := newTestHub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/models/acme/m/tree/main", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("recursive"))
		if r.URL.Query().Get("cursor") == "" {
			w.Header().Set("Link", `<`+srvURL+`/api/models/acme/m/tree/main?recursive=true&cursor=2>; rel="next"`)
			_, _ = w.Write([]byte(`[{"type":"file","path":"README.md"},{"type":"directory","path":"weights"}]`))
			return
		}
		_, _ = w.Write([]byte(`[{"type":"file","path":"weights/a.bin"}]`))
	})
	srvURL = gw.endpoint

	files, err := gw.ListRemoteFiles(context.Background(), "acme/m", remote.KindModel, "tok")
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "weights/a.bin"}, files)
}

func TestListRemoteFilesNotFound(t *testing.T) {
	gw := newTestHub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
	})

	_, err := gw.ListRemoteFiles(context.Background(), "acme/m", remote.KindModel, "tok")
	require.Error(t, err)
	assert.True(t, remote.IsNotFound(err))
}

func TestUploadDirectoryBatches(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/a.txt", []byte("a"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/src/b.txt", []byte("b"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/src/c/d.txt", []byte("d"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/src/ignored.tmp", []byte("x"), 0o644))

	var mu sync.Mutex
	var commits int
	uploaded := map[string]string{}
	var summaries []string

	gw := newTestHub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/datasets/acme/data/commit/main", r.URL.Path)
		assert.Equal(t, "application/x-ndjson", r.Header.Get("Content-Type"))

		mu.Lock()
		defer mu.Unlock()
		commits++

		sc := bufio.NewScanner(r.Body)
		sc.Buffer(make([]byte, 1<<20), 1<<20)
		first := true
		for sc.Scan() {
			var line struct {
				Key   string          `json:"key"`
				Value json.RawMessage `json:"value"`
			}
			require.NoError(t, json.Unmarshal(sc.Bytes(), &line))
			if first {
				assert.Equal(t, "header", line.Key)
				var h commitHeader
				require.NoError(t, json.Unmarshal(line.Value, &h))
				summaries = append(summaries, h.Summary)
				first = false
				continue
			}
			assert.Equal(t, "file", line.Key)
			var f commitFile
			require.NoError(t, json.Unmarshal(line.Value, &f))
			raw, err := base64.StdEncoding.DecodeString(f.Content)
			require.NoError(t, err)
			uploaded[f.Path] = string(raw)
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	}, WithFs(fs), WithBatchSize(2))

	err := gw.UploadDirectory(context.Background(), remote.UploadRequest{
		LocalPath:      "/src",
		RepoID:         "acme/data",
		Kind:           remote.KindDataset,
		DestPath:       "train",
		IgnorePatterns: []string{"*.tmp"},
		Token:          "tok",
		Workers:        3,
		CommitMessage:  "nightly",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, commits, "three files with a batch size of two need two commits")
	assert.Equal(t, map[string]string{
		"train/a.txt":   "a",
		"train/b.txt":   "b",
		"train/c/d.txt": "d",
	}, uploaded)
	assert.Equal(t, []string{"nightly", "nightly"}, summaries)
}

func TestUploadDirectoryExplicitFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/keep.txt", []byte("k"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/src/other.txt", []byte("o"), 0o644))

	var paths []string
	gw := newTestHub(t, func(w http.ResponseWriter, r *http.Request) {
		sc := bufio.NewScanner(r.Body)
		for sc.Scan() {
			var line struct {
				Key   string     `json:"key"`
				Value commitFile `json:"value"`
			}
			require.NoError(t, json.Unmarshal(sc.Bytes(), &line))
			if line.Key == "file" {
				paths = append(paths, line.Value.Path)
			}
		}
	}, WithFs(fs))

	err := gw.UploadDirectory(context.Background(), remote.UploadRequest{
		LocalPath: "/src",
		RepoID:    "acme/data",
		Kind:      remote.KindModel,
		Files:     []string{"keep.txt"},
		Token:     "tok",
	})
	require.NoError(t, err)
	sort.Strings(paths)
	assert.Equal(t, []string{"keep.txt"}, paths)
}

func TestNextLink(t *testing.T) {
	assert.Equal(t, "https://h/x?c=2", nextLink(`<https://h/x?c=2>; rel="next"`))
	assert.Equal(t, "https://h/n", nextLink(`<https://h/p>; rel="prev", <https://h/n>; rel="next"`))
	assert.Equal(t, "", nextLink(""))
}
