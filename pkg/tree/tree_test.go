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

package tree_test

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/treepush/pkg/filter"
	"github.com/walteh/treepush/pkg/tree"
)

func seed(t *testing.T, fs afero.Fs, files ...string) {
	t.Helper()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte(f), 0o644))
	}
}

func TestBuildLocal(t *testing.T) {
	fs := afero.NewMemMapFs()
	seed(t, fs,
		"/data/b.txt",
		"/data/a/one.csv",
		"/data/a/deep/two.csv",
		"/data/c/.DS_Store",
	)
	require.NoError(t, fs.MkdirAll("/data/empty", 0o755))

	node, err := tree.BuildLocal(fs, "/data")
	require.NoError(t, err)

	assert.Equal(t, "data", node.Name)
	assert.False(t, node.IsLeaf())
	assert.Equal(t, []string{
		"a/deep/two.csv",
		"a/one.csv",
		"b.txt",
		"c/.DS_Store",
	}, node.Paths())

	empty := node.Children["empty"]
	require.NotNil(t, empty)
	assert.False(t, empty.IsLeaf(), "empty directories stay directories")
	assert.Empty(t, empty.Children)

	dirs, files := node.Count()
	assert.Equal(t, 4, dirs)
	assert.Equal(t, 4, files)
}

func TestBuildLocalDeterministic(t *testing.T) {
	fs := afero.NewMemMapFs()
	seed(t, fs, "/d/z.txt", "/d/m/n.txt", "/d/a.txt", "/d/m/a.txt")

	first, err := tree.BuildLocal(fs, "/d")
	require.NoError(t, err)
	second, err := tree.BuildLocal(fs, "/d")
	require.NoError(t, err)

	assert.Equal(t, first, second, "two builds without changes should be identical")

	r1, err := tree.Render(first, tree.RenderOptions{})
	require.NoError(t, err)
	r2, err := tree.Render(second, tree.RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, r1, r2, "rendering should be stable")
}

func TestBuildLocalErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	seed(t, fs, "/file.txt")

	_, err := tree.BuildLocal(fs, "/missing")
	assert.Error(t, err, "missing root should error")

	_, err = tree.BuildLocal(fs, "/file.txt")
	assert.Error(t, err, "file root should error")
}

func TestBuildLocalEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/empty", 0o755))

	node, err := tree.BuildLocal(fs, "/empty")
	require.NoError(t, err)
	assert.Empty(t, node.Children)
	assert.Empty(t, node.Paths())
}

func TestBuildLocalFiltered(t *testing.T) {
	fs := afero.NewMemMapFs()
	seed(t, fs, "/p/main.py", "/p/__pycache__/main.pyc", "/p/logs/run.log", "/p/logs/keep.txt")

	node, err := tree.BuildLocalFiltered(fs, "/p", filter.MustCompile("**/__pycache__/**", "*.log"))
	require.NoError(t, err)
	assert.Equal(t, []string{"logs/keep.txt", "main.py"}, node.Paths())
}

func TestBuildRemoteRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want []string
	}{
		{
			name: "plain",
			keys: []string{"README.md", "data/train/a.parquet", "data/test/b.parquet", ".gitattributes"},
			want: []string{".gitattributes", "README.md", "data/test/b.parquet", "data/train/a.parquet"},
		},
		{
			name: "duplicates_and_empty_segments",
			keys: []string{"a//b.txt", "a/b.txt", "/c.txt", "c.txt", ""},
			want: []string{"a/b.txt", "c.txt"},
		},
		{
			name: "dot_segments_kept",
			keys: []string{"a/../b.txt", "b.txt", "./c.txt"},
			want: []string{"./c.txt", "a/../b.txt", "b.txt"},
		},
		{
			name: "empty",
			keys: nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := tree.BuildRemote(tt.keys)
			assert.Equal(t, tt.want, node.Paths())
		})
	}
}

func TestBuildRemoteDirectoryWins(t *testing.T) {
	node := tree.BuildRemote([]string{"a", "a/b"})
	assert.Equal(t, []string{"a/b"}, node.Paths())

	node = tree.BuildRemote([]string{"a/b", "a"})
	assert.Equal(t, []string{"a/b"}, node.Paths())
}

func TestRender(t *testing.T) {
	node := tree.BuildRemote([]string{"top.txt", "dir/mid.txt", "dir/sub/low.txt"})

	full, err := tree.Render(node, tree.RenderOptions{RootLabel: "acme/data"})
	require.NoError(t, err)
	for _, want := range []string{"acme/data", "📄 top.txt", "📁 dir/", "📄 mid.txt", "📁 sub/", "📄 low.txt"} {
		assert.Contains(t, full, want)
	}

	shallow, err := tree.Render(node, tree.RenderOptions{MaxDepth: 1})
	require.NoError(t, err)
	assert.Contains(t, shallow, "📁 dir/ …")
	assert.Contains(t, shallow, "📄 top.txt")
	assert.NotContains(t, shallow, "mid.txt", "depth limit hides deeper entries")

	assert.Equal(t, []string{"dir/mid.txt", "dir/sub/low.txt", "top.txt"}, node.Paths(), "rendering never truncates data")

	_, err = tree.Render(nil, tree.RenderOptions{})
	assert.Error(t, err)
}

func TestToPtermOrder(t *testing.T) {
	node := tree.BuildRemote([]string{"b", "a", "c/d"})
	pt := tree.ToPterm(node, tree.RenderOptions{})
	labels := []string{}
	for _, c := range pt.Children {
		labels = append(labels, strings.TrimSpace(c.Text))
	}
	assert.Equal(t, []string{"📄 a", "📄 b", "📁 c/"}, labels)
}
