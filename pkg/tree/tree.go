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

// Package tree builds directory hierarchies from a local filesystem or from a
// flat list of remote keys. Trees are built fresh on every call.
package tree

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/walteh/treepush/pkg/filter"
	"gitlab.com/tozd/go/errors"
)

// 🌳 Node is a directory (non-nil Children) or a file (nil Children)
type Node struct {
	Name     string           `json:"name"`
	Children map[string]*Node `json:"children,omitempty"`
}

// NewDir creates an empty directory node
func NewDir(name string) *Node {
	return &Node{Name: name, Children: map[string]*Node{}}
}

// NewFile creates a leaf node
func NewFile(name string) *Node {
	return &Node{Name: name}
}

// IsLeaf reports whether n is a file
func (n *Node) IsLeaf() bool {
	return n.Children == nil
}

// Sorted returns the children ordered by name
func (n *Node) Sorted() []*Node {
	out := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Paths flattens the tree into sorted slash separated file paths relative to n
func (n *Node) Paths() []string {
	out := []string{}
	var walk func(prefix string, node *Node)
	walk = func(prefix string, node *Node) {
		for _, c := range node.Sorted() {
			p := c.Name
			if prefix != "" {
				p = prefix + "/" + c.Name
			}
			if c.IsLeaf() {
				out = append(out, p)
				continue
			}
			walk(p, c)
		}
	}
	if !n.IsLeaf() {
		walk("", n)
	}
	sort.Strings(out)
	return out
}

// Count returns the number of directories and files below n
func (n *Node) Count() (dirs, files int) {
	for _, c := range n.Children {
		if c.IsLeaf() {
			files++
			continue
		}
		d, f := c.Count()
		dirs += d + 1
		files += f
	}
	return dirs, files
}

// 📂 BuildLocal walks root depth first. A missing root is an error; an empty
// directory yields a node with zero children.
func BuildLocal(fs afero.Fs, root string) (*Node, error) {
	return BuildLocalFiltered(fs, root, nil)
}

// BuildLocalFiltered is BuildLocal with files and directories excluded by set
// left out. Directories that end up empty are kept.
func BuildLocalFiltered(fs afero.Fs, root string, set *filter.Set) (*Node, error) {
	info, err := fs.Stat(root)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%s is not a directory", root)
	}

	node := NewDir(filepath.Base(filepath.Clean(root)))
	if err := fill(fs, root, "", node, set); err != nil {
		return nil, err
	}
	return node, nil
}

func fill(fs afero.Fs, dir, rel string, node *Node, set *filter.Set) error {
	// afero.ReadDir returns entries sorted by name
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return errors.Errorf("listing %s: %w", dir, err)
	}

	for _, e := range entries {
		childRel := e.Name()
		if rel != "" {
			childRel = rel + "/" + e.Name()
		}
		if !set.Included(childRel) {
			continue
		}

		if !e.IsDir() {
			node.Children[e.Name()] = NewFile(e.Name())
			continue
		}

		child := NewDir(e.Name())
		if err := fill(fs, filepath.Join(dir, e.Name()), childRel, child, set); err != nil {
			return err
		}
		node.Children[e.Name()] = child
	}
	return nil
}

// 🌐 BuildRemote rebuilds a hierarchy from slash separated keys. Empty
// segments and duplicate keys collapse. When a key names both a file and a
// directory prefix, the directory wins.
func BuildRemote(keys []string) *Node {
	root := NewDir("")
	for _, k := range keys {
		segs := splitKey(k)
		if len(segs) == 0 {
			continue
		}

		cur := root
		for i, s := range segs {
			last := i == len(segs)-1
			child, ok := cur.Children[s]
			switch {
			case !ok && last:
				cur.Children[s] = NewFile(s)
			case !ok:
				child = NewDir(s)
				cur.Children[s] = child
			case !last && child.IsLeaf():
				child.Children = map[string]*Node{}
			}
			if !last {
				cur = cur.Children[s]
			}
		}
	}
	return root
}

// splitKey breaks a remote key into segments. Keys are names, not paths, so
// "." and ".." are kept as written.
func splitKey(k string) []string {
	k = strings.ReplaceAll(k, `\`, "/")
	out := []string{}
	for _, s := range strings.Split(k, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
