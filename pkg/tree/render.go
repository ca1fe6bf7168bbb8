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

package tree

import (
	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
)

// RenderOptions controls the display form of a tree
type RenderOptions struct {
	// MaxDepth limits how many levels below the root are shown; 0 shows all
	MaxDepth int
	// RootLabel replaces the root node's name
	RootLabel string
}

// Label returns the display label of a node
func Label(n *Node) string {
	if n.IsLeaf() {
		return "📄 " + n.Name
	}
	return "📁 " + n.Name + "/"
}

// 🎨 ToPterm converts n into a pterm tree, cutting directories at MaxDepth
func ToPterm(n *Node, opts RenderOptions) pterm.TreeNode {
	root := pterm.TreeNode{Text: Label(n)}
	if opts.RootLabel != "" {
		root.Text = opts.RootLabel
	}
	root.Children = children(n, 1, opts.MaxDepth)
	return root
}

func children(n *Node, depth, maxDepth int) []pterm.TreeNode {
	if n.IsLeaf() {
		return nil
	}
	out := make([]pterm.TreeNode, 0, len(n.Children))
	for _, c := range n.Sorted() {
		tn := pterm.TreeNode{Text: Label(c)}
		if !c.IsLeaf() {
			if maxDepth > 0 && depth >= maxDepth {
				if len(c.Children) > 0 {
					tn.Text += " …"
				}
			} else {
				tn.Children = children(c, depth+1, maxDepth)
			}
		}
		out = append(out, tn)
	}
	return out
}

// Render returns the tree as text
func Render(n *Node, opts RenderOptions) (string, error) {
	if n == nil {
		return "", errors.New("nil tree")
	}
	out, err := pterm.DefaultTree.WithRoot(ToPterm(n, opts)).Srender()
	if err != nil {
		return "", errors.Errorf("rendering tree: %w", err)
	}
	return out, nil
}
