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
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/walteh/treepush/cmd/treepush/opts"
	"github.com/walteh/treepush/pkg/filter"
	"github.com/walteh/treepush/pkg/remote"
	"github.com/walteh/treepush/pkg/tree"
	"github.com/walteh/treepush/pkg/upload"
	"gitlab.com/tozd/go/errors"
)

// NewTreeCmd creates the tree command
func NewTreeCmd(ro *opts.RootOpts) *cobra.Command {
	var (
		depth    int
		filtered bool
		ignore   []string
		presets  []string
	)

	cmd := &cobra.Command{
		Use:   "tree [dir]",
		Short: "Show the local directory tree",
		Long: `Tree prints a local directory as a tree. With --filtered, or any
--ignore/--preset, only the files a push would send are shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := ro.Job(&opts.JobFlags{}, nil)
			if err != nil {
				return err
			}
			dir := job.SourceDirectory
			if len(args) == 1 {
				dir = args[0]
			}

			var node *tree.Node
			if filtered || cmd.Flags().Changed("ignore") || cmd.Flags().Changed("preset") {
				base := job.IgnorePatterns
				if cmd.Flags().Changed("ignore") {
					base = ignore
				}
				if base == nil {
					base = filter.DefaultPatterns
				}
				patterns, err := filter.Resolve(base, append(job.Presets, presets...))
				if err != nil {
					return err
				}
				set, err := filter.Compile(patterns)
				if err != nil {
					return err
				}
				node, err = tree.BuildLocalFiltered(ro.Fs, dir, set)
				if err != nil {
					return err
				}
			} else {
				node, err = tree.BuildLocal(ro.Fs, dir)
				if err != nil {
					return err
				}
			}

			return printTree(cmd.OutOrStdout(), node, tree.RenderOptions{MaxDepth: depth, RootLabel: dir})
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "L", 0, "levels to show, 0 for all")
	cmd.Flags().BoolVarP(&filtered, "filtered", "f", false, "apply the configured ignore patterns")
	cmd.Flags().StringSliceVarP(&ignore, "ignore", "i", nil, "ignore pattern, repeatable")
	cmd.Flags().StringSliceVar(&presets, "preset", nil, "named ignore preset, repeatable")

	return cmd
}

// NewRemoteTreeCmd creates the remote-tree command
func NewRemoteTreeCmd(ro *opts.RootOpts) *cobra.Command {
	var (
		depth    int
		kind     string
		token    string
		gateway  string
		endpoint string
	)

	cmd := &cobra.Command{
		Use:   "remote-tree [repo]",
		Short: "Show the files of a remote repository as a tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			job, err := ro.Job(&opts.JobFlags{}, nil)
			if err != nil {
				return err
			}
			repoID := job.RepositoryID
			if len(args) == 1 {
				repoID = args[0]
			}
			k := job.Kind
			if cmd.Flags().Changed("kind") {
				if k, err = remote.ParseKind(kind); err != nil {
					return errors.Errorf("--kind: %w", err)
				}
			}

			gw, err := ro.OpenGateway(ctx, ro.GatewayName(gateway), ro.Endpoint(endpoint))
			if err != nil {
				return err
			}

			svc := upload.NewService(ctx, gw, upload.WithFs(ro.Fs), upload.WithServiceLogger(ro.Logger))
			defer svc.Close()

			node, err := svc.RemoteTree(ctx, repoID, k, ro.Token(token))
			if err != nil {
				return err
			}
			return printTree(cmd.OutOrStdout(), node, tree.RenderOptions{MaxDepth: depth})
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "L", 0, "levels to show, 0 for all")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "repository kind: dataset, model or space")
	cmd.Flags().StringVar(&token, "token", "", "access token, defaults to $TREEPUSH_TOKEN or $HF_TOKEN")
	cmd.Flags().StringVar(&gateway, "gateway", "", "remote gateway")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "override the gateway base URL")

	return cmd
}

func printTree(out io.Writer, node *tree.Node, ro tree.RenderOptions) error {
	rendered, err := tree.Render(node, ro)
	if err != nil {
		return err
	}
	dirs, files := node.Count()
	fmt.Fprintln(out, rendered)
	fmt.Fprintf(out, "%d directories, %d files\n", dirs, files)
	return nil
}
