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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/treepush/cmd/treepush/opts"
	"github.com/walteh/treepush/pkg/remote"
	"github.com/walteh/treepush/pkg/remote/memory"
	"github.com/walteh/treepush/pkg/tree"
	"github.com/walteh/treepush/pkg/upload"
	"gitlab.com/tozd/go/errors"
)

// NewPushCmd creates the push command
func NewPushCmd(ro *opts.RootOpts) *cobra.Command {
	flags := &opts.JobFlags{}
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "push [source]",
		Short: "Upload a local directory to a repository",
		Long: `Push uploads a local directory to a remote repository.
It will:
1. Merge flags, the config file and the environment into a job
2. Create the repository when it does not exist
3. Upload the tree, whole or per first level folder
4. Stop at the next folder boundary on Ctrl-C`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "push").Logger().WithContext(cmd.Context())

			if len(args) == 1 {
				flags.Source = args[0]
			}

			job, err := ro.Job(flags, cmd.Flags())
			if err != nil {
				return err
			}

			name := ro.GatewayName(flags.Gateway)
			if dryRun {
				name = opts.DryRunGateway
				if job.Token == "" {
					job.Token = "dry-run"
				}
			}

			gw, err := ro.OpenGateway(ctx, name, ro.Endpoint(flags.Endpoint))
			if err != nil {
				return err
			}

			return runPush(ctx, ro, gw, job, cmd.OutOrStdout())
		},
	}

	flags.AddFlags(cmd.Flags())
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "run against an in-memory gateway and print what would be uploaded")

	return cmd
}

func runPush(ctx context.Context, ro *opts.RootOpts, gw remote.Gateway, job upload.Job, out io.Writer) error {
	svc := upload.NewService(ctx, gw,
		upload.WithFs(ro.Fs),
		upload.WithServiceLogger(ro.Logger),
		upload.WithServiceMetrics(ro.Metrics),
	)
	defer svc.Close()

	ack := svc.Submit(job)
	if !ack.Accepted() {
		return errors.Errorf("push %s", ack.String())
	}

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-sigCtx.Done():
			svc.RequestCancel()
		case <-done:
		}
	}()

	outcome, err := svc.Wait(context.WithoutCancel(ctx), ack.JobID)
	if err != nil {
		return err
	}

	if mem, ok := gw.(*memory.Gateway); ok {
		if err := renderPlan(out, job.RepositoryID, mem); err != nil {
			return err
		}
	}

	switch outcome.State {
	case upload.StateCompleted:
		return nil
	case upload.StateCancelled:
		return errors.New("upload cancelled")
	default:
		return errors.Errorf("upload failed: %w", outcome.Err())
	}
}

// renderPlan prints the keys a dry run would have written
func renderPlan(out io.Writer, repoID string, mem *memory.Gateway) error {
	keys := []string{}
	for _, c := range mem.Calls() {
		if c.Method != "UploadDirectory" {
			continue
		}
		for _, f := range c.Files {
			keys = append(keys, path.Join(c.DestPath, f))
		}
	}

	rendered, err := tree.Render(tree.BuildRemote(keys), tree.RenderOptions{RootLabel: repoID + " (dry run)"})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, rendered)
	fmt.Fprintf(out, "%d files would be uploaded\n", len(keys))
	return nil
}
