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

package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/treepush/cmd/treepush/commands"
	"github.com/walteh/treepush/cmd/treepush/opts"
	"github.com/walteh/treepush/pkg/config"
	"github.com/walteh/treepush/pkg/log"
	"github.com/walteh/treepush/pkg/metrics"
	"gitlab.com/tozd/go/errors"
)

type rootFlags struct {
	configFile string
	debug      bool
}

// newRootCmd builds the command tree around a shared RootOpts
func newRootCmd() *cobra.Command {
	ro := &opts.RootOpts{
		Env: opts.NewEnv(),
		Fs:  afero.NewOsFs(),
	}
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "treepush",
		Short: "Push a local directory tree to a remote repository",
		Long: `treepush uploads a local directory to a dataset, model or space repository.
It will:
1. Validate the job and apply ignore patterns
2. Authenticate and create the repository if it is missing
3. Upload the tree whole or one first level folder at a time
4. Report a status for every unit`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), flags.debug, cmd.ErrOrStderr())
			cmd.SetContext(ctx)
			return loadRootOpts(ctx, ro, flags, cmd.OutOrStdout())
		},
	}

	addRootFlags(cmd, flags)

	cmd.AddCommand(
		commands.NewPushCmd(ro),
		commands.NewTreeCmd(ro),
		commands.NewRemoteTreeCmd(ro),
		commands.NewServeCmd(ro),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file path, defaults to .treepush.{yaml,yml,hcl,json} in the working directory")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// loadRootOpts fills in the config, user logger and metrics. A config file
// that was named explicitly must load; a discovered one is optional.
func loadRootOpts(ctx context.Context, ro *opts.RootOpts, flags *rootFlags, console io.Writer) error {
	path := flags.configFile
	if path == "" {
		path = config.Find(".")
	}

	if path != "" {
		cfg, err := config.LoadConfig(ctx, path)
		if err != nil {
			return errors.Errorf("loading config: %w", err)
		}
		ro.Config = cfg
	}

	ro.Logger = log.New(console, *zerolog.Ctx(ctx), nil)
	if ro.Metrics == nil {
		ro.Metrics = metrics.New(nil)
	}
	return nil
}

// setupLogging installs a zerolog logger on ctx
func setupLogging(ctx context.Context, debug bool, w io.Writer) context.Context {
	level := zerolog.ErrorLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}
