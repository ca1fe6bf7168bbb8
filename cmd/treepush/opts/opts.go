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

package opts

import (
	"context"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/walteh/treepush/pkg/config"
	"github.com/walteh/treepush/pkg/log"
	"github.com/walteh/treepush/pkg/metrics"
	"github.com/walteh/treepush/pkg/remote"
	"github.com/walteh/treepush/pkg/upload"
	"gitlab.com/tozd/go/errors"
)

// 🌍 Environment keys bound by NewEnv
const (
	EnvToken      = "token"
	EnvRepo       = "default_repo"
	EnvLocalPath  = "default_local_path"
	EnvGateway    = "gateway"
	EnvEndpoint   = "endpoint"
	DryRunGateway = "memory"
)

// NewEnv binds the environment defaults. The token is read from
// TREEPUSH_TOKEN, then HF_TOKEN.
func NewEnv() *viper.Viper {
	v := viper.New()
	_ = v.BindEnv(EnvToken, "TREEPUSH_TOKEN", "HF_TOKEN")
	_ = v.BindEnv(EnvRepo, "DEFAULT_REPO")
	_ = v.BindEnv(EnvLocalPath, "DEFAULT_LOCAL_PATH")
	_ = v.BindEnv(EnvGateway, "TREEPUSH_GATEWAY")
	_ = v.BindEnv(EnvEndpoint, "TREEPUSH_ENDPOINT")
	return v
}

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config  *config.Config
	Env     *viper.Viper
	Logger  *log.Logger
	Fs      afero.Fs
	Metrics *metrics.Metrics
}

// Token returns flagValue or the environment token
func (o *RootOpts) Token(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return o.Env.GetString(EnvToken)
}

// GatewayName resolves the gateway from flag, config, environment, then "hub"
func (o *RootOpts) GatewayName(flagValue string) string {
	switch {
	case flagValue != "":
		return flagValue
	case o.Config != nil && o.Config.Gateway.Name != "":
		return o.Config.Gateway.Name
	case o.Env.GetString(EnvGateway) != "":
		return o.Env.GetString(EnvGateway)
	default:
		return config.DefaultGateway
	}
}

// Endpoint resolves the gateway endpoint the same way as GatewayName
func (o *RootOpts) Endpoint(flagValue string) string {
	switch {
	case flagValue != "":
		return flagValue
	case o.Config != nil && o.Config.Gateway.Endpoint != "":
		return o.Config.Gateway.Endpoint
	default:
		return o.Env.GetString(EnvEndpoint)
	}
}

// OpenGateway opens a registered gateway against the shared filesystem
func (o *RootOpts) OpenGateway(ctx context.Context, name, endpoint string) (remote.Gateway, error) {
	return remote.Open(ctx, name, remote.Options{Endpoint: endpoint, Fs: o.Fs})
}

// 🧰 JobFlags are the push flags; unset flags fall back to the config file
// and then the environment
type JobFlags struct {
	Source        string
	Repo          string
	Kind          string
	Visibility    string
	Target        string
	Granularity   string
	Ignore        []string
	Presets       []string
	Workers       int
	CommitMessage string
	Token         string
	Gateway       string
	Endpoint      string
}

// AddFlags registers the job flags
func (f *JobFlags) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&f.Source, "source", "s", "", "local directory to push")
	fs.StringVarP(&f.Repo, "repo", "r", "", "repository id, owner/name")
	fs.StringVarP(&f.Kind, "kind", "k", "", "repository kind: dataset, model or space")
	fs.StringVar(&f.Visibility, "visibility", "", "visibility of a new repository: public or private")
	fs.StringVarP(&f.Target, "target", "t", "", "path inside the repository")
	fs.StringVarP(&f.Granularity, "granularity", "g", "", "whole-tree or per-first-level-folder")
	fs.StringSliceVarP(&f.Ignore, "ignore", "i", nil, "ignore pattern, repeatable; replaces the defaults")
	fs.StringSliceVar(&f.Presets, "preset", nil, "named ignore preset, repeatable")
	fs.IntVarP(&f.Workers, "workers", "w", 0, "transfer concurrency, 0 for the gateway default")
	fs.StringVarP(&f.CommitMessage, "message", "m", "", "commit message")
	fs.StringVar(&f.Token, "token", "", "access token, defaults to $TREEPUSH_TOKEN or $HF_TOKEN")
	fs.StringVar(&f.Gateway, "gateway", "", "remote gateway: "+strings.Join(remote.Names(), ", "))
	fs.StringVar(&f.Endpoint, "endpoint", "", "override the gateway base URL")
}

// 🏗️ Job merges flags, config and environment into an upload job. Only
// flags that were set on the command line override the config.
func (o *RootOpts) Job(flags *JobFlags, set *pflag.FlagSet) (upload.Job, error) {
	var job upload.Job
	if o.Config != nil {
		job = o.Config.Job("")
	} else {
		job = upload.Job{
			Kind:        config.DefaultKind,
			Visibility:  config.DefaultVisibility,
			Granularity: config.DefaultGranularity,
		}
	}

	if job.RepositoryID == "" {
		job.RepositoryID = o.Env.GetString(EnvRepo)
	}
	if job.SourceDirectory == "" {
		job.SourceDirectory = o.Env.GetString(EnvLocalPath)
	}

	changed := func(name string) bool { return set != nil && set.Changed(name) }

	if flags.Source != "" {
		job.SourceDirectory = flags.Source
	}
	if flags.Repo != "" {
		job.RepositoryID = flags.Repo
	}
	if changed("kind") {
		k, err := remote.ParseKind(flags.Kind)
		if err != nil {
			return upload.Job{}, errors.Errorf("--kind: %w", err)
		}
		job.Kind = k
	}
	if changed("visibility") {
		v, err := remote.ParseVisibility(flags.Visibility)
		if err != nil {
			return upload.Job{}, errors.Errorf("--visibility: %w", err)
		}
		job.Visibility = v
	}
	if changed("target") {
		job.TargetPath = upload.NormalizeTarget(flags.Target)
	}
	if changed("granularity") {
		g, err := upload.ParseGranularity(flags.Granularity)
		if err != nil {
			return upload.Job{}, errors.Errorf("--granularity: %w", err)
		}
		job.Granularity = g
	}
	if changed("ignore") {
		job.IgnorePatterns = append([]string{}, flags.Ignore...)
	}
	if changed("preset") {
		job.Presets = append([]string{}, flags.Presets...)
	}
	if changed("workers") {
		job.Workers = flags.Workers
	}
	if changed("message") {
		job.CommitMessage = flags.CommitMessage
	}

	if job.SourceDirectory == "" {
		job.SourceDirectory = config.DefaultSource
	}
	job.Token = o.Token(flags.Token)
	return job, nil
}
