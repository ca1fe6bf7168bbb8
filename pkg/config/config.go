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

package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/treepush/pkg/filter"
	"github.com/walteh/treepush/pkg/remote"
	"github.com/walteh/treepush/pkg/upload"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Defaults applied by Validate
const (
	DefaultKind        = remote.KindDataset
	DefaultVisibility  = remote.Public
	DefaultGranularity = upload.WholeTree
	DefaultGateway     = "hub"
	DefaultSource      = "."
)

// 📦 Repository names the remote repository
type Repository struct {
	ID         string `json:"id" yaml:"id"`
	Kind       string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Visibility string `json:"visibility,omitempty" yaml:"visibility,omitempty"`
}

// 🚫 Ignore lists ignore patterns and named presets.
// A nil Patterns keeps the built-in defaults.
type Ignore struct {
	Patterns []string `json:"patterns,omitempty" yaml:"patterns,omitempty"`
	Presets  []string `json:"presets,omitempty" yaml:"presets,omitempty"`
}

// 🔌 Gateway selects the registered remote gateway
type Gateway struct {
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
}

// 📚 Config holds job defaults read from a .treepush file
type Config struct {
	Repository    Repository `json:"repository" yaml:"repository"`
	Source        string     `json:"source,omitempty" yaml:"source,omitempty"`
	TargetPath    string     `json:"target_path,omitempty" yaml:"target_path,omitempty"`
	Granularity   string     `json:"granularity,omitempty" yaml:"granularity,omitempty"`
	Ignore        *Ignore    `json:"ignore,omitempty" yaml:"ignore,omitempty"`
	Workers       int        `json:"workers,omitempty" yaml:"workers,omitempty"`
	CommitMessage string     `json:"commit_message,omitempty" yaml:"commit_message,omitempty"`
	Gateway       Gateway    `json:"gateway" yaml:"gateway"`

	location string
}

// Location returns the file the config was loaded from
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔍 Validate checks cfg and fills in defaults. A relative Source is resolved
// against the directory of the config file.
func Validate(ctx context.Context, cfg *Config) error {
	logger := zerolog.Ctx(ctx)

	if cfg.Repository.ID == "" {
		return errors.New("repository.id is required")
	}
	if !remote.ValidRepoID(cfg.Repository.ID) {
		return errors.Errorf("repository.id %q must look like owner/name", cfg.Repository.ID)
	}

	if cfg.Repository.Kind == "" {
		cfg.Repository.Kind = string(DefaultKind)
	}
	kind, err := remote.ParseKind(cfg.Repository.Kind)
	if err != nil {
		return errors.Errorf("repository.kind: %w", err)
	}
	cfg.Repository.Kind = string(kind)

	if cfg.Repository.Visibility == "" {
		cfg.Repository.Visibility = string(DefaultVisibility)
	}
	vis, err := remote.ParseVisibility(cfg.Repository.Visibility)
	if err != nil {
		return errors.Errorf("repository.visibility: %w", err)
	}
	cfg.Repository.Visibility = string(vis)

	if cfg.Granularity == "" {
		cfg.Granularity = string(DefaultGranularity)
	}
	g, err := upload.ParseGranularity(cfg.Granularity)
	if err != nil {
		return errors.Errorf("granularity: %w", err)
	}
	cfg.Granularity = string(g)

	if cfg.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", cfg.Workers)
	}

	if cfg.Gateway.Name == "" {
		cfg.Gateway.Name = DefaultGateway
	}

	if cfg.Ignore != nil {
		base := cfg.Ignore.Patterns
		if base == nil {
			base = filter.DefaultPatterns
		}
		patterns, err := filter.Resolve(base, cfg.Ignore.Presets)
		if err != nil {
			return errors.Errorf("ignore: %w", err)
		}
		if _, err := filter.Compile(patterns); err != nil {
			return errors.Errorf("ignore: %w", err)
		}
	}

	if cfg.Source == "" {
		cfg.Source = DefaultSource
	}
	if !filepath.IsAbs(cfg.Source) && cfg.location != "" {
		cfg.Source = filepath.Join(filepath.Dir(cfg.location), cfg.Source)
	}
	cfg.TargetPath = upload.NormalizeTarget(cfg.TargetPath)

	logger.Debug().
		Str("repository", cfg.Repository.ID).
		Str("source", cfg.Source).
		Str("gateway", cfg.Gateway.Name).
		Msg("validated config")

	return nil
}

// 🏗️ Job builds an upload job from a validated config
func (cfg *Config) Job(token string) upload.Job {
	j := upload.Job{
		SourceDirectory: cfg.Source,
		RepositoryID:    cfg.Repository.ID,
		Kind:            remote.Kind(cfg.Repository.Kind),
		Visibility:      remote.Visibility(cfg.Repository.Visibility),
		TargetPath:      cfg.TargetPath,
		Granularity:     upload.Granularity(cfg.Granularity),
		Token:           token,
		Workers:         cfg.Workers,
		CommitMessage:   cfg.CommitMessage,
	}
	if cfg.Ignore != nil {
		j.IgnorePatterns = cfg.Ignore.Patterns
		j.Presets = cfg.Ignore.Presets
	}
	return j
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	target := cfg.TargetPath
	if target == "" {
		target = "/"
	}
	return fmt.Sprintf("%s -> %s:%s (%s, %s)", cfg.Source, cfg.Repository.ID, target, cfg.Repository.Kind, cfg.Gateway.Name)
}
