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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// FileNames are the config files Find looks for, in order
var FileNames = []string{".treepush.yaml", ".treepush.yml", ".treepush.hcl", ".treepush.json"}

// 🔍 Find returns the first config file present in dir, or "" if none is
func Find(dir string) string {
	for _, name := range FileNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// LoadConfig loads a configuration file from the given path.
// The format is determined by the file extension:
// - .json for JSON
// - .yaml or .yml for YAML
// - .hcl for HCL
func LoadConfig(ctx context.Context, path string) (*Config, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var cfg *Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		cfg, err = loadJSON(data)
	case ".yaml", ".yml":
		cfg, err = loadYAML(data)
	case ".hcl":
		cfg, err = loadHCL(data, path)
	default:
		return nil, errors.Errorf("unsupported file extension %q", ext)
	}
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Errorf("resolving %s: %w", path, err)
	}
	cfg.location = abs

	if err := Validate(ctx, cfg); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// loadJSON loads a configuration from JSON data
func loadJSON(data []byte) (*Config, error) {
	var cfg Config
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	return &cfg, nil
}

// loadYAML loads a configuration from YAML data
func loadYAML(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}

// hclConfig is the HCL shape; the repository id is the block label
type hclConfig struct {
	Repository struct {
		ID         string `hcl:"id,label"`
		Kind       string `hcl:"kind,optional"`
		Visibility string `hcl:"visibility,optional"`
	} `hcl:"repository,block"`
	Source        string `hcl:"source,optional"`
	TargetPath    string `hcl:"target_path,optional"`
	Granularity   string `hcl:"granularity,optional"`
	Workers       int    `hcl:"workers,optional"`
	CommitMessage string `hcl:"commit_message,optional"`
	Ignore        *struct {
		Patterns []string `hcl:"patterns,optional"`
		Presets  []string `hcl:"presets,optional"`
	} `hcl:"ignore,block"`
	Gateway *struct {
		Name     string `hcl:"name,optional"`
		Endpoint string `hcl:"endpoint,optional"`
	} `hcl:"gateway,block"`
}

// loadHCL loads a configuration from HCL data
func loadHCL(data []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envObject(),
		},
	}

	var raw hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &raw)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := &Config{
		Repository: Repository{
			ID:         raw.Repository.ID,
			Kind:       raw.Repository.Kind,
			Visibility: raw.Repository.Visibility,
		},
		Source:        raw.Source,
		TargetPath:    raw.TargetPath,
		Granularity:   raw.Granularity,
		Workers:       raw.Workers,
		CommitMessage: raw.CommitMessage,
	}
	if raw.Ignore != nil {
		cfg.Ignore = &Ignore{Patterns: raw.Ignore.Patterns, Presets: raw.Ignore.Presets}
	}
	if raw.Gateway != nil {
		cfg.Gateway = Gateway{Name: raw.Gateway.Name, Endpoint: raw.Gateway.Endpoint}
	}
	return cfg, nil
}

// envObject exposes the process environment to HCL as env.NAME
func envObject() cty.Value {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vars)
}
