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

// Package github pushes directory trees into GitHub repositories through the
// git data API. Every repository kind maps to a plain GitHub repository.
package github

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/treepush/pkg/remote"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// Name is the registry name of this gateway
const Name = "github"

func init() {
	remote.Register(Name, func(ctx context.Context, opts remote.Options) (remote.Gateway, error) {
		endpoint := opts.Endpoint
		return New(opts.FS(), func(token string) (GitHubClient, error) {
			return NewClient(token, endpoint)
		}), nil
	})
}

// ClientFactory returns a client bound to a token
type ClientFactory func(token string) (GitHubClient, error)

// Gateway implements remote.Gateway for GitHub
type Gateway struct {
	fs     afero.Fs
	client ClientFactory
}

var _ remote.Gateway = (*Gateway)(nil)

// 🏭 New creates a GitHub gateway reading local files from fs
func New(fs afero.Fs, client ClientFactory) *Gateway {
	return &Gateway{fs: fs, client: client}
}

func (g *Gateway) clientFor(token string) (GitHubClient, error) {
	c, err := g.client(token)
	if err != nil {
		return nil, errors.Errorf("creating github client: %w", err)
	}
	return c, nil
}

// classify maps GitHub responses onto the remote error sentinels
func classify(resp *github.Response, err error, action string) error {
	if err == nil {
		return nil
	}
	if resp != nil && resp.Response != nil {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return errors.Errorf("%s: %w: %s", action, remote.ErrUnauthorized, err.Error())
		case http.StatusNotFound:
			return errors.Errorf("%s: %w: %s", action, remote.ErrNotFound, err.Error())
		case http.StatusUnprocessableEntity:
			if strings.Contains(err.Error(), "already exists") {
				return errors.Errorf("%s: %w: %s", action, remote.ErrConflict, err.Error())
			}
		case http.StatusForbidden:
			var rle *github.RateLimitError
			if errors.As(err, &rle) {
				return errors.Errorf("%s: rate limit exceeded: %w", action, err)
			}
		}
	}
	return errors.Errorf("%s: %w", action, err)
}

// Authenticate checks the token against the authenticated user endpoint
func (g *Gateway) Authenticate(ctx context.Context, token string) error {
	c, err := g.clientFor(token)
	if err != nil {
		return remote.NewAuthError(err)
	}
	user, resp, err := c.GetAuthenticatedUser(ctx)
	if err != nil {
		return remote.NewAuthError(classify(resp, err, "getting authenticated user"))
	}
	zerolog.Ctx(ctx).Debug().Str("login", user.GetLogin()).Msg("authenticated with github")
	return nil
}

// RepositoryExists reports whether the repository is visible to token
func (g *Gateway) RepositoryExists(ctx context.Context, repoID string, kind remote.Kind, token string) (bool, error) {
	owner, name, err := remote.SplitRepoID(repoID)
	if err != nil {
		return false, err
	}
	c, err := g.clientFor(token)
	if err != nil {
		return false, err
	}
	_, resp, err := c.GetRepository(ctx, owner, name)
	if err != nil {
		err = classify(resp, err, "getting repository "+repoID)
		if remote.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateRepository creates the repository under the user or an organization
func (g *Gateway) CreateRepository(ctx context.Context, req remote.CreateRequest) error {
	owner, name, err := remote.SplitRepoID(req.RepoID)
	if err != nil {
		return err
	}
	c, err := g.clientFor(req.Token)
	if err != nil {
		return err
	}

	user, resp, err := c.GetAuthenticatedUser(ctx)
	if err != nil {
		return classify(resp, err, "getting authenticated user")
	}

	org := owner
	if strings.EqualFold(user.GetLogin(), owner) {
		org = ""
	}

	_, resp, err = c.CreateRepository(ctx, org, &github.Repository{
		Name:     github.String(name),
		Private:  github.Bool(req.Visibility == remote.Private),
		AutoInit: github.Bool(true),
	})
	if err != nil {
		return classify(resp, err, "creating repository "+req.RepoID)
	}

	zerolog.Ctx(ctx).Info().Str("repo", req.RepoID).Str("org", org).Msg("created github repository")
	return nil
}

// UploadDirectory commits every requested file on top of the default branch.
// Blobs are created concurrently, bounded by the request's worker count.
func (g *Gateway) UploadDirectory(ctx context.Context, req remote.UploadRequest) error {
	logger := zerolog.Ctx(ctx)

	owner, name, err := remote.SplitRepoID(req.RepoID)
	if err != nil {
		return err
	}
	c, err := g.clientFor(req.Token)
	if err != nil {
		return err
	}

	files, err := remote.ResolveFiles(g.fs, req)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		logger.Debug().Str("local", req.LocalPath).Msg("nothing to upload")
		return nil
	}

	repo, resp, err := c.GetRepository(ctx, owner, name)
	if err != nil {
		return classify(resp, err, "getting repository "+req.RepoID)
	}
	branch := repo.GetDefaultBranch()
	if branch == "" {
		branch = "main"
	}

	ref, resp, err := c.GetRef(ctx, owner, name, "heads/"+branch)
	if err != nil {
		return classify(resp, err, "getting ref heads/"+branch)
	}
	parentSHA := ref.GetObject().GetSHA()

	parent, resp, err := c.GetCommit(ctx, owner, name, parentSHA)
	if err != nil {
		return classify(resp, err, "getting commit "+parentSHA)
	}

	entries := make([]*github.TreeEntry, len(files))

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(req.EffectiveWorkers())
	for i, rel := range files {
		eg.Go(func() error {
			data, err := remote.ReadFile(g.fs, req, rel)
			if err != nil {
				return err
			}
			blob, resp, err := c.CreateBlob(egctx, owner, name, &github.Blob{
				Content:  github.String(base64.StdEncoding.EncodeToString(data)),
				Encoding: github.String("base64"),
			})
			if err != nil {
				return classify(resp, err, "creating blob for "+rel)
			}
			entries[i] = &github.TreeEntry{
				Path: github.String(req.RemotePath(rel)),
				Mode: github.String("100644"),
				Type: github.String("blob"),
				SHA:  blob.SHA,
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	tree, resp, err := c.CreateTree(ctx, owner, name, parent.GetTree().GetSHA(), entries)
	if err != nil {
		return classify(resp, err, "creating tree")
	}

	commit, resp, err := c.CreateCommit(ctx, owner, name, &github.Commit{
		Message: github.String(req.Message()),
		Tree:    tree,
		Parents: []*github.Commit{{SHA: github.String(parentSHA)}},
	})
	if err != nil {
		return classify(resp, err, "creating commit")
	}

	_, resp, err = c.UpdateRef(ctx, owner, name, &github.Reference{
		Ref:    github.String("refs/heads/" + branch),
		Object: &github.GitObject{SHA: commit.SHA},
	})
	if err != nil {
		return classify(resp, err, "updating ref heads/"+branch)
	}

	logger.Info().
		Str("repo", req.RepoID).
		Str("dest", req.DestPath).
		Int("files", len(files)).
		Str("commit", commit.GetSHA()).
		Msg("uploaded directory")
	return nil
}

// ListRemoteFiles lists every blob on the default branch
func (g *Gateway) ListRemoteFiles(ctx context.Context, repoID string, kind remote.Kind, token string) ([]string, error) {
	owner, name, err := remote.SplitRepoID(repoID)
	if err != nil {
		return nil, err
	}
	c, err := g.clientFor(token)
	if err != nil {
		return nil, err
	}

	repo, resp, err := c.GetRepository(ctx, owner, name)
	if err != nil {
		return nil, classify(resp, err, "getting repository "+repoID)
	}
	branch := repo.GetDefaultBranch()
	if branch == "" {
		branch = "main"
	}

	tree, resp, err := c.GetTree(ctx, owner, name, branch, true)
	if err != nil {
		// an empty repository has no tree yet
		if resp != nil && resp.Response != nil && resp.StatusCode == http.StatusConflict {
			return []string{}, nil
		}
		return nil, classify(resp, err, "getting tree "+branch)
	}
	if tree.GetTruncated() {
		zerolog.Ctx(ctx).Warn().Str("repo", repoID).Msg("github truncated the tree listing")
	}

	out := []string{}
	for _, e := range tree.Entries {
		if e.GetType() == "blob" {
			out = append(out, e.GetPath())
		}
	}
	return out, nil
}
