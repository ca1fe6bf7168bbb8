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

package github

import (
	"context"
	"net/url"

	"github.com/google/go-github/v60/github"
)

// GitHubClient defines the GitHub API operations the gateway needs
type GitHubClient interface {
	GetAuthenticatedUser(ctx context.Context) (*github.User, *github.Response, error)
	GetRepository(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error)
	CreateRepository(ctx context.Context, org string, repo *github.Repository) (*github.Repository, *github.Response, error)
	GetRef(ctx context.Context, owner, repo, ref string) (*github.Reference, *github.Response, error)
	GetCommit(ctx context.Context, owner, repo, sha string) (*github.Commit, *github.Response, error)
	GetTree(ctx context.Context, owner, repo, sha string, recursive bool) (*github.Tree, *github.Response, error)
	CreateBlob(ctx context.Context, owner, repo string, blob *github.Blob) (*github.Blob, *github.Response, error)
	CreateTree(ctx context.Context, owner, repo, baseTree string, entries []*github.TreeEntry) (*github.Tree, *github.Response, error)
	CreateCommit(ctx context.Context, owner, repo string, commit *github.Commit) (*github.Commit, *github.Response, error)
	UpdateRef(ctx context.Context, owner, repo string, ref *github.Reference) (*github.Reference, *github.Response, error)
}

// githubClientWrapper wraps the GitHub client to implement our interface
type githubClientWrapper struct {
	client *github.Client
}

// NewClient builds a client authenticated with token. A non-empty endpoint
// points it at a GitHub Enterprise server.
func NewClient(token, endpoint string) (GitHubClient, error) {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	if endpoint != "" {
		u, err := url.Parse(endpoint)
		if err != nil {
			return nil, err
		}
		c, err := client.WithEnterpriseURLs(u.String(), u.String())
		if err != nil {
			return nil, err
		}
		client = c
	}
	return &githubClientWrapper{client: client}, nil
}

func (w *githubClientWrapper) GetAuthenticatedUser(ctx context.Context) (*github.User, *github.Response, error) {
	return w.client.Users.Get(ctx, "")
}

func (w *githubClientWrapper) GetRepository(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error) {
	return w.client.Repositories.Get(ctx, owner, repo)
}

func (w *githubClientWrapper) CreateRepository(ctx context.Context, org string, repo *github.Repository) (*github.Repository, *github.Response, error) {
	return w.client.Repositories.Create(ctx, org, repo)
}

func (w *githubClientWrapper) GetRef(ctx context.Context, owner, repo, ref string) (*github.Reference, *github.Response, error) {
	return w.client.Git.GetRef(ctx, owner, repo, ref)
}

func (w *githubClientWrapper) GetCommit(ctx context.Context, owner, repo, sha string) (*github.Commit, *github.Response, error) {
	return w.client.Git.GetCommit(ctx, owner, repo, sha)
}

func (w *githubClientWrapper) GetTree(ctx context.Context, owner, repo, sha string, recursive bool) (*github.Tree, *github.Response, error) {
	return w.client.Git.GetTree(ctx, owner, repo, sha, recursive)
}

func (w *githubClientWrapper) CreateBlob(ctx context.Context, owner, repo string, blob *github.Blob) (*github.Blob, *github.Response, error) {
	return w.client.Git.CreateBlob(ctx, owner, repo, blob)
}

func (w *githubClientWrapper) CreateTree(ctx context.Context, owner, repo, baseTree string, entries []*github.TreeEntry) (*github.Tree, *github.Response, error) {
	return w.client.Git.CreateTree(ctx, owner, repo, baseTree, entries)
}

func (w *githubClientWrapper) CreateCommit(ctx context.Context, owner, repo string, commit *github.Commit) (*github.Commit, *github.Response, error) {
	return w.client.Git.CreateCommit(ctx, owner, repo, commit, nil)
}

func (w *githubClientWrapper) UpdateRef(ctx context.Context, owner, repo string, ref *github.Reference) (*github.Reference, *github.Response, error) {
	return w.client.Git.UpdateRef(ctx, owner, repo, ref, false)
}
