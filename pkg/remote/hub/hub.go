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

// Package hub talks to a Hugging Face style Hub over its REST API.
//
// Uploads go through the commit endpoint as inline base64 operations, batched
// per request. Files that the Hub requires to go through LFS are rejected by
// the server; those repositories need a gateway with LFS support.
package hub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/treepush/pkg/remote"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

const (
	// Name is the registry name of this gateway
	Name = "hub"

	DefaultEndpoint  = "https://huggingface.co"
	DefaultRevision  = "main"
	DefaultBatchSize = 50
	DefaultSpaceSDK  = "static"
	defaultUserAgent = "treepush/1.0"
)

func init() {
	remote.Register(Name, func(ctx context.Context, opts remote.Options) (remote.Gateway, error) {
		hopts := []Option{WithFs(opts.FS())}
		if opts.Endpoint != "" {
			hopts = append(hopts, WithEndpoint(opts.Endpoint))
		}
		return New(hopts...), nil
	})
}

var (
	sharedClient     *http.Client
	sharedClientOnce sync.Once
)

// httpClient returns the pooled client shared by every gateway
func httpClient() *http.Client {
	sharedClientOnce.Do(func() {
		sharedClient = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				ForceAttemptHTTP2:   true,
				DialContext: (&net.Dialer{
					Timeout:   30 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		}
	})
	return sharedClient
}

// Gateway implements remote.Gateway for the Hub
type Gateway struct {
	endpoint  string
	revision  string
	client    *http.Client
	fs        afero.Fs
	batchSize int
	userAgent string
}

var _ remote.Gateway = (*Gateway)(nil)

// Option configures a Gateway
type Option func(*Gateway)

// WithEndpoint sets the Hub base URL
func WithEndpoint(endpoint string) Option {
	return func(g *Gateway) {
		g.endpoint = strings.TrimRight(endpoint, "/")
	}
}

// WithHTTPClient replaces the pooled HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) {
		g.client = c
	}
}

// WithFs sets the filesystem local files are read from
func WithFs(fs afero.Fs) Option {
	return func(g *Gateway) {
		g.fs = fs
	}
}

// WithBatchSize sets how many files go into one commit request
func WithBatchSize(n int) Option {
	return func(g *Gateway) {
		if n > 0 {
			g.batchSize = n
		}
	}
}

// WithRevision sets the branch commits and listings target
func WithRevision(rev string) Option {
	return func(g *Gateway) {
		if rev != "" {
			g.revision = rev
		}
	}
}

// 🏭 New creates a Hub gateway
func New(opts ...Option) *Gateway {
	g := &Gateway{
		endpoint:  DefaultEndpoint,
		revision:  DefaultRevision,
		client:    httpClient(),
		fs:        afero.NewOsFs(),
		batchSize: DefaultBatchSize,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func escapeRepoID(repoID string) string {
	parts := strings.Split(repoID, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

func (g *Gateway) repoURL(kind remote.Kind, repoID string, suffix ...string) string {
	u := g.endpoint + "/api/" + kind.Plural() + "/" + escapeRepoID(repoID)
	for _, s := range suffix {
		u += "/" + s
	}
	return u
}

func (g *Gateway) newRequest(ctx context.Context, method, u, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, errors.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do sends req and returns the response when the status is 2xx
func (g *Gateway) do(req *http.Request) (*http.Response, error) {
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Errorf("performing %s %s: %w", req.Method, req.URL.Redacted(), err)
	}
	if err := checkResponse(resp); err != nil {
		resp.Body.Close()
		return nil, errors.WithStack(err)
	}
	return resp, nil
}

// Authenticate calls whoami with the token
func (g *Gateway) Authenticate(ctx context.Context, token string) error {
	req, err := g.newRequest(ctx, http.MethodGet, g.endpoint+"/api/whoami-v2", token, nil)
	if err != nil {
		return remote.NewAuthError(err)
	}
	resp, err := g.do(req)
	if err != nil {
		return remote.NewAuthError(err)
	}
	defer resp.Body.Close()

	var who struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&who); err != nil {
		return remote.NewAuthError(errors.Errorf("decoding whoami response: %w", err))
	}
	zerolog.Ctx(ctx).Debug().Str("user", who.Name).Msg("authenticated with hub")
	return nil
}

// RepositoryExists fetches the repository info
func (g *Gateway) RepositoryExists(ctx context.Context, repoID string, kind remote.Kind, token string) (bool, error) {
	req, err := g.newRequest(ctx, http.MethodGet, g.repoURL(kind, repoID), token, nil)
	if err != nil {
		return false, err
	}
	resp, err := g.do(req)
	if err != nil {
		if remote.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	resp.Body.Close()
	return true, nil
}

type createPayload struct {
	Name         string `json:"name"`
	Organization string `json:"organization,omitempty"`
	Type         string `json:"type,omitempty"`
	Private      bool   `json:"private"`
	SDK          string `json:"sdk,omitempty"`
}

// CreateRepository creates the repository. Spaces use the static SDK.
func (g *Gateway) CreateRepository(ctx context.Context, cr remote.CreateRequest) error {
	owner, name, err := remote.SplitRepoID(cr.RepoID)
	if err != nil {
		return err
	}

	payload := createPayload{
		Name:         name,
		Organization: owner,
		Private:      cr.Visibility == remote.Private,
	}
	if cr.Kind != remote.KindModel {
		payload.Type = string(cr.Kind)
	}
	if cr.Kind == remote.KindSpace {
		payload.SDK = DefaultSpaceSDK
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Errorf("encoding create request: %w", err)
	}

	req, err := g.newRequest(ctx, http.MethodPost, g.endpoint+"/api/repos/create", cr.Token, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.do(req)
	if err != nil {
		return errors.Errorf("creating %s %s: %w", cr.Kind, cr.RepoID, err)
	}
	resp.Body.Close()

	zerolog.Ctx(ctx).Info().Str("repo", cr.RepoID).Str("kind", string(cr.Kind)).Msg("created hub repository")
	return nil
}

type treeEntry struct {
	Type string `json:"type"`
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// ListRemoteFiles lists every file at the gateway's revision, following pagination
func (g *Gateway) ListRemoteFiles(ctx context.Context, repoID string, kind remote.Kind, token string) ([]string, error) {
	next := g.repoURL(kind, repoID, "tree", url.PathEscape(g.revision)) + "?recursive=true"
	out := []string{}

	for next != "" {
		req, err := g.newRequest(ctx, http.MethodGet, next, token, nil)
		if err != nil {
			return nil, err
		}
		resp, err := g.do(req)
		if err != nil {
			return nil, errors.Errorf("listing %s: %w", repoID, err)
		}

		var entries []treeEntry
		err = json.NewDecoder(resp.Body).Decode(&entries)
		resp.Body.Close()
		if err != nil {
			return nil, errors.Errorf("decoding tree listing: %w", err)
		}

		for _, e := range entries {
			if e.Type == "file" {
				out = append(out, e.Path)
			}
		}
		next = nextLink(resp.Header.Get("Link"))
	}
	return out, nil
}

// nextLink extracts the rel="next" target of a Link header
func nextLink(header string) string {
	for _, part := range strings.Split(header, ",") {
		segs := strings.Split(part, ";")
		if len(segs) < 2 {
			continue
		}
		target := strings.Trim(strings.TrimSpace(segs[0]), "<>")
		for _, attr := range segs[1:] {
			if strings.ReplaceAll(strings.TrimSpace(attr), " ", "") == `rel="next"` {
				return target
			}
		}
	}
	return ""
}

type commitLine struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type commitHeader struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
}

type commitFile struct {
	Content  string `json:"content"`
	Path     string `json:"path"`
	Encoding string `json:"encoding"`
}

// UploadDirectory commits the requested files. Files are read and encoded
// concurrently up to the request's worker count, then sent in batches.
func (g *Gateway) UploadDirectory(ctx context.Context, req remote.UploadRequest) error {
	logger := zerolog.Ctx(ctx)

	files, err := remote.ResolveFiles(g.fs, req)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		logger.Debug().Str("local", req.LocalPath).Msg("nothing to upload")
		return nil
	}

	for start := 0; start < len(files); start += g.batchSize {
		end := min(start+g.batchSize, len(files))
		batch := files[start:end]

		ops := make([]commitFile, len(batch))
		eg, _ := errgroup.WithContext(ctx)
		eg.SetLimit(req.EffectiveWorkers())
		for i, rel := range batch {
			eg.Go(func() error {
				data, err := remote.ReadFile(g.fs, req, rel)
				if err != nil {
					return err
				}
				ops[i] = commitFile{
					Content:  base64.StdEncoding.EncodeToString(data),
					Path:     req.RemotePath(rel),
					Encoding: "base64",
				}
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}

		if err := g.commit(ctx, req, ops); err != nil {
			return errors.Errorf("committing files %d-%d of %d: %w", start+1, end, len(files), err)
		}
		logger.Debug().Int("from", start+1).Int("to", end).Int("total", len(files)).Msg("committed batch")
	}

	logger.Info().Str("repo", req.RepoID).Str("dest", req.DestPath).Int("files", len(files)).Msg("uploaded directory")
	return nil
}

func (g *Gateway) commit(ctx context.Context, req remote.UploadRequest, ops []commitFile) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)

	if err := enc.Encode(commitLine{Key: "header", Value: commitHeader{Summary: req.Message()}}); err != nil {
		return errors.Errorf("encoding commit header: %w", err)
	}
	for _, op := range ops {
		if err := enc.Encode(commitLine{Key: "file", Value: op}); err != nil {
			return errors.Errorf("encoding %s: %w", op.Path, err)
		}
	}

	u := g.repoURL(req.Kind, req.RepoID, "commit", url.PathEscape(g.revision))
	hreq, err := g.newRequest(ctx, http.MethodPost, u, req.Token, &buf)
	if err != nil {
		return err
	}
	hreq.Header.Set("Content-Type", "application/x-ndjson")

	resp, err := g.do(hreq)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
