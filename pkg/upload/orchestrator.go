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

package upload

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/treepush/pkg/log"
	"github.com/walteh/treepush/pkg/metrics"
	"github.com/walteh/treepush/pkg/remote"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Orchestrator drives one job at a time through its lifecycle
type Orchestrator struct {
	gateway remote.Gateway
	fs      afero.Fs
	logger  *log.Logger
	metrics *metrics.Metrics
	onState func(jobID string, s State)
	now     func() time.Time
}

// OrchestratorOption configures an Orchestrator
type OrchestratorOption func(*Orchestrator)

// WithOrchestratorFs sets the filesystem units are read from
func WithOrchestratorFs(fs afero.Fs) OrchestratorOption {
	return func(o *Orchestrator) { o.fs = fs }
}

// WithLogger sets the user-facing logger
func WithLogger(l *log.Logger) OrchestratorOption {
	return func(o *Orchestrator) { o.logger = l }
}

// WithMetrics sets the metrics sink
func WithMetrics(m *metrics.Metrics) OrchestratorOption {
	return func(o *Orchestrator) { o.metrics = m }
}

// WithStateHook is called on every transition, from the running goroutine
func WithStateHook(fn func(jobID string, s State)) OrchestratorOption {
	return func(o *Orchestrator) { o.onState = fn }
}

// 🏭 NewOrchestrator creates an orchestrator bound to gateway
func NewOrchestrator(gateway remote.Gateway, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		gateway: gateway,
		fs:      afero.NewOsFs(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = log.Discard()
	}
	return o
}

// run is the bookkeeping of a single Run call
type run struct {
	id      string
	job     Job
	started time.Time
	state   State
	units   []UnitResult
}

func (o *Orchestrator) transition(ctx context.Context, r *run, s State) {
	zerolog.Ctx(ctx).Debug().
		Str("job_id", r.id).
		Str("from", string(r.state)).
		Str("to", string(s)).
		Msg("job state change")
	r.state = s
	if o.onState != nil {
		o.onState(r.id, s)
	}
}

func (o *Orchestrator) finish(ctx context.Context, r *run, s State, cause error) Outcome {
	o.transition(ctx, r, s)

	out := Outcome{JobID: r.id, State: s, Units: r.units, Cause: cause}
	if cause != nil {
		out.Detail = cause.Error()
	}
	if out.Units == nil {
		out.Units = []UnitResult{}
	}

	switch s {
	case StateCompleted:
		o.logger.Successf("Upload %s", out.Summary())
	case StateCancelled:
		o.logger.Warningf("Upload %s", out.Summary())
	case StateFailed:
		if cause != nil {
			o.logger.Errorf("Upload failed: %s", cause.Error())
		} else {
			o.logger.Errorf("Upload %s", out.Summary())
		}
	}

	o.logger.EndJob(ctx, string(s))
	o.metrics.JobFinished(string(s), o.now().Sub(r.started))
	return out
}

// 🚀 Run executes job to a terminal state. Failures never escape as errors;
// they are reported in the Outcome.
func (o *Orchestrator) Run(ctx context.Context, jobID string, job Job, token *CancelToken) Outcome {
	r := &run{id: jobID, job: job, started: o.now(), state: StateIdle}
	o.metrics.JobStarted()

	o.logger.StartJob(ctx, log.JobLine{
		ID:         jobID,
		Repository: job.RepositoryID,
		Kind:       string(job.Kind),
		Source:     job.SourceDirectory,
		Target:     NormalizeTarget(job.TargetPath),
	})

	o.transition(ctx, r, StateValidating)
	p, err := prepare(o.fs, job)
	if err != nil {
		return o.finish(ctx, r, StateFailed, err)
	}

	units, err := partition(o.fs, p)
	if err != nil {
		return o.finish(ctx, r, StateFailed, err)
	}

	total := 0
	for _, u := range units {
		fl, err := unitFiles(o.fs, p.set, u)
		if err != nil {
			return o.finish(ctx, r, StateFailed, err)
		}
		total += len(fl)
	}

	if total == 0 {
		o.logger.Warning("No files left to upload after applying ignore patterns")
		o.record(ctx, r, UnitResult{Unit: wholeTreeUnit(p), Status: UnitSkippedEmpty}, 0)
		return o.finish(ctx, r, StateCompleted, nil)
	}
	o.logger.Infof("Found %d files in %d unit(s)", total, len(units))

	o.transition(ctx, r, StateAuthenticating)
	if err := o.gateway.Authenticate(ctx, job.Token); err != nil {
		return o.finish(ctx, r, StateFailed, err)
	}
	o.logger.Success("Authenticated")

	o.transition(ctx, r, StateEnsuringRepository)
	if err := o.ensureRepository(ctx, job); err != nil {
		return o.finish(ctx, r, StateFailed, err)
	}

	o.transition(ctx, r, StateUploading)
	cancelled := false
	for i, u := range units {
		if token.Cancelled() {
			cancelled = true
			o.cancelRemaining(ctx, r, units[i:])
			break
		}

		start := o.now()
		res := o.dispatch(ctx, p, u)
		o.record(ctx, r, res, o.now().Sub(start))

		if token.Cancelled() {
			cancelled = true
			o.cancelRemaining(ctx, r, units[i+1:])
			break
		}
	}

	switch {
	case cancelled:
		return o.finish(ctx, r, StateCancelled, nil)
	case (Outcome{Units: r.units}).Count(UnitFailed) > 0:
		return o.finish(ctx, r, StateFailed, nil)
	default:
		return o.finish(ctx, r, StateCompleted, nil)
	}
}

// ensureRepository creates the repository when it is missing. A conflict on
// create means someone else made it first and is not an error.
func (o *Orchestrator) ensureRepository(ctx context.Context, job Job) error {
	exists, err := o.gateway.RepositoryExists(ctx, job.RepositoryID, job.Kind, job.Token)
	if err != nil && !remote.IsNotFound(err) {
		return errors.Errorf("checking repository %s: %w", job.RepositoryID, err)
	}
	if exists {
		o.logger.Infof("Repository %s exists", job.RepositoryID)
		return nil
	}

	err = o.gateway.CreateRepository(ctx, remote.CreateRequest{
		RepoID:     job.RepositoryID,
		Kind:       job.Kind,
		Visibility: job.Visibility,
		Token:      job.Token,
	})
	switch {
	case err == nil:
		o.logger.Successf("Created %s %s %s", job.Visibility, job.Kind, job.RepositoryID)
		return nil
	case remote.IsConflict(err):
		o.logger.Info("repository already exists")
		return nil
	default:
		return errors.Errorf("creating repository %s: %w", job.RepositoryID, err)
	}
}

// dispatch lists and sends one unit. The listing is taken again here since
// earlier units may have run for a long time. Panics from the gateway become
// failed units.
func (o *Orchestrator) dispatch(ctx context.Context, p *plan, u Unit) (res UnitResult) {
	res = UnitResult{Unit: u}

	files, err := unitFiles(o.fs, p.set, u)
	if err != nil {
		res.Status = UnitFailed
		res.Detail = err.Error()
		return res
	}
	res.Files = len(files)

	if len(files) == 0 {
		res.Status = UnitSkippedEmpty
		return res
	}

	defer func() {
		if rec := recover(); rec != nil {
			zerolog.Ctx(ctx).Error().
				Str("unit", u.Label()).
				Interface("panic", rec).
				Msg("gateway panicked")
			res.Status = UnitFailed
			res.Detail = fmt.Sprintf("panic: %v", rec)
		}
	}()

	err = o.gateway.UploadDirectory(ctx, remote.UploadRequest{
		LocalPath:      u.SourcePath,
		RepoID:         p.job.RepositoryID,
		Kind:           p.job.Kind,
		DestPath:       u.DestPath,
		IgnorePatterns: p.patterns,
		Files:          files,
		Token:          p.job.Token,
		Workers:        p.job.Workers,
		CommitMessage:  p.job.CommitMessage,
	})
	if err != nil {
		res.Status = UnitFailed
		res.Detail = err.Error()
		return res
	}
	res.Status = UnitSucceeded
	return res
}

func (o *Orchestrator) cancelRemaining(ctx context.Context, r *run, rest []Unit) {
	if len(rest) == 0 {
		o.logger.Warning("Cancellation observed after the last unit")
		return
	}
	o.logger.Warningf("Cancellation observed, %d unit(s) not started", len(rest))
	for _, u := range rest {
		o.record(ctx, r, UnitResult{Unit: u, Status: UnitCancelled}, 0)
	}
}

func (o *Orchestrator) record(ctx context.Context, r *run, res UnitResult, d time.Duration) {
	r.units = append(r.units, res)
	o.logger.LogUnit(ctx, log.UnitLine{
		Name:   res.Unit.Label(),
		Dest:   res.Unit.DestPath,
		Status: string(res.Status),
		Files:  res.Files,
		Detail: res.Detail,
	})
	o.metrics.UnitFinished(string(res.Status), res.Files, d)
}
