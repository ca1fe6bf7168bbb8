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
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/treepush/pkg/log"
	"github.com/walteh/treepush/pkg/metrics"
	"github.com/walteh/treepush/pkg/remote"
	"github.com/walteh/treepush/pkg/tree"
	"gitlab.com/tozd/go/errors"
)

// maxHistory bounds how many finished jobs Wait and Snapshot can still see
const maxHistory = 32

// AckStatus is the immediate answer to a request
type AckStatus string

const (
	AckStarted    AckStatus = "started"
	AckRejected   AckStatus = "rejected"
	AckCancelling AckStatus = "cancelling"
)

// Ack is returned synchronously by Submit and the cancel calls
type Ack struct {
	Status AckStatus `json:"status"`
	Reason string    `json:"reason,omitempty"`
	JobID  string    `json:"job_id,omitempty"`
}

func (a Ack) String() string {
	if a.Status == AckRejected {
		return "rejected: " + a.Reason
	}
	return string(a.Status)
}

// Accepted reports whether the request took effect
func (a Ack) Accepted() bool {
	return a.Status != AckRejected
}

// Snapshot is the observable state of the latest job
type Snapshot struct {
	JobID   string   `json:"job_id,omitempty"`
	State   State    `json:"state"`
	Outcome *Outcome `json:"outcome,omitempty"`
}

type jobRecord struct {
	id      string
	token   *CancelToken
	done    chan struct{}
	state   State
	outcome *Outcome
}

// 🎯 Service accepts jobs from a front end and runs at most one at a time
type Service struct {
	gateway remote.Gateway
	fs      afero.Fs
	logger  *log.Logger
	metrics *metrics.Metrics
	newID   func() string

	orch *Orchestrator

	busy sync.Mutex

	mu      sync.Mutex
	latest  *jobRecord
	jobs    map[string]*jobRecord
	history []string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// ServiceOption configures a Service
type ServiceOption func(*Service)

// WithFs sets the filesystem jobs and trees read from
func WithFs(fs afero.Fs) ServiceOption {
	return func(s *Service) { s.fs = fs }
}

// WithServiceLogger sets the user-facing logger; its sink backs PollLogs
func WithServiceLogger(l *log.Logger) ServiceOption {
	return func(s *Service) { s.logger = l }
}

// WithServiceMetrics sets the metrics sink
func WithServiceMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *Service) { s.metrics = m }
}

// WithIDGenerator replaces the job id source
func WithIDGenerator(fn func() string) ServiceOption {
	return func(s *Service) { s.newID = fn }
}

// 🏭 NewService creates a service. Runs inherit ctx's values but outlive the
// caller until Close.
func NewService(ctx context.Context, gateway remote.Gateway, opts ...ServiceOption) *Service {
	s := &Service{
		gateway: gateway,
		fs:      afero.NewOsFs(),
		newID:   uuid.NewString,
		jobs:    map[string]*jobRecord{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Discard()
	}

	s.ctx, s.cancel = context.WithCancel(context.WithoutCancel(ctx))
	s.orch = NewOrchestrator(gateway,
		WithOrchestratorFs(s.fs),
		WithLogger(s.logger),
		WithMetrics(s.metrics),
		WithStateHook(s.setState),
	)
	return s
}

func (s *Service) setState(jobID string, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.jobs[jobID]; ok {
		rec.state = st
	}
}

// 📥 Submit starts job in the background. It rejects while another job is
// running and when the job fails validation; neither case touches the gateway.
func (s *Service) Submit(job Job) Ack {
	if !s.busy.TryLock() {
		s.logger.Warning("An upload is already running")
		s.metrics.JobRejected("busy")
		return Ack{Status: AckRejected, Reason: "busy"}
	}

	if err := job.Validate(s.fs); err != nil {
		s.busy.Unlock()
		s.logger.Errorf("Invalid upload: %s", err.Error())
		s.metrics.JobRejected("invalid")
		return Ack{Status: AckRejected, Reason: err.Error()}
	}

	rec := &jobRecord{
		id:    s.newID(),
		token: NewCancelToken(),
		done:  make(chan struct{}),
		state: StateIdle,
	}

	s.mu.Lock()
	s.latest = rec
	s.jobs[rec.id] = rec
	s.history = append(s.history, rec.id)
	if len(s.history) > maxHistory {
		delete(s.jobs, s.history[0])
		s.history = s.history[1:]
	}
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(rec.done)

		ctx := zerolog.Ctx(s.ctx).With().Str("job_id", rec.id).Logger().WithContext(s.ctx)
		out := s.orch.Run(ctx, rec.id, job, rec.token)

		s.mu.Lock()
		rec.state = out.State
		rec.outcome = &out
		s.mu.Unlock()

		s.busy.Unlock()
	}()

	return Ack{Status: AckStarted, JobID: rec.id}
}

// 🛑 RequestCancel asks the running job to stop at its next unit boundary
func (s *Service) RequestCancel() Ack {
	s.mu.Lock()
	rec := s.latest
	s.mu.Unlock()

	if rec == nil {
		return Ack{Status: AckRejected, Reason: "no job running"}
	}
	return s.cancelRecord(rec)
}

// CancelJob cancels jobID if it is still running. Stale ids are rejected and
// never affect a newer job.
func (s *Service) CancelJob(jobID string) Ack {
	s.mu.Lock()
	rec, ok := s.jobs[jobID]
	s.mu.Unlock()

	if !ok {
		return Ack{Status: AckRejected, Reason: "unknown job " + jobID}
	}
	return s.cancelRecord(rec)
}

func (s *Service) cancelRecord(rec *jobRecord) Ack {
	s.mu.Lock()
	terminal := rec.state.Terminal()
	s.mu.Unlock()

	if terminal {
		return Ack{Status: AckRejected, Reason: "job already finished", JobID: rec.id}
	}
	if rec.token.Cancel() {
		s.logger.Warning("Cancellation requested, stopping after the current unit")
	}
	return Ack{Status: AckCancelling, JobID: rec.id}
}

// 📜 PollLogs returns messages appended since the previous poll
func (s *Service) PollLogs() []string {
	return log.Strings(s.logger.Sink().Poll())
}

// TailLogs returns the newest n messages; n <= 0 returns all retained
func (s *Service) TailLogs(n int) []log.Entry {
	return s.logger.Sink().Tail(n)
}

// Subscribe streams new log entries until cancel is called or the service closes
func (s *Service) Subscribe(buffer int) (<-chan log.Entry, func()) {
	return s.logger.Sink().Subscribe(buffer)
}

// 🌳 LocalTree builds the tree of a local directory
func (s *Service) LocalTree(dir string) (*tree.Node, error) {
	return tree.BuildLocal(s.fs, dir)
}

// 🌐 RemoteTree lists a repository and builds its tree
func (s *Service) RemoteTree(ctx context.Context, repoID string, kind remote.Kind, token string) (*tree.Node, error) {
	if !remote.ValidRepoID(repoID) {
		return nil, invalid("repository_id", "must look like owner/name, got "+`"`+repoID+`"`, nil)
	}
	if !kind.Valid() {
		return nil, invalid("kind", "unknown repository kind "+`"`+string(kind)+`"`, nil)
	}
	if token == "" {
		return nil, invalid("token", "is required", nil)
	}

	keys, err := s.gateway.ListRemoteFiles(ctx, repoID, kind, token)
	if err != nil {
		return nil, errors.Errorf("listing %s: %w", repoID, err)
	}
	root := tree.BuildRemote(keys)
	root.Name = repoID
	return root, nil
}

// Snapshot reports the latest job
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.latest == nil {
		return Snapshot{State: StateIdle}
	}
	return Snapshot{JobID: s.latest.id, State: s.latest.state, Outcome: s.latest.outcome}
}

// Wait blocks until jobID reaches a terminal state
func (s *Service) Wait(ctx context.Context, jobID string) (Outcome, error) {
	s.mu.Lock()
	rec, ok := s.jobs[jobID]
	s.mu.Unlock()

	if !ok {
		return Outcome{}, errors.Errorf("unknown job %q", jobID)
	}

	select {
	case <-rec.done:
	case <-ctx.Done():
		return Outcome{}, errors.WithStack(ctx.Err())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return *rec.outcome, nil
}

// Close stops in-flight gateway calls, waits for the running job and closes
// log subscribers
func (s *Service) Close() {
	s.cancel()
	s.wg.Wait()
	s.logger.Sink().Close()
}
