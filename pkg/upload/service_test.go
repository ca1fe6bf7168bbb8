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

package upload_test

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/treepush/gen/mockery"
	"github.com/walteh/treepush/pkg/remote"
	"github.com/walteh/treepush/pkg/remote/memory"
	"github.com/walteh/treepush/pkg/upload"
)

// blockingGateway holds every upload until release is closed
type blockingGateway struct {
	*memory.Gateway
	entered chan struct{}
	release chan struct{}
}

func newBlockingGateway(fs afero.Fs, opts ...memory.Option) *blockingGateway {
	b := &blockingGateway{
		entered: make(chan struct{}, 16),
		release: make(chan struct{}),
	}
	opts = append(opts,
		memory.WithFs(fs),
		memory.WithUploadHook(func(ctx context.Context, req remote.UploadRequest) error {
			b.entered <- struct{}{}
			select {
			case <-b.release:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}),
	)
	b.Gateway = memory.New(opts...)
	return b
}

func waitEntered(t *testing.T, b *blockingGateway) {
	t.Helper()
	select {
	case <-b.entered:
	case <-time.After(5 * time.Second):
		t.Fatal("upload never started")
	}
}

func newService(t *testing.T, gw remote.Gateway, fs afero.Fs) *upload.Service {
	t.Helper()
	ids := atomic.Int32{}
	svc := upload.NewService(testContext(t), gw,
		upload.WithFs(fs),
		upload.WithServiceLogger(testLogger(t)),
		upload.WithIDGenerator(func() string {
			return fmt.Sprintf("job-%d", ids.Add(1))
		}),
	)
	t.Cleanup(svc.Close)
	return svc
}

func waitOutcome(t *testing.T, svc *upload.Service, id string) upload.Outcome {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	out, err := svc.Wait(ctx, id)
	require.NoError(t, err)
	return out
}

func TestSubmitRejectsWhileBusy(t *testing.T) {
	fs := afero.NewMemMapFs()
	seed(t, fs, "/src/a/f.txt", "/other/b/f.txt")

	gw := newBlockingGateway(fs, memory.WithRepository("acme/data", remote.KindDataset))
	svc := newService(t, gw, fs)

	ackA := svc.Submit(baseJob("/src"))
	require.Equal(t, "started", ackA.String())
	waitEntered(t, gw)

	jobB := baseJob("/other")
	jobB.RepositoryID = "acme/other"
	ackB := svc.Submit(jobB)
	assert.Equal(t, "rejected: busy", ackB.String())
	assert.Empty(t, ackB.JobID)

	for _, c := range gw.Calls() {
		assert.NotEqual(t, "acme/other", c.RepoID, "a rejected job must not reach the gateway")
	}

	snap := svc.Snapshot()
	assert.Equal(t, ackA.JobID, snap.JobID)
	assert.Equal(t, upload.StateUploading, snap.State)

	close(gw.release)
	out := waitOutcome(t, svc, ackA.JobID)
	assert.Equal(t, upload.StateCompleted, out.State)

	ackC := svc.Submit(jobB)
	assert.Equal(t, upload.AckStarted, ackC.Status, "the guard is released at the terminal state")
	out = waitOutcome(t, svc, ackC.JobID)
	assert.Equal(t, upload.StateCompleted, out.State)
}

func TestSubmitRejectsInvalidJob(t *testing.T) {
	fs := afero.NewMemMapFs()
	seed(t, fs, "/src/a/f.txt")

	gw := mockery.NewMockGateway_remote(t)
	svc := newService(t, gw, fs)

	job := baseJob("/src")
	job.Token = ""
	ack := svc.Submit(job)

	assert.False(t, ack.Accepted())
	assert.Equal(t, "rejected: token: is required", ack.String())
	assert.Equal(t, upload.StateIdle, svc.Snapshot().State)

	logs := strings.Join(svc.PollLogs(), "\n")
	assert.Contains(t, logs, "Invalid upload")
}

func TestRequestCancelStopsAtBoundary(t *testing.T) {
	fs := afero.NewMemMapFs()
	seed(t, fs, "/src/a/f", "/src/b/f", "/src/c/f")

	gw := newBlockingGateway(fs, memory.WithRepository("acme/data", remote.KindDataset))
	svc := newService(t, gw, fs)

	ack := svc.Submit(baseJob("/src"))
	require.True(t, ack.Accepted())
	waitEntered(t, gw)

	cancelAck := svc.RequestCancel()
	assert.Equal(t, upload.AckCancelling, cancelAck.Status)
	assert.Equal(t, ack.JobID, cancelAck.JobID)

	close(gw.release)
	out := waitOutcome(t, svc, ack.JobID)

	assert.Equal(t, upload.StateCancelled, out.State)
	assert.Equal(t, []upload.UnitStatus{upload.UnitSucceeded, upload.UnitCancelled, upload.UnitCancelled}, out.Statuses(),
		"the unit in flight finishes, later ones never start")
	assert.Equal(t, 1, gw.CallCount("UploadDirectory"))

	again := svc.RequestCancel()
	assert.Equal(t, "rejected: job already finished", again.String())
}

func TestCancelJobIgnoresStaleIDs(t *testing.T) {
	fs := afero.NewMemMapFs()
	seed(t, fs, "/src/a/f", "/src/b/f")

	gw := newBlockingGateway(fs, memory.WithRepository("acme/data", remote.KindDataset))
	svc := newService(t, gw, fs)

	first := svc.Submit(baseJob("/src"))
	waitEntered(t, gw)
	gw.release <- struct{}{}
	waitEntered(t, gw)
	gw.release <- struct{}{}
	require.Equal(t, upload.StateCompleted, waitOutcome(t, svc, first.JobID).State)

	second := svc.Submit(baseJob("/src"))
	require.True(t, second.Accepted())
	waitEntered(t, gw)

	assert.False(t, svc.CancelJob(first.JobID).Accepted(), "a finished job id cannot cancel the next job")
	assert.False(t, svc.CancelJob("nope").Accepted())

	close(gw.release)
	assert.Equal(t, upload.StateCompleted, waitOutcome(t, svc, second.JobID).State)
}

func TestRequestCancelWithoutJob(t *testing.T) {
	svc := newService(t, mockery.NewMockGateway_remote(t), afero.NewMemMapFs())
	ack := svc.RequestCancel()
	assert.Equal(t, "rejected: no job running", ack.String())
}

func TestPollLogsDrains(t *testing.T) {
	fs := afero.NewMemMapFs()
	seed(t, fs, "/src/a/f")

	gw := memory.New(memory.WithFs(fs))
	svc := newService(t, gw, fs)

	ack := svc.Submit(baseJob("/src"))
	waitOutcome(t, svc, ack.JobID)

	logs := strings.Join(svc.PollLogs(), "\n")
	assert.Contains(t, logs, "🚀 Starting upload of /src to acme/data (dataset) at /")
	assert.Contains(t, logs, "✅ a → a: succeeded (1 files)")
	assert.Contains(t, logs, "Upload completed")

	assert.Empty(t, svc.PollLogs(), "a second poll only sees new messages")
	assert.NotEmpty(t, svc.TailLogs(0), "tail still sees retained history")
}

func TestSubscribeReceivesEntries(t *testing.T) {
	fs := afero.NewMemMapFs()
	seed(t, fs, "/src/a/f")

	svc := newService(t, memory.New(memory.WithFs(fs)), fs)
	ch, cancel := svc.Subscribe(256)
	defer cancel()

	ack := svc.Submit(baseJob("/src"))
	waitOutcome(t, svc, ack.JobID)

	select {
	case e := <-ch:
		assert.Contains(t, e.Message, "Starting upload")
	case <-time.After(5 * time.Second):
		t.Fatal("no entry streamed")
	}
}

func TestTrees(t *testing.T) {
	fs := afero.NewMemMapFs()
	seed(t, fs, "/src/a/f.txt", "/src/b.txt")

	gw := memory.New(memory.WithRepository("acme/data", remote.KindDataset, "x/y.bin", "z.txt"))
	svc := newService(t, gw, fs)

	local, err := svc.LocalTree("/src")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/f.txt", "b.txt"}, local.Paths())

	rt, err := svc.RemoteTree(testContext(t), "acme/data", remote.KindDataset, "tok")
	require.NoError(t, err)
	assert.Equal(t, "acme/data", rt.Name)
	assert.Equal(t, []string{"x/y.bin", "z.txt"}, rt.Paths())

	_, err = svc.RemoteTree(testContext(t), "bad", remote.KindDataset, "tok")
	assert.Error(t, err)
	_, err = svc.RemoteTree(testContext(t), "acme/missing", remote.KindDataset, "tok")
	assert.True(t, remote.IsNotFound(err))
	_, err = svc.LocalTree("/missing")
	assert.Error(t, err)
}

func TestWaitUnknownJob(t *testing.T) {
	svc := newService(t, mockery.NewMockGateway_remote(t), afero.NewMemMapFs())
	_, err := svc.Wait(context.Background(), "nope")
	assert.Error(t, err)
}
