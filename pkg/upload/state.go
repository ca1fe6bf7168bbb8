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
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"
)

// 🔄 State is where a job is in its lifecycle
type State string

const (
	StateIdle               State = "idle"
	StateValidating         State = "validating"
	StateAuthenticating     State = "authenticating"
	StateEnsuringRepository State = "ensuring-repository"
	StateUploading          State = "uploading"
	StateCompleted          State = "completed"
	StateFailed             State = "failed"
	StateCancelled          State = "cancelled"
)

// Terminal reports whether no further transitions follow s
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed || s == StateCancelled
}

// UnitStatus is the result of one unit
type UnitStatus string

const (
	UnitSucceeded    UnitStatus = "succeeded"
	UnitFailed       UnitStatus = "failed"
	UnitSkippedEmpty UnitStatus = "skipped-empty"
	UnitCancelled    UnitStatus = "cancelled"
)

// UnitResult pairs a unit with what happened to it
type UnitResult struct {
	Unit   Unit       `json:"unit"`
	Status UnitStatus `json:"status"`
	Detail string     `json:"detail,omitempty"`
	Files  int        `json:"files"`
}

// UnitError is a failed unit reported through Outcome.Err
type UnitError struct {
	Unit   Unit
	Detail string
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("unit %s: %s", e.Unit.Label(), e.Detail)
}

// 🏁 Outcome is the terminal report of a job
type Outcome struct {
	JobID string       `json:"job_id"`
	State State        `json:"state"`
	Units []UnitResult `json:"units"`
	// Detail is the verbatim cause of a failure outside any unit
	Detail string `json:"detail,omitempty"`
	Cause  error  `json:"-"`
}

// Count returns how many units ended with status
func (o Outcome) Count(status UnitStatus) int {
	n := 0
	for _, u := range o.Units {
		if u.Status == status {
			n++
		}
	}
	return n
}

// Statuses returns unit statuses in unit order
func (o Outcome) Statuses() []UnitStatus {
	out := make([]UnitStatus, len(o.Units))
	for i, u := range o.Units {
		out[i] = u.Status
	}
	return out
}

// Err aggregates the job level cause and every failed unit
func (o Outcome) Err() error {
	var merr *multierror.Error
	if o.Cause != nil {
		merr = multierror.Append(merr, o.Cause)
	}
	for _, u := range o.Units {
		if u.Status == UnitFailed {
			merr = multierror.Append(merr, &UnitError{Unit: u.Unit, Detail: u.Detail})
		}
	}
	return merr.ErrorOrNil()
}

// Summary is a one line description of the outcome
func (o Outcome) Summary() string {
	parts := []string{}
	for _, s := range []UnitStatus{UnitSucceeded, UnitFailed, UnitSkippedEmpty, UnitCancelled} {
		if n := o.Count(s); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, s))
		}
	}
	if len(parts) == 0 {
		return string(o.State)
	}
	return string(o.State) + ": " + strings.Join(parts, ", ")
}

// 🛑 CancelToken is a cooperative cancellation flag owned by one job.
// Setting it never interrupts a unit already in flight.
type CancelToken struct {
	cancelled atomic.Bool
}

// NewCancelToken returns an unset token
func NewCancelToken() *CancelToken {
	return &CancelToken{}
}

// Cancel sets the token; it reports whether this call set it
func (t *CancelToken) Cancel() bool {
	if t == nil {
		return false
	}
	return t.cancelled.CompareAndSwap(false, true)
}

// Cancelled reports whether the token is set. A nil token never is.
func (t *CancelToken) Cancelled() bool {
	return t != nil && t.cancelled.Load()
}
