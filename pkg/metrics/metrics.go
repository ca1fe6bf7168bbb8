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

// Package metrics exposes Prometheus instruments for upload jobs.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "treepush"

// Metrics holds the job and unit instruments
type Metrics struct {
	jobsTotal         *prometheus.CounterVec
	jobsRejectedTotal *prometheus.CounterVec
	jobsInFlight      prometheus.Gauge
	jobDuration       *prometheus.HistogramVec

	unitsTotal         *prometheus.CounterVec
	unitDuration       *prometheus.HistogramVec
	filesUploadedTotal prometheus.Counter

	gatherer prometheus.Gatherer
}

// 🏭 New registers the instruments with registerer. A nil registerer uses a
// fresh registry so tests and multiple services never collide.
func New(registerer prometheus.Registerer) *Metrics {
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if registerer == nil {
		reg := prometheus.NewRegistry()
		registerer = reg
		gatherer = reg
	} else if g, ok := registerer.(prometheus.Gatherer); ok {
		gatherer = g
	}

	factory := promauto.With(registerer)

	return &Metrics{
		jobsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_total",
			Help:      "Upload jobs that reached a terminal state",
		}, []string{"state"}),
		jobsRejectedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_rejected_total",
			Help:      "Submissions rejected before a run started",
		}, []string{"reason"}),
		jobsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "jobs_in_flight",
			Help:      "Upload jobs currently running",
		}),
		jobDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "job_duration_seconds",
			Help:      "Wall time of upload jobs",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 14), // 100ms to ~14m
		}, []string{"state"}),
		unitsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "units_total",
			Help:      "Upload units by final status",
		}, []string{"status"}),
		unitDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "unit_duration_seconds",
			Help:      "Wall time of a single unit dispatch",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 14),
		}, []string{"status"}),
		filesUploadedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_uploaded_total",
			Help:      "Files handed to the gateway by succeeded units",
		}),
		gatherer: gatherer,
	}
}

// JobStarted marks a run as in flight
func (m *Metrics) JobStarted() {
	if m == nil {
		return
	}
	m.jobsInFlight.Inc()
}

// JobFinished records a terminal state
func (m *Metrics) JobFinished(state string, d time.Duration) {
	if m == nil {
		return
	}
	m.jobsInFlight.Dec()
	m.jobsTotal.WithLabelValues(state).Inc()
	m.jobDuration.WithLabelValues(state).Observe(d.Seconds())
}

// JobRejected records a submission that never ran
func (m *Metrics) JobRejected(reason string) {
	if m == nil {
		return
	}
	m.jobsRejectedTotal.WithLabelValues(reason).Inc()
}

// UnitFinished records a unit result
func (m *Metrics) UnitFinished(status string, files int, d time.Duration) {
	if m == nil {
		return
	}
	m.unitsTotal.WithLabelValues(status).Inc()
	m.unitDuration.WithLabelValues(status).Observe(d.Seconds())
	if status == "succeeded" {
		m.filesUploadedTotal.Add(float64(files))
	}
}

// Handler serves the registry the metrics were registered with
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
