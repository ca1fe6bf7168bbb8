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

package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/walteh/treepush/pkg/metrics"
	"github.com/walteh/treepush/pkg/remote"
	"github.com/walteh/treepush/pkg/tree"
	"github.com/walteh/treepush/pkg/upload"
	"gitlab.com/tozd/go/errors"
)

const keepAliveInterval = 30 * time.Second

// jobRequest is the body of POST /api/v1/jobs. The token may also come from
// the Authorization header or the server default.
type jobRequest struct {
	upload.Job
	Token string `json:"token,omitempty"`
}

type treeResponse struct {
	Tree  *tree.Node `json:"tree"`
	Text  string     `json:"text"`
	Dirs  int        `json:"directories"`
	Files int        `json:"files"`
}

// 🌐 Handler adapts a Service to HTTP
type Handler struct {
	svc          *upload.Service
	metrics      *metrics.Metrics
	defaultToken string
	logger       zerolog.Logger
}

// NewHandler creates a handler. defaultToken is used when a request carries none.
func NewHandler(svc *upload.Service, m *metrics.Metrics, defaultToken string, logger zerolog.Logger) *Handler {
	return &Handler{
		svc:          svc,
		metrics:      m,
		defaultToken: defaultToken,
		logger:       logger,
	}
}

// 🛣️ NewRouter wires the routes
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(h.logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "treepush",
			"state":   h.svc.Snapshot().State,
		})
	})
	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		jobs := v1.Group("/jobs")
		{
			jobs.POST("", h.Submit)
			jobs.POST("/cancel", h.Cancel)
			jobs.POST("/:id/cancel", h.Cancel)
			jobs.GET("/current", h.Current)
		}

		v1.GET("/logs", h.Logs)
		v1.GET("/logs/stream", h.Stream)

		v1.GET("/tree/local", h.LocalTree)
		v1.GET("/tree/remote", h.RemoteTree)
	}

	return router
}

// RequestLogger logs each request with zerolog
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("http request")

		for _, err := range c.Errors {
			logger.Error().Err(err.Err).Str("path", path).Msg("request error")
		}
	}
}

// bearer returns the Authorization bearer token, if any
func bearer(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(h, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

func (h *Handler) token(c *gin.Context, fromBody string) string {
	if fromBody != "" {
		return fromBody
	}
	if t := bearer(c); t != "" {
		return t
	}
	return h.defaultToken
}

// Submit handles POST /api/v1/jobs
func (h *Handler) Submit(c *gin.Context) {
	var req jobRequest
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		_ = c.Error(errors.Errorf("decoding job: %w", err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid job",
			"details": err.Error(),
		})
		return
	}

	job := req.Job
	job.Token = h.token(c, req.Token)

	ack := h.svc.Submit(job)
	switch {
	case ack.Accepted():
		c.JSON(http.StatusAccepted, ack)
	case ack.Reason == "busy":
		c.JSON(http.StatusConflict, ack)
	default:
		c.JSON(http.StatusBadRequest, ack)
	}
}

// Cancel handles POST /api/v1/jobs/cancel and /api/v1/jobs/:id/cancel
func (h *Handler) Cancel(c *gin.Context) {
	var ack upload.Ack
	if id := c.Param("id"); id != "" {
		ack = h.svc.CancelJob(id)
	} else {
		ack = h.svc.RequestCancel()
	}

	if !ack.Accepted() {
		c.JSON(http.StatusConflict, ack)
		return
	}
	c.JSON(http.StatusAccepted, ack)
}

// Current handles GET /api/v1/jobs/current
func (h *Handler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Snapshot())
}

// Logs handles GET /api/v1/logs. Without ?tail it drains the poll cursor.
func (h *Handler) Logs(c *gin.Context) {
	if raw, ok := c.GetQuery("tail"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid tail",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": h.svc.TailLogs(n)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": h.svc.PollLogs()})
}

// Stream handles GET /api/v1/logs/stream as server-sent events
func (h *Handler) Stream(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	entries, cancel := h.svc.Subscribe(64)
	defer cancel()

	clientIP := c.ClientIP()
	h.logger.Debug().Str("client_ip", clientIP).Msg("log stream connected")

	fmt.Fprintf(c.Writer, "event: connected\ndata: {\"message\": \"Connected to log stream\"}\n\n")
	c.Writer.Flush()

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case entry, ok := <-entries:
			if !ok {
				return
			}
			data, err := json.Marshal(entry)
			if err != nil {
				h.logger.Error().Err(err).Msg("marshalling log entry")
				continue
			}
			fmt.Fprintf(c.Writer, "id: %d\nevent: log\ndata: %s\n\n", entry.Seq, data)
			c.Writer.Flush()

		case <-ticker.C:
			fmt.Fprintf(c.Writer, "event: ping\ndata: {\"timestamp\": \"%s\"}\n\n", time.Now().Format(time.RFC3339))
			c.Writer.Flush()

		case <-c.Request.Context().Done():
			h.logger.Debug().Str("client_ip", clientIP).Msg("log stream disconnected")
			return
		}
	}
}

// LocalTree handles GET /api/v1/tree/local?path=
func (h *Handler) LocalTree(c *gin.Context) {
	dir := c.DefaultQuery("path", ".")
	node, err := h.svc.LocalTree(dir)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Failed to read directory",
			"details": err.Error(),
		})
		return
	}
	h.writeTree(c, node, dir)
}

// RemoteTree handles GET /api/v1/tree/remote?repo=&kind=
func (h *Handler) RemoteTree(c *gin.Context) {
	kind := remote.Kind(c.DefaultQuery("kind", string(remote.KindDataset)))
	node, err := h.svc.RemoteTree(c.Request.Context(), c.Query("repo"), kind, h.token(c, ""))
	if err != nil {
		_ = c.Error(err)
		status := http.StatusBadGateway
		var verr *upload.ValidationError
		switch {
		case errors.As(err, &verr):
			status = http.StatusBadRequest
		case remote.IsAuth(err):
			status = http.StatusUnauthorized
		case remote.IsNotFound(err):
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"error":   "Failed to list repository",
			"details": err.Error(),
		})
		return
	}
	h.writeTree(c, node, "")
}

func (h *Handler) writeTree(c *gin.Context, node *tree.Node, label string) {
	text, err := tree.Render(node, tree.RenderOptions{RootLabel: label})
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to render tree",
			"details": err.Error(),
		})
		return
	}
	dirs, files := node.Count()
	c.JSON(http.StatusOK, treeResponse{Tree: node, Text: text, Dirs: dirs, Files: files})
}
