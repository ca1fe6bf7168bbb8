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

package hub

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/walteh/treepush/pkg/remote"
)

// HTTPError is a non-success response from the Hub
type HTTPError struct {
	StatusCode int
	Method     string
	URL        string
	Message    string
	ErrorCode  string
}

func (e *HTTPError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.URL, e.StatusCode, msg)
}

// Unwrap maps the status onto the remote error sentinels
func (e *HTTPError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusConflict:
		return remote.ErrConflict
	case e.StatusCode == http.StatusNotFound, e.ErrorCode == "RepoNotFound":
		return remote.ErrNotFound
	case e.StatusCode == http.StatusUnauthorized:
		return remote.ErrUnauthorized
	}
	return nil
}

// checkResponse returns an *HTTPError for any status outside 2xx
func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))

	he := &HTTPError{
		StatusCode: resp.StatusCode,
		Method:     resp.Request.Method,
		URL:        resp.Request.URL.Redacted(),
		ErrorCode:  resp.Header.Get("X-Error-Code"),
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		he.Message = payload.Error
	} else if msg := resp.Header.Get("X-Error-Message"); msg != "" {
		he.Message = msg
	} else {
		he.Message = strings.TrimSpace(string(body))
	}
	return he
}
