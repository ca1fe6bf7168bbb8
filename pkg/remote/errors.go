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

package remote

import (
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrConflict marks a create that failed because the repository already exists
	ErrConflict = errors.New("repository already exists")
	// ErrNotFound marks a repository or entry that does not exist
	ErrNotFound = errors.New("repository not found")
	// ErrUnauthorized marks a rejected credential
	ErrUnauthorized = errors.New("unauthorized")
)

// 🔑 AuthError is returned by Authenticate when the credential is rejected or
// cannot be checked
type AuthError struct {
	Cause error
}

func (e *AuthError) Error() string {
	if e.Cause == nil {
		return "authentication failed"
	}
	return "authentication failed: " + e.Cause.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// NewAuthError wraps cause as an AuthError
func NewAuthError(cause error) *AuthError {
	return &AuthError{Cause: cause}
}

// IsConflict reports whether err means "already exists"
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsNotFound reports whether err means "does not exist"
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAuth reports whether err is an authentication failure
func IsAuth(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae) || errors.Is(err, ErrUnauthorized)
}
