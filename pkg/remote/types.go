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
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📦 Kind is the flavor of a remote repository
type Kind string

const (
	KindDataset Kind = "dataset"
	KindModel   Kind = "model"
	KindSpace   Kind = "space"
)

// Kinds lists every known kind
var Kinds = []Kind{KindDataset, KindModel, KindSpace}

// Valid reports whether k is a known kind
func (k Kind) Valid() bool {
	switch k {
	case KindDataset, KindModel, KindSpace:
		return true
	}
	return false
}

// Plural returns the URL collection name, e.g. "datasets"
func (k Kind) Plural() string {
	return string(k) + "s"
}

// ParseKind parses a kind, case insensitive
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", errors.Errorf("unknown repository kind %q, options: dataset, model, space", s)
	}
	return k, nil
}

// 🔒 Visibility controls who can read a repository
type Visibility string

const (
	Public  Visibility = "public"
	Private Visibility = "private"
)

// Valid reports whether v is a known visibility
func (v Visibility) Valid() bool {
	return v == Public || v == Private
}

// ParseVisibility parses a visibility, case insensitive
func ParseVisibility(s string) (Visibility, error) {
	v := Visibility(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", errors.Errorf("unknown visibility %q, options: public, private", s)
	}
	return v, nil
}

var repoIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+/[A-Za-z0-9._-]+$`)

// ValidRepoID reports whether id has the owner/name shape
func ValidRepoID(id string) bool {
	return repoIDPattern.MatchString(id)
}

// SplitRepoID splits owner/name
func SplitRepoID(id string) (owner, name string, err error) {
	if !ValidRepoID(id) {
		return "", "", errors.Errorf("invalid repository id %q, expected owner/name", id)
	}
	owner, name, _ = strings.Cut(id, "/")
	return owner, name, nil
}
