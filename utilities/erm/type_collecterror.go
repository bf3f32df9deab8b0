// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package erm

import "fmt"

// Kind classifies an error from a Google API call
type Kind int

// Error kinds, from not retryable to retryable
const (
	KindFatal Kind = iota
	KindAuth
	KindPermissionDenied
	KindMalformedInput
	KindTransient
)

// String interface
func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindPermissionDenied:
		return "permissionDenied"
	case KindMalformedInput:
		return "malformedInput"
	case KindTransient:
		return "transient"
	}
	return "fatal"
}

// CollectError records which resource failed and why
type CollectError struct {
	Kind     Kind
	Resource string
	Err      error
}

// Error interface
func (e *CollectError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s %s: %v", e.Kind, e.Resource, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap interface
func (e *CollectError) Unwrap() error {
	return e.Err
}

// NewCollectError wraps an error with its kind and the resource it relates to
func NewCollectError(kind Kind, resource string, err error) *CollectError {
	return &CollectError{Kind: kind, Resource: resource, Err: err}
}
