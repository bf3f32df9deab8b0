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

import (
	"errors"
	"strings"

	"google.golang.org/api/googleapi"
)

var transientErrorParts = []string{"500", "501", "502", "503", "504", "505", "506", "507", "508", "510", "511", "429", "rateLimitExceeded", "Unavailable", "DeadlineExceeded"}

// Classify maps an error from a Google API call to a Kind.
// Structured googleapi errors are inspected first, the error message second
// as the cloud clients surface gRPC statuses as text only
func Classify(err error) Kind {
	if err == nil {
		return KindFatal
	}
	var collectError *CollectError
	if errors.As(err, &collectError) {
		return collectError.Kind
	}
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		switch {
		case gErr.Code == 401:
			return KindAuth
		case gErr.Code == 403:
			return KindPermissionDenied
		case gErr.Code == 429 || gErr.Code >= 500:
			return KindTransient
		case gErr.Code == 400:
			return KindMalformedInput
		}
		return KindFatal
	}
	errorMessage := err.Error()
	switch {
	case strings.Contains(errorMessage, "Unauthenticated") || strings.Contains(errorMessage, "401"):
		return KindAuth
	case strings.Contains(errorMessage, "PermissionDenied") || strings.Contains(errorMessage, "403") || strings.Contains(errorMessage, "permission denied"):
		return KindPermissionDenied
	case strings.Contains(errorMessage, "InvalidArgument") || strings.Contains(errorMessage, "400"):
		return KindMalformedInput
	}
	for _, transientErrorPart := range transientErrorParts {
		if strings.Contains(errorMessage, transientErrorPart) {
			return KindTransient
		}
	}
	return KindFatal
}
