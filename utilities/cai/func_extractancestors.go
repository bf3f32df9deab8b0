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

package cai

import "strings"

// ExtractAncestors retrieves the project number and the organization ID from an
// asset ancestors slice. First match wins, missing levels stay "unknown" as a
// project may live outside any organization
func ExtractAncestors(ancestors []string) (projectNumber string, organizationID string) {
	projectNumber = Unknown
	organizationID = Unknown
	for _, ancestor := range ancestors {
		if projectNumber == Unknown && strings.HasPrefix(ancestor, "projects/") {
			projectNumber = strings.TrimPrefix(ancestor, "projects/")
		}
		if organizationID == Unknown && strings.HasPrefix(ancestor, "organizations/") {
			organizationID = strings.TrimPrefix(ancestor, "organizations/")
		}
	}
	return projectNumber, organizationID
}
