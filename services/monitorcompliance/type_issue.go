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

package monitorcompliance

// Issue severities, from most to least urgent
const (
	SeverityHigh   = "HIGH"
	SeverityMedium = "MEDIUM"
	SeverityLow    = "LOW"
)

// Issue categories
const (
	CategoryPublicAccess   = "publicAccess"
	CategoryCrossProjectSA = "crossProjectServiceAccount"
	CategoryExternalMember = "externalMember"
)

// Issue is one non compliant binding member on one resource
type Issue struct {
	Severity           string `json:"severity"`
	Category           string `json:"category"`
	ResourceName       string `json:"resource_name"`
	AssetName          string `json:"asset_name"`
	AssetShortTypeName string `json:"asset_short_type_name"`
	ProjectNumber      string `json:"project_number"`
	Role               string `json:"role"`
	Member             string `json:"member"`
	Detail             string `json:"detail"`
}
