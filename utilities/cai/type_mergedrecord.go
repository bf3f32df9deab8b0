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

import "time"

// MergedRecord is one resource with its IAM policy attached when one was found.
// Policy stays nil when the inventory never listed a binding for the asset,
// which also covers a policy explicitly set to zero bindings
type MergedRecord struct {
	ParentScope    string     `json:"parent_scope" firestore:"parentScope"`
	ProjectNumber  string     `json:"project_number" firestore:"projectNumber"`
	OrganizationID string     `json:"organization_id" firestore:"organizationID"`
	ResourceName   string     `json:"resource_name" firestore:"resourceName"`
	AssetName      string     `json:"asset_name" firestore:"assetName"`
	AssetType      string     `json:"asset_type" firestore:"assetType"`
	Zone           string     `json:"zone" firestore:"zone"`
	AncestryPath   string     `json:"ancestry_path" firestore:"ancestryPath"`
	Policy         *IamPolicy `json:"iam_policy,omitempty" firestore:"iamPolicy,omitempty"`
	Timestamp      time.Time  `json:"timestamp" firestore:"timestamp"`
	Error          string     `json:"error,omitempty" firestore:"error,omitempty"`
}
