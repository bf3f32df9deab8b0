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

package stream2bq

import (
	"time"

	"github.com/dograga/compliance-checks/utilities/cai"
)

// recordRow mirrors the records table schema, field names follow the schema not the Go structs
type recordRow struct {
	ParentScope    string     `bigquery:"parentScope"`
	ProjectNumber  string     `bigquery:"projectNumber"`
	OrganizationID string     `bigquery:"organizationID"`
	ResourceName   string     `bigquery:"resourceName"`
	AssetName      string     `bigquery:"assetName"`
	AssetType      string     `bigquery:"assetType"`
	Zone           string     `bigquery:"zone"`
	AncestryPath   string     `bigquery:"ancestryPath"`
	Policy         *policyRow `bigquery:"policy"`
	Timestamp      time.Time  `bigquery:"timestamp"`
	Error          string     `bigquery:"error"`
}

type policyRow struct {
	Version  int64        `bigquery:"version"`
	Etag     string       `bigquery:"etag"`
	Bindings []bindingRow `bigquery:"bindings"`
}

type bindingRow struct {
	Role      string        `bigquery:"role"`
	Members   []string      `bigquery:"members"`
	Condition *conditionRow `bigquery:"condition"`
}

type conditionRow struct {
	Title       string `bigquery:"title"`
	Description string `bigquery:"description"`
	Expression  string `bigquery:"expression"`
}

func newRecordRow(record cai.MergedRecord) (row recordRow) {
	row.ParentScope = record.ParentScope
	row.ProjectNumber = record.ProjectNumber
	row.OrganizationID = record.OrganizationID
	row.ResourceName = record.ResourceName
	row.AssetName = record.AssetName
	row.AssetType = record.AssetType
	row.Zone = record.Zone
	row.AncestryPath = record.AncestryPath
	row.Timestamp = record.Timestamp
	row.Error = record.Error
	if record.Policy == nil {
		return row
	}
	policy := policyRow{
		Version: int64(record.Policy.Version),
		Etag:    record.Policy.Etag,
	}
	for _, binding := range record.Policy.Bindings {
		bindingRow := bindingRow{
			Role:    binding.Role,
			Members: binding.Members,
		}
		if binding.Condition != nil {
			bindingRow.Condition = &conditionRow{
				Title:       binding.Condition.Title,
				Description: binding.Condition.Description,
				Expression:  binding.Condition.Expression,
			}
		}
		policy.Bindings = append(policy.Bindings, bindingRow)
	}
	row.Policy = &policy
	return row
}
