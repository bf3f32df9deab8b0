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

package gbq

import "cloud.google.com/go/bigquery"

// GetRecordsSchema defines records table schema
func GetRecordsSchema() bigquery.Schema {
	return bigquery.Schema{
		{Name: "parentScope", Required: true, Type: bigquery.StringFieldType, Description: "Scope the collection ran on: projects/x, folders/x or organizations/x"},
		{Name: "projectNumber", Required: true, Type: bigquery.StringFieldType},
		{Name: "organizationID", Required: true, Type: bigquery.StringFieldType},
		{Name: "resourceName", Required: true, Type: bigquery.StringFieldType},
		{Name: "assetName", Required: true, Type: bigquery.StringFieldType},
		{Name: "assetType", Required: true, Type: bigquery.StringFieldType},
		{Name: "zone", Required: true, Type: bigquery.StringFieldType},
		{Name: "ancestryPath", Required: false, Type: bigquery.StringFieldType},
		{Name: "policy", Required: false, Type: bigquery.RecordFieldType, Schema: bigquery.Schema{
			{Name: "version", Required: false, Type: bigquery.IntegerFieldType},
			{Name: "etag", Required: false, Type: bigquery.StringFieldType},
			{Name: "bindings", Repeated: true, Type: bigquery.RecordFieldType, Schema: bigquery.Schema{
				{Name: "role", Required: true, Type: bigquery.StringFieldType},
				{Name: "members", Repeated: true, Type: bigquery.StringFieldType},
				{Name: "condition", Required: false, Type: bigquery.RecordFieldType, Schema: bigquery.Schema{
					{Name: "title", Required: false, Type: bigquery.StringFieldType},
					{Name: "description", Required: false, Type: bigquery.StringFieldType},
					{Name: "expression", Required: false, Type: bigquery.StringFieldType},
				}},
			}},
		}},
		{Name: "timestamp", Required: true, Type: bigquery.TimestampFieldType, Description: "When the collection ran"},
		{Name: "error", Required: false, Type: bigquery.StringFieldType, Description: "Why the policy could not be fetched, empty on success"},
	}
}
