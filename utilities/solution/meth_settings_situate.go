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

package solution

import (
	"os"

	"github.com/dograga/compliance-checks/utilities/cai"
)

// Default values filled in by Situate when the settings file leaves them out
const (
	DefaultPageSize      int64 = 1000
	DefaultConcurrency   int64 = 10
	DefaultRetriesNumber int64 = 3
)

// Situate set settings from settings based on a given situation
// Situation is the environment name (string)
// Fills the hosting project from the environment map, then defaults
func (settings *Settings) Situate(environmentName string) {
	if projectID, ok := settings.Hosting.ProjectIDs[environmentName]; ok {
		settings.Hosting.ProjectID = projectID
	}
	if settings.Hosting.ProjectID == "" {
		settings.Hosting.ProjectID = os.Getenv("GCP_PROJECT")
	}
	if settings.Hosting.Bigquery.Dataset.Name == "" {
		settings.Hosting.Bigquery.Dataset.Name = "compliance_checks"
	}
	if settings.Hosting.Bigquery.Dataset.Location == "" {
		settings.Hosting.Bigquery.Dataset.Location = "US"
	}
	if settings.Hosting.Pubsub.TopicNames.CollectionSummary == "" {
		settings.Hosting.Pubsub.TopicNames.CollectionSummary = "collection-summaries"
	}
	if settings.Hosting.Pubsub.TopicNames.ComplianceIssues == "" {
		settings.Hosting.Pubsub.TopicNames.ComplianceIssues = "compliance-issues"
	}
	if settings.Hosting.FireStore.CollectionIDs.Buckets == "" {
		settings.Hosting.FireStore.CollectionIDs.Buckets = "buckets"
	}
	if settings.Hosting.FireStore.CollectionIDs.Instances == "" {
		settings.Hosting.FireStore.CollectionIDs.Instances = "instances"
	}
	if len(settings.Collection.AssetTypes) == 0 {
		settings.Collection.AssetTypes = []string{cai.AssetTypeBucket, cai.AssetTypeInstance}
	}
	if settings.Collection.PageSize == 0 {
		settings.Collection.PageSize = DefaultPageSize
	}
	if settings.Collection.Concurrency == 0 {
		settings.Collection.Concurrency = DefaultConcurrency
	}
	if settings.Collection.RetriesNumber == 0 {
		settings.Collection.RetriesNumber = DefaultRetriesNumber
	}
}
