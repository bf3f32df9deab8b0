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

// Settings settings common to all services / all instances
type Settings struct {
	Hosting struct {
		ProjectID  string            `yaml:"projectID,omitempty" valid:"isNotZeroValue"`
		ProjectIDs map[string]string `yaml:"projectIDs"`
		Bigquery   struct {
			Dataset struct {
				Name     string `valid:"isNotZeroValue"`
				Location string `valid:"isNotZeroValue"`
			}
		}
		Pubsub struct {
			TopicNames struct {
				CollectionSummary string `yaml:"collectionSummary" valid:"isNotZeroValue"`
				ComplianceIssues  string `yaml:"complianceIssues" valid:"isNotZeroValue"`
			} `yaml:"topicNames"`
		}
		FireStore struct {
			CollectionIDs struct {
				Buckets   string `valid:"isNotZeroValue"`
				Instances string `valid:"isNotZeroValue"`
			} `yaml:"collectionIDs"`
		}
	}
	Collection struct {
		ParentScope   string   `yaml:"parentScope" valid:"isParentScope"`
		AssetTypes    []string `yaml:"assetTypes" valid:"isNotZeroValue"`
		PageSize      int64    `yaml:"pageSize,omitempty" valid:"isNotZeroValue"`
		Concurrency   int64    `yaml:"concurrency,omitempty" valid:"isNotZeroValue"`
		RetriesNumber int64    `yaml:"retriesNumber,omitempty" valid:"isNotZeroValue"`
	}
}
