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
	"log"
	"os"
	"strconv"
	"testing"

	"gopkg.in/yaml.v2"
)

func TestUnitSituate(t *testing.T) {
	type testcases []struct {
		Name        string
		Settings    Settings
		Environment string
		Want        map[string]string
	}
	var testCases testcases

	yamlBytes := []byte(`---
- name: projectFromEnvironmentMap
  settings:
    hosting:
      projectIDs:
        dev: blabladev
        prd: blablaprd
    collection:
      parentScope: projects/blabladev
  environment: dev
  want:
    projectID: blabladev
    datasetName: compliance_checks
    datasetLocation: US
    collectionSummaryTopic: collection-summaries
    bucketsCollectionID: buckets
    instancesCollectionID: instances
    pageSize: "1000"
    concurrency: "10"
    retriesNumber: "3"
- name: explicitValuesKept
  settings:
    hosting:
      projectIDs:
        prd: blablaprd
      bigquery:
        dataset:
          name: my_dataset
          location: EU
      pubsub:
        topicNames:
          collectionSummary: my-summaries
      firestore:
        collectionIDs:
          buckets: my-buckets
          instances: my-instances
    collection:
      parentScope: organizations/999999999999
      pageSize: 500
      concurrency: 4
      retriesNumber: 5
  environment: prd
  want:
    projectID: blablaprd
    datasetName: my_dataset
    datasetLocation: EU
    collectionSummaryTopic: my-summaries
    bucketsCollectionID: my-buckets
    instancesCollectionID: my-instances
    pageSize: "500"
    concurrency: "4"
    retriesNumber: "5"`)

	err := yaml.Unmarshal(yamlBytes, &testCases)
	if err != nil {
		log.Fatalf("Unable to unmarshal yaml test data %v", err)
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		tc.Settings.Situate(tc.Environment)
		for key, wantedValue := range tc.Want {
			key := key
			wantedValue := wantedValue
			testName := tc.Name + "-" + key
			t.Run(testName, func(t *testing.T) {
				var got string
				switch key {
				case "projectID":
					got = tc.Settings.Hosting.ProjectID
				case "datasetName":
					got = tc.Settings.Hosting.Bigquery.Dataset.Name
				case "datasetLocation":
					got = tc.Settings.Hosting.Bigquery.Dataset.Location
				case "collectionSummaryTopic":
					got = tc.Settings.Hosting.Pubsub.TopicNames.CollectionSummary
				case "bucketsCollectionID":
					got = tc.Settings.Hosting.FireStore.CollectionIDs.Buckets
				case "instancesCollectionID":
					got = tc.Settings.Hosting.FireStore.CollectionIDs.Instances
				case "pageSize":
					got = strconv.FormatInt(tc.Settings.Collection.PageSize, 10)
				case "concurrency":
					got = strconv.FormatInt(tc.Settings.Collection.Concurrency, 10)
				case "retriesNumber":
					got = strconv.FormatInt(tc.Settings.Collection.RetriesNumber, 10)
				default:
					t.Fatalf("Unmanaged key '%s'", key)
				}
				if wantedValue != got {
					t.Errorf("Want %s '%s' got '%s'", key, wantedValue, got)
				}
			})
		}
	}
}

func TestUnitSituateProjectFromEnvVar(t *testing.T) {
	previous, hadPrevious := os.LookupEnv("GCP_PROJECT")
	os.Setenv("GCP_PROJECT", "blabla-from-env")
	defer func() {
		if hadPrevious {
			os.Setenv("GCP_PROJECT", previous)
		} else {
			os.Unsetenv("GCP_PROJECT")
		}
	}()

	var settings Settings
	settings.Situate("dev")
	if settings.Hosting.ProjectID != "blabla-from-env" {
		t.Errorf("Want blabla-from-env got %s", settings.Hosting.ProjectID)
	}
}

func TestUnitValidate(t *testing.T) {
	var settings Settings
	settings.Hosting.ProjectIDs = map[string]string{"dev": "blabladev"}
	settings.Collection.ParentScope = "projects/blabladev"
	settings.Situate("dev")
	if err := settings.Validate(); err != nil {
		t.Errorf("Want NO error after Situate, got %v", err)
	}

	var bareSettings Settings
	bareSettings.Collection.ParentScope = "blabla"
	bareSettings.Situate("dev")
	if os.Getenv("GCP_PROJECT") == "" {
		if err := bareSettings.Validate(); err == nil {
			t.Errorf("Should send back an error on malformed parentScope and is NOT")
		}
	}
}
