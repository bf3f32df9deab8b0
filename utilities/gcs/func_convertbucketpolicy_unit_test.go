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

package gcs

import (
	"testing"

	"cloud.google.com/go/iam"
	iampb "google.golang.org/genproto/googleapis/iam/v1"
)

func TestUnitConvertBucketPolicy(t *testing.T) {
	policy := &iam.Policy3{
		Bindings: []*iampb.Binding{
			{
				Role:    "roles/storage.objectViewer",
				Members: []string{"allUsers"},
			},
			{
				Role:    "roles/storage.admin",
				Members: []string{"serviceAccount:sa@other-project.iam.gserviceaccount.com"},
			},
		},
	}

	converted := ConvertBucketPolicy(policy)

	if converted.Version != 3 {
		t.Errorf("Want version 3 got %d", converted.Version)
	}
	if len(converted.Bindings) != 2 {
		t.Fatalf("Want 2 bindings got %d", len(converted.Bindings))
	}
	if converted.Bindings[0].Members[0] != "allUsers" {
		t.Errorf("Want allUsers got %s", converted.Bindings[0].Members[0])
	}
	if converted.Bindings[1].Role != "roles/storage.admin" {
		t.Errorf("Want roles/storage.admin got %s", converted.Bindings[1].Role)
	}
}
