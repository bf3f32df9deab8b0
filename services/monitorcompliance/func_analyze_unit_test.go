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

import (
	"testing"

	"github.com/dograga/compliance-checks/utilities/cai"
)

func recordWithMembers(resourceName string, role string, members []string) cai.MergedRecord {
	return cai.MergedRecord{
		ResourceName:  resourceName,
		AssetName:     "//storage.googleapis.com/" + resourceName,
		AssetType:     cai.AssetTypeBucket,
		ProjectNumber: "123456789012",
		Policy: &cai.IamPolicy{
			Bindings: []cai.IamBinding{
				{Role: role, Members: members},
			},
		},
	}
}

func TestUnitAnalyze(t *testing.T) {
	testCases := []struct {
		name         string
		scopeID      string
		records      []cai.MergedRecord
		wantIssues   int
		wantCategory string
		wantSeverity string
	}{
		{
			name:    "allUsersIsHighSeverityPublicAccess",
			scopeID: "projects/blabla",
			records: []cai.MergedRecord{
				recordWithMembers("blabla-bucket", "roles/storage.objectViewer", []string{"allUsers"}),
			},
			wantIssues:   1,
			wantCategory: CategoryPublicAccess,
			wantSeverity: SeverityHigh,
		},
		{
			name:    "allAuthenticatedUsersIsMediumSeverityPublicAccess",
			scopeID: "projects/blabla",
			records: []cai.MergedRecord{
				recordWithMembers("blabla-bucket", "roles/storage.objectViewer", []string{"allAuthenticatedUsers"}),
			},
			wantIssues:   1,
			wantCategory: CategoryPublicAccess,
			wantSeverity: SeverityMedium,
		},
		{
			name:    "serviceAccountFromAnotherProject",
			scopeID: "projects/blabla",
			records: []cai.MergedRecord{
				recordWithMembers("blabla-bucket", "roles/storage.admin", []string{"serviceAccount:robot@otherproject.iam.gserviceaccount.com"}),
			},
			wantIssues:   1,
			wantCategory: CategoryCrossProjectSA,
			wantSeverity: SeverityMedium,
		},
		{
			name:    "serviceAccountFromSameProjectIsFine",
			scopeID: "projects/blabla",
			records: []cai.MergedRecord{
				recordWithMembers("blabla-bucket", "roles/storage.admin", []string{"serviceAccount:robot@blabla.iam.gserviceaccount.com"}),
			},
			wantIssues: 0,
		},
		{
			name:    "googleManagedServiceAgentIsFine",
			scopeID: "projects/blabla",
			records: []cai.MergedRecord{
				recordWithMembers("blabla-bucket", "roles/editor", []string{"serviceAccount:blabla@appspot.gserviceaccount.com"}),
			},
			wantIssues: 0,
		},
		{
			name:    "crossProjectRuleNeedsAProjectScope",
			scopeID: "organizations/999999999999",
			records: []cai.MergedRecord{
				recordWithMembers("blabla-bucket", "roles/storage.admin", []string{"serviceAccount:robot@otherproject.iam.gserviceaccount.com"}),
			},
			wantIssues: 0,
		},
		{
			name:    "externalUserDomain",
			scopeID: "projects/blabla",
			records: []cai.MergedRecord{
				recordWithMembers("blabla-bucket", "roles/storage.objectViewer", []string{"user:someone@blabla-corp.example.com"}),
			},
			wantIssues:   1,
			wantCategory: CategoryExternalMember,
			wantSeverity: SeverityLow,
		},
		{
			name:    "googleDomainUserIsFine",
			scopeID: "projects/blabla",
			records: []cai.MergedRecord{
				recordWithMembers("blabla-bucket", "roles/storage.objectViewer", []string{"user:someone@prod.google.com"}),
			},
			wantIssues: 0,
		},
		{
			name:    "externalDomainMember",
			scopeID: "projects/blabla",
			records: []cai.MergedRecord{
				recordWithMembers("blabla-bucket", "roles/storage.objectViewer", []string{"domain:blabla-corp.example.com"}),
			},
			wantIssues:   1,
			wantCategory: CategoryExternalMember,
			wantSeverity: SeverityLow,
		},
		{
			name:    "recordWithoutPolicyYieldsNoIssue",
			scopeID: "projects/blabla",
			records: []cai.MergedRecord{
				{ResourceName: "blabla-bucket", AssetType: cai.AssetTypeBucket, Error: "policy could not be fetched"},
			},
			wantIssues: 0,
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			analysis := Analyze(tc.scopeID, tc.records)
			if analysis.TotalResourcesAnalyzed != len(tc.records) {
				t.Errorf("Want %d resources analyzed got %d", len(tc.records), analysis.TotalResourcesAnalyzed)
			}
			if len(analysis.Issues) != tc.wantIssues {
				t.Fatalf("Want %d issues got %d: %v", tc.wantIssues, len(analysis.Issues), analysis.Issues)
			}
			if tc.wantIssues == 0 {
				if len(analysis.Recommendations) != 0 {
					t.Errorf("Want NO recommendation got %v", analysis.Recommendations)
				}
				return
			}
			issue := analysis.Issues[0]
			if issue.Category != tc.wantCategory {
				t.Errorf("Want category %s got %s", tc.wantCategory, issue.Category)
			}
			if issue.Severity != tc.wantSeverity {
				t.Errorf("Want severity %s got %s", tc.wantSeverity, issue.Severity)
			}
			if analysis.Summary[tc.wantCategory] != tc.wantIssues {
				t.Errorf("Want summary[%s] %d got %d", tc.wantCategory, tc.wantIssues, analysis.Summary[tc.wantCategory])
			}
			if len(analysis.Recommendations) != 1 {
				t.Errorf("Want 1 recommendation got %v", analysis.Recommendations)
			}
		})
	}
}

func TestUnitAnalyzeSummaryCountsAllCategories(t *testing.T) {
	records := []cai.MergedRecord{
		recordWithMembers("bucket-a", "roles/storage.objectViewer", []string{"allUsers", "allAuthenticatedUsers"}),
		recordWithMembers("bucket-b", "roles/storage.admin", []string{"serviceAccount:robot@otherproject.iam.gserviceaccount.com"}),
		recordWithMembers("bucket-c", "roles/storage.objectViewer", []string{"user:someone@blabla-corp.example.com"}),
	}
	analysis := Analyze("projects/blabla", records)

	if analysis.Summary[CategoryPublicAccess] != 2 {
		t.Errorf("Want 2 public access issues got %d", analysis.Summary[CategoryPublicAccess])
	}
	if analysis.Summary[CategoryCrossProjectSA] != 1 {
		t.Errorf("Want 1 cross project issue got %d", analysis.Summary[CategoryCrossProjectSA])
	}
	if analysis.Summary[CategoryExternalMember] != 1 {
		t.Errorf("Want 1 external member issue got %d", analysis.Summary[CategoryExternalMember])
	}
	if len(analysis.Issues) != 4 {
		t.Errorf("Want 4 issues got %d", len(analysis.Issues))
	}
	if len(analysis.Recommendations) != 3 {
		t.Errorf("Want 3 recommendations got %v", analysis.Recommendations)
	}
	if analysis.Issues[0].AssetShortTypeName != "storage-Bucket" {
		t.Errorf("Want storage-Bucket got %s", analysis.Issues[0].AssetShortTypeName)
	}
}
