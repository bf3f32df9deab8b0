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

import (
	"testing"
	"time"
)

func TestUnitMergeRecords(t *testing.T) {
	now := time.Date(2022, 8, 1, 10, 0, 0, 0, time.UTC)
	bucketAsset := func(name string) ResourceAsset {
		return ResourceAsset{
			Name:      "//storage.googleapis.com/projects/_/buckets/" + name,
			AssetType: AssetTypeBucket,
			Ancestors: []string{"projects/123456789012", "organizations/999999999999"},
		}
	}
	viewerPolicy := IamPolicy{
		Version: 1,
		Bindings: []IamBinding{
			{Role: "roles/storage.objectViewer", Members: []string{"user:someone@example.com"}},
		},
	}

	t.Run("policyAttachedWhenIndexed", func(t *testing.T) {
		assets := []ResourceAsset{bucketAsset("with-policy"), bucketAsset("without-policy")}
		policies := map[string]IamPolicy{
			assets[0].Name: viewerPolicy,
		}
		records := MergeRecords("projects/123456789012", assets, policies, now)
		if len(records) != 2 {
			t.Fatalf("Want 2 records got %d", len(records))
		}
		if records[0].Policy == nil {
			t.Errorf("Want a policy on %s got nil", records[0].AssetName)
		} else if records[0].Policy.Bindings[0].Role != "roles/storage.objectViewer" {
			t.Errorf("Want roles/storage.objectViewer got %s", records[0].Policy.Bindings[0].Role)
		}
		if records[1].Policy != nil {
			t.Errorf("Want NO policy on %s got one", records[1].AssetName)
		}
		if records[0].ProjectNumber != "123456789012" {
			t.Errorf("Want 123456789012 got %s", records[0].ProjectNumber)
		}
		if records[0].ResourceName != "with-policy" {
			t.Errorf("Want with-policy got %s", records[0].ResourceName)
		}
		if records[0].Timestamp != now {
			t.Errorf("Want %v got %v", now, records[0].Timestamp)
		}
	})

	t.Run("orderFollowsListingAndDuplicatesStay", func(t *testing.T) {
		assets := []ResourceAsset{bucketAsset("b1"), bucketAsset("b2"), bucketAsset("b1")}
		records := MergeRecords("projects/123456789012", assets, nil, now)
		if len(records) != 3 {
			t.Fatalf("Want 3 records got %d", len(records))
		}
		wantOrder := []string{"b1", "b2", "b1"}
		for idx, want := range wantOrder {
			if records[idx].ResourceName != want {
				t.Errorf("Want %s at index %d got %s", want, idx, records[idx].ResourceName)
			}
		}
	})

	t.Run("namelessAssetYieldsRecordWithError", func(t *testing.T) {
		assets := []ResourceAsset{
			{Name: "", AssetType: AssetTypeBucket},
			bucketAsset("healthy"),
		}
		records := MergeRecords("projects/123456789012", assets, nil, now)
		if len(records) != 2 {
			t.Fatalf("Want 2 records got %d", len(records))
		}
		if records[0].Error == "" {
			t.Errorf("Want an error on the nameless record, got none")
		}
		if records[1].Error != "" {
			t.Errorf("Want NO error on the healthy record, got %s", records[1].Error)
		}
	})

	// A policy with zero bindings is never indexed by ListPolicyAssets, so the
	// merged record ends with a nil policy, exactly like a resource that never
	// had one. Pinned so the conflation does not change silently
	t.Run("zeroBindingsLooksLikeNoPolicy", func(t *testing.T) {
		assets := []ResourceAsset{bucketAsset("explicit-empty")}
		policies := map[string]IamPolicy{}
		records := MergeRecords("projects/123456789012", assets, policies, now)
		if records[0].Policy != nil {
			t.Errorf("Want nil policy got %+v", records[0].Policy)
		}
	})

	t.Run("emptyListing", func(t *testing.T) {
		records := MergeRecords("projects/123456789012", nil, nil, now)
		if len(records) != 0 {
			t.Errorf("Want 0 records got %d", len(records))
		}
	})
}
