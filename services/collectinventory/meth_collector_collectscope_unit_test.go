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

package collectinventory

import (
	"context"
	"errors"
	"testing"

	"github.com/dograga/compliance-checks/utilities/cai"
	"github.com/dograga/compliance-checks/utilities/erm"
)

func TestUnitCollectScope(t *testing.T) {
	ctx := context.Background()

	t.Run("mergesPoliciesByAssetName", func(t *testing.T) {
		lister := &fakeAssetLister{
			assets: []cai.ResourceAsset{
				{
					Name:      "//storage.googleapis.com/bucket-with-policy",
					AssetType: cai.AssetTypeBucket,
					Ancestors: []string{"projects/123456789012", "organizations/999999999999"},
				},
				{
					Name:      "//storage.googleapis.com/bucket-without-policy",
					AssetType: cai.AssetTypeBucket,
					Ancestors: []string{"projects/123456789012", "organizations/999999999999"},
				},
			},
			policies: map[string]cai.IamPolicy{
				"//storage.googleapis.com/bucket-with-policy": {
					Bindings: []cai.IamBinding{
						{Role: "roles/storage.objectViewer", Members: []string{"allUsers"}},
					},
				},
			},
		}
		collector := newTestCollector(lister, nil, nil, nil)
		result, err := collector.CollectScope(ctx, "projects/blabla", nil, false)
		if err != nil {
			t.Fatalf("Want NO error got %v", err)
		}
		if result.Total != 2 {
			t.Fatalf("Want 2 records got %d", result.Total)
		}
		if result.Records[0].Policy == nil {
			t.Errorf("Want a policy on the first record got nil")
		}
		if result.Records[1].Policy != nil {
			t.Errorf("Want NO policy on the second record got %v", result.Records[1].Policy)
		}
		if result.Records[0].ProjectNumber != "123456789012" {
			t.Errorf("Want 123456789012 got %s", result.Records[0].ProjectNumber)
		}
		if result.Records[0].OrganizationID != "999999999999" {
			t.Errorf("Want 999999999999 got %s", result.Records[0].OrganizationID)
		}
	})

	t.Run("malformedScopeIsFatal", func(t *testing.T) {
		lister := &fakeAssetLister{}
		collector := newTestCollector(lister, nil, nil, nil)
		_, err := collector.CollectScope(ctx, "blabla", nil, false)
		if err == nil {
			t.Fatalf("Should send back an error on malformed scope and is NOT")
		}
		if erm.Classify(err) != erm.KindMalformedInput {
			t.Errorf("Want malformedInput got %s", erm.Classify(err))
		}
		if lister.resourceCalls != 0 {
			t.Errorf("Want NO listing on malformed scope got %d calls", lister.resourceCalls)
		}
	})

	t.Run("transientListingIsRetried", func(t *testing.T) {
		lister := &fakeAssetLister{
			transientFailuresLeft: 2,
			assets: []cai.ResourceAsset{
				{Name: "//storage.googleapis.com/blabla-bucket", AssetType: cai.AssetTypeBucket},
			},
		}
		collector := newTestCollector(lister, nil, nil, nil)
		result, err := collector.CollectScope(ctx, "projects/blabla", nil, false)
		if err != nil {
			t.Fatalf("Want NO error after retries got %v", err)
		}
		if lister.resourceCalls != 3 {
			t.Errorf("Want 3 listing calls got %d", lister.resourceCalls)
		}
		if result.Total != 1 {
			t.Errorf("Want 1 record got %d", result.Total)
		}
	})

	t.Run("topLevelPermissionDenialIsFatal", func(t *testing.T) {
		lister := &fakeAssetLister{
			listErr: erm.NewCollectError(erm.KindPermissionDenied, "projects/blabla", errors.New("PermissionDenied on scope")),
		}
		collector := newTestCollector(lister, nil, nil, nil)
		_, err := collector.CollectScope(ctx, "projects/blabla", nil, false)
		if err == nil {
			t.Fatalf("Should send back an error on denied scope and is NOT")
		}
		if erm.Classify(err) != erm.KindPermissionDenied {
			t.Errorf("Want permissionDenied got %s", erm.Classify(err))
		}
		if lister.resourceCalls != 1 {
			t.Errorf("Want 1 listing call, no retry on denial, got %d", lister.resourceCalls)
		}
	})

	t.Run("persistFailuresDegradeToResultErrors", func(t *testing.T) {
		lister := &fakeAssetLister{
			assets: []cai.ResourceAsset{
				{Name: "//storage.googleapis.com/blabla-bucket", AssetType: cai.AssetTypeBucket},
			},
		}
		collector := newTestCollector(lister, nil, nil, nil)
		collector.publisher = &fakePublisher{err: errors.New("topic gone")}
		result, err := collector.CollectScope(ctx, "projects/blabla", nil, true)
		if err != nil {
			t.Fatalf("Want NO error got %v", err)
		}
		if len(result.Errors) != 1 {
			t.Errorf("Want 1 result error got %v", result.Errors)
		}
	})
}
