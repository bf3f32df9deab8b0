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
	"sync"
	"time"

	"github.com/dograga/compliance-checks/utilities/cai"
	"github.com/dograga/compliance-checks/utilities/erm"
)

type fakeAssetLister struct {
	assets                []cai.ResourceAsset
	policies              map[string]cai.IamPolicy
	listErr               error
	transientFailuresLeft int
	resourceCalls         int
}

func (fake *fakeAssetLister) ListResourceAssets(ctx context.Context, parentScope string, assetTypes []string) ([]cai.ResourceAsset, error) {
	fake.resourceCalls++
	if fake.transientFailuresLeft > 0 {
		fake.transientFailuresLeft--
		return nil, erm.NewCollectError(erm.KindTransient, parentScope, errors.New("blabla 503 backendError"))
	}
	if fake.listErr != nil {
		return nil, fake.listErr
	}
	return fake.assets, nil
}

func (fake *fakeAssetLister) ListPolicyAssets(ctx context.Context, parentScope string, assetTypes []string) (map[string]cai.IamPolicy, error) {
	return fake.policies, nil
}

type fakeBucketPolicies struct {
	policies map[string]cai.IamPolicy
	denied   map[string]bool
}

func (fake *fakeBucketPolicies) GetBucketPolicy(ctx context.Context, bucketName string) (cai.IamPolicy, error) {
	if fake.denied[bucketName] {
		return cai.IamPolicy{}, erm.NewCollectError(erm.KindPermissionDenied, bucketName, errors.New("googleapi: Error 403: blabla does not have storage.buckets.getIamPolicy access"))
	}
	return fake.policies[bucketName], nil
}

type fakeComputeAPI struct {
	zones           []string
	instances       map[string][]string
	deniedZones     map[string]bool
	deniedInstances map[string]bool
	policies        map[string]cai.IamPolicy
}

func (fake *fakeComputeAPI) ListZones(ctx context.Context, projectID string) ([]string, error) {
	return fake.zones, nil
}

func (fake *fakeComputeAPI) ListInstances(ctx context.Context, projectID string, zone string) ([]string, error) {
	if fake.deniedZones[zone] {
		return nil, erm.NewCollectError(erm.KindPermissionDenied, zone, errors.New("googleapi: Error 403: compute.instances.list access denied"))
	}
	return fake.instances[zone], nil
}

func (fake *fakeComputeAPI) GetInstancePolicy(ctx context.Context, projectID string, zone string, instanceName string) (cai.IamPolicy, error) {
	if fake.deniedInstances[zone+"/"+instanceName] {
		return cai.IamPolicy{}, erm.NewCollectError(erm.KindPermissionDenied, instanceName, errors.New("googleapi: Error 403: compute.instances.getIamPolicy access denied"))
	}
	return fake.policies[zone+"/"+instanceName], nil
}

type fakeProjectNumbers struct {
	number string
	err    error
}

func (fake *fakeProjectNumbers) GetProjectNumber(ctx context.Context, projectID string) (string, error) {
	if fake.err != nil {
		return "", fake.err
	}
	return fake.number, nil
}

type fakeStore struct {
	mutex   sync.Mutex
	upserts map[string]int
}

func (fake *fakeStore) UpsertRecord(ctx context.Context, record cai.MergedRecord) error {
	fake.mutex.Lock()
	defer fake.mutex.Unlock()
	if fake.upserts == nil {
		fake.upserts = make(map[string]int)
	}
	fake.upserts[record.AssetName]++
	return nil
}

type fakeInserter struct {
	batches [][]cai.MergedRecord
}

func (fake *fakeInserter) InsertRecords(ctx context.Context, records []cai.MergedRecord) error {
	fake.batches = append(fake.batches, records)
	return nil
}

type fakePublisher struct {
	published []*cai.CollectionResult
	err       error
}

func (fake *fakePublisher) PublishSummary(ctx context.Context, result *cai.CollectionResult) error {
	if fake.err != nil {
		return fake.err
	}
	fake.published = append(fake.published, result)
	return nil
}

func newTestCollector(assets assetLister, buckets bucketPolicyGetter, instances instanceAPI, projectNumbers projectNumberGetter) *Collector {
	return &Collector{
		assets:         assets,
		buckets:        buckets,
		instances:      instances,
		projectNumbers: projectNumbers,
		assetTypes:     []string{cai.AssetTypeBucket, cai.AssetTypeInstance},
		concurrency:    4,
		retriesNumber:  3,
		retryBaseDelay: time.Millisecond,
	}
}
