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
	"time"

	"github.com/dograga/compliance-checks/utilities/cai"
	"github.com/dograga/compliance-checks/utilities/glo"
)

const microserviceName = "collectinventory"

type assetLister interface {
	ListResourceAssets(ctx context.Context, parentScope string, assetTypes []string) ([]cai.ResourceAsset, error)
	ListPolicyAssets(ctx context.Context, parentScope string, assetTypes []string) (map[string]cai.IamPolicy, error)
}

type bucketPolicyGetter interface {
	GetBucketPolicy(ctx context.Context, bucketName string) (cai.IamPolicy, error)
}

type instanceAPI interface {
	ListZones(ctx context.Context, projectID string) ([]string, error)
	ListInstances(ctx context.Context, projectID string, zone string) ([]string, error)
	GetInstancePolicy(ctx context.Context, projectID string, zone string, instanceName string) (cai.IamPolicy, error)
}

type projectNumberGetter interface {
	GetProjectNumber(ctx context.Context, projectID string) (string, error)
}

type recordStore interface {
	UpsertRecord(ctx context.Context, record cai.MergedRecord) error
}

type recordInserter interface {
	InsertRecords(ctx context.Context, records []cai.MergedRecord) error
}

type summaryPublisher interface {
	PublishSummary(ctx context.Context, result *cai.CollectionResult) error
}

// Collector runs inventory collections, behind the small interfaces sit the
// asset, storage, compute, resourcemanager, firestore, bigquery and pubsub clients
type Collector struct {
	assets         assetLister
	buckets        bucketPolicyGetter
	instances      instanceAPI
	projectNumbers projectNumberGetter
	store          recordStore
	inserter       recordInserter
	publisher      summaryPublisher
	cloudLogger    *glo.CloudLogger
	assetTypes     []string
	concurrency    int
	retriesNumber  int
	retryBaseDelay time.Duration
}
