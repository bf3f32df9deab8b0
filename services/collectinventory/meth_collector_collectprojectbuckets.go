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
	"fmt"
	"time"

	"github.com/dograga/compliance-checks/utilities/cai"
	"github.com/dograga/compliance-checks/utilities/erm"
	"github.com/dograga/compliance-checks/utilities/fan"
	"github.com/google/uuid"
)

// CollectProjectBuckets lists one project's buckets through Cloud Asset
// Inventory then fetches each bucket policy through the storage API, one task
// per bucket. A denied bucket yields a record with its error set plus one
// result error, the other buckets are unaffected
func (collector *Collector) CollectProjectBuckets(ctx context.Context, projectID string, persist bool) (*cai.CollectionResult, error) {
	parentScope := "projects/" + projectID
	started := time.Now()
	collectionID := uuid.New().String()

	var assets []cai.ResourceAsset
	err := erm.RetryTransient(ctx, collector.retriesNumber, collector.retryBaseDelay, func() error {
		var listErr error
		assets, listErr = collector.assets.ListResourceAssets(ctx, parentScope, []string{cai.AssetTypeBucket})
		return listErr
	})
	if err != nil {
		return nil, fmt.Errorf("listResourceAssets %s: %w", parentScope, err)
	}

	now := time.Now().UTC()
	tasks := make([]fan.Task, 0, len(assets))
	for _, resourceAsset := range assets {
		tasks = append(tasks, &bucketTask{
			collector:   collector,
			parentScope: parentScope,
			asset:       resourceAsset,
			now:         now,
		})
	}
	records, errs := fan.RunAll(ctx, tasks, collector.concurrency)
	result := &cai.CollectionResult{
		ScopeID: parentScope,
		Records: records,
		Errors:  errs,
		Total:   len(records),
	}
	if persist {
		collector.persist(ctx, result)
	}
	collector.logCompletion("collect_project_buckets_done", collectionID, result, started)
	return result, nil
}
