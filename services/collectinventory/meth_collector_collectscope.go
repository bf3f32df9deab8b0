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
	"github.com/google/uuid"
)

// CollectScope lists resources and IAM policies for a whole scope through
// Cloud Asset Inventory and merges both listings by asset name
// An empty assetTypes falls back to the configured asset types
func (collector *Collector) CollectScope(ctx context.Context, parentScope string, assetTypes []string, persist bool) (*cai.CollectionResult, error) {
	if err := cai.ValidateParentScope(parentScope); err != nil {
		return nil, err
	}
	if len(assetTypes) == 0 {
		assetTypes = collector.assetTypes
	}
	started := time.Now()
	collectionID := uuid.New().String()

	var assets []cai.ResourceAsset
	err := erm.RetryTransient(ctx, collector.retriesNumber, collector.retryBaseDelay, func() error {
		var listErr error
		assets, listErr = collector.assets.ListResourceAssets(ctx, parentScope, assetTypes)
		return listErr
	})
	if err != nil {
		return nil, fmt.Errorf("listResourceAssets %s: %w", parentScope, err)
	}

	var policies map[string]cai.IamPolicy
	err = erm.RetryTransient(ctx, collector.retriesNumber, collector.retryBaseDelay, func() error {
		var listErr error
		policies, listErr = collector.assets.ListPolicyAssets(ctx, parentScope, assetTypes)
		return listErr
	})
	if err != nil {
		return nil, fmt.Errorf("listPolicyAssets %s: %w", parentScope, err)
	}

	records := cai.MergeRecords(parentScope, assets, policies, time.Now().UTC())
	result := &cai.CollectionResult{
		ScopeID: parentScope,
		Records: records,
		Total:   len(records),
	}
	if persist {
		collector.persist(ctx, result)
	}
	collector.logCompletion("collect_scope_done", collectionID, result, started)
	return result, nil
}
