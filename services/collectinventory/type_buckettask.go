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
)

// bucketTask fetches one bucket's policy, the record survives a failed fetch
// with its error field set
type bucketTask struct {
	collector   *Collector
	parentScope string
	asset       cai.ResourceAsset
	now         time.Time
}

func (task *bucketTask) Describe() string {
	return "bucket " + task.asset.Name
}

func (task *bucketTask) Do(ctx context.Context) ([]cai.MergedRecord, error) {
	records := cai.MergeRecords(task.parentScope, []cai.ResourceAsset{task.asset}, nil, task.now)
	record := records[0]
	if record.Error != "" {
		return records, nil
	}
	var policy cai.IamPolicy
	err := erm.RetryTransient(ctx, task.collector.retriesNumber, task.collector.retryBaseDelay, func() error {
		var getErr error
		policy, getErr = task.collector.buckets.GetBucketPolicy(ctx, record.ResourceName)
		return getErr
	})
	if err != nil {
		record.Error = fmt.Sprintf("getBucketPolicy: %v", err)
		return []cai.MergedRecord{record}, err
	}
	record.Policy = &policy
	return []cai.MergedRecord{record}, nil
}
