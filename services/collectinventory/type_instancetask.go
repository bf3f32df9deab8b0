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

// instanceTask fetches one instance's policy, the record survives a failed
// fetch with its error field set
type instanceTask struct {
	collector     *Collector
	parentScope   string
	projectID     string
	projectNumber string
	zone          string
	instanceName  string
	now           time.Time
}

func (task *instanceTask) Describe() string {
	return fmt.Sprintf("instance %s/%s", task.zone, task.instanceName)
}

func (task *instanceTask) Do(ctx context.Context) ([]cai.MergedRecord, error) {
	record := task.newRecord()
	var policy cai.IamPolicy
	err := erm.RetryTransient(ctx, task.collector.retriesNumber, task.collector.retryBaseDelay, func() error {
		var getErr error
		policy, getErr = task.collector.instances.GetInstancePolicy(ctx, task.projectID, task.zone, task.instanceName)
		return getErr
	})
	if err != nil {
		record.Error = fmt.Sprintf("getInstancePolicy: %v", err)
		return []cai.MergedRecord{record}, err
	}
	record.Policy = &policy
	return []cai.MergedRecord{record}, nil
}

// newRecord builds the record the compute API way, the ancestry comes from the
// resolved project number as the compute listing carries no ancestors
func (task *instanceTask) newRecord() cai.MergedRecord {
	return cai.MergedRecord{
		ParentScope:    task.parentScope,
		ProjectNumber:  task.projectNumber,
		OrganizationID: cai.Unknown,
		ResourceName:   task.instanceName,
		AssetName:      fmt.Sprintf("//compute.googleapis.com/projects/%s/zones/%s/instances/%s", task.projectID, task.zone, task.instanceName),
		AssetType:      cai.AssetTypeInstance,
		Zone:           task.zone,
		AncestryPath:   cai.BuildAncestryPath([]string{"projects/" + task.projectNumber}),
		Timestamp:      task.now,
	}
}
